package postgresql

// displayName renders the SQL for a user's display name: "first last",
// falling back to the username.
func displayName(alias string) string {
	return "COALESCE(NULLIF(TRIM(" + alias + ".first_name || ' ' || " + alias + ".last_name), ''), " + alias + ".username)"
}

package systemlog

import "time"

const (
	ActionLoggedIn  = "Logged in"
	ActionLoggedOut = "Logged out"
)

// Entry is append-only.
type Entry struct {
	ID        string
	UserID    string
	Action    string
	Timestamp time.Time
	IPAddress *string

	// DTO
	Username *string
}

type EntryResponse struct {
	ID        string  `json:"id"`
	UserID    string  `json:"user_id"`
	Username  *string `json:"username,omitempty"`
	Action    string  `json:"action"`
	Timestamp string  `json:"timestamp"`
	IPAddress *string `json:"ip_address"`
}

func NewEntryResponses(entries []Entry) []EntryResponse {
	out := make([]EntryResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, EntryResponse{
			ID:        e.ID,
			UserID:    e.UserID,
			Username:  e.Username,
			Action:    e.Action,
			Timestamp: e.Timestamp.Format(time.RFC3339),
			IPAddress: e.IPAddress,
		})
	}
	return out
}

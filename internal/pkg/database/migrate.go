package database

import (
	"context"
	_ "embed"
	"fmt"
)

//go:embed schema.sql
var schemaSQL string

// Migrate applies the embedded schema. Every statement is idempotent so it is
// safe to run on each start.
func Migrate(ctx context.Context, db *DB) error {
	if _, err := db.Exec(ctx, schemaSQL); err != nil {
		return fmt.Errorf("apply schema: %w", err)
	}
	return nil
}

// Tables lists application tables in dependency order, children first.
var Tables = []string{
	"revoked_sessions",
	"feedback",
	"system_logs",
	"performance_reviews",
	"documents",
	"shifts",
	"attendance",
	"leave_requests",
	"candidates",
	"job_openings",
	"announcements",
	"tasks",
	"project_members",
	"projects",
	"users",
}

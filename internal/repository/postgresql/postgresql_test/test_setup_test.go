package postgresql_test

import (
	"context"
	"fmt"
	"os"
	"testing"

	"github.com/cmlabs-hris/ems-backend-go/internal/domain/user"
	"github.com/cmlabs-hris/ems-backend-go/internal/pkg/database"
	"github.com/cmlabs-hris/ems-backend-go/internal/repository/postgresql"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// newTestDB connects to TEST_DATABASE_URL, applies the schema and empties
// every table. Tests are skipped when the variable is unset.
func newTestDB(t *testing.T) *database.DB {
	t.Helper()

	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	db, err := database.NewPostgreSQLDB(dsn)
	require.NoError(t, err)
	t.Cleanup(db.Close)

	ctx := context.Background()
	require.NoError(t, database.Migrate(ctx, db))
	require.NoError(t, truncateAll(ctx, db))
	return db
}

func truncateAll(ctx context.Context, db *database.DB) error {
	tx, err := db.BeginTx(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	for _, table := range database.Tables {
		if _, err := tx.Exec(ctx, fmt.Sprintf("TRUNCATE TABLE %s CASCADE", table)); err != nil {
			return fmt.Errorf("failed to truncate table %s: %w", table, err)
		}
	}
	return tx.Commit(ctx)
}

func createTestUser(t *testing.T, db *database.DB, username string, role user.Role) user.User {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	require.NoError(t, err)
	hashed := string(hash)

	u, err := postgresql.NewUserRepository(db).Create(context.Background(), user.User{
		Username:     username,
		PasswordHash: &hashed,
		Email:        username + "@example.com",
		FirstName:    username,
		Role:         role,
	})
	require.NoError(t, err)
	return u
}

package postgres

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/securepass-api/internal/domain"
)

func TestUniqueError(t *testing.T) {
	byConstraint := map[string]error{
		"users_email_key":   domain.ErrEmailAlreadyExists,
		"users_user_id_key": domain.ErrUserIDAlreadyExists,
	}

	email := fmt.Errorf("exec: %w", &pgconn.PgError{Code: "23505", ConstraintName: "users_email_key"})
	assert.ErrorIs(t, uniqueError(email, "insert user", "x", byConstraint), domain.ErrEmailAlreadyExists)

	userID := &pgconn.PgError{Code: "23505", ConstraintName: "users_user_id_key"}
	assert.ErrorIs(t, uniqueError(userID, "insert user", "x", byConstraint), domain.ErrUserIDAlreadyExists)

	other := &pgconn.PgError{Code: "23505", ConstraintName: "otro"}
	assert.ErrorIs(t, uniqueError(other, "insert user", "x", byConstraint), domain.ErrDuplicate)

	fk := &pgconn.PgError{Code: "23503"}
	err := uniqueError(fk, "insert user", "x", byConstraint)
	assert.ErrorIs(t, err, fk)
	assert.NotErrorIs(t, err, domain.ErrDuplicate)
}

func TestIsForeignKeyViolation(t *testing.T) {
	assert.True(t, isForeignKeyViolation(fmt.Errorf("exec: %w", &pgconn.PgError{Code: "23503"})))
	assert.False(t, isForeignKeyViolation(&pgconn.PgError{Code: "23505"}))
	assert.False(t, isForeignKeyViolation(errors.New("23503")))
}

func TestIsNoRows(t *testing.T) {
	assert.True(t, isNoRows(fmt.Errorf("get: %w", pgx.ErrNoRows)))
	assert.False(t, isNoRows(errors.New("otro")))
}

func TestStrs(t *testing.T) {
	assert.Equal(t, []string{}, strs(nil))
	assert.Equal(t, []string{"a"}, strs([]string{"a"}))
}

func TestMigrationFilesEmbedded(t *testing.T) {
	script, err := migrationFiles.ReadFile("migrations/001_init.sql")
	assert.NoError(t, err)
	for _, table := range []string{"companies", "company_requests", "trial_requests", "admin_users", "users",
		"doors", "door_access", "permission_requests", "access_events", "payments", "audit_events"} {
		assert.Contains(t, string(script), "CREATE TABLE IF NOT EXISTS "+table+" (")
	}
}

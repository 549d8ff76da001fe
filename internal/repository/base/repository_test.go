package base

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestIsNotFound(t *testing.T) {
	assert.True(t, IsNotFound(pgx.ErrNoRows))
	assert.True(t, IsNotFound(fmt.Errorf("get lesson: %w", pgx.ErrNoRows)))
	assert.False(t, IsNotFound(errors.New("boom")))
	assert.False(t, IsNotFound(nil))
}

func TestIsUniqueViolation(t *testing.T) {
	uniqueErr := &pgconn.PgError{Code: "23505", ConstraintName: "lessons_group_date_unique"}

	assert.True(t, IsUniqueViolation(uniqueErr))
	assert.True(t, IsUniqueViolation(fmt.Errorf("create lesson: %w", uniqueErr)))
	assert.False(t, IsUniqueViolation(&pgconn.PgError{Code: "23503"}))
	assert.False(t, IsUniqueViolation(errors.New("boom")))
	assert.False(t, IsUniqueViolation(nil))
}

// Package users contains the user store: the Repository interface plus the
// in-memory and PostgreSQL implementations behind it.
package users

import (
	"context"

	"github.com/dmitrijs2005/authkeeper/internal/server/models"
)

// Repository is the persistence contract for credential records.
//
// Create must be atomic with respect to the uniqueness of the username:
// of two concurrent Create calls for the same name exactly one succeeds,
// the other gets common.ErrorAlreadyExists.
type Repository interface {
	// Create inserts a new record. Returns common.ErrorAlreadyExists when
	// the username is taken.
	Create(ctx context.Context, user *models.User) (*models.User, error)

	// GetUserByName looks up a record. Returns common.ErrorNotFound when
	// no such user exists; absence is an expected outcome, not a failure.
	GetUserByName(ctx context.Context, username string) (*models.User, error)

	// SetToken overwrites the current token of an existing record.
	// Returns common.ErrorNotFound when the username is absent; it never
	// creates a record.
	SetToken(ctx context.Context, username string, token string) error
}

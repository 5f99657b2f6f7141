package store

import (
	"context"

	"github.com/veridict/veridict/models"
)

type UserRepository interface {
	// CreateUser persists a new account and returns it with server-assigned
	// fields populated. Fails with ErrEmailAlreadyExists on a duplicate
	// email (unique-constraint violation).
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// FindUserByEmail returns the account whose email matches the
	// (lowercased) key, or ErrNoUserWasFound.
	FindUserByEmail(ctx context.Context, email string) (models.User, error)

	// FindUserByID returns the account with the given id, or
	// ErrNoUserWasFound.
	FindUserByID(ctx context.Context, id string) (models.User, error)
}

type VerificationRepository interface {
	// InsertVerification persists one verification row. Each call creates a
	// new row; there is no upsert.
	InsertVerification(ctx context.Context, v models.Verification) error

	// ListVerifications returns verifications ordered newest first, capped
	// at req.Limit, optionally filtered by req.UserID.
	ListVerifications(ctx context.Context, req models.HistoryRequest) ([]models.Verification, error)
}

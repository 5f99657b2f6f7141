package service

//go:generate mockgen -source=interfaces.go -destination=../mock/services_mock.go -package=mock

import (
	"context"

	"github.com/veridict/veridict/models"
)

type AuthService interface {
	// Signup creates a new account from the given credentials and returns
	// the persisted user.
	Signup(ctx context.Context, req models.SignupRequest) (models.User, error)

	// Login verifies the credentials and returns the matching user.
	Login(ctx context.Context, req models.LoginRequest) (models.User, error)

	// CurrentUser resolves a user id to its public profile. A missing or
	// unresolvable id yields a nil profile, never an error.
	CurrentUser(ctx context.Context, userID string) (*models.Profile, error)
}

type VerificationService interface {
	// Verify classifies the submitted content and returns the full
	// verification record. Persistence is best-effort: a storage failure
	// never negates a computed result.
	Verify(ctx context.Context, req models.VerifyRequest) (models.Verification, error)

	// History lists past verifications newest first, reshaped for display.
	History(ctx context.Context, req models.HistoryRequest) ([]models.VerificationSummary, error)
}

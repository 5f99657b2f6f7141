package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/veridict/veridict/internal/logger"
	"github.com/veridict/veridict/internal/store"
	"github.com/veridict/veridict/internal/utils"
	"github.com/veridict/veridict/models"
)

// authService is the concrete implementation of AuthService.
// It handles account creation and credential verification using a
// UserRepository for persistence and bcrypt for password hashing.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	// uuidGenerator issues opaque account ids at signup time.
	uuidGenerator *utils.UUIDGenerator

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given
// UserRepository.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction.
func NewAuthService(userRepository store.UserRepository, logger *logger.Logger) AuthService {
	return &authService{
		userRepository: userRepository,
		uuidGenerator:  utils.NewUUIDGenerator(),
		logger:         logger,
	}
}

// Signup creates a new user account.
//
// It validates that both Email and Password are non-empty, normalises the
// email to lowercase, hashes the password with bcrypt, and delegates
// persistence to the UserRepository. Duplicate detection is left entirely to
// the database's unique constraint, so concurrent signups with the same email
// cannot race past a pre-check.
//
// Returns the persisted user (with server-assigned CreatedAt) or:
//   - ErrInvalidDataProvided if Email or Password is empty.
//   - A wrapped storage error if the repository call fails (e.g. email
//     already taken, see store.ErrEmailAlreadyExists).
func (a *authService) Signup(ctx context.Context, req models.SignupRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	email := normalizeEmail(req.Email)
	if email == "" || req.Password == "" {
		log.Error().Str("email", email).Msg("invalid signup data provided")
		return models.User{}, ErrInvalidDataProvided
	}

	digest, err := utils.HashPassword(req.Password)
	if err != nil {
		log.Err(err).Msg("password hashing failed")
		return models.User{}, fmt.Errorf("password hashing failed: %w", err)
	}

	user := models.User{
		ID:           a.uuidGenerator.Generate(),
		Email:        email,
		PasswordHash: digest,
		FirstName:    strings.TrimSpace(req.FirstName),
		LastName:     strings.TrimSpace(req.LastName),
		Role:         models.UserRoleDefault,
	}

	createdUser, err := a.userRepository.CreateUser(ctx, user)
	if err != nil {
		log.Err(err).Str("email", email).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return createdUser, nil
}

// Login authenticates an existing user.
//
// It validates that both Email and Password are non-empty, looks up the
// account by the normalised email, and compares the supplied password against
// the stored bcrypt digest.
//
// Returns the authenticated user record or:
//   - ErrInvalidDataProvided if Email or Password is empty.
//   - ErrInvalidCredentials if no account matches or the password is wrong;
//     the two cases are deliberately indistinguishable to the caller.
//   - A wrapped storage error on infrastructure failures (e.g.
//     store.ErrDatabaseUnavailable).
func (a *authService) Login(ctx context.Context, req models.LoginRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	email := normalizeEmail(req.Email)
	if email == "" || req.Password == "" {
		log.Error().Str("email", email).Msg("invalid login data provided")
		return models.User{}, ErrInvalidDataProvided
	}

	foundUser, err := a.userRepository.FindUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			log.Error().Str("email", email).Msg("login attempt for unknown email")
			return models.User{}, ErrInvalidCredentials
		}
		log.Err(err).Str("email", email).Msg("user search by email failed")
		return models.User{}, fmt.Errorf("user search by email failed: %w", err)
	}

	if !utils.CheckPasswordHash(req.Password, foundUser.PasswordHash) {
		log.Error().
			Str("id", foundUser.ID).
			Str("email", foundUser.Email).
			Msg("wrong password")
		return models.User{}, ErrInvalidCredentials
	}

	return foundUser, nil
}

// CurrentUser resolves userID to its public profile.
//
// An empty id, an unknown id, and a storage failure all degrade to a nil
// profile: the caller renders "no user" rather than an error page.
func (a *authService) CurrentUser(ctx context.Context, userID string) (*models.Profile, error) {
	log := logger.FromContext(ctx)

	if userID == "" {
		return nil, nil
	}

	foundUser, err := a.userRepository.FindUserByID(ctx, userID)
	if err != nil {
		if !errors.Is(err, store.ErrNoUserWasFound) {
			log.Err(err).Str("id", userID).Msg("user lookup failed, degrading to anonymous")
		}
		return nil, nil
	}

	profile := models.ProfileOf(foundUser)
	return &profile, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

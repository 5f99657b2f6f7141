package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"

	"github.com/veridict/veridict/internal/logger"
	"github.com/veridict/veridict/models"
)

// userRepository is the PostgreSQL-backed implementation of [UserRepository].
// It handles user account creation and lookup against the "users" table.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// CreateUser persists a new user record and returns the fully populated
// [models.User] with server-assigned fields (CreatedAt).
//
// The INSERT relies on the unique constraint on users.email; there is no
// SELECT-then-INSERT pre-check, so two concurrent signups with the same email
// cannot both succeed.
//
// Error handling:
//   - PostgreSQL unique_violation (23505) → [ErrEmailAlreadyExists].
//   - Connection-class failure → wrapped [ErrDatabaseUnavailable].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createUser,
		user.ID, user.Email, user.PasswordHash, user.FirstName, user.LastName, user.Role)

	var created models.User
	if err := row.Scan(
		&created.ID,
		&created.Email,
		&created.PasswordHash,
		&created.FirstName,
		&created.LastName,
		&created.Role,
		&created.CreatedAt,
	); err != nil {
		return models.User{}, r.classifyUserError(log, "CreateUser", err)
	}

	return created, nil
}

// FindUserByEmail retrieves the user record whose email matches the given
// key. The caller is expected to lowercase the key; emails are stored
// lowercased so the comparison is effectively case-insensitive.
//
// Returns [ErrNoUserWasFound] when no row matches.
func (r *userRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, findUserByEmail, email)
	return r.scanUser(log, "FindUserByEmail", row)
}

// FindUserByID retrieves the user record with the given id.
//
// Returns [ErrNoUserWasFound] when no row matches.
func (r *userRepository) FindUserByID(ctx context.Context, id string) (models.User, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, findUserByID, id)
	return r.scanUser(log, "FindUserByID", row)
}

func (r *userRepository) scanUser(log *logger.Logger, op string, row *sql.Row) (models.User, error) {
	var found models.User
	if err := row.Scan(
		&found.ID,
		&found.Email,
		&found.PasswordHash,
		&found.FirstName,
		&found.LastName,
		&found.Role,
		&found.CreatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrNoUserWasFound
		}
		return models.User{}, r.classifyUserError(log, op, err)
	}

	return found, nil
}

func (r *userRepository) classifyUserError(log *logger.Logger, op string, err error) error {
	log.Err(err).Str("func", "*userRepository."+op).Msg("error: users query failed")

	switch {
	case postgresError(err) == pgerrcode.UniqueViolation:
		return ErrEmailAlreadyExists
	case IsUnavailable(err):
		return fmt.Errorf("%w: %w", ErrDatabaseUnavailable, err)
	default:
		return fmt.Errorf("unexpected DB error: %w", err)
	}
}

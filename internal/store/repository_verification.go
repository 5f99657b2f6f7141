package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/veridict/veridict/internal/logger"
	"github.com/veridict/veridict/models"
)

// listAllocCap bounds the initial capacity of a listing's result slice.
const listAllocCap = 128

// verificationRepository is the PostgreSQL-backed implementation of
// [VerificationRepository]. It executes all verification operations directly
// against the "verifications" table using the embedded [*DB] connection.
//
// Every public method obtains a context-scoped logger via
// [logger.FromContext] so that all database interactions are traced
// with structured fields (verification id, user id, row counts).
type verificationRepository struct {
	*DB
	logger *logger.Logger
}

// NewVerificationRepository constructs a [VerificationRepository] backed by
// the provided database connection and logger.
//
// The logger parameter is stored for fallback logging; most methods prefer
// the context-scoped logger obtained via [logger.FromContext].
func NewVerificationRepository(db *DB, logger *logger.Logger) VerificationRepository {
	return &verificationRepository{
		DB:     db,
		logger: logger,
	}
}

// InsertVerification persists one verification row. Rows are insert-only:
// each call writes a new unique id and nothing is ever updated in place.
//
// The caller owns the best-effort policy: an error returned here is logged
// and swallowed by the verification service, never surfaced to the client.
func (v *verificationRepository) InsertVerification(ctx context.Context, record models.Verification) error {
	log := logger.FromContext(ctx)

	result, err := v.DB.ExecContext(ctx, insertVerification,
		record.ID,
		record.UserID,
		record.Title,
		record.Source,
		record.Status,
		record.Confidence,
		record.BlockchainHash,
		record.Analysis.CredibilityScore,
		record.Analysis.LanguagePattern,
		record.Analysis.FactCheck,
		record.Analysis.SourceReliability,
		record.InputType,
		record.InputURL,
		record.InputSnippet,
		record.Timestamp,
	)
	if err != nil {
		log.Err(err).
			Str("func", "verificationRepository.InsertVerification").
			Str("verification_id", record.ID).
			Msg("failed to execute insert statement")

		if IsUnavailable(err) {
			return fmt.Errorf("%w: %w", ErrDatabaseUnavailable, err)
		}
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err == nil && affected == 0 {
		log.Error().
			Str("func", "verificationRepository.InsertVerification").
			Str("verification_id", record.ID).
			Msg("insert affected zero rows")
		return ErrVerificationNotSaved
	}

	return nil
}

// ListVerifications retrieves verifications ordered by timestamp descending
// (newest first), capped at req.Limit rows. When req.UserID is non-empty the
// result contains only that user's rows.
//
// Returns the matched records or an error if the query fails, a row cannot be
// scanned, or an iteration error is detected after the result set is
// exhausted. Degrading a failure to an empty listing is the caller's policy,
// not the repository's.
func (v *verificationRepository) ListVerifications(ctx context.Context, req models.HistoryRequest) ([]models.Verification, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListVerificationsQuery(req)
	if err != nil {
		log.Err(err).
			Str("func", "verificationRepository.ListVerifications").
			Str("user_id", req.UserID).
			Msg("failed to create query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := v.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "verificationRepository.ListVerifications").
			Str("user_id", req.UserID).
			Uint64("limit", req.Limit).
			Msg("failed to execute query for listing verifications")
		if IsUnavailable(err) {
			return nil, fmt.Errorf("%w: %w", ErrDatabaseUnavailable, err)
		}
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	// req.Limit originates from a query parameter; never let it size an
	// allocation directly.
	results := make([]models.Verification, 0, min(req.Limit, listAllocCap))

	for rows.Next() {
		record, scanErr := scanVerification(rows)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "verificationRepository.ListVerifications").
				Str("user_id", req.UserID).
				Msg("failed to scan verification row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		results = append(results, record)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "verificationRepository.ListVerifications").
			Str("user_id", req.UserID).
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return results, nil
}

// scanVerification maps one result row onto a [models.Verification],
// folding the flat analysis columns back into the nested Analysis struct
// and converting nullable columns to pointers.
func scanVerification(rows *sql.Rows) (models.Verification, error) {
	var record models.Verification
	var userID, inputURL, inputSnippet sql.NullString

	err := rows.Scan(
		&record.ID,
		&userID,
		&record.Title,
		&record.Source,
		&record.Status,
		&record.Confidence,
		&record.BlockchainHash,
		&record.Analysis.CredibilityScore,
		&record.Analysis.LanguagePattern,
		&record.Analysis.FactCheck,
		&record.Analysis.SourceReliability,
		&record.InputType,
		&inputURL,
		&inputSnippet,
		&record.Timestamp,
	)
	if err != nil {
		return models.Verification{}, err
	}

	if userID.Valid {
		record.UserID = &userID.String
	}
	if inputURL.Valid {
		record.InputURL = &inputURL.String
	}
	if inputSnippet.Valid {
		record.InputSnippet = &inputSnippet.String
	}

	return record, nil
}

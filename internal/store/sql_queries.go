package store

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/veridict/veridict/models"
)

const (
	createUser = `INSERT INTO users (id, email, password_hash, first_name, last_name, role)
    VALUES ($1, $2, $3, $4, $5, $6)
    RETURNING id, email, password_hash, first_name, last_name, role, created_at;`

	findUserByEmail = `SELECT id, email, password_hash, first_name, last_name, role, created_at
    FROM users
    WHERE email = $1;`

	findUserByID = `SELECT id, email, password_hash, first_name, last_name, role, created_at
    FROM users
    WHERE id = $1;`

	insertVerification = `INSERT INTO verifications (
			id,
			user_id,
			title,
			source,
			status,
			confidence,
			blockchain_hash,
			credibility_score,
			language_pattern,
			fact_check,
			source_reliability,
			input_type,
			input_url,
			input_snippet,
			"timestamp"
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15);`
)

// verificationColumns is the full column list scanned by ListVerifications,
// in scan order.
var verificationColumns = []string{
	"id",
	"user_id",
	"title",
	"source",
	"status",
	"confidence",
	"blockchain_hash",
	"credibility_score",
	"language_pattern",
	"fact_check",
	"source_reliability",
	"input_type",
	"input_url",
	"input_snippet",
	`"timestamp"`,
}

// buildListVerificationsQuery builds the history SELECT. The user filter is
// applied only when req.UserID is non-empty; ordering is always newest first
// and the row count is always capped by req.Limit.
func buildListVerificationsQuery(req models.HistoryRequest) (string, []any, error) {
	builder := sq.Select(verificationColumns...).
		From("verifications").
		OrderBy(`"timestamp" DESC`).
		Limit(req.Limit).
		PlaceholderFormat(sq.Dollar)

	if req.UserID != "" {
		builder = builder.Where(sq.Eq{"user_id": req.UserID})
	}

	return builder.ToSql()
}

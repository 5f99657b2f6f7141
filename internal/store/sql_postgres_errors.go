// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Veridict Authors

package store

import (
	"context"
	"database/sql/driver"
	"errors"
	"net"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

// IsUnavailable reports whether err indicates that the database itself could
// not be reached, as opposed to a query-level failure. It is used to map
// store errors to the DatabaseUnavailable surface error rather than matching
// on error message text.
//
// An error counts as unavailability when it is:
//   - a PostgreSQL connection-class error (see [isConnectionCode]);
//   - a net-level error (refused connection, DNS failure, timeout);
//   - driver.ErrBadConn from the database/sql pool.
func IsUnavailable(err error) bool {
	if err == nil {
		return false
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return isConnectionCode(pgErr.Code)
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		return true
	}

	var opErr *net.OpError
	if errors.As(err, &opErr) {
		return true
	}

	if errors.Is(err, driver.ErrBadConn) || errors.Is(err, context.DeadlineExceeded) {
		return true
	}

	return false
}

// isConnectionCode maps a PostgreSQL error code to the connection-failure
// classes. See https://www.postgresql.org/docs/current/errcodes-appendix.html.
//
//   - Class 08 — connection exceptions (08000, 08001, 08003, 08004, 08006)
//   - Class 57 — cannot connect now (57P03)
func isConnectionCode(code string) bool {
	switch code {
	// Class 08 — connection exceptions
	case pgerrcode.ConnectionException,
		pgerrcode.SQLClientUnableToEstablishSQLConnection,
		pgerrcode.ConnectionDoesNotExist,
		pgerrcode.SQLServerRejectedEstablishmentOfSQLConnection,
		pgerrcode.ConnectionFailure:
		return true

	// Class 57 — operator intervention
	case pgerrcode.CannotConnectNow:
		return true
	}

	return false
}

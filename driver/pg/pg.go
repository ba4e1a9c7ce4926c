/*
   Copyright 2025 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/


// Package pg lifts pgx and PostgreSQL errors into ORM errors.
//
// Constraint violations a client can fix become validation failures, other
// SQLSTATE classes become ORM errors with a fitting HTTP status, and errors
// that point at a broken query become usage errors.
package pg

import (
	"errors"
	"net/http"
	"regexp"
	"strings"

	"dirpx.dev/ormerrors/orm"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// Rules attached to constraint violations.
const (
	RuleUnique   = "unique"
	RuleRequired = "required"
	RuleCheck    = "check"
)

// keyDetail matches the DETAIL of unique violations:
// Key (email)=(a@b.co) already exists.
var keyDetail = regexp.MustCompile(`^Key \(([^)]+)\)=`)

var _ orm.Converter = Convert

// Convert is an orm.Converter for pgx errors.
func Convert(err error) (error, bool) {
	if errors.Is(err, pgx.ErrNoRows) {
		return orm.Wrap(err, http.StatusNotFound, "No record found"), true
	}

	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		var connErr *pgconn.ConnectError
		switch {
		case errors.As(err, &connErr):
			return orm.Wrap(err, http.StatusServiceUnavailable, "Database unavailable"), true
		case pgconn.Timeout(err):
			return orm.Wrap(err, http.StatusGatewayTimeout, "Query timed out"), true
		}
		return nil, false
	}
	return convertPg(pgErr, err), true
}

func convertPg(pgErr *pgconn.PgError, err error) error {
	switch pgErr.Code {
	case pgerrcode.UniqueViolation:
		return violation(pgErr, uniqueColumns(pgErr), RuleUnique)
	case pgerrcode.NotNullViolation:
		return violation(pgErr, columns(pgErr.ColumnName), RuleRequired)
	case pgerrcode.CheckViolation:
		name := pgErr.ColumnName
		if name == "" {
			name = pgErr.ConstraintName
		}
		return violation(pgErr, columns(name), RuleCheck)
	case pgerrcode.ForeignKeyViolation:
		return orm.Wrap(err, http.StatusConflict, "Referenced record conflict")
	case pgerrcode.SerializationFailure, pgerrcode.DeadlockDetected, pgerrcode.LockNotAvailable:
		return orm.Wrap(err, http.StatusConflict, "Concurrent update conflict")
	case pgerrcode.QueryCanceled:
		return orm.Wrap(err, http.StatusGatewayTimeout, "Query canceled")
	}

	switch code := pgErr.Code; {
	case pgerrcode.IsDataException(code):
		return orm.Wrap(err, http.StatusBadRequest, "Invalid value")
	case pgerrcode.IsConnectionException(code),
		pgerrcode.IsInsufficientResources(code),
		pgerrcode.IsOperatorIntervention(code):
		return orm.Wrap(err, http.StatusServiceUnavailable, "Database unavailable")
	case pgerrcode.IsSyntaxErrororAccessRuleViolation(code):
		return &orm.UsageError{Reason: "invalid query", Err: err}
	}
	return orm.Wrap(err, http.StatusInternalServerError, orm.DefaultReason)
}

// violation builds a validation failure, or a conflict when the server did
// not name any column.
func violation(pgErr *pgconn.PgError, cols []string, rule string) error {
	if len(cols) == 0 {
		return orm.Wrap(pgErr, http.StatusConflict, "Constraint violation")
	}
	attrs := orm.NewAttributes()
	for _, c := range cols {
		attrs.Add(c, orm.Violation{Rule: rule, Message: pgErr.Message})
	}
	return &orm.ValidationError{
		Model:      pgErr.TableName,
		Attributes: attrs,
		Reason:     pgErr.Message,
	}
}

func uniqueColumns(pgErr *pgconn.PgError) []string {
	if pgErr.ColumnName != "" {
		return columns(pgErr.ColumnName)
	}
	m := keyDetail.FindStringSubmatch(pgErr.Detail)
	if m == nil {
		return nil
	}
	return columns(strings.Split(m[1], ",")...)
}

func columns(names ...string) []string {
	var out []string
	for _, n := range names {
		n = strings.Trim(strings.TrimSpace(n), `"`)
		if n != "" {
			out = append(out, n)
		}
	}
	return out
}

package apperr

import (
	"context"
	"database/sql/driver"
	"errors"
	"net"
	"net/http"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
)

// IsUnavailable reports whether err means the store could not be reached in
// time: connection failures, pool give-ups, and statement timeouts. These
// map to 503, never 500.
func IsUnavailable(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return true
	}
	if errors.Is(err, driver.ErrBadConn) {
		return true
	}
	var netErr net.Error
	if errors.As(err, &netErr) {
		return true
	}
	if pgconn.Timeout(err) {
		return true
	}
	var pg *pgconn.PgError
	if errors.As(err, &pg) {
		// 08xxx connection exception, 57P01 admin_shutdown, 57P03 cannot_connect_now,
		// 53300 too_many_connections
		switch {
		case strings.HasPrefix(pg.Code, "08"):
			return true
		case pg.Code == "57P01", pg.Code == "57P03", pg.Code == "53300":
			return true
		}
	}
	return false
}

// FromPG maps a pgconn.PgError to a Problem. Returns (Problem, true) if mapped.
// Constraint violations become client errors: they mean a payload slipped
// past validation, and the row was not written.
func FromPG(err error) (Problem, bool) {
	var pg *pgconn.PgError
	if !errors.As(err, &pg) {
		return Problem{}, false
	}

	p := Problem{
		Title:  "Database error",
		Status: http.StatusInternalServerError,
	}

	field := fieldFromConstraint(pg.ConstraintName)
	if field == "" && pg.ColumnName != "" {
		field = pg.ColumnName
	}

	switch pg.Code {
	case "23514": // check_violation (status set, rating range)
		p.Status = http.StatusBadRequest
		p.Title = "Bad Request"
		if field == "" {
			field = "field"
		}
		p.FieldErrors = []FieldError{{Field: field, Code: "check", Message: "value violates a constraint"}}
	case "23502": // not_null_violation
		p.Status = http.StatusBadRequest
		p.Title = "Bad Request"
		if field == "" {
			field = "field"
		}
		p.FieldErrors = []FieldError{{Field: field, Code: "not_null", Message: "required field is missing"}}
	case "22001": // string_data_right_truncation
		p.Status = http.StatusBadRequest
		p.Title = "Bad Request"
		if field == "" {
			field = "field"
		}
		p.FieldErrors = []FieldError{{Field: field, Code: "too_long", Message: "value is too long"}}
	case "22P02": // invalid_text_representation
		p.Status = http.StatusBadRequest
		p.Title = "Bad Request"
		if field == "" {
			field = "id"
		}
		p.FieldErrors = []FieldError{{Field: field, Code: "invalid", Message: "invalid format"}}
	case "40001": // serialization_failure
		p.Status = http.StatusConflict
		p.Title = "Conflict"
		p.Detail = "transaction conflict, please retry"
		p.Retryable = true
	default:
		// Unanticipated database error: 500, no internal detail leaked.
	}

	return p, true
}

// Map well-known constraint names to fields (extend as constraints are added).
var constraintField = map[string]string{
	"books_status_check": "status",
	"books_rating_check": "rating",
}

func fieldFromConstraint(c string) string {
	if f, ok := constraintField[c]; ok {
		return f
	}
	return ""
}

package postgres

import (
	"errors"
	"fmt"
	"strings"

	"github.com/accuransi/website-api/src/models"
	"github.com/accuransi/website-api/src/repositories"
	"github.com/jackc/pgx/v5/pgconn"
)

// buildUpdate renders an ordered field set into a single UPDATE statement
// keyed by id. Column names come from the entity's allow-list, never from
// request input, so the statement text is safe to assemble by hand. One
// statement keeps the partial update atomic.
func buildUpdate(table string, fields []models.UpdateField, id int64, returning string) (string, []any, error) {
	if len(fields) == 0 {
		return "", nil, repositories.ErrEmptyUpdate
	}

	var b strings.Builder
	args := make([]any, 0, len(fields)+1)

	b.WriteString("UPDATE ")
	b.WriteString(table)
	b.WriteString(" SET ")
	for i, f := range fields {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%s = $%d", f.Column, i+1)
		args = append(args, f.Value)
	}

	args = append(args, id)
	fmt.Fprintf(&b, " WHERE id = $%d", len(args))

	b.WriteString(" RETURNING ")
	b.WriteString(returning)

	return b.String(), args, nil
}

// isUniqueViolation reports whether err is a PostgreSQL unique-constraint
// failure (SQLSTATE 23505).
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

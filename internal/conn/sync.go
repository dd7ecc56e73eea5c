package conn

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/roach88/prestoql/internal/exprir"
)

// Column describes one column of a synced table: its native Presto type
// name plus the base type the rewriter's zone-shift eligibility check
// consumes.
type Column struct {
	Name       string
	NativeType string
	Base       exprir.BaseType
}

// Schemas enumerates the schemas of a catalog.
func Schemas(ctx context.Context, db *sql.DB, catalog string) ([]string, error) {
	return stringColumn(ctx, db, fmt.Sprintf("SHOW SCHEMAS FROM %s", quoteIdent(catalog)))
}

// Tables enumerates the tables of a schema.
func Tables(ctx context.Context, db *sql.DB, catalog, schema string) ([]string, error) {
	return stringColumn(ctx, db,
		fmt.Sprintf("SHOW TABLES FROM %s.%s", quoteIdent(catalog), quoteIdent(schema)))
}

// Describe enumerates the columns of a table with their native types.
func Describe(ctx context.Context, db *sql.DB, catalog, schema, table string) ([]Column, error) {
	query := fmt.Sprintf("DESCRIBE %s.%s.%s",
		quoteIdent(catalog), quoteIdent(schema), quoteIdent(table))
	rows, err := db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("describe %s.%s: %w", schema, table, err)
	}
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("describe %s.%s: %w", schema, table, err)
	}
	// DESCRIBE returns name, type, extra, comment; scan the first two and
	// discard the rest.
	scratch := make([]any, len(cols))
	var result []Column
	for rows.Next() {
		var name, nativeType string
		scratch[0], scratch[1] = &name, &nativeType
		for i := 2; i < len(scratch); i++ {
			scratch[i] = new(sql.RawBytes)
		}
		if err := rows.Scan(scratch...); err != nil {
			return nil, fmt.Errorf("describe %s.%s: %w", schema, table, err)
		}
		result = append(result, Column{
			Name:       name,
			NativeType: nativeType,
			Base:       exprir.BaseTypeForName(nativeType),
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("describe %s.%s: %w", schema, table, err)
	}
	return result, nil
}

// Access is the outcome of a select-privilege probe. An explicit tri-state
// so callers branch on the result, not on error control flow.
type Access int

const (
	// AccessUnknown means the probe itself failed for a reason other
	// than privileges (connection loss, bad identifier).
	AccessUnknown Access = iota

	// AccessGranted means a zero-row select succeeded.
	AccessGranted

	// AccessDenied means the engine refused the select.
	AccessDenied
)

// ProbeSelect checks select privilege on a table with a zero-row select.
//
// Permission refusals map to AccessDenied with a nil error; everything
// else maps to AccessUnknown with the underlying error.
func ProbeSelect(ctx context.Context, db *sql.DB, catalog, schema, table string) (Access, error) {
	query := fmt.Sprintf("SELECT * FROM %s.%s.%s LIMIT 0",
		quoteIdent(catalog), quoteIdent(schema), quoteIdent(table))
	rows, err := db.QueryContext(ctx, query)
	if err != nil {
		if isPermissionError(err) {
			return AccessDenied, nil
		}
		return AccessUnknown, fmt.Errorf("probe %s.%s: %w", schema, table, err)
	}
	defer rows.Close()
	return AccessGranted, nil
}

// isPermissionError recognizes the engine's access-control refusals by
// message, since the driver exposes no structured error code for them.
func isPermissionError(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "access denied") ||
		strings.Contains(msg, "permission denied") ||
		strings.Contains(msg, "cannot select from")
}

func stringColumn(ctx context.Context, db *sql.DB, query string) ([]string, error) {
	rows, err := db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query %q: %w", query, err)
	}
	defer rows.Close()

	var result []string
	for rows.Next() {
		var s string
		if err := rows.Scan(&s); err != nil {
			return nil, fmt.Errorf("scan %q: %w", query, err)
		}
		result = append(result, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate %q: %w", query, err)
	}
	return result, nil
}

// quoteIdent double-quotes an identifier, doubling embedded quotes.
func quoteIdent(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}

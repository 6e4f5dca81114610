package source

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresOption configures the Postgres resolver.
type PostgresOption func(*postgresOptions)

type postgresOptions struct {
	table string
}

// WithTable sets the translations table name.
// Default: "translations".
func WithTable(table string) PostgresOption {
	return func(o *postgresOptions) {
		o.table = table
	}
}

// Postgres returns a resolver reading namespace fragments from a
// translations table with (locale, namespace, key, value) columns. Keys
// are dotted paths and get expanded back into a nested fragment, so a
// row ("buttons.save", "Save") resolves under "buttons" -> "save".
func Postgres(pool *pgxpool.Pool, namespace string, opts ...PostgresOption) func(ctx context.Context, locale string) (map[string]any, error) {
	o := &postgresOptions{table: "translations"}
	for _, opt := range opts {
		opt(o)
	}

	query := fmt.Sprintf(
		`SELECT key, value FROM %s WHERE locale = $1 AND namespace = $2`,
		o.table,
	)

	return func(ctx context.Context, locale string) (map[string]any, error) {
		rows, err := pool.Query(ctx, query, locale, namespace)
		if err != nil {
			return nil, fmt.Errorf("source: querying translations: %w", err)
		}
		defer rows.Close()

		frag := make(map[string]any)
		for rows.Next() {
			var key, value string
			if err := rows.Scan(&key, &value); err != nil {
				return nil, fmt.Errorf("source: scanning translation row: %w", err)
			}
			expandKey(frag, key, value)
		}
		if err := rows.Err(); err != nil {
			return nil, fmt.Errorf("source: reading translation rows: %w", err)
		}

		return frag, nil
	}
}

// expandKey inserts a dotted key into a nested fragment, creating
// intermediate maps as needed. A non-map intermediate is replaced, last
// write wins.
func expandKey(frag map[string]any, key, value string) {
	segments := strings.Split(key, ".")

	current := frag
	for _, seg := range segments[:len(segments)-1] {
		next, ok := current[seg].(map[string]any)
		if !ok {
			next = make(map[string]any)
			current[seg] = next
		}
		current = next
	}

	current[segments[len(segments)-1]] = value
}

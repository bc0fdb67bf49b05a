package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"billingapi/internal/repository"
)

type scanner interface {
	Scan(dest ...any) error
}

// table is a database/sql implementation of repository.Repository[T] for one
// flat table. Table and column names are compile-time constants; every value
// goes through a placeholder.
type table[T any] struct {
	db      *sql.DB
	name    string
	key     string
	columns []string // writable columns, key first
	orderBy string
	search  []string
	values  func(*T) []any            // values for columns, same order
	scan    func(scanner) (*T, error) // scans columns followed by created_at
}

func (t *table[T]) selectList() string {
	return strings.Join(t.columns, ", ") + ", created_at"
}

// FindByID fetches a single row by its key.
func (t *table[T]) FindByID(ctx context.Context, id string) (*T, error) {
	return t.findBy(ctx, t.key, id)
}

func (t *table[T]) findBy(ctx context.Context, column, value string) (*T, error) {
	q := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1`, t.selectList(), t.name, column)
	return t.scan(t.db.QueryRowContext(ctx, q, value))
}

// List returns rows in stored order using LIMIT/OFFSET. A zero limit returns every row.
func (t *table[T]) List(ctx context.Context, pq repository.PageQuery) ([]T, error) {
	q := fmt.Sprintf(`SELECT %s FROM %s ORDER BY %s`, t.selectList(), t.name, t.orderBy)
	if pq.Limit <= 0 {
		return t.query(ctx, q)
	}
	return t.query(ctx, q+` LIMIT $1 OFFSET $2`, pq.Limit, pq.Offset)
}

// Count returns the number of rows in the table.
func (t *table[T]) Count(ctx context.Context) (int, error) {
	var total int
	q := fmt.Sprintf(`SELECT COUNT(*) FROM %s`, t.name)
	if err := t.db.QueryRowContext(ctx, q).Scan(&total); err != nil {
		return 0, err
	}
	return total, nil
}

// Search matches text as a case-insensitive substring of any search column.
func (t *table[T]) Search(ctx context.Context, text string) ([]T, error) {
	conds := make([]string, len(t.search))
	for i, c := range t.search {
		conds[i] = c + ` ILIKE $1`
	}
	q := fmt.Sprintf(`SELECT %s FROM %s WHERE %s ORDER BY %s`,
		t.selectList(), t.name, strings.Join(conds, " OR "), t.orderBy)
	return t.query(ctx, q, likePattern(text))
}

// Create inserts a row and returns it as stored.
func (t *table[T]) Create(ctx context.Context, rec *T) (*T, error) {
	ph := make([]string, len(t.columns))
	for i := range t.columns {
		ph[i] = fmt.Sprintf("$%d", i+1)
	}
	q := fmt.Sprintf(`INSERT INTO %s (%s) VALUES (%s) RETURNING %s`,
		t.name, strings.Join(t.columns, ", "), strings.Join(ph, ", "), t.selectList())
	return t.scan(t.db.QueryRowContext(ctx, q, t.values(rec)...))
}

// Update rewrites every non-key column. It returns sql.ErrNoRows if the key does not exist.
func (t *table[T]) Update(ctx context.Context, rec *T) (*T, error) {
	vals := t.values(rec)
	sets := make([]string, 0, len(t.columns)-1)
	args := make([]any, 0, len(vals))
	for i, c := range t.columns[1:] {
		sets = append(sets, fmt.Sprintf("%s = $%d", c, i+1))
		args = append(args, vals[i+1])
	}
	args = append(args, vals[0])
	q := fmt.Sprintf(`UPDATE %s SET %s WHERE %s = $%d RETURNING %s`,
		t.name, strings.Join(sets, ", "), t.key, len(args), t.selectList())
	return t.scan(t.db.QueryRowContext(ctx, q, args...))
}

// Delete removes a row by key. It returns sql.ErrNoRows if nothing was deleted.
func (t *table[T]) Delete(ctx context.Context, id string) error {
	q := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, t.name, t.key)
	res, err := t.db.ExecContext(ctx, q, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func (t *table[T]) query(ctx context.Context, q string, args ...any) ([]T, error) {
	rows, err := t.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]T, 0)
	for rows.Next() {
		rec, err := t.scan(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *rec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// likePattern wraps text for a substring ILIKE match, escaping wildcards.
func likePattern(text string) string {
	return "%" + likeEscaper.Replace(text) + "%"
}

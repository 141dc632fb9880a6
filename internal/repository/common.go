package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"tourism-reservation/internal/model"
	apperrors "tourism-reservation/pkg/app_errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const (
	defaultListLimit = 100
	maxListLimit     = 500
)

// Querier is satisfied by both *pgxpool.Pool and pgx.Tx, so transactional
// repository methods can run inside or outside a transaction.
type Querier interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// translateError maps storage errors onto the application taxonomy.
// notFound is returned for pgx.ErrNoRows; integrity and data exceptions
// become ErrInvalidInput wrapping the original error.
func translateError(err error, notFound error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return notFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		// class 22: data exception, class 23: integrity constraint violation
		if strings.HasPrefix(pgErr.Code, "22") || strings.HasPrefix(pgErr.Code, "23") {
			return fmt.Errorf("%w: %s", apperrors.ErrInvalidInput, pgErr.Message)
		}
	}
	return err
}

// setBuilder collects "column = $n" fragments for partial updates.
type setBuilder struct {
	sets []string
	args []any
}

func (b *setBuilder) add(column string, value any) {
	b.args = append(b.args, value)
	b.sets = append(b.sets, fmt.Sprintf("%s = $%d", column, len(b.args)))
}

func (b *setBuilder) addRaw(fragment string) {
	b.sets = append(b.sets, fragment)
}

func (b *setBuilder) empty() bool {
	return len(b.sets) == 0
}

// build appends updated_at and the id predicate and returns the statement.
func (b *setBuilder) build(table string, id int, returning string) (string, []any) {
	b.add("updated_at", time.Now().UTC())
	b.args = append(b.args, id)

	query := fmt.Sprintf(`
		UPDATE %s
		SET %s
		WHERE id = $%d
		RETURNING %s
	`, table, strings.Join(b.sets, ", "), len(b.args), returning)

	return query, b.args
}

// whereBuilder collects AND-ed predicates for filtered listings.
type whereBuilder struct {
	conds []string
	args  []any
}

// add appends cond after replacing every "?" with the next placeholder.
func (w *whereBuilder) add(cond string, value any) {
	w.args = append(w.args, value)
	w.conds = append(w.conds, strings.ReplaceAll(cond, "?", fmt.Sprintf("$%d", len(w.args))))
}

func (w *whereBuilder) addRaw(cond string) {
	w.conds = append(w.conds, cond)
}

func (w *whereBuilder) clause() string {
	if len(w.conds) == 0 {
		return ""
	}
	return "WHERE " + strings.Join(w.conds, " AND ")
}

// page appends LIMIT/OFFSET placeholders.
func (w *whereBuilder) page(limit, offset int) string {
	if limit <= 0 {
		limit = defaultListLimit
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}
	if offset < 0 {
		offset = 0
	}
	w.args = append(w.args, limit, offset)
	return fmt.Sprintf("LIMIT $%d OFFSET $%d", len(w.args)-1, len(w.args))
}

func dateArg(d *model.Date) any {
	if d == nil {
		return nil
	}
	return d.Time
}

func dateFromScan(t *time.Time) *model.Date {
	if t == nil {
		return nil
	}
	d := model.NewDate(*t)
	return &d
}

func jsonArg(raw []byte, fallback string) []byte {
	if len(raw) == 0 || string(raw) == "null" {
		return []byte(fallback)
	}
	return raw
}

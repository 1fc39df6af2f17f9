package postgres

import (
	"context"
	"slices"

	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	ierr "github.com/listingdesk/backoffice/internal/errors"
	"github.com/listingdesk/backoffice/internal/logger"
	"github.com/listingdesk/backoffice/internal/postgres"
	"github.com/listingdesk/backoffice/internal/query"
	"github.com/listingdesk/backoffice/internal/types"
	"github.com/samber/lo"
)

// baseColumns are the columns of types.BaseModel
var baseColumns = []string{
	"id", "owner_user_id", "tenant_id", "created_by", "updated_by",
	"created_at", "updated_at", "active", "deleted",
}

// Table describes where a record shape is stored
type Table struct {
	Entity  string
	Name    string
	Columns []string
}

// AllColumns returns the base columns followed by the shape's own columns
func (t Table) AllColumns() []string {
	return append(slices.Clone(baseColumns), t.Columns...)
}

// RecordStore implements query.Store by rendering ent selectors against a table
type RecordStore[T types.Record] struct {
	db     *postgres.DB
	table  Table
	logger *logger.Logger
}

func NewRecordStore[T types.Record](db *postgres.DB, table Table, logger *logger.Logger) *RecordStore[T] {
	return &RecordStore[T]{db: db, table: table, logger: logger}
}

func (s *RecordStore[T]) Query() query.Query[T] {
	return &recordQuery[T]{store: s}
}

type recordQuery[T types.Record] struct {
	store  *RecordStore[T]
	preds  []query.Predicate[T]
	orders []query.Ordering[T]
}

func (q *recordQuery[T]) Where(p query.Predicate[T]) query.Query[T] {
	return &recordQuery[T]{
		store:  q.store,
		preds:  append(slices.Clone(q.preds), p),
		orders: q.orders,
	}
}

func (q *recordQuery[T]) OrderBy(orders ...query.Ordering[T]) query.Query[T] {
	return &recordQuery[T]{
		store:  q.store,
		preds:  q.preds,
		orders: append(slices.Clone(q.orders), orders...),
	}
}

func (q *recordQuery[T]) Count(ctx context.Context) (int, error) {
	sel := q.selector(sql.Count("*"))
	stmt, args := sel.Query()

	var count int
	if err := q.store.db.GetQuerier(ctx).GetContext(ctx, &count, stmt, args...); err != nil {
		return 0, ierr.WithError(err).
			WithHintf("Failed to count %s records", q.store.table.Entity).
			Mark(ierr.ErrDatabase)
	}
	return count, nil
}

func (q *recordQuery[T]) Fetch(ctx context.Context, window types.PageWindow) ([]T, error) {
	sel := q.selector(q.store.table.AllColumns()...)
	for _, o := range q.orders {
		if o.Descending {
			sel.OrderBy(sql.Desc(o.Column))
		} else {
			sel.OrderBy(sql.Asc(o.Column))
		}
	}
	// ties fall back to the identifier so pages are stable
	sel.OrderBy(sql.Asc(query.ColumnID))
	sel.Offset(window.Skip).Limit(window.Take)

	stmt, args := sel.Query()

	var items []T
	if err := q.store.db.GetQuerier(ctx).SelectContext(ctx, &items, stmt, args...); err != nil {
		return nil, ierr.WithError(err).
			WithHintf("Failed to list %s records", q.store.table.Entity).
			Mark(ierr.ErrDatabase)
	}
	return items, nil
}

func (q *recordQuery[T]) selector(columns ...string) *sql.Selector {
	sel := sql.Dialect(dialect.Postgres).
		Select(columns...).
		From(sql.Table(q.store.table.Name))

	if len(q.preds) > 0 {
		sel.Where(sql.And(lo.Map(q.preds, func(p query.Predicate[T], _ int) *sql.Predicate {
			return p.SQL()
		})...))
	}
	return sel
}

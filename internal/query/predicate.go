package query

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"github.com/listingdesk/backoffice/internal/types"
)

// Predicate is a filter over records of type T. Every predicate carries both
// renderings: SQL for database backed stores and Match for in-memory ones.
// The two must agree.
type Predicate[T any] struct {
	// SQL returns a fresh ent predicate on each call since rendered
	// predicates keep builder state.
	SQL   func() *sql.Predicate
	Match func(T) bool
}

// And returns a predicate satisfied when every given predicate is
func And[T any](preds ...Predicate[T]) Predicate[T] {
	if len(preds) == 1 {
		return preds[0]
	}
	return Predicate[T]{
		SQL: func() *sql.Predicate {
			parts := make([]*sql.Predicate, 0, len(preds))
			for _, p := range preds {
				parts = append(parts, p.SQL())
			}
			return sql.And(parts...)
		},
		Match: func(v T) bool {
			for _, p := range preds {
				if !p.Match(v) {
					return false
				}
			}
			return true
		},
	}
}

// Or returns a predicate satisfied when any given predicate is
func Or[T any](preds ...Predicate[T]) Predicate[T] {
	if len(preds) == 1 {
		return preds[0]
	}
	return Predicate[T]{
		SQL: func() *sql.Predicate {
			parts := make([]*sql.Predicate, 0, len(preds))
			for _, p := range preds {
				parts = append(parts, p.SQL())
			}
			return sql.Or(parts...)
		},
		Match: func(v T) bool {
			for _, p := range preds {
				if p.Match(v) {
					return true
				}
			}
			return false
		},
	}
}

// Ordering sorts records by one column. Compare orders two records ascending;
// Descending flips it.
type Ordering[T any] struct {
	Column     string
	Descending bool
	Compare    func(a, b T) int
}

// Asc returns the ascending ordering on column
func Asc[T any](column string, cmp func(a, b T) int) Ordering[T] {
	return Ordering[T]{Column: column, Compare: cmp}
}

// Desc returns the descending ordering on column
func Desc[T any](column string, cmp func(a, b T) int) Ordering[T] {
	return Ordering[T]{Column: column, Descending: true, Compare: cmp}
}

// Query is an immutable, lazily evaluated read over one record shape.
// Where and OrderBy return a new query and leave the receiver untouched.
type Query[T any] interface {
	Where(p Predicate[T]) Query[T]
	OrderBy(orders ...Ordering[T]) Query[T]
	Count(ctx context.Context) (int, error)
	Fetch(ctx context.Context, window types.PageWindow) ([]T, error)
}

// Store hands out fresh queries over a record shape
type Store[T any] interface {
	Query() Query[T]
}

package query

import (
	"sort"
	"strconv"
	"strings"
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	ierr "github.com/listingdesk/backoffice/internal/errors"
	"github.com/listingdesk/backoffice/internal/types"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

// FieldBuilder turns an operator and a raw literal into a predicate
type FieldBuilder[T any] func(op Operator, literal string) (Predicate[T], error)

// Field binds a filterable name to its builder
type Field[T any] struct {
	Name  string
	Build FieldBuilder[T]
}

// FieldSet is the strategy table of a record shape. Names match case-insensitively.
type FieldSet[T any] struct {
	fields map[string]FieldBuilder[T]
}

func NewFieldSet[T any](fields ...Field[T]) *FieldSet[T] {
	set := &FieldSet[T]{fields: make(map[string]FieldBuilder[T], len(fields))}
	for _, f := range fields {
		set.fields[strings.ToLower(f.Name)] = f.Build
	}
	return set
}

// Build returns the predicate for a parsed condition
func (s *FieldSet[T]) Build(c Condition) (Predicate[T], error) {
	build, ok := s.fields[strings.ToLower(c.Field)]
	if !ok {
		return Predicate[T]{}, ierr.NewErrorf("unknown filter field %q", c.Field).
			WithHintf("%q cannot be filtered on", c.Field).
			Mark(ierr.ErrValidation)
	}
	return build(c.Operator, c.Value)
}

// Names lists the filterable field names
func (s *FieldSet[T]) Names() []string {
	names := lo.Keys(s.fields)
	sort.Strings(names)
	return names
}

var (
	textOperators     = []Operator{OpEq, OpNe, OpContains, OpStartsWith, OpEndsWith}
	orderedOperators  = []Operator{OpEq, OpNe, OpGt, OpGe, OpLt, OpLe}
	equalityOperators = []Operator{OpEq, OpNe}
)

// String is a text column. It is the only kind that accepts the function operators,
// which compare case-sensitively.
func String[T any](name, column string, get func(T) string) Field[T] {
	return Field[T]{Name: name, Build: func(op Operator, literal string) (Predicate[T], error) {
		if err := checkOperator(name, op, textOperators); err != nil {
			return Predicate[T]{}, err
		}
		switch op {
		case OpContains:
			return Predicate[T]{
				SQL:   func() *sql.Predicate { return sql.Contains(column, literal) },
				Match: func(v T) bool { return strings.Contains(get(v), literal) },
			}, nil
		case OpStartsWith:
			return Predicate[T]{
				SQL:   func() *sql.Predicate { return sql.HasPrefix(column, literal) },
				Match: func(v T) bool { return strings.HasPrefix(get(v), literal) },
			}, nil
		case OpEndsWith:
			return Predicate[T]{
				SQL:   func() *sql.Predicate { return sql.HasSuffix(column, literal) },
				Match: func(v T) bool { return strings.HasSuffix(get(v), literal) },
			}, nil
		}
		return compare(column, op, literal, strings.Compare, present(get)), nil
	}}
}

// Int is an integer column
func Int[T any](name, column string, get func(T) int) Field[T] {
	return Field[T]{Name: name, Build: func(op Operator, literal string) (Predicate[T], error) {
		if err := checkOperator(name, op, orderedOperators); err != nil {
			return Predicate[T]{}, err
		}
		n, err := strconv.Atoi(literal)
		if err != nil {
			return Predicate[T]{}, invalidLiteral(name, literal, err)
		}
		return compare(column, op, n, cmpInt, present(get)), nil
	}}
}

// Bool is a flag column
func Bool[T any](name, column string, get func(T) bool) Field[T] {
	return Field[T]{Name: name, Build: func(op Operator, literal string) (Predicate[T], error) {
		if err := checkOperator(name, op, equalityOperators); err != nil {
			return Predicate[T]{}, err
		}
		b, err := strconv.ParseBool(literal)
		if err != nil {
			return Predicate[T]{}, invalidLiteral(name, literal, err)
		}
		return compare(column, op, b, cmpBool, present(get)), nil
	}}
}

// Time is a timestamp column
func Time[T any](name, column string, get func(T) time.Time) Field[T] {
	return Field[T]{Name: name, Build: func(op Operator, literal string) (Predicate[T], error) {
		if err := checkOperator(name, op, orderedOperators); err != nil {
			return Predicate[T]{}, err
		}
		t, err := types.ParseTimestamp(literal)
		if err != nil {
			return Predicate[T]{}, err
		}
		return compare(column, op, t, time.Time.Compare, present(get)), nil
	}}
}

// Identifier is a nullable uuid column. A null identifier matches no condition.
func Identifier[T any](name, column string, get func(T) *uuid.UUID) Field[T] {
	return Field[T]{Name: name, Build: func(op Operator, literal string) (Predicate[T], error) {
		if err := checkOperator(name, op, equalityOperators); err != nil {
			return Predicate[T]{}, err
		}
		id, err := types.ParseIdentifier(literal)
		if err != nil {
			return Predicate[T]{}, err
		}
		return compare(column, op, id, cmpIdentifier, nullable(get)), nil
	}}
}

// Decimal is a numeric column
func Decimal[T any](name, column string, get func(T) decimal.Decimal) Field[T] {
	return Field[T]{Name: name, Build: func(op Operator, literal string) (Predicate[T], error) {
		if err := checkOperator(name, op, orderedOperators); err != nil {
			return Predicate[T]{}, err
		}
		d, err := decimal.NewFromString(literal)
		if err != nil {
			return Predicate[T]{}, invalidLiteral(name, literal, err)
		}
		return compare(column, op, d, decimal.Decimal.Cmp, present(get)), nil
	}}
}

// Equal matches records whose column equals v
func Equal[T any, V comparable](column string, v V, get func(T) V) Predicate[T] {
	return compare(column, OpEq, v, func(a, b V) int {
		if a == b {
			return 0
		}
		return 1
	}, present(get))
}

// EqualID matches records whose nullable identifier column equals id
func EqualID[T any](column string, id uuid.UUID, get func(T) *uuid.UUID) Predicate[T] {
	return compare(column, OpEq, id, cmpIdentifier, nullable(get))
}

// AtLeast matches records whose column is >= v
func AtLeast[T, V any](column string, v V, cmp func(a, b V) int, get func(T) V) Predicate[T] {
	return compare(column, OpGe, v, cmp, present(get))
}

// AtMost matches records whose column is <= v
func AtMost[T, V any](column string, v V, cmp func(a, b V) int, get func(T) V) Predicate[T] {
	return compare(column, OpLe, v, cmp, present(get))
}

// compare builds an ordered comparison. get reports false for a null column,
// which like in SQL satisfies no comparison.
func compare[T, V any](column string, op Operator, v V, cmp func(a, b V) int, get func(T) (V, bool)) Predicate[T] {
	var (
		render func(string, any) *sql.Predicate
		holds  func(int) bool
	)
	switch op {
	case OpNe:
		render, holds = sql.NEQ, func(c int) bool { return c != 0 }
	case OpGt:
		render, holds = sql.GT, func(c int) bool { return c > 0 }
	case OpGe:
		render, holds = sql.GTE, func(c int) bool { return c >= 0 }
	case OpLt:
		render, holds = sql.LT, func(c int) bool { return c < 0 }
	case OpLe:
		render, holds = sql.LTE, func(c int) bool { return c <= 0 }
	default:
		render, holds = sql.EQ, func(c int) bool { return c == 0 }
	}

	return Predicate[T]{
		SQL: func() *sql.Predicate { return render(column, v) },
		Match: func(rec T) bool {
			got, ok := get(rec)
			return ok && holds(cmp(got, v))
		},
	}
}

func present[T, V any](get func(T) V) func(T) (V, bool) {
	return func(rec T) (V, bool) { return get(rec), true }
}

func nullable[T, V any](get func(T) *V) func(T) (V, bool) {
	return func(rec T) (V, bool) {
		p := get(rec)
		if p == nil {
			var zero V
			return zero, false
		}
		return *p, true
	}
}

func checkOperator(field string, op Operator, allowed []Operator) error {
	if lo.Contains(allowed, op) {
		return nil
	}
	return ierr.NewErrorf("operator %s is not supported on field %q", op, field).
		WithHintf("%q cannot be compared with %s", field, op).
		Mark(ierr.ErrValidation)
}

func invalidLiteral(field, literal string, err error) error {
	return ierr.WithError(err).
		WithMessagef("invalid literal %q for field %q", literal, field).
		WithHintf("%q is not a valid value for %q", literal, field).
		Mark(ierr.ErrValidation)
}

func cmpInt(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

func cmpBool(a, b bool) int {
	if a == b {
		return 0
	}
	if !a {
		return -1
	}
	return 1
}

func cmpIdentifier(a, b uuid.UUID) int {
	return strings.Compare(a.String(), b.String())
}

// RecordFields are the filterable columns every record shape shares
func RecordFields[T types.Record]() []Field[T] {
	return []Field[T]{
		Identifier("Id", ColumnID, func(r T) *uuid.UUID { return lo.ToPtr(r.Identity()) }),
		Identifier("OwnerUserId", ColumnOwnerUserID, func(r T) *uuid.UUID { return r.OwnerIdentity() }),
		Identifier("TenantId", ColumnTenantID, func(r T) *uuid.UUID { return r.TenantIdentity() }),
		Identifier("CreatedBy", "created_by", func(r T) *uuid.UUID { return lo.ToPtr(r.CreatorIdentity()) }),
		Time("CreatedAt", ColumnCreatedAt, func(r T) time.Time { return r.CreatedTime() }),
	}
}

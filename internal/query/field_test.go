package query

import (
	"testing"
	"time"

	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	ierr "github.com/listingdesk/backoffice/internal/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type listing struct {
	Name     string
	Rank     int
	Featured bool
	OpensAt  time.Time
	Parent   *uuid.UUID
	Price    decimal.Decimal
}

var listingFields = NewFieldSet(
	String("Name", "name", func(l listing) string { return l.Name }),
	Int("Rank", "rank", func(l listing) int { return l.Rank }),
	Bool("Featured", "featured", func(l listing) bool { return l.Featured }),
	Time("OpensAt", "opens_at", func(l listing) time.Time { return l.OpensAt }),
	Identifier("ParentId", "parent_id", func(l listing) *uuid.UUID { return l.Parent }),
	Decimal("Price", "price", func(l listing) decimal.Decimal { return l.Price }),
)

func render(p *sql.Predicate) (string, []any) {
	return sql.Dialect(dialect.Postgres).
		Select("*").
		From(sql.Table("listings")).
		Where(p).
		Query()
}

func TestFieldSetMatch(t *testing.T) {
	parent := uuid.New()
	opens := time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)
	rec := listing{
		Name:     "Acme Plumbing",
		Rank:     3,
		Featured: true,
		OpensAt:  opens,
		Parent:   &parent,
		Price:    decimal.RequireFromString("19.90"),
	}

	tests := []struct {
		cond Condition
		want bool
	}{
		{Condition{"Name", OpEq, "Acme Plumbing"}, true},
		{Condition{"name", OpEq, "Acme Plumbing"}, true},
		{Condition{"NAME", OpNe, "Acme Plumbing"}, false},
		{Condition{"Name", OpContains, "Plumb"}, true},
		{Condition{"Name", OpContains, "plumb"}, false},
		{Condition{"Name", OpStartsWith, "Acme"}, true},
		{Condition{"Name", OpEndsWith, "ing"}, true},
		{Condition{"Rank", OpEq, "3"}, true},
		{Condition{"Rank", OpGt, "3"}, false},
		{Condition{"Rank", OpGe, "3"}, true},
		{Condition{"Rank", OpLt, "4"}, true},
		{Condition{"Rank", OpLe, "2"}, false},
		{Condition{"Featured", OpEq, "true"}, true},
		{Condition{"Featured", OpNe, "1"}, false},
		{Condition{"OpensAt", OpGe, "2024-05-01"}, true},
		{Condition{"OpensAt", OpLt, "2024-05-01T09:00:00Z"}, false},
		{Condition{"ParentId", OpEq, parent.String()}, true},
		{Condition{"ParentId", OpNe, parent.String()}, false},
		{Condition{"Price", OpGt, "19.5"}, true},
		{Condition{"Price", OpEq, "19.9"}, true},
	}

	for _, tt := range tests {
		t.Run(string(tt.cond.Operator)+"_"+tt.cond.Field+"_"+tt.cond.Value, func(t *testing.T) {
			p, err := listingFields.Build(tt.cond)
			require.NoError(t, err)
			assert.Equal(t, tt.want, p.Match(rec))
		})
	}
}

func TestNullIdentifierMatchesNothing(t *testing.T) {
	rec := listing{}
	for _, op := range []Operator{OpEq, OpNe} {
		p, err := listingFields.Build(Condition{"ParentId", op, uuid.NewString()})
		require.NoError(t, err)
		assert.False(t, p.Match(rec), op)
	}
}

func TestFieldSetBuildFailures(t *testing.T) {
	tests := []struct {
		name string
		cond Condition
		is   func(error) bool
	}{
		{"unknown_field", Condition{"Colour", OpEq, "red"}, ierr.IsValidation},
		{"text_op_on_int", Condition{"Rank", OpContains, "3"}, ierr.IsValidation},
		{"ordered_op_on_string", Condition{"Name", OpGt, "A"}, ierr.IsValidation},
		{"ordered_op_on_bool", Condition{"Featured", OpLt, "true"}, ierr.IsValidation},
		{"bad_int", Condition{"Rank", OpEq, "three"}, ierr.IsValidation},
		{"bad_bool", Condition{"Featured", OpEq, "yes please"}, ierr.IsValidation},
		{"bad_time", Condition{"OpensAt", OpGt, "soon"}, ierr.IsValidation},
		{"bad_identifier", Condition{"ParentId", OpEq, "42"}, ierr.IsInvalidIdentifier},
		{"bad_decimal", Condition{"Price", OpEq, "cheap"}, ierr.IsValidation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := listingFields.Build(tt.cond)
			require.Error(t, err)
			assert.True(t, tt.is(err), "unexpected error class: %v", err)
		})
	}
}

func TestFieldSQLRendering(t *testing.T) {
	p, err := listingFields.Build(Condition{"Name", OpContains, "Acme"})
	require.NoError(t, err)
	query, args := render(p.SQL())
	assert.Contains(t, query, `"name" LIKE $1`)
	assert.Equal(t, []any{"%Acme%"}, args)

	p, err = listingFields.Build(Condition{"Rank", OpGe, "2"})
	require.NoError(t, err)
	query, args = render(p.SQL())
	assert.Contains(t, query, `"rank" >= $1`)
	assert.Equal(t, []any{2}, args)

	p, err = listingFields.Build(Condition{"Name", OpStartsWith, "Ac"})
	require.NoError(t, err)
	_, args = render(p.SQL())
	assert.Equal(t, []any{"Ac%"}, args)
}

func TestPredicateSQLIsFreshPerCall(t *testing.T) {
	p, err := listingFields.Build(Condition{"Rank", OpEq, "7"})
	require.NoError(t, err)

	first, firstArgs := render(p.SQL())
	second, secondArgs := render(p.SQL())
	assert.Equal(t, first, second)
	assert.Equal(t, firstArgs, secondArgs)
}

func TestAndOr(t *testing.T) {
	rank := func(n string) Predicate[listing] {
		p, err := listingFields.Build(Condition{"Rank", OpEq, n})
		require.NoError(t, err)
		return p
	}
	rec := listing{Rank: 2}

	assert.True(t, Or(rank("1"), rank("2")).Match(rec))
	assert.False(t, And(rank("1"), rank("2")).Match(rec))
	assert.True(t, And(rank("2")).Match(rec))

	query, args := render(Or(rank("1"), rank("2")).SQL())
	assert.Contains(t, query, " OR ")
	assert.Len(t, args, 2)
}

func TestFieldSetNames(t *testing.T) {
	assert.Equal(t, []string{"featured", "name", "opensat", "parentid", "price", "rank"}, listingFields.Names())
}

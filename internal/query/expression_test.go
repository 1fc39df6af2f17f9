package query

import (
	"testing"

	ierr "github.com/listingdesk/backoffice/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplit(t *testing.T) {
	tests := []struct {
		name       string
		raw        string
		parts      []string
		connective Connective
	}{
		{"single", "Name eq 'Acme'", []string{"Name eq 'Acme'"}, ConnectiveNone},
		{"and", "Name eq 'Acme' and Status eq 1", []string{"Name eq 'Acme'", "Status eq 1"}, ConnectiveAnd},
		{"or", "City eq 'Oslo' or City eq 'Bergen'", []string{"City eq 'Oslo'", "City eq 'Bergen'"}, ConnectiveOr},
		{"and_wins_over_or", "A eq 1 or B eq 2 and C eq 3", []string{"A eq 1 or B eq 2", "C eq 3"}, ConnectiveAnd},
		{"separator_needs_spaces", "Brand eq 'Sandor'", []string{"Brand eq 'Sandor'"}, ConnectiveNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parts, connective := Split(tt.raw)
			assert.Equal(t, tt.parts, parts)
			assert.Equal(t, tt.connective, connective)
		})
	}
}

func TestParseCondition(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want Condition
	}{
		{"eq_quoted", "Name eq 'Acme'", Condition{"Name", OpEq, "Acme"}},
		{"ne_number", "Status ne 2", Condition{"Status", OpNe, "2"}},
		{"gt", "Rating gt 3", Condition{"Rating", OpGt, "3"}},
		{"ge", "Rating ge 3", Condition{"Rating", OpGe, "3"}},
		{"lt", "Rating lt 3", Condition{"Rating", OpLt, "3"}},
		{"le", "Rating le 3", Condition{"Rating", OpLe, "3"}},
		{"contains", "contains(Name,'cm')", Condition{"Name", OpContains, "cm"}},
		{"startswith_spaced", "startswith( Name , 'Ac' )", Condition{"Name", OpStartsWith, "Ac"}},
		{"endswith", "endswith(Email,'.org')", Condition{"Email", OpEndsWith, ".org"}},
		{"escaped_quote", "Name eq 'O''Brien'", Condition{"Name", OpEq, "O'Brien"}},
		{"value_with_operator_text", "Title eq 'a eq b'", Condition{"Title", OpEq, "a eq b"}},
		{"function_beats_infix", "contains(Note,'x eq y')", Condition{"Note", OpContains, "x eq y"}},
		{"value_with_comma", "contains(Title,'a,b')", Condition{"Title", OpContains, "a,b"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseCondition(tt.raw)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseConditionFailures(t *testing.T) {
	for _, raw := range []string{
		"Name",
		"Name == 'Acme'",
		"contains(Name 'Acme')",
		"contains(Name,'Acme'",
		" eq 'Acme'",
		"contains(,'Acme')",
	} {
		t.Run(raw, func(t *testing.T) {
			_, err := ParseCondition(raw)
			require.Error(t, err)
			assert.True(t, ierr.IsValidation(err))
		})
	}
}

func TestUnquote(t *testing.T) {
	assert.Equal(t, "Acme", Unquote(" 'Acme' "))
	assert.Equal(t, "42", Unquote("42"))
	assert.Equal(t, "it's", Unquote("'it''s'"))
	assert.Equal(t, "", Unquote("''"))
	assert.Equal(t, "'", Unquote("'"))
}

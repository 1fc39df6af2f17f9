package query

import (
	"strings"

	ierr "github.com/listingdesk/backoffice/internal/errors"
)

// Operator is a comparison understood by the filter grammar
type Operator string

const (
	OpEq         Operator = "eq"
	OpNe         Operator = "ne"
	OpGt         Operator = "gt"
	OpGe         Operator = "ge"
	OpLt         Operator = "lt"
	OpLe         Operator = "le"
	OpContains   Operator = "contains"
	OpStartsWith Operator = "startswith"
	OpEndsWith   Operator = "endswith"
)

// Connective is how the conditions of an expression combine
type Connective string

const (
	ConnectiveNone Connective = ""
	ConnectiveAnd  Connective = "and"
	ConnectiveOr   Connective = "or"
)

const (
	andSeparator = " and "
	orSeparator  = " or "
)

// Function style operators are scanned before infix ones. The order decides
// which operator wins when a condition mentions several.
var (
	functionOperators = []Operator{OpContains, OpStartsWith, OpEndsWith}
	infixOperators    = []Operator{OpEq, OpNe, OpGt, OpGe, OpLt, OpLe}
)

// Condition is one parsed `field op value` clause
type Condition struct {
	Field    string
	Operator Operator
	Value    string
}

// Split breaks a raw expression into its condition strings. The and separator
// is looked for first; an expression mixing both is split on and only.
func Split(raw string) ([]string, Connective) {
	switch {
	case strings.Contains(raw, andSeparator):
		return strings.Split(raw, andSeparator), ConnectiveAnd
	case strings.Contains(raw, orSeparator):
		return strings.Split(raw, orSeparator), ConnectiveOr
	default:
		return []string{raw}, ConnectiveNone
	}
}

// ParseCondition classifies a single condition. It fails when no operator is
// found or the condition is malformed.
func ParseCondition(raw string) (Condition, error) {
	for _, op := range functionOperators {
		if idx := strings.Index(raw, string(op)+"("); idx >= 0 {
			return parseFunction(raw[idx+len(op)+1:], op)
		}
	}

	for _, op := range infixOperators {
		sep := " " + string(op) + " "
		if idx := strings.Index(raw, sep); idx >= 0 {
			field := strings.TrimSpace(raw[:idx])
			if field == "" {
				return Condition{}, malformed(raw, "missing field name")
			}
			return Condition{
				Field:    field,
				Operator: op,
				Value:    Unquote(raw[idx+len(sep):]),
			}, nil
		}
	}

	return Condition{}, malformed(raw, "no operator")
}

// parseFunction reads `field,'value')` following the opening parenthesis
func parseFunction(args string, op Operator) (Condition, error) {
	end := strings.LastIndex(args, ")")
	if end < 0 {
		return Condition{}, malformed(args, "unterminated "+string(op))
	}
	args = args[:end]

	comma := strings.Index(args, ",")
	if comma < 0 {
		return Condition{}, malformed(args, string(op)+" takes a field and a value")
	}

	field := strings.TrimSpace(args[:comma])
	if field == "" {
		return Condition{}, malformed(args, "missing field name")
	}

	return Condition{
		Field:    field,
		Operator: op,
		Value:    Unquote(args[comma+1:]),
	}, nil
}

// Unquote trims a literal and strips single quotes around it, turning an
// escaped '' back into '. Unquoted literals are returned trimmed.
func Unquote(raw string) string {
	raw = strings.TrimSpace(raw)
	if len(raw) >= 2 && strings.HasPrefix(raw, "'") && strings.HasSuffix(raw, "'") {
		return strings.ReplaceAll(raw[1:len(raw)-1], "''", "'")
	}
	return raw
}

func malformed(raw, reason string) error {
	return ierr.NewErrorf("malformed filter condition %q: %s", raw, reason).
		WithHint("The filter condition could not be parsed").
		Mark(ierr.ErrValidation)
}

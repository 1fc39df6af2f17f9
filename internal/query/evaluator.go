package query

import (
	"context"
	"strings"

	ierr "github.com/listingdesk/backoffice/internal/errors"
	"github.com/listingdesk/backoffice/internal/logger"
	"github.com/listingdesk/backoffice/internal/types"
)

// Evaluator applies free-text filter expressions to queries of one record shape
type Evaluator[T any] struct {
	entity string
	fields *FieldSet[T]
	logger *logger.Logger
}

func NewEvaluator[T any](entity string, fields *FieldSet[T], log *logger.Logger) *Evaluator[T] {
	return &Evaluator[T]{entity: entity, fields: fields, logger: log}
}

// Apply narrows q by the expression raw and never fails. A condition that
// cannot be parsed or built is skipped, leaving q unfiltered by it. Under or,
// a skipped branch contributes the whole of q, so the union is q itself.
func (e *Evaluator[T]) Apply(ctx context.Context, q Query[T], raw string) Query[T] {
	if strings.TrimSpace(raw) == "" {
		return q
	}

	parts, connective := Split(raw)

	if connective == ConnectiveOr {
		branches := make([]Predicate[T], 0, len(parts))
		for _, part := range parts {
			p, err := e.build(part)
			if err != nil {
				e.drop(ctx, part, err)
				return q
			}
			branches = append(branches, p)
		}
		return q.Where(Or(branches...))
	}

	for _, part := range parts {
		p, err := e.build(part)
		if err != nil {
			e.drop(ctx, part, err)
			continue
		}
		q = q.Where(p)
	}
	return q
}

func (e *Evaluator[T]) build(raw string) (Predicate[T], error) {
	cond, err := ParseCondition(raw)
	if err != nil {
		return Predicate[T]{}, err
	}
	return e.fields.Build(cond)
}

func (e *Evaluator[T]) drop(ctx context.Context, condition string, err error) {
	droppedConditionsTotal.WithLabelValues(e.entity, ierr.Code(err)).Inc()
	e.logger.Debugw("dropping filter condition",
		"entity", e.entity,
		"condition", condition,
		"reason", ierr.Hint(err),
		"request_id", types.GetRequestID(ctx),
	)
}

package query

import (
	"context"
	"fmt"

	ierr "github.com/listingdesk/backoffice/internal/errors"
	"github.com/listingdesk/backoffice/internal/logger"
	"github.com/listingdesk/backoffice/internal/types"
	"github.com/samber/lo"
)

const (
	operationList = "list"
	operationGet  = "get"
)

// ListFilter is a list request for one record shape: the shared paging, text
// filter and scope parameters plus the shape's structured filters.
type ListFilter[T any] interface {
	GetQueryFilter() *types.QueryFilter
	// Predicates returns the structured filters. Invalid values are skipped.
	Predicates() []Predicate[T]
}

// Source describes how the engine reads one record shape
type Source[T types.Record] struct {
	Entity   string
	Store    Store[T]
	Fields   *FieldSet[T]
	Ordering []Ordering[T]
	PreSteps []PreStep
}

// ErrorReporter receives the failures that point at a broken dependency or a
// bug rather than at the request
type ErrorReporter interface {
	CaptureException(ctx context.Context, err error)
}

// Engine runs list and detail reads for one record shape
type Engine[T types.Record] struct {
	source    Source[T]
	evaluator *Evaluator[T]
	enricher  *Enricher
	reporter  ErrorReporter
	logger    *logger.Logger
}

// NewEngine builds the engine for one record shape. reporter may be nil.
func NewEngine[T types.Record](source Source[T], directory Directory, reporter ErrorReporter, log *logger.Logger) *Engine[T] {
	if len(source.Ordering) == 0 {
		source.Ordering = []Ordering[T]{NewestFirst[T]()}
	}
	log = log.With("entity", source.Entity)
	return &Engine[T]{
		source:    source,
		evaluator: NewEvaluator(source.Entity, source.Fields, log),
		enricher:  NewEnricher(directory),
		reporter:  reporter,
		logger:    log,
	}
}

func (e *Engine[T]) Entity() string {
	return e.source.Entity
}

// List returns one page of visible, in-scope records. The total count covers
// the structured filters and scope but not the free-text filter.
func (e *Engine[T]) List(ctx context.Context, filter ListFilter[T]) (resp *types.Response[types.ListData[T]]) {
	defer e.recoverPanic(ctx, operationList, func(err error) {
		resp = types.NewFailureResponse[types.ListData[T]](err)
	})

	data, err := e.list(ctx, filter)
	if err != nil {
		e.fail(ctx, operationList, err)
		return types.NewFailureResponse[types.ListData[T]](err)
	}

	queriesTotal.WithLabelValues(e.source.Entity, operationList, "success").Inc()
	return types.NewSuccessResponse(*data, "Success", fmt.Sprintf("%d records found", data.TotalCount))
}

func (e *Engine[T]) list(ctx context.Context, filter ListFilter[T]) (*types.ListData[T], error) {
	qf := filter.GetQueryFilter()
	scope := ResolveScope(ctx, qf.GetScope())

	if err := e.runPreSteps(ctx); err != nil {
		return nil, err
	}

	q := e.source.Store.Query().Where(Visible[T]())
	for _, p := range filter.Predicates() {
		q = q.Where(p)
	}
	for _, p := range ScopePredicates[T](scope) {
		q = q.Where(p)
	}
	q = q.OrderBy(e.source.Ordering...)

	total, err := q.Count(ctx)
	if err != nil {
		return nil, err
	}

	q = e.evaluator.Apply(ctx, q, qf.GetFilter())

	items, err := q.Fetch(ctx, qf.GetWindow())
	if err != nil {
		return nil, err
	}

	if err := e.enricher.Enrich(ctx, records(items)); err != nil {
		return nil, err
	}

	return &types.ListData[T]{
		TotalCount: total,
		Items:      lo.Ternary(items == nil, []T{}, items),
	}, nil
}

// Get returns the visible, in-scope record with the given identifier
func (e *Engine[T]) Get(ctx context.Context, rawID string, params types.ScopeParams) (resp *types.Response[T]) {
	defer e.recoverPanic(ctx, operationGet, func(err error) {
		resp = types.NewFailureResponse[T](err)
	})

	item, err := e.get(ctx, rawID, params)
	if err != nil {
		e.fail(ctx, operationGet, err)
		return types.NewFailureResponse[T](err)
	}

	queriesTotal.WithLabelValues(e.source.Entity, operationGet, "success").Inc()
	return types.NewSuccessResponse(item, "Success", "Record found")
}

func (e *Engine[T]) get(ctx context.Context, rawID string, params types.ScopeParams) (T, error) {
	var zero T

	scope := ResolveScope(ctx, params)

	id, err := types.ParseIdentifier(rawID)
	if err != nil {
		return zero, err
	}

	if err := e.runPreSteps(ctx); err != nil {
		return zero, err
	}

	q := e.source.Store.Query().Where(And(Visible[T](), ByID[T](id)))
	for _, p := range ScopePredicates[T](scope) {
		q = q.Where(p)
	}

	items, err := q.Fetch(ctx, types.PageWindow{Skip: 0, Take: 1})
	if err != nil {
		return zero, err
	}
	if len(items) == 0 {
		return zero, ierr.NewErrorf("%s %s not found", e.source.Entity, id).
			WithHintf("No %s found with id %s", e.source.Entity, id).
			Mark(ierr.ErrNotFound)
	}

	if err := e.enricher.Enrich(ctx, records(items)); err != nil {
		return zero, err
	}
	return items[0], nil
}

func (e *Engine[T]) runPreSteps(ctx context.Context) error {
	for _, step := range e.source.PreSteps {
		if err := step.Run(ctx); err != nil {
			return err
		}
	}
	return nil
}

func (e *Engine[T]) fail(ctx context.Context, operation string, err error) {
	code := ierr.Code(err)
	queriesTotal.WithLabelValues(e.source.Entity, operation, code).Inc()

	fields := []interface{}{
		"operation", operation,
		"code", code,
		"error", err,
		"request_id", types.GetRequestID(ctx),
		"tenant_id", types.GetTenantID(ctx),
	}
	if ierr.IsNotFound(err) || ierr.IsInvalidIdentifier(err) || ierr.IsValidation(err) {
		e.logger.Debugw("query rejected", fields...)
		return
	}
	e.logger.Errorw("query failed", fields...)
	if e.reporter != nil {
		e.reporter.CaptureException(ctx, err)
	}
}

// recoverPanic turns a panic anywhere in a read into a failure envelope
func (e *Engine[T]) recoverPanic(ctx context.Context, operation string, set func(error)) {
	r := recover()
	if r == nil {
		return
	}
	err := ierr.NewErrorf("panic during %s %s: %v", operation, e.source.Entity, r).
		WithHint("An unexpected error occurred").
		Mark(ierr.ErrSystem)
	e.fail(ctx, operation, err)
	set(err)
}

func records[T types.Record](items []T) []types.Record {
	out := make([]types.Record, len(items))
	for i, item := range items {
		out[i] = item
	}
	return out
}

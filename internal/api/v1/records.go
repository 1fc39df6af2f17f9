package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	ierr "github.com/listingdesk/backoffice/internal/errors"
	"github.com/listingdesk/backoffice/internal/logger"
	"github.com/listingdesk/backoffice/internal/query"
	"github.com/listingdesk/backoffice/internal/types"
)

// RecordHandler serves the list and detail reads of one record shape. F is the
// shape's filter struct, bound from the query string.
type RecordHandler[T types.Record, F any, PF interface {
	*F
	query.ListFilter[T]
}] struct {
	engine *query.Engine[T]
	log    *logger.Logger
}

func NewRecordHandler[T types.Record, F any, PF interface {
	*F
	query.ListFilter[T]
}](engine *query.Engine[T], log *logger.Logger) *RecordHandler[T, F, PF] {
	return &RecordHandler[T, F, PF]{
		engine: engine,
		log:    log.With("entity", engine.Entity()),
	}
}

// List binds the shape's filter from the query string (page, size, filter,
// ownerUserId, tenantId and the structured parameters) and returns one page.
func (h *RecordHandler[T, F, PF]) List(c *gin.Context) {
	filter := PF(new(F))
	if err := c.ShouldBindQuery(filter); err != nil {
		h.log.Debugw("rejected list parameters", "query", c.Request.URL.RawQuery, "error", err)
		_ = c.Error(ierr.WithError(err).
			WithHint("Invalid query parameters").
			Mark(ierr.ErrValidation))
		return
	}

	resp := h.engine.List(c.Request.Context(), filter)
	c.JSON(statusOf(resp.Status, resp.Err()), resp)
}

// Get returns one visible record by id
func (h *RecordHandler[T, F, PF]) Get(c *gin.Context) {
	var params types.ScopeParams
	if err := c.ShouldBindQuery(&params); err != nil {
		_ = c.Error(ierr.WithError(err).
			WithHint("Invalid query parameters").
			Mark(ierr.ErrValidation))
		return
	}

	resp := h.engine.Get(c.Request.Context(), c.Param("id"), params)
	c.JSON(statusOf(resp.Status, resp.Err()), resp)
}

func statusOf(success bool, err error) int {
	if success {
		return http.StatusOK
	}
	return ierr.HTTPStatusFromErr(err)
}

package middleware

import (
	"github.com/gin-gonic/gin"
	ierr "github.com/listingdesk/backoffice/internal/errors"
	"github.com/listingdesk/backoffice/internal/logger"
	"github.com/listingdesk/backoffice/internal/sentry"
	"github.com/listingdesk/backoffice/internal/types"
)

// ErrorHandler renders errors attached to the context, typically by binding or
// authentication, as a Failure envelope. Handlers that already wrote a
// response are left alone. Server errors are also sent to Sentry.
func ErrorHandler(reporter *sentry.Service, log *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		err := c.Errors.Last().Err
		status := ierr.HTTPStatusFromErr(err)
		if status >= 500 {
			log.Errorw("request failed",
				"path", c.FullPath(),
				"request_id", types.GetRequestID(c.Request.Context()),
				"error", err)
			reporter.CaptureException(c.Request.Context(), err)
		}

		c.JSON(status, types.NewFailureResponse[any](err))
	}
}

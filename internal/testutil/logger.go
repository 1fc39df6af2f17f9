package testutil

import (
	"github.com/listingdesk/backoffice/internal/logger"
)

// NewTestLogger returns a logger that discards output
func NewTestLogger() *logger.Logger {
	return logger.NewNopLogger()
}

package sentry

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/listingdesk/backoffice/internal/config"
	ierr "github.com/listingdesk/backoffice/internal/errors"
	"github.com/listingdesk/backoffice/internal/logger"
	"github.com/listingdesk/backoffice/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func TestDisabledServiceIsNoop(t *testing.T) {
	cfg := config.GetDefaultConfig()
	svc := NewSentryService(cfg, logger.NewNopLogger())

	lc := fxtest.NewLifecycle(t)
	RegisterHooks(lc, svc)
	lc.RequireStart()

	assert.False(t, svc.Enabled())
	assert.NotPanics(t, func() {
		svc.CaptureException(context.Background(), ierr.NewError("boom").Mark(ierr.ErrDatabase))
	})
	assert.True(t, svc.Flush(time.Second))

	lc.RequireStop()
}

func TestCaptureExceptionTagsRequestScope(t *testing.T) {
	var (
		mu     sync.Mutex
		events []*sentry.Event
	)
	require.NoError(t, sentry.Init(sentry.ClientOptions{
		BeforeSend: func(event *sentry.Event, _ *sentry.EventHint) *sentry.Event {
			mu.Lock()
			defer mu.Unlock()
			events = append(events, event)
			return nil
		},
	}))
	t.Cleanup(func() { sentry.CurrentHub().BindClient(nil) })

	cfg := config.GetDefaultConfig()
	cfg.Sentry.Enabled = true
	svc := NewSentryService(cfg, logger.NewNopLogger())

	ctx := types.SetRequestID(context.Background(), "req-1")
	ctx = types.SetTenantID(ctx, "tenant-1")
	svc.CaptureException(ctx, ierr.NewError("connection reset").Mark(ierr.ErrDatabase))
	svc.CaptureException(ctx, nil)

	mu.Lock()
	defer mu.Unlock()
	require.Len(t, events, 1)
	assert.Equal(t, ierr.ErrCodeDatabase, events[0].Tags["error_code"])
	assert.Equal(t, "req-1", events[0].Tags["request_id"])
	assert.Equal(t, "tenant-1", events[0].Tags["tenant_id"])
}

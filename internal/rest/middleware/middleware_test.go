package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"runtime/pprof"
	"testing"
	"time"

	sentrygo "github.com/getsentry/sentry-go"
	"github.com/gin-gonic/gin"
	"github.com/listingdesk/backoffice/internal/auth"
	"github.com/listingdesk/backoffice/internal/config"
	ierr "github.com/listingdesk/backoffice/internal/errors"
	"github.com/listingdesk/backoffice/internal/logger"
	"github.com/listingdesk/backoffice/internal/sentry"
	"github.com/listingdesk/backoffice/internal/types"
	"github.com/oklog/ulid/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type MiddlewareSuite struct {
	suite.Suite
	log  *logger.Logger
	auth *auth.HMACAuth
}

func TestMiddleware(t *testing.T) {
	suite.Run(t, new(MiddlewareSuite))
}

func (s *MiddlewareSuite) SetupSuite() {
	gin.SetMode(gin.TestMode)
	s.log = logger.NewNopLogger()

	cfg := config.GetDefaultConfig()
	cfg.Auth.Secret = "test-secret"
	s.auth = auth.NewHMACAuth(cfg)
}

// identityRouter echoes the identity found in the request context
func (s *MiddlewareSuite) identityRouter(mw ...gin.HandlerFunc) *gin.Engine {
	r := gin.New()
	r.Use(RequestIDMiddleware, ErrorHandler(sentry.NewSentryService(config.GetDefaultConfig(), s.log), s.log))
	r.Use(mw...)
	r.GET("/whoami", func(c *gin.Context) {
		ctx := c.Request.Context()
		c.JSON(http.StatusOK, gin.H{
			"user":    types.GetUserID(ctx),
			"tenant":  types.GetTenantID(ctx),
			"owner":   types.GetOwnerID(ctx),
			"request": types.GetRequestID(ctx),
		})
	})
	return r
}

func (s *MiddlewareSuite) do(r http.Handler, req *http.Request) (*httptest.ResponseRecorder, map[string]any) {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var body map[string]any
	if w.Body.Len() > 0 {
		s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	}
	return w, body
}

func (s *MiddlewareSuite) TestRequestIDIsGeneratedAndEchoed() {
	r := s.identityRouter()

	w, body := s.do(r, httptest.NewRequest(http.MethodGet, "/whoami", nil))
	s.Equal(http.StatusOK, w.Code)
	s.NotEmpty(w.Header().Get(types.HeaderRequestID))
	_, err := ulid.ParseStrict(w.Header().Get(types.HeaderRequestID))
	s.NoError(err)
	s.Equal(w.Header().Get(types.HeaderRequestID), body["request"])

	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set(types.HeaderRequestID, "req-1")
	w, body = s.do(r, req)
	s.Equal("req-1", w.Header().Get(types.HeaderRequestID))
	s.Equal("req-1", body["request"])
}

func (s *MiddlewareSuite) TestCORSPreflight() {
	r := gin.New()
	r.Use(CORSMiddleware)
	r.OPTIONS("/anything", func(c *gin.Context) { c.Status(http.StatusTeapot) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodOptions, "/anything", nil))
	s.Equal(http.StatusOK, w.Code)
	s.Equal("*", w.Header().Get("Access-Control-Allow-Origin"))
}

func (s *MiddlewareSuite) TestAuthenticate() {
	r := s.identityRouter(AuthenticateMiddleware(s.auth, s.log))

	token, err := s.auth.GenerateToken(auth.Claims{UserID: "u1", TenantID: "t1", OwnerID: "o1"}, time.Hour)
	s.Require().NoError(err)

	tests := []struct {
		name       string
		header     string
		wantStatus int
	}{
		{name: "missing header", header: "", wantStatus: http.StatusUnauthorized},
		{name: "not a bearer", header: "Basic abc", wantStatus: http.StatusUnauthorized},
		{name: "bad token", header: "Bearer nope", wantStatus: http.StatusUnauthorized},
		{name: "valid token", header: "Bearer " + token, wantStatus: http.StatusOK},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
			if tt.header != "" {
				req.Header.Set(types.HeaderAuthorization, tt.header)
			}

			w, body := s.do(r, req)
			s.Equal(tt.wantStatus, w.Code)

			if tt.wantStatus == http.StatusOK {
				s.Equal("u1", body["user"])
				s.Equal("t1", body["tenant"])
				s.Equal("o1", body["owner"])
				return
			}
			s.Equal(false, body["status"])
			s.Equal("Unauthorized", body["title"])
			s.Nil(body["data"])
		})
	}
}

func (s *MiddlewareSuite) TestGuestHeaders() {
	r := s.identityRouter(GuestAuthenticateMiddleware)

	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set(types.HeaderUserID, "u2")
	req.Header.Set(types.HeaderTenantID, "t2")

	w, body := s.do(r, req)
	s.Equal(http.StatusOK, w.Code)
	s.Equal("u2", body["user"])
	s.Equal("t2", body["tenant"])
	s.Equal("", body["owner"])
}

func TestErrorHandlerLeavesWrittenResponses(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(ErrorHandler(sentry.NewSentryService(config.GetDefaultConfig(), logger.NewNopLogger()), logger.NewNopLogger()))
	r.GET("/written", func(c *gin.Context) {
		_ = c.Error(ierr.NewError("boom").Mark(ierr.ErrSystem))
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	r.GET("/unwritten", func(c *gin.Context) {
		_ = c.Error(ierr.NewError("bad page").WithHint("Page must be a number").Mark(ierr.ErrValidation))
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/written", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/unwritten", nil))
	assert.Equal(t, http.StatusBadRequest, w.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Invalid request", body["title"])
	assert.Equal(t, "Page must be a number", body["message"])
}

func TestPyroscopeMiddlewareLabelsRequests(t *testing.T) {
	gin.SetMode(gin.TestMode)

	for _, enabled := range []bool{false, true} {
		cfg := config.GetDefaultConfig()
		cfg.Pyroscope.Enabled = enabled

		r := gin.New()
		r.Use(PyroscopeMiddleware(cfg))
		r.GET("/v1/businesses/:id", func(c *gin.Context) {
			endpoint, _ := pprof.Label(c.Request.Context(), "endpoint")
			c.String(http.StatusOK, endpoint)
		})

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/businesses/42", nil))
		assert.Equal(t, http.StatusOK, w.Code)
		if enabled {
			assert.Equal(t, "/v1/businesses/:id", w.Body.String())
		} else {
			assert.Empty(t, w.Body.String())
		}
	}
}

func TestErrorHandlerReportsServerErrors(t *testing.T) {
	gin.SetMode(gin.TestMode)

	var events []*sentrygo.Event
	require.NoError(t, sentrygo.Init(sentrygo.ClientOptions{
		BeforeSend: func(event *sentrygo.Event, _ *sentrygo.EventHint) *sentrygo.Event {
			events = append(events, event)
			return nil
		},
	}))
	t.Cleanup(func() { sentrygo.CurrentHub().BindClient(nil) })

	cfg := config.GetDefaultConfig()
	cfg.Sentry.Enabled = true
	r := gin.New()
	r.Use(ErrorHandler(sentry.NewSentryService(cfg, logger.NewNopLogger()), logger.NewNopLogger()))
	r.GET("/fail", func(c *gin.Context) {
		_ = c.Error(ierr.NewError("database down").Mark(ierr.ErrDatabase))
	})
	r.GET("/reject", func(c *gin.Context) {
		_ = c.Error(ierr.NewError("bad page").Mark(ierr.ErrValidation))
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/fail", nil))
	assert.Equal(t, http.StatusInternalServerError, w.Code)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/reject", nil))
	assert.Equal(t, http.StatusBadRequest, w.Code)

	require.Len(t, events, 1)
	assert.Equal(t, ierr.ErrCodeDatabase, events[0].Tags["error_code"])
}

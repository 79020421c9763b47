package controller_test

import (
	"net/http"
	"net/http/httptest"
	"smartdomain/pkg/controller"
	"smartdomain/pkg/logger"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestGetClientIP(t *testing.T) {
	cases := []struct {
		name   string
		header map[string]string
		remote string
		want   string
	}{
		{"forwarded for", map[string]string{"X-Forwarded-For": "1.2.3.4, 5.6.7.8"}, "", "1.2.3.4"},
		{"real ip", map[string]string{"X-Real-IP": "9.8.7.6"}, "", "9.8.7.6"},
		{"remote addr", nil, "10.0.0.1:12345", "10.0.0.1"},
		{"invalid remote addr", nil, "not-an-addr", "not-an-addr"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			for k, v := range c.header {
				req.Header.Set(k, v)
			}
			if c.remote != "" {
				req.RemoteAddr = c.remote
			}
			require.Equal(t, c.want, controller.GetClientIP(req))
		})
	}
}

func TestGetSessionID(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	require.Empty(t, controller.GetSessionID(req))

	req.Header.Set(controller.SessionHeader, " header-session ")
	require.Equal(t, "header-session", controller.GetSessionID(req))

	req.AddCookie(&http.Cookie{Name: controller.SessionCookie, Value: "cookie-session"})
	require.Equal(t, "cookie-session", controller.GetSessionID(req))

	long := httptest.NewRequest(http.MethodGet, "/", nil)
	long.Header.Set(controller.SessionHeader, strings.Repeat("a", 129))
	require.Empty(t, controller.GetSessionID(long))
}

func TestWithLogger_RequestID(t *testing.T) {
	logger.Setup(logger.DevelopmentEnvironment)
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Echo-Request-Id", controller.GetRequestID(r.Context()))
		w.WriteHeader(http.StatusCreated)
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Request-Id", "abc-123")
	rec := httptest.NewRecorder()
	controller.WithLogger(next).ServeHTTP(rec, req)
	require.Equal(t, http.StatusCreated, rec.Code)
	require.Equal(t, "abc-123", rec.Header().Get("X-Echo-Request-Id"))
	require.Equal(t, "abc-123", rec.Header().Get("X-Request-Id"))

	// a request without the header gets a generated id
	rec = httptest.NewRecorder()
	controller.WithLogger(next).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	require.NotEmpty(t, rec.Header().Get("X-Echo-Request-Id"))
	require.Equal(t, rec.Header().Get("X-Echo-Request-Id"), rec.Header().Get("X-Request-Id"))
}

func TestWithLogger_AccessLog(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger.Info(r.Context(), "inside handler")
		w.WriteHeader(http.StatusTeapot)
		_, _ = w.Write([]byte("short and stout"))
	})

	req := httptest.NewRequest(http.MethodPost, "/api/generate?x=1", nil)
	req = req.WithContext(logger.WithLogger(req.Context(), zap.New(core)))
	req.Header.Set("X-Request-Id", "req-1")
	req.Header.Set(controller.SessionHeader, "sess-1")
	controller.WithLogger(next).ServeHTTP(httptest.NewRecorder(), req)

	inside := logs.FilterMessage("inside handler").All()
	require.Len(t, inside, 1)
	require.Equal(t, "req-1", inside[0].ContextMap()["RequestID"])
	require.Equal(t, "sess-1", inside[0].ContextMap()["SessionID"])

	access := logs.FilterMessage("access log").All()
	require.Len(t, access, 1)
	fields := access[0].ContextMap()
	require.EqualValues(t, http.StatusTeapot, fields["status_code"])
	require.EqualValues(t, len("short and stout"), fields["bytes"])
	require.Equal(t, http.MethodPost, fields["method"])
	require.Equal(t, "/api/generate?x=1", fields["url"])
}

package v1handler_test

import (
	"context"
	"errors"
	"fmt"
	"smartdomain/internal/api/handler/v1handler"
	"testing"

	"smartdomain/pkg/logger"
	"smartdomain/pkg/serrors"

	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	// Initialize logger to avoid nil pointer deref during tests
	logger.Setup(logger.DevelopmentEnvironment)
	m.Run()
}

func newHandler(env string) *v1handler.Handler {
	opts := v1handler.DefaultOptions
	opts.Environment = env

	return v1handler.New(v1handler.Deps{}, opts)
}

func TestNewError_InternalOnPlainError(t *testing.T) {
	h := newHandler("production")
	ctx := context.Background()

	res := h.NewError(ctx, errors.New("boom"))
	require.NotNil(t, res)
	require.Equal(t, 500, res.StatusCode)
	require.Equal(t, "INTERNAL_ERROR", res.Response.Code)
	require.Equal(t, "internal error", res.Response.Message)
	require.Empty(t, res.Response.Stack)
}

func TestNewError_InternalStackInDevelopment(t *testing.T) {
	h := newHandler("development")

	res := h.NewError(context.Background(), fmt.Errorf("could not query: %w", errors.New("boom")))
	require.Equal(t, 500, res.StatusCode)
	require.Equal(t, "could not query: boom", res.Response.Stack)
}

func TestNewError_DefaultOptionsHideStack(t *testing.T) {
	h := v1handler.New(v1handler.Deps{}, v1handler.DefaultOptions)

	res := h.NewError(context.Background(), errors.New("db down"))
	require.Equal(t, 500, res.StatusCode)
	require.Empty(t, res.Response.Stack)
}

func TestNewError_KindSentinelDirect_NotFound(t *testing.T) {
	h := newHandler("production")
	ctx := context.Background()

	// Pass the Kind sentinel directly
	res := h.NewError(ctx, serrors.ErrNotFound)
	require.Equal(t, 404, res.StatusCode)
	require.Equal(t, "NOT_FOUND", res.Response.Code)
	require.Equal(t, "resource not found", res.Response.Message)
}

func TestNewError_SemanticWithMessage_BadRequest(t *testing.T) {
	h := newHandler("production")
	ctx := context.Background()

	err := serrors.Invalid("validation failed", serrors.FieldError{Field: "domain", Message: "required"})
	res := h.NewError(ctx, err)
	require.Equal(t, 400, res.StatusCode)
	require.Equal(t, "VALIDATION_ERROR", res.Response.Code)
	require.Equal(t, "validation failed", res.Response.Message)
	require.Equal(t, []serrors.FieldError{{Field: "domain", Message: "required"}}, res.Response.Details)
}

func TestNewError_SemanticWrap_Unauthorized(t *testing.T) {
	h := newHandler("production")
	ctx := context.Background()

	cause := errors.New("bad token")
	err := serrors.Wrap(serrors.ErrUnauthorized, cause, "unauthorized")
	res := h.NewError(ctx, err)
	require.Equal(t, 401, res.StatusCode)
	require.Equal(t, "UNAUTHORIZED", res.Response.Code)
	// Should include provided message, not the cause
	require.Equal(t, "unauthorized", res.Response.Message)
}

func TestNewError_WrappedSemantic(t *testing.T) {
	h := newHandler("production")

	err := fmt.Errorf("could not create favorite: %w", serrors.With(serrors.ErrConflict, "domain already saved"))
	res := h.NewError(context.Background(), err)
	require.Equal(t, 409, res.StatusCode)
	require.Equal(t, "ALREADY_EXISTS", res.Response.Code)
	require.Equal(t, "domain already saved", res.Response.Message)
}

func TestNewError_TimeoutSuggestions(t *testing.T) {
	h := newHandler("production")

	suggestions := []string{"Try fewer names"}
	err := serrors.With(serrors.ErrTimeout, "request timeout").WithDetails(suggestions)
	res := h.NewError(context.Background(), err)
	require.Equal(t, 504, res.StatusCode)
	require.Equal(t, "TIMEOUT_ERROR", res.Response.Code)
	require.Equal(t, suggestions, res.Response.Suggestions)
	require.Nil(t, res.Response.Details)
}

func TestNewError_StatusCodes(t *testing.T) {
	h := newHandler("production")

	cases := []struct {
		kind   serrors.Kind
		status int
		code   string
	}{
		{serrors.ErrForbidden, 403, "FORBIDDEN"},
		{serrors.ErrRateLimited, 429, "RATE_LIMIT_EXCEEDED"},
		{serrors.ErrUnavailable, 503, "SERVICE_UNAVAILABLE"},
		{serrors.ErrInternal, 500, "INTERNAL_ERROR"},
	}
	for _, c := range cases {
		t.Run(c.code, func(t *testing.T) {
			res := h.NewError(context.Background(), serrors.KindOnly(c.kind))
			require.Equal(t, c.status, res.StatusCode)
			require.Equal(t, c.code, res.Response.Code)
		})
	}
}

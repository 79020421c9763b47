package v1handler

import (
	"context"
	"errors"
	"net/http"
	"smartdomain/internal/apikeys"
	"smartdomain/internal/config"
	"smartdomain/internal/favorites"
	"smartdomain/internal/generator"
	"smartdomain/internal/history"
	"smartdomain/internal/ratelimit"
	"smartdomain/internal/stats"
	"smartdomain/pkg/logger"
	"smartdomain/pkg/serrors"
	"time"

	"go.uber.org/zap"
)

const (
	serviceName    = "smart-domain"
	apiServiceName = "domain-generator-api"

	developmentEnvironment = "development"
	productionEnvironment  = "production"
)

// Pinger reports whether the database is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Deps are the services behind the HTTP API.
type Deps struct {
	Security  *SecHandler
	Generator generator.Generator
	Favorites favorites.Favorites
	History   history.History
	APIKeys   apikeys.APIKeys
	Limiter   ratelimit.Limiter
	Stats     stats.Stats
	Database  Pinger
}

// Options configure response details and per caller limits.
type Options struct {
	Environment string
	Version     string
	// GuestMaxSuggestions caps the names a guest receives from /api/generate.
	GuestMaxSuggestions int
	// UserMaxSuggestions caps the names of signed-in and API callers.
	UserMaxSuggestions int
}

// DefaultOptions mirror the configuration defaults.
var DefaultOptions = Options{
	Environment:         productionEnvironment,
	Version:             "1.0.0",
	GuestMaxSuggestions: 2,
	UserMaxSuggestions:  4,
}

// NewOptions constructs an Options value from the provided application config.
func NewOptions(cfg *config.Config) Options {
	return Options{
		Environment:         cfg.Environment,
		Version:             cfg.Version,
		GuestMaxSuggestions: cfg.Generator.GuestMaxSuggestions,
		UserMaxSuggestions:  cfg.Generator.UserMaxSuggestions,
	}
}

type Handler struct {
	deps    Deps
	options Options
	now     func() time.Time
}

func New(deps Deps, options Options) *Handler {
	return &Handler{
		deps:    deps,
		options: options,
		now:     time.Now,
	}
}

// ErrorBody is the error object of a failed response.
type ErrorBody struct {
	Code        string   `json:"code"`
	Message     string   `json:"message"`
	Details     any      `json:"details,omitempty"`
	Suggestions []string `json:"suggestions,omitempty"`
	Stack       string   `json:"stack,omitempty"`
}

// ErrorResponse is an error mapped to its HTTP status.
type ErrorResponse struct {
	StatusCode int
	Response   ErrorBody
}

type errorMapping struct {
	kind    serrors.Kind
	status  int
	code    string
	message string
}

var errorMappings = []errorMapping{ //nolint: gochecknoglobals
	{serrors.ErrBadRequest, http.StatusBadRequest, "VALIDATION_ERROR", "invalid request"},
	{serrors.ErrUnauthorized, http.StatusUnauthorized, "UNAUTHORIZED", "authentication required"},
	{serrors.ErrForbidden, http.StatusForbidden, "FORBIDDEN", "access denied"},
	{serrors.ErrNotFound, http.StatusNotFound, "NOT_FOUND", "resource not found"},
	{serrors.ErrConflict, http.StatusConflict, "ALREADY_EXISTS", "resource already exists"},
	{serrors.ErrRateLimited, http.StatusTooManyRequests, "RATE_LIMIT_EXCEEDED", "rate limit exceeded"},
	{serrors.ErrTimeout, http.StatusGatewayTimeout, "TIMEOUT_ERROR", "request timed out"},
	{serrors.ErrUnavailable, http.StatusServiceUnavailable, "SERVICE_UNAVAILABLE", "service unavailable"},
}

// NewError maps err to a status code and a client safe body. Errors without a
// known kind are internal; their cause is only exposed in development.
func (h Handler) NewError(ctx context.Context, err error) *ErrorResponse {
	var semantic *serrors.Error
	hasSemantic := errors.As(err, &semantic)

	for _, m := range errorMappings {
		if !errors.Is(err, m.kind) {
			continue
		}

		body := ErrorBody{Code: m.code, Message: m.message}
		if hasSemantic {
			if msg := semantic.Message(); msg != "" {
				body.Message = msg
			}
			if suggestions, ok := semantic.Details().([]string); ok && m.kind == serrors.ErrTimeout {
				body.Suggestions = suggestions
			} else if semantic.Details() != nil {
				body.Details = semantic.Details()
			}
		}

		logger.Debug(ctx, "request failed", zap.String("code", m.code), zap.Error(err))

		return &ErrorResponse{StatusCode: m.status, Response: body}
	}

	logger.Error(ctx, "internal error", zap.Error(err))

	body := ErrorBody{Code: "INTERNAL_ERROR", Message: "internal error"}
	if h.options.Environment == developmentEnvironment {
		body.Stack = err.Error()
	}

	return &ErrorResponse{StatusCode: http.StatusInternalServerError, Response: body}
}

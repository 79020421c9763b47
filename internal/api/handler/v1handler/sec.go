package v1handler

import (
	"context"
	"crypto/rsa"
	"fmt"
	"net/http"
	"smartdomain/internal/apikeys"
	"smartdomain/internal/config"
	"smartdomain/pkg/controller"
	"smartdomain/pkg/domain"
	"smartdomain/pkg/logger"
	"smartdomain/pkg/serrors"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	// UserIDKey is the context key of the authenticated domain.UserID.
	UserIDKey controller.CtxKey = "UserID"
	// PrincipalKey is the context key of the *apikeys.Principal of API key requests.
	PrincipalKey controller.CtxKey = "Principal"

	apiKeyQueryParam = "api_key"
	apiKeyPrefix     = "sd_"
)

// SecHandlerOptions configure session token verification.
type SecHandlerOptions struct {
	// PublicKey is the PEM encoded RSA key session tokens are signed with.
	PublicKey string
}

// NewSecHandlerOptions constructs SecHandlerOptions from the provided application config.
func NewSecHandlerOptions(cfg *config.Config) *SecHandlerOptions {
	return &SecHandlerOptions{
		PublicKey: cfg.JWT.PublicKey,
	}
}

// SecHandler authenticates session tokens and API keys.
type SecHandler struct {
	publicKey *rsa.PublicKey
	apiKeys   apikeys.APIKeys
}

// NewSecHandler parses the session public key. apiKeys may be nil when API
// keys are not accepted.
func NewSecHandler(opts *SecHandlerOptions, apiKeys apikeys.APIKeys) (*SecHandler, error) {
	key, err := jwt.ParseRSAPublicKeyFromPEM([]byte(opts.PublicKey))
	if err != nil {
		return nil, fmt.Errorf("could not parse RSA public key: %w", err)
	}

	return &SecHandler{
		publicKey: key,
		apiKeys:   apiKeys,
	}, nil
}

// HandleBearerAuth verifies an RS256 session token and stores its subject in
// the returned context.
func (s SecHandler) HandleBearerAuth(ctx context.Context, token string) (context.Context, error) {
	claims := jwt.RegisteredClaims{}
	_, err := jwt.ParseWithClaims(token, &claims, func(t *jwt.Token) (interface{}, error) {
		return s.publicKey, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodRS256.Alg()}), jwt.WithExpirationRequired())
	if err != nil {
		return ctx, serrors.Wrap(serrors.ErrUnauthorized, err, "invalid session token")
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return ctx, serrors.Wrap(serrors.ErrUnauthorized, err, "invalid session token")
	}

	ctx = context.WithValue(ctx, UserIDKey, domain.UserID(userID))
	ctx = logger.WithFields(ctx, zap.String(string(UserIDKey), userID.String()))

	return ctx, nil
}

// HandleAPIKey resolves an API key and stores its owner and principal in the
// returned context.
func (s SecHandler) HandleAPIKey(ctx context.Context, token string) (context.Context, error) {
	if s.apiKeys == nil {
		return ctx, serrors.With(serrors.ErrUnauthorized, "API keys are not accepted")
	}

	principal, err := s.apiKeys.Validate(ctx, token)
	if err != nil {
		return ctx, err //nolint: wrapcheck
	}

	ctx = context.WithValue(ctx, UserIDKey, principal.UserID)
	ctx = context.WithValue(ctx, PrincipalKey, principal)
	ctx = logger.WithFields(ctx,
		zap.String(string(UserIDKey), principal.UserID.String()),
		zap.String("apiKeyID", principal.KeyID.String()))

	return ctx, nil
}

// GetUserIDFromContext returns the authenticated user, or the zero UserID for guests.
func GetUserIDFromContext(ctx context.Context) domain.UserID {
	id, _ := ctx.Value(UserIDKey).(domain.UserID)

	return id
}

// GetPrincipalFromContext returns the API key principal, or nil for session requests.
func GetPrincipalFromContext(ctx context.Context) *apikeys.Principal {
	p, _ := ctx.Value(PrincipalKey).(*apikeys.Principal)

	return p
}

func bearerToken(r *http.Request) string {
	h := r.Header.Get("Authorization")
	if len(h) > 7 && strings.EqualFold(h[:7], "bearer ") {
		return strings.TrimSpace(h[7:])
	}

	return ""
}

// credentials splits the request credentials into a session token and an API key.
func credentials(r *http.Request) (session, key string) {
	token := bearerToken(r)
	if strings.HasPrefix(token, apiKeyPrefix) {
		return "", token
	}
	if q := r.URL.Query().Get(apiKeyQueryParam); q != "" {
		return token, q
	}

	return token, ""
}

var errNoCredentials = serrors.With(serrors.ErrUnauthorized, "authentication required")

// optionalSession attaches the session user when a valid token is sent. Guests
// and invalid tokens continue unauthenticated.
func (h Handler) optionalSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		session, _ := credentials(r)
		if session == "" || h.deps.Security == nil {
			next.ServeHTTP(w, r)

			return
		}

		ctx, err := h.deps.Security.HandleBearerAuth(r.Context(), session)
		if err != nil {
			logger.Debug(r.Context(), "ignoring invalid session token", zap.Error(err))
			next.ServeHTTP(w, r)

			return
		}

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// requireSession only accepts session tokens.
func (h Handler) requireSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		session, _ := credentials(r)
		if session == "" || h.deps.Security == nil {
			h.writeError(w, r, errNoCredentials)

			return
		}

		ctx, err := h.deps.Security.HandleBearerAuth(r.Context(), session)
		if err != nil {
			h.writeError(w, r, err)

			return
		}

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// requireAPIKey only accepts API keys.
func (h Handler) requireAPIKey(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, key := credentials(r)
		if key == "" || h.deps.Security == nil {
			h.writeError(w, r, serrors.With(serrors.ErrUnauthorized, "API key required"))

			return
		}

		ctx, err := h.deps.Security.HandleAPIKey(r.Context(), key)
		if err != nil {
			h.writeError(w, r, err)

			return
		}

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// requireUser accepts an API key or a session token, in that order.
func (h Handler) requireUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		session, key := credentials(r)
		if h.deps.Security == nil || (session == "" && key == "") {
			h.writeError(w, r, errNoCredentials)

			return
		}

		var (
			ctx context.Context
			err error
		)
		if key != "" {
			ctx, err = h.deps.Security.HandleAPIKey(r.Context(), key)
		} else {
			ctx, err = h.deps.Security.HandleBearerAuth(r.Context(), session)
		}
		if err != nil {
			h.writeError(w, r, err)

			return
		}

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

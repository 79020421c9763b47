package v1handler

import (
	"context"
	"encoding/json"
	"net/http"
	"smartdomain/internal/apikeys"
	"smartdomain/internal/generator"
	"smartdomain/internal/history"
	"smartdomain/internal/ratelimit"
	"smartdomain/pkg/controller"
	"smartdomain/pkg/domain"
	"smartdomain/pkg/logger"
	"strconv"

	"go.uber.org/zap"
)

const generateEndpoint = "generate"

type generateOptions struct {
	MaxSuggestions int                 `json:"maxSuggestions,omitempty"`
	IncludePricing *bool               `json:"includePricing,omitempty"`
	TargetMarket   domain.TargetMarket `json:"targetMarket,omitempty"`
	PreferredTLDs  []string            `json:"preferredTlds,omitempty"`
}

type generateRequest struct {
	Description string          `json:"description"`
	Options     generateOptions `json:"options"`
}

func (req generateRequest) toGenerator(suggestionCap int) generator.Request {
	return generator.Request{
		Description:    req.Description,
		MaxSuggestions: req.Options.MaxSuggestions,
		IncludePricing: req.Options.IncludePricing,
		TargetMarket:   req.Options.TargetMarket,
		PreferredTLDs:  req.Options.PreferredTLDs,
		SuggestionCap:  suggestionCap,
	}
}

// Generate runs the suggestion pipeline for the web client. Guests and
// signed-in users are rate limited; signed-in searches are saved to history.
func (h Handler) Generate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req generateRequest
	if err := decodeBody(w, r, generateSchema, &req); err != nil {
		h.writeError(w, r, err)

		return
	}

	userID := GetUserIDFromContext(ctx)
	if h.deps.Limiter != nil {
		decision, err := h.deps.Limiter.Allow(ctx, generateEndpoint, ratelimit.SubjectFromRequest(r, userID))
		setDecisionHeaders(w, decision)
		if err != nil {
			if wait := decision.ResetAt.Sub(h.now()); wait > 0 {
				w.Header().Set("Retry-After", strconv.FormatInt(int64(wait.Seconds())+1, 10))
			}
			h.writeError(w, r, err)

			return
		}
	}

	suggestionCap := h.options.GuestMaxSuggestions
	if !userID.IsZero() {
		suggestionCap = h.options.UserMaxSuggestions
	}

	result, err := h.deps.Generator.Generate(ctx, req.toGenerator(suggestionCap))
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	if !userID.IsZero() {
		h.enqueueHistory(ctx, userID, req, result)
	}

	h.writeData(w, r, http.StatusOK, result)
}

// GenerateInfo describes the API key generation endpoint.
func (h Handler) GenerateInfo(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, map[string]string{
		"status":  "ok",
		"service": apiServiceName,
		"version": h.options.Version,
	})
}

// GenerateAPI runs the suggestion pipeline for API key holders within their
// monthly quota. Every request past the quota check is logged as usage.
func (h Handler) GenerateAPI(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	principal := GetPrincipalFromContext(ctx)
	if principal == nil {
		h.writeError(w, r, errNoCredentials)

		return
	}

	quota, err := h.deps.APIKeys.CheckQuota(ctx, *principal)
	if err != nil {
		h.writeError(w, r, err)

		return
	}
	setQuotaHeaders(w, quota)

	var req generateRequest
	if err := decodeBody(w, r, generateSchema, &req); err != nil {
		h.recordUsage(r, principal, h.NewError(ctx, err).StatusCode)
		h.writeError(w, r, err)

		return
	}

	result, err := h.deps.Generator.Generate(ctx, req.toGenerator(h.options.UserMaxSuggestions))
	if err != nil {
		h.recordUsage(r, principal, h.NewError(ctx, err).StatusCode)
		h.writeError(w, r, err)

		return
	}

	h.recordUsage(r, principal, http.StatusOK)
	h.writeData(w, r, http.StatusOK, result)
}

func (h Handler) recordUsage(r *http.Request, principal *apikeys.Principal, status int) {
	// the request context may already be cancelled once the client is gone
	ctx := context.WithoutCancel(r.Context())

	h.deps.APIKeys.RecordUsage(ctx, domain.APIKeyUsage{
		APIKeyID:   principal.KeyID,
		UserID:     principal.UserID,
		Endpoint:   r.URL.Path,
		Method:     r.Method,
		StatusCode: status,
		IPAddress:  controller.GetClientIP(r),
		UserAgent:  r.UserAgent(),
		CreatedAt:  h.now().UTC(),
	})
}

func (h Handler) enqueueHistory(ctx context.Context,
	userID domain.UserID,
	req generateRequest,
	result *generator.Result) {
	results, err := json.Marshal(result.Suggestions)
	if err != nil {
		logger.Warn(ctx, "could not encode suggestions for history", zap.Error(err))

		return
	}
	filters, err := json.Marshal(req)
	if err != nil {
		logger.Warn(ctx, "could not encode filters for history", zap.Error(err))

		return
	}

	input := history.RecordInput{
		SearchTerm:    req.Description,
		DomainResults: results,
		SearchType:    domain.SearchTypeKeyword,
		Filters:       filters,
	}
	if err := h.deps.History.Enqueue(context.WithoutCancel(ctx), userID, input); err != nil {
		logger.Warn(ctx, "could not enqueue search history", zap.Error(err))
	}
}

func setDecisionHeaders(w http.ResponseWriter, d ratelimit.Decision) {
	if d.Limit == 0 {
		return
	}

	w.Header().Set("X-RateLimit-Limit", strconv.Itoa(d.Limit))
	w.Header().Set("X-RateLimit-Remaining", strconv.Itoa(d.Remaining))
	w.Header().Set("X-RateLimit-Reset", strconv.FormatInt(d.ResetAt.Unix(), 10))
}

func setQuotaHeaders(w http.ResponseWriter, q apikeys.Quota) {
	if q.Limit < 0 {
		w.Header().Set("X-RateLimit-Limit", "unlimited")
		w.Header().Set("X-RateLimit-Remaining", "unlimited")
	} else {
		w.Header().Set("X-RateLimit-Limit", strconv.Itoa(q.Limit))
		w.Header().Set("X-RateLimit-Remaining", strconv.FormatInt(q.Remaining, 10))
	}
	w.Header().Set("X-RateLimit-Reset", strconv.FormatInt(q.ResetAt.Unix(), 10))
}

package apikeys

import (
	"context"
	"fmt"
	"smartdomain/internal/config"
	"smartdomain/pkg/domain"
	"smartdomain/pkg/logger"
	"smartdomain/pkg/serrors"
	"smartdomain/pkg/storage"
	"strings"
	"time"
	"unicode/utf8"

	"go.uber.org/zap"
)

const (
	maxNameLength        = 100
	maxDescriptionLength = 500
)

// Storage is the persistence the service needs.
type Storage interface {
	storage.APIKeyStorage
	storage.ProfileStorage
}

// Options holds the monthly request allowance per plan. Negative means unlimited.
type Options struct {
	MonthlyLimits map[domain.SubscriptionPlan]int
}

// DefaultOptions mirror the configuration defaults.
var DefaultOptions = Options{
	MonthlyLimits: map[domain.SubscriptionPlan]int{
		domain.PlanFree:         0,
		domain.PlanProfessional: 1000,
		domain.PlanEnterprise:   -1,
	},
}

// NewOptions constructs an Options value from the provided application config.
func NewOptions(cfg *config.Config) Options {
	return Options{
		MonthlyLimits: map[domain.SubscriptionPlan]int{
			domain.PlanFree:         cfg.APIKeys.FreeMonthly,
			domain.PlanProfessional: cfg.APIKeys.ProfessionalMonthly,
			domain.PlanEnterprise:   cfg.APIKeys.EnterpriseMonthly,
		},
	}
}

type apiKeys struct {
	options Options
	storage Storage
	now     func() time.Time
}

// Create issues a key for the user and stores only its hash.
func (a apiKeys) Create(ctx context.Context, userID domain.UserID, input CreateInput) (*Created, error) {
	now := a.now()
	name := strings.TrimSpace(input.Name)

	var fields []serrors.FieldError
	if n := utf8.RuneCountInString(name); n == 0 || n > maxNameLength {
		fields = append(fields, serrors.FieldError{Field: "name", Message: "must be between 1 and 100 characters"})
	}
	if utf8.RuneCountInString(input.Description) > maxDescriptionLength {
		fields = append(fields, serrors.FieldError{Field: "description", Message: "must be at most 500 characters"})
	}
	if !input.ExpiresAt.IsZero() && !input.ExpiresAt.After(now) {
		fields = append(fields, serrors.FieldError{Field: "expiresAt", Message: "must be in the future"})
	}
	if len(fields) > 0 {
		return nil, serrors.Invalid("request validation failed", fields...)
	}

	token, err := generateToken(now)
	if err != nil {
		return nil, err
	}

	key, err := a.storage.StoreAPIKey(ctx, domain.APIKey{
		UserID:      userID,
		Name:        name,
		Description: input.Description,
		KeyHash:     Hash(token),
		KeyPrefix:   DisplayPrefix(token),
		ExpiresAt:   input.ExpiresAt,
	})
	if err != nil {
		return nil, fmt.Errorf("could not store api key: %w", err)
	}

	return &Created{APIKey: *key, Secret: token}, nil
}

func (a apiKeys) List(ctx context.Context, userID domain.UserID) ([]domain.APIKey, error) {
	keys, err := a.storage.UserAPIKeys(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("could not list api keys: %w", err)
	}

	return keys, nil
}

func (a apiKeys) Delete(ctx context.Context, userID domain.UserID, id domain.APIKeyID) error {
	deleted, err := a.storage.DeleteAPIKey(ctx, userID, id)
	if err != nil {
		return fmt.Errorf("could not delete api key: %w", err)
	}
	if !deleted {
		return serrors.With(serrors.ErrNotFound, "api key not found")
	}

	return nil
}

func (a apiKeys) Validate(ctx context.Context, token string) (*Principal, error) {
	if !ValidFormat(token) {
		return nil, serrors.With(serrors.ErrUnauthorized, "invalid API key format")
	}

	key, err := a.storage.APIKeyByHash(ctx, Hash(token))
	if err != nil {
		return nil, fmt.Errorf("could not look up api key: %w", err)
	}
	if key == nil {
		return nil, serrors.With(serrors.ErrUnauthorized, "invalid API key")
	}

	now := a.now()
	if key.Expired(now) {
		return nil, serrors.With(serrors.ErrUnauthorized, "API key has expired")
	}

	if err := a.storage.TouchAPIKey(ctx, key.ID, now); err != nil {
		logger.Warn(ctx, "could not update api key last use", zap.Error(err), zap.Stringer("keyID", key.ID))
	}

	plan := domain.PlanFree
	profile, err := a.storage.ProfileByID(ctx, key.UserID)
	if err != nil {
		return nil, fmt.Errorf("could not get profile: %w", err)
	}
	if profile != nil && profile.SubscriptionPlan.Valid() {
		plan = profile.SubscriptionPlan
	}

	return &Principal{
		UserID: key.UserID,
		KeyID:  key.ID,
		Plan:   plan,
	}, nil
}

func (a apiKeys) CheckQuota(ctx context.Context, principal Principal) (Quota, error) {
	now := a.now().UTC()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	quota := Quota{
		Limit:   a.options.MonthlyLimits[principal.Plan],
		ResetAt: monthStart.AddDate(0, 1, 0),
	}

	if quota.Limit == 0 {
		return quota, serrors.With(serrors.ErrForbidden, "API access requires a paid plan")
	}

	used, err := a.storage.APIUsageCount(ctx, principal.UserID, monthStart)
	if err != nil {
		return quota, fmt.Errorf("could not count api key usage: %w", err)
	}
	quota.Used = used

	if quota.Limit < 0 {
		quota.Remaining = -1

		return quota, nil
	}

	quota.Remaining = max(int64(quota.Limit)-used, 0)
	if used >= int64(quota.Limit) {
		return quota, serrors.With(serrors.ErrRateLimited, "monthly API quota exceeded").WithDetails(quota)
	}

	return quota, nil
}

func (a apiKeys) RecordUsage(ctx context.Context, usage domain.APIKeyUsage) {
	if usage.CreatedAt.IsZero() {
		usage.CreatedAt = a.now()
	}

	if err := a.storage.StoreAPIKeyUsage(ctx, usage); err != nil {
		logger.Warn(ctx, "could not record api key usage", zap.Error(err), zap.Stringer("keyID", usage.APIKeyID))
	}
}

// New creates an APIKeys service backed by the provided storage.
func New(storage Storage, options Options) APIKeys {
	return &apiKeys{
		options: options,
		storage: storage,
		now:     time.Now,
	}
}

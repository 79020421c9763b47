package favorites

import (
	"context"
	"errors"
	"fmt"
	"smartdomain/internal/config"
	"smartdomain/pkg/domain"
	"smartdomain/pkg/serrors"
	"smartdomain/pkg/storage"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"
)

const (
	maxDomainLength = 255
	maxNotesLength  = 500
	maxTags         = 10
	maxTagLength    = 50
)

// Options configure listing defaults and the per-user cap.
type Options struct {
	// MaxPerUser is the number of favorites a user may keep. Zero disables the cap.
	MaxPerUser   int
	DefaultLimit int
	MaxLimit     int
}

// DefaultOptions mirror the configuration defaults.
var DefaultOptions = Options{
	MaxPerUser:   100,
	DefaultLimit: 20,
	MaxLimit:     100,
}

// NewOptions constructs an Options value from the provided application config.
func NewOptions(cfg *config.Config) Options {
	return Options{
		MaxPerUser:   cfg.Favorites.MaxPerUser,
		DefaultLimit: cfg.Favorites.DefaultLimit,
		MaxLimit:     cfg.Favorites.MaxLimit,
	}
}

type favorites struct {
	options Options
	storage storage.FavoriteStorage
}

func (f favorites) List(ctx context.Context,
	userID domain.UserID,
	query ListQuery) ([]domain.Favorite, domain.Pagination, error) {
	var fields []serrors.FieldError
	if query.Page < 0 {
		fields = append(fields, serrors.FieldError{Field: "page", Message: "must be at least 1"})
	}
	if query.Limit < 0 || query.Limit > f.options.MaxLimit {
		fields = append(fields, serrors.FieldError{
			Field:   "limit",
			Message: "must be between 1 and " + strconv.Itoa(f.options.MaxLimit),
		})
	}
	if len(fields) > 0 {
		return nil, domain.Pagination{}, serrors.Invalid("invalid query parameters", fields...)
	}

	page, limit := max(query.Page, 1), query.Limit
	if limit == 0 {
		limit = f.options.DefaultLimit
	}

	rows, total, err := f.storage.UserFavorites(ctx, userID, storage.FavoriteFilter{
		Search:    strings.TrimSpace(query.Search),
		Available: query.Available,
		Offset:    uint((page - 1) * limit), //nolint: gosec
		Limit:     uint(limit),              //nolint: gosec
	})
	if err != nil {
		return nil, domain.Pagination{}, fmt.Errorf("could not list favorites: %w", err)
	}

	return rows, domain.NewPagination(page, limit, total), nil
}

// Create saves a domain for the user. The domain is lowercased; saving the same
// domain twice is a conflict.
func (f favorites) Create(ctx context.Context, userID domain.UserID, input CreateInput) (*domain.Favorite, error) {
	name := strings.ToLower(strings.TrimSpace(input.Domain))

	var fields []serrors.FieldError
	if name == "" || utf8.RuneCountInString(name) > maxDomainLength {
		fields = append(fields, serrors.FieldError{Field: "domain", Message: "must be between 1 and 255 characters"})
	}
	fields = append(fields, validateTags(input.Tags)...)
	if utf8.RuneCountInString(input.Notes) > maxNotesLength {
		fields = append(fields, serrors.FieldError{Field: "notes", Message: "must be at most 500 characters"})
	}
	if len(fields) > 0 {
		return nil, serrors.Invalid("request validation failed", fields...)
	}

	if f.options.MaxPerUser > 0 {
		n, err := f.storage.CountUserFavorites(ctx, userID)
		if err != nil {
			return nil, fmt.Errorf("could not count favorites: %w", err)
		}
		if n >= int64(f.options.MaxPerUser) {
			return nil, serrors.With(serrors.ErrForbidden, "favorites limit of %d reached", f.options.MaxPerUser)
		}
	}

	favorite := domain.Favorite{
		UserID:      userID,
		Domain:      name,
		Tags:        cleanTags(input.Tags),
		Notes:       input.Notes,
		IsAvailable: input.IsAvailable,
	}
	if input.IsAvailable != nil {
		favorite.LastCheckedAt = time.Now()
	}

	res, err := f.storage.StoreFavorite(ctx, favorite)
	if errors.Is(err, storage.ErrDuplicate) {
		return nil, serrors.Wrap(serrors.ErrConflict, err, "domain already in favorites")
	}
	if err != nil {
		return nil, fmt.Errorf("could not store favorite: %w", err)
	}

	return res, nil
}

func (f favorites) Get(ctx context.Context, userID domain.UserID, id domain.FavoriteID) (*domain.Favorite, error) {
	res, err := f.storage.FavoriteByID(ctx, userID, id)
	if err != nil {
		return nil, fmt.Errorf("could not get favorite: %w", err)
	}
	if res == nil {
		return nil, serrors.With(serrors.ErrNotFound, "favorite not found")
	}

	return res, nil
}

func (f favorites) Update(ctx context.Context,
	userID domain.UserID,
	id domain.FavoriteID,
	input UpdateInput) (*domain.Favorite, error) {
	var fields []serrors.FieldError
	if input.Tags != nil {
		fields = append(fields, validateTags(*input.Tags)...)
	}
	if input.Notes != nil && utf8.RuneCountInString(*input.Notes) > maxNotesLength {
		fields = append(fields, serrors.FieldError{Field: "notes", Message: "must be at most 500 characters"})
	}
	if len(fields) > 0 {
		return nil, serrors.Invalid("request validation failed", fields...)
	}

	updates := storage.FavoriteUpdates{
		Notes:       input.Notes,
		IsAvailable: input.IsAvailable,
	}
	if input.Tags != nil {
		tags := cleanTags(*input.Tags)
		updates.Tags = &tags
	}

	res, err := f.storage.UpdateFavorite(ctx, userID, id, updates)
	if err != nil {
		return nil, fmt.Errorf("could not update favorite: %w", err)
	}
	if res == nil {
		return nil, serrors.With(serrors.ErrNotFound, "favorite not found")
	}

	return res, nil
}

func (f favorites) Delete(ctx context.Context, userID domain.UserID, id domain.FavoriteID) error {
	n, err := f.storage.DeleteFavorites(ctx, userID, id)
	if err != nil {
		return fmt.Errorf("could not delete favorite: %w", err)
	}
	if n == 0 {
		return serrors.With(serrors.ErrNotFound, "favorite not found")
	}

	return nil
}

// DeleteMany removes the given favorites and reports how many existed.
func (f favorites) DeleteMany(ctx context.Context, userID domain.UserID, ids []domain.FavoriteID) (int64, error) {
	if len(ids) == 0 {
		return 0, serrors.Invalid("no favorite ids provided", serrors.FieldError{Field: "ids", Message: "required"})
	}

	n, err := f.storage.DeleteFavorites(ctx, userID, ids...)
	if err != nil {
		return 0, fmt.Errorf("could not delete favorites: %w", err)
	}

	return n, nil
}

func validateTags(tags []string) []serrors.FieldError {
	var fields []serrors.FieldError
	if len(tags) > maxTags {
		fields = append(fields, serrors.FieldError{Field: "tags", Message: "must contain at most 10 tags"})
	}
	for i, tag := range tags {
		if n := utf8.RuneCountInString(strings.TrimSpace(tag)); n == 0 || n > maxTagLength {
			fields = append(fields, serrors.FieldError{
				Field:   fmt.Sprintf("tags[%d]", i),
				Message: "must be between 1 and 50 characters",
			})
		}
	}

	return fields
}

// cleanTags trims tags and drops repeats, keeping the first spelling.
func cleanTags(tags []string) []string {
	out := make([]string, 0, len(tags))
	seen := make(map[string]struct{}, len(tags))
	for _, tag := range tags {
		tag = strings.TrimSpace(tag)
		key := strings.ToLower(tag)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, tag)
	}

	return out
}

// New creates a Favorites service backed by the provided storage.
func New(storage storage.FavoriteStorage, options Options) Favorites {
	return &favorites{
		options: options,
		storage: storage,
	}
}

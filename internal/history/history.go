package history

import (
	"context"
	"fmt"
	"smartdomain/internal/config"
	"smartdomain/pkg/domain"
	"smartdomain/pkg/serrors"
	"smartdomain/pkg/storage"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/go-faster/jx"
)

const (
	maxSearchTermLength = 500
)

// Options configure listing defaults, deduplication and background jobs.
type Options struct {
	// DedupWindow is the period in which repeating a search does not create a
	// new entry. Zero disables deduplication.
	DedupWindow  time.Duration
	DefaultLimit int
	MaxLimit     int
	// MaxAttempts bounds retries of background record jobs.
	MaxAttempts int
}

// DefaultOptions mirror the configuration defaults.
var DefaultOptions = Options{
	DedupWindow:  time.Hour,
	DefaultLimit: 50,
	MaxLimit:     100,
	MaxAttempts:  3,
}

// NewOptions constructs an Options value from the provided application config.
func NewOptions(cfg *config.Config) Options {
	return Options{
		DedupWindow:  cfg.History.DedupWindow,
		DefaultLimit: cfg.History.DefaultLimit,
		MaxLimit:     cfg.History.MaxLimit,
		MaxAttempts:  cfg.Worker.MaxAttempts,
	}
}

type history struct {
	options Options
	storage storage.HistoryStorage
	jobs    storage.JobStorage
	now     func() time.Time
}

func (h history) List(ctx context.Context,
	userID domain.UserID,
	query ListQuery) ([]domain.SearchHistory, domain.Pagination, error) {
	var fields []serrors.FieldError
	if query.Page < 0 {
		fields = append(fields, serrors.FieldError{Field: "page", Message: "must be at least 1"})
	}
	if query.Limit < 0 || query.Limit > h.options.MaxLimit {
		fields = append(fields, serrors.FieldError{
			Field:   "limit",
			Message: "must be between 1 and " + strconv.Itoa(h.options.MaxLimit),
		})
	}
	if query.SearchType != "" && !query.SearchType.Valid() {
		fields = append(fields, serrors.FieldError{Field: "searchType", Message: "must be keyword, domain or company"})
	}
	if len(fields) > 0 {
		return nil, domain.Pagination{}, serrors.Invalid("invalid query parameters", fields...)
	}

	page, limit := max(query.Page, 1), query.Limit
	if limit == 0 {
		limit = h.options.DefaultLimit
	}

	rows, total, err := h.storage.UserHistory(ctx, userID, storage.HistoryFilter{
		Search:     strings.TrimSpace(query.Search),
		SearchType: query.SearchType,
		Offset:     uint((page - 1) * limit), //nolint: gosec
		Limit:      uint(limit),              //nolint: gosec
	})
	if err != nil {
		return nil, domain.Pagination{}, fmt.Errorf("could not list search history: %w", err)
	}

	return rows, domain.NewPagination(page, limit, total), nil
}

func (h history) Record(ctx context.Context,
	userID domain.UserID,
	input RecordInput) (*domain.SearchHistory, bool, error) {
	entry, err := h.normalize(userID, input)
	if err != nil {
		return nil, false, err
	}

	if h.options.DedupWindow > 0 {
		existing, err := h.storage.RecentHistory(ctx,
			userID,
			entry.SearchTerm,
			entry.SearchType,
			h.now().Add(-h.options.DedupWindow))
		if err != nil {
			return nil, false, fmt.Errorf("could not look up recent search: %w", err)
		}
		if existing != nil {
			return existing, false, nil
		}
	}

	res, err := h.storage.StoreHistory(ctx, entry)
	if err != nil {
		return nil, false, fmt.Errorf("could not store search history: %w", err)
	}

	return res, true, nil
}

// Enqueue validates the input and adds a background job that records it.
func (h history) Enqueue(ctx context.Context, userID domain.UserID, input RecordInput) error {
	if _, err := h.normalize(userID, input); err != nil {
		return err
	}
	if h.jobs == nil {
		return serrors.With(serrors.ErrUnavailable, "background jobs are not configured")
	}

	if _, err := h.jobs.AddJob(ctx, JobArgs{
		UserID:      userID,
		Input:       input,
		maxAttempts: h.options.MaxAttempts,
	}, nil); err != nil {
		return fmt.Errorf("could not add record job: %w", err)
	}

	return nil
}

func (h history) Get(ctx context.Context, userID domain.UserID, id domain.HistoryID) (*domain.SearchHistory, error) {
	res, err := h.storage.HistoryByID(ctx, userID, id)
	if err != nil {
		return nil, fmt.Errorf("could not get search history: %w", err)
	}
	if res == nil {
		return nil, serrors.With(serrors.ErrNotFound, "history entry not found")
	}

	return res, nil
}

func (h history) Delete(ctx context.Context, userID domain.UserID, ids []domain.HistoryID) (int64, error) {
	if len(ids) == 0 {
		return 0, serrors.Invalid("no history ids provided", serrors.FieldError{Field: "ids", Message: "required"})
	}

	n, err := h.storage.DeleteHistory(ctx, userID, ids...)
	if err != nil {
		return 0, fmt.Errorf("could not delete search history: %w", err)
	}

	return n, nil
}

func (h history) Clear(ctx context.Context, userID domain.UserID) (int64, error) {
	n, err := h.storage.ClearHistory(ctx, userID)
	if err != nil {
		return 0, fmt.Errorf("could not clear search history: %w", err)
	}

	return n, nil
}

// Stats aggregates the history of the user. Today starts at midnight UTC.
func (h history) Stats(ctx context.Context, userID domain.UserID) (domain.HistoryStats, error) {
	stats, err := h.storage.HistoryStats(ctx, userID, h.now().UTC().Truncate(24*time.Hour))
	if err != nil {
		return domain.HistoryStats{}, fmt.Errorf("could not get search history stats: %w", err)
	}

	return stats, nil
}

func (h history) normalize(userID domain.UserID, input RecordInput) (domain.SearchHistory, error) {
	term := strings.TrimSpace(input.SearchTerm)
	searchType := input.SearchType
	if searchType == "" {
		searchType = domain.SearchTypeKeyword
	}

	var fields []serrors.FieldError
	if n := utf8.RuneCountInString(term); n == 0 || n > maxSearchTermLength {
		fields = append(fields, serrors.FieldError{Field: "searchTerm", Message: "must be between 1 and 500 characters"})
	}
	if !searchType.Valid() {
		fields = append(fields, serrors.FieldError{Field: "searchType", Message: "must be keyword, domain or company"})
	}
	if input.ResultCount != nil && *input.ResultCount < 0 {
		fields = append(fields, serrors.FieldError{Field: "resultCount", Message: "must not be negative"})
	}
	if len(input.DomainResults) > 0 && !jx.Valid(input.DomainResults) {
		fields = append(fields, serrors.FieldError{Field: "domainResults", Message: "must be valid JSON"})
	}
	if len(input.Filters) > 0 && !jx.Valid(input.Filters) {
		fields = append(fields, serrors.FieldError{Field: "filters", Message: "must be valid JSON"})
	}
	if len(fields) > 0 {
		return domain.SearchHistory{}, serrors.Invalid("request validation failed", fields...)
	}

	count := arrayLength(input.DomainResults)
	if input.ResultCount != nil {
		count = *input.ResultCount
	}

	return domain.SearchHistory{
		UserID:        userID,
		SearchTerm:    term,
		DomainResults: input.DomainResults,
		ResultCount:   count,
		SearchType:    searchType,
		Filters:       input.Filters,
	}, nil
}

// arrayLength counts the elements of a JSON array, or returns 0 for any other value.
func arrayLength(raw []byte) int {
	d := jx.DecodeBytes(raw)
	if d.Next() != jx.Array {
		return 0
	}

	n := 0
	if err := d.Arr(func(d *jx.Decoder) error {
		n++

		return d.Skip()
	}); err != nil {
		return 0
	}

	return n
}

// New creates a History service. Jobs may be nil when background recording is
// not used.
func New(storage storage.HistoryStorage, jobs storage.JobStorage, options Options) History {
	return &history{
		options: options,
		storage: storage,
		jobs:    jobs,
		now:     time.Now,
	}
}

package generator_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"smartdomain/internal/ai"
	mockai "smartdomain/internal/ai/mock"
	mockdomaincheck "smartdomain/internal/domaincheck/mock"
	"smartdomain/internal/generator"
	"smartdomain/pkg/cache"
	"smartdomain/pkg/domain"
	"smartdomain/pkg/serrors"
)

var testOptions = generator.Options{
	Timeout:              time.Second,
	DefaultTLDs:          []string{".com", ".io", ".app"},
	DefaultSuggestions:   2,
	MaxSuggestions:       4,
	MinDescriptionLength: 5,
	MaxDescriptionLength: 500,
	AnalysisCacheTTL:     time.Hour,
	NamesCacheTTL:        time.Hour,
}

type deps struct {
	analyzer *mockai.MockAnalyzer
	namer    *mockai.MockNamer
	checker  *mockdomaincheck.MockChecker
}

func newTestGenerator(t *testing.T, c cache.Cache, options generator.Options) (deps, generator.Generator) {
	t.Helper()

	ctrl := gomock.NewController(t)
	d := deps{
		analyzer: mockai.NewMockAnalyzer(ctrl),
		namer:    mockai.NewMockNamer(ctrl),
		checker:  mockdomaincheck.NewMockChecker(ctrl),
	}

	return d, generator.New(d.analyzer, d.namer, d.checker, c, nil, options)
}

func analysis() *domain.AnalysisResult {
	return &domain.AnalysisResult{
		InputID:            "in-1",
		Keywords:           []string{"photo", "share"},
		SemanticExtensions: map[string][]string{"photo": {"image"}},
	}
}

func names(n ...string) []domain.ProjectName {
	out := make([]domain.ProjectName, 0, len(n))
	for i, name := range n {
		out = append(out, domain.ProjectName{ID: name, Name: name, Type: domain.NameTypeNewWord, Confidence: 0.9 - float64(i)/10})
	}

	return out
}

func TestGenerator_Generate(t *testing.T) {
	d, g := newTestGenerator(t, nil, testOptions)

	d.analyzer.EXPECT().Analyze(gomock.Any(), "A photo sharing app").Return(analysis(), nil)
	d.namer.EXPECT().Generate(gomock.Any(), ai.NameRequest{
		Keywords:     []string{"photo", "share"},
		Extensions:   map[string][]string{"photo": {"image"}},
		TargetMarket: domain.MarketGlobal,
		MaxCount:     2,
	}).Return(names("Snapify", "Lumo"), nil)
	d.checker.EXPECT().Check(gomock.Any(), "Snapify", []string{".com", ".io", ".app"}, true).
		Return([]domain.DomainInfo{{Domain: "snapify.com"}})
	d.checker.EXPECT().Check(gomock.Any(), "Lumo", []string{".com", ".io", ".app"}, true).
		Return([]domain.DomainInfo{{Domain: "lumo.com", Available: true}})

	res, err := g.Generate(context.Background(), generator.Request{Description: "  A photo sharing app "})
	require.NoError(t, err)
	require.Equal(t, "A photo sharing app", res.Query)
	require.Equal(t, []string{"photo", "share"}, res.Analysis.Keywords)
	require.Len(t, res.Suggestions, 2)
	require.Equal(t, "Lumo", res.Suggestions[0].Name)
	require.Equal(t, "lumo.com", res.Suggestions[0].BestDomain.Domain)
	require.Equal(t, "Snapify", res.Suggestions[1].Name)
	require.False(t, res.GeneratedAt.IsZero())
	require.GreaterOrEqual(t, res.ProcessingTimeMs, int64(0))
}

func TestGenerator_OptionsAndCap(t *testing.T) {
	d, g := newTestGenerator(t, nil, testOptions)

	include := false
	d.analyzer.EXPECT().Analyze(gomock.Any(), gomock.Any()).Return(analysis(), nil)
	d.namer.EXPECT().Generate(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, req ai.NameRequest) ([]domain.ProjectName, error) {
			require.Equal(t, 2, req.MaxCount)
			require.Equal(t, domain.MarketChina, req.TargetMarket)

			return names("Kuaipai", "Paipai"), nil
		},
	)
	d.checker.EXPECT().Check(gomock.Any(), gomock.Any(), []string{".dev", ".ai"}, false).
		Return(nil).Times(2)

	res, err := g.Generate(context.Background(), generator.Request{
		Description:    "A photo sharing app",
		MaxSuggestions: 4,
		SuggestionCap:  2,
		IncludePricing: &include,
		TargetMarket:   domain.MarketChina,
		PreferredTLDs:  []string{"DEV", ".ai", ".dev"},
	})
	require.NoError(t, err)
	require.Len(t, res.Suggestions, 2)
	require.NotNil(t, res.Suggestions[0].Domains)
}

func TestGenerator_Validation(t *testing.T) {
	cases := []struct {
		name  string
		req   generator.Request
		field string
	}{
		{name: "short description", req: generator.Request{Description: " abc "}, field: "description"},
		{name: "long description", req: generator.Request{Description: strings.Repeat("a", 501)}, field: "description"},
		{
			name:  "too many suggestions",
			req:   generator.Request{Description: "photo app", MaxSuggestions: 5},
			field: "options.maxSuggestions",
		},
		{
			name:  "negative suggestions",
			req:   generator.Request{Description: "photo app", MaxSuggestions: -1},
			field: "options.maxSuggestions",
		},
		{
			name:  "unknown market",
			req:   generator.Request{Description: "photo app", TargetMarket: "mars"},
			field: "options.targetMarket",
		},
		{
			name:  "bad tld",
			req:   generator.Request{Description: "photo app", PreferredTLDs: []string{".com", "c0m"}},
			field: "options.preferredTlds[1]",
		},
		{
			name: "too many tlds",
			req: generator.Request{Description: "photo app", PreferredTLDs: []string{
				".a1", ".b", ".c", ".d", ".e", ".f", ".g", ".h", ".i", ".j", ".k",
			}},
			field: "options.preferredTlds",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, g := newTestGenerator(t, nil, testOptions)

			_, err := g.Generate(context.Background(), tc.req)
			require.ErrorIs(t, err, serrors.ErrBadRequest)

			var se *serrors.Error
			require.ErrorAs(t, err, &se)
			fields, ok := se.Details().([]serrors.FieldError)
			require.True(t, ok)

			var got []string
			for _, f := range fields {
				got = append(got, f.Field)
			}
			require.Contains(t, got, tc.field)
		})
	}
}

func TestGenerator_Timeout(t *testing.T) {
	options := testOptions
	options.Timeout = 50 * time.Millisecond
	d, g := newTestGenerator(t, nil, options)

	d.analyzer.EXPECT().Analyze(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, _ string) (*domain.AnalysisResult, error) {
			<-ctx.Done()

			return nil, serrors.Wrap(serrors.ErrInternal, ctx.Err(), "text analysis failed")
		},
	)

	start := time.Now()
	_, err := g.Generate(context.Background(), generator.Request{Description: "A photo sharing app"})
	require.Less(t, time.Since(start), time.Second)
	require.ErrorIs(t, err, serrors.ErrTimeout)

	var se *serrors.Error
	require.ErrorAs(t, err, &se)
	require.Equal(t, generator.TimeoutSuggestions, se.Details())
}

func TestGenerator_TimeoutWhileUpstreamHangs(t *testing.T) {
	options := testOptions
	options.Timeout = 20 * time.Millisecond
	d, g := newTestGenerator(t, nil, options)

	// the analyzer ignores cancellation and only returns once the test is done
	release := make(chan struct{})
	t.Cleanup(func() { close(release) })
	d.analyzer.EXPECT().Analyze(gomock.Any(), gomock.Any()).DoAndReturn(
		func(context.Context, string) (*domain.AnalysisResult, error) {
			<-release

			return nil, errors.New("late")
		},
	)

	_, err := g.Generate(context.Background(), generator.Request{Description: "A photo sharing app"})
	require.ErrorIs(t, err, serrors.ErrTimeout)
}

func TestGenerator_CallerCancelled(t *testing.T) {
	d, g := newTestGenerator(t, nil, testOptions)

	ctx, cancel := context.WithCancel(context.Background())
	d.analyzer.EXPECT().Analyze(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, _ string) (*domain.AnalysisResult, error) {
			cancel()
			<-ctx.Done()

			return nil, ctx.Err()
		},
	)

	_, err := g.Generate(ctx, generator.Request{Description: "A photo sharing app"})
	require.ErrorIs(t, err, context.Canceled)
	require.NotErrorIs(t, err, serrors.ErrTimeout)
}

func TestGenerator_AnalysisError(t *testing.T) {
	d, g := newTestGenerator(t, nil, testOptions)

	d.analyzer.EXPECT().Analyze(gomock.Any(), gomock.Any()).
		Return(nil, serrors.With(serrors.ErrInternal, "text analysis failed"))

	_, err := g.Generate(context.Background(), generator.Request{Description: "A photo sharing app"})
	require.ErrorIs(t, err, serrors.ErrInternal)
}

func TestGenerator_Cache(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	d, g := newTestGenerator(t, cache.NewRedis(client), testOptions)

	d.analyzer.EXPECT().Analyze(gomock.Any(), gomock.Any()).Return(analysis(), nil).Times(1)
	d.namer.EXPECT().Generate(gomock.Any(), gomock.Any()).Return(names("Snapify"), nil).Times(1)
	d.checker.EXPECT().Check(gomock.Any(), "Snapify", gomock.Any(), true).Return(nil).Times(2)

	req := generator.Request{Description: "A photo sharing app", MaxSuggestions: 1}
	first, err := g.Generate(context.Background(), req)
	require.NoError(t, err)

	req.Description = "a PHOTO sharing app"
	second, err := g.Generate(context.Background(), req)
	require.NoError(t, err)
	require.Equal(t, first.Suggestions[0].ProjectName, second.Suggestions[0].ProjectName)
	require.Equal(t, first.Analysis, second.Analysis)
}

func TestGenerator_NamesCacheKeepsExtensionsApart(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	d, g := newTestGenerator(t, cache.NewRedis(client), testOptions)

	withExtensions := func(ext ...string) *domain.AnalysisResult {
		a := analysis()
		a.SemanticExtensions = map[string][]string{"photo": ext}

		return a
	}
	gomock.InOrder(
		d.analyzer.EXPECT().Analyze(gomock.Any(), "A photo sharing app").Return(withExtensions("image"), nil),
		d.analyzer.EXPECT().Analyze(gomock.Any(), "A photo printing shop").Return(withExtensions("print"), nil),
	)
	d.namer.EXPECT().Generate(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req ai.NameRequest) ([]domain.ProjectName, error) {
			return names("Snap" + req.Extensions["photo"][0]), nil
		}).Times(2)
	d.checker.EXPECT().Check(gomock.Any(), gomock.Any(), gomock.Any(), true).Return(nil).Times(2)

	first, err := g.Generate(context.Background(), generator.Request{Description: "A photo sharing app", MaxSuggestions: 1})
	require.NoError(t, err)
	second, err := g.Generate(context.Background(), generator.Request{Description: "A photo printing shop", MaxSuggestions: 1})
	require.NoError(t, err)

	require.Equal(t, "Snapimage", first.Suggestions[0].Name)
	require.Equal(t, "Snapprint", second.Suggestions[0].Name)
}

package ai_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"smartdomain/internal/ai"
	"smartdomain/pkg/domain"
	"smartdomain/pkg/llm"
	mockllm "smartdomain/pkg/llm/mock"
	"smartdomain/pkg/serrors"
)

func TestAnalyzer_Analyze(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mockllm.NewMockClient(ctrl)
	a := ai.NewAnalyzer(client, ai.DefaultOptions)

	client.EXPECT().Complete(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, p llm.Prompt) (string, error) {
			require.True(t, p.JSON)
			require.InDelta(t, 0.7, p.Temperature, 1e-9)
			require.Equal(t, 800, p.MaxTokens)
			require.Contains(t, p.User, "photo sharing app")

			return `{"keywords":["photo","share"],"semanticExtensions":{"photo":["image"]}}`, nil
		},
	)

	res, err := a.Analyze(context.Background(), "photo sharing app")
	require.NoError(t, err)
	require.Equal(t, []string{"photo", "share"}, res.Keywords)
	require.NotEmpty(t, res.InputID)
	require.Equal(t, "unknown", res.DomainContext.BusinessType)
}

func TestAnalyzer_Failures(t *testing.T) {
	cases := []struct {
		name   string
		answer string
		err    error
	}{
		{name: "llm error", err: errors.New("boom")},
		{name: "not json", answer: "I am a language model"},
		{name: "no keywords", answer: `{"keywords":[]}`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			client := mockllm.NewMockClient(ctrl)
			client.EXPECT().Complete(gomock.Any(), gomock.Any()).Return(tc.answer, tc.err)

			_, err := ai.NewAnalyzer(client, ai.DefaultOptions).Analyze(context.Background(), "photo sharing app")
			require.ErrorIs(t, err, serrors.ErrInternal)
			require.Contains(t, err.Error(), "text analysis failed")
		})
	}
}

func TestAnalyzer_KeepsContextError(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mockllm.NewMockClient(ctrl)
	client.EXPECT().Complete(gomock.Any(), gomock.Any()).Return("", context.DeadlineExceeded)

	_, err := ai.NewAnalyzer(client, ai.DefaultOptions).Analyze(context.Background(), "photo sharing app")
	require.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestNamer_Generate(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mockllm.NewMockClient(ctrl)
	n := ai.NewNamer(client, ai.DefaultOptions)

	client.EXPECT().Complete(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, p llm.Prompt) (string, error) {
			require.InDelta(t, 0.9, p.Temperature, 1e-9)
			require.Equal(t, 1000, p.MaxTokens)
			require.Contains(t, p.User, "photo, share")
			require.Contains(t, p.User, "Generate 2 creative project names")
			require.True(t, strings.Contains(p.User, "Target market: global"))

			return `{"suggestions":[
				{"name":"Snapify","nameType":"concept_fusion","confidence":0.85,"reasoning":"snap + ify"},
				{"name":"PixShare","nameType":"direct_combination"},
				{"name":"Lumo","nameType":"new_word","confidence":0.6}
			]}`, nil
		},
	)

	names, err := n.Generate(context.Background(), ai.NameRequest{
		Keywords:   []string{"photo", "share"},
		Extensions: map[string][]string{"photo": {"image"}},
		MaxCount:   2,
	})
	require.NoError(t, err)
	require.Len(t, names, 2)
	require.Equal(t, "Snapify", names[0].Name)
	require.Equal(t, domain.NameTypeConceptFusion, names[0].Type)
	require.Equal(t, "PixShare", names[1].Name)
	require.InDelta(t, 0.7, names[1].Confidence, 1e-9)
}

func TestNamer_ChinaMarketPrompt(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mockllm.NewMockClient(ctrl)

	client.EXPECT().Complete(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, p llm.Prompt) (string, error) {
			require.Contains(t, p.User, "pinyin")

			return `["Kuaipai"]`, nil
		},
	)

	names, err := ai.NewNamer(client, ai.DefaultOptions).Generate(context.Background(), ai.NameRequest{
		Keywords:     []string{"photo"},
		TargetMarket: domain.MarketChina,
		MaxCount:     1,
	})
	require.NoError(t, err)
	require.Len(t, names, 1)
	require.Equal(t, domain.NameTypeNewWord, names[0].Type)
}

func TestNamer_NoNames(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mockllm.NewMockClient(ctrl)
	client.EXPECT().Complete(gomock.Any(), gomock.Any()).Return(`{"suggestions":[]}`, nil)

	_, err := ai.NewNamer(client, ai.DefaultOptions).Generate(context.Background(), ai.NameRequest{
		Keywords: []string{"photo"},
		MaxCount: 2,
	})
	require.ErrorIs(t, err, serrors.ErrInternal)
}

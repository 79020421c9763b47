package ai

import (
	"testing"

	"github.com/stretchr/testify/require"

	"smartdomain/pkg/domain"
)

func TestStripFences(t *testing.T) {
	require.Equal(t, `{"a":1}`, stripFences("```json\n{\"a\":1}\n```"))
	require.Equal(t, `{"a":1}`, stripFences("  {\"a\":1} "))
	require.Equal(t, `[1]`, stripFences("```\n[1]```"))
}

func TestParseAnalysis(t *testing.T) {
	raw := "```json\n" + `{
		"keywords": ["photo", "Share", "photo", "", 42],
		"semanticExtensions": {"photo": ["image", "snap"], "share": "send", "": ["x"]},
		"domainContext": {"businessType": "social", "coreValue": "memories"},
		"extra": {"nested": [1, 2, 3]}
	}` + "\n```"

	res, err := parseAnalysis(raw)
	require.NoError(t, err)
	require.Equal(t, []string{"photo", "Share", "42"}, res.Keywords)
	require.Equal(t, map[string][]string{
		"photo": {"image", "snap"},
		"share": {"send"},
	}, res.SemanticExtensions)
	require.Equal(t, domain.DomainContext{
		BusinessType:   "social",
		TargetAudience: "unknown",
		CoreValue:      "memories",
	}, res.DomainContext)
}

func TestParseAnalysis_Invalid(t *testing.T) {
	_, err := parseAnalysis("sorry, I cannot help with that")
	require.Error(t, err)

	_, err = parseAnalysis(`["photo"]`)
	require.Error(t, err)

	_, err = parseAnalysis(`{"keywords": ["photo"`)
	require.Error(t, err)
}

func TestParseNames_Shapes(t *testing.T) {
	cases := []struct {
		name string
		raw  string
	}{
		{name: "root array", raw: `[{"name":"Snapify","nameType":"new_word","confidence":0.9}]`},
		{name: "suggestions", raw: `{"suggestions":[{"name":"Snapify","type":"new_word","confidence":"0.9"}]}`},
		{name: "names", raw: `{"names":[{"name":"Snapify","nameType":"new_word","confidence":0.9}],"note":"x"}`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			names, err := parseNames(tc.raw)
			require.NoError(t, err)
			require.Len(t, names, 1)
			require.Equal(t, "Snapify", names[0].Name)
			require.Equal(t, "new_word", names[0].Type)
			require.True(t, names[0].HasConfidence)
			require.InDelta(t, 0.9, names[0].Confidence, 1e-9)
		})
	}
}

func TestParseNames_StringItems(t *testing.T) {
	names, err := parseNames(`{"names":["Snapify", " PixShare ", 7, ""]}`)
	require.NoError(t, err)
	require.Equal(t, []rawName{{Name: "Snapify"}, {Name: "PixShare"}}, names)
}

func TestParseNames_Invalid(t *testing.T) {
	_, err := parseNames(`"Snapify"`)
	require.Error(t, err)
}

func TestNormalize(t *testing.T) {
	raw := []rawName{
		{Name: "Snapify", Type: "concept_fusion", Confidence: 0.8, HasConfidence: true, Reasoning: "snap"},
		{Name: "snapify", Type: "new_word"},
		{Name: "  "},
		{Name: "PixShare", Type: "rhyme"},
		{Name: "Moment", Confidence: -1, HasConfidence: true},
		{Name: "Lumo", Confidence: 3, HasConfidence: true},
	}

	names := normalize(raw, 0)
	require.Len(t, names, 4)

	require.Equal(t, "Snapify", names[0].Name)
	require.Equal(t, domain.NameTypeConceptFusion, names[0].Type)
	require.InDelta(t, 0.8, names[0].Confidence, 1e-9)
	require.Equal(t, "snap", names[0].Reasoning)

	require.Equal(t, domain.NameTypeNewWord, names[1].Type)
	require.InDelta(t, defaultConfidence, names[1].Confidence, 1e-9)
	require.InDelta(t, defaultConfidence, names[2].Confidence, 1e-9)
	require.InDelta(t, 1.0, names[3].Confidence, 1e-9)

	ids := map[string]struct{}{}
	for _, n := range names {
		require.NotEmpty(t, n.ID)
		ids[n.ID] = struct{}{}
	}
	require.Len(t, ids, len(names))

	require.Len(t, normalize(raw, 2), 2)
}

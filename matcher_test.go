package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testPayload() *FniPayload {
	return &FniPayload{Data: FniData{Result: []FaqGroup{
		{
			Name:             "Indemnity",
			DocumentTypeName: "Guarantee Agreement",
			ClientTypeName:   "Corporate",
			FnIs: []FniRecord{
				{Question: "What happens on default?", Response: "Lender may call", ClauseName: "Indemnity"},
			},
		},
		{
			Name:             "Termination",
			DocumentTypeName: "Facility Agreement",
			FnIs: []FniRecord{
				{Question: "Can the borrower terminate early?", Response: "With notice", SubmittedByUserName: "Ada"},
				{Question: "What fees apply to early termination?", Response: "Break costs apply"},
			},
		},
	}}}
}

func tokensQuery(tokens ...string) NormalizedQuery {
	text := ""
	for i, tok := range tokens {
		if i > 0 {
			text += " "
		}
		text += tok
	}
	return NormalizedQuery{Text: text, Tokens: tokens}
}

func TestMatch_AllTokens(t *testing.T) {
	results := Match(tokensQuery("indemnity"), testPayload(), PolicyAllTokens)

	require.Len(t, results, 1)
	assert.Equal(t, "What happens on default?", results[0].Question)
	assert.Equal(t, "Lender may call", results[0].Answer)
	assert.Equal(t, "indemnity", results[0].Clause)
	assert.Equal(t, "guarantee agreement", results[0].DocumentType)
}

func TestMatch_DefaultsResolveFromGroup(t *testing.T) {
	payload := testPayload()
	results := Match(tokensQuery("termination"), payload, PolicyAllTokens)

	require.Len(t, results, 2)
	// Record fields were empty upstream; group values and the user
	// placeholder fill in.
	assert.Equal(t, "termination", results[0].Clause)
	assert.Equal(t, "facility agreement", results[0].DocumentType)
	assert.Equal(t, "Ada", results[0].SubmittedBy)
	assert.Equal(t, "Unknown User", results[1].SubmittedBy)

	// Defaults are resolved in the projection only, never written back.
	assert.Equal(t, "", payload.Data.Result[1].FnIs[0].ClauseName)
	assert.Equal(t, "", payload.Data.Result[1].FnIs[0].SubmittedByUserName)
}

func TestMatch_DatasetOrderPreserved(t *testing.T) {
	results := Match(tokensQuery("termination"), testPayload(), PolicyAllTokens)

	require.Len(t, results, 2)
	assert.Equal(t, "Can the borrower terminate early?", results[0].Question)
	assert.Equal(t, "What fees apply to early termination?", results[1].Question)
}

func TestMatch_CaseInsensitive(t *testing.T) {
	n := newTestNormalizer(t)
	payload := testPayload()

	upper := Match(n.Query("Guarantee", false), payload, PolicyAllTokens)
	lower := Match(n.Query("guarantee", false), payload, PolicyAllTokens)

	assert.Equal(t, upper, lower)
	require.Len(t, upper, 1)
}

func TestMatch_AnyTokenIsLooserThanAllTokens(t *testing.T) {
	payload := testPayload()
	q := tokensQuery("termination", "indemnity")

	all := Match(q, payload, PolicyAllTokens)
	any := Match(q, payload, PolicyAnyToken)

	// No record carries both terms, but every record carries one.
	assert.Empty(t, all)
	assert.Len(t, any, 3)
}

func TestMatch_AllTokensMonotonic(t *testing.T) {
	payload := testPayload()

	broad := Match(tokensQuery("termination"), payload, PolicyAllTokens)
	narrow := Match(tokensQuery("termination", "fees"), payload, PolicyAllTokens)

	// Adding a token can only shrink the result set.
	require.Len(t, broad, 2)
	require.Len(t, narrow, 1)
	for _, r := range narrow {
		assert.Contains(t, broad, r)
	}
}

func TestMatch_Substring(t *testing.T) {
	q := NormalizedQuery{Text: "early termination"}

	results := Match(q, testPayload(), PolicySubstring)
	require.Len(t, results, 1)
	assert.Equal(t, "What fees apply to early termination?", results[0].Question)
}

func TestMatch_EmptyQueryReturnsNothing(t *testing.T) {
	assert.Nil(t, Match(NormalizedQuery{}, testPayload(), PolicyAllTokens))
	assert.Nil(t, Match(NormalizedQuery{}, testPayload(), PolicyAnyToken))
	assert.Nil(t, Match(NormalizedQuery{Text: "  "}, testPayload(), PolicySubstring))
}

func TestMatch_NoMatchIsEmptyNotError(t *testing.T) {
	results := Match(tokensQuery("arbitration"), testPayload(), PolicyAllTokens)
	assert.Empty(t, results)
}

func TestMatch_NilPayload(t *testing.T) {
	assert.Nil(t, Match(tokensQuery("indemnity"), nil, PolicyAllTokens))
}

// Fuzzy command end to end: prefix stripped, filler dropped, one match.
func TestMatch_FuzzyCommandScenario(t *testing.T) {
	n := newTestNormalizer(t)

	q := n.Query("show me fni for indemnity", true)
	require.Equal(t, []string{"indemnity"}, q.Tokens)

	results := Match(q, testPayload(), PolicyAllTokens)
	require.Len(t, results, 1)
	assert.Equal(t, "indemnity", results[0].Clause)
}

func TestParseMatchPolicy(t *testing.T) {
	for input, want := range map[string]MatchPolicy{
		"":          PolicyAllTokens,
		"all":       PolicyAllTokens,
		"any":       PolicyAnyToken,
		"substring": PolicySubstring,
		"ANY":       PolicyAnyToken,
	} {
		got, err := ParseMatchPolicy(input)
		require.NoError(t, err, "input %q", input)
		assert.Equal(t, want, got, "input %q", input)
	}

	got, err := ParseMatchPolicy("fuzzy")
	assert.Error(t, err)
	assert.Equal(t, PolicyAllTokens, got)
}

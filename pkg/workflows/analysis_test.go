package workflows

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/recapd/recapd/pkg/models"
)

func baseSchema() []models.SchemaEntry {
	return []models.SchemaEntry{
		{Key: "tldr", Description: "essence", Type: models.SectionKindString},
		{Key: "detailed_summary", Description: "summary", Type: models.SectionKindString},
		{Key: "transcript_corrections", Description: "fixes", Type: models.SectionKindStringArray},
	}
}

func baseAnalysis() map[string]json.RawMessage {
	return map[string]json.RawMessage{
		"tldr":                   json.RawMessage(`"a talk about Go"`),
		"detailed_summary":       json.RawMessage(`"## Summary"`),
		"transcript_corrections": json.RawMessage(`["s/Go routine/goroutine/"]`),
	}
}

func TestValidateAnalysis_TagsSectionsInSchemaOrder(t *testing.T) {
	schema := append(baseSchema(), models.SchemaEntry{Key: "speakers", Description: "who", Type: models.SectionKindStringArray})
	analysis := baseAnalysis()
	analysis["speakers"] = json.RawMessage(`["Rob"]`)

	got, err := validateAnalysis(&llmAnalysisOutput{
		Reasoning: "conference talk",
		Schema:    schema,
		Analysis:  analysis,
	})
	require.NoError(t, err)
	require.Len(t, got.Analysis, 4)
	assert.Equal(t, "tldr", got.Analysis[0].Key)
	assert.Equal(t, models.SectionKindString, got.Analysis[0].Kind)
	assert.Equal(t, "speakers", got.Analysis[3].Key)
	assert.Equal(t, models.SectionKindStringArray, got.Analysis[3].Kind)
	assert.JSONEq(t, `["Rob"]`, string(got.Analysis[3].Value))
}

func TestValidateAnalysis_MissingRequiredKey(t *testing.T) {
	schema := baseSchema()[1:] // drop tldr

	_, err := validateAnalysis(&llmAnalysisOutput{
		Schema:   schema,
		Analysis: baseAnalysis(),
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), `required key "tldr"`)
}

func TestValidateAnalysis_ValueTypeMismatch(t *testing.T) {
	analysis := baseAnalysis()
	analysis["tldr"] = json.RawMessage(`42`)

	_, err := validateAnalysis(&llmAnalysisOutput{
		Schema:   baseSchema(),
		Analysis: analysis,
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "does not match its declared schema")
}

func TestValidateAnalysis_UndeclaredValueMissing(t *testing.T) {
	analysis := baseAnalysis()
	delete(analysis, "transcript_corrections")

	_, err := validateAnalysis(&llmAnalysisOutput{
		Schema:   baseSchema(),
		Analysis: analysis,
	})
	require.Error(t, err)
}

func TestBuildSectionSchema_RejectsUnknownType(t *testing.T) {
	_, err := buildSectionSchema([]models.SchemaEntry{
		{Key: "tldr", Type: "number"},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown type "number"`)
}

func TestAnalysisUserPrompt(t *testing.T) {
	prompt := analysisUserPrompt("[00:00:00] hello", "focus on demos")
	assert.Contains(t, prompt, "Additional instructions from the user:\nfocus on demos")
	assert.Contains(t, prompt, "Transcript:\n[00:00:00] hello")

	bare := analysisUserPrompt("[00:00:00] hello", "")
	assert.NotContains(t, bare, "Additional instructions")
}

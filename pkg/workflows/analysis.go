package workflows

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v6"

	"github.com/recapd/recapd/ent/versionedrun"
	"github.com/recapd/recapd/pkg/coordinator"
	"github.com/recapd/recapd/pkg/engine"
	"github.com/recapd/recapd/pkg/llm"
	"github.com/recapd/recapd/pkg/models"
	"github.com/recapd/recapd/pkg/services"
)

// analysisEnvelopeSchema is the structured-mode response contract: the model
// declares its own extraction schema and fills it in the same response.
const analysisEnvelopeSchema = `{
	"type": "object",
	"properties": {
		"reasoning": {"type": "string"},
		"schema": {
			"type": "array",
			"items": {
				"type": "object",
				"properties": {
					"key": {"type": "string"},
					"description": {"type": "string"},
					"type": {"type": "string", "enum": ["string", "string[]", "object"]}
				},
				"required": ["key", "description", "type"]
			}
		},
		"analysis": {"type": "object"}
	},
	"required": ["reasoning", "schema", "analysis"]
}`

const analysisSystemPrompt = `You are an expert content analyst. Given a video transcript you produce a structured analysis in two phases within one response: first you reason about what dimensions this specific content deserves and declare an extraction schema for them, then you fill every declared key.

Always include these keys in your schema and analysis:
- tldr (string): a few sentences capturing the essence
- detailed_summary (string): a thorough markdown summary
- transcript_corrections (string[]): likely transcription errors with corrections, empty if none

Add further keys the content calls for. Every declared key must appear in the analysis object with a value matching its declared type.`

// llmAnalysisOutput is the raw structured response before section tagging.
type llmAnalysisOutput struct {
	Reasoning string                     `json:"reasoning"`
	Schema    []models.SchemaEntry       `json:"schema"`
	Analysis  map[string]json.RawMessage `json:"analysis"`
}

// analysisRunResult is the run result of dynamic-analysis.
type analysisRunResult struct {
	Version int `json:"version"`
}

// claimedVersion is the memoized binding between a run and its version row.
type claimedVersion struct {
	ID      int `json:"id"`
	Version int `json:"version"`
}

// dynamicAnalysis produces a versioned, schema-validated analysis of a
// video's transcript or an external transcript.
func (d *Deps) dynamicAnalysis(sc *engine.StepContext, args json.RawMessage) (any, error) {
	var a coordinator.AnalysisArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, engine.Fatalf("invalid args: %v", err)
	}
	if a.ResourceID == "" {
		return nil, engine.Fatal(errors.New("resourceId is required"))
	}
	kind := versionedrun.ResourceKind(a.ResourceKind)

	if err := sc.Emit(models.ProgressEvent{Type: models.EventTypeProgress, Phase: "loading", Message: "Loading transcript", Progress: 5}); err != nil {
		return nil, err
	}

	text, err := engine.Step(sc, "load_transcript", engine.StepOptions{}, func(ctx context.Context) (string, error) {
		return d.loadAnalysisText(ctx, kind, a.ResourceID)
	})
	if err != nil {
		return nil, err
	}

	claimed, err := engine.Step(sc, "create_analysis_run", engine.StepOptions{MaxRetries: 2}, func(ctx context.Context) (claimedVersion, error) {
		return d.claimAnalysisVersion(ctx, sc.RunID(), kind, a)
	})
	if err != nil {
		return nil, err
	}

	if err := sc.Emit(models.ProgressEvent{Type: models.EventTypeProgress, Phase: "analyzing", Message: "Generating analysis", Progress: 20}); err != nil {
		return nil, err
	}

	emitPartial := sc.Emitter("run_llm")
	analysis, err := engine.Step(sc, "run_llm", engine.StepOptions{MaxRetries: 2, Timeout: d.LLMCfg.RequestTimeout}, func(ctx context.Context) (*models.DynamicAnalysis, error) {
		stream, err := d.LLM.Generate(ctx, &llm.Request{
			Model:           d.LLMCfg.AnalysisModel,
			SystemPrompt:    analysisSystemPrompt,
			UserPrompt:      analysisUserPrompt(text, a.AdditionalInstructions),
			ResponseSchema:  analysisEnvelopeSchema,
			MaxOutputTokens: d.LLMCfg.MaxOutputTokens,
		})
		if err != nil {
			return nil, err
		}
		final, err := collectStructured(ctx, stream, func(snapshot string) error {
			return emitPartial(models.PartialEvent{Type: models.EventTypePartial, Data: json.RawMessage(snapshot)})
		})
		if err != nil {
			return nil, err
		}

		var out llmAnalysisOutput
		if err := json.Unmarshal([]byte(final), &out); err != nil {
			return nil, engine.Fatalf("LLM returned malformed analysis: %v", err)
		}
		result, err := validateAnalysis(&out)
		if err != nil {
			return nil, engine.Fatalf("analysis failed schema validation: %v", err)
		}
		return result, nil
	})
	if err != nil {
		return nil, err
	}

	resultJSON, err := json.Marshal(analysis)
	if err != nil {
		return nil, engine.Fatalf("analysis is not serializable: %v", err)
	}
	if err := sc.Emit(models.ResultEvent{Type: models.EventTypeResult, Data: resultJSON}); err != nil {
		return nil, err
	}

	if _, err := engine.Step(sc, "persist_result", engine.StepOptions{MaxRetries: 2}, func(ctx context.Context) (bool, error) {
		if err := d.Analyses.Complete(ctx, claimed.ID, resultJSON); err != nil {
			return false, err
		}
		return true, nil
	}); err != nil {
		return nil, err
	}

	if err := sc.Emit(models.CompleteEvent{Type: models.EventTypeComplete, RunID: sc.RunID()}); err != nil {
		return nil, err
	}
	return analysisRunResult{Version: claimed.Version}, nil
}

// loadAnalysisText resolves the text the analysis prompt consumes. Missing
// source material is fatal: retrying cannot conjure it.
func (d *Deps) loadAnalysisText(ctx context.Context, kind versionedrun.ResourceKind, resourceID string) (string, error) {
	switch kind {
	case versionedrun.ResourceKindTranscript:
		t, err := d.Transcripts.GetExternal(ctx, resourceID)
		if errors.Is(err, services.ErrNotFound) {
			return "", engine.Fatalf("external transcript %s not found", resourceID)
		}
		if err != nil {
			return "", err
		}
		return t.Content, nil
	default:
		t, err := d.Transcripts.GetCached(ctx, resourceID)
		if errors.Is(err, services.ErrNotFound) {
			return "", engine.Fatalf("no transcript for video %s, fetch it first", resourceID)
		}
		if err != nil {
			return "", err
		}
		return services.FormatSegments(t.Segments), nil
	}
}

// claimAnalysisVersion binds this run to its versioned_run row. Dispatched
// runs find the row the coordinator pre-inserted; the process workflow's
// embedded analysis allocates its own version here.
func (d *Deps) claimAnalysisVersion(ctx context.Context, runID string, kind versionedrun.ResourceKind, a coordinator.AnalysisArgs) (claimedVersion, error) {
	if a.Version > 0 {
		vr, err := d.Analyses.GetVersion(ctx, kind, a.ResourceID, a.Version)
		if err != nil {
			return claimedVersion{}, fmt.Errorf("failed to load pre-inserted version: %w", err)
		}
		if vr.WorkflowRunID == nil || *vr.WorkflowRunID != runID {
			if err := d.Analyses.AttachRun(ctx, vr.ID, runID, ""); err != nil {
				return claimedVersion{}, err
			}
		}
		return claimedVersion{ID: vr.ID, Version: vr.Version}, nil
	}

	vr, err := d.Analyses.CreateStreamingVersion(ctx, kind, a.ResourceID, a.AdditionalInstructions)
	if errors.Is(err, services.ErrAlreadyExists) {
		existing, gerr := d.Analyses.GetStreaming(ctx, kind, a.ResourceID)
		if gerr != nil {
			return claimedVersion{}, gerr
		}
		// Replay after a crash lands here: the row is already ours.
		if existing.WorkflowRunID != nil && *existing.WorkflowRunID == runID {
			return claimedVersion{ID: existing.ID, Version: existing.Version}, nil
		}
		return claimedVersion{}, engine.Fatalf("resource %s already has a streaming analysis", a.ResourceID)
	}
	if err != nil {
		return claimedVersion{}, err
	}
	if err := d.Analyses.AttachRun(ctx, vr.ID, runID, models.SourceAnalysis); err != nil {
		return claimedVersion{}, err
	}
	return claimedVersion{ID: vr.ID, Version: vr.Version}, nil
}

// analysisUserPrompt renders the transcript (and optional user instructions)
// into the analysis prompt.
func analysisUserPrompt(text, instructions string) string {
	var b strings.Builder
	b.WriteString("Analyze the following transcript.\n\n")
	if instructions != "" {
		b.WriteString("Additional instructions from the user:\n")
		b.WriteString(instructions)
		b.WriteString("\n\n")
	}
	b.WriteString("Transcript:\n")
	b.WriteString(text)
	return b.String()
}

// validateAnalysis checks the model's output against the schema it declared
// (plus the always-required sections) and tags each section with its kind.
func validateAnalysis(out *llmAnalysisOutput) (*models.DynamicAnalysis, error) {
	kinds := make(map[string]string, len(out.Schema))
	for _, entry := range out.Schema {
		kinds[entry.Key] = entry.Type
	}
	for _, key := range models.RequiredSections {
		if _, ok := kinds[key]; !ok {
			return nil, fmt.Errorf("declared schema is missing required key %q", key)
		}
	}

	schemaJSON, err := buildSectionSchema(out.Schema)
	if err != nil {
		return nil, err
	}
	compiled, err := compileSchema(schemaJSON)
	if err != nil {
		return nil, err
	}

	raw, err := json.Marshal(out.Analysis)
	if err != nil {
		return nil, fmt.Errorf("analysis is not serializable: %w", err)
	}
	doc, err := jsonschema.UnmarshalJSON(strings.NewReader(string(raw)))
	if err != nil {
		return nil, fmt.Errorf("analysis is not valid JSON: %w", err)
	}
	if err := compiled.Validate(doc); err != nil {
		return nil, fmt.Errorf("analysis does not match its declared schema: %w", err)
	}

	sections := make([]models.AnalysisSection, 0, len(out.Schema))
	for _, entry := range out.Schema {
		sections = append(sections, models.AnalysisSection{
			Key:   entry.Key,
			Kind:  entry.Type,
			Value: out.Analysis[entry.Key],
		})
	}
	return &models.DynamicAnalysis{
		Reasoning: out.Reasoning,
		Schema:    out.Schema,
		Analysis:  sections,
	}, nil
}

// buildSectionSchema turns the declared entries into a JSON schema document
// requiring every declared key with its declared type.
func buildSectionSchema(entries []models.SchemaEntry) (string, error) {
	properties := make(map[string]any, len(entries))
	required := make([]string, 0, len(entries))
	for _, entry := range entries {
		switch entry.Type {
		case models.SectionKindString:
			properties[entry.Key] = map[string]any{"type": "string"}
		case models.SectionKindStringArray:
			properties[entry.Key] = map[string]any{
				"type":  "array",
				"items": map[string]any{"type": "string"},
			}
		case models.SectionKindObject:
			properties[entry.Key] = map[string]any{"type": "object"}
		default:
			return "", fmt.Errorf("declared schema key %q has unknown type %q", entry.Key, entry.Type)
		}
		required = append(required, entry.Key)
	}

	doc, err := json.Marshal(map[string]any{
		"type":       "object",
		"properties": properties,
		"required":   required,
	})
	if err != nil {
		return "", fmt.Errorf("failed to build section schema: %w", err)
	}
	return string(doc), nil
}

// compileSchema compiles one in-memory JSON schema document.
func compileSchema(schemaJSON string) (*jsonschema.Schema, error) {
	doc, err := jsonschema.UnmarshalJSON(strings.NewReader(schemaJSON))
	if err != nil {
		return nil, fmt.Errorf("failed to parse schema: %w", err)
	}
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("analysis.json", doc); err != nil {
		return nil, fmt.Errorf("failed to register schema: %w", err)
	}
	compiled, err := compiler.Compile("analysis.json")
	if err != nil {
		return nil, fmt.Errorf("failed to compile schema: %w", err)
	}
	return compiled, nil
}

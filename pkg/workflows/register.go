// Package workflows holds the registered workflow functions: durable,
// replayable pipelines built from engine steps. Step ids are stable
// identifiers; renaming one orphans the memoized results of in-flight runs.
package workflows

import (
	"github.com/recapd/recapd/ent"
	"github.com/recapd/recapd/pkg/config"
	"github.com/recapd/recapd/pkg/coordinator"
	"github.com/recapd/recapd/pkg/engine"
	"github.com/recapd/recapd/pkg/extractor"
	"github.com/recapd/recapd/pkg/llm"
	"github.com/recapd/recapd/pkg/services"
	"github.com/recapd/recapd/pkg/storage"
	"github.com/recapd/recapd/pkg/transcriptapi"
)

// Deps bundles everything the workflow bodies reach for.
type Deps struct {
	Client        *ent.Client
	Transcripts   *services.TranscriptService
	Analyses      *services.AnalysisService
	Slides        *services.SlideService
	TranscriptAPI *transcriptapi.Client
	Extractor     *extractor.Client
	ObjectStore   *storage.ObjectStore
	BlobStore     *storage.BlobStore
	LLM           llm.Client
	LLMCfg        *config.LLMConfig
	Engine        *engine.Engine
	Coordinator   *coordinator.Coordinator
}

// Register wires every workflow into the engine.
func Register(eng *engine.Engine, d *Deps) {
	eng.Register(coordinator.WorkflowFetchTranscript, d.fetchTranscript)
	eng.Register(coordinator.WorkflowDynamicAnalysis, d.dynamicAnalysis)
	eng.Register(coordinator.WorkflowSlideExtraction, d.slideExtraction)
	eng.Register(coordinator.WorkflowPerSlideAnalysis, d.perSlideAnalysis)
	eng.Register(coordinator.WorkflowSuperAnalysis, d.superAnalysis)
	eng.Register(coordinator.WorkflowProcess, d.process)
}

// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/recapd/recapd/ent/externaltranscript"
	"github.com/recapd/recapd/ent/runevent"
	"github.com/recapd/recapd/ent/schema"
	"github.com/recapd/recapd/ent/slide"
	"github.com/recapd/recapd/ent/slideanalysis"
	"github.com/recapd/recapd/ent/slideextraction"
	"github.com/recapd/recapd/ent/slidefeedback"
	"github.com/recapd/recapd/ent/superanalysis"
	"github.com/recapd/recapd/ent/transcript"
	"github.com/recapd/recapd/ent/versionedrun"
	"github.com/recapd/recapd/ent/workflowrun"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	externaltranscriptFields := schema.ExternalTranscript{}.Fields()
	_ = externaltranscriptFields
	// externaltranscriptDescCreatedAt is the schema descriptor for created_at field.
	externaltranscriptDescCreatedAt := externaltranscriptFields[3].Descriptor()
	// externaltranscript.DefaultCreatedAt holds the default value on creation for the created_at field.
	externaltranscript.DefaultCreatedAt = externaltranscriptDescCreatedAt.Default.(func() time.Time)
	runeventFields := schema.RunEvent{}.Fields()
	_ = runeventFields
	// runeventDescCreatedAt is the schema descriptor for created_at field.
	runeventDescCreatedAt := runeventFields[8].Descriptor()
	// runevent.DefaultCreatedAt holds the default value on creation for the created_at field.
	runevent.DefaultCreatedAt = runeventDescCreatedAt.Default.(func() time.Time)
	slideFields := schema.Slide{}.Fields()
	_ = slideFields
	// slideDescFirstHasText is the schema descriptor for first_has_text field.
	slideDescFirstHasText := slideFields[6].Descriptor()
	// slide.DefaultFirstHasText holds the default value on creation for the first_has_text field.
	slide.DefaultFirstHasText = slideDescFirstHasText.Default.(bool)
	// slideDescLastHasText is the schema descriptor for last_has_text field.
	slideDescLastHasText := slideFields[13].Descriptor()
	// slide.DefaultLastHasText holds the default value on creation for the last_has_text field.
	slide.DefaultLastHasText = slideDescLastHasText.Default.(bool)
	// slideDescCreatedAt is the schema descriptor for created_at field.
	slideDescCreatedAt := slideFields[18].Descriptor()
	// slide.DefaultCreatedAt holds the default value on creation for the created_at field.
	slide.DefaultCreatedAt = slideDescCreatedAt.Default.(func() time.Time)
	slideanalysisFields := schema.SlideAnalysis{}.Fields()
	_ = slideanalysisFields
	// slideanalysisDescCreatedAt is the schema descriptor for created_at field.
	slideanalysisDescCreatedAt := slideanalysisFields[5].Descriptor()
	// slideanalysis.DefaultCreatedAt holds the default value on creation for the created_at field.
	slideanalysis.DefaultCreatedAt = slideanalysisDescCreatedAt.Default.(func() time.Time)
	// slideanalysisDescUpdatedAt is the schema descriptor for updated_at field.
	slideanalysisDescUpdatedAt := slideanalysisFields[6].Descriptor()
	// slideanalysis.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	slideanalysis.DefaultUpdatedAt = slideanalysisDescUpdatedAt.Default.(func() time.Time)
	// slideanalysis.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	slideanalysis.UpdateDefaultUpdatedAt = slideanalysisDescUpdatedAt.UpdateDefault.(func() time.Time)
	slideextractionFields := schema.SlideExtraction{}.Fields()
	_ = slideextractionFields
	// slideextractionDescTotalSlides is the schema descriptor for total_slides field.
	slideextractionDescTotalSlides := slideextractionFields[3].Descriptor()
	// slideextraction.DefaultTotalSlides holds the default value on creation for the total_slides field.
	slideextraction.DefaultTotalSlides = slideextractionDescTotalSlides.Default.(int)
	// slideextractionDescCreatedAt is the schema descriptor for created_at field.
	slideextractionDescCreatedAt := slideextractionFields[5].Descriptor()
	// slideextraction.DefaultCreatedAt holds the default value on creation for the created_at field.
	slideextraction.DefaultCreatedAt = slideextractionDescCreatedAt.Default.(func() time.Time)
	// slideextractionDescUpdatedAt is the schema descriptor for updated_at field.
	slideextractionDescUpdatedAt := slideextractionFields[6].Descriptor()
	// slideextraction.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	slideextraction.DefaultUpdatedAt = slideextractionDescUpdatedAt.Default.(func() time.Time)
	// slideextraction.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	slideextraction.UpdateDefaultUpdatedAt = slideextractionDescUpdatedAt.UpdateDefault.(func() time.Time)
	slidefeedbackFields := schema.SlideFeedback{}.Fields()
	_ = slidefeedbackFields
	// slidefeedbackDescIsFirstFramePicked is the schema descriptor for is_first_frame_picked field.
	slidefeedbackDescIsFirstFramePicked := slidefeedbackFields[2].Descriptor()
	// slidefeedback.DefaultIsFirstFramePicked holds the default value on creation for the is_first_frame_picked field.
	slidefeedback.DefaultIsFirstFramePicked = slidefeedbackDescIsFirstFramePicked.Default.(bool)
	// slidefeedbackDescIsLastFramePicked is the schema descriptor for is_last_frame_picked field.
	slidefeedbackDescIsLastFramePicked := slidefeedbackFields[3].Descriptor()
	// slidefeedback.DefaultIsLastFramePicked holds the default value on creation for the is_last_frame_picked field.
	slidefeedback.DefaultIsLastFramePicked = slidefeedbackDescIsLastFramePicked.Default.(bool)
	// slidefeedbackDescUpdatedAt is the schema descriptor for updated_at field.
	slidefeedbackDescUpdatedAt := slidefeedbackFields[4].Descriptor()
	// slidefeedback.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	slidefeedback.DefaultUpdatedAt = slidefeedbackDescUpdatedAt.Default.(func() time.Time)
	// slidefeedback.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	slidefeedback.UpdateDefaultUpdatedAt = slidefeedbackDescUpdatedAt.UpdateDefault.(func() time.Time)
	superanalysisFields := schema.SuperAnalysis{}.Fields()
	_ = superanalysisFields
	// superanalysisDescCreatedAt is the schema descriptor for created_at field.
	superanalysisDescCreatedAt := superanalysisFields[3].Descriptor()
	// superanalysis.DefaultCreatedAt holds the default value on creation for the created_at field.
	superanalysis.DefaultCreatedAt = superanalysisDescCreatedAt.Default.(func() time.Time)
	// superanalysisDescUpdatedAt is the schema descriptor for updated_at field.
	superanalysisDescUpdatedAt := superanalysisFields[4].Descriptor()
	// superanalysis.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	superanalysis.DefaultUpdatedAt = superanalysisDescUpdatedAt.Default.(func() time.Time)
	// superanalysis.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	superanalysis.UpdateDefaultUpdatedAt = superanalysisDescUpdatedAt.UpdateDefault.(func() time.Time)
	transcriptFields := schema.Transcript{}.Fields()
	_ = transcriptFields
	// transcriptDescFetchedAt is the schema descriptor for fetched_at field.
	transcriptDescFetchedAt := transcriptFields[5].Descriptor()
	// transcript.DefaultFetchedAt holds the default value on creation for the fetched_at field.
	transcript.DefaultFetchedAt = transcriptDescFetchedAt.Default.(func() time.Time)
	versionedrunFields := schema.VersionedRun{}.Fields()
	_ = versionedrunFields
	// versionedrunDescCreatedAt is the schema descriptor for created_at field.
	versionedrunDescCreatedAt := versionedrunFields[9].Descriptor()
	// versionedrun.DefaultCreatedAt holds the default value on creation for the created_at field.
	versionedrun.DefaultCreatedAt = versionedrunDescCreatedAt.Default.(func() time.Time)
	// versionedrunDescUpdatedAt is the schema descriptor for updated_at field.
	versionedrunDescUpdatedAt := versionedrunFields[10].Descriptor()
	// versionedrun.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	versionedrun.DefaultUpdatedAt = versionedrunDescUpdatedAt.Default.(func() time.Time)
	// versionedrun.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	versionedrun.UpdateDefaultUpdatedAt = versionedrunDescUpdatedAt.UpdateDefault.(func() time.Time)
	workflowrunFields := schema.WorkflowRun{}.Fields()
	_ = workflowrunFields
	// workflowrunDescCancelRequested is the schema descriptor for cancel_requested field.
	workflowrunDescCancelRequested := workflowrunFields[7].Descriptor()
	// workflowrun.DefaultCancelRequested holds the default value on creation for the cancel_requested field.
	workflowrun.DefaultCancelRequested = workflowrunDescCancelRequested.Default.(bool)
	// workflowrunDescPauseRequested is the schema descriptor for pause_requested field.
	workflowrunDescPauseRequested := workflowrunFields[8].Descriptor()
	// workflowrun.DefaultPauseRequested holds the default value on creation for the pause_requested field.
	workflowrun.DefaultPauseRequested = workflowrunDescPauseRequested.Default.(bool)
	// workflowrunDescRecoveryAttempts is the schema descriptor for recovery_attempts field.
	workflowrunDescRecoveryAttempts := workflowrunFields[11].Descriptor()
	// workflowrun.DefaultRecoveryAttempts holds the default value on creation for the recovery_attempts field.
	workflowrun.DefaultRecoveryAttempts = workflowrunDescRecoveryAttempts.Default.(int)
	// workflowrunDescCreatedAt is the schema descriptor for created_at field.
	workflowrunDescCreatedAt := workflowrunFields[12].Descriptor()
	// workflowrun.DefaultCreatedAt holds the default value on creation for the created_at field.
	workflowrun.DefaultCreatedAt = workflowrunDescCreatedAt.Default.(func() time.Time)
	// workflowrunDescUpdatedAt is the schema descriptor for updated_at field.
	workflowrunDescUpdatedAt := workflowrunFields[13].Descriptor()
	// workflowrun.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	workflowrun.DefaultUpdatedAt = workflowrunDescUpdatedAt.Default.(func() time.Time)
	// workflowrun.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	workflowrun.UpdateDefaultUpdatedAt = workflowrunDescUpdatedAt.UpdateDefault.(func() time.Time)
}

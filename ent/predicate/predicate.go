// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// ExternalTranscript is the predicate function for externaltranscript builders.
type ExternalTranscript func(*sql.Selector)

// RunEvent is the predicate function for runevent builders.
type RunEvent func(*sql.Selector)

// Slide is the predicate function for slide builders.
type Slide func(*sql.Selector)

// SlideAnalysis is the predicate function for slideanalysis builders.
type SlideAnalysis func(*sql.Selector)

// SlideExtraction is the predicate function for slideextraction builders.
type SlideExtraction func(*sql.Selector)

// SlideFeedback is the predicate function for slidefeedback builders.
type SlideFeedback func(*sql.Selector)

// SuperAnalysis is the predicate function for superanalysis builders.
type SuperAnalysis func(*sql.Selector)

// Transcript is the predicate function for transcript builders.
type Transcript func(*sql.Selector)

// VersionedRun is the predicate function for versionedrun builders.
type VersionedRun func(*sql.Selector)

// WorkflowRun is the predicate function for workflowrun builders.
type WorkflowRun func(*sql.Selector)

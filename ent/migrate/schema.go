// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// ExternalTranscriptsColumns holds the columns for the "external_transcripts" table.
	ExternalTranscriptsColumns = []*schema.Column{
		{Name: "transcript_id", Type: field.TypeString, Unique: true},
		{Name: "title", Type: field.TypeString, Nullable: true},
		{Name: "content", Type: field.TypeString, Size: 2147483647},
		{Name: "created_at", Type: field.TypeTime},
	}
	// ExternalTranscriptsTable holds the schema information for the "external_transcripts" table.
	ExternalTranscriptsTable = &schema.Table{
		Name:       "external_transcripts",
		Columns:    ExternalTranscriptsColumns,
		PrimaryKey: []*schema.Column{ExternalTranscriptsColumns[0]},
	}
	// RunEventsColumns holds the columns for the "run_events" table.
	RunEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "index", Type: field.TypeInt},
		{Name: "kind", Type: field.TypeEnum, Enums: []string{"step_started", "step_result", "step_error", "emit", "run_terminal"}},
		{Name: "step_id", Type: field.TypeString, Nullable: true},
		{Name: "call_ordinal", Type: field.TypeInt, Nullable: true},
		{Name: "namespace", Type: field.TypeString, Nullable: true},
		{Name: "payload", Type: field.TypeJSON, Nullable: true},
		{Name: "retriable", Type: field.TypeBool, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "run_id", Type: field.TypeString},
	}
	// RunEventsTable holds the schema information for the "run_events" table.
	RunEventsTable = &schema.Table{
		Name:       "run_events",
		Columns:    RunEventsColumns,
		PrimaryKey: []*schema.Column{RunEventsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "run_events_workflow_runs_events",
				Columns:    []*schema.Column{RunEventsColumns[9]},
				RefColumns: []*schema.Column{WorkflowRunsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "runevent_run_id_index",
				Unique:  true,
				Columns: []*schema.Column{RunEventsColumns[9], RunEventsColumns[1]},
			},
			{
				Name:    "runevent_run_id_step_id_call_ordinal",
				Unique:  false,
				Columns: []*schema.Column{RunEventsColumns[9], RunEventsColumns[3], RunEventsColumns[4]},
			},
		},
	}
	// SlidesColumns holds the columns for the "slides" table.
	SlidesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "video_id", Type: field.TypeString},
		{Name: "slide_number", Type: field.TypeInt},
		{Name: "start_seconds", Type: field.TypeFloat64},
		{Name: "end_seconds", Type: field.TypeFloat64},
		{Name: "first_image_url", Type: field.TypeString, Nullable: true},
		{Name: "first_source_uri", Type: field.TypeString, Nullable: true},
		{Name: "first_has_text", Type: field.TypeBool, Default: false},
		{Name: "first_text_confidence", Type: field.TypeFloat64, Nullable: true},
		{Name: "first_upload_error", Type: field.TypeString, Nullable: true},
		{Name: "first_duplicate_of_slide", Type: field.TypeInt, Nullable: true},
		{Name: "first_duplicate_of_frame", Type: field.TypeString, Nullable: true},
		{Name: "last_image_url", Type: field.TypeString, Nullable: true},
		{Name: "last_source_uri", Type: field.TypeString, Nullable: true},
		{Name: "last_has_text", Type: field.TypeBool, Default: false},
		{Name: "last_text_confidence", Type: field.TypeFloat64, Nullable: true},
		{Name: "last_upload_error", Type: field.TypeString, Nullable: true},
		{Name: "last_duplicate_of_slide", Type: field.TypeInt, Nullable: true},
		{Name: "last_duplicate_of_frame", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
	}
	// SlidesTable holds the schema information for the "slides" table.
	SlidesTable = &schema.Table{
		Name:       "slides",
		Columns:    SlidesColumns,
		PrimaryKey: []*schema.Column{SlidesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "slide_video_id_slide_number",
				Unique:  true,
				Columns: []*schema.Column{SlidesColumns[1], SlidesColumns[2]},
			},
		},
	}
	// SlideAnalysesColumns holds the columns for the "slide_analyses" table.
	SlideAnalysesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "video_id", Type: field.TypeString},
		{Name: "slide_number", Type: field.TypeInt},
		{Name: "frame_position", Type: field.TypeEnum, Enums: []string{"first", "last"}},
		{Name: "markdown", Type: field.TypeString, Size: 2147483647},
		{Name: "model", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// SlideAnalysesTable holds the schema information for the "slide_analyses" table.
	SlideAnalysesTable = &schema.Table{
		Name:       "slide_analyses",
		Columns:    SlideAnalysesColumns,
		PrimaryKey: []*schema.Column{SlideAnalysesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "slideanalysis_video_id_slide_number_frame_position",
				Unique:  true,
				Columns: []*schema.Column{SlideAnalysesColumns[1], SlideAnalysesColumns[2], SlideAnalysesColumns[3]},
			},
		},
	}
	// SlideExtractionsColumns holds the columns for the "slide_extractions" table.
	SlideExtractionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "video_id", Type: field.TypeString, Unique: true},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"idle", "in_progress", "completed", "failed"}, Default: "idle"},
		{Name: "run_id", Type: field.TypeString, Nullable: true},
		{Name: "total_slides", Type: field.TypeInt, Default: 0},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// SlideExtractionsTable holds the schema information for the "slide_extractions" table.
	SlideExtractionsTable = &schema.Table{
		Name:       "slide_extractions",
		Columns:    SlideExtractionsColumns,
		PrimaryKey: []*schema.Column{SlideExtractionsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "slideextraction_video_id",
				Unique:  true,
				Columns: []*schema.Column{SlideExtractionsColumns[1]},
			},
			{
				Name:    "slideextraction_status",
				Unique:  false,
				Columns: []*schema.Column{SlideExtractionsColumns[2]},
			},
		},
	}
	// SlideFeedbacksColumns holds the columns for the "slide_feedbacks" table.
	SlideFeedbacksColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "video_id", Type: field.TypeString},
		{Name: "slide_number", Type: field.TypeInt},
		{Name: "is_first_frame_picked", Type: field.TypeBool, Default: false},
		{Name: "is_last_frame_picked", Type: field.TypeBool, Default: false},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// SlideFeedbacksTable holds the schema information for the "slide_feedbacks" table.
	SlideFeedbacksTable = &schema.Table{
		Name:       "slide_feedbacks",
		Columns:    SlideFeedbacksColumns,
		PrimaryKey: []*schema.Column{SlideFeedbacksColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "slidefeedback_video_id_slide_number",
				Unique:  true,
				Columns: []*schema.Column{SlideFeedbacksColumns[1], SlideFeedbacksColumns[2]},
			},
		},
	}
	// SuperAnalysesColumns holds the columns for the "super_analyses" table.
	SuperAnalysesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "video_id", Type: field.TypeString, Unique: true},
		{Name: "markdown", Type: field.TypeString, Size: 2147483647},
		{Name: "model", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// SuperAnalysesTable holds the schema information for the "super_analyses" table.
	SuperAnalysesTable = &schema.Table{
		Name:       "super_analyses",
		Columns:    SuperAnalysesColumns,
		PrimaryKey: []*schema.Column{SuperAnalysesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "superanalysis_video_id",
				Unique:  true,
				Columns: []*schema.Column{SuperAnalysesColumns[1]},
			},
		},
	}
	// TranscriptsColumns holds the columns for the "transcripts" table.
	TranscriptsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "video_id", Type: field.TypeString, Unique: true},
		{Name: "title", Type: field.TypeString},
		{Name: "channel_name", Type: field.TypeString},
		{Name: "description", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "segments", Type: field.TypeJSON},
		{Name: "fetched_at", Type: field.TypeTime},
	}
	// TranscriptsTable holds the schema information for the "transcripts" table.
	TranscriptsTable = &schema.Table{
		Name:       "transcripts",
		Columns:    TranscriptsColumns,
		PrimaryKey: []*schema.Column{TranscriptsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "transcript_video_id",
				Unique:  true,
				Columns: []*schema.Column{TranscriptsColumns[1]},
			},
		},
	}
	// VersionedRunsColumns holds the columns for the "versioned_runs" table.
	VersionedRunsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "resource_kind", Type: field.TypeEnum, Enums: []string{"video", "transcript", "super"}},
		{Name: "resource_id", Type: field.TypeString},
		{Name: "version", Type: field.TypeInt},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"streaming", "completed", "failed"}, Default: "streaming"},
		{Name: "workflow_run_id", Type: field.TypeString, Nullable: true},
		{Name: "namespace", Type: field.TypeString, Nullable: true},
		{Name: "additional_instructions", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "result_json", Type: field.TypeJSON, Nullable: true},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// VersionedRunsTable holds the schema information for the "versioned_runs" table.
	VersionedRunsTable = &schema.Table{
		Name:       "versioned_runs",
		Columns:    VersionedRunsColumns,
		PrimaryKey: []*schema.Column{VersionedRunsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "versionedrun_resource_kind_resource_id_version",
				Unique:  true,
				Columns: []*schema.Column{VersionedRunsColumns[1], VersionedRunsColumns[2], VersionedRunsColumns[3]},
			},
			{
				Name:    "versionedrun_resource_kind_resource_id",
				Unique:  true,
				Columns: []*schema.Column{VersionedRunsColumns[1], VersionedRunsColumns[2]},
				Annotation: &entsql.IndexAnnotation{
					Where: "status = 'streaming'",
				},
			},
			{
				Name:    "versionedrun_resource_kind_resource_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{VersionedRunsColumns[1], VersionedRunsColumns[2], VersionedRunsColumns[10]},
			},
		},
	}
	// WorkflowRunsColumns holds the columns for the "workflow_runs" table.
	WorkflowRunsColumns = []*schema.Column{
		{Name: "run_id", Type: field.TypeString, Unique: true},
		{Name: "workflow_name", Type: field.TypeString},
		{Name: "args", Type: field.TypeJSON},
		{Name: "args_digest", Type: field.TypeString},
		{Name: "state", Type: field.TypeEnum, Enums: []string{"pending", "running", "paused", "completed", "failed", "cancelled"}, Default: "pending"},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
		{Name: "result", Type: field.TypeJSON, Nullable: true},
		{Name: "cancel_requested", Type: field.TypeBool, Default: false},
		{Name: "pause_requested", Type: field.TypeBool, Default: false},
		{Name: "pod_id", Type: field.TypeString, Nullable: true},
		{Name: "last_heartbeat_at", Type: field.TypeTime, Nullable: true},
		{Name: "recovery_attempts", Type: field.TypeInt, Default: 0},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "started_at", Type: field.TypeTime, Nullable: true},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
	}
	// WorkflowRunsTable holds the schema information for the "workflow_runs" table.
	WorkflowRunsTable = &schema.Table{
		Name:       "workflow_runs",
		Columns:    WorkflowRunsColumns,
		PrimaryKey: []*schema.Column{WorkflowRunsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "workflowrun_state",
				Unique:  false,
				Columns: []*schema.Column{WorkflowRunsColumns[4]},
			},
			{
				Name:    "workflowrun_workflow_name",
				Unique:  false,
				Columns: []*schema.Column{WorkflowRunsColumns[1]},
			},
			{
				Name:    "workflowrun_state_created_at",
				Unique:  false,
				Columns: []*schema.Column{WorkflowRunsColumns[4], WorkflowRunsColumns[12]},
			},
			{
				Name:    "workflowrun_state_last_heartbeat_at",
				Unique:  false,
				Columns: []*schema.Column{WorkflowRunsColumns[4], WorkflowRunsColumns[10]},
			},
			{
				Name:    "workflowrun_workflow_name_args_digest",
				Unique:  true,
				Columns: []*schema.Column{WorkflowRunsColumns[1], WorkflowRunsColumns[3]},
				Annotation: &entsql.IndexAnnotation{
					Where: "state IN ('pending', 'running', 'paused')",
				},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		ExternalTranscriptsTable,
		RunEventsTable,
		SlidesTable,
		SlideAnalysesTable,
		SlideExtractionsTable,
		SlideFeedbacksTable,
		SuperAnalysesTable,
		TranscriptsTable,
		VersionedRunsTable,
		WorkflowRunsTable,
	}
)

func init() {
	RunEventsTable.ForeignKeys[0].RefTable = WorkflowRunsTable
}

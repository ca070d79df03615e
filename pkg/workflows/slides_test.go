package workflows

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/recapd/recapd/ent/slideextraction"
	"github.com/recapd/recapd/ent/workflowrun"
	"github.com/recapd/recapd/pkg/config"
	"github.com/recapd/recapd/pkg/extractor"
	"github.com/recapd/recapd/pkg/storage"
)

// extractorScript is the canned behavior of a fake extraction service: the
// trigger response and the SSE frames of the job stream.
type extractorScript struct {
	jobID  string
	frames []string
}

// extractorCalls counts the requests the fake extraction service served.
type extractorCalls struct {
	triggers int
	monitors int
}

// useExtractor wires the fixture to a fake extraction service.
func (f *wfFixture) useExtractor(t *testing.T, script extractorScript) *extractorCalls {
	t.Helper()
	calls := &extractorCalls{}
	mux := http.NewServeMux()
	mux.HandleFunc("POST /jobs", func(w http.ResponseWriter, r *http.Request) {
		calls.triggers++
		w.WriteHeader(http.StatusAccepted)
		fmt.Fprintf(w, `{"job_id":%q}`, script.jobID)
	})
	mux.HandleFunc("GET /jobs/{jobID}/events", func(w http.ResponseWriter, r *http.Request) {
		calls.monitors++
		w.Header().Set("Content-Type", "text/event-stream")
		for _, frame := range script.frames {
			fmt.Fprintf(w, "data: %s\n\n", frame)
		}
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	f.deps.Extractor = extractor.NewClient(&config.ExtractorConfig{
		BaseURL:        srv.URL,
		Token:          "test-token",
		TriggerTimeout: 10 * time.Second,
		MonitorTimeout: 30 * time.Second,
	})
	return calls
}

// useObjectStores wires both S3 stores to one in-process S3 endpoint:
// objects under /private are served to the object store, puts under /public
// land in the blob store.
func (f *wfFixture) useObjectStores(t *testing.T, objects map[string][]byte) map[string][]byte {
	t.Helper()
	uploads := make(map[string][]byte)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodGet && strings.HasPrefix(r.URL.Path, "/private/"):
			key := strings.TrimPrefix(r.URL.Path, "/private/")
			data, ok := objects[key]
			if !ok {
				w.WriteHeader(http.StatusNotFound)
				fmt.Fprint(w, `<?xml version="1.0"?><Error><Code>NoSuchKey</Code></Error>`)
				return
			}
			_, _ = w.Write(data)
		case r.Method == http.MethodPut && strings.HasPrefix(r.URL.Path, "/public/"):
			key := strings.TrimPrefix(r.URL.Path, "/public/")
			body, err := io.ReadAll(r.Body)
			if err != nil {
				w.WriteHeader(http.StatusInternalServerError)
				return
			}
			uploads[key] = body
			w.WriteHeader(http.StatusOK)
		default:
			w.WriteHeader(http.StatusNotImplemented)
		}
	}))
	t.Cleanup(srv.Close)

	ctx := context.Background()
	objStore, err := storage.NewObjectStore(ctx, &config.S3Config{
		Endpoint:  srv.URL,
		Region:    "us-east-1",
		AccessKey: "test",
		SecretKey: "test",
		Bucket:    "private",
	})
	require.NoError(t, err)
	blobStore, err := storage.NewBlobStore(ctx, &config.S3Config{
		Endpoint:  srv.URL,
		Region:    "us-east-1",
		AccessKey: "test",
		SecretKey: "test",
		Bucket:    "public",
	}, "https://cdn.test")
	require.NoError(t, err)

	f.deps.ObjectStore = objStore
	f.deps.BlobStore = blobStore
	return uploads
}

const testManifest = `{
	"video_id": "dQw4w9WgXcQ",
	"segments": [
		{
			"index": 0, "start_seconds": 0, "end_seconds": 42, "kind": "static",
			"first_frame": {"frame_id": "f0a", "source_uri": "s3://private/frames/f0a.webp", "has_text": true, "text_confidence": 0.91},
			"last_frame": {"frame_id": "f0b", "source_uri": "s3://private/frames/f0b.webp", "has_text": true, "text_confidence": 0.88}
		},
		{
			"index": 1, "start_seconds": 42, "end_seconds": 80, "kind": "static",
			"first_frame": {"frame_id": "f1a", "source_uri": "s3://private/frames/f1a.webp", "has_text": false, "text_confidence": 0.2},
			"last_frame": {"frame_id": "f1b", "source_uri": "s3://private/frames/f1b.webp", "has_text": true, "text_confidence": 0.9,
				"duplicate_of": {"segment_index": 0, "frame_position": "first"}}
		},
		{
			"index": 2, "start_seconds": 80, "end_seconds": 95, "kind": "motion",
			"first_frame": {"frame_id": "f2a", "source_uri": "s3://private/frames/f2a.webp"},
			"last_frame": {"frame_id": "f2b", "source_uri": "s3://private/frames/f2b.webp"}
		}
	]
}`

func TestSlideExtraction_EndToEnd(t *testing.T) {
	f := newWorkflowFixture(t)
	ctx := context.Background()

	f.useExtractor(t, extractorScript{
		jobID: "job-7",
		frames: []string{
			`{"status":"downloading","progress":0.1,"message":"Downloading video"}`,
			`{"status":"extracting","progress":0.5,"message":"Detecting slides"}`,
			`{"status":"completed","metadata_uri":"s3://private/manifests/dQw4w9WgXcQ.json"}`,
		},
	})
	uploads := f.useObjectStores(t, map[string][]byte{
		"manifests/dQw4w9WgXcQ.json": []byte(testManifest),
		"frames/f0a.webp":            []byte("frame-f0a"),
		"frames/f0b.webp":            []byte("frame-f0b"),
		"frames/f1a.webp":            []byte("frame-f1a"),
	})

	d, err := f.coord.StartSlides(ctx, "dQw4w9WgXcQ")
	require.NoError(t, err)
	run := f.execExisting(t, d.RunID)
	require.Equal(t, workflowrun.StateCompleted, run.State)
	assert.JSONEq(t, `{"totalSlides":2}`, string(run.Result))

	ex, err := f.slides.GetExtraction(ctx, "dQw4w9WgXcQ")
	require.NoError(t, err)
	assert.Equal(t, slideextraction.StatusCompleted, ex.Status)
	assert.Equal(t, 2, ex.TotalSlides)

	// Motion segments are skipped; static segments became slides 0 and 1.
	details, err := f.slides.ListSlides(ctx, "dQw4w9WgXcQ")
	require.NoError(t, err)
	require.Len(t, details, 2)
	assert.Equal(t, "https://cdn.test/slides/dQw4w9WgXcQ/0-first.webp", details[0].First.ImageURL)
	assert.Equal(t, "https://cdn.test/slides/dQw4w9WgXcQ/0-last.webp", details[0].Last.ImageURL)

	// The duplicate frame references slide 0 instead of re-uploading.
	require.NotNil(t, details[1].Last.DuplicateOfSlide)
	assert.Equal(t, 0, *details[1].Last.DuplicateOfSlide)
	assert.Equal(t, "first", details[1].Last.DuplicateOfFrame)
	assert.Empty(t, details[1].Last.ImageURL)

	assert.Equal(t, []byte("frame-f0a"), uploads["slides/dQw4w9WgXcQ/0-first.webp"])
	assert.Len(t, uploads, 3, "one upload per non-duplicate frame")

	var progress, slideEvents int
	for _, ev := range f.collectEmits(t, run.ID) {
		payload := string(ev.Payload)
		if strings.Contains(payload, `"type":"progress"`) {
			progress++
		}
		if strings.Contains(payload, `"type":"slide"`) {
			slideEvents++
		}
	}
	assert.GreaterOrEqual(t, progress, 3)
	assert.Equal(t, 2, slideEvents)
}

func TestSlideExtraction_JobFailureRecordsFailure(t *testing.T) {
	f := newWorkflowFixture(t)
	ctx := context.Background()

	f.useExtractor(t, extractorScript{
		jobID: "job-8",
		frames: []string{
			`{"status":"downloading","progress":0.1}`,
			`{"status":"failed","error":"video is private"}`,
		},
	})
	f.useObjectStores(t, nil)

	d, err := f.coord.StartSlides(ctx, "dQw4w9WgXcQ")
	require.NoError(t, err)
	run := f.execExisting(t, d.RunID)
	require.Equal(t, workflowrun.StateFailed, run.State)
	require.NotNil(t, run.ErrorMessage)
	assert.Contains(t, *run.ErrorMessage, "video is private")

	// The extraction row records the failure so the video can be re-claimed.
	ex, err := f.slides.GetExtraction(ctx, "dQw4w9WgXcQ")
	require.NoError(t, err)
	assert.Equal(t, slideextraction.StatusFailed, ex.Status)
	require.NotNil(t, ex.ErrorMessage)
	assert.Contains(t, *ex.ErrorMessage, "video is private")
}

func TestSlideExtraction_FrameDownloadFailureIsRecordedOnSlide(t *testing.T) {
	f := newWorkflowFixture(t)
	ctx := context.Background()

	f.useExtractor(t, extractorScript{
		jobID: "job-9",
		frames: []string{
			`{"status":"completed","metadata_uri":"s3://private/manifests/dQw4w9WgXcQ.json"}`,
		},
	})
	// frames/f1a.webp is missing: its slide keeps an upload error instead of
	// failing the whole extraction.
	f.useObjectStores(t, map[string][]byte{
		"manifests/dQw4w9WgXcQ.json": []byte(testManifest),
		"frames/f0a.webp":            []byte("frame-f0a"),
		"frames/f0b.webp":            []byte("frame-f0b"),
	})

	d, err := f.coord.StartSlides(ctx, "dQw4w9WgXcQ")
	require.NoError(t, err)
	run := f.execExisting(t, d.RunID)
	require.Equal(t, workflowrun.StateCompleted, run.State)

	details, err := f.slides.ListSlides(ctx, "dQw4w9WgXcQ")
	require.NoError(t, err)
	require.Len(t, details, 2)
	assert.Empty(t, details[1].First.ImageURL)
	assert.Contains(t, details[1].First.UploadError, "failed to download frame")
}

// shiftedManifest has a motion segment ahead of the static ones, so segment
// indices and slide numbers diverge: segment 1 becomes slide 0.
const shiftedManifest = `{
	"video_id": "dQw4w9WgXcQ",
	"segments": [
		{
			"index": 0, "start_seconds": 0, "end_seconds": 20, "kind": "motion",
			"first_frame": {"frame_id": "m0a", "source_uri": "s3://private/frames/m0a.webp"},
			"last_frame": {"frame_id": "m0b", "source_uri": "s3://private/frames/m0b.webp"}
		},
		{
			"index": 1, "start_seconds": 20, "end_seconds": 55, "kind": "static",
			"first_frame": {"frame_id": "g1a", "source_uri": "s3://private/frames/g1a.webp", "has_text": true, "text_confidence": 0.92},
			"last_frame": {"frame_id": "g1b", "source_uri": "s3://private/frames/g1b.webp", "has_text": true, "text_confidence": 0.87}
		},
		{
			"index": 2, "start_seconds": 55, "end_seconds": 90, "kind": "static",
			"first_frame": {"frame_id": "g2a", "source_uri": "s3://private/frames/g2a.webp", "has_text": true, "text_confidence": 0.8},
			"last_frame": {"frame_id": "g2b", "source_uri": "s3://private/frames/g2b.webp", "has_text": true, "text_confidence": 0.8,
				"duplicate_of": {"segment_index": 1, "frame_position": "first"}}
		}
	]
}`

func TestSlideExtraction_DuplicateRefAcrossSkippedSegment(t *testing.T) {
	f := newWorkflowFixture(t)
	ctx := context.Background()

	f.useExtractor(t, extractorScript{
		jobID: "job-10",
		frames: []string{
			`{"status":"completed","metadata_uri":"s3://private/manifests/dQw4w9WgXcQ.json"}`,
		},
	})
	f.useObjectStores(t, map[string][]byte{
		"manifests/dQw4w9WgXcQ.json": []byte(shiftedManifest),
		"frames/g1a.webp":            []byte("frame-g1a"),
		"frames/g1b.webp":            []byte("frame-g1b"),
		"frames/g2a.webp":            []byte("frame-g2a"),
	})

	d, err := f.coord.StartSlides(ctx, "dQw4w9WgXcQ")
	require.NoError(t, err)
	run := f.execExisting(t, d.RunID)
	require.Equal(t, workflowrun.StateCompleted, run.State)
	assert.JSONEq(t, `{"totalSlides":2}`, string(run.Result))

	details, err := f.slides.ListSlides(ctx, "dQw4w9WgXcQ")
	require.NoError(t, err)
	require.Len(t, details, 2)

	// The duplicate names segment 1, which became slide 0 after the motion
	// segment was skipped.
	require.NotNil(t, details[1].Last.DuplicateOfSlide)
	assert.Equal(t, 0, *details[1].Last.DuplicateOfSlide)
	assert.Equal(t, "first", details[1].Last.DuplicateOfFrame)
	assert.Empty(t, details[1].Last.ImageURL)
}

func TestSlideExtraction_CompletionWithoutManifestIsFatal(t *testing.T) {
	f := newWorkflowFixture(t)
	ctx := context.Background()

	calls := f.useExtractor(t, extractorScript{
		jobID: "job-11",
		frames: []string{
			`{"status":"completed"}`,
		},
	})
	f.useObjectStores(t, nil)

	d, err := f.coord.StartSlides(ctx, "dQw4w9WgXcQ")
	require.NoError(t, err)
	run := f.execExisting(t, d.RunID)
	require.Equal(t, workflowrun.StateFailed, run.State)
	require.NotNil(t, run.ErrorMessage)
	assert.Contains(t, *run.ErrorMessage, "without a manifest URI")

	// Monitoring again cannot produce a manifest, so the step must not retry.
	assert.Equal(t, 1, calls.monitors)

	ex, err := f.slides.GetExtraction(ctx, "dQw4w9WgXcQ")
	require.NoError(t, err)
	assert.Equal(t, slideextraction.StatusFailed, ex.Status)
}

func TestObjectKeyFromURI(t *testing.T) {
	cases := []struct {
		uri  string
		want string
	}{
		{"s3://bucket/frames/a.webp", "frames/a.webp"},
		{"s3://bucket/deep/path/k", "deep/path/k"},
		{"s3://bucketonly", "bucketonly"},
		{"/already/a/key", "already/a/key"},
		{"plain/key.json", "plain/key.json"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, objectKeyFromURI(tc.uri), "uri %q", tc.uri)
	}
}

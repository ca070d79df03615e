package api

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-contrib/sse"
	"github.com/gin-gonic/gin"

	"github.com/recapd/recapd/pkg/coordinator"
	"github.com/recapd/recapd/pkg/engine"
	"github.com/recapd/recapd/pkg/models"
)

// HeaderRunID carries the backing run id on streaming responses so clients
// can cancel or reattach.
const HeaderRunID = "X-Workflow-Run-Id"

// streamStartIndex resolves where to start reading a run's log: an explicit
// startIndex query wins, then the SSE Last-Event-ID reconnect header plus
// one, then zero.
func streamStartIndex(c *gin.Context) (int, bool) {
	if raw := c.Query("startIndex"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil || v < 0 {
			return 0, false
		}
		return v, true
	}
	if raw := c.GetHeader("Last-Event-ID"); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil && v >= 0 {
			return v + 1, true
		}
	}
	return 0, true
}

// streamDispatch serves a coordinator dispatch: a cached result becomes a
// two-frame stream, anything else attaches to the backing run.
func (s *Server) streamDispatch(c *gin.Context, d *coordinator.Dispatch) {
	if len(d.Cached) > 0 {
		s.serveCached(c, d.Cached)
		return
	}
	start, ok := streamStartIndex(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid startIndex"})
		return
	}
	s.streamRun(c, d.RunID, d.Namespace, start)
}

// serveCached emits a completed result as a minimal stream: result then
// complete.
func (s *Server) serveCached(c *gin.Context, result json.RawMessage) {
	writeStreamHeaders(c, "")

	resultFrame, err := json.Marshal(models.ResultEvent{Type: models.EventTypeResult, Data: result})
	if err != nil {
		return
	}
	completeFrame, _ := json.Marshal(models.CompleteEvent{Type: models.EventTypeComplete})
	writeFrame(c, 0, resultFrame)
	writeFrame(c, 1, completeFrame)
}

// streamRun serves a run's client events as SSE from startIndex until the
// run's terminal event, heartbeating idle connections. When no namespace
// filter applies, each frame from a named sub-stream is tagged with its
// source.
func (s *Server) streamRun(c *gin.Context, runID, namespace string, startIndex int) {
	ctx := c.Request.Context()
	events, err := s.engine.Stream(ctx, runID, startIndex, namespace)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	writeStreamHeaders(c, runID)

	heartbeat := time.NewTicker(s.cfg.SSEHeartbeatInterval)
	defer heartbeat.Stop()

	tagSources := namespace == ""
	for {
		select {
		case <-ctx.Done():
			return

		case <-heartbeat.C:
			if _, err := c.Writer.WriteString(": ping\n\n"); err != nil {
				return
			}
			c.Writer.Flush()

		case ev, ok := <-events:
			if !ok {
				return
			}
			switch ev.Kind {
			case engine.KindEmit:
				payload := ev.Payload
				if tagSources && ev.Namespace != "" {
					payload = withSource(payload, ev.Namespace)
				}
				writeFrame(c, ev.Index, payload)

			case engine.KindRunTerminal:
				if frame := terminalFrame(ev); frame != nil {
					writeFrame(c, ev.Index, frame)
				}
				return
			}
		}
	}
}

func writeStreamHeaders(c *gin.Context, runID string) {
	h := c.Writer.Header()
	h.Set("Content-Type", "text/event-stream")
	h.Set("Cache-Control", "no-cache")
	h.Set("Connection", "keep-alive")
	h.Set("X-Accel-Buffering", "no")
	if runID != "" {
		h.Set(HeaderRunID, runID)
	}
	c.Writer.WriteHeader(http.StatusOK)
	c.Writer.Flush()
}

func writeFrame(c *gin.Context, index int, payload json.RawMessage) {
	_ = sse.Encode(c.Writer, sse.Event{
		Id:    strconv.Itoa(index),
		Event: "message",
		Data:  payload,
	})
	c.Writer.Flush()
}

// terminalFrame maps a run_terminal event to its closing client frame.
// Completed runs already emitted their complete event; interrupted and
// failed ones close with an error frame.
func terminalFrame(ev *engine.Event) json.RawMessage {
	var terminal engine.TerminalPayload
	if err := json.Unmarshal(ev.Payload, &terminal); err != nil {
		return nil
	}
	if terminal.State == engine.StateCompleted {
		return nil
	}
	message := terminal.Message
	if message == "" {
		message = "run " + terminal.State
	}
	frame, err := json.Marshal(models.ErrorEvent{Type: models.EventTypeError, Message: message})
	if err != nil {
		return nil
	}
	return frame
}

// withSource tags a frame with the sub-stream it came from.
func withSource(payload json.RawMessage, source string) json.RawMessage {
	var obj map[string]any
	if err := json.Unmarshal(payload, &obj); err != nil {
		return payload
	}
	if _, ok := obj["source"]; !ok {
		obj["source"] = source
	}
	tagged, err := json.Marshal(obj)
	if err != nil {
		return payload
	}
	return tagged
}

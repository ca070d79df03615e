package engine

import (
	"encoding/json"
	"fmt"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
)

func TestArgsDigest_Properties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	properties := gopter.NewProperties(parameters)

	properties.Property("digest is deterministic", prop.ForAll(
		func(workflow, videoID string) bool {
			args := mustArgs(videoID)
			return ArgsDigest(workflow, args) == ArgsDigest(workflow, args)
		},
		gen.AlphaString(),
		gen.AlphaString(),
	))

	properties.Property("key order does not change the digest", prop.ForAll(
		func(a, b string) bool {
			j1 := json.RawMessage(fmt.Sprintf(`{"videoId":%q,"lang":%q}`, a, b))
			j2 := json.RawMessage(fmt.Sprintf(`{"lang":%q,"videoId":%q}`, b, a))
			return ArgsDigest("w", j1) == ArgsDigest("w", j2)
		},
		gen.AlphaString(),
		gen.AlphaString(),
	))

	properties.Property("whitespace does not change the digest", prop.ForAll(
		func(v string) bool {
			j1 := json.RawMessage(fmt.Sprintf(`{"videoId":%q}`, v))
			j2 := json.RawMessage(fmt.Sprintf(`{ "videoId" : %q }`, v))
			return ArgsDigest("w", j1) == ArgsDigest("w", j2)
		},
		gen.AlphaString(),
	))

	properties.Property("different workflows get different digests", prop.ForAll(
		func(videoID string) bool {
			args := mustArgs(videoID)
			return ArgsDigest("analyze", args) != ArgsDigest("process", args)
		},
		gen.AlphaString(),
	))

	properties.Property("different args get different digests", prop.ForAll(
		func(a, b string) bool {
			if a == b {
				return true
			}
			return ArgsDigest("w", mustArgs(a)) != ArgsDigest("w", mustArgs(b))
		},
		gen.AlphaString(),
		gen.AlphaString(),
	))

	properties.TestingRun(t)
}

func TestArgsDigest_EmptyArgs(t *testing.T) {
	assert.Equal(t, ArgsDigest("w", nil), ArgsDigest("w", json.RawMessage("null")))
}

func TestIsTerminalState(t *testing.T) {
	assert.True(t, IsTerminalState(StateCompleted))
	assert.True(t, IsTerminalState(StateFailed))
	assert.True(t, IsTerminalState(StateCancelled))
	assert.False(t, IsTerminalState(StatePending))
	assert.False(t, IsTerminalState(StateRunning))
	assert.False(t, IsTerminalState(StatePaused))
}

func mustArgs(videoID string) json.RawMessage {
	raw, err := json.Marshal(map[string]string{"videoId": videoID})
	if err != nil {
		panic(err)
	}
	return raw
}

package events

import (
	"context"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBroker_BroadcastReachesAllSubscribers(t *testing.T) {
	broker := NewBroker()
	ctx := context.Background()

	sub1, err := broker.Subscribe(ctx, "run_events:run-1")
	require.NoError(t, err)
	sub2, err := broker.Subscribe(ctx, "run_events:run-1")
	require.NoError(t, err)
	other, err := broker.Subscribe(ctx, "run_events:run-2")
	require.NoError(t, err)

	broker.Broadcast("run_events:run-1", []byte(`{"index":0}`))

	for _, sub := range []*Subscription{sub1, sub2} {
		select {
		case payload := <-sub.C:
			assert.JSONEq(t, `{"index":0}`, string(payload))
		case <-time.After(time.Second):
			t.Fatal("subscriber did not receive broadcast")
		}
	}

	select {
	case <-other.C:
		t.Fatal("subscriber on a different channel received the payload")
	default:
	}
}

func TestBroker_UnsubscribeStopsDelivery(t *testing.T) {
	broker := NewBroker()
	ctx := context.Background()

	sub, err := broker.Subscribe(ctx, "run_events:run-1")
	require.NoError(t, err)
	assert.Equal(t, 1, broker.SubscriberCount("run_events:run-1"))

	broker.Unsubscribe(sub)
	assert.Equal(t, 0, broker.SubscriberCount("run_events:run-1"))
	assert.Equal(t, 0, broker.ActiveChannels())

	broker.Broadcast("run_events:run-1", []byte(`{}`))
	select {
	case <-sub.C:
		t.Fatal("unsubscribed subscriber received a payload")
	default:
	}
}

func TestBroker_FullBufferDropsInsteadOfBlocking(t *testing.T) {
	broker := NewBroker()
	sub, err := broker.Subscribe(context.Background(), "run_events:run-1")
	require.NoError(t, err)

	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < subscriptionBuffer+10; i++ {
			broker.Broadcast("run_events:run-1", []byte(`{}`))
		}
	}()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("broadcast blocked on a full subscriber buffer")
	}

	// The buffer holds at most its capacity; the overflow was dropped.
	assert.LessOrEqual(t, len(sub.C), subscriptionBuffer)
}

func TestRunChannel_Format(t *testing.T) {
	assert.Equal(t, "run:abc", RunChannel("abc"))
}

func TestEnvelope_RoundTrip(t *testing.T) {
	payload, err := EncodeEnvelope("run-1", 7, []byte(`{"kind":"emit"}`))
	require.NoError(t, err)

	var env Envelope
	require.NoError(t, json.Unmarshal([]byte(payload), &env))
	assert.Equal(t, "run-1", env.RunID)
	assert.Equal(t, 7, env.Index)
	assert.False(t, env.Truncated)
	assert.JSONEq(t, `{"kind":"emit"}`, string(env.Event))
}

func TestEnvelope_TruncatesOversizedEvents(t *testing.T) {
	big, err := json.Marshal(map[string]string{"data": strings.Repeat("x", NotifyLimit)})
	require.NoError(t, err)

	payload, err := EncodeEnvelope("run-1", 3, big)
	require.NoError(t, err)
	assert.LessOrEqual(t, len(payload), NotifyLimit)

	var env Envelope
	require.NoError(t, json.Unmarshal([]byte(payload), &env))
	assert.True(t, env.Truncated, "oversized payloads must be marked truncated")
	assert.Equal(t, 3, env.Index)
	assert.Empty(t, env.Event)
}

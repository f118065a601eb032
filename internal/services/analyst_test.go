package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseChatStream(t *testing.T) {
	stream := strings.Join([]string{
		`: keep-alive`,
		`data: {"choices":[{"delta":{"role":"assistant"}}]}`,
		`data: {"choices":[{"delta":{"content":"Barnes "}}]}`,
		``,
		`data: not json`,
		`data:{"choices":[{"delta":{"content":"is "}}]}`,
		`event: ping`,
		`data: {"choices":[]}`,
		`data: {"choices":[{"delta":{"content":"cooking."}}]}`,
		`data: [DONE]`,
		`data: {"choices":[{"delta":{"content":" ignored"}}]}`,
	}, "\n")

	var chunks []string
	reply, err := ParseChatStream(strings.NewReader(stream), func(s string) { chunks = append(chunks, s) })

	require.NoError(t, err)
	assert.Equal(t, "Barnes is cooking.", reply)
	assert.Equal(t, []string{"Barnes ", "is ", "cooking."}, chunks)
}

func TestParseChatStream_EndsWithoutDone(t *testing.T) {
	reply, err := ParseChatStream(strings.NewReader(`data: {"choices":[{"delta":{"content":"partial"}}]}`), nil)
	require.NoError(t, err)
	assert.Equal(t, "partial", reply)
}

func sseServer(t *testing.T, hits *atomic.Int32, handler func(w http.ResponseWriter, req chatRequest)) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		var req chatRequest
		_ = json.NewDecoder(r.Body).Decode(&req)
		handler(w, req)
	}))
	t.Cleanup(server.Close)
	return server
}

func newTestAnalystClient(url string, threshold int) *AnalystClient {
	return NewAnalystClient(AnalystClientConfig{
		APIKey:           "sk-test",
		BaseURL:          url + "/",
		Model:            "test-model",
		Timeout:          5 * time.Second,
		FailureThreshold: threshold,
	}, quietLogger())
}

func TestAnalystClient_StreamChat(t *testing.T) {
	var hits atomic.Int32
	var got chatRequest
	var auth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		auth = r.Header.Get("Authorization")
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))

		w.Header().Set("Content-Type", "text/event-stream")
		for _, word := range []string{"Drop ", "coverage."} {
			fmt.Fprintf(w, "data: {\"choices\":[{\"delta\":{\"content\":%q}}]}\n\n", word)
			w.(http.Flusher).Flush()
		}
		fmt.Fprint(w, "data: [DONE]\n\n")
	}))
	defer server.Close()

	client := newTestAnalystClient(server.URL, 3)
	var chunks []string
	reply, err := client.StreamChat(context.Background(), []ChatMessage{{Role: "user", Content: "How do we guard the pick and roll?"}}, func(s string) {
		chunks = append(chunks, s)
	})

	require.NoError(t, err)
	assert.Equal(t, "Drop coverage.", reply)
	assert.Equal(t, []string{"Drop ", "coverage."}, chunks)
	assert.Equal(t, "Bearer sk-test", auth)
	assert.Equal(t, "test-model", got.Model)
	assert.True(t, got.Stream)
	assert.Equal(t, int32(1), hits.Load())
}

func TestAnalystClient_CircuitOpensAfterFailures(t *testing.T) {
	var hits atomic.Int32
	server := sseServer(t, &hits, func(w http.ResponseWriter, req chatRequest) {
		http.Error(w, `{"error":"overloaded"}`, http.StatusServiceUnavailable)
	})
	client := newTestAnalystClient(server.URL, 2)
	msgs := []ChatMessage{{Role: "user", Content: "hi"}}

	for i := 0; i < 2; i++ {
		_, err := client.StreamChat(context.Background(), msgs, nil)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "503")
	}

	_, err := client.StreamChat(context.Background(), msgs, nil)
	assert.ErrorIs(t, err, ErrAnalystUnavailable)
	assert.Equal(t, int32(2), hits.Load(), "open circuit short-circuits the request")
}

func TestAnalystClient_CancellationDoesNotTripCircuit(t *testing.T) {
	var hits atomic.Int32
	server := sseServer(t, &hits, func(w http.ResponseWriter, req chatRequest) {
		w.Header().Set("Content-Type", "text/event-stream")
		w.(http.Flusher).Flush()
		time.Sleep(200 * time.Millisecond)
	})
	client := newTestAnalystClient(server.URL, 1)

	for i := 0; i < 2; i++ {
		ctx, cancel := context.WithCancel(context.Background())
		go func() {
			time.Sleep(20 * time.Millisecond)
			cancel()
		}()
		_, err := client.StreamChat(ctx, []ChatMessage{{Role: "user", Content: "hi"}}, nil)
		assert.ErrorIs(t, err, context.Canceled)
		cancel()
	}
	assert.Equal(t, int32(2), hits.Load())
}

// scriptedStreamer replies with a fixed answer, or blocks until cancelled when block is set
type scriptedStreamer struct {
	reply    string
	err      error
	block    bool
	started  chan struct{}
	received [][]ChatMessage
}

func (s *scriptedStreamer) StreamChat(ctx context.Context, messages []ChatMessage, onChunk func(string)) (string, error) {
	s.received = append(s.received, messages)
	if s.block {
		if s.started != nil {
			close(s.started)
		}
		<-ctx.Done()
		return "", ctx.Err()
	}
	if s.err != nil {
		return "", s.err
	}
	if onChunk != nil {
		onChunk(s.reply)
	}
	return s.reply, nil
}

func TestChatSession_KeepsHistory(t *testing.T) {
	session := NewChatSession("system prompt")
	streamer := &scriptedStreamer{reply: "Force him left."}

	reply, err := session.SendMessage(context.Background(), streamer, "How do we guard Edwards?", nil)
	require.NoError(t, err)
	assert.Equal(t, "Force him left.", reply)

	_, err = session.SendMessage(context.Background(), streamer, "And Randle?", nil)
	require.NoError(t, err)

	require.Len(t, streamer.received, 2)
	assert.Equal(t, "system", streamer.received[1][0].Role)
	assert.Len(t, streamer.received[1], 4, "second request carries the first exchange")
	assert.Equal(t, []ChatMessage{
		{Role: "user", Content: "How do we guard Edwards?"},
		{Role: "assistant", Content: "Force him left."},
		{Role: "user", Content: "And Randle?"},
		{Role: "assistant", Content: "Force him left."},
	}, session.History())
}

func TestChatSession_FailedReplyLeavesHistoryUntouched(t *testing.T) {
	session := NewChatSession("system prompt")

	_, err := session.SendMessage(context.Background(), &scriptedStreamer{err: errors.New("boom")}, "hello", nil)
	require.Error(t, err)
	assert.Empty(t, session.History())
}

func TestChatSession_Disconnect(t *testing.T) {
	session := NewChatSession("system prompt")
	streamer := &scriptedStreamer{block: true, started: make(chan struct{})}

	assert.False(t, session.Disconnect(), "nothing to cancel while idle")

	errCh := make(chan error, 1)
	go func() {
		_, err := session.SendMessage(context.Background(), streamer, "long question", nil)
		errCh <- err
	}()
	<-streamer.started

	_, err := session.SendMessage(context.Background(), &scriptedStreamer{reply: "x"}, "second", nil)
	assert.ErrorIs(t, err, ErrAnalystBusy)

	assert.True(t, session.Disconnect())
	assert.ErrorIs(t, <-errCh, context.Canceled)
	assert.Empty(t, session.History())
}

func TestAnalystService_Disabled(t *testing.T) {
	svc := NewAnalystService(nil, "Raptors", 10, quietLogger())

	assert.False(t, svc.Enabled())
	_, err := svc.Send(context.Background(), "s1", "hi", nil)
	assert.ErrorIs(t, err, ErrAnalystDisabled)
}

func TestAnalystService_RateLimitsPerSession(t *testing.T) {
	svc := NewAnalystService(&scriptedStreamer{reply: "ok"}, "Raptors", 1, quietLogger())

	_, err := svc.Send(context.Background(), "s1", "first", nil)
	require.NoError(t, err)
	_, err = svc.Send(context.Background(), "s1", "second", nil)
	assert.ErrorIs(t, err, ErrRateLimited)

	_, err = svc.Send(context.Background(), "s2", "other session", nil)
	assert.NoError(t, err)
}

func TestAnalystService_SystemPromptAndClose(t *testing.T) {
	streamer := &scriptedStreamer{reply: "ok"}
	svc := NewAnalystService(streamer, "Raptors", 0, quietLogger())

	_, err := svc.Send(context.Background(), "s1", "hi", nil)
	require.NoError(t, err)
	assert.Contains(t, streamer.received[0][0].Content, "specializing in the Toronto Raptors")
	assert.Len(t, svc.History("s1"), 2)

	svc.Close("s1")
	assert.Empty(t, svc.History("s1"))
	assert.False(t, svc.Disconnect("s1"))
}

func TestAnalystService_Prune(t *testing.T) {
	svc := NewAnalystService(&scriptedStreamer{reply: "ok"}, "Raptors", 1, quietLogger())
	for _, id := range []string{"s1", "s2"} {
		_, err := svc.Send(context.Background(), id, "hi", nil)
		require.NoError(t, err)
	}

	assert.Equal(t, 1, svc.Prune(func(id string) bool { return id == "s2" }))
	assert.Empty(t, svc.History("s1"))
	assert.Len(t, svc.History("s2"), 2)

	svc.mu.Lock()
	_, hasSession := svc.sessions["s1"]
	_, hasLimiter := svc.limiters["s1"]
	svc.mu.Unlock()
	assert.False(t, hasSession)
	assert.False(t, hasLimiter)

	assert.Equal(t, 0, svc.Prune(func(string) bool { return true }))
}

func TestAnalystService_PruneCancelsStreamingReply(t *testing.T) {
	streamer := &scriptedStreamer{block: true, started: make(chan struct{})}
	svc := NewAnalystService(streamer, "Raptors", 0, quietLogger())

	errCh := make(chan error, 1)
	go func() {
		_, err := svc.Send(context.Background(), "s1", "long question", nil)
		errCh <- err
	}()
	<-streamer.started

	assert.Equal(t, 1, svc.Prune(func(string) bool { return false }))
	assert.ErrorIs(t, <-errCh, context.Canceled)
}

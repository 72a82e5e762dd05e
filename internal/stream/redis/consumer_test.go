package redis

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/povarna/generative-ai-agents/word-agent/internal/models"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

type fakeClient struct {
	redis.Cmdable
	added   []*redis.XAddArgs
	acked   []string
	failAdd error

	// incoming is delivered on the next ">" read and then kept in pending
	// until acked, like a consumer group's pending entries list.
	incoming []redis.XMessage
	pending  []redis.XMessage
	reads    []string
}

func (f *fakeClient) XReadGroup(ctx context.Context, a *redis.XReadGroupArgs) *redis.XStreamSliceCmd {
	cmd := redis.NewXStreamSliceCmd(ctx, "xreadgroup")
	stream, id := a.Streams[0], a.Streams[1]
	f.reads = append(f.reads, id)

	var messages []redis.XMessage
	if id == ">" {
		messages = f.incoming
		f.pending = append(f.pending, f.incoming...)
		f.incoming = nil
	} else {
		for _, msg := range f.pending {
			if msg.ID > id && int64(len(messages)) < a.Count {
				messages = append(messages, msg)
			}
		}
	}

	if len(messages) == 0 && id == ">" {
		cmd.SetErr(redis.Nil)
		return cmd
	}
	cmd.SetVal([]redis.XStream{{Stream: stream, Messages: messages}})
	return cmd
}

func (f *fakeClient) XAdd(ctx context.Context, a *redis.XAddArgs) *redis.StringCmd {
	cmd := redis.NewStringCmd(ctx, "xadd", a.Stream)
	if f.failAdd != nil {
		cmd.SetErr(f.failAdd)
		return cmd
	}
	f.added = append(f.added, a)
	cmd.SetVal("1-0")
	return cmd
}

func (f *fakeClient) XAck(ctx context.Context, stream, group string, ids ...string) *redis.IntCmd {
	cmd := redis.NewIntCmd(ctx, "xack", stream, group)
	f.acked = append(f.acked, ids...)
	for _, id := range ids {
		for i, msg := range f.pending {
			if msg.ID == id {
				f.pending = append(f.pending[:i], f.pending[i+1:]...)
				break
			}
		}
	}
	cmd.SetVal(int64(len(ids)))
	return cmd
}

type stubAnalyzer struct {
	requests []models.WordRequest
	err      error
}

func (s *stubAnalyzer) Analyze(_ context.Context, request models.WordRequest) (models.AnalysisResult, error) {
	s.requests = append(s.requests, request)
	result := models.AnalysisResult{ID: request.EventID, Word: request.Word, Length: len(request.Word)}
	if s.err != nil {
		result.Error = s.err.Error()
	}
	return result, s.err
}

func newTestConsumer(client *fakeClient, analyzer Analyzer) *Consumer {
	logger := zerolog.Nop()
	cfg := NewRedisStreamConfig("", "", "word-events", "word-results", "word-group", "test")
	return NewConsumer(client, cfg, analyzer, &logger)
}

func TestDecodePayload(t *testing.T) {
	testCases := []struct {
		name     string
		msg      redis.XMessage
		wantErr  bool
		wantID   string
		wantWord string
		wantSrc  models.Source
	}{
		{
			name:     "full payload",
			msg:      redis.XMessage{ID: "1-0", Values: map[string]any{"payload": `{"event_id":"e1","word":"abc","source":"api"}`}},
			wantID:   "e1",
			wantWord: "abc",
			wantSrc:  models.SourceAPI,
		},
		{
			name:     "defaults from message",
			msg:      redis.XMessage{ID: "2-0", Values: map[string]any{"payload": `{"word":"pwwkew"}`}},
			wantID:   "2-0",
			wantWord: "pwwkew",
			wantSrc:  models.SourceStream,
		},
		{
			name:    "missing payload",
			msg:     redis.XMessage{ID: "3-0", Values: map[string]any{"other": "x"}},
			wantErr: true,
		},
		{
			name:    "invalid json",
			msg:     redis.XMessage{ID: "4-0", Values: map[string]any{"payload": "{"}},
			wantErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			request, err := decodePayload(tc.msg)
			if tc.wantErr {
				if err == nil {
					t.Fatal("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if request.EventID != tc.wantID || request.Word != tc.wantWord || request.Source != tc.wantSrc {
				t.Errorf("unexpected request: %+v", request)
			}
		})
	}
}

func TestConsumer_Process_PublishesAndAcks(t *testing.T) {
	client := &fakeClient{}
	analyzer := &stubAnalyzer{}
	consumer := newTestConsumer(client, analyzer)

	consumer.process(context.Background(), redis.XMessage{
		ID:     "5-0",
		Values: map[string]any{"payload": `{"event_id":"e5","word":"abcabcbb"}`},
	})

	if len(analyzer.requests) != 1 || analyzer.requests[0].Word != "abcabcbb" {
		t.Fatalf("analyzer not called as expected: %+v", analyzer.requests)
	}
	if len(client.added) != 1 || client.added[0].Stream != "word-results" {
		t.Fatalf("expected one result on word-results, got %+v", client.added)
	}

	values, ok := client.added[0].Values.(map[string]any)
	if !ok {
		t.Fatalf("unexpected values type %T", client.added[0].Values)
	}
	var result models.AnalysisResult
	if err := json.Unmarshal([]byte(values["payload"].(string)), &result); err != nil {
		t.Fatalf("result payload is not JSON: %v", err)
	}
	if result.ID != "e5" {
		t.Errorf("expected result ID e5, got %s", result.ID)
	}

	if len(client.acked) != 1 || client.acked[0] != "5-0" {
		t.Errorf("expected ack of 5-0, got %v", client.acked)
	}
}

func TestConsumer_Process_RejectedWordStillPublished(t *testing.T) {
	client := &fakeClient{}
	analyzer := &stubAnalyzer{err: errors.New("invalid word: too long")}
	consumer := newTestConsumer(client, analyzer)

	consumer.process(context.Background(), redis.XMessage{
		ID:     "6-0",
		Values: map[string]any{"payload": `{"word":"zzzz"}`},
	})

	if len(client.added) != 1 {
		t.Fatalf("expected rejected result to be published, got %d", len(client.added))
	}
	if len(client.acked) != 1 {
		t.Errorf("expected message to be acked, got %v", client.acked)
	}
}

func TestConsumer_Process_BadMessageIsAckedWithoutAnalysis(t *testing.T) {
	client := &fakeClient{}
	analyzer := &stubAnalyzer{}
	consumer := newTestConsumer(client, analyzer)

	consumer.process(context.Background(), redis.XMessage{ID: "7-0", Values: map[string]any{}})

	if len(analyzer.requests) != 0 {
		t.Error("expected analyzer not to be called")
	}
	if len(client.acked) != 1 || client.acked[0] != "7-0" {
		t.Errorf("expected bad message to be acked, got %v", client.acked)
	}
}

func TestConsumer_Process_PublishFailureLeavesMessagePending(t *testing.T) {
	client := &fakeClient{failAdd: errors.New("READONLY")}
	consumer := newTestConsumer(client, &stubAnalyzer{})

	consumer.process(context.Background(), redis.XMessage{
		ID:     "8-0",
		Values: map[string]any{"payload": `{"word":"abc"}`},
	})

	if len(client.acked) != 0 {
		t.Errorf("expected no ack after publish failure, got %v", client.acked)
	}
}

func TestConsumer_RetryPending_ReprocessesFailedPublish(t *testing.T) {
	client := &fakeClient{
		failAdd: errors.New("READONLY"),
		incoming: []redis.XMessage{
			{ID: "9-0", Values: map[string]any{"payload": `{"event_id":"e9","word":"tmmzuxt"}`}},
		},
	}
	analyzer := &stubAnalyzer{}
	consumer := newTestConsumer(client, analyzer)

	if err := consumer.poll(context.Background()); err != nil {
		t.Fatalf("poll failed: %v", err)
	}
	if len(client.acked) != 0 || len(client.pending) != 1 {
		t.Fatalf("expected message to stay pending, acked=%v pending=%d", client.acked, len(client.pending))
	}

	// A later poll for new messages does not see it again.
	if err := consumer.poll(context.Background()); err != nil {
		t.Fatalf("poll failed: %v", err)
	}
	if len(analyzer.requests) != 1 {
		t.Fatalf("expected one analysis so far, got %d", len(analyzer.requests))
	}

	client.failAdd = nil
	consumer.retryPending(context.Background())

	if len(analyzer.requests) != 2 || analyzer.requests[1].EventID != "e9" {
		t.Fatalf("expected pending message to be analyzed again, got %+v", analyzer.requests)
	}
	if len(client.added) != 1 || client.added[0].Stream != "word-results" {
		t.Errorf("expected result to be published on retry, got %+v", client.added)
	}
	if len(client.acked) != 1 || client.acked[0] != "9-0" {
		t.Errorf("expected ack of 9-0 after retry, got %v", client.acked)
	}
	if len(client.pending) != 0 {
		t.Errorf("expected no pending entries, got %d", len(client.pending))
	}
}

func TestConsumer_RetryPending_StillFailingStaysPending(t *testing.T) {
	client := &fakeClient{failAdd: errors.New("READONLY")}
	for _, id := range []string{"10-0", "11-0"} {
		client.pending = append(client.pending, redis.XMessage{
			ID:     id,
			Values: map[string]any{"payload": `{"word":"abba"}`},
		})
	}
	analyzer := &stubAnalyzer{}
	consumer := newTestConsumer(client, analyzer)

	consumer.retryPending(context.Background())

	if len(analyzer.requests) != 2 {
		t.Errorf("expected each pending entry to be tried once, got %d", len(analyzer.requests))
	}
	if len(client.pending) != 2 || len(client.acked) != 0 {
		t.Errorf("expected entries to remain pending, pending=%d acked=%v", len(client.pending), client.acked)
	}
	if len(client.reads) != 1 || client.reads[0] != "0" {
		t.Errorf("expected one read of the pending list from 0, got %v", client.reads)
	}
}

func TestPublish(t *testing.T) {
	client := &fakeClient{}

	id, err := Publish(context.Background(), client, "word-events", models.WordRequest{EventID: "p1", Word: "abc"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id != "1-0" {
		t.Errorf("expected id 1-0, got %s", id)
	}
	if len(client.added) != 1 || client.added[0].Stream != "word-events" {
		t.Errorf("unexpected XAdd calls: %+v", client.added)
	}
}

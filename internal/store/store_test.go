package store

import (
	"context"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func testRepo(t *testing.T) EventRepo {
	t.Helper()
	s := openTestStore(t)
	repo, err := s.EventRepo()
	if err != nil {
		t.Fatalf("event repo: %v", err)
	}
	return repo
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so journal_mode is not checked here.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestAppendAndQueryLLMEvents(t *testing.T) {
	repo := testRepo(t)
	ctx := context.Background()

	for i, purpose := range []string{"plan", "daily-content", "question"} {
		err := repo.AppendLLMRequest(ctx, LLMRequestEventData{
			Provider:     "mistral",
			Model:        "mistral-medium",
			Purpose:      purpose,
			InputTokens:  100 + i,
			OutputTokens: 200 + i,
			LatencyMs:    50,
			Success:      true,
			RequestBody:  "[user]\nprompt",
			ResponseBody: "generated",
		})
		if err != nil {
			t.Fatalf("append %s: %v", purpose, err)
		}
	}

	events, err := repo.QueryLLMEvents(ctx, QueryOpts{})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(events) != 3 {
		t.Fatalf("got %d events, want 3", len(events))
	}

	// Newest first.
	if events[0].Purpose != "question" {
		t.Errorf("first event purpose = %q, want %q", events[0].Purpose, "question")
	}
	if events[0].Sequence <= events[1].Sequence {
		t.Errorf("sequences not descending: %d then %d", events[0].Sequence, events[1].Sequence)
	}

	// Purpose filter.
	events, err = repo.QueryLLMEvents(ctx, QueryOpts{Purpose: "plan"})
	if err != nil {
		t.Fatalf("filtered query: %v", err)
	}
	if len(events) != 1 || events[0].Purpose != "plan" {
		t.Fatalf("filtered query returned %v", events)
	}
}

func TestGetLLMEvent(t *testing.T) {
	repo := testRepo(t)
	ctx := context.Background()

	err := repo.AppendLLMRequest(ctx, LLMRequestEventData{
		Provider:     "mock",
		Model:        "mock",
		Purpose:      "plan",
		Success:      false,
		ErrorMessage: "provider unavailable",
	})
	if err != nil {
		t.Fatalf("append: %v", err)
	}

	events, err := repo.QueryLLMEvents(ctx, QueryOpts{Limit: 1})
	if err != nil {
		t.Fatalf("query: %v", err)
	}

	e, err := repo.GetLLMEvent(ctx, events[0].ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if e == nil {
		t.Fatal("expected event")
	}
	if e.ErrorMessage != "provider unavailable" {
		t.Errorf("error message = %q", e.ErrorMessage)
	}

	missing, err := repo.GetLLMEvent(ctx, 99999)
	if err != nil {
		t.Fatalf("get missing: %v", err)
	}
	if missing != nil {
		t.Error("expected nil for missing event")
	}
}

func TestLLMUsageAggregation(t *testing.T) {
	repo := testRepo(t)
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		err := repo.AppendLLMRequest(ctx, LLMRequestEventData{
			Provider:     "openai",
			Model:        "gpt-4o-mini",
			Purpose:      "daily-content",
			InputTokens:  10,
			OutputTokens: 20,
			LatencyMs:    100,
			Success:      true,
		})
		if err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	byPurpose, err := repo.LLMUsageByPurpose(ctx)
	if err != nil {
		t.Fatalf("usage by purpose: %v", err)
	}
	if len(byPurpose) != 1 {
		t.Fatalf("got %d purpose rows, want 1", len(byPurpose))
	}
	u := byPurpose[0]
	if u.Purpose != "daily-content" || u.Calls != 2 || u.InputTokens != 20 || u.OutputTokens != 40 {
		t.Errorf("unexpected aggregation: %+v", u)
	}

	byModel, err := repo.LLMUsageByModel(ctx)
	if err != nil {
		t.Fatalf("usage by model: %v", err)
	}
	if len(byModel) != 1 || byModel[0].Model != "gpt-4o-mini" || byModel[0].Calls != 2 {
		t.Errorf("unexpected model aggregation: %+v", byModel)
	}
}

func TestAppendSessionEvent(t *testing.T) {
	repo := testRepo(t)
	ctx := context.Background()

	err := repo.AppendSessionEvent(ctx, SessionEventData{
		SessionID: "user123",
		Action:    "save",
		Courses:   2,
		Success:   true,
	})
	if err != nil {
		t.Fatalf("append session event: %v", err)
	}
}

func TestSequenceIsSharedAcrossEventTypes(t *testing.T) {
	repo := testRepo(t)
	ctx := context.Background()

	if err := repo.AppendSessionEvent(ctx, SessionEventData{SessionID: "u", Action: "load", Success: true}); err != nil {
		t.Fatalf("session event: %v", err)
	}
	if err := repo.AppendLLMRequest(ctx, LLMRequestEventData{Provider: "mock", Model: "mock", Purpose: "plan", Success: true}); err != nil {
		t.Fatalf("llm event: %v", err)
	}

	events, err := repo.QueryLLMEvents(ctx, QueryOpts{})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	// The session event consumed sequence 1, so the LLM event starts later.
	if events[0].Sequence < 2 {
		t.Errorf("LLM event sequence = %d, want >= 2", events[0].Sequence)
	}
}

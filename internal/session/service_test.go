package session

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/truthcom/learnmate/internal/llm"
	"github.com/truthcom/learnmate/internal/store"
	"github.com/truthcom/learnmate/internal/tutor"
)

// recordingEvents implements store.EventRepo for testing.
type recordingEvents struct {
	store.EventRepo
	sessionEvents []store.SessionEventData
}

func (r *recordingEvents) AppendSessionEvent(_ context.Context, data store.SessionEventData) error {
	r.sessionEvents = append(r.sessionEvents, data)
	return nil
}

func newTestService(t *testing.T, responses ...llm.MockResponse) (*Service, *llm.MockProvider, *recordingEvents) {
	t.Helper()
	mock := llm.NewMockProvider(responses...)
	events := &recordingEvents{}
	svc := NewService(
		NewStore(t.TempDir()),
		tutor.NewService(mock, tutor.DefaultConfig()),
		events,
	)
	return svc, mock, events
}

func planResponse(text string) llm.MockResponse {
	return llm.MockResponse{Content: json.RawMessage(text)}
}

func TestService_CreateCourse(t *testing.T) {
	svc, _, events := newTestService(t, planResponse("14\nDay 1: intro"))

	doc := svc.Load(t.Context(), "alice")
	id, course, err := svc.CreateCourse(t.Context(), "alice", doc, tutor.PlanInput{
		CourseName:   "Go Basics",
		Level:        tutor.LevelHighSchool.String(),
		StudyContent: "goroutines",
	})
	if err != nil {
		t.Fatalf("CreateCourse: %v", err)
	}
	if course.Duration != 14 {
		t.Errorf("expected duration 14, got %d", course.Duration)
	}
	if doc.LastAccessedCourse != id {
		t.Error("expected new course to become last accessed")
	}

	// The course is on disk immediately.
	reloaded := svc.Load(t.Context(), "alice")
	if _, ok := reloaded.Courses[id]; !ok {
		t.Error("expected course to be persisted")
	}

	var actions []string
	for _, e := range events.sessionEvents {
		actions = append(actions, e.Action)
	}
	if len(actions) != 3 || actions[0] != "load" || actions[1] != "save" || actions[2] != "load" {
		t.Errorf("unexpected session events: %v", actions)
	}
}

func TestService_CreateCourseNeverOverwrites(t *testing.T) {
	svc, _, _ := newTestService(t,
		planResponse("10\nplan one"),
		planResponse("12\nplan two"),
	)

	doc := svc.Load(t.Context(), "alice")
	input := tutor.PlanInput{CourseName: "Go Basics", Level: tutor.LevelExpert.String(), StudyContent: "x"}

	id1, _, err := svc.CreateCourse(t.Context(), "alice", doc, input)
	if err != nil {
		t.Fatal(err)
	}
	id2, _, err := svc.CreateCourse(t.Context(), "alice", doc, input)
	if err != nil {
		t.Fatal(err)
	}

	if id1 == id2 {
		t.Fatal("expected distinct course ids for a repeated course name")
	}
	if len(doc.Courses) != 2 {
		t.Fatalf("expected 2 courses, got %d", len(doc.Courses))
	}
	if doc.Courses[id1].StudyPlan == doc.Courses[id2].StudyPlan {
		t.Error("expected each course to keep its own plan")
	}
}

func TestService_DailyContentMemoized(t *testing.T) {
	svc, mock, _ := newTestService(t,
		planResponse("5\nplan"),
		planResponse("day three lesson"),
	)

	doc := svc.Load(t.Context(), "alice")
	id, _, err := svc.CreateCourse(t.Context(), "alice", doc, tutor.PlanInput{
		CourseName: "Go Basics", Level: tutor.LevelMiddleSchool.String(), StudyContent: "x",
	})
	if err != nil {
		t.Fatal(err)
	}

	first, err := svc.DailyContent(t.Context(), "alice", doc, id, 3)
	if err != nil {
		t.Fatalf("DailyContent: %v", err)
	}
	if first != "day three lesson" {
		t.Errorf("unexpected content %q", first)
	}
	calls := mock.CallCount()

	// Second visit to the same day must not touch the model.
	second, err := svc.DailyContent(t.Context(), "alice", doc, id, 3)
	if err != nil {
		t.Fatal(err)
	}
	if second != first {
		t.Error("expected memoized content to be identical")
	}
	if mock.CallCount() != calls {
		t.Errorf("expected no extra model calls, got %d", mock.CallCount()-calls)
	}

	// Memoization survives a reload.
	reloaded := svc.Load(t.Context(), "alice")
	again, err := svc.DailyContent(t.Context(), "alice", reloaded, id, 3)
	if err != nil {
		t.Fatal(err)
	}
	if again != first || mock.CallCount() != calls {
		t.Error("expected persisted content to be served without a model call")
	}

	if got := reloaded.Courses[id].LastDay(); got != 3 {
		t.Errorf("expected last day 3, got %d", got)
	}
}

func TestService_AskPrependsHistory(t *testing.T) {
	svc, _, _ := newTestService(t,
		planResponse("5\nplan"),
		planResponse("first answer"),
		planResponse("second answer"),
	)

	doc := svc.Load(t.Context(), "alice")
	id, _, err := svc.CreateCourse(t.Context(), "alice", doc, tutor.PlanInput{
		CourseName: "Go Basics", Level: tutor.LevelUndergraduate.String(), StudyContent: "x",
	})
	if err != nil {
		t.Fatal(err)
	}

	if _, err := svc.Ask(t.Context(), "alice", doc, id, 1, "what is a goroutine?"); err != nil {
		t.Fatalf("Ask: %v", err)
	}
	if _, err := svc.Ask(t.Context(), "alice", doc, id, 2, "what is a channel?"); err != nil {
		t.Fatal(err)
	}

	history := doc.Courses[id].QAHistory
	if len(history) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(history))
	}
	if history[0].Question != "what is a channel?" || history[0].Answer != "second answer" {
		t.Errorf("expected newest entry first, got %+v", history[0])
	}
	if history[1].Question != "what is a goroutine?" {
		t.Errorf("expected oldest entry last, got %+v", history[1])
	}
	if history[0].Day != 2 {
		t.Errorf("expected day 2 on newest entry, got %d", history[0].Day)
	}
}

func TestService_UnknownCourse(t *testing.T) {
	svc, _, _ := newTestService(t)

	doc := svc.Load(t.Context(), "alice")
	if _, err := svc.DailyContent(t.Context(), "alice", doc, "missing", 1); err == nil {
		t.Error("expected error for unknown course")
	}
	if _, err := svc.Ask(t.Context(), "alice", doc, "missing", 1, "q"); err == nil {
		t.Error("expected error for unknown course")
	}
}

func TestService_GenerationFailureLeavesDocumentUntouched(t *testing.T) {
	svc, _, _ := newTestService(t,
		planResponse("5\nplan"),
		llm.MockResponse{Err: &llm.ErrProviderUnavailable{}},
	)

	doc := svc.Load(t.Context(), "alice")
	id, _, err := svc.CreateCourse(t.Context(), "alice", doc, tutor.PlanInput{
		CourseName: "Go Basics", Level: tutor.LevelKindergarten.String(), StudyContent: "x",
	})
	if err != nil {
		t.Fatal(err)
	}

	if _, err := svc.DailyContent(t.Context(), "alice", doc, id, 2); err == nil {
		t.Fatal("expected generation error")
	}
	if len(doc.Courses[id].DailyContents) != 0 {
		t.Error("failed generation must not be memoized")
	}
}

func TestService_Delete(t *testing.T) {
	svc, _, events := newTestService(t, planResponse("5\nplan"))

	if svc.Delete(t.Context(), "ghost") {
		t.Error("expected delete of unknown session to report false")
	}

	doc := svc.Load(t.Context(), "alice")
	if _, _, err := svc.CreateCourse(t.Context(), "alice", doc, tutor.PlanInput{
		CourseName: "Go Basics", Level: tutor.LevelLowerElementary.String(), StudyContent: "x",
	}); err != nil {
		t.Fatal(err)
	}

	if !svc.Delete(t.Context(), "alice") {
		t.Error("expected delete of stored session to report true")
	}

	last := events.sessionEvents[len(events.sessionEvents)-1]
	if last.Action != "delete" || !last.Success {
		t.Errorf("expected successful delete event, got %+v", last)
	}
}

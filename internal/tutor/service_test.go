package tutor

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/truthcom/learnmate/internal/llm"
)

func planInput() PlanInput {
	return PlanInput{
		CourseName:   "Python Basics",
		Level:        LevelMiddleSchool.String(),
		StudyContent: "Python syntax from variables through simple web apps",
	}
}

func TestService_GeneratePlan(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage("14\nDay 1:\n- Goal: learn variables\n- Content: types and assignment"),
	})
	svc := NewService(mock, DefaultConfig())

	plan, err := svc.GeneratePlan(t.Context(), planInput())
	if err != nil {
		t.Fatalf("GeneratePlan: %v", err)
	}
	if !strings.HasPrefix(plan, "14\n") {
		t.Errorf("expected plan to start with the day count, got %q", plan)
	}

	if mock.CallCount() != 1 {
		t.Fatalf("expected 1 call, got %d", mock.CallCount())
	}
	req := mock.Calls[0]
	if !strings.Contains(req.System, "Python Basics") {
		t.Errorf("expected system prompt to name the course, got %q", req.System)
	}
	if !strings.Contains(req.System, "Level 4 (Middle School)") {
		t.Errorf("expected system prompt to carry the level, got %q", req.System)
	}
	if req.Temperature != 0.7 {
		t.Errorf("expected temperature 0.7, got %v", req.Temperature)
	}
	if req.Schema != nil {
		t.Error("plan generation should be free text, not structured output")
	}
}

func TestService_GenerateDaily(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage("Today's goal: loops.\nPractice: write a for loop."),
	})
	svc := NewService(mock, DefaultConfig())

	input := DailyInput{
		CourseName:   "Python Basics",
		Level:        LevelHighSchool.String(),
		StudyContent: "Python syntax",
		Day:          3,
	}

	content, err := svc.GenerateDaily(t.Context(), input)
	if err != nil {
		t.Fatalf("GenerateDaily: %v", err)
	}
	if content == "" {
		t.Fatal("expected non-empty daily content")
	}

	req := mock.Calls[0]
	user := req.Messages[0].Content
	if !strings.Contains(user, "Day: 3") {
		t.Errorf("expected user message to carry the day, got %q", user)
	}
	if !strings.Contains(user, "Level 7 (Expert)") {
		t.Error("expected the tier guidelines to be embedded in the prompt")
	}
	if req.Temperature != 0.7 {
		t.Errorf("expected temperature 0.7, got %v", req.Temperature)
	}
}

func TestService_AnswerUsesDefaultTemperature(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage("A list is mutable, a tuple is not."),
	})
	svc := NewService(mock, DefaultConfig())

	input := QuestionInput{
		Level:    LevelUndergraduate.String(),
		Question: "What is the difference between a list and a tuple?",
	}

	answer, err := svc.Answer(t.Context(), input)
	if err != nil {
		t.Fatalf("Answer: %v", err)
	}
	if answer == "" {
		t.Fatal("expected non-empty answer")
	}

	req := mock.Calls[0]
	if req.Temperature != 0 {
		t.Errorf("questions should use the provider default temperature, got %v", req.Temperature)
	}
	if !strings.Contains(req.Messages[0].Content, "list and a tuple") {
		t.Error("expected the question to appear in the user message")
	}
}

func TestService_GenerateError(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Err: &llm.ErrProviderUnavailable{},
	})
	svc := NewService(mock, DefaultConfig())

	if _, err := svc.GeneratePlan(t.Context(), planInput()); err == nil {
		t.Fatal("expected error from failed plan generation")
	}
}

func TestLevel_String(t *testing.T) {
	tests := []struct {
		level Level
		want  string
	}{
		{LevelKindergarten, "Level 1 (Kindergarten)"},
		{LevelMiddleSchool, "Level 4 (Middle School)"},
		{LevelExpert, "Level 7 (Expert)"},
	}
	for _, tt := range tests {
		if got := tt.level.String(); got != tt.want {
			t.Errorf("Level(%d).String() = %q, want %q", int(tt.level), got, tt.want)
		}
	}

	if len(Levels) != 7 {
		t.Fatalf("expected 7 tiers, got %d", len(Levels))
	}
	for _, l := range Levels {
		if !l.Valid() {
			t.Errorf("level %d should be valid", int(l))
		}
	}
	if Level(0).Valid() || Level(8).Valid() {
		t.Error("levels outside 1..7 should be invalid")
	}
}

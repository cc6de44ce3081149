package session

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/truthcom/learnmate/internal/store"
	"github.com/truthcom/learnmate/internal/tutor"
)

// Service ties plan generation to the on-disk session documents. Every
// mutating operation persists the document before returning.
type Service struct {
	store  *Store
	tutor  *tutor.Service
	events store.EventRepo // optional
}

// NewService creates a session service. events may be nil when the
// event log is unavailable.
func NewService(st *Store, tut *tutor.Service, events store.EventRepo) *Service {
	return &Service{store: st, tutor: tut, events: events}
}

// Store exposes the underlying file store.
func (s *Service) Store() *Store {
	return s.store
}

// Load reads a session's document, creating a fresh one if none exists.
func (s *Service) Load(ctx context.Context, sessionID string) *Document {
	doc := s.store.Load(sessionID)
	s.recordEvent(ctx, sessionID, "load", len(doc.Courses), true)
	return doc
}

// CreateCourse generates a study plan and adds it to the document as a
// brand new course. Existing courses are never overwritten, even for a
// repeated course name.
func (s *Service) CreateCourse(ctx context.Context, sessionID string, doc *Document, input tutor.PlanInput) (string, *Course, error) {
	plan, err := s.tutor.GeneratePlan(ctx, input)
	if err != nil {
		return "", nil, err
	}

	course := NewCourse(input.CourseName, input.Level, input.StudyContent, plan)
	courseID := uuid.New().String()

	doc.Courses[courseID] = course
	doc.LastAccessedCourse = courseID

	if err := s.save(ctx, sessionID, doc); err != nil {
		return "", nil, err
	}
	return courseID, course, nil
}

// DailyContent returns the lesson text for one day of a course,
// generating and memoizing it on first access. Repeat visits to the
// same day never call the model again.
func (s *Service) DailyContent(ctx context.Context, sessionID string, doc *Document, courseID string, day int) (string, error) {
	course, ok := doc.Courses[courseID]
	if !ok {
		return "", fmt.Errorf("unknown course %q", courseID)
	}

	key := strconv.Itoa(day)
	if content, ok := course.DailyContents[key]; ok {
		return content, nil
	}

	content, err := s.tutor.GenerateDaily(ctx, tutor.DailyInput{
		CourseName:   course.CourseName,
		Level:        course.Level,
		StudyContent: course.StudyContent,
		Day:          day,
	})
	if err != nil {
		return "", err
	}

	if course.DailyContents == nil {
		course.DailyContents = make(map[string]string)
	}
	course.DailyContents[key] = content
	course.Touch()
	doc.LastAccessedCourse = courseID

	if err := s.save(ctx, sessionID, doc); err != nil {
		return "", err
	}
	return content, nil
}

// Ask answers a follow-up question at the course's level and prepends
// the exchange to the course's Q&A history, newest first.
func (s *Service) Ask(ctx context.Context, sessionID string, doc *Document, courseID string, day int, question string) (string, error) {
	course, ok := doc.Courses[courseID]
	if !ok {
		return "", fmt.Errorf("unknown course %q", courseID)
	}

	answer, err := s.tutor.Answer(ctx, tutor.QuestionInput{
		Level:    course.Level,
		Question: question,
	})
	if err != nil {
		return "", err
	}

	entry := QAEntry{
		Day:       day,
		Question:  question,
		Answer:    answer,
		Timestamp: time.Now().Format(TimestampLayout),
	}
	course.QAHistory = append([]QAEntry{entry}, course.QAHistory...)
	course.Touch()

	if err := s.save(ctx, sessionID, doc); err != nil {
		return "", err
	}
	return answer, nil
}

// Delete erases a session's stored data. Returns false when the
// session had nothing stored.
func (s *Service) Delete(ctx context.Context, sessionID string) bool {
	ok := s.store.Delete(sessionID)
	s.recordEvent(ctx, sessionID, "delete", 0, ok)
	return ok
}

func (s *Service) save(ctx context.Context, sessionID string, doc *Document) error {
	err := s.store.Save(sessionID, doc)
	s.recordEvent(ctx, sessionID, "save", len(doc.Courses), err == nil)
	return err
}

func (s *Service) recordEvent(ctx context.Context, sessionID, action string, courses int, success bool) {
	if s.events == nil {
		return
	}
	// The event log is observability, not state. Failures are ignored.
	_ = s.events.AppendSessionEvent(ctx, store.SessionEventData{
		SessionID: sessionID,
		Action:    action,
		Courses:   courses,
		Success:   success,
	})
}

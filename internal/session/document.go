package session

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// TimestampLayout is the format used for all course timestamps.
const TimestampLayout = "2006-01-02 15:04:05"

// DefaultDuration is used when the plan's first line carries no digits.
const DefaultDuration = 20

// Document is everything stored for one session id: all of its courses
// plus the id of the course opened most recently.
type Document struct {
	Courses            map[string]*Course `json:"courses"`
	LastAccessedCourse string             `json:"last_accessed_course,omitempty"`
}

// NewDocument returns an empty document ready for use.
func NewDocument() *Document {
	return &Document{Courses: make(map[string]*Course)}
}

// LastCourse returns the most recently accessed course, or nil.
func (d *Document) LastCourse() *Course {
	if d.LastAccessedCourse == "" {
		return nil
	}
	return d.Courses[d.LastAccessedCourse]
}

// Course is one study plan and the state accumulated while following it.
// DailyContents is keyed by the day number as a string. QAHistory is
// kept newest-first.
type Course struct {
	CourseName    string            `json:"course_name"`
	Level         string            `json:"level"`
	StudyContent  string            `json:"study_content"`
	StudyPlan     string            `json:"study_plan"`
	CreatedAt     string            `json:"created_at"`
	LastAccess    string            `json:"last_access"`
	Duration      int               `json:"duration"`
	Progress      Progress          `json:"progress"`
	DailyContents map[string]string `json:"daily_contents"`
	QAHistory     []QAEntry         `json:"qa_history"`
}

// Progress tracks which day the learner is on. It is written on course
// creation and persisted, but nothing reads it yet.
type Progress struct {
	CurrentDay    int   `json:"current_day"`
	CompletedDays []int `json:"completed_days"`
}

// QAEntry is one follow-up question and its answer.
type QAEntry struct {
	Day       int    `json:"day"`
	Question  string `json:"question"`
	Answer    string `json:"answer"`
	Timestamp string `json:"timestamp"`
}

// NewCourse builds a course from a freshly generated plan. Duration is
// parsed from the plan text; both timestamps are stamped with the
// current local time.
func NewCourse(name, level, studyContent, planText string) *Course {
	now := time.Now().Format(TimestampLayout)
	return &Course{
		CourseName:   name,
		Level:        level,
		StudyContent: studyContent,
		StudyPlan:    planText,
		CreatedAt:    now,
		LastAccess:   now,
		Duration:     ParseDuration(planText),
		Progress: Progress{
			CurrentDay:    1,
			CompletedDays: []int{},
		},
		DailyContents: make(map[string]string),
		QAHistory:     []QAEntry{},
	}
}

// Touch updates the course's last-access timestamp.
func (c *Course) Touch() {
	c.LastAccess = time.Now().Format(TimestampLayout)
}

var durationPattern = regexp.MustCompile(`\d+`)

// ParseDuration extracts the total study period from a plan's first
// line: the first run of decimal digits found there. Plans without a
// leading number fall back to DefaultDuration.
func ParseDuration(planText string) int {
	firstLine, _, _ := strings.Cut(planText, "\n")
	match := durationPattern.FindString(firstLine)
	if match == "" {
		return DefaultDuration
	}
	n, err := strconv.Atoi(match)
	if err != nil || n <= 0 {
		return DefaultDuration
	}
	return n
}

// LastDay returns the highest day number that already has generated
// content, or 1 when no content exists yet.
func (c *Course) LastDay() int {
	last := 0
	for key := range c.DailyContents {
		n, err := strconv.Atoi(key)
		if err != nil {
			continue
		}
		if n > last {
			last = n
		}
	}
	if last == 0 {
		return 1
	}
	return last
}

package tutor

import "fmt"

// Level is one of the seven fixed difficulty tiers a course is taught at.
type Level int

const (
	LevelKindergarten Level = iota + 1
	LevelLowerElementary
	LevelUpperElementary
	LevelMiddleSchool
	LevelHighSchool
	LevelUndergraduate
	LevelExpert
)

// Levels lists all difficulty tiers in ascending order.
var Levels = []Level{
	LevelKindergarten,
	LevelLowerElementary,
	LevelUpperElementary,
	LevelMiddleSchool,
	LevelHighSchool,
	LevelUndergraduate,
	LevelExpert,
}

var levelLabels = map[Level]string{
	LevelKindergarten:    "Kindergarten",
	LevelLowerElementary: "Lower Elementary",
	LevelUpperElementary: "Upper Elementary",
	LevelMiddleSchool:    "Middle School",
	LevelHighSchool:      "High School",
	LevelUndergraduate:   "Undergraduate",
	LevelExpert:          "Expert",
}

// Label returns the human description of the tier, e.g. "Middle School".
func (l Level) Label() string {
	if label, ok := levelLabels[l]; ok {
		return label
	}
	return "Unknown"
}

// String renders the tier the way it is stored and displayed,
// e.g. "Level 4 (Middle School)".
func (l Level) String() string {
	return fmt.Sprintf("Level %d (%s)", int(l), l.Label())
}

// Valid reports whether l is one of the seven tiers.
func (l Level) Valid() bool {
	return l >= LevelKindergarten && l <= LevelExpert
}

// PlanInput describes a new course for which a study plan is wanted.
type PlanInput struct {
	CourseName   string
	Level        string
	StudyContent string
}

// DailyInput identifies one day of an existing course.
type DailyInput struct {
	CourseName   string
	Level        string
	StudyContent string
	Day          int
}

// QuestionInput is a free-form follow-up question asked at the
// course's difficulty level.
type QuestionInput struct {
	Level    string
	Question string
}

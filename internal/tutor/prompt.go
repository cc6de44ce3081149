package tutor

import (
	"fmt"
	"strings"
)

func planSystemPrompt(input PlanInput) string {
	return fmt.Sprintf("You are an expert study planner for the %s course at %s level.", input.CourseName, input.Level)
}

func buildPlanUserMessage(input PlanInput) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("Study content: %s\n", input.StudyContent))

	b.WriteString(`
Create a study plan that meets these conditions:
1. Study period: divide the study content into at most 20 days.
2. Summarize each day's plan in exactly two lines:
- Learning goal
- Key content
3. Adjust the difficulty of the explanations to the learner's level.

Output format:
First line: total study period in days (a single number)
Then: the plan for each day (goal and content)`)

	return b.String()
}

func dailySystemPrompt(input DailyInput) string {
	return fmt.Sprintf("You are an expert study assistant for the %s course at %s level.", input.CourseName, input.Level)
}

// difficultyTiers is embedded verbatim in the daily template so the model
// can calibrate depth without a second round-trip.
const difficultyTiers = `Difficulty tier guidelines:
1. Level 1 (Kindergarten): play and hands-on activities, visual aids
2. Level 2 (Lower Elementary): simple vocabulary, pictures and examples
3. Level 3 (Upper Elementary): basic concepts, everyday-life connections
4. Level 4 (Middle School): deeper concepts, real-world applications
5. Level 5 (High School): specialized concepts, systematic structure
6. Level 6 (Undergraduate): major-level depth, practical connections
7. Level 7 (Expert): current trends, advanced theory`

func buildDailyUserMessage(input DailyInput) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("Study content: %s\n", input.StudyContent))
	b.WriteString(fmt.Sprintf("Day: %d\n", input.Day))
	b.WriteString("Question: \n\n")

	b.WriteString(difficultyTiers)

	b.WriteString(fmt.Sprintf(`

Explain today's material at the %s level, covering:
1. Today's learning goal
2. Key concept explanation
3. Practice exercises
4. Self-check questions`, input.Level))

	return b.String()
}

func questionSystemPrompt(input QuestionInput) string {
	return fmt.Sprintf("You are talking with a learner at the %s level.", input.Level)
}

func buildQuestionUserMessage(input QuestionInput) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("Question: %s\n", input.Question))

	b.WriteString(`
Answer according to these rules:
1. Be concise and clear.
2. Use terminology and explanations suited to the learner's level.
3. Answer in at most 10 sentences.`)

	return b.String()
}

package generator

import (
	"fmt"
	"strings"
)

const systemPrompt = `You are a technical interviewer generating one assessment question at a time.
Respond with a single JSON object and nothing else, using exactly these fields:
{
  "text": "the question",
  "type": "mcq" | "coding" | "problem_solving" | "numerical" | "scenario_based",
  "options": ["..."]           (only for mcq, 4 options),
  "correct_answers": ["..."]   (one entry, or several for multi-select mcq),
  "explanation": "why the answer is correct"
}
The question must be self-contained and answerable in text form.`

const strictDirective = `Keep the question strictly professional and technical.
Avoid any person, company, current event, or potentially sensitive scenario;
use neutral placeholder names and generic systems only.`

var difficultyLabels = map[int]string{
	1: "introductory",
	2: "basic",
	3: "intermediate",
	4: "advanced",
	5: "expert",
}

func buildUserPrompt(req Request) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Generate one %s-level question on %q (difficulty %d of 5).",
		difficultyLabels[req.Difficulty], req.Area, req.Difficulty)
	if req.Language != "" {
		fmt.Fprintf(&b, " Use %s for any code.", req.Language)
	}
	if req.HasAccuracy {
		fmt.Fprintf(&b, " The candidate answered %.0f%% of recent questions in this area correctly; calibrate within the difficulty level accordingly.",
			req.RecentAccuracy*100)
	}
	if req.Strict {
		b.WriteString("\n")
		b.WriteString(strictDirective)
	}
	return b.String()
}

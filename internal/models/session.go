package models

import "time"

type SessionStatus string

const (
	StatusInProgress SessionStatus = "in_progress"
	StatusCompleted  SessionStatus = "completed"
	StatusAbandoned  SessionStatus = "abandoned"
)

// Terminal reports whether no further mutation of the session is permitted.
func (s SessionStatus) Terminal() bool {
	return s == StatusCompleted || s == StatusAbandoned
}

// QuestionResponse is one entry of the append-only answer log. The area and
// difficulty are the ones the question was asked at, not the area's current
// difficulty.
type QuestionResponse struct {
	QuestionID       string    `bson:"question_id" json:"question_id"`
	Area             string    `bson:"area" json:"area"`
	Difficulty       int       `bson:"difficulty" json:"difficulty"`
	Answer           string    `bson:"answer" json:"answer"`
	Correct          bool      `bson:"correct" json:"correct"`
	TimeSpentSeconds int       `bson:"time_spent_seconds" json:"time_spent_seconds"`
	AnsweredAt       time.Time `bson:"answered_at" json:"answered_at"`
}

type CandidateSession struct {
	ID             string `bson:"_id,omitempty" json:"id"`
	TenantID       string `bson:"tenant_id" json:"tenant_id"`
	AssessmentID   string `bson:"assessment_id" json:"assessment_id"`
	CandidateEmail string `bson:"candidate_email,omitempty" json:"candidate_email,omitempty"`
	CandidateName  string `bson:"candidate_name,omitempty" json:"candidate_name,omitempty"`
	// Difficulties maps area name to its current difficulty, seeded from the
	// assessment's initial difficulty and mutated only by the adjuster.
	Difficulties map[string]int     `bson:"difficulties" json:"difficulties"`
	Responses    []QuestionResponse `bson:"responses" json:"responses"`
	Status       SessionStatus      `bson:"status" json:"status"`
	// Pending is the question handed out by the last next-question call,
	// kept until it is answered or superseded.
	Pending *Question `bson:"pending_question,omitempty" json:"-"`
	// Version guards read-modify-write updates; every store write increments
	// it and is rejected when the read version no longer matches.
	Version     int64      `bson:"version" json:"version"`
	StartedAt   time.Time  `bson:"started_at" json:"started_at"`
	CompletedAt *time.Time `bson:"completed_at,omitempty" json:"completed_at,omitempty"`
}

// HasAnswered reports whether the question id already appears in the log.
func (s *CandidateSession) HasAnswered(questionID string) bool {
	for _, r := range s.Responses {
		if r.QuestionID == questionID {
			return true
		}
	}
	return false
}

// AreaResponses returns the log entries for one area, preserving log order.
func (s *CandidateSession) AreaResponses(area string) []QuestionResponse {
	var out []QuestionResponse
	for _, r := range s.Responses {
		if r.Area == area {
			out = append(out, r)
		}
	}
	return out
}

package models

import "time"

// AreaBreakdown summarizes performance inside a single knowledge area.
type AreaBreakdown struct {
	Area           string  `bson:"area" json:"area"`
	Score          float64 `bson:"score" json:"score"`
	Answered       int     `bson:"answered" json:"answered"`
	Correct        int     `bson:"correct" json:"correct"`
	AvgDifficulty  float64 `bson:"avg_difficulty" json:"avg_difficulty"`
	AvgTimeSeconds float64 `bson:"avg_time_seconds" json:"avg_time_seconds"`
	TargetShare    float64 `bson:"target_share" json:"target_share"`
	AnsweredShare  float64 `bson:"answered_share" json:"answered_share"`
}

// PerformanceMetrics is produced once at submission and never mutated.
type PerformanceMetrics struct {
	ID            string          `bson:"_id,omitempty" json:"id"`
	TenantID      string          `bson:"tenant_id" json:"tenant_id"`
	SessionID     string          `bson:"session_id" json:"session_id"`
	AssessmentID  string          `bson:"assessment_id" json:"assessment_id"`
	OverallScore  float64         `bson:"overall_score" json:"overall_score"`
	RoleFitScore  float64         `bson:"role_fit_score" json:"role_fit_score"`
	Breakdown     []AreaBreakdown `bson:"breakdown" json:"breakdown"`
	Strengths     []string        `bson:"strengths" json:"strengths"`
	Weaknesses    []string        `bson:"weaknesses" json:"weaknesses"`
	Passed        bool            `bson:"passed" json:"passed"`
	PassThreshold float64         `bson:"pass_threshold" json:"pass_threshold"`
	Answered      int             `bson:"answered" json:"answered"`
	CreatedAt     time.Time       `bson:"created_at" json:"created_at"`
}

package models

import (
	"fmt"
	"math"
	"strings"
	"time"
)

type Seniority string

const (
	SeniorityJunior Seniority = "junior"
	SeniorityMid    Seniority = "mid"
	SenioritySenior Seniority = "senior"
	SeniorityLead   Seniority = "lead"
)

func (s Seniority) Valid() bool {
	switch s {
	case SeniorityJunior, SeniorityMid, SenioritySenior, SeniorityLead:
		return true
	}
	return false
}

// RoleProfile describes the position the assessment screens for.
type RoleProfile struct {
	Title     string    `bson:"title" json:"title"`
	Seniority Seniority `bson:"seniority" json:"seniority"`
}

// KnowledgeArea is one slice of the assessment's question mix. Percentage is
// the target share of questions, over all areas they sum to 100. Language is
// optional and only meaningful for coding areas.
type KnowledgeArea struct {
	Name       string  `bson:"name" json:"name"`
	Percentage float64 `bson:"percentage" json:"percentage"`
	Language   string  `bson:"language,omitempty" json:"language,omitempty"`
}

// percentageTolerance absorbs float accumulation when checking that the area
// mix sums to 100.
const percentageTolerance = 0.01

// Assessment is the tenant-scoped configuration every candidate session runs
// against. It is immutable after creation except for the Active flag.
type Assessment struct {
	ID                string          `bson:"_id,omitempty" json:"id"`
	TenantID          string          `bson:"tenant_id" json:"tenant_id"`
	Title             string          `bson:"title" json:"title"`
	Description       string          `bson:"description,omitempty" json:"description,omitempty"`
	Role              RoleProfile     `bson:"role" json:"role"`
	Areas             []KnowledgeArea `bson:"areas" json:"areas"`
	InitialDifficulty int             `bson:"initial_difficulty" json:"initial_difficulty"`
	MaxQuestions      int             `bson:"max_questions" json:"max_questions"`
	// PassThreshold overrides the seniority default when set.
	PassThreshold *float64  `bson:"pass_threshold,omitempty" json:"pass_threshold,omitempty"`
	Active        bool      `bson:"active" json:"active"`
	CreatedAt     time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt     time.Time `bson:"updated_at" json:"updated_at"`
}

// Validate checks the assessment configuration once at creation time, so
// sessions can trust it afterwards.
func (a *Assessment) Validate() error {
	if strings.TrimSpace(a.Title) == "" {
		return fmt.Errorf("title is required")
	}
	if !a.Role.Seniority.Valid() {
		return fmt.Errorf("unknown seniority %q", a.Role.Seniority)
	}
	if a.InitialDifficulty < 1 || a.InitialDifficulty > 5 {
		return fmt.Errorf("initial difficulty %d outside 1-5", a.InitialDifficulty)
	}
	if a.MaxQuestions < 1 || a.MaxQuestions > 50 {
		return fmt.Errorf("max questions %d outside 1-50", a.MaxQuestions)
	}
	if a.PassThreshold != nil && (*a.PassThreshold < 0 || *a.PassThreshold > 100) {
		return fmt.Errorf("pass threshold %.2f outside 0-100", *a.PassThreshold)
	}
	if len(a.Areas) == 0 {
		return fmt.Errorf("at least one knowledge area is required")
	}

	seen := make(map[string]bool, len(a.Areas))
	sum := 0.0
	for _, area := range a.Areas {
		name := strings.TrimSpace(area.Name)
		if name == "" {
			return fmt.Errorf("area name cannot be empty")
		}
		key := strings.ToLower(name)
		if seen[key] {
			return fmt.Errorf("duplicate area %q", area.Name)
		}
		seen[key] = true
		if area.Percentage <= 0 {
			return fmt.Errorf("area %q percentage must be positive", area.Name)
		}
		sum += area.Percentage
	}
	if math.Abs(sum-100) > percentageTolerance {
		return fmt.Errorf("area percentages sum to %.2f, want 100", sum)
	}
	return nil
}

// Area returns the configured area matching name case-insensitively, or nil.
func (a *Assessment) Area(name string) *KnowledgeArea {
	for i := range a.Areas {
		if strings.EqualFold(a.Areas[i].Name, name) {
			return &a.Areas[i]
		}
	}
	return nil
}

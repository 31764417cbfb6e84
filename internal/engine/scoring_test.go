package engine

import (
	"math"
	"reflect"
	"testing"

	"assessment-service/internal/models"
)

const epsilon = 0.001

func testAssessment(tier models.Seniority, areas []models.KnowledgeArea) *models.Assessment {
	return &models.Assessment{
		ID:                "a1",
		TenantID:          "t1",
		Title:             "Backend Engineer Screen",
		Role:              models.RoleProfile{Title: "Backend Engineer", Seniority: tier},
		Areas:             areas,
		InitialDifficulty: 3,
		MaxQuestions:      20,
	}
}

// areaLog builds n responses in an area with the given number correct.
func areaLog(area string, n, correct int) []models.QuestionResponse {
	rs := make([]models.QuestionResponse, n)
	for i := range rs {
		rs[i] = models.QuestionResponse{
			Area:             area,
			Difficulty:       3,
			Correct:          i < correct,
			TimeSpentSeconds: 30,
		}
	}
	return rs
}

func TestScorePerAreaBreakdown(t *testing.T) {
	cfg := DefaultConfig()
	a := testAssessment(models.SeniorityMid, mix("A", 60.0, "B", 40.0))

	log := append(areaLog("A", 4, 3), areaLog("B", 2, 1)...)
	m := cfg.Score(a, log)

	if len(m.Breakdown) != 2 {
		t.Fatalf("expected 2 area entries, got %d", len(m.Breakdown))
	}
	areaA := m.Breakdown[0]
	if areaA.Area != "A" || areaA.Answered != 4 || areaA.Correct != 3 {
		t.Errorf("unexpected breakdown for A: %+v", areaA)
	}
	if math.Abs(areaA.Score-75) > epsilon {
		t.Errorf("expected A score 75, got %.2f", areaA.Score)
	}
	if math.Abs(areaA.AvgDifficulty-3) > epsilon || math.Abs(areaA.AvgTimeSeconds-30) > epsilon {
		t.Errorf("unexpected averages for A: %+v", areaA)
	}

	// Overall: (75*60 + 50*40) / 100 = 65.
	if math.Abs(m.OverallScore-65) > epsilon {
		t.Errorf("expected overall 65, got %.4f", m.OverallScore)
	}
	if m.Answered != 6 {
		t.Errorf("expected 6 answered, got %d", m.Answered)
	}
}

func TestScoreExcludesUnansweredAreas(t *testing.T) {
	cfg := DefaultConfig()
	a := testAssessment(models.SeniorityMid, mix("A", 60.0, "B", 40.0))

	// Every answer landed in A; B must not appear in the breakdown and the
	// weighting must renormalize over A alone (no divide-by-zero, no drag).
	m := cfg.Score(a, areaLog("A", 5, 4))

	if len(m.Breakdown) != 1 || m.Breakdown[0].Area != "A" {
		t.Fatalf("expected only area A in breakdown, got %+v", m.Breakdown)
	}
	if math.Abs(m.OverallScore-80) > epsilon {
		t.Errorf("expected overall 80, got %.4f", m.OverallScore)
	}
	if math.Abs(m.RoleFitScore-80) > epsilon {
		t.Errorf("expected role fit 80, got %.4f", m.RoleFitScore)
	}
}

func TestScoreEmptyLog(t *testing.T) {
	cfg := DefaultConfig()
	a := testAssessment(models.SeniorityJunior, mix("A", 100.0))

	m := cfg.Score(a, nil)
	if m.OverallScore != 0 || m.RoleFitScore != 0 {
		t.Errorf("expected zero scores for empty log, got %+v", m)
	}
	if m.Passed {
		t.Error("empty log must not pass")
	}
}

func TestScoreRoleFitBoostForSenior(t *testing.T) {
	cfg := DefaultConfig()
	a := testAssessment(models.SenioritySenior, mix(
		"System Design", 40.0,
		"Algorithms", 30.0,
		"Communication", 30.0,
	))

	// Area scores: systems 90, algorithms 80, other 50. The boosted critical
	// areas dominate, so role fit must exceed the plain weighted overall.
	log := append(areaLog("System Design", 10, 9), areaLog("Algorithms", 10, 8)...)
	log = append(log, areaLog("Communication", 10, 5)...)

	m := cfg.Score(a, log)

	// Overall: (90*40 + 80*30 + 50*30) / 100 = 75.
	if math.Abs(m.OverallScore-75) > epsilon {
		t.Errorf("expected overall 75, got %.4f", m.OverallScore)
	}
	// Role fit: weights 40*1.5, 30*1.3, 30 -> (90*60 + 80*39 + 50*30) / 129
	// = 77.67..., rounded to 78.
	if m.RoleFitScore != 78 {
		t.Errorf("expected role fit 78, got %.4f", m.RoleFitScore)
	}
	if m.RoleFitScore <= m.OverallScore {
		t.Errorf("role fit (%.2f) must exceed overall (%.2f) when critical areas dominate",
			m.RoleFitScore, m.OverallScore)
	}
}

func TestScoreRoleFitBoostForJunior(t *testing.T) {
	cfg := DefaultConfig()
	a := testAssessment(models.SeniorityJunior, mix(
		"Programming Language", 50.0,
		"Analytical Reasoning", 25.0,
		"System Design", 25.0,
	))

	// Strong in the junior-critical areas, weak in systems: the boost must
	// pull role fit above overall.
	log := append(areaLog("Programming Language", 8, 8), areaLog("Analytical Reasoning", 4, 4)...)
	log = append(log, areaLog("System Design", 4, 1)...)

	m := cfg.Score(a, log)
	if m.RoleFitScore <= m.OverallScore {
		t.Errorf("role fit (%.2f) must exceed overall (%.2f)", m.RoleFitScore, m.OverallScore)
	}
}

func TestScoreStrengthsAndWeaknesses(t *testing.T) {
	cfg := DefaultConfig()
	a := testAssessment(models.SeniorityMid, mix("A", 40.0, "B", 30.0, "C", 30.0))

	// Scores: A=100, B=50, C=60 -> mean 70. A >= 80 is a strength,
	// B <= 55 is a weakness, C is neither.
	log := append(areaLog("A", 4, 4), areaLog("B", 4, 2)...)
	log = append(log, areaLog("C", 5, 3)...)

	m := cfg.Score(a, log)
	if !reflect.DeepEqual(m.Strengths, []string{"A"}) {
		t.Errorf("expected strengths [A], got %v", m.Strengths)
	}
	if !reflect.DeepEqual(m.Weaknesses, []string{"B"}) {
		t.Errorf("expected weaknesses [B], got %v", m.Weaknesses)
	}
}

func TestScorePassThresholds(t *testing.T) {
	cfg := DefaultConfig()

	testCases := []struct {
		tier      models.Seniority
		override  *float64
		correct   int
		expectRFS float64
		pass      bool
	}{
		{models.SeniorityJunior, nil, 5, 50, true},
		{models.SeniorityMid, nil, 5, 50, false},
		{models.SenioritySenior, nil, 7, 70, true},
		{models.SeniorityLead, nil, 7, 70, false},
		{models.SeniorityLead, ptr(65.0), 7, 70, true},
	}

	for _, tc := range testCases {
		a := testAssessment(tc.tier, mix("General Knowledge", 100.0))
		a.PassThreshold = tc.override
		m := cfg.Score(a, areaLog("General Knowledge", 10, tc.correct))
		if m.RoleFitScore != tc.expectRFS {
			t.Errorf("%s: expected role fit %.0f, got %.2f", tc.tier, tc.expectRFS, m.RoleFitScore)
		}
		if m.Passed != tc.pass {
			t.Errorf("%s (override=%v): expected pass=%v at %.0f", tc.tier, tc.override, tc.pass, m.RoleFitScore)
		}
	}
}

func TestScoreIsIdempotent(t *testing.T) {
	cfg := DefaultConfig()
	a := testAssessment(models.SenioritySenior, mix("System Design", 50.0, "Algorithms", 50.0))
	log := append(areaLog("System Design", 6, 4), areaLog("Algorithms", 6, 5)...)

	first := cfg.Score(a, log)
	second := cfg.Score(a, log)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("scoring is not idempotent:\nfirst:  %+v\nsecond: %+v", first, second)
	}
}

func ptr(v float64) *float64 { return &v }

package engine

import (
	"math"
	"strings"

	"assessment-service/internal/models"
)

// Score converts a finished answer log into performance metrics. It is pure
// and total over a well-formed log: calling it twice on the same input
// yields identical metrics. Areas that never received an answer are excluded
// from both the overall and role-fit weighting, so an early question cap
// cannot penalize the candidate.
func (c Config) Score(a *models.Assessment, responses []models.QuestionResponse) *models.PerformanceMetrics {
	total := len(responses)
	breakdown := c.areaBreakdown(a, responses, total)

	overall := weightedMean(breakdown, func(b models.AreaBreakdown) float64 {
		return b.TargetShare
	})
	roleFit := weightedMean(breakdown, func(b models.AreaBreakdown) float64 {
		return b.TargetShare * c.boostFor(a.Role.Seniority, b.Area)
	})
	// Only the role-fit score is rounded; the overall score keeps full
	// precision for downstream consumers.
	roleFit = math.Round(roleFit)

	strengths, weaknesses := c.classify(breakdown)

	threshold := c.passThreshold(a)

	return &models.PerformanceMetrics{
		AssessmentID:  a.ID,
		TenantID:      a.TenantID,
		OverallScore:  overall,
		RoleFitScore:  roleFit,
		Breakdown:     breakdown,
		Strengths:     strengths,
		Weaknesses:    weaknesses,
		Passed:        roleFit >= threshold,
		PassThreshold: threshold,
		Answered:      total,
	}
}

// areaBreakdown groups the log by configured area, in configuration order.
// Only areas with at least one answer produce an entry.
func (c Config) areaBreakdown(a *models.Assessment, responses []models.QuestionResponse, total int) []models.AreaBreakdown {
	byArea := make(map[string][]models.QuestionResponse)
	for _, r := range responses {
		byArea[r.Area] = append(byArea[r.Area], r)
	}

	breakdown := make([]models.AreaBreakdown, 0, len(a.Areas))
	for _, area := range a.Areas {
		rs := byArea[area.Name]
		if len(rs) == 0 {
			continue
		}
		correct := 0
		diffSum := 0
		timeSum := 0
		for _, r := range rs {
			if r.Correct {
				correct++
			}
			diffSum += r.Difficulty
			timeSum += r.TimeSpentSeconds
		}
		answered := len(rs)
		breakdown = append(breakdown, models.AreaBreakdown{
			Area:           area.Name,
			Score:          float64(correct) / float64(answered) * 100,
			Answered:       answered,
			Correct:        correct,
			AvgDifficulty:  float64(diffSum) / float64(answered),
			AvgTimeSeconds: float64(timeSum) / float64(answered),
			TargetShare:    area.Percentage,
			AnsweredShare:  float64(answered) / float64(total) * 100,
		})
	}
	return breakdown
}

// weightedMean normalizes the weights over the answered areas, so the result
// stays within 0-100 regardless of boosting.
func weightedMean(breakdown []models.AreaBreakdown, weight func(models.AreaBreakdown) float64) float64 {
	num := 0.0
	den := 0.0
	for _, b := range breakdown {
		w := weight(b)
		num += b.Score * w
		den += w
	}
	if den == 0 {
		return 0
	}
	return num / den
}

func (c Config) boostFor(tier models.Seniority, area string) float64 {
	lower := strings.ToLower(area)
	for _, boost := range c.RoleBoosts[tier] {
		for _, kw := range boost.Keywords {
			if strings.Contains(lower, kw) {
				return boost.Factor
			}
		}
	}
	return 1.0
}

// classify marks areas as strengths or weaknesses relative to the mean of
// the per-area scores.
func (c Config) classify(breakdown []models.AreaBreakdown) (strengths, weaknesses []string) {
	if len(breakdown) == 0 {
		return nil, nil
	}
	sum := 0.0
	for _, b := range breakdown {
		sum += b.Score
	}
	mean := sum / float64(len(breakdown))

	for _, b := range breakdown {
		switch {
		case b.Score >= mean+c.StrengthOffset:
			strengths = append(strengths, b.Area)
		case b.Score <= mean-c.WeaknessOffset:
			weaknesses = append(weaknesses, b.Area)
		}
	}
	return strengths, weaknesses
}

func (c Config) passThreshold(a *models.Assessment) float64 {
	if a.PassThreshold != nil {
		return *a.PassThreshold
	}
	return c.PassDefaults[a.Role.Seniority]
}

package engine

import (
	"math/rand"
	"time"

	"assessment-service/internal/models"
)

// Selector chooses which knowledge area to probe next. While any area is
// below its target share of the answered questions, the most deficient one
// wins (ties broken by configuration order). Once the distribution matches
// or exceeds every target, selection falls back to a weighted random draw
// over the configured percentages.
type Selector struct {
	rng *rand.Rand
}

func NewSelector() *Selector {
	return &Selector{rng: rand.New(rand.NewSource(time.Now().UnixNano()))}
}

// NewSelectorWithSource fixes the random source, for deterministic tests.
func NewSelectorWithSource(src rand.Source) *Selector {
	return &Selector{rng: rand.New(src)}
}

// NextArea returns the name of the area to probe next. The mix is assumed
// valid (validated at assessment creation); an empty mix yields "".
func (s *Selector) NextArea(areas []models.KnowledgeArea, responses []models.QuestionResponse) string {
	if len(areas) == 0 {
		return ""
	}

	counts := make(map[string]int, len(areas))
	for _, r := range responses {
		counts[r.Area]++
	}
	total := len(responses)

	bestIdx := -1
	bestDeficit := 0.0
	for i, area := range areas {
		actual := 0.0
		if total > 0 {
			actual = float64(counts[area.Name]) / float64(total) * 100
		}
		deficit := area.Percentage - actual
		if deficit > 0 && (bestIdx == -1 || deficit > bestDeficit) {
			bestIdx = i
			bestDeficit = deficit
		}
	}
	if bestIdx >= 0 {
		return areas[bestIdx].Name
	}

	return s.weightedRandom(areas)
}

func (s *Selector) weightedRandom(areas []models.KnowledgeArea) string {
	totalWeight := 0.0
	for _, area := range areas {
		totalWeight += area.Percentage
	}
	r := s.rng.Float64() * totalWeight
	for _, area := range areas {
		r -= area.Percentage
		if r <= 0 {
			return area.Name
		}
	}
	return areas[len(areas)-1].Name
}

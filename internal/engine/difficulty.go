package engine

import "assessment-service/internal/models"

// NextDifficulty returns the area's next difficulty given its current level
// and the ordered answer log for that area. With fewer than StableWindow
// responses the level is held; otherwise the accuracy over the last
// StableWindow responses moves the level by at most one step, clamped to
// [MinDifficulty, MaxDifficulty]. Areas are evaluated independently.
func (c Config) NextDifficulty(current int, areaResponses []models.QuestionResponse) int {
	if current < c.MinDifficulty {
		current = c.MinDifficulty
	}
	if current > c.MaxDifficulty {
		current = c.MaxDifficulty
	}
	if len(areaResponses) < c.StableWindow {
		return current
	}

	recent := areaResponses[len(areaResponses)-c.StableWindow:]
	correct := 0
	for _, r := range recent {
		if r.Correct {
			correct++
		}
	}
	accuracy := float64(correct) / float64(c.StableWindow)

	switch {
	case accuracy >= c.IncreaseThreshold && current < c.MaxDifficulty:
		return current + 1
	case accuracy < c.DecreaseThreshold && current > c.MinDifficulty:
		return current - 1
	}
	return current
}

// RecentAccuracy is the fraction of correct answers over the last
// StableWindow responses of an area, or over all of them when fewer exist.
// The second return is false when the area has no responses yet.
func (c Config) RecentAccuracy(areaResponses []models.QuestionResponse) (float64, bool) {
	if len(areaResponses) == 0 {
		return 0, false
	}
	recent := areaResponses
	if len(recent) > c.StableWindow {
		recent = recent[len(recent)-c.StableWindow:]
	}
	correct := 0
	for _, r := range recent {
		if r.Correct {
			correct++
		}
	}
	return float64(correct) / float64(len(recent)), true
}

package engine

import "assessment-service/internal/models"

// AreaBoost raises the weight of areas whose name contains one of the
// keywords when computing the role-fit score.
type AreaBoost struct {
	Keywords []string
	Factor   float64
}

// Config carries every tunable of the adaptive engine. Components receive it
// explicitly so they stay pure and independently testable.
type Config struct {
	// StableWindow is the minimum number of responses in an area before its
	// difficulty may change; the same window defines "recent accuracy".
	StableWindow      int
	IncreaseThreshold float64
	DecreaseThreshold float64
	MinDifficulty     int
	MaxDifficulty     int

	// StrengthOffset and WeaknessOffset are distances from the mean per-area
	// score that classify an area as strength or weakness.
	StrengthOffset float64
	WeaknessOffset float64

	// PassDefaults maps seniority to the pass threshold used when the
	// assessment does not specify one.
	PassDefaults map[models.Seniority]float64

	// RoleBoosts maps seniority to the weight boosts applied to
	// role-critical areas in the role-fit score.
	RoleBoosts map[models.Seniority][]AreaBoost
}

func DefaultConfig() Config {
	juniorBoosts := []AreaBoost{
		{Keywords: []string{"programming", "language"}, Factor: 1.5},
		{Keywords: []string{"analytical", "reasoning"}, Factor: 1.3},
	}
	seniorBoosts := []AreaBoost{
		{Keywords: []string{"system", "scenario"}, Factor: 1.5},
		{Keywords: []string{"algorithm"}, Factor: 1.3},
	}
	return Config{
		StableWindow:      3,
		IncreaseThreshold: 0.8,
		DecreaseThreshold: 0.4,
		MinDifficulty:     1,
		MaxDifficulty:     5,
		StrengthOffset:    10,
		WeaknessOffset:    15,
		PassDefaults: map[models.Seniority]float64{
			models.SeniorityJunior: 50,
			models.SeniorityMid:    60,
			models.SenioritySenior: 70,
			models.SeniorityLead:   75,
		},
		RoleBoosts: map[models.Seniority][]AreaBoost{
			models.SeniorityJunior: juniorBoosts,
			models.SeniorityMid:    juniorBoosts,
			models.SenioritySenior: seniorBoosts,
			models.SeniorityLead:   seniorBoosts,
		},
	}
}

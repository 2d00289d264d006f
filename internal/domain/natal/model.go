package natal

import "github.com/yanqian/astro-dates/internal/domain/zodiac"

// TestingPersonality tags a user's test-taking tendencies derived from their
// sun sign. The flags overlap deliberately; they are not a partition.
type TestingPersonality struct {
	PerformsUnderPressure bool `json:"performsUnderPressure"`
	PrefersRoutine        bool `json:"prefersRoutine"`
	Intuitive             bool `json:"intuitive"`
	Analytical            bool `json:"analytical"`
	Resilient             bool `json:"resilient"`
}

// Factors is the per-user affinity set computed fresh from a birth date.
// It is never persisted.
type Factors struct {
	SunSign              zodiac.Sign        `json:"sunSign"`
	MercuryCompatibility int                `json:"mercuryCompatibility"`
	MoonPhaseAffinities  map[string]int     `json:"moonPhaseAffinities"`
	PlanetaryAffinities  map[string]int     `json:"planetaryAffinities"`
	TestingPersonality   TestingPersonality `json:"testingPersonality"`
}

// Recommendation is the personalized overlay for one candidate date.
type Recommendation struct {
	BaseScore         float64  `json:"baseScore"`
	PersonalizedScore float64  `json:"personalizedScore"`
	Boosts            []string `json:"boosts"`
	Cautions          []string `json:"cautions"`
	WhyItWorks        []string `json:"whyItWorks"`
	Tips              []string `json:"tips"`
}

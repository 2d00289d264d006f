package natal

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/yanqian/astro-dates/internal/domain/almanac"
	"github.com/yanqian/astro-dates/internal/domain/zodiac"
)

// Mercury retrograde compatibility by sensitivity grade: high sensitivity
// handles retrograde worst, low sensitivity best.
var mercuryCompatibility = map[zodiac.Sensitivity]int{
	zodiac.SensitivityHigh:   20,
	zodiac.SensitivityMedium: 60,
	zodiac.SensitivityLow:    90,
}

const (
	affinityOptimal     = 80
	affinityNeutral     = 50
	affinityBeneficial  = 80
	affinityChallenging = 30
)

// Adjustment weights and thresholds for Personalize. Kept in one place so the
// literal values are easy to verify.
const (
	mercuryWeight    = 0.4
	moonPhaseWeight  = 0.3
	planetToneWeight = 0.2

	pressureToneBonus = 10
	stableSkyBonus    = 5

	boostThreshold   = 70
	cautionThreshold = 40
)

// tonePlanets maps interpretation tone keywords to the planet whose affinity
// scores them.
var tonePlanets = map[string]string{
	"confident":      "Sun",
	"dramatic":       "Sun",
	"energetic":      "Mars",
	"aggressive":     "Mars",
	"gentle":         "Venus",
	"harmonious":     "Venus",
	"communicative":  "Mercury",
	"analytical":     "Mercury",
	"intuitive":      "Moon",
	"emotional":      "Moon",
	"optimistic":     "Jupiter",
	"expansive":      "Jupiter",
	"disciplined":    "Saturn",
	"structured":     "Saturn",
	"innovative":     "Uranus",
	"unconventional": "Uranus",
	"spiritual":      "Neptune",
	"mystical":       "Neptune",
	"transformative": "Pluto",
	"intense":        "Pluto",
}

// ComputeFactors derives the user's affinity set from their birth date.
func ComputeFactors(birth time.Time) Factors {
	sign := zodiac.ResolveSunSign(birth)
	profile := zodiac.ProfileFor(sign)

	moonAffinities := make(map[string]int, len(almanac.CanonicalPhases))
	for _, phase := range almanac.CanonicalPhases {
		moonAffinities[phase] = affinityNeutral
	}
	for _, phase := range profile.Traits.OptimalMoonPhases {
		moonAffinities[phase] = affinityOptimal
	}

	// Planets outside both lists get no entry at all: downstream treats a
	// missing planet as "no signal", never as neutral 50.
	planetAffinities := make(map[string]int)
	for _, planet := range profile.Traits.BeneficialPlanets {
		planetAffinities[planet] = affinityBeneficial
	}
	for _, planet := range profile.Traits.ChallengingPlanets {
		planetAffinities[planet] = affinityChallenging
	}

	return Factors{
		SunSign:              sign,
		MercuryCompatibility: mercuryCompatibility[profile.Traits.MercuryRxSensitivity],
		MoonPhaseAffinities:  moonAffinities,
		PlanetaryAffinities:  planetAffinities,
		TestingPersonality: TestingPersonality{
			PerformsUnderPressure: profile.Element == zodiac.Fire || sign == zodiac.Scorpio,
			PrefersRoutine:        profile.Element == zodiac.Earth || profile.Modality == zodiac.Fixed,
			Intuitive:             profile.Element == zodiac.Water || sign == zodiac.Pisces,
			Analytical:            profile.Element == zodiac.Earth || profile.Element == zodiac.Air,
			Resilient:             profile.Modality == zodiac.Fixed || profile.Element == zodiac.Earth,
		},
	}
}

// Personalize applies the user's factors to one merged date, producing a
// score adjusted from base plus the explanatory strings for the detail view.
// The final score is rounded and clamped to [0, 100] as the last step.
func Personalize(d almanac.MergedDate, factors Factors, base float64) Recommendation {
	profile := zodiac.ProfileFor(factors.SunSign)
	score := base
	rec := Recommendation{BaseScore: base}

	if hasStructuredRetrograde(d) {
		score += float64(factors.MercuryCompatibility-affinityNeutral) * mercuryWeight
		if factors.MercuryCompatibility > boostThreshold {
			rec.Boosts = append(rec.Boosts, fmt.Sprintf("%s handles Mercury retrograde better than most", factors.SunSign))
			rec.WhyItWorks = append(rec.WhyItWorks, "Your sign's natural adaptability helps during Mercury Rx periods")
		} else if factors.MercuryCompatibility < cautionThreshold {
			rec.Cautions = append(rec.Cautions, fmt.Sprintf("%s may be extra sensitive to Mercury retrograde effects", factors.SunSign))
			rec.Tips = append(rec.Tips, "Double-check all logistics and allow extra travel time")
		}
	}

	if phase := almanac.MoonPhase(d); phase != "" {
		if affinity, ok := factors.MoonPhaseAffinities[phase]; ok {
			score += float64(affinity-affinityNeutral) * moonPhaseWeight
			if affinity > boostThreshold {
				rec.Boosts = append(rec.Boosts, fmt.Sprintf("%s aligns perfectly with your %s energy", phase, factors.SunSign))
				rec.WhyItWorks = append(rec.WhyItWorks, fmt.Sprintf("This lunar phase enhances your natural %s strengths", factors.SunSign))
			}
		}
	}

	for _, tone := range dateTones(d) {
		planet, ok := tonePlanets[strings.ToLower(tone)]
		if !ok {
			continue
		}
		affinity, ok := factors.PlanetaryAffinities[planet]
		if !ok {
			continue
		}
		score += float64(affinity-affinityNeutral) * planetToneWeight
		if affinity > boostThreshold {
			rec.Boosts = append(rec.Boosts, fmt.Sprintf("%s energy supports your %s nature", planet, factors.SunSign))
		} else if affinity < cautionThreshold {
			rec.Cautions = append(rec.Cautions, fmt.Sprintf("%s energy may challenge your %s approach", planet, factors.SunSign))
		}
	}

	if factors.TestingPersonality.PerformsUnderPressure && hasTone(d, "confident") {
		score += pressureToneBonus
		rec.Boosts = append(rec.Boosts, "High-pressure energy matches your natural test-taking style")
	}

	if factors.TestingPersonality.PrefersRoutine && !hasMercurySignal(d) {
		score += stableSkyBonus
		rec.WhyItWorks = append(rec.WhyItWorks, "Stable planetary conditions support your preference for routine")
	}

	if tips := profile.PersonalizedAdvice.TestDay; len(tips) >= 2 {
		rec.Tips = append(rec.Tips, tips[:2]...)
	} else {
		rec.Tips = append(rec.Tips, tips...)
	}

	rec.PersonalizedScore = math.Max(0, math.Min(100, math.Round(score)))
	return rec
}

// hasStructuredRetrograde checks only the structured signal; the free-text
// fallback is deliberately not consulted here (almanac.IsMercuryRetrograde
// covers that two-tier check for ranking).
func hasStructuredRetrograde(d almanac.MergedDate) bool {
	return d.Meaning != nil && d.Meaning.Signals != nil && d.Meaning.Signals.MercuryState == "retrograde"
}

func hasMercurySignal(d almanac.MergedDate) bool {
	return d.Meaning != nil && d.Meaning.Signals != nil && d.Meaning.Signals.MercuryState != ""
}

func dateTones(d almanac.MergedDate) []string {
	if d.Meaning == nil || d.Meaning.Signals == nil {
		return nil
	}
	return d.Meaning.Signals.Tone
}

func hasTone(d almanac.MergedDate, tone string) bool {
	for _, t := range dateTones(d) {
		if t == tone {
			return true
		}
	}
	return false
}

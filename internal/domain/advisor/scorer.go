package advisor

import (
	"math"
	"strings"
	"time"

	"github.com/yanqian/astro-dates/internal/domain/almanac"
)

const (
	catalogDateLayout = "January 2, 2006"
	prefDateLayout    = "2006-01-02"
	scoreReleaseDelay = 30 * 24 * time.Hour

	maxBadges  = 5
	maxReasons = 3
)

type mercuryInfo struct {
	status       almanac.MercuryState
	isRetrograde bool
	badge        string
}

// mercuryFromBody classifies the free-text Mercury position alone, defaulting
// to direct when the text carries no keyword. Stationary counts as retrograde
// for display purposes.
func mercuryFromBody(text string) mercuryInfo {
	lower := strings.ToLower(text)
	switch {
	case strings.Contains(lower, "retrograde"):
		return mercuryInfo{status: almanac.MercuryRetrograde, isRetrograde: true, badge: "Mercury Retrograde"}
	case strings.Contains(lower, "stationary"):
		return mercuryInfo{status: almanac.MercuryStationary, isRetrograde: true, badge: "Mercury Stationary"}
	default:
		return mercuryInfo{status: almanac.MercuryDirect, badge: "Mercury Direct"}
	}
}

// displayScore computes the 0-100 score shown per date, with its badges and
// reasons. It mirrors the merged date's free-text signals plus the user's
// sliders and score-release window.
func displayScore(d almanac.MergedDate, prefs Preferences) (int, []string, []string, mercuryInfo) {
	score := weights.DisplayBase
	var badges, why []string

	mercury := mercuryFromBody(d.Bodies.Mercury)
	badges = append(badges, mercury.badge)
	switch mercury.status {
	case almanac.MercuryDirect:
		score += weights.MercuryDirect
		why = append(why, "Mercury direct supports clear thinking and communication")
	case almanac.MercuryRetrograde:
		score += weights.MercuryRetrograde
		why = append(why, "Mercury retrograde may cause confusion or delays")
	case almanac.MercuryStationary:
		score += weights.MercuryStationary
		why = append(why, "Mercury stationary brings unpredictable energy")
	}

	for _, note := range d.Notes {
		lower := strings.ToLower(note)
		switch {
		case strings.Contains(lower, "new moon"):
			score += weights.NewMoon
			badges = append(badges, "New Moon")
			why = append(why, "New Moon energy for fresh starts and new beginnings")
		case strings.Contains(lower, "full moon"):
			score += weights.FullMoon
			badges = append(badges, "Full Moon")
			why = append(why, "Full Moon energy for peak performance and clarity")
		case strings.Contains(lower, "first quarter"):
			score += weights.FirstQuarter
			badges = append(badges, "First Quarter")
			why = append(why, "First Quarter Moon supports building momentum")
		case strings.Contains(lower, "last quarter"):
			score += weights.LastQuarter
			badges = append(badges, "Last Quarter")
			why = append(why, "Last Quarter Moon for releasing and letting go")
		}
	}

	if d.Weekday == "Friday" || d.Weekday == "Saturday" {
		score += weights.WeekendDay
		badges = append(badges, "Weekend")
		why = append(why, "Weekend test day for relaxed scheduling")
	}

	if release, ok := estimatedScoreRelease(d.Date); ok {
		if start, err := time.Parse(prefDateLayout, prefs.ScoreReleaseStart); err == nil {
			if end, err := time.Parse(prefDateLayout, prefs.ScoreReleaseEnd); err == nil {
				if !release.Before(start) && !release.After(end) {
					score += weights.ReleaseWindow
					badges = append(badges, "Ideal Timing")
					why = append(why, "Score releases within your preferred timeframe")
				}
			}
		}
	}

	if prefs.RiskTolerance > 70 {
		if len(d.Notes) > 0 {
			score += weights.HighRiskNotes
			why = append(why, "Unique astrological aspects for adventurous spirits")
		}
	} else if prefs.RiskTolerance > 0 && prefs.RiskTolerance < 30 {
		if mercury.status == almanac.MercuryDirect && len(d.Notes) == 0 {
			score += weights.LowRiskQuiet
			why = append(why, "Stable planetary conditions for conservative approach")
		}
	}

	if prefs.EnergyPreference > 70 && hasNoteContaining(d.Notes, "full moon") {
		score += weights.HighEnergyFull
		why = append(why, "High-energy lunar phase matches your preference")
	}

	score = int(math.Max(0, math.Min(100, float64(score))))
	if len(badges) > maxBadges {
		badges = badges[:maxBadges]
	}
	if len(why) > maxReasons {
		why = why[:maxReasons]
	}
	return score, badges, why, mercury
}

func hasNoteContaining(notes []string, substr string) bool {
	for _, note := range notes {
		if strings.Contains(strings.ToLower(note), substr) {
			return true
		}
	}
	return false
}

// estimatedScoreRelease approximates the score release as 30 days after the
// test date.
func estimatedScoreRelease(date string) (time.Time, bool) {
	parsed, err := time.Parse(catalogDateLayout, date)
	if err != nil {
		return time.Time{}, false
	}
	return parsed.Add(scoreReleaseDelay), true
}

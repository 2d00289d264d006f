package advisor

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/yanqian/astro-dates/internal/domain/almanac"
)

func fridayDate(mercury string, notes ...string) almanac.MergedDate {
	return almanac.MergedDate{CatalogDate: almanac.CatalogDate{
		Date:    "July 25, 2025",
		Weekday: "Friday",
		Bodies:  almanac.Bodies{Mercury: mercury},
		Notes:   notes,
	}}
}

func TestDisplayScoreDirectWeekend(t *testing.T) {
	score, badges, why, mercury := displayScore(fridayDate("Direct in Cancer"), Preferences{})

	require.Equal(t, 70, score) // 50 + 15 direct + 5 weekend
	require.Equal(t, []string{"Mercury Direct", "Weekend"}, badges)
	require.Len(t, why, 2)
	require.Equal(t, almanac.MercuryDirect, mercury.status)
	require.False(t, mercury.isRetrograde)
}

func TestDisplayScoreRetrograde(t *testing.T) {
	score, _, _, mercury := displayScore(fridayDate("Retrograde in Cancer"), Preferences{})

	require.Equal(t, 35, score) // 50 - 20 + 5 weekend
	require.Equal(t, almanac.MercuryRetrograde, mercury.status)
	require.True(t, mercury.isRetrograde)
}

func TestDisplayScoreStationaryCountsAsRetrograde(t *testing.T) {
	score, _, _, mercury := displayScore(fridayDate("Stationary in Leo"), Preferences{})

	require.Equal(t, 45, score) // 50 - 10 + 5 weekend
	require.Equal(t, almanac.MercuryStationary, mercury.status)
	require.True(t, mercury.isRetrograde)
}

func TestDisplayScoreMoonPhaseNotes(t *testing.T) {
	score, badges, _, _ := displayScore(fridayDate("Direct in Cancer", "New Moon in Leo"), Preferences{})
	require.Equal(t, 80, score) // 70 + 10
	require.Contains(t, badges, "New Moon")

	score, badges, _, _ = displayScore(fridayDate("Direct in Cancer", "Full Moon in Aquarius"), Preferences{})
	require.Equal(t, 85, score)
	require.Contains(t, badges, "Full Moon")
}

func TestDisplayScoreReleaseWindow(t *testing.T) {
	prefs := Preferences{ScoreReleaseStart: "2025-08-20", ScoreReleaseEnd: "2025-09-05"}
	// Release estimate: July 25 + 30 days = August 24, inside the window.
	score, badges, _, _ := displayScore(fridayDate("Direct in Cancer"), prefs)
	require.Equal(t, 90, score) // 70 + 20
	require.Contains(t, badges, "Ideal Timing")

	prefs = Preferences{ScoreReleaseStart: "2025-10-01", ScoreReleaseEnd: "2025-10-15"}
	score, _, _, _ = displayScore(fridayDate("Direct in Cancer"), prefs)
	require.Equal(t, 70, score)
}

func TestDisplayScoreRiskTolerance(t *testing.T) {
	// Low tolerance rewards quiet direct days.
	score, _, why, _ := displayScore(fridayDate("Direct in Cancer"), Preferences{RiskTolerance: 20})
	require.Equal(t, 80, score) // 70 + 10
	require.Contains(t, why, "Stable planetary conditions for conservative approach")

	// An unset slider must not trigger the low-tolerance path.
	score, _, _, _ = displayScore(fridayDate("Direct in Cancer"), Preferences{})
	require.Equal(t, 70, score)

	// High tolerance rewards eventful days.
	score, _, _, _ = displayScore(fridayDate("Direct in Cancer", "Saturn trine Sun"), Preferences{RiskTolerance: 80})
	require.Equal(t, 75, score)
}

func TestDisplayScoreEnergyPreference(t *testing.T) {
	d := fridayDate("Direct in Cancer", "Full Moon in Aquarius")
	score, _, _, _ := displayScore(d, Preferences{EnergyPreference: 90})
	require.Equal(t, 90, score) // 70 + 15 full moon + 5 energy
}

func TestDisplayScoreClampAndCaps(t *testing.T) {
	d := fridayDate("Direct in Cancer", "Full Moon in Aquarius", "New Moon note never co-occurs but caps badges", "First Quarter remnant")
	prefs := Preferences{
		ScoreReleaseStart: "2025-08-20",
		ScoreReleaseEnd:   "2025-09-05",
		RiskTolerance:     90,
		EnergyPreference:  90,
	}

	score, badges, why, _ := displayScore(d, prefs)
	require.Equal(t, 100, score)
	require.LessOrEqual(t, len(badges), maxBadges)
	require.LessOrEqual(t, len(why), maxReasons)
}

package unit

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/yanqian/astro-dates/internal/domain/advisor"
	"github.com/yanqian/astro-dates/internal/domain/almanac"
	"github.com/yanqian/astro-dates/internal/domain/zodiac"
	"github.com/yanqian/astro-dates/internal/infra/catalogstore"
	"github.com/yanqian/astro-dates/internal/infra/popularstore"
)

const catalogFixture = `{
  "metadata": {"description": "fixture"},
  "data": {
    "2030": {
      "summary": "a quiet test year",
      "dates": [
        {
          "date": "June 15, 2030",
          "weekday": "Saturday",
          "bodies": {"Mercury": "Direct in Gemini", "Moon": "Waxing Crescent in Cancer"},
          "notes": ["Waxing Crescent moon builds momentum"],
          "sources_inline": []
        },
        {
          "date": "July 19, 2030",
          "weekday": "Friday",
          "bodies": {"Mercury": "Retrograde in Leo", "Moon": "Full Moon in Capricorn"},
          "notes": ["Full Moon peaks overnight"],
          "sources_inline": []
        }
      ]
    }
  }
}`

const meaningsFixture = `{
  "meta": {"version": "1", "generated_for": "fixture"},
  "meanings": {
    "2030": [
      {
        "date": "June 15, 2030",
        "headline": "smooth sailing",
        "suitability": "High suitability for most test takers",
        "signals": {"mercury_state": "direct in Gemini", "tone": ["steady"]}
      },
      {
        "date": "July 19, 2030",
        "headline": "turbulent skies",
        "suitability": "Medium suitability",
        "signals": {"mercury_state": "retrograde", "tone": ["chaotic"]}
      }
    ]
  }
}`

func newAdvisorUnderTest(t *testing.T) (advisor.Service, advisor.Store) {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "data.json"), []byte(catalogFixture), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "rationals.json"), []byte(meaningsFixture), 0o644))

	logger := newTestLogger()
	source, err := catalogstore.NewFileSource(dir, logger)
	require.NoError(t, err)

	store := popularstore.NewMemoryStore()
	return advisor.NewService(almanac.NewService(source, logger), store, logger), store
}

func TestRankingFlowFromFiles(t *testing.T) {
	svc, _ := newAdvisorUnderTest(t)

	resp, err := svc.Rank(context.Background(), advisor.RankRequest{Year: "2030"})
	require.NoError(t, err)
	require.Equal(t, "2030", resp.Year)
	require.Equal(t, "a quiet test year", resp.Summary)
	require.False(t, resp.Personalized)
	require.Len(t, resp.Dates, 2)

	// The direct Saturday with High suitability outranks the retrograde Friday.
	require.Equal(t, "June 15, 2030", resp.Dates[0].Date)
	require.Equal(t, almanac.BucketHigh, resp.Dates[0].Bucket)
	require.False(t, resp.Dates[0].IsMercuryRetrograde)

	require.Equal(t, "July 19, 2030", resp.Dates[1].Date)
	require.True(t, resp.Dates[1].IsMercuryRetrograde)
	require.Greater(t, resp.Dates[0].CompositeScore, resp.Dates[1].CompositeScore)
}

func TestRankingFlowAvoidRetrogradeFilter(t *testing.T) {
	svc, _ := newAdvisorUnderTest(t)

	resp, err := svc.Rank(context.Background(), advisor.RankRequest{
		Year:    "2030",
		Filters: advisor.Filters{AvoidMercuryRx: true},
	})
	require.NoError(t, err)
	require.Len(t, resp.Dates, 1)
	require.Equal(t, "June 15, 2030", resp.Dates[0].Date)
}

func TestDetailFlowRecordsPopularView(t *testing.T) {
	svc, _ := newAdvisorUnderTest(t)

	detail, err := svc.Detail(context.Background(), advisor.DetailRequest{
		Year:        "2030",
		Date:        "July 19, 2030",
		Preferences: advisor.Preferences{BirthDate: "2000-08-15"},
	})
	require.NoError(t, err)
	require.Equal(t, zodiac.Leo, detail.Factors.SunSign)
	require.Len(t, detail.Recommendation.Tips, 2)
	// Leo's low retrograde sensitivity turns the structured signal into a boost.
	require.NotEmpty(t, detail.Recommendation.Boosts)

	popular, err := svc.Popular(context.Background(), 5)
	require.NoError(t, err)
	require.Equal(t, []advisor.PopularDate{{Date: "July 19, 2030", Count: 1}}, popular)
}

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

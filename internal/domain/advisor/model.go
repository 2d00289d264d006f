package advisor

import (
	"github.com/yanqian/astro-dates/internal/domain/almanac"
	"github.com/yanqian/astro-dates/internal/domain/natal"
)

// Preferences is the user-entered preference set, passed by value on every
// call. Zero-valued sliders mean "not set"; the core never stores any of it.
type Preferences struct {
	BirthDate         string `json:"birthDate"`
	BirthTime         string `json:"birthTime"`
	City              string `json:"city"`
	Country           string `json:"country"`
	EnergyPreference  int    `json:"energyPreference"`
	RiskTolerance     int    `json:"riskTolerance"`
	ScoreReleaseStart string `json:"scoreReleaseStart"`
	ScoreReleaseEnd   string `json:"scoreReleaseEnd"`
	Timezone          string `json:"timezone"`
	SelectedYear      string `json:"selectedYear"`
}

// Filters are the toggles applied before ranking.
type Filters struct {
	AvoidMercuryRx bool   `json:"avoidMercuryRx"`
	PreferWeekends bool   `json:"preferWeekends"`
	Suitability    string `json:"suitability"`
}

// RankRequest asks for the ranked candidate dates of one year.
type RankRequest struct {
	Year        string      `json:"year"`
	Preferences Preferences `json:"preferences"`
	Filters     Filters     `json:"filters"`
}

// RankedDate is one scored, annotated candidate date.
type RankedDate struct {
	almanac.MergedDate
	Year                string               `json:"year"`
	Score               int                  `json:"score"`
	Badges              []string             `json:"badges"`
	Why                 []string             `json:"why"`
	MercuryStatus       almanac.MercuryState `json:"mercuryStatus"`
	IsMercuryRetrograde bool                 `json:"isMercuryRetrograde"`
	Bucket              almanac.Bucket       `json:"suitabilityBucket"`
	CompositeScore      float64              `json:"compositeScore"`
}

// RankResponse is the ranked result list for one year.
type RankResponse struct {
	Year         string       `json:"year"`
	Summary      string       `json:"summary"`
	Personalized bool         `json:"personalized"`
	SunSign      string       `json:"sunSign,omitempty"`
	Dates        []RankedDate `json:"dates"`
}

// DetailRequest asks for the personalized breakdown of a single date.
type DetailRequest struct {
	Year        string      `json:"year"`
	Date        string      `json:"date"`
	Preferences Preferences `json:"preferences"`
}

// DetailResponse pairs the scored date with its natal overlay.
type DetailResponse struct {
	Date             RankedDate           `json:"date"`
	Factors          natal.Factors        `json:"factors"`
	Recommendation   natal.Recommendation `json:"recommendation"`
	AstroCopyPreview string               `json:"astroCopyPreview,omitempty"`
}

// PopularDate is a view-count entry returned by the popular-dates endpoint.
type PopularDate struct {
	Date  string `json:"date"`
	Count int64  `json:"count"`
}

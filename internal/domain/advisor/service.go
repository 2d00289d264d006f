package advisor

import (
	"context"
	"log/slog"
	"math"
	"sort"
	"strings"
	"time"

	"github.com/yanqian/astro-dates/internal/domain/almanac"
	"github.com/yanqian/astro-dates/internal/domain/natal"
	apperrors "github.com/yanqian/astro-dates/pkg/errors"
	"github.com/yanqian/astro-dates/pkg/textutil"
)

const astroCopyPreviewLen = 160

// Service exposes the ranked recommendation capabilities.
type Service interface {
	Rank(ctx context.Context, req RankRequest) (RankResponse, error)
	Detail(ctx context.Context, req DetailRequest) (DetailResponse, error)
	Popular(ctx context.Context, limit int) ([]PopularDate, error)
}

// Store tracks per-date view counters backing the popular-dates endpoint.
type Store interface {
	IncrementView(ctx context.Context, date string) error
	TopDates(ctx context.Context, limit int) ([]PopularDate, error)
}

type service struct {
	almanac almanac.Service
	store   Store
	logger  *slog.Logger
	now     func() time.Time
}

// NewService wires up the advisor domain.
func NewService(alm almanac.Service, store Store, logger *slog.Logger) Service {
	return &service{
		almanac: alm,
		store:   store,
		logger:  logger.With("component", "advisor.service"),
		now:     time.Now,
	}
}

// Rank filters and orders one year's candidate dates by composite score.
// Personalization only contributes when the birth date parses; any failure
// inside it degrades to a zero delta so the list always comes back ranked.
func (s *service) Rank(ctx context.Context, req RankRequest) (RankResponse, error) {
	year := strings.TrimSpace(req.Year)
	if year == "" {
		return RankResponse{}, apperrors.Wrap("invalid_input", "year is required", nil)
	}

	view := s.almanac.YearView(year)
	factors := s.resolveFactors(req.Preferences)

	resp := RankResponse{
		Year:         view.Year,
		Summary:      view.Summary,
		Personalized: factors != nil,
	}
	if factors != nil {
		resp.SunSign = string(factors.SunSign)
	}

	type scored struct {
		date      almanac.MergedDate
		composite float64
	}
	kept := make([]scored, 0, len(view.Dates))
	for _, d := range view.Dates {
		if !passesFilters(d, req.Filters) {
			continue
		}
		kept = append(kept, scored{date: d, composite: s.compositeScore(d, factors, req.Filters)})
	}

	// Stable: ties keep catalog order.
	sort.SliceStable(kept, func(i, j int) bool {
		return kept[i].composite > kept[j].composite
	})

	resp.Dates = make([]RankedDate, 0, len(kept))
	for _, sc := range kept {
		resp.Dates = append(resp.Dates, s.annotate(sc.date, year, req.Preferences, sc.composite))
	}
	s.logger.Info("dates ranked", "year", year, "candidates", len(view.Dates), "returned", len(resp.Dates), "personalized", resp.Personalized)
	return resp, nil
}

// Detail returns the full personalized breakdown for one date and records a
// view against the popular-dates counters.
func (s *service) Detail(ctx context.Context, req DetailRequest) (DetailResponse, error) {
	birth, ok := parseBirthDate(req.Preferences.BirthDate)
	if !ok {
		return DetailResponse{}, apperrors.Wrap("invalid_input", "birthDate must be formatted as YYYY-MM-DD", nil)
	}

	view := s.almanac.YearView(strings.TrimSpace(req.Year))
	var target *almanac.MergedDate
	for i := range view.Dates {
		if view.Dates[i].Date == req.Date {
			target = &view.Dates[i]
			break
		}
	}
	if target == nil {
		return DetailResponse{}, apperrors.Wrap("date_not_found", "no catalog entry for the requested date", nil)
	}

	factors := natal.ComputeFactors(birth)
	ranked := s.annotate(*target, view.Year, req.Preferences, s.compositeScore(*target, &factors, Filters{}))
	rec := natal.Personalize(*target, factors, float64(ranked.Score))

	if err := s.store.IncrementView(ctx, target.Date); err != nil {
		s.logger.Warn("popular view increment failed", "date", target.Date, "error", err)
	}

	resp := DetailResponse{
		Date:           ranked,
		Factors:        factors,
		Recommendation: rec,
	}
	if target.AstroCopy != nil {
		resp.AstroCopyPreview = textutil.Truncate(target.AstroCopy.Text, astroCopyPreviewLen)
	}
	return resp, nil
}

func (s *service) Popular(ctx context.Context, limit int) ([]PopularDate, error) {
	return s.store.TopDates(ctx, limit)
}

func (s *service) resolveFactors(prefs Preferences) *natal.Factors {
	birth, ok := parseBirthDate(prefs.BirthDate)
	if !ok {
		if strings.TrimSpace(prefs.BirthDate) != "" {
			s.logger.Warn("unparseable birth date, skipping personalization")
		}
		return nil
	}
	factors := natal.ComputeFactors(birth)
	return &factors
}

// compositeScore is the ranking key: suitability base,
// scaled personalization delta, filter bonuses, the unconditional retrograde
// penalty, the recency bonus and the flat weekday bonuses.
func (s *service) compositeScore(d almanac.MergedDate, factors *natal.Factors, filters Filters) float64 {
	var score float64
	switch almanac.SuitabilityBucket(d) {
	case almanac.BucketHigh:
		score += weights.BucketHigh
	case almanac.BucketMediumHigh:
		score += weights.BucketMediumHigh
	case almanac.BucketMedium:
		score += weights.BucketMedium
	default:
		score += weights.BucketOther
	}

	if factors != nil {
		score += s.personalizationDelta(d, *factors, score)
	}

	weekend := d.Weekday == "Friday" || d.Weekday == "Saturday"
	if filters.PreferWeekends && weekend {
		score += weights.WeekendFilterBonus
	}
	if filters.AvoidMercuryRx && !almanac.IsMercuryRetrograde(d) {
		score += weights.AvoidRxFilterBonus
	}
	if almanac.IsMercuryRetrograde(d) {
		score -= weights.RetrogradePenalty
	}

	if testDate, err := time.Parse(catalogDateLayout, d.Date); err == nil {
		daysFromNow := int(math.Floor(testDate.Sub(s.now()).Hours() / 24))
		if daysFromNow > 0 && daysFromNow < weights.RecencyWindowDays {
			score += math.Max(0, weights.RecencyCeiling-float64(daysFromNow)/weights.RecencyDecayDays)
		}
	}

	if d.Weekday == "Saturday" {
		score += weights.SaturdayBonus
	}
	if d.Weekday == "Friday" {
		score += weights.FridayBonus
	}
	return score
}

// personalizationDelta degrades to zero if personalization misbehaves; a
// failure here must never cost the user the ranked list.
func (s *service) personalizationDelta(d almanac.MergedDate, factors natal.Factors, base float64) (delta float64) {
	defer func() {
		if r := recover(); r != nil {
			s.logger.Warn("personalization failed, ignoring delta", "date", d.Date, "panic", r)
			delta = 0
		}
	}()
	rec := natal.Personalize(d, factors, base)
	return (rec.PersonalizedScore - rec.BaseScore) * weights.PersonalizationScale
}

func passesFilters(d almanac.MergedDate, f Filters) bool {
	if f.AvoidMercuryRx && almanac.IsMercuryRetrograde(d) {
		return false
	}
	if f.PreferWeekends && d.Weekday != "Friday" && d.Weekday != "Saturday" {
		return false
	}
	if f.Suitability != "" && f.Suitability != "All" {
		if string(almanac.SuitabilityBucket(d)) != f.Suitability {
			return false
		}
	}
	return true
}

func (s *service) annotate(d almanac.MergedDate, year string, prefs Preferences, composite float64) RankedDate {
	score, badges, why, mercury := displayScore(d, prefs)
	return RankedDate{
		MergedDate:          d,
		Year:                year,
		Score:               score,
		Badges:              badges,
		Why:                 why,
		MercuryStatus:       mercury.status,
		IsMercuryRetrograde: mercury.isRetrograde,
		Bucket:              almanac.SuitabilityBucket(d),
		CompositeScore:      composite,
	}
}

func parseBirthDate(value string) (time.Time, bool) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return time.Time{}, false
	}
	parsed, err := time.Parse(prefDateLayout, trimmed)
	if err != nil {
		return time.Time{}, false
	}
	return parsed, true
}

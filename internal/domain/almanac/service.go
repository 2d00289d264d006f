package almanac

import (
	"log/slog"
	"sort"
)

// Service exposes the merged almanac views.
type Service interface {
	Years() []string
	YearView(year string) YearView
}

// Source supplies the static catalog and overlay tables, loaded once at
// startup. Implementations must return stable data for the process lifetime.
type Source interface {
	Years() []string
	CatalogYear(year string) (summary string, dates []CatalogDate)
	MeaningsYear(year string) []Meaning
	DescriptionsYear(year string) []Description
	AstroCopyYear(year string) []AstroCopy
}

type service struct {
	src    Source
	logger *slog.Logger
}

// NewService wires up the almanac domain.
func NewService(src Source, logger *slog.Logger) Service {
	return &service{
		src:    src,
		logger: logger.With("component", "almanac.service"),
	}
}

func (s *service) Years() []string {
	years := append([]string(nil), s.src.Years()...)
	sort.Strings(years)
	return years
}

// YearView merges the catalog with the three overlays by exact date-string
// equality. Overlay entries whose date never matches a catalog date are
// silently dropped; catalog dates without overlay entries keep nil overlay
// fields. An unknown year yields an empty view.
func (s *service) YearView(year string) YearView {
	summary, catalog := s.src.CatalogYear(year)

	meanings := make(map[string]*Meaning)
	for _, m := range s.src.MeaningsYear(year) {
		m := m
		meanings[m.Date] = &m
	}
	descriptions := make(map[string]*Description)
	for _, d := range s.src.DescriptionsYear(year) {
		d := d
		descriptions[d.Date] = &d
	}
	copies := make(map[string]*AstroCopy)
	for _, c := range s.src.AstroCopyYear(year) {
		c := c
		copies[c.Date] = &c
	}

	dates := make([]MergedDate, 0, len(catalog))
	for _, cd := range catalog {
		dates = append(dates, MergedDate{
			CatalogDate: cd,
			Meaning:     meanings[cd.Date],
			Description: descriptions[cd.Date],
			AstroCopy:   copies[cd.Date],
		})
	}

	s.logger.Debug("year view merged", "year", year, "dates", len(dates))
	return YearView{Year: year, Summary: summary, Dates: dates}
}

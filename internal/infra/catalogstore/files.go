package catalogstore

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/yanqian/astro-dates/internal/domain/almanac"
)

// File names follow the original data exports.
const (
	catalogFile      = "data.json"
	meaningsFile     = "rationals.json"
	descriptionsFile = "descriptions.json"
	astroCopyFile    = "astro_copy.json"
)

type docMeta struct {
	Version      string `json:"version"`
	GeneratedFor string `json:"generated_for"`
	Note         string `json:"note,omitempty"`
}

type yearData struct {
	Summary string                `json:"summary"`
	Dates   []almanac.CatalogDate `json:"dates"`
}

type catalogDocument struct {
	Metadata struct {
		Description string `json:"description"`
		Sources     struct {
			PlanetaryPositions []string `json:"planetary_positions"`
			MoonPhaseContext   []string `json:"moon_phase_context"`
		} `json:"sources"`
	} `json:"metadata"`
	Data               map[string]yearData `json:"data"`
	OverallSourcesNote string              `json:"overall_sources_note"`
}

type meaningsDocument struct {
	Meta     docMeta                      `json:"meta"`
	Meanings map[string][]almanac.Meaning `json:"meanings"`
}

type descriptionsDocument struct {
	Meta         docMeta                          `json:"meta"`
	Descriptions map[string][]almanac.Description `json:"descriptions"`
}

type astroCopyDocument struct {
	Meta      docMeta                        `json:"meta"`
	AstroCopy map[string][]almanac.AstroCopy `json:"astro_copy"`
}

// FileSource serves the static catalog and overlay tables from JSON files
// loaded once at construction. The catalog file is required; a missing
// overlay file just leaves that overlay empty.
type FileSource struct {
	catalog      catalogDocument
	meanings     map[string][]almanac.Meaning
	descriptions map[string][]almanac.Description
	astroCopy    map[string][]almanac.AstroCopy
}

// NewFileSource loads every data file from dir.
func NewFileSource(dir string, logger *slog.Logger) (*FileSource, error) {
	log := logger.With("component", "catalogstore")
	src := &FileSource{
		meanings:     map[string][]almanac.Meaning{},
		descriptions: map[string][]almanac.Description{},
		astroCopy:    map[string][]almanac.AstroCopy{},
	}

	if err := readJSON(filepath.Join(dir, catalogFile), &src.catalog); err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}

	var meanings meaningsDocument
	if err := readJSON(filepath.Join(dir, meaningsFile), &meanings); err != nil {
		log.Warn("meanings overlay unavailable", "error", err)
	} else {
		src.meanings = meanings.Meanings
	}

	var descriptions descriptionsDocument
	if err := readJSON(filepath.Join(dir, descriptionsFile), &descriptions); err != nil {
		log.Warn("descriptions overlay unavailable", "error", err)
	} else {
		src.descriptions = descriptions.Descriptions
	}

	var copies astroCopyDocument
	if err := readJSON(filepath.Join(dir, astroCopyFile), &copies); err != nil {
		log.Warn("astro copy overlay unavailable", "error", err)
	} else {
		src.astroCopy = copies.AstroCopy
	}

	log.Info("static data loaded", "years", len(src.catalog.Data))
	return src, nil
}

func readJSON(path string, target any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, target); err != nil {
		return fmt.Errorf("parse %s: %w", filepath.Base(path), err)
	}
	return nil
}

func (s *FileSource) Years() []string {
	years := make([]string, 0, len(s.catalog.Data))
	for year := range s.catalog.Data {
		years = append(years, year)
	}
	return years
}

func (s *FileSource) CatalogYear(year string) (string, []almanac.CatalogDate) {
	data := s.catalog.Data[year]
	return data.Summary, data.Dates
}

func (s *FileSource) MeaningsYear(year string) []almanac.Meaning {
	return s.meanings[year]
}

func (s *FileSource) DescriptionsYear(year string) []almanac.Description {
	return s.descriptions[year]
}

func (s *FileSource) AstroCopyYear(year string) []almanac.AstroCopy {
	return s.astroCopy[year]
}

var _ almanac.Source = (*FileSource)(nil)

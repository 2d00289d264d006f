package almanac

// Bodies holds the precomputed position/status text for each tracked
// celestial body. Values are free text, e.g. "Direct in Cancer".
type Bodies struct {
	Sun       string `json:"Sun"`
	Moon      string `json:"Moon"`
	Mercury   string `json:"Mercury"`
	Venus     string `json:"Venus"`
	Mars      string `json:"Mars"`
	Jupiter   string `json:"Jupiter"`
	Saturn    string `json:"Saturn"`
	Uranus    string `json:"Uranus"`
	Neptune   string `json:"Neptune"`
	Pluto     string `json:"Pluto"`
	NorthNode string `json:"North Node"`
}

// CatalogDate is one entry of the static per-year reference catalog.
// The Date string (e.g. "July 25, 2025") is the join key for overlays.
type CatalogDate struct {
	Date    string   `json:"date"`
	Weekday string   `json:"weekday"`
	Bodies  Bodies   `json:"bodies"`
	Notes   []string `json:"notes"`
	Sources []string `json:"sources_inline"`
}

// MeaningSignals carries the structured interpretation hints attached to a
// meaning record. Every field is optional in the source data.
type MeaningSignals struct {
	MoonSign     string   `json:"moon_sign,omitempty"`
	MercuryState string   `json:"mercury_state,omitempty"`
	Tone         []string `json:"tone,omitempty"`
	Discipline   string   `json:"discipline,omitempty"`
}

// Meaning is the structured plain-language interpretation overlay.
type Meaning struct {
	Date        string          `json:"date"`
	Headline    string          `json:"headline"`
	Tags        []string        `json:"tags"`
	Strengths   []string        `json:"strengths"`
	Cautions    []string        `json:"cautions"`
	Suitability string          `json:"suitability"`
	Signals     *MeaningSignals `json:"signals,omitempty"`
}

// Description is the short test-day feel/why/advice overlay.
type Description struct {
	Date   string   `json:"date"`
	Feel   string   `json:"feel"`
	Why    string   `json:"why"`
	Advice []string `json:"advice"`
}

// AstroCopy is the narrative horoscope-style overlay.
type AstroCopy struct {
	Date string `json:"date"`
	Text string `json:"text"`
}

// MergedDate joins a catalog date with whichever overlays exist for it.
// A nil overlay pointer means no record matched the date string exactly;
// that is the normal case for incomplete overlay data, never an error.
type MergedDate struct {
	CatalogDate
	Meaning     *Meaning     `json:"meaning,omitempty"`
	Description *Description `json:"description,omitempty"`
	AstroCopy   *AstroCopy   `json:"astroCopy,omitempty"`
}

// YearView is the merged per-year view handed to consumers.
type YearView struct {
	Year    string       `json:"year"`
	Summary string       `json:"summary"`
	Dates   []MergedDate `json:"dates"`
}

// Bucket classifies a date's suitability for test taking.
type Bucket string

const (
	BucketHigh       Bucket = "High"
	BucketMediumHigh Bucket = "Medium–High"
	BucketMedium     Bucket = "Medium"
	BucketOther      Bucket = "Other"
)

// MercuryState is the resolved four-way Mercury status for a date.
type MercuryState string

const (
	MercuryRetrograde MercuryState = "retrograde"
	MercuryDirect     MercuryState = "direct"
	MercuryStationary MercuryState = "stationary"
	MercuryUnknown    MercuryState = "unknown"
)

// Moon phase names as they appear in catalog notes and zodiac profiles.
const (
	PhaseNewMoon        = "New Moon"
	PhaseWaxingCrescent = "Waxing Crescent"
	PhaseFirstQuarter   = "First Quarter"
	PhaseWaxingGibbous  = "Waxing Gibbous"
	PhaseFullMoon       = "Full Moon"
	PhaseWaningGibbous  = "Waning Gibbous"
	PhaseThirdQuarter   = "Third Quarter"
	PhaseWaningCrescent = "Waning Crescent"
)

// CanonicalPhases lists the eight phase names in lunation order.
var CanonicalPhases = []string{
	PhaseNewMoon, PhaseWaxingCrescent, PhaseFirstQuarter, PhaseWaxingGibbous,
	PhaseFullMoon, PhaseWaningGibbous, PhaseThirdQuarter, PhaseWaningCrescent,
}

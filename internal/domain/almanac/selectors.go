package almanac

import "strings"

// IsMercuryRetrograde reports whether either the structured meaning signal or
// the free-text Mercury position marks the date as retrograde. Either source
// alone is sufficient.
func IsMercuryRetrograde(d MergedDate) bool {
	if d.Meaning != nil && d.Meaning.Signals != nil && d.Meaning.Signals.MercuryState == "retrograde" {
		return true
	}
	return strings.Contains(strings.ToLower(d.Bodies.Mercury), "retrograde")
}

// SuitabilityBucket classifies the free-text suitability field by
// case-insensitive prefix. Medium–High (either dash spelling) must be tested
// before plain Medium since both share the "medium" prefix.
func SuitabilityBucket(d MergedDate) Bucket {
	s := ""
	if d.Meaning != nil {
		s = d.Meaning.Suitability
	}
	lower := strings.ToLower(s)
	switch {
	case strings.HasPrefix(lower, "high"):
		return BucketHigh
	case strings.HasPrefix(lower, "medium–high"), strings.HasPrefix(lower, "medium-high"):
		return BucketMediumHigh
	case strings.HasPrefix(lower, "medium"):
		return BucketMedium
	default:
		return BucketOther
	}
}

// ResolveMercuryState resolves the four-way Mercury status, preferring the
// structured signal and falling back to the free-text body position.
func ResolveMercuryState(d MergedDate) MercuryState {
	if d.Meaning != nil && d.Meaning.Signals != nil && d.Meaning.Signals.MercuryState != "" {
		state := strings.ToLower(d.Meaning.Signals.MercuryState)
		switch {
		case strings.Contains(state, "retrograde"):
			return MercuryRetrograde
		case strings.Contains(state, "direct"):
			return MercuryDirect
		case strings.Contains(state, "station"):
			return MercuryStationary
		}
	}

	text := strings.ToLower(d.Bodies.Mercury)
	switch {
	case strings.Contains(text, "retrograde"):
		return MercuryRetrograde
	case strings.Contains(text, "stationary"):
		return MercuryStationary
	case strings.Contains(text, "direct"):
		return MercuryDirect
	}
	return MercuryUnknown
}

// MoonPhase scans the date's notes for a lunar phase mention and returns the
// canonical phase name, or "" when no note carries one. The first matching
// note wins; "Last Quarter" is normalized to "Third Quarter".
func MoonPhase(d MergedDate) string {
	for _, note := range d.Notes {
		switch {
		case strings.Contains(note, "New Moon"):
			return PhaseNewMoon
		case strings.Contains(note, "Full Moon"):
			return PhaseFullMoon
		case strings.Contains(note, "First Quarter"):
			return PhaseFirstQuarter
		case strings.Contains(note, "Last Quarter"), strings.Contains(note, "Third Quarter"):
			return PhaseThirdQuarter
		}
	}
	return ""
}

package zodiac

import (
	"fmt"
	"time"
)

// ResolveSunSign maps a birth date to its sun sign using the static range
// table. Ranges compare as zero-padded MM-DD strings; the wrap-around range
// (start > end) matches dates on either side of the year boundary. The table
// leaves no gaps, so the Aries fallback is unreachable with valid input.
func ResolveSunSign(birth time.Time) Sign {
	key := fmt.Sprintf("%02d-%02d", birth.Month(), birth.Day())

	for _, p := range profiles {
		start, end := p.DateRange.Start, p.DateRange.End
		if start > end {
			if key >= start || key <= end {
				return p.Sign
			}
		} else if key >= start && key <= end {
			return p.Sign
		}
	}
	return Aries
}

package advisor

// scoreWeights gathers every constant of the composite ranking formula and
// the 0-100 display scorer in one table so the literal values stay auditable.
type scoreWeights struct {
	// Composite ranking.
	BucketHigh       float64
	BucketMediumHigh float64
	BucketMedium     float64
	BucketOther      float64

	PersonalizationScale float64

	WeekendFilterBonus float64
	AvoidRxFilterBonus float64
	RetrogradePenalty  float64

	RecencyWindowDays int
	RecencyCeiling    float64
	RecencyDecayDays  float64

	SaturdayBonus float64
	FridayBonus   float64

	// Display score.
	DisplayBase       int
	MercuryDirect     int
	MercuryRetrograde int
	MercuryStationary int
	NewMoon           int
	FullMoon          int
	FirstQuarter      int
	LastQuarter       int
	WeekendDay        int
	ReleaseWindow     int
	HighRiskNotes     int
	LowRiskQuiet      int
	HighEnergyFull    int
}

var weights = scoreWeights{
	BucketHigh:       1000,
	BucketMediumHigh: 800,
	BucketMedium:     600,
	BucketOther:      400,

	PersonalizationScale: 0.5,

	WeekendFilterBonus: 100,
	AvoidRxFilterBonus: 50,
	RetrogradePenalty:  200,

	RecencyWindowDays: 120,
	RecencyCeiling:    50,
	RecencyDecayDays:  10,

	SaturdayBonus: 20,
	FridayBonus:   10,

	DisplayBase:       50,
	MercuryDirect:     15,
	MercuryRetrograde: -20,
	MercuryStationary: -10,
	NewMoon:           10,
	FullMoon:          15,
	FirstQuarter:      8,
	LastQuarter:       5,
	WeekendDay:        5,
	ReleaseWindow:     20,
	HighRiskNotes:     5,
	LowRiskQuiet:      10,
	HighEnergyFull:    5,
}

package zodiac

// Sign is one of the twelve zodiac signs.
type Sign string

const (
	Aries       Sign = "Aries"
	Taurus      Sign = "Taurus"
	Gemini      Sign = "Gemini"
	Cancer      Sign = "Cancer"
	Leo         Sign = "Leo"
	Virgo       Sign = "Virgo"
	Libra       Sign = "Libra"
	Scorpio     Sign = "Scorpio"
	Sagittarius Sign = "Sagittarius"
	Capricorn   Sign = "Capricorn"
	Aquarius    Sign = "Aquarius"
	Pisces      Sign = "Pisces"
)

// Element is one of the four classical elements.
type Element string

const (
	Fire  Element = "Fire"
	Earth Element = "Earth"
	Air   Element = "Air"
	Water Element = "Water"
)

// Modality is one of the three zodiac modalities.
type Modality string

const (
	Cardinal Modality = "Cardinal"
	Fixed    Modality = "Fixed"
	Mutable  Modality = "Mutable"
)

// Sensitivity grades how strongly a sign reacts to Mercury retrograde.
type Sensitivity string

const (
	SensitivityHigh   Sensitivity = "High"
	SensitivityMedium Sensitivity = "Medium"
	SensitivityLow    Sensitivity = "Low"
)

// DateRange bounds a sign's dates in zero-padded MM-DD form, inclusive on
// both ends. Start > End marks the wrap-around sign spanning Dec into Jan.
type DateRange struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// Traits describes a sign's test-taking tendencies.
type Traits struct {
	TestTakingStyle      []string    `json:"testTakingStyle"`
	Strengths            []string    `json:"strengths"`
	Challenges           []string    `json:"challenges"`
	MercuryRxSensitivity Sensitivity `json:"mercuryRxSensitivity"`
	OptimalMoonPhases    []string    `json:"optimalMoonPhases"`
	BeneficialPlanets    []string    `json:"beneficialPlanets"`
	ChallengingPlanets   []string    `json:"challengingPlanets"`
}

// Advice carries the per-phase tip lists surfaced to users.
type Advice struct {
	Preparation []string `json:"preparation"`
	TestDay     []string `json:"testDay"`
	Recovery    []string `json:"recovery"`
}

// Profile is the full static record for one sign.
type Profile struct {
	Sign               Sign      `json:"sign"`
	Element            Element   `json:"element"`
	Modality           Modality  `json:"modality"`
	DateRange          DateRange `json:"dateRange"`
	Traits             Traits    `json:"traits"`
	PersonalizedAdvice Advice    `json:"personalizedAdvice"`
}

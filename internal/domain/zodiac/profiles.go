package zodiac

// profiles is the static table backing sun-sign resolution and
// personalization. Ranges are inclusive and must partition all 366 MM-DD
// values; Capricorn wraps the year boundary.
var profiles = []Profile{
	{
		Sign:      Aries,
		Element:   Fire,
		Modality:  Cardinal,
		DateRange: DateRange{Start: "03-21", End: "04-19"},
		Traits: Traits{
			TestTakingStyle:      []string{"Fast starter", "Trusts first instincts", "Competitive pacing"},
			Strengths:            []string{"Decisive under time pressure", "High stamina in long sittings"},
			Challenges:           []string{"Rushes easy questions", "Impatient with passage re-reads"},
			MercuryRxSensitivity: SensitivityMedium,
			OptimalMoonPhases:    []string{"New Moon", "Waxing Crescent"},
			BeneficialPlanets:    []string{"Mars", "Sun"},
			ChallengingPlanets:   []string{"Saturn"},
		},
		PersonalizedAdvice: Advice{
			Preparation: []string{"Sprint-style study blocks with hard stops", "Full-length practice under strict timing"},
			TestDay:     []string{"Burn off nervous energy with a brisk walk before check-in", "Slow down on the first five questions of each section"},
			Recovery:    []string{"Plan something physical for the evening after", "Resist same-day score speculation"},
		},
	},
	{
		Sign:      Taurus,
		Element:   Earth,
		Modality:  Fixed,
		DateRange: DateRange{Start: "04-20", End: "05-20"},
		Traits: Traits{
			TestTakingStyle:      []string{"Methodical", "Steady pacing", "Prefers familiar routines"},
			Strengths:            []string{"Unshakeable under distraction", "Consistent section-to-section"},
			Challenges:           []string{"Slow to abandon a stuck question", "Resists last-minute strategy changes"},
			MercuryRxSensitivity: SensitivityLow,
			OptimalMoonPhases:    []string{"Waxing Gibbous", "Full Moon"},
			BeneficialPlanets:    []string{"Venus", "Moon"},
			ChallengingPlanets:   []string{"Uranus"},
		},
		PersonalizedAdvice: Advice{
			Preparation: []string{"Keep the same study schedule every week", "Rehearse the full test-day morning once"},
			TestDay:     []string{"Eat the same breakfast you used before practice exams", "Bring a familiar snack for the break"},
			Recovery:    []string{"A comfortable meal and early night", "Review what worked before planning changes"},
		},
	},
	{
		Sign:      Gemini,
		Element:   Air,
		Modality:  Mutable,
		DateRange: DateRange{Start: "05-21", End: "06-20"},
		Traits: Traits{
			TestTakingStyle:      []string{"Quick reader", "Flexible strategy", "Thrives on variety"},
			Strengths:            []string{"Rapid passage comprehension", "Comfortable switching subjects"},
			Challenges:           []string{"Attention drifts in long sections", "Second-guesses answers"},
			MercuryRxSensitivity: SensitivityHigh,
			OptimalMoonPhases:    []string{"First Quarter", "Waxing Crescent"},
			BeneficialPlanets:    []string{"Mercury", "Venus"},
			ChallengingPlanets:   []string{"Neptune"},
		},
		PersonalizedAdvice: Advice{
			Preparation: []string{"Rotate subjects daily to stay engaged", "Practice holding one answer-change rule"},
			TestDay:     []string{"Use breaks to fully reset between sections", "Commit to answers; change one only with concrete evidence"},
			Recovery:    []string{"Talk the day through with someone", "Capture lessons in writing while fresh"},
		},
	},
	{
		Sign:      Cancer,
		Element:   Water,
		Modality:  Cardinal,
		DateRange: DateRange{Start: "06-21", End: "07-22"},
		Traits: Traits{
			TestTakingStyle:      []string{"Mood-sensitive", "Strong memory recall", "Needs a calm start"},
			Strengths:            []string{"Excellent retention of studied material", "Reads emotional tone in passages well"},
			Challenges:           []string{"A rough first section colors the rest", "Absorbs nearby testers' stress"},
			MercuryRxSensitivity: SensitivityMedium,
			OptimalMoonPhases:    []string{"New Moon", "Full Moon"},
			BeneficialPlanets:    []string{"Moon", "Jupiter"},
			ChallengingPlanets:   []string{"Mars"},
		},
		PersonalizedAdvice: Advice{
			Preparation: []string{"Study in the same comforting spot", "Build a pre-test calming ritual and practice it"},
			TestDay:     []string{"Arrive early enough to settle in without hurry", "Use a breathing reset if section one goes sideways"},
			Recovery:    []string{"Debrief with someone supportive", "Let the emotional wave pass before judging performance"},
		},
	},
	{
		Sign:      Leo,
		Element:   Fire,
		Modality:  Fixed,
		DateRange: DateRange{Start: "07-23", End: "08-22"},
		Traits: Traits{
			TestTakingStyle:      []string{"Performs for the occasion", "Confident opener", "Rallies late"},
			Strengths:            []string{"Peak performance when stakes are high", "Shrugs off single bad questions"},
			Challenges:           []string{"Overconfidence on familiar-looking questions", "Dislikes admitting a section went poorly"},
			MercuryRxSensitivity: SensitivityLow,
			OptimalMoonPhases:    []string{"Full Moon", "Waxing Gibbous"},
			BeneficialPlanets:    []string{"Sun", "Jupiter"},
			ChallengingPlanets:   []string{"Saturn"},
		},
		PersonalizedAdvice: Advice{
			Preparation: []string{"Practice in front of others occasionally", "Track misses from overconfidence separately"},
			TestDay:     []string{"Treat it as your stage; channel nerves into presence", "Verify the easy-looking questions too"},
			Recovery:    []string{"Celebrate finishing regardless of feel", "Wait for real scores before the victory lap"},
		},
	},
	{
		Sign:      Virgo,
		Element:   Earth,
		Modality:  Mutable,
		DateRange: DateRange{Start: "08-23", End: "09-22"},
		Traits: Traits{
			TestTakingStyle:      []string{"Detail-first", "Systematic elimination", "Checklist-driven"},
			Strengths:            []string{"Catches trap answers others miss", "Disciplined review habits"},
			Challenges:           []string{"Perfectionism burns the clock", "Over-prepares minor topics"},
			MercuryRxSensitivity: SensitivityHigh,
			OptimalMoonPhases:    []string{"Waning Gibbous", "Third Quarter"},
			BeneficialPlanets:    []string{"Mercury", "Saturn"},
			ChallengingPlanets:   []string{"Jupiter"},
		},
		PersonalizedAdvice: Advice{
			Preparation: []string{"Cap review passes at two per topic", "Practice letting imperfect answers stand"},
			TestDay:     []string{"Set a per-passage time budget and honor it", "Flag and move on instead of polishing"},
			Recovery:    []string{"List three things that went right first", "Schedule the error-log review for two days later"},
		},
	},
	{
		Sign:      Libra,
		Element:   Air,
		Modality:  Cardinal,
		DateRange: DateRange{Start: "09-23", End: "10-22"},
		Traits: Traits{
			TestTakingStyle:      []string{"Weighs options carefully", "Balanced pacing", "Calm demeanor"},
			Strengths:            []string{"Fair hearing for every answer choice", "Rarely rattled by hard passages"},
			Challenges:           []string{"Struggles to pick between two finalists", "Defers too long on ambiguous questions"},
			MercuryRxSensitivity: SensitivityMedium,
			OptimalMoonPhases:    []string{"First Quarter", "Waxing Gibbous"},
			BeneficialPlanets:    []string{"Venus", "Mercury"},
			ChallengingPlanets:   []string{"Pluto"},
		},
		PersonalizedAdvice: Advice{
			Preparation: []string{"Drill two-finalist tiebreak rules until automatic", "Practice deciding within a count of ten"},
			TestDay:     []string{"When torn, pick the choice answering the question asked", "Keep momentum; indecision compounds"},
			Recovery:    []string{"Balance the debrief: one strength per weakness", "Do something aesthetically restorative"},
		},
	},
	{
		Sign:      Scorpio,
		Element:   Water,
		Modality:  Fixed,
		DateRange: DateRange{Start: "10-23", End: "11-21"},
		Traits: Traits{
			TestTakingStyle:      []string{"Intense focus", "All-or-nothing engagement", "Strategic"},
			Strengths:            []string{"Locks in under pressure", "Probes question intent like an interrogation"},
			Challenges:           []string{"Fixates on suspected trick questions", "Depletes reserves before the final section"},
			MercuryRxSensitivity: SensitivityLow,
			OptimalMoonPhases:    []string{"New Moon", "Waning Crescent"},
			BeneficialPlanets:    []string{"Pluto", "Mars"},
			ChallengingPlanets:   []string{"Venus"},
		},
		PersonalizedAdvice: Advice{
			Preparation: []string{"Train energy pacing across four sections", "Practice releasing questions that feel like traps"},
			TestDay:     []string{"Ration intensity; save a reserve for the last section", "Trust preparation over suspicion"},
			Recovery:    []string{"Full disconnection for the rest of the day", "Channel the post-test intensity into something unrelated"},
		},
	},
	{
		Sign:      Sagittarius,
		Element:   Fire,
		Modality:  Mutable,
		DateRange: DateRange{Start: "11-22", End: "12-21"},
		Traits: Traits{
			TestTakingStyle:      []string{"Big-picture reader", "Optimistic guesser", "Fast mover"},
			Strengths:            []string{"Sees the passage's main idea instantly", "Unfazed by hard questions"},
			Challenges:           []string{"Skims past qualifying words", "Careless on detail questions"},
			MercuryRxSensitivity: SensitivityMedium,
			OptimalMoonPhases:    []string{"Waxing Crescent", "Full Moon"},
			BeneficialPlanets:    []string{"Jupiter", "Sun"},
			ChallengingPlanets:   []string{"Mercury"},
		},
		PersonalizedAdvice: Advice{
			Preparation: []string{"Drill EXCEPT/NOT question stems deliberately", "Pair big-picture reads with one detail pass"},
			TestDay:     []string{"Underline qualifiers in every stem", "Keep the optimism; verify the details"},
			Recovery:    []string{"Get outdoors and move", "Log detail misses while memory is fresh"},
		},
	},
	{
		Sign:      Capricorn,
		Element:   Earth,
		Modality:  Cardinal,
		DateRange: DateRange{Start: "12-22", End: "01-19"},
		Traits: Traits{
			TestTakingStyle:      []string{"Disciplined", "Goal-anchored", "Grinds through adversity"},
			Strengths:            []string{"Executes the plan regardless of conditions", "Strong endurance in the final hour"},
			Challenges:           []string{"Rigid when a section defies the plan", "Underrates rest in the final week"},
			MercuryRxSensitivity: SensitivityLow,
			OptimalMoonPhases:    []string{"Third Quarter", "Waning Gibbous"},
			BeneficialPlanets:    []string{"Saturn", "Venus"},
			ChallengingPlanets:   []string{"Moon"},
		},
		PersonalizedAdvice: Advice{
			Preparation: []string{"Schedule rest days like study days", "Build one contingency plan per section"},
			TestDay:     []string{"Work the plan; adapt only at section breaks", "Treat the last section as the one that counts"},
			Recovery:    []string{"Mark the milestone properly before moving on", "Review effort allocation, not just accuracy"},
		},
	},
	{
		Sign:      Aquarius,
		Element:   Air,
		Modality:  Fixed,
		DateRange: DateRange{Start: "01-20", End: "02-18"},
		Traits: Traits{
			TestTakingStyle:      []string{"Unconventional reasoning", "Detached calm", "Pattern spotter"},
			Strengths:            []string{"Novel passages play to strength", "Emotionally level through surprises"},
			Challenges:           []string{"Overthinks straightforward questions", "Bored by rote sections"},
			MercuryRxSensitivity: SensitivityMedium,
			OptimalMoonPhases:    []string{"Waning Crescent", "First Quarter"},
			BeneficialPlanets:    []string{"Uranus", "Mercury"},
			ChallengingPlanets:   []string{"Sun"},
		},
		PersonalizedAdvice: Advice{
			Preparation: []string{"Mix in timed drills to ground the experiments", "Practice taking the obvious answer when it is obvious"},
			TestDay:     []string{"Simple question, simple answer; save creativity for hard ones", "Use the break to stretch and depressurize"},
			Recovery:    []string{"Decompress with something genuinely novel", "Note which clever routes paid off and which cost time"},
		},
	},
	{
		Sign:      Pisces,
		Element:   Water,
		Modality:  Mutable,
		DateRange: DateRange{Start: "02-19", End: "03-20"},
		Traits: Traits{
			TestTakingStyle:      []string{"Intuitive first reads", "Absorbs passage tone", "Flexible"},
			Strengths:            []string{"First instincts are often right", "Empathic read on author intent"},
			Challenges:           []string{"Porous focus in noisy rooms", "Talks self out of correct answers"},
			MercuryRxSensitivity: SensitivityHigh,
			OptimalMoonPhases:    []string{"Full Moon", "Waning Gibbous"},
			BeneficialPlanets:    []string{"Neptune", "Jupiter"},
			ChallengingPlanets:   []string{"Saturn"},
		},
		PersonalizedAdvice: Advice{
			Preparation: []string{"Track how often first answers were right", "Practice with mild background noise"},
			TestDay:     []string{"Honor the first instinct unless you find hard evidence", "Use earplugs if the room allows them"},
			Recovery:    []string{"Quiet solo time before any debrief", "Write impressions down, then set them aside"},
		},
	},
}

// Profiles returns the full static table in zodiac order.
func Profiles() []Profile {
	return profiles
}

// ProfileFor returns the static profile for a sign. Unknown signs fall back
// to Aries, mirroring the resolver's defensive default.
func ProfileFor(sign Sign) Profile {
	for _, p := range profiles {
		if p.Sign == sign {
			return p
		}
	}
	return profiles[0]
}

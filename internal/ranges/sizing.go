package ranges

// SizingProfile describes what a bet size, relative to the pot, says about
// the bettor's holding, and how sharply it should narrow their range.
// RetainedFraction is the share of the current range weight kept after the
// bet: big bets polarize to a narrow top slice, small bets keep a wide range
// that still includes bluff candidates.
type SizingProfile struct {
	Label             string
	TypicalRange      string
	Polarization      string
	StrengthIndicator string
	RetainedFraction  float64
}

// AnalyzeBetSizing classifies a bet relative to the pot
func AnalyzeBetSizing(betSize, potSize float64) SizingProfile {
	if potSize <= 0 || betSize <= 0 {
		return SizingProfile{
			Label:             "No bet",
			TypicalRange:      "Full range",
			Polarization:      "None",
			StrengthIndicator: "Unknown",
			RetainedFraction:  1.0,
		}
	}

	ratio := betSize / potSize
	switch {
	case ratio < 0.33:
		return SizingProfile{
			Label:             "Small (< 1/3 pot)",
			TypicalRange:      "Wide range - blocking bet, thin value, or weak draw",
			Polarization:      "Merged (mixture of value and bluffs)",
			StrengthIndicator: "Usually weak to medium",
			RetainedFraction:  0.60,
		}
	case ratio < 0.5:
		return SizingProfile{
			Label:             "Small-Medium (1/3 - 1/2 pot)",
			TypicalRange:      "Moderate strength or drawing hands",
			Polarization:      "Slightly merged",
			StrengthIndicator: "Medium",
			RetainedFraction:  0.50,
		}
	case ratio < 0.75:
		return SizingProfile{
			Label:             "Medium (1/2 - 3/4 pot)",
			TypicalRange:      "Standard value bet or semi-bluff",
			Polarization:      "Balanced",
			StrengthIndicator: "Medium to strong",
			RetainedFraction:  0.40,
		}
	case ratio <= 1.0:
		return SizingProfile{
			Label:             "Large (3/4 - pot)",
			TypicalRange:      "Strong value or big draw",
			Polarization:      "Starting to polarize",
			StrengthIndicator: "Strong",
			RetainedFraction:  0.30,
		}
	case ratio <= 1.5:
		return SizingProfile{
			Label:             "Overbet (pot - 1.5x pot)",
			TypicalRange:      "Very strong or bluff",
			Polarization:      "Polarized",
			StrengthIndicator: "Very strong or air",
			RetainedFraction:  0.20,
		}
	default:
		return SizingProfile{
			Label:             "Massive overbet (> 1.5x pot)",
			TypicalRange:      "Nuts or complete bluff",
			Polarization:      "Extremely polarized",
			StrengthIndicator: "Nuts or nothing",
			RetainedFraction:  0.12,
		}
	}
}

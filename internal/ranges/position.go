package ranges

import (
	"fmt"
	"strings"
)

// Position is a seat relative to the button
type Position int

const (
	UnderTheGun Position = iota
	UnderTheGunPlusOne
	MiddlePosition
	MiddlePositionPlusOne
	Cutoff
	Button
	SmallBlind
	BigBlind
)

// PositionInfo describes a position for display purposes
type PositionInfo struct {
	Name             string
	Abbreviation     string
	Order            int
	Description      string
	RecommendedRange string
}

var positionInfos = map[Position]PositionInfo{
	UnderTheGun: {
		Name:             "Under the Gun",
		Abbreviation:     "UTG",
		Order:            1,
		Description:      "First to act preflop. Play very tight from here.",
		RecommendedRange: "~8-10% of hands",
	},
	UnderTheGunPlusOne: {
		Name:             "UTG+1",
		Abbreviation:     "UTG+1",
		Order:            2,
		Description:      "Second earliest position. Still play tight.",
		RecommendedRange: "~10-12% of hands",
	},
	MiddlePosition: {
		Name:             "Middle Position",
		Abbreviation:     "MP",
		Order:            3,
		Description:      "Middle position. Can open up slightly.",
		RecommendedRange: "~12-15% of hands",
	},
	MiddlePositionPlusOne: {
		Name:             "Middle Position +1",
		Abbreviation:     "MP+1",
		Order:            4,
		Description:      "Later middle position.",
		RecommendedRange: "~15-18% of hands",
	},
	Cutoff: {
		Name:             "Cutoff",
		Abbreviation:     "CO",
		Order:            5,
		Description:      "Second best position. Good for stealing.",
		RecommendedRange: "~20-25% of hands",
	},
	Button: {
		Name:             "Button",
		Abbreviation:     "BTN",
		Order:            6,
		Description:      "Best position! Act last postflop. Play wide.",
		RecommendedRange: "~35-50% of hands",
	},
	SmallBlind: {
		Name:             "Small Blind",
		Abbreviation:     "SB",
		Order:            7,
		Description:      "Forced bet, out of position postflop.",
		RecommendedRange: "Depends on action",
	},
	BigBlind: {
		Name:             "Big Blind",
		Abbreviation:     "BB",
		Order:            8,
		Description:      "Defends vs steals. Gets good pot odds.",
		RecommendedRange: "Wide defense range",
	},
}

// Info returns display metadata for the position
func (p Position) Info() PositionInfo {
	if info, ok := positionInfos[p]; ok {
		return info
	}
	return positionInfos[MiddlePosition]
}

// String returns the position's abbreviation
func (p Position) String() string {
	return p.Info().Abbreviation
}

// ParsePosition parses a position abbreviation like "UTG" or "btn"
func ParsePosition(s string) (Position, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "UTG":
		return UnderTheGun, nil
	case "UTG+1", "UTG1":
		return UnderTheGunPlusOne, nil
	case "MP":
		return MiddlePosition, nil
	case "MP+1", "MP1":
		return MiddlePositionPlusOne, nil
	case "CO":
		return Cutoff, nil
	case "BTN":
		return Button, nil
	case "SB":
		return SmallBlind, nil
	case "BB":
		return BigBlind, nil
	default:
		return 0, fmt.Errorf("unknown position %q", s)
	}
}

// openingShare is the fraction of starting hands a typical player plays from
// each position. It anchors the initial belief distribution: tight up front,
// wide on the button and in the big blind.
func openingShare(p Position) float64 {
	switch p {
	case UnderTheGun:
		return 0.10
	case UnderTheGunPlusOne:
		return 0.12
	case MiddlePosition:
		return 0.15
	case MiddlePositionPlusOne:
		return 0.18
	case Cutoff:
		return 0.25
	case Button:
		return 0.40
	case SmallBlind:
		return 0.30
	case BigBlind:
		return 0.45
	default:
		return 0.20
	}
}

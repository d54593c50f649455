package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/snakeio/core"
	"github.com/lixenwraith/snakeio/engine"
)

// mustHex parses a palette literal
func mustHex(s string) core.RGB {
	c, err := core.ParseHex(s)
	if err != nil {
		panic(err)
	}
	return c
}

// Board
var (
	RgbBackground = mustHex("#111111")
	RgbGrid       = mustHex("#1b1b1b")
	RgbText       = mustHex("#f7f7f7")
	RgbTextDim    = mustHex("#9a9a9a")
	RgbHighlight  = mustHex("#ffd54a")
	RgbPanel      = mustHex("#181818")
	RgbPanelEdge  = mustHex("#444444")
)

// Snake details
var (
	RgbTongue = mustHex("#ff4d4d")
	RgbEye    = mustHex("#101010")
)

// Food
var (
	RgbGrass   = mustHex("#3bff5b")
	RgbGrape   = mustHex("#a64dff")
	RgbStem    = mustHex("#6b4f2a")
	RgbBomb    = mustHex("#ff3030")
	RgbSpark1  = mustHex("#ffea6e")
	RgbSpark2  = mustHex("#ff7b2f")
	RgbUnknown = mustHex("#cccccc")
)

// Explosion
var (
	RgbExplosionTint = mustHex("#ffb450")
	RgbExplosionCore = mustHex("#fff4d2")
	RgbExplosionRing = mustHex("#ffb84d")
)

// FoodColor is the legend color of a food kind
func FoodColor(kind engine.FoodKind) core.RGB {
	switch kind {
	case engine.FoodGreen:
		return RgbGrass
	case engine.FoodPurple:
		return RgbGrape
	case engine.FoodBomb:
		return RgbBomb
	default:
		return RgbUnknown
	}
}

// ToTcell converts to a true-color tcell color
func ToTcell(c core.RGB) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

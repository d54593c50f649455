package engine

import (
	"time"

	"github.com/lixenwraith/snakeio/constants"
)

// Point is a grid cell
type Point struct {
	X, Y int
}

// Add returns p offset by d
func (p Point) Add(d Direction) Point {
	return Point{X: p.X + d.X, Y: p.Y + d.Y}
}

// Direction is a unit step in one of the four cardinal directions
type Direction struct {
	X, Y int
}

// Cardinal directions
var (
	DirUp    = Direction{0, -1}
	DirDown  = Direction{0, 1}
	DirLeft  = Direction{-1, 0}
	DirRight = Direction{1, 0}
)

// Opposite returns the reversed direction
func (d Direction) Opposite() Direction {
	return Direction{X: -d.X, Y: -d.Y}
}

// SpeedPreset selects the base gameplay tick interval, the zero value is medium
type SpeedPreset int

const (
	SpeedMedium SpeedPreset = iota
	SpeedSlow
	SpeedFast
)

// String returns the preset name used by config and the title screen
func (s SpeedPreset) String() string {
	switch s {
	case SpeedSlow:
		return "slow"
	case SpeedFast:
		return "fast"
	default:
		return "medium"
	}
}

// Interval returns the preset tick interval
func (s SpeedPreset) Interval() time.Duration {
	switch s {
	case SpeedSlow:
		return constants.SpeedSlowInterval
	case SpeedFast:
		return constants.SpeedFastInterval
	default:
		return constants.SpeedMediumInterval
	}
}

// TuneFreq returns the confirmation blip pitch for the preset
func (s SpeedPreset) TuneFreq() float64 {
	switch s {
	case SpeedSlow:
		return constants.TuneSlowFreq
	case SpeedFast:
		return constants.TuneFastFreq
	default:
		return constants.TuneMediumFreq
	}
}

// ParseSpeed maps a preset name, unknown names fall back to medium
func ParseSpeed(name string) (SpeedPreset, bool) {
	switch name {
	case "slow", "1":
		return SpeedSlow, true
	case "medium", "2":
		return SpeedMedium, true
	case "fast", "3":
		return SpeedFast, true
	default:
		return SpeedMedium, false
	}
}

package input

// Intent is the semantic action behind a key press
type Intent uint8

const (
	IntentNone Intent = iota // Non-key event, ignored

	IntentQuit   // Ctrl+C, Ctrl+Q
	IntentEscape // ESC (quits from title and game over)

	// Steering
	IntentUp
	IntentDown
	IntentLeft
	IntentRight

	// Flow
	IntentPause   // Space: pause/resume, restart from game over
	IntentRestart // Enter

	// Speed presets
	IntentSpeedSlow   // 1
	IntentSpeedMedium // 2
	IntentSpeedFast   // 3

	IntentMute // m

	// Live food wander tuning
	IntentWanderSlower // [
	IntentWanderFaster // ]

	IntentOther // Any other key, starts the game from the title screen
)

var intentNames = [...]string{
	IntentNone:         "None",
	IntentQuit:         "Quit",
	IntentEscape:       "Escape",
	IntentUp:           "Up",
	IntentDown:         "Down",
	IntentLeft:         "Left",
	IntentRight:        "Right",
	IntentPause:        "Pause",
	IntentRestart:      "Restart",
	IntentSpeedSlow:    "SpeedSlow",
	IntentSpeedMedium:  "SpeedMedium",
	IntentSpeedFast:    "SpeedFast",
	IntentMute:         "Mute",
	IntentWanderSlower: "WanderSlower",
	IntentWanderFaster: "WanderFaster",
	IntentOther:        "Other",
}

// String returns the intent name
func (i Intent) String() string {
	if int(i) < len(intentNames) {
		return intentNames[i]
	}
	return "Unknown"
}

// IsDirection reports whether the intent steers the snake
func (i Intent) IsDirection() bool {
	return i >= IntentUp && i <= IntentRight
}

// IsSpeed reports whether the intent selects a speed preset
func (i Intent) IsSpeed() bool {
	return i >= IntentSpeedSlow && i <= IntentSpeedFast
}

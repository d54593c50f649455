package core

// SoundType represents the synthesized game cues
type SoundType int

const (
	SoundEatSmall SoundType = iota // Green food
	SoundEatLarge                  // Purple food, two rising blips
	SoundBomb                      // Noise burst, thud and echo
	SoundGameOver                  // Falling chirp
	SoundPause                     // Pause and resume
	SoundNewBest                   // Rising arpeggio on a beaten high score
	SoundStart                     // New game
	SoundTypeCount
)

var soundNames = [...]string{
	SoundEatSmall: "eat_small",
	SoundEatLarge: "eat_large",
	SoundBomb:     "bomb",
	SoundGameOver: "game_over",
	SoundPause:    "pause",
	SoundNewBest:  "new_best",
	SoundStart:    "start",
}

// String returns the cue name used in logs
func (s SoundType) String() string {
	if s >= 0 && int(s) < len(soundNames) {
		return soundNames[s]
	}
	return "unknown"
}

package engine

// Mode is the single source of truth for the active state machine state
type Mode int

const (
	ModeTitle Mode = iota
	ModePlaying
	ModePaused
	ModeExploding
	ModeGameOver
)

// String returns the mode name
func (m Mode) String() string {
	switch m {
	case ModeTitle:
		return "Title"
	case ModePlaying:
		return "Playing"
	case ModePaused:
		return "Paused"
	case ModeExploding:
		return "Exploding"
	case ModeGameOver:
		return "GameOver"
	default:
		return "Unknown"
	}
}

// validTransitions is the mode graph; restarts re-enter ModePlaying
var validTransitions = map[Mode][]Mode{
	ModeTitle:     {ModePlaying},
	ModePlaying:   {ModePaused, ModeExploding, ModeGameOver},
	ModePaused:    {ModePlaying},
	ModeExploding: {ModeGameOver},
	ModeGameOver:  {ModePlaying},
}

// CanTransition reports whether from -> to is an edge of the mode graph
func CanTransition(from, to Mode) bool {
	for _, m := range validTransitions[from] {
		if m == to {
			return true
		}
	}
	return false
}

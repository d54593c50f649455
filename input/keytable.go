package input

import (
	"unicode"

	"github.com/gdamore/tcell/v2"
)

// specialKeys maps non-rune keys
var specialKeys = map[tcell.Key]Intent{
	tcell.KeyCtrlC:  IntentQuit,
	tcell.KeyCtrlQ:  IntentQuit,
	tcell.KeyEscape: IntentEscape,
	tcell.KeyUp:     IntentUp,
	tcell.KeyDown:   IntentDown,
	tcell.KeyLeft:   IntentLeft,
	tcell.KeyRight:  IntentRight,
	tcell.KeyEnter:  IntentRestart,
}

// runeKeys maps printable keys, lowercase
var runeKeys = map[rune]Intent{
	'w': IntentUp,
	's': IntentDown,
	'a': IntentLeft,
	'd': IntentRight,
	' ': IntentPause,
	'1': IntentSpeedSlow,
	'2': IntentSpeedMedium,
	'3': IntentSpeedFast,
	'm': IntentMute,
	'[': IntentWanderSlower,
	']': IntentWanderFaster,
}

// FromKey maps a key event to an intent, unmapped keys become IntentOther
func FromKey(ev *tcell.EventKey) Intent {
	if ev == nil {
		return IntentNone
	}
	if ev.Key() == tcell.KeyRune {
		return FromRune(ev.Rune())
	}
	if intent, ok := specialKeys[ev.Key()]; ok {
		return intent
	}
	return IntentOther
}

// FromRune maps a printable key, case-insensitive
func FromRune(r rune) Intent {
	if intent, ok := runeKeys[unicode.ToLower(r)]; ok {
		return intent
	}
	return IntentOther
}

// FromEvent maps any terminal event, non-key events become IntentNone
func FromEvent(ev tcell.Event) Intent {
	if key, ok := ev.(*tcell.EventKey); ok {
		return FromKey(key)
	}
	return IntentNone
}

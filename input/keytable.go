package input

import "github.com/gdamore/tcell/v2"

// runeTable maps printable keys to intents
var runeTable = map[rune]IntentType{
	'q': IntentQuit,
	'm': IntentToggleMute,
	'd': IntentToggleOverlay,
	's': IntentStart,
	'x': IntentStop,
	'h': IntentAimLeft,
	'l': IntentAimRight,
	'j': IntentDrop,
	' ': IntentDrop,
}

// keyTable maps special keys to intents
var keyTable = map[tcell.Key]IntentType{
	tcell.KeyEscape: IntentQuit,
	tcell.KeyCtrlC:  IntentQuit,
	tcell.KeyEnter:  IntentStart,
	tcell.KeyLeft:   IntentAimLeft,
	tcell.KeyRight:  IntentAimRight,
	tcell.KeyDown:   IntentDrop,
}

// lookupKey resolves a key event to an intent
func lookupKey(ev *tcell.EventKey) IntentType {
	if ev.Key() == tcell.KeyRune {
		return runeTable[ev.Rune()]
	}
	return keyTable[ev.Key()]
}

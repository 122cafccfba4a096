// Package input translates terminal events into game requests
package input

// IntentType discriminates semantic actions
type IntentType uint8

const (
	IntentNone IntentType = iota

	// System-level intents, handled by the main loop
	IntentQuit          // q, Esc, Ctrl+C
	IntentToggleMute    // m
	IntentToggleOverlay // d
	IntentResize        // Terminal resize event

	// Lifecycle
	IntentStart // Enter, s
	IntentStop  // x

	// Play
	IntentAimLeft  // h, Left
	IntentAimRight // l, Right
	IntentDrop     // space, j, Down, mouse press
	IntentAimTo    // mouse motion over the field
)

var intentNames = map[IntentType]string{
	IntentNone:          "none",
	IntentQuit:          "quit",
	IntentToggleMute:    "toggle_mute",
	IntentToggleOverlay: "toggle_overlay",
	IntentResize:        "resize",
	IntentStart:         "start",
	IntentStop:          "stop",
	IntentAimLeft:       "aim_left",
	IntentAimRight:      "aim_right",
	IntentDrop:          "drop",
	IntentAimTo:         "aim_to",
}

func (t IntentType) String() string {
	if name, ok := intentNames[t]; ok {
		return name
	}
	return "unknown"
}

package app

// EventKind discriminates input events the controller understands
type EventKind uint8

const (
	EventNone      EventKind = iota // Resize, unmapped or control keys
	EventChar                       // Printable character in Rune
	EventBackspace                  // Delete before cursor
	EventDelete                     // Delete at cursor
	EventLeft                       // Cursor left
	EventRight                      // Cursor right
	EventHome                       // Cursor to start
	EventEnd                        // Cursor to end
	EventQuit                       // Esc, Ctrl+C
)

var eventNames = [...]string{
	EventNone:      "none",
	EventChar:      "char",
	EventBackspace: "backspace",
	EventDelete:    "delete",
	EventLeft:      "left",
	EventRight:     "right",
	EventHome:      "home",
	EventEnd:       "end",
	EventQuit:      "quit",
}

func (k EventKind) String() string {
	if int(k) < len(eventNames) {
		return eventNames[k]
	}
	return "unknown"
}

// Event is one unit of input
type Event struct {
	Kind EventKind
	Rune rune // Set for EventChar only
}

// Char builds a character event
func Char(r rune) Event {
	return Event{Kind: EventChar, Rune: r}
}

// Key builds a non-character event
func Key(kind EventKind) Event {
	return Event{Kind: kind}
}

// State is the controller lifecycle state
type State uint8

const (
	StateRunning State = iota
	StateQuitting
)

// Package input translates terminal key events into controller events.
package input

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/pangram/app"
)

// actionRegistry maps config action names to controller events
// "none" unbinds a key
var actionRegistry = map[string]app.EventKind{
	"none":      app.EventNone,
	"quit":      app.EventQuit,
	"backspace": app.EventBackspace,
	"delete":    app.EventDelete,
	"left":      app.EventLeft,
	"right":     app.EventRight,
	"home":      app.EventHome,
	"end":       app.EventEnd,
}

// quitKeys always quit; overrides may not rebind them
var quitKeys = map[tcell.Key]bool{
	tcell.KeyEscape: true,
	tcell.KeyCtrlC:  true,
}

// KeyTable maps special keys to controller events
// Printable runes always become character events
type KeyTable struct {
	Keys map[tcell.Key]app.EventKind
}

// DefaultKeyTable returns the default bindings
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		Keys: map[tcell.Key]app.EventKind{
			tcell.KeyEscape:     app.EventQuit,
			tcell.KeyCtrlC:      app.EventQuit,
			tcell.KeyBackspace:  app.EventBackspace,
			tcell.KeyBackspace2: app.EventBackspace,
			tcell.KeyDelete:     app.EventDelete,
			tcell.KeyLeft:       app.EventLeft,
			tcell.KeyRight:      app.EventRight,
			tcell.KeyHome:       app.EventHome,
			tcell.KeyEnd:        app.EventEnd,
		},
	}
}

// Apply merges config overrides of key name -> action name into the table.
// The table is unchanged when any entry is invalid. Escape and Ctrl+C stay
// bound to quit.
func (kt *KeyTable) Apply(overrides map[string]string) error {
	parsed := make(map[tcell.Key]app.EventKind, len(overrides))
	for keyStr, actionName := range overrides {
		k, ok := KeyByName(keyStr)
		if !ok {
			return fmt.Errorf("[keys] unknown key name: %q", keyStr)
		}
		kind, err := resolveAction(actionName)
		if err != nil {
			return fmt.Errorf("[keys] key %q: %w", keyStr, err)
		}
		if quitKeys[k] && kind != app.EventQuit {
			return fmt.Errorf("[keys] %q is reserved for quit", keyStr)
		}
		parsed[k] = kind
	}

	for k, kind := range parsed {
		if kind == app.EventNone {
			delete(kt.Keys, k)
		} else {
			kt.Keys[k] = kind
		}
	}
	return nil
}

// resolveAction converts an action name to an event kind
func resolveAction(name string) (app.EventKind, error) {
	kind, ok := actionRegistry[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return app.EventNone, fmt.Errorf("unknown action: %q", name)
	}
	return kind, nil
}

// Translate maps one key press to a controller event
func (kt *KeyTable) Translate(key tcell.Key, r rune, mod tcell.ModMask) app.Event {
	if key == tcell.KeyRune {
		if mod&tcell.ModCtrl != 0 {
			// Some terminals report Ctrl+letter as a modified rune
			return kt.ctrlRune(r)
		}
		return app.Char(r)
	}

	if kind, ok := kt.Keys[key]; ok {
		return app.Key(kind)
	}
	return app.Key(app.EventNone)
}

// ctrlRune resolves Ctrl+letter through the matching KeyCtrl binding
func (kt *KeyTable) ctrlRune(r rune) app.Event {
	switch {
	case r >= 'a' && r <= 'z':
		r -= 'a'
	case r >= 'A' && r <= 'Z':
		r -= 'A'
	default:
		return app.Key(app.EventNone)
	}
	if kind, ok := kt.Keys[tcell.KeyCtrlA+tcell.Key(r)]; ok {
		return app.Key(kind)
	}
	return app.Key(app.EventNone)
}

// TranslateEvent maps any terminal event; non-key events become EventNone
func (kt *KeyTable) TranslateEvent(ev tcell.Event) app.Event {
	if kev, ok := ev.(*tcell.EventKey); ok {
		return kt.Translate(kev.Key(), kev.Rune(), kev.Modifiers())
	}
	return app.Key(app.EventNone)
}

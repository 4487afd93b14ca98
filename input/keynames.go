package input

import (
	"strconv"
	"strings"

	"github.com/gdamore/tcell/v2"
)

// keyToName maps special keys to canonical config names
var keyToName = map[tcell.Key]string{
	tcell.KeyEscape:     "escape",
	tcell.KeyEnter:      "enter",
	tcell.KeyTab:        "tab",
	tcell.KeyBacktab:    "backtab",
	tcell.KeyBackspace:  "backspace",
	tcell.KeyBackspace2: "backspace2",
	tcell.KeyDelete:     "delete",

	tcell.KeyUp:     "up",
	tcell.KeyDown:   "down",
	tcell.KeyLeft:   "left",
	tcell.KeyRight:  "right",
	tcell.KeyHome:   "home",
	tcell.KeyEnd:    "end",
	tcell.KeyPgUp:   "page_up",
	tcell.KeyPgDn:   "page_down",
	tcell.KeyInsert: "insert",
}

// nameToKey is the reverse lookup, built once
var nameToKey map[string]tcell.Key

func init() {
	nameToKey = make(map[string]tcell.Key, len(keyToName)+40)
	for k, name := range keyToName {
		nameToKey[name] = k
	}

	// Ctrl+letter; ctrl_h, ctrl_i, ctrl_m share codes with backspace, tab, enter
	for i := 0; i < 26; i++ {
		k := tcell.KeyCtrlA + tcell.Key(i)
		name := "ctrl_" + string(rune('a'+i))
		nameToKey[name] = k
		if _, ok := keyToName[k]; !ok {
			keyToName[k] = name
		}
	}

	for i := 0; i < 12; i++ {
		k := tcell.KeyF1 + tcell.Key(i)
		name := "f" + strconv.Itoa(i+1)
		nameToKey[name] = k
		keyToName[k] = name
	}

	nameToKey["esc"] = tcell.KeyEscape
}

// KeyByName resolves a config key name, case-insensitive
func KeyByName(name string) (tcell.Key, bool) {
	k, ok := nameToKey[strings.ToLower(strings.TrimSpace(name))]
	return k, ok
}

// KeyName returns the canonical name of a special key, empty when unnamed
func KeyName(k tcell.Key) string {
	return keyToName[k]
}

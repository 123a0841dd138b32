package key

import (
	"fmt"
	"strings"
)

// Key represents a keyboard key.
// For character keys, use KeyRune and set the Rune field.
type Key uint16

const (
	// KeyNone represents no key.
	KeyNone Key = iota

	// Special keys
	KeyEscape
	KeyEnter
	KeyTab
	KeyBacktab
	KeyBackspace
	KeyDelete
	KeyInsert
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown

	// Arrow keys
	KeyUp
	KeyDown
	KeyLeft
	KeyRight

	// Function keys
	KeyF1
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyF9
	KeyF10
	KeyF11
	KeyF12

	// KeyRune is used for character keys (letters, numbers, punctuation,
	// space). The actual character is stored in the Rune field.
	KeyRune
)

var keyNames = [...]string{
	KeyNone:      "None",
	KeyEscape:    "Esc",
	KeyEnter:     "Enter",
	KeyTab:       "Tab",
	KeyBacktab:   "BackTab",
	KeyBackspace: "Backspace",
	KeyDelete:    "Delete",
	KeyInsert:    "Insert",
	KeyHome:      "Home",
	KeyEnd:       "End",
	KeyPageUp:    "PageUp",
	KeyPageDown:  "PageDown",
	KeyUp:        "Up",
	KeyDown:      "Down",
	KeyLeft:      "Left",
	KeyRight:     "Right",
	KeyF1:        "F1",
	KeyF2:        "F2",
	KeyF3:        "F3",
	KeyF4:        "F4",
	KeyF5:        "F5",
	KeyF6:        "F6",
	KeyF7:        "F7",
	KeyF8:        "F8",
	KeyF9:        "F9",
	KeyF10:       "F10",
	KeyF11:       "F11",
	KeyF12:       "F12",
	KeyRune:      "Rune",
}

// String returns a human-readable name for the key.
func (k Key) String() string {
	if int(k) < len(keyNames) {
		return keyNames[k]
	}
	return fmt.Sprintf("Key(%d)", k)
}

// keyNameMap maps the grammar's key names (lowercase) to a key and,
// for named characters, the rune it stands for.
var keyNameMap = map[string]struct {
	key  Key
	rune rune
}{
	"esc":       {KeyEscape, 0},
	"enter":     {KeyEnter, 0},
	"left":      {KeyLeft, 0},
	"right":     {KeyRight, 0},
	"up":        {KeyUp, 0},
	"down":      {KeyDown, 0},
	"home":      {KeyHome, 0},
	"end":       {KeyEnd, 0},
	"pageup":    {KeyPageUp, 0},
	"pagedown":  {KeyPageDown, 0},
	"backtab":   {KeyBacktab, 0},
	"backspace": {KeyBackspace, 0},
	"delete":    {KeyDelete, 0},
	"insert":    {KeyInsert, 0},
	"f1":        {KeyF1, 0},
	"f2":        {KeyF2, 0},
	"f3":        {KeyF3, 0},
	"f4":        {KeyF4, 0},
	"f5":        {KeyF5, 0},
	"f6":        {KeyF6, 0},
	"f7":        {KeyF7, 0},
	"f8":        {KeyF8, 0},
	"f9":        {KeyF9, 0},
	"f10":       {KeyF10, 0},
	"f11":       {KeyF11, 0},
	"f12":       {KeyF12, 0},
	"space":     {KeyRune, ' '},
	"hyphen":    {KeyRune, '-'},
	"minus":     {KeyRune, '-'},
	"tab":       {KeyTab, 0},
}

// lookupName resolves a multi-character key name (case-insensitive).
func lookupName(name string) (Key, rune, bool) {
	entry, ok := keyNameMap[strings.ToLower(name)]
	if !ok {
		return KeyNone, 0, false
	}
	return entry.key, entry.rune, true
}

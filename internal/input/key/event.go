package key

import (
	"fmt"
	"unicode"
)

// Event represents a single decoded key press.
type Event struct {
	// Key identifies the key pressed.
	Key Key

	// Rune is the character for KeyRune events, or the lowercase
	// letter for KeyCtrl events (Ctrl-C carries 'c').
	Rune rune
}

// RuneEvent creates an event for a character key.
func RuneEvent(r rune) Event {
	return Event{Key: KeyRune, Rune: r}
}

// CtrlEvent creates an event for a control character.
func CtrlEvent(letter rune) Event {
	return Event{Key: KeyCtrl, Rune: letter}
}

// SpecialEvent creates an event for a special key.
func SpecialEvent(k Key) Event {
	return Event{Key: k}
}

// IsRune returns true if this is a character key event.
func (e Event) IsRune() bool {
	return e.Key == KeyRune && e.Rune != 0
}

// IsPrintable returns true if this is a printable character.
func (e Event) IsPrintable() bool {
	return e.IsRune() && unicode.IsPrint(e.Rune)
}

// IsCtrl returns true if this is Ctrl plus the given letter.
func (e Event) IsCtrl(letter rune) bool {
	return e.Key == KeyCtrl && e.Rune == letter
}

// String returns a canonical representation, e.g. "a", "C-c", "Up".
func (e Event) String() string {
	switch e.Key {
	case KeyRune:
		return string(e.Rune)
	case KeyCtrl:
		return fmt.Sprintf("C-%c", e.Rune)
	default:
		return e.Key.String()
	}
}

// Package key decodes raw terminal bytes into discrete key events.
//
// The Decoder consumes exactly the bytes belonging to one logical key
// before yielding an Event, collapsing multi-byte escape sequences to a
// single event. Escape sequences with unrecognized suffixes decode to
// KeyUnknown so callers can ignore them without losing stream sync.
package key

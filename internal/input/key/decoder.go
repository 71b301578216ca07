package key

import (
	"bufio"
	"io"
)

// Control byte values handled outside the generic Ctrl range.
const (
	byteBackspace = 0x08
	byteEscape    = 0x1b
	byteDEL       = 0x7f
)

// Decoder turns a raw byte stream into key events.
//
// Next blocks until the bytes of one logical key have arrived. The
// decoder never reads past the end of the current sequence, so the
// underlying reader can be handed off between calls.
type Decoder struct {
	r *bufio.Reader
}

// NewDecoder creates a decoder reading from r.
func NewDecoder(r io.Reader) *Decoder {
	return &Decoder{r: bufio.NewReader(r)}
}

// Next decodes and returns the next key event.
// It returns the reader's error (typically io.EOF) once the stream ends.
func (d *Decoder) Next() (Event, error) {
	b, err := d.r.ReadByte()
	if err != nil {
		return Event{}, err
	}

	switch {
	case b == '\r' || b == '\n':
		return SpecialEvent(KeyEnter), nil
	case b == byteDEL || b == byteBackspace:
		return SpecialEvent(KeyBackspace), nil
	case b == byteEscape:
		return d.decodeEscape()
	case b < 0x20:
		return CtrlEvent(ctrlLetter(b)), nil
	case b < 0x80:
		return RuneEvent(rune(b)), nil
	}

	// Multi-byte UTF-8: put the lead byte back and decode the rune.
	if err := d.r.UnreadByte(); err != nil {
		return Event{}, err
	}
	r, _, err := d.r.ReadRune()
	if err != nil {
		return Event{}, err
	}
	return RuneEvent(r), nil
}

// decodeEscape consumes the remainder of an ESC-initiated sequence.
// Recognized suffixes map to arrows, Home, End and Delete; anything
// else is consumed and reported as KeyUnknown.
func (d *Decoder) decodeEscape() (Event, error) {
	b, err := d.r.ReadByte()
	if err != nil {
		if err == io.EOF {
			// Bare ESC at end of stream.
			return SpecialEvent(KeyUnknown), nil
		}
		return Event{}, err
	}

	switch b {
	case '[':
		return d.decodeCSI()
	case 'O':
		return d.decodeSS3()
	}
	return SpecialEvent(KeyUnknown), nil
}

func (d *Decoder) decodeCSI() (Event, error) {
	b, err := d.r.ReadByte()
	if err != nil {
		if err == io.EOF {
			return SpecialEvent(KeyUnknown), nil
		}
		return Event{}, err
	}

	switch b {
	case 'A':
		return SpecialEvent(KeyUp), nil
	case 'B':
		return SpecialEvent(KeyDown), nil
	case 'C':
		return SpecialEvent(KeyRight), nil
	case 'D':
		return SpecialEvent(KeyLeft), nil
	case 'H':
		return SpecialEvent(KeyHome), nil
	case 'F':
		return SpecialEvent(KeyEnd), nil
	case '1', '3', '4', '7', '8':
		return d.decodeTilde(b)
	}
	return SpecialEvent(KeyUnknown), nil
}

// decodeTilde handles the "ESC [ <digit> ~" forms.
func (d *Decoder) decodeTilde(digit byte) (Event, error) {
	b, err := d.r.ReadByte()
	if err != nil {
		if err == io.EOF {
			return SpecialEvent(KeyUnknown), nil
		}
		return Event{}, err
	}
	if b != '~' {
		return SpecialEvent(KeyUnknown), nil
	}

	switch digit {
	case '1', '7':
		return SpecialEvent(KeyHome), nil
	case '4', '8':
		return SpecialEvent(KeyEnd), nil
	case '3':
		return SpecialEvent(KeyDelete), nil
	}
	return SpecialEvent(KeyUnknown), nil
}

// decodeSS3 handles the "ESC O <byte>" forms some terminals emit for
// Home and End.
func (d *Decoder) decodeSS3() (Event, error) {
	b, err := d.r.ReadByte()
	if err != nil {
		if err == io.EOF {
			return SpecialEvent(KeyUnknown), nil
		}
		return Event{}, err
	}

	switch b {
	case 'H':
		return SpecialEvent(KeyHome), nil
	case 'F':
		return SpecialEvent(KeyEnd), nil
	}
	return SpecialEvent(KeyUnknown), nil
}

// ctrlLetter maps a control byte to its letter: 0x03 -> 'c'.
// Control bytes outside the Ctrl-A..Ctrl-Z range keep their raw value.
func ctrlLetter(b byte) rune {
	if b >= 0x01 && b <= 0x1a {
		return rune(b-0x01) + 'a'
	}
	return rune(b)
}

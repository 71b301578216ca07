package editline

// Capacity is the fixed number of character slots in a LineBuffer.
// Insertions beyond capacity are dropped, never grown.
const Capacity = 1024

// LineBuffer is a fixed-capacity character store with a logical length
// and a cursor offset. The invariant 0 <= cursor <= length <= Capacity
// holds after every operation.
type LineBuffer struct {
	slots  [Capacity]rune
	length int
	cursor int
}

// NewLineBuffer creates an empty buffer with the cursor at 0.
func NewLineBuffer() *LineBuffer {
	return &LineBuffer{}
}

// NewLineBufferFrom creates a buffer seeded with text, truncated to
// capacity, with the cursor at the end.
func NewLineBufferFrom(text string) *LineBuffer {
	b := &LineBuffer{}
	b.ReplaceAll(text)
	return b
}

// Len returns the number of valid characters.
func (b *LineBuffer) Len() int { return b.length }

// Cursor returns the insertion point, in [0, Len()].
func (b *LineBuffer) Cursor() int { return b.cursor }

// String returns the buffer contents.
func (b *LineBuffer) String() string {
	return string(b.slots[:b.length])
}

// SuffixFrom returns the contents from position from to the end.
func (b *LineBuffer) SuffixFrom(from int) string {
	if from < 0 || from > b.length {
		return ""
	}
	return string(b.slots[from:b.length])
}

// Insert places ch at the cursor, shifting the tail right, and advances
// the cursor. At capacity the character is dropped and Insert reports
// false; the buffer is unchanged.
func (b *LineBuffer) Insert(ch rune) bool {
	if b.length == Capacity {
		return false
	}
	for i := b.length; i > b.cursor; i-- {
		b.slots[i] = b.slots[i-1]
	}
	b.slots[b.cursor] = ch
	b.length++
	b.cursor++
	return true
}

// Backspace removes the character before the cursor, shifting the tail
// left. It reports false (no-op) when the cursor is at 0.
func (b *LineBuffer) Backspace() bool {
	if b.cursor == 0 {
		return false
	}
	for i := b.cursor; i < b.length; i++ {
		b.slots[i-1] = b.slots[i]
	}
	b.length--
	b.cursor--
	return true
}

// DeleteForward removes the character at the cursor, shifting the tail
// left. The cursor does not move. It reports false (no-op) when the
// cursor is at the end.
func (b *LineBuffer) DeleteForward() bool {
	if b.cursor == b.length {
		return false
	}
	for i := b.cursor + 1; i < b.length; i++ {
		b.slots[i-1] = b.slots[i]
	}
	b.length--
	return true
}

// MoveLeft moves the cursor one position left, reporting false at the
// start of the line.
func (b *LineBuffer) MoveLeft() bool {
	if b.cursor == 0 {
		return false
	}
	b.cursor--
	return true
}

// MoveRight moves the cursor one position right, reporting false at the
// end of the line.
func (b *LineBuffer) MoveRight() bool {
	if b.cursor == b.length {
		return false
	}
	b.cursor++
	return true
}

// MoveHome moves the cursor to 0, reporting false if already there.
func (b *LineBuffer) MoveHome() bool {
	if b.cursor == 0 {
		return false
	}
	b.cursor = 0
	return true
}

// MoveEnd moves the cursor to the end, reporting false if already there.
func (b *LineBuffer) MoveEnd() bool {
	if b.cursor == b.length {
		return false
	}
	b.cursor = b.length
	return true
}

// ReplaceAll overwrites the buffer with text, truncated to capacity,
// and places the cursor at the end. An empty string clears the buffer.
func (b *LineBuffer) ReplaceAll(text string) {
	b.length = 0
	for _, ch := range text {
		if b.length == Capacity {
			break
		}
		b.slots[b.length] = ch
		b.length++
	}
	b.cursor = b.length
}

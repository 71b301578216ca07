package editline

import (
	"strings"
	"testing"
)

// checkInvariant verifies 0 <= cursor <= length <= Capacity.
func checkInvariant(t *testing.T, b *LineBuffer) {
	t.Helper()
	if b.Cursor() < 0 || b.Cursor() > b.Len() || b.Len() > Capacity {
		t.Fatalf("invariant violated: cursor=%d length=%d capacity=%d",
			b.Cursor(), b.Len(), Capacity)
	}
}

func TestInsertAtEnd(t *testing.T) {
	b := NewLineBuffer()
	for _, ch := range "abc" {
		if !b.Insert(ch) {
			t.Fatalf("Insert(%q) failed", ch)
		}
		checkInvariant(t, b)
	}
	if got := b.String(); got != "abc" {
		t.Errorf("content = %q, want %q", got, "abc")
	}
	if b.Cursor() != 3 {
		t.Errorf("cursor = %d, want 3", b.Cursor())
	}
}

func TestInsertMidLine(t *testing.T) {
	b := NewLineBufferFrom("ac")
	b.MoveLeft()
	b.Insert('b')
	checkInvariant(t, b)

	if got := b.String(); got != "abc" {
		t.Errorf("content = %q, want %q", got, "abc")
	}
	if b.Cursor() != 2 {
		t.Errorf("cursor = %d, want 2", b.Cursor())
	}
}

func TestInsertAtCapacityDropsCharacter(t *testing.T) {
	b := NewLineBufferFrom(strings.Repeat("x", Capacity))
	if b.Len() != Capacity {
		t.Fatalf("length = %d, want %d", b.Len(), Capacity)
	}

	if b.Insert('y') {
		t.Error("Insert at capacity should report false")
	}
	checkInvariant(t, b)
	if b.Len() != Capacity {
		t.Errorf("length = %d, want %d", b.Len(), Capacity)
	}
	if b.String() != strings.Repeat("x", Capacity) {
		t.Error("content changed by dropped insert")
	}
}

func TestBackspaceAtStartIsNoop(t *testing.T) {
	b := NewLineBufferFrom("abc")
	b.MoveHome()

	if b.Backspace() {
		t.Error("Backspace at cursor 0 should report false")
	}
	checkInvariant(t, b)
	if got := b.String(); got != "abc" {
		t.Errorf("content = %q, want %q", got, "abc")
	}
	if b.Cursor() != 0 {
		t.Errorf("cursor = %d, want 0", b.Cursor())
	}
}

func TestBackspaceMidLine(t *testing.T) {
	b := NewLineBufferFrom("abc")
	b.MoveLeft()

	if !b.Backspace() {
		t.Fatal("Backspace should succeed")
	}
	checkInvariant(t, b)
	if got := b.String(); got != "ac" {
		t.Errorf("content = %q, want %q", got, "ac")
	}
	if b.Cursor() != 1 {
		t.Errorf("cursor = %d, want 1", b.Cursor())
	}
}

func TestDeleteForwardAtEndIsNoop(t *testing.T) {
	b := NewLineBufferFrom("abc")

	if b.DeleteForward() {
		t.Error("DeleteForward at end should report false")
	}
	checkInvariant(t, b)
	if got := b.String(); got != "abc" {
		t.Errorf("content = %q, want %q", got, "abc")
	}
}

func TestDeleteForward(t *testing.T) {
	b := NewLineBufferFrom("abc")
	b.MoveHome()

	if !b.DeleteForward() {
		t.Fatal("DeleteForward should succeed")
	}
	checkInvariant(t, b)
	if got := b.String(); got != "bc" {
		t.Errorf("content = %q, want %q", got, "bc")
	}
	if b.Cursor() != 0 {
		t.Errorf("cursor = %d, want 0 (unchanged)", b.Cursor())
	}
}

func TestCursorMovement(t *testing.T) {
	b := NewLineBufferFrom("ab")

	if b.MoveRight() {
		t.Error("MoveRight at end should report false")
	}
	if !b.MoveLeft() || !b.MoveLeft() {
		t.Fatal("MoveLeft should succeed twice")
	}
	if b.MoveLeft() {
		t.Error("MoveLeft at start should report false")
	}
	if !b.MoveEnd() {
		t.Fatal("MoveEnd should succeed")
	}
	if b.Cursor() != 2 {
		t.Errorf("cursor = %d, want 2", b.Cursor())
	}
	if b.MoveEnd() {
		t.Error("MoveEnd at end should report false")
	}
	if !b.MoveHome() {
		t.Fatal("MoveHome should succeed")
	}
	if b.Cursor() != 0 {
		t.Errorf("cursor = %d, want 0", b.Cursor())
	}
	if b.MoveHome() {
		t.Error("MoveHome at start should report false")
	}
	checkInvariant(t, b)
}

func TestReplaceAll(t *testing.T) {
	b := NewLineBufferFrom("short")

	b.ReplaceAll("longer text")
	checkInvariant(t, b)
	if got := b.String(); got != "longer text" {
		t.Errorf("content = %q, want %q", got, "longer text")
	}
	if b.Cursor() != b.Len() {
		t.Errorf("cursor = %d, want end %d", b.Cursor(), b.Len())
	}

	b.ReplaceAll("")
	checkInvariant(t, b)
	if b.Len() != 0 || b.Cursor() != 0 {
		t.Errorf("clear left length=%d cursor=%d", b.Len(), b.Cursor())
	}
}

func TestReplaceAllTruncatesToCapacity(t *testing.T) {
	b := NewLineBuffer()
	b.ReplaceAll(strings.Repeat("z", Capacity+10))
	checkInvariant(t, b)
	if b.Len() != Capacity {
		t.Errorf("length = %d, want %d", b.Len(), Capacity)
	}
	if b.Cursor() != Capacity {
		t.Errorf("cursor = %d, want %d", b.Cursor(), Capacity)
	}
}

func TestInvariantAcrossOperationSequence(t *testing.T) {
	b := NewLineBuffer()
	ops := []func() bool{
		func() bool { return b.Insert('a') },
		func() bool { return b.Insert('b') },
		func() bool { return b.MoveLeft() },
		func() bool { return b.Insert('x') },
		func() bool { return b.Backspace() },
		func() bool { return b.DeleteForward() },
		func() bool { return b.MoveHome() },
		func() bool { return b.Backspace() },
		func() bool { return b.DeleteForward() },
		func() bool { return b.MoveEnd() },
		func() bool { b.ReplaceAll("reset"); return true },
		func() bool { return b.MoveLeft() },
		func() bool { return b.DeleteForward() },
	}

	for _, op := range ops {
		op()
		checkInvariant(t, b)
	}
}

func TestSuffixFrom(t *testing.T) {
	b := NewLineBufferFrom("hello")

	if got := b.SuffixFrom(2); got != "llo" {
		t.Errorf("SuffixFrom(2) = %q, want %q", got, "llo")
	}
	if got := b.SuffixFrom(5); got != "" {
		t.Errorf("SuffixFrom(5) = %q, want empty", got)
	}
	if got := b.SuffixFrom(-1); got != "" {
		t.Errorf("SuffixFrom(-1) = %q, want empty", got)
	}
}

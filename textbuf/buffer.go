// Package textbuf implements a single-line editable rune buffer with a clamped cursor.
//
// The buffer stores characters as typed. Case folding and letter filtering are
// left to callers.
package textbuf

import (
	"errors"
	"fmt"
	"math"
)

// DefaultLimit is the length bound used when New is given a non-positive limit
const DefaultLimit = math.MaxInt32

// ErrCapacity is returned by Insert when the buffer is full
var ErrCapacity = errors.New("text buffer at capacity")

// Buffer holds text and the insertion point
type Buffer struct {
	text   []rune
	cursor int // Position before which the next rune lands, 0..len(text)
	limit  int
}

// New creates an empty buffer holding at most limit runes
func New(limit int) *Buffer {
	if limit <= 0 {
		limit = DefaultLimit
	}
	return &Buffer{limit: limit}
}

// clamp restores 0 <= cursor <= len(text)
func (b *Buffer) clamp() {
	if b.cursor < 0 {
		b.cursor = 0
	}
	if b.cursor > len(b.text) {
		b.cursor = len(b.text)
	}
}

// --- Value access ---

// String returns the current text
func (b *Buffer) String() string {
	return string(b.text)
}

// Runes returns a copy of the current text
func (b *Buffer) Runes() []rune {
	out := make([]rune, len(b.text))
	copy(out, b.text)
	return out
}

// Len returns the number of runes in the buffer
func (b *Buffer) Len() int {
	return len(b.text)
}

// Cursor returns the insertion point
func (b *Buffer) Cursor() int {
	return b.cursor
}

// --- Mutation ---

// Insert adds r at the cursor and advances past it
func (b *Buffer) Insert(r rune) error {
	if len(b.text) >= b.limit {
		return fmt.Errorf("%w: %d runes", ErrCapacity, b.limit)
	}
	b.text = append(b.text, 0)
	copy(b.text[b.cursor+1:], b.text[b.cursor:])
	b.text[b.cursor] = r
	b.cursor++
	b.clamp()
	return nil
}

// DeleteBefore removes the rune before the cursor
// Returns false with nothing to delete
func (b *Buffer) DeleteBefore() (rune, bool) {
	if b.cursor == 0 {
		return 0, false
	}
	r := b.text[b.cursor-1]
	b.text = append(b.text[:b.cursor-1], b.text[b.cursor:]...)
	b.cursor--
	b.clamp()
	return r, true
}

// DeleteAfter removes the rune at the cursor
// Returns false when the cursor is at the end
func (b *Buffer) DeleteAfter() (rune, bool) {
	if b.cursor >= len(b.text) {
		return 0, false
	}
	b.MoveRight()
	return b.DeleteBefore()
}

// --- Cursor movement ---

// MoveLeft moves the cursor one rune left, no-op at start
func (b *Buffer) MoveLeft() {
	if b.cursor > 0 {
		b.cursor--
	}
}

// MoveRight moves the cursor one rune right, no-op at end
func (b *Buffer) MoveRight() {
	if b.cursor < len(b.text) {
		b.cursor++
	}
}

// MoveHome moves the cursor before the first rune
func (b *Buffer) MoveHome() {
	b.cursor = 0
}

// MoveEnd moves the cursor after the last rune
func (b *Buffer) MoveEnd() {
	b.cursor = len(b.text)
}

// --- Layout ---

// CursorScreenPosition maps the cursor onto a grid of width columns with hard
// wrapping. A cursor at an exact multiple of width sits at column 0 of the next
// row. Widths below 1 are treated as 1.
func (b *Buffer) CursorScreenPosition(width int) (col, row int) {
	return ScreenPosition(b.cursor, width)
}

// ScreenPosition maps a rune offset onto a hard-wrapped grid
func ScreenPosition(offset, width int) (col, row int) {
	if width < 1 {
		width = 1
	}
	return offset % width, offset / width
}

// Package app routes input events to the text buffer and letter tracker and
// keeps both in step.
package app

import (
	"fmt"
	"unicode"

	"github.com/lixenwraith/pangram/alphabet"
	"github.com/lixenwraith/pangram/textbuf"
)

// Options configures a Controller
type Options struct {
	// MaxLength bounds the buffer, 0 selects textbuf.DefaultLimit
	MaxLength int

	// OnCompletionChange is called when the pangram flag flips
	OnCompletionChange func(complete bool)
}

// Controller owns the buffer and tracker exclusively.
// For every letter the tracker count equals the number of case-folded
// occurrences in the buffer.
type Controller struct {
	tracker  *alphabet.Tracker
	buffer   *textbuf.Buffer
	state    State
	complete bool

	onCompletionChange func(bool)
}

// NewController creates a controller with an empty buffer
func NewController(opts Options) *Controller {
	return &Controller{
		tracker:            alphabet.New(),
		buffer:             textbuf.New(opts.MaxLength),
		state:              StateRunning,
		onCompletionChange: opts.OnCompletionChange,
	}
}

// HandleEvent applies one event. Errors are routing bugs or capacity limits and
// leave the controller in a state the caller should not continue from.
func (c *Controller) HandleEvent(ev Event) error {
	if c.state == StateQuitting {
		return nil
	}

	var err error
	switch ev.Kind {
	case EventChar:
		err = c.onChar(ev.Rune)
	case EventBackspace:
		r, ok := c.buffer.DeleteBefore()
		err = c.forget(r, ok)
	case EventDelete:
		r, ok := c.buffer.DeleteAfter()
		err = c.forget(r, ok)
	case EventLeft:
		c.buffer.MoveLeft()
	case EventRight:
		c.buffer.MoveRight()
	case EventHome:
		c.buffer.MoveHome()
	case EventEnd:
		c.buffer.MoveEnd()
	case EventQuit:
		c.state = StateQuitting
		return nil
	}
	if err != nil {
		return fmt.Errorf("%s event: %w", ev.Kind, err)
	}

	c.refresh()
	return nil
}

// onChar inserts r and records it when it is an ASCII letter
func (c *Controller) onChar(r rune) error {
	if unicode.IsControl(r) {
		return nil
	}
	if err := c.buffer.Insert(r); err != nil {
		return err
	}
	if letter, ok := alphabet.Fold(r); ok {
		return c.tracker.Add(letter)
	}
	return nil
}

// forget releases a removed rune from the tracker
func (c *Controller) forget(r rune, removed bool) error {
	if !removed {
		return nil
	}
	if letter, ok := alphabet.Fold(r); ok {
		return c.tracker.Remove(letter)
	}
	return nil
}

// refresh recomputes the completion flag and reports transitions
func (c *Controller) refresh() {
	complete := c.tracker.IsComplete()
	if complete == c.complete {
		return
	}
	c.complete = complete
	if c.onCompletionChange != nil {
		c.onCompletionChange(complete)
	}
}

// --- Read-only views ---

// IsQuitting reports whether the loop must stop
func (c *Controller) IsQuitting() bool {
	return c.state == StateQuitting
}

// DisplayedText returns the buffer contents as typed
func (c *Controller) DisplayedText() string {
	return c.buffer.String()
}

// Cursor returns the buffer insertion point
func (c *Controller) Cursor() int {
	return c.buffer.Cursor()
}

// CursorScreenPosition returns the cursor cell for a text area width columns wide
func (c *Controller) CursorScreenPosition(width int) (col, row int) {
	return c.buffer.CursorScreenPosition(width)
}

// IsPangramComplete reports whether all 26 letters are present
func (c *Controller) IsPangramComplete() bool {
	return c.tracker.IsComplete()
}

// LettersSnapshot returns presence per letter, index 0 is 'A'
func (c *Controller) LettersSnapshot() [alphabet.Size]bool {
	return c.tracker.Snapshot()
}

// Missing returns the letters still absent
func (c *Controller) Missing() []rune {
	return c.tracker.Missing()
}

// LetterCount returns the tracked count of an uppercase letter
func (c *Controller) LetterCount(letter rune) int {
	return c.tracker.Count(letter)
}

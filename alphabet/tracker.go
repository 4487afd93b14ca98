package alphabet

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// Size is the number of tracked letters
const Size = 26

// Placeholder is shown in place of a letter that has not been typed yet
const Placeholder = '.'

// Sentinel errors
var (
	ErrOutOfRange         = errors.New("letter outside 'A'..'Z'")
	ErrInvariantViolation = errors.New("remove on letter with zero count")
	ErrOverflow           = errors.New("letter count at maximum")
)

// Tracker counts occurrences of each uppercase Latin letter
// Zero value is an empty tracker
type Tracker struct {
	counts [Size]uint32 // counts[i] is letter 'A'+i
}

// New creates an empty tracker
func New() *Tracker {
	return &Tracker{}
}

// index maps an uppercase letter to its slot
func index(letter rune) (int, error) {
	if letter < 'A' || letter > 'Z' {
		return 0, fmt.Errorf("%w: %q", ErrOutOfRange, letter)
	}
	return int(letter - 'A'), nil
}

// Add records one occurrence of letter
func (t *Tracker) Add(letter rune) error {
	i, err := index(letter)
	if err != nil {
		return err
	}
	if t.counts[i] == math.MaxUint32 {
		return fmt.Errorf("%w: %q", ErrOverflow, letter)
	}
	t.counts[i]++
	return nil
}

// Remove drops one occurrence of letter
// A zero count means the caller lost track of the buffer contents
func (t *Tracker) Remove(letter rune) error {
	i, err := index(letter)
	if err != nil {
		return err
	}
	if t.counts[i] == 0 {
		return fmt.Errorf("%w: %q", ErrInvariantViolation, letter)
	}
	t.counts[i]--
	return nil
}

// IsComplete reports whether every letter has been seen at least once
func (t *Tracker) IsComplete() bool {
	for _, c := range t.counts {
		if c == 0 {
			return false
		}
	}
	return true
}

// Count returns the current count for letter, 0 when out of range
func (t *Tracker) Count(letter rune) int {
	i, err := index(letter)
	if err != nil {
		return 0
	}
	return int(t.counts[i])
}

// Snapshot returns presence per letter, index 0 is 'A'
func (t *Tracker) Snapshot() [Size]bool {
	var s [Size]bool
	for i, c := range t.counts {
		s[i] = c > 0
	}
	return s
}

// Missing returns the letters not yet present, in alphabet order
func (t *Tracker) Missing() []rune {
	var m []rune
	for i, c := range t.counts {
		if c == 0 {
			m = append(m, rune('A'+i))
		}
	}
	return m
}

// String renders the progress line: present letters shown, absent ones as Placeholder
func (t *Tracker) String() string {
	var sb strings.Builder
	sb.Grow(Size)
	for i, c := range t.counts {
		if c > 0 {
			sb.WriteRune(rune('A' + i))
		} else {
			sb.WriteRune(Placeholder)
		}
	}
	return sb.String()
}

// Fold returns the uppercase form of an ASCII letter
// Anything else, including non-ASCII letters, is not tracked
func Fold(r rune) (rune, bool) {
	switch {
	case r >= 'A' && r <= 'Z':
		return r, true
	case r >= 'a' && r <= 'z':
		return r - 'a' + 'A', true
	}
	return 0, false
}

package imaging

import (
	"fmt"
	"strings"
)

// Policy decides which raster an operation reads from.
type Policy int

const (
	// ComposeCurrent applies each operation to the current raster, so edits
	// accumulate until Revert.
	ComposeCurrent Policy = iota

	// DeriveOriginal applies each operation to the original raster, so every
	// edit replaces the previous one.
	DeriveOriginal
)

// String returns "current" or "original".
func (p Policy) String() string {
	switch p {
	case ComposeCurrent:
		return "current"
	case DeriveOriginal:
		return "original"
	default:
		return fmt.Sprintf("Policy(%d)", int(p))
	}
}

// ParsePolicy accepts "current" (or "") and "original".
func ParsePolicy(s string) (Policy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "current":
		return ComposeCurrent, nil
	case "original":
		return DeriveOriginal, nil
	default:
		return ComposeCurrent, fmt.Errorf("%w: unknown policy %q", ErrInvalidParameter, s)
	}
}

// State is the image being edited: one original raster and the current
// raster derived from it.
//
// State is a value. Load, Revert and Apply return an updated copy and never
// modify the receiver, so a failed Apply leaves the caller's state exactly as
// it was. The zero value holds no image and uses ComposeCurrent.
type State struct {
	original *Raster
	current  *Raster
	policy   Policy
}

// NewState returns an empty state that applies operations according to p.
func NewState(p Policy) State {
	return State{policy: p}
}

// Policy returns the composition policy of the state.
func (s State) Policy() Policy { return s.policy }

// Loaded reports whether a raster has been loaded.
func (s State) Loaded() bool { return s.original != nil }

// Load replaces both the original and the current raster with r.
// A nil raster clears the state.
func (s State) Load(r *Raster) State {
	s.original = r
	s.current = r
	return s
}

// Revert discards every edit and makes the current raster a copy of the original.
func (s State) Revert() State {
	if s.original == nil {
		return s
	}
	s.current = s.original.Clone()
	return s
}

// Original returns the loaded raster, if any.
func (s State) Original() (*Raster, bool) {
	return s.original, s.original != nil
}

// Current returns the raster to display, if any.
func (s State) Current() (*Raster, bool) {
	return s.current, s.current != nil
}

// Apply runs op against the raster selected by the policy and stores the
// result as the current raster.
//
// Without a loaded image the state is returned unchanged with
// ErrNoImageLoaded. When op fails the state is returned unchanged together
// with the operation error.
func (s State) Apply(op Operation) (State, error) {
	if !s.Loaded() {
		return s, ErrNoImageLoaded
	}
	base := s.current
	if s.policy == DeriveOriginal {
		base = s.original
	}
	out, err := op.Apply(base)
	if err != nil {
		return s, fmt.Errorf("%s: %w", op.Name(), err)
	}
	s.current = out
	return s, nil
}

package fov

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/samdwyer/cavern/internal/logger"
	"github.com/samdwyer/cavern/internal/world"
)

// State is the cache state of a Vision.
type State int

const (
	// NoFovYet means nothing has been computed for this viewer.
	NoFovYet State = iota
	// Cached means the visible mask is current for CachedAt.
	Cached
	// Expired means the next Refresh recomputes regardless of position.
	Expired
)

// String returns a human-readable state name.
func (s State) String() string {
	switch s {
	case NoFovYet:
		return "no_fov_yet"
	case Cached:
		return "cached"
	case Expired:
		return "expired"
	default:
		return "unknown"
	}
}

// Vision is one viewer's field of view and fog-of-war memory.
//
// The visible mask is cached by the position it was computed for. Memory is
// the union of every visible mask ever stored and is never cleared.
// A Vision is owned by a single viewer and is not safe for concurrent use.
type Vision struct {
	Radius int

	state   State
	key     world.Pos
	visible *Mask
	memory  *Mask
}

// NewVision creates a viewer with the given sight radius.
func NewVision(radius int) *Vision {
	return &Vision{Radius: radius}
}

// State returns the current cache state.
func (v *Vision) State() State { return v.state }

// CachedAt returns the position the visible mask was computed for and
// whether the cache is valid.
func (v *Vision) CachedAt() (world.Pos, bool) {
	return v.key, v.state == Cached
}

// Refresh recomputes the visible mask unless it is already cached for pos.
// It returns the current mask and whether a computation happened.
func (v *Vision) Refresh(level *world.Level, pos world.Pos) (*Mask, bool) {
	if v.state == Cached && v.key == pos {
		return v.visible, false
	}

	prev := v.state
	v.Update(Compute(level, pos, v.Radius))
	v.key = pos
	v.state = Cached

	logger.Log.WithFields(logrus.Fields{
		"component":  "fov",
		"observer":   pos.String(),
		"radius":     v.Radius,
		"prev_state": prev.String(),
	}).Trace("Field of view recomputed.")
	return v.visible, true
}

// Update stores mask as the visible mask and merges it into memory.
// The cache is not keyed by a position afterwards, so the next Refresh
// recomputes. It panics if mask does not match the dimensions of the
// memory accumulated so far.
func (v *Vision) Update(mask *Mask) {
	if v.memory != nil && v.memory.Dim() != mask.Dim() {
		panic(fmt.Sprintf("fov: mask %v does not match memory %v", mask.Dim(), v.memory.Dim()))
	}
	for p, seen := range mask.All() {
		if !seen {
			continue
		}
		if v.memory == nil {
			v.memory = newMask(mask.Dim())
		}
		v.memory.Set(p, true)
	}
	v.visible = mask
	v.state = Expired
}

// Expire drops the visible mask so the next Refresh recomputes. Call it when
// the level changes under the viewer. Memory is kept.
func (v *Vision) Expire() {
	v.visible = nil
	if v.state != NoFovYet {
		v.state = Expired
	}
}

// VisibleMask returns the current visible mask, or nil if there is none.
func (v *Vision) VisibleMask() *Mask { return v.visible }

// MemoryMask returns every cell ever seen, or nil before the first sighting.
func (v *Vision) MemoryMask() *Mask { return v.memory }

// IsVisible reports whether p is in the current visible mask.
func (v *Vision) IsVisible(p world.Pos) bool {
	return v.visible != nil && v.visible.IsValid(p) && v.visible.At(p)
}

// Remembers reports whether p has ever been visible.
func (v *Vision) Remembers(p world.Pos) bool {
	return v.memory != nil && v.memory.IsValid(p) && v.memory.At(p)
}

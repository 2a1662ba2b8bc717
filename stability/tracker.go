// Package stability decides when a simulation has stopped producing new states.
package stability

import (
	"time"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/torus-gol/model"
)

const (
	PolicySingle  = "single"
	PolicyHistory = "history"

	DefaultHistoryDepth = 3
	DefaultHold         = 1000 * time.Millisecond
)

// Tracker observes committed generations and reports when a reseed is due
type Tracker interface {
	// Observe records g as committed and reports whether the simulation is stuck
	Observe(g *model.Grid) bool
	// Reset forgets every recorded generation
	Reset()
	// Hold is how long a stuck generation should stay visible before the reseed
	Hold() time.Duration
	// Name identifies the policy
	Name() string
}

// New builds the tracker named by policy
func New(policy string, depth int, hold time.Duration) (Tracker, error) {
	switch policy {
	case PolicySingle:
		return NewSingleStep(), nil
	case PolicyHistory, "":
		return NewHistory(depth, hold), nil
	default:
		return nil, errors.Errorf("[stability.New] unknown policy %q", policy)
	}
}

// SingleStep reseeds as soon as a generation equals the one before it
type SingleStep struct {
	last *model.Grid
	seen bool
}

func NewSingleStep() *SingleStep {
	return &SingleStep{}
}

func (s *SingleStep) Observe(g *model.Grid) bool {
	stuck := s.seen && s.last.Equal(g)
	if s.last == nil || s.last.GetWidth() != g.GetWidth() || s.last.GetHeight() != g.GetHeight() {
		s.last = g.Clone()
	} else {
		s.last.CopyFrom(g)
	}
	s.seen = true
	return stuck
}

func (s *SingleStep) Reset() {
	s.seen = false
}

func (s *SingleStep) Hold() time.Duration {
	return 0
}

func (s *SingleStep) Name() string {
	return PolicySingle
}

// History keeps the last depth generations in a ring and reports stuck when a new
// generation matches the oldest one. It catches oscillators whose period divides depth.
type History struct {
	ring  []*model.Grid
	start int // index of the oldest entry
	size  int
	hold  time.Duration
}

func NewHistory(depth int, hold time.Duration) *History {
	if depth <= 0 {
		depth = DefaultHistoryDepth
	}
	if hold < 0 {
		hold = 0
	}
	return &History{ring: make([]*model.Grid, depth), hold: hold}
}

func (h *History) Observe(g *model.Grid) bool {
	stuck := h.size == len(h.ring) && h.ring[h.start].Equal(g)

	slot := (h.start + h.size) % len(h.ring)
	if h.size == len(h.ring) {
		// Full: overwrite the oldest entry and advance.
		slot = h.start
		h.start = (h.start + 1) % len(h.ring)
	} else {
		h.size++
	}
	h.store(slot, g)
	return stuck
}

func (h *History) store(slot int, g *model.Grid) {
	cur := h.ring[slot]
	if cur == nil || cur.GetWidth() != g.GetWidth() || cur.GetHeight() != g.GetHeight() {
		h.ring[slot] = g.Clone()
		return
	}
	cur.CopyFrom(g)
}

func (h *History) Reset() {
	h.start = 0
	h.size = 0
}

// Len returns the number of recorded generations
func (h *History) Len() int {
	return h.size
}

// Oldest returns the entry the next observation is compared against, or nil while filling
func (h *History) Oldest() *model.Grid {
	if h.size == 0 {
		return nil
	}
	return h.ring[h.start]
}

func (h *History) Hold() time.Duration {
	return h.hold
}

func (h *History) Name() string {
	return PolicyHistory
}

// Package undo keeps a bounded stack of tip collection snapshots.
package undo

import (
	"errors"

	"github.com/idilsaglam/mindtips/internal/model"
)

// DefaultDepth is how many snapshots are retained unless configured otherwise.
const DefaultDepth = 10

// ErrNothingToUndo is returned by Pop on an empty history.
var ErrNothingToUndo = errors.New("nothing to undo")

// History is a most-recent-last stack of snapshots. Oldest entries are evicted.
type History struct {
	stack [][]model.Tip
	depth int
}

// New returns an empty history holding at most depth snapshots.
// A non-positive depth falls back to DefaultDepth.
func New(depth int) *History {
	if depth <= 0 {
		depth = DefaultDepth
	}
	return &History{stack: make([][]model.Tip, 0, depth), depth: depth}
}

// Push stores a deep copy of tips.
func (h *History) Push(tips []model.Tip) {
	h.stack = append(h.stack, model.Clone(tips))
	if len(h.stack) > h.depth {
		h.stack = h.stack[1:]
	}
}

// Pop removes and returns the most recent snapshot.
func (h *History) Pop() ([]model.Tip, error) {
	if len(h.stack) == 0 {
		return nil, ErrNothingToUndo
	}
	last := h.stack[len(h.stack)-1]
	h.stack[len(h.stack)-1] = nil
	h.stack = h.stack[:len(h.stack)-1]
	return last, nil
}

func (h *History) Len() int { return len(h.stack) }
func (h *History) Cap() int { return h.depth }

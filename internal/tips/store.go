// Package tips holds the authoritative, ordered tip collection.
package tips

import (
	"errors"
	"slices"
	"strings"

	"github.com/idilsaglam/mindtips/internal/model"
)

var (
	// ErrEmptyInput is returned by Add for blank text.
	ErrEmptyInput = errors.New("empty tip")
	// ErrDuplicateTip is returned by Add when the text already exists, ignoring case.
	ErrDuplicateTip = errors.New("duplicate tip")
)

// Store is the in-memory tip collection. Not safe for concurrent use; callers
// drive it from a single event loop.
type Store struct {
	items []model.Tip
}

// New returns a store seeded with a copy of tips.
func New(tips []model.Tip) *Store {
	return &Store{items: model.Clone(tips)}
}

func (s *Store) Len() int { return len(s.items) }

// Add appends a non-favorite tip with the trimmed text. A typed favorite
// marker is stripped, otherwise the tip could not be told apart from a
// favorite on reload.
func (s *Store) Add(text string) error {
	text = stripMarker(text)
	if text == "" {
		return ErrEmptyInput
	}
	if s.ContainsFold(text) {
		return ErrDuplicateTip
	}
	s.items = append(s.items, model.Tip{Text: text})
	return nil
}

func stripMarker(text string) string {
	text = strings.TrimSpace(text)
	for {
		rest, ok := strings.CutPrefix(text, model.FavoriteMark)
		if !ok {
			return text
		}
		text = strings.TrimSpace(rest)
	}
}

// Remove deletes the first tip whose stored representation equals stored.
// A stripped display string will not match a favorite; that is a no-op.
func (s *Store) Remove(stored string) bool {
	i := s.indexStored(stored)
	if i < 0 {
		return false
	}
	s.items = slices.Delete(s.items, i, i+1)
	return true
}

// ToggleFavorite flips the favorite flag of the tip stored as stored.
func (s *Store) ToggleFavorite(stored string) bool {
	i := s.indexStored(stored)
	if i < 0 {
		return false
	}
	s.items[i] = s.items[i].Toggled()
	return true
}

// SortAlphabetically orders tips by their stored representation, ignoring case.
// Favorites therefore sort after plain text, the marker being non-ASCII.
func (s *Store) SortAlphabetically() {
	slices.SortStableFunc(s.items, func(a, b model.Tip) int {
		return strings.Compare(strings.ToLower(a.Stored()), strings.ToLower(b.Stored()))
	})
}

// ContainsFold reports whether any tip's text equals text, ignoring case.
func (s *Store) ContainsFold(text string) bool {
	for _, t := range s.items {
		if strings.EqualFold(t.Text, text) {
			return true
		}
	}
	return false
}

// View returns the tips in collection order, optionally favorites only.
func (s *Store) View(favoritesOnly bool) []model.Tip {
	out := make([]model.Tip, 0, len(s.items))
	for _, t := range s.items {
		if favoritesOnly && !t.Favorite {
			continue
		}
		out = append(out, t)
	}
	return out
}

// Snapshot returns a deep copy of the collection.
func (s *Store) Snapshot() []model.Tip { return model.Clone(s.items) }

// Replace swaps the whole collection, e.g. when restoring an undo snapshot.
func (s *Store) Replace(tips []model.Tip) { s.items = model.Clone(tips) }

func (s *Store) indexStored(stored string) int {
	return slices.IndexFunc(s.items, func(t model.Tip) bool { return t.Stored() == stored })
}

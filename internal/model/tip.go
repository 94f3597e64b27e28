package model

import "strings"

// FavoriteMark prefixes the stored representation of a favorite tip.
// Kept byte-compatible with existing tip files.
const FavoriteMark = "⭐ "

// Tip is the domain model for one piece of advice.
type Tip struct {
	Text     string
	Favorite bool
}

// Stored returns the line written to the tips file for t.
func (t Tip) Stored() string {
	if t.Favorite {
		return FavoriteMark + t.Text
	}
	return t.Text
}

// Toggled returns a copy of t with the favorite flag flipped.
func (t Tip) Toggled() Tip {
	t.Favorite = !t.Favorite
	return t
}

// ParseStored decodes one stored line. The marker is only recognised as a prefix.
func ParseStored(line string) Tip {
	if rest, ok := strings.CutPrefix(line, FavoriteMark); ok {
		return Tip{Text: rest, Favorite: true}
	}
	return Tip{Text: line}
}

// Clone returns an independent copy of tips. Never returns nil.
func Clone(tips []Tip) []Tip {
	out := make([]Tip, len(tips))
	copy(out, tips)
	return out
}

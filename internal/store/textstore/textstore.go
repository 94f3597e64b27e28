// Package textstore keeps tips in a line-oriented text file: one stored
// representation per line, no header, no escaping. Writes are not locked.
package textstore

import (
	"errors"
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/idilsaglam/mindtips/internal/model"
)

// DefaultFileName is used when no path is configured.
const DefaultFileName = "mental_health_tips.txt"

// ErrIO marks read/write failures. Callers treat it as a warning, never fatal.
var ErrIO = errors.New("tips file i/o")

// ErrRead and ErrWrite both match ErrIO with errors.Is.
var (
	ErrRead  = fmt.Errorf("%w: read", ErrIO)
	ErrWrite = fmt.Errorf("%w: write", ErrIO)
)

// Defaults are written on first start, when the file does not exist.
var Defaults = []string{
	"Take breaks and relax your mind regularly.",
	"Maintain a healthy sleep schedule.",
	"Exercise to boost your mood and energy.",
	"Talk to friends or family when feeling overwhelmed.",
	"Practice mindfulness or meditation daily.",
	"Limit screen time and social media use.",
	"Seek professional help if needed.",
}

type Store struct {
	path string
}

func New(path string) *Store {
	if path == "" {
		path = DefaultFileName
	}
	return &Store{path: path}
}

func (s *Store) Path() string { return s.path }

// DefaultTips returns a fresh copy of the seed set, all non-favorite.
func DefaultTips() []model.Tip {
	out := make([]model.Tip, 0, len(Defaults))
	for _, t := range Defaults {
		out = append(out, model.Tip{Text: t})
	}
	return out
}

// Load reads the tips file. A missing file yields the defaults, which are
// saved straight away; if that save fails the defaults are still returned
// together with the error. A read failure yields an empty collection.
func (s *Store) Load() ([]model.Tip, error) {
	b, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			tips := DefaultTips()
			return tips, s.Save(tips)
		}
		return []model.Tip{}, fmt.Errorf("%w: %w", ErrRead, err)
	}
	return parse(string(b)), nil
}

// Save overwrites the file with one line per tip, in order.
func (s *Store) Save(tips []model.Tip) error {
	var sb strings.Builder
	for _, t := range tips {
		sb.WriteString(t.Stored())
		sb.WriteByte('\n')
	}
	if err := os.WriteFile(s.path, []byte(sb.String()), 0o644); err != nil {
		return fmt.Errorf("%w: %w", ErrWrite, err)
	}
	return nil
}

// parse skips blank lines and drops later duplicates so the collection
// invariant holds even for hand-edited files.
func parse(data string) []model.Tip {
	out := []model.Tip{}
	for _, line := range strings.Split(data, "\n") {
		t := model.ParseStored(strings.TrimSuffix(line, "\r"))
		if strings.TrimSpace(t.Text) == "" {
			continue
		}
		// same fold as tips.Store.ContainsFold
		if slices.ContainsFunc(out, func(k model.Tip) bool { return strings.EqualFold(k.Text, t.Text) }) {
			continue
		}
		out = append(out, t)
	}
	return out
}

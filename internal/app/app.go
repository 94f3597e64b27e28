// Package app is the command surface the presentation layers drive. It owns
// the tip store, the undo history and persistence, and saves after every
// mutation. All methods are meant to be called from a single event loop.
package app

import (
	"errors"
	"fmt"
	"math/rand/v2"

	"github.com/charmbracelet/log"

	"github.com/idilsaglam/mindtips/internal/logging"
	"github.com/idilsaglam/mindtips/internal/model"
	"github.com/idilsaglam/mindtips/internal/tips"
	"github.com/idilsaglam/mindtips/internal/undo"
)

// Persister loads and saves the whole collection.
type Persister interface {
	Load() ([]model.Tip, error)
	Save(tips []model.Tip) error
}

type Options struct {
	Store     Persister
	UndoDepth int
	Logger    *log.Logger
	Rand      *rand.Rand // nil uses the global source
}

// Entry is one row of the current view.
type Entry struct {
	Text     string // display text, marker stripped
	Favorite bool   // style hint
	Stored   string // identity to pass back to RemoveSelected / ToggleFavorite
}

type App struct {
	tips          *tips.Store
	history       *undo.History
	persist       Persister
	log           *log.Logger
	intN          func(int) int
	favoritesOnly bool
}

// Open loads the collection. Load problems never fail Open: the returned
// Status carries the warning and the app runs on whatever was loaded.
func Open(opt Options) (*App, Status) {
	a := &App{
		history: undo.New(opt.UndoDepth),
		persist: opt.Store,
		log:     opt.Logger,
		intN:    rand.IntN,
	}
	if a.log == nil {
		a.log = logging.Discard()
	}
	if opt.Rand != nil {
		a.intN = opt.Rand.IntN
	}

	loaded, err := a.persist.Load()
	a.tips = tips.New(loaded)
	if err != nil {
		a.log.Warn("load tips", "err", err)
		return a, ioStatus(err)
	}
	a.log.Debug("tips loaded", "count", a.tips.Len())
	return a, Status{}
}

// View returns the entries to render, honoring the favorites filter.
func (a *App) View() []Entry {
	return a.ViewOf(a.favoritesOnly)
}

// ViewOf returns the entries for an explicit filter setting.
func (a *App) ViewOf(favoritesOnly bool) []Entry {
	src := a.tips.View(favoritesOnly)
	out := make([]Entry, 0, len(src))
	for _, t := range src {
		out = append(out, Entry{Text: t.Text, Favorite: t.Favorite, Stored: t.Stored()})
	}
	return out
}

func (a *App) SetFavoritesFilter(on bool) { a.favoritesOnly = on }
func (a *App) FavoritesOnly() bool        { return a.favoritesOnly }

func (a *App) CanUndo() bool { return a.history.Len() > 0 }

func (a *App) AddTip(text string) Status {
	switch err := a.tips.Add(text); {
	case errors.Is(err, tips.ErrEmptyInput):
		return fail(msgEmpty, err)
	case errors.Is(err, tips.ErrDuplicateTip):
		return fail(msgDuplicate, err)
	}
	a.log.Info("tip added", "count", a.tips.Len())
	return a.save(ok(msgAdded))
}

// RemoveSelected removes each stored representation it is given. The prior
// state is snapshotted first so Undo restores order and favorites.
func (a *App) RemoveSelected(stored []string) Status {
	if len(stored) == 0 {
		return fail(msgSelectRemove, ErrNoSelection)
	}
	a.history.Push(a.tips.Snapshot())
	removed := 0
	for _, s := range stored {
		if a.tips.Remove(s) {
			removed++
		}
	}
	a.log.Info("tips removed", "requested", len(stored), "removed", removed)
	return a.save(ok(fmt.Sprintf("%d tip(s) removed.", removed)))
}

func (a *App) Undo() Status {
	prev, err := a.history.Pop()
	if err != nil {
		return fail(msgNothingUndo, err)
	}
	a.tips.Replace(prev)
	a.log.Info("undo", "count", a.tips.Len(), "remaining", a.history.Len())
	return a.save(ok(msgUndone))
}

func (a *App) Sort() Status {
	a.history.Push(a.tips.Snapshot())
	a.tips.SortAlphabetically()
	a.log.Info("tips sorted")
	return a.save(ok(msgSorted))
}

// ToggleFavorite flips the tip identified by its stored representation.
// An unknown representation is a silent no-op.
func (a *App) ToggleFavorite(stored string) Status {
	if stored == "" {
		return fail(msgSelectFav, ErrNoSelection)
	}
	if !a.tips.ToggleFavorite(stored) {
		a.log.Debug("toggle favorite: no match", "stored", stored)
	}
	return a.save(ok(msgFavToggled))
}

// RandomTip picks uniformly from the full collection, ignoring the filter.
func (a *App) RandomTip() (string, bool) {
	all := a.tips.View(false)
	if len(all) == 0 {
		return "", false
	}
	return all[a.intN(len(all))].Text, true
}

// save persists the collection. On failure memory is kept as is and the
// command's message is suffixed with the save warning.
func (a *App) save(st Status) Status {
	if err := a.persist.Save(a.tips.Snapshot()); err != nil {
		a.log.Error("save tips", "err", err)
		warn := ioStatus(err)
		warn.Message = st.Message + " " + warn.Message
		return warn
	}
	return st
}

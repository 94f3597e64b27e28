package app

import (
	"errors"

	"github.com/idilsaglam/mindtips/internal/store/textstore"
	"github.com/idilsaglam/mindtips/internal/tips"
	"github.com/idilsaglam/mindtips/internal/undo"
)

// ErrNoSelection is returned when a command needs at least one tip and got none.
var ErrNoSelection = errors.New("no tip selected")

// Kind classifies a Status for the presentation layer.
type Kind string

const (
	KindOK            Kind = "ok"
	KindEmptyInput    Kind = "empty_input"
	KindDuplicateTip  Kind = "duplicate_tip"
	KindNothingToUndo Kind = "nothing_to_undo"
	KindNoSelection   Kind = "no_selection"
	KindIOError       Kind = "io_error"
)

// Status is the outcome of one command, shown transiently to the user.
// A zero Status carries nothing to show.
type Status struct {
	Message string
	Err     error
}

func (s Status) OK() bool { return s.Err == nil }

func (s Status) Kind() Kind {
	switch {
	case s.Err == nil:
		return KindOK
	case errors.Is(s.Err, tips.ErrEmptyInput):
		return KindEmptyInput
	case errors.Is(s.Err, tips.ErrDuplicateTip):
		return KindDuplicateTip
	case errors.Is(s.Err, undo.ErrNothingToUndo):
		return KindNothingToUndo
	case errors.Is(s.Err, ErrNoSelection):
		return KindNoSelection
	default:
		return KindIOError
	}
}

const (
	msgAdded        = "Tip added successfully!"
	msgEmpty        = "Please enter a tip to add."
	msgDuplicate    = "This tip already exists."
	msgSelectRemove = "Please select tip(s) to remove."
	msgSelectFav    = "Select a tip to toggle favorite."
	msgNothingUndo  = "Nothing to undo."
	msgUndone       = "Undo successful."
	msgSorted       = "Tips sorted alphabetically."
	msgFavToggled   = "Favorite toggled."
	msgLoadFailed   = "Error loading tips from file."
	msgSaveFailed   = "Error saving tips to file."
)

func ok(msg string) Status { return Status{Message: msg} }

func fail(msg string, err error) Status { return Status{Message: msg, Err: err} }

// ioStatus maps a persistence error to the message the original wording uses.
func ioStatus(err error) Status {
	if errors.Is(err, textstore.ErrRead) {
		return fail(msgLoadFailed, err)
	}
	return fail(msgSaveFailed, err)
}

package cli

import (
	"fmt"
	"io"
	"slices"

	"github.com/idilsaglam/mindtips/internal/app"
	"github.com/idilsaglam/mindtips/internal/ui"
)

// row is an entry with its 1-based index in the full listing, the index rm
// and fav accept.
type row struct {
	n int
	app.Entry
}

func numbered(all []app.Entry) []row {
	out := make([]row, len(all))
	for i, e := range all {
		out[i] = row{n: i + 1, Entry: e}
	}
	return out
}

// printList renders all, or only its favorites, keeping full-list numbering
// so indexes shown stay valid for rm/fav.
func printList(w io.Writer, all []app.Entry, favoritesOnly, group bool) {
	rows := numbered(all)
	if favoritesOnly {
		rows = slices.DeleteFunc(rows, func(r row) bool { return !r.Favorite })
	}

	t := ui.Current()
	favs := countFavorites(rows)
	header := fmt.Sprintf("%s  %s %d  %s %d",
		ui.C(t.Title, "Mental Health Tips"),
		ui.C(t.Favorite, t.Star), favs,
		ui.C(t.Accent, "Total"), len(rows),
	)

	lines := []string{header, ui.C(t.Muted, ui.ProgressBar(favs, len(rows), 28)), ""}
	if group {
		lines = append(lines, groupLines(rows)...)
	} else {
		lines = append(lines, flatLines(rows)...)
	}
	lines = append(lines, "", ui.C(t.Muted, "Tip: add with `tips add \"Drink water\"`"))
	ui.Panel(w, lines)
}

func countFavorites(rows []row) int {
	n := 0
	for _, r := range rows {
		if r.Favorite {
			n++
		}
	}
	return n
}

func flatLines(rows []row) []string {
	t := ui.Current()
	if len(rows) == 0 {
		return []string{ui.C(t.Muted, "no tips")}
	}
	out := make([]string, 0, len(rows))
	for _, r := range rows {
		idx := fmt.Sprintf("%2d.", r.n)
		sym, c := t.Bullet, t.Muted
		text := r.Text
		if r.Favorite {
			sym, c = t.Star, t.Favorite
			text = ui.C(t.Favorite, text)
		}
		out = append(out, fmt.Sprintf("%s %s %s", ui.C(t.Muted, idx), ui.C(c, sym), text))
	}
	return out
}

func groupLines(rows []row) []string {
	t := ui.Current()
	var favs, rest []row
	for _, r := range rows {
		if r.Favorite {
			favs = append(favs, r)
		} else {
			rest = append(rest, r)
		}
	}
	lines := []string{ui.C(t.Accent, "Favorites")}
	if len(favs) == 0 {
		lines = append(lines, ui.C(t.Muted, "(none)"))
	} else {
		lines = append(lines, flatLines(favs)...)
	}
	lines = append(lines, "", ui.C(t.Accent, "Others"))
	if len(rest) == 0 {
		lines = append(lines, ui.C(t.Muted, "(none)"))
	} else {
		lines = append(lines, flatLines(rest)...)
	}
	return lines
}

package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/AkatukiSora/poker-hand-stats/internal/stats"
)

// catalogOrder fixes the section order on the catalog tab.
var catalogOrder = []struct {
	Category string
	Title    string
}{
	{"win_rate", "Win Rate"},
	{"session", "Session"},
	{"preflop_open", "Preflop Opening"},
	{"preflop_vs_raise", "Preflop vs Raise"},
	{"steal_dynamics", "Steal Dynamics"},
	{"postflop_aggressor", "Postflop as Aggressor"},
	{"postflop_caller", "Postflop as Caller"},
	{"showdown", "Showdown"},
	{"aggression", "Aggression"},
}

// NewCatalogTab lists every metric with its current value, grouped by category.
func NewCatalogTab(r *stats.Report) fyne.CanvasObject {
	if r == nil || r.TotalHands == 0 {
		return newEmptyState("No hands imported yet.")
	}

	byCategory := make(map[string][]*stats.MetricDefinition)
	for i := range stats.Registry {
		def := &stats.Registry[i]
		byCategory[def.Category] = append(byCategory[def.Category], def)
	}

	sections := container.NewVBox()
	for _, sec := range catalogOrder {
		defs := byCategory[sec.Category]
		if len(defs) == 0 {
			continue
		}
		sections.Add(widget.NewLabelWithStyle(sec.Title, fyne.TextAlignLeading, fyne.TextStyle{Bold: true}))
		grid := container.NewGridWithColumns(3)
		for _, def := range defs {
			grid.Add(widget.NewLabel(def.Label))
			grid.Add(widget.NewLabelWithStyle(displayValue(def, r), fyne.TextAlignTrailing, fyne.TextStyle{Monospace: true}))
			grid.Add(widget.NewLabel(sampleNote(def, r)))
		}
		sections.Add(grid)
		sections.Add(widget.NewSeparator())
	}

	return container.NewScroll(container.NewPadded(sections))
}

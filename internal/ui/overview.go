package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/AkatukiSora/poker-hand-stats/internal/stats"
)

// heroMetricIDs are pinned to the top of the overview.
var heroMetricIDs = []stats.MetricID{
	stats.MetricTotalHands,
	stats.MetricTotalProfit,
	stats.MetricBBPer100,
	stats.MetricVPIP,
	stats.MetricPFR,
}

func metricCard(def *stats.MetricDefinition, r *stats.Report) fyne.CanvasObject {
	title := widget.NewLabel(def.Label)
	title.TextStyle = fyne.TextStyle{Bold: true}

	value := widget.NewRichTextFromMarkdown("`" + displayValue(def, r) + "`")
	value.Wrapping = fyne.TextWrapOff

	rows := []fyne.CanvasObject{title, value}
	if note := sampleNote(def, r); note != "" {
		foot := widget.NewLabel(note)
		foot.TextStyle = fyne.TextStyle{Italic: true}
		rows = append(rows, foot)
	}

	return widget.NewCard("", "", container.NewVBox(rows...))
}

// NewOverviewTab returns the "Overview" tab content.
func NewOverviewTab(r *stats.Report) fyne.CanvasObject {
	if r == nil || r.TotalHands == 0 {
		return newEmptyState("No hands imported yet.\nPoint the app at a hand-history export directory.")
	}

	pinned := make(map[stats.MetricID]bool, len(heroMetricIDs))
	heroCards := make([]fyne.CanvasObject, 0, len(heroMetricIDs))
	for _, id := range heroMetricIDs {
		def := stats.DefinitionFor(id)
		if def == nil {
			continue
		}
		pinned[id] = true
		heroCards = append(heroCards, metricCard(def, r))
	}

	otherCards := make([]fyne.CanvasObject, 0, len(stats.Registry))
	for i := range stats.Registry {
		def := &stats.Registry[i]
		if pinned[def.ID] {
			continue
		}
		otherCards = append(otherCards, metricCard(def, r))
	}

	title := widget.NewLabelWithStyle("Overall Statistics", fyne.TextAlignLeading, fyne.TextStyle{Bold: true})

	content := container.NewVBox(
		title,
		widget.NewSeparator(),
		container.NewGridWithColumns(minInt(5, len(heroCards)), heroCards...),
		widget.NewSeparator(),
		container.NewGridWithColumns(4, otherCards...),
	)
	return container.NewScroll(container.NewPadded(content))
}

func newEmptyState(msg string) fyne.CanvasObject {
	label := widget.NewLabel(msg)
	label.Alignment = fyne.TextAlignCenter
	return container.NewCenter(label)
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

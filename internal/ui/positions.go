package ui

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/AkatukiSora/poker-hand-stats/internal/stats"
)

// positionColumns lists the per-bucket metrics displayed in the table.
var positionColumns = []stats.MetricID{
	stats.MetricVPIP,
	stats.MetricPFR,
	stats.Metric3Bet,
	stats.MetricCBetFlop,
	stats.MetricWTSD,
	stats.MetricWWSF,
}

// NewPositionsTab returns the per-position breakdown table.
func NewPositionsTab(r *stats.Report) fyne.CanvasObject {
	if r == nil || r.TotalHands == 0 {
		return newEmptyState("No hands imported yet.")
	}

	header := []string{"Position", "Hands", "Profit", "bb/100"}
	for _, id := range positionColumns {
		if def := stats.DefinitionFor(id); def != nil {
			header = append(header, def.Label)
		}
	}

	rows := [][]string{header}
	for _, bucket := range stats.PositionBuckets {
		pr := r.ByPosition[bucket]
		if pr == nil {
			continue
		}
		row := []string{
			string(bucket),
			fmt.Sprintf("%d", pr.Hands),
			formatMoney(pr.Profit),
			fmt.Sprintf("%.2f", pr.BBPer100),
		}
		for _, id := range positionColumns {
			if pr.Hands == 0 {
				row = append(row, "-")
				continue
			}
			row = append(row, formatPercent(pr.Percentages[id]))
		}
		rows = append(rows, row)
	}

	table := widget.NewTable(
		func() (int, int) { return len(rows), len(header) },
		func() fyne.CanvasObject { return widget.NewLabel("") },
		func(id widget.TableCellID, obj fyne.CanvasObject) {
			label := obj.(*widget.Label)
			label.SetText(rows[id.Row][id.Col])
			label.TextStyle = fyne.TextStyle{Bold: id.Row == 0}
		},
	)
	for col := range header {
		table.SetColumnWidth(col, 110)
	}

	title := widget.NewLabelWithStyle("Stats by Position", fyne.TextAlignLeading, fyne.TextStyle{Bold: true})
	return container.NewBorder(container.NewPadded(title), nil, nil, nil, table)
}

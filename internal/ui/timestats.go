package ui

import (
	"fmt"
	"sort"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/AkatukiSora/poker-hand-stats/internal/stats"
)

var dayOfWeekLabels = [7]string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}

// NewTimeTab returns the day-of-week / hour-of-day / per-day breakdown.
func NewTimeTab(r *stats.Report) fyne.CanvasObject {
	if r == nil || r.TotalHands == 0 {
		return newEmptyState("No hands imported yet.")
	}

	sections := container.NewVBox(
		widget.NewLabelWithStyle("By Day of Week", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		timeCellGrid(dayOfWeekLabels[:], r.ByTime.ByDayOfWeek[:]),
		widget.NewSeparator(),
		widget.NewLabelWithStyle("By Hour of Day", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		hourGrid(r.ByTime.ByHourOfDay[:]),
		widget.NewSeparator(),
		widget.NewLabelWithStyle("By Day", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		dayList(r.ByTime.ByDay),
	)
	return container.NewScroll(container.NewPadded(sections))
}

func timeCellGrid(labels []string, cells []stats.TimeCellReport) fyne.CanvasObject {
	grid := container.NewGridWithColumns(4,
		widget.NewLabelWithStyle("Slot", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		widget.NewLabelWithStyle("Hands", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		widget.NewLabelWithStyle("Profit", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		widget.NewLabelWithStyle("bb/100", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
	)
	for i, cell := range cells {
		if cell.Hands == 0 {
			continue
		}
		grid.Add(widget.NewLabel(labels[i]))
		grid.Add(widget.NewLabel(fmt.Sprintf("%d", cell.Hands)))
		grid.Add(widget.NewLabel(formatMoney(cell.Profit)))
		grid.Add(widget.NewLabel(fmt.Sprintf("%.2f", cell.BBPer100)))
	}
	return grid
}

func hourGrid(cells []stats.TimeCellReport) fyne.CanvasObject {
	labels := make([]string, len(cells))
	for i := range cells {
		labels[i] = fmt.Sprintf("%02d:00", i)
	}
	return timeCellGrid(labels, cells)
}

func dayList(byDay map[string]stats.TimeCellReport) fyne.CanvasObject {
	days := make([]string, 0, len(byDay))
	for day := range byDay {
		days = append(days, day)
	}
	sort.Strings(days)

	cells := make([]stats.TimeCellReport, len(days))
	for i, day := range days {
		cells[i] = byDay[day]
	}
	return timeCellGrid(days, cells)
}

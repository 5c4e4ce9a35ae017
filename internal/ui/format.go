package ui

import (
	"fmt"

	"github.com/AkatukiSora/poker-hand-stats/internal/stats"
)

func formatMoney(cents int64) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	return fmt.Sprintf("%s$%d.%02d", sign, cents/100, cents%100)
}

func formatPercent(v float64) string {
	return fmt.Sprintf("%.1f%%", v)
}

func formatBB(v float64) string {
	return fmt.Sprintf("%.1f bb", v)
}

func formatDuration(minutes float64) string {
	total := int(minutes)
	return fmt.Sprintf("%dh %02dm", total/60, total%60)
}

// displayValue renders one registered metric from the finalized report.
func displayValue(def *stats.MetricDefinition, r *stats.Report) string {
	switch def.Type {
	case stats.TypePercent, stats.TypeAggression:
		return formatPercent(r.Percentages[def.ID])
	case stats.TypeMoney:
		switch def.ID {
		case stats.MetricTotalProfit:
			return formatMoney(r.TotalProfit)
		case stats.MetricTotalRake:
			return formatMoney(r.TotalRake)
		case stats.MetricTotalJackpot:
			return formatMoney(r.TotalJackpot)
		case stats.MetricProfitPerHour:
			return formatMoney(r.ProfitPerHour)
		}
	case stats.TypeBB:
		switch def.ID {
		case stats.MetricBBPer100:
			return fmt.Sprintf("%.2f", r.BBPer100)
		case stats.MetricProfitBB:
			return formatBB(r.ProfitBB)
		}
	case stats.TypeInt:
		switch def.ID {
		case stats.MetricTotalHands:
			return fmt.Sprintf("%d", r.TotalHands)
		case stats.MetricHandsPerHour:
			return fmt.Sprintf("%.0f", r.HandsPerHour)
		}
	case stats.TypeDuration:
		return formatDuration(r.DurationMinutes)
	}
	return "-"
}

// sampleNote renders the opportunity count behind a percentage metric, empty
// for scalar metrics.
func sampleNote(def *stats.MetricDefinition, r *stats.Report) string {
	if def.Type != stats.TypePercent {
		return ""
	}
	c, ok := r.Counters[def.ID]
	if !ok {
		return ""
	}
	return fmt.Sprintf("%d / %d", c.Actions, c.Opportunities)
}

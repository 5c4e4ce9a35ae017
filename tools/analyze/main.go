// analyze is a headless batch analyzer: it parses a directory of hand
// history exports and prints the finalized report to the terminal, or
// writes the aggregate as JSON for later import.
//
// Usage:
//
//	go run ./tools/analyze [flags] <dir>
package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/lipgloss"

	"github.com/AkatukiSora/poker-hand-stats/internal/application"
	"github.com/AkatukiSora/poker-hand-stats/internal/applog"
	"github.com/AkatukiSora/poker-hand-stats/internal/stats"
)

type CLI struct {
	Dir       string   `arg:"" help:"Directory containing hand history .txt exports."`
	GameType  string   `short:"g" default:"All" help:"Restrict the report to one game type."`
	Positions bool     `short:"p" help:"Show the per-position breakdown."`
	JSON      string   `short:"j" help:"Write the aggregate as JSON to this path instead of printing."`
	Merge     []string `short:"m" help:"Previously exported aggregate JSON files to merge in."`
	Debug     bool     `help:"Enable debug logging."`
}

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("15"))

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("12"))

	profitStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("10"))

	lossStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("9"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("8"))
)

func main() {
	var cli CLI
	ctx := kong.Parse(&cli)

	applog.Init(cli.Debug)

	service := application.NewService(application.DirectoryLocator(cli.Dir))
	total, err := service.ImportAll(context.Background(), nil)
	if err != nil && len(cli.Merge) == 0 {
		fmt.Fprintf(os.Stderr, "import: %v\n", err)
		ctx.Exit(1)
	}
	for _, path := range cli.Merge {
		if total, err = service.ImportAggregate(path); err != nil {
			fmt.Fprintf(os.Stderr, "merge %s: %v\n", path, err)
			ctx.Exit(1)
		}
	}

	if cli.JSON != "" {
		if err := service.ExportAggregate(cli.JSON); err != nil {
			fmt.Fprintf(os.Stderr, "export: %v\n", err)
			ctx.Exit(1)
		}
		fmt.Printf("%d hands exported to %s\n", total, cli.JSON)
		return
	}

	report := service.ReportForGameType(cli.GameType)
	printReport(report, cli.GameType)
	if cli.Positions {
		printPositions(report)
	}
}

func money(cents int64) string {
	s := formatCents(cents)
	if cents < 0 {
		return lossStyle.Render(s)
	}
	return profitStyle.Render(s)
}

func formatCents(cents int64) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	return fmt.Sprintf("%s$%d.%02d", sign, cents/100, cents%100)
}

func printReport(r *stats.Report, gameType string) {
	fmt.Println(headerStyle.Render("Hero Report: " + gameType))
	fmt.Println()

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	row := func(label, value, note string) {
		fmt.Fprintf(w, "%s\t%s\t%s\n", labelStyle.Render(label), value, dimStyle.Render(note))
	}

	row("Hands", fmt.Sprintf("%d", r.TotalHands), "")
	row("Duration", fmt.Sprintf("%.1fh", r.DurationMinutes/60), "")
	row("Profit", money(r.TotalProfit), "rake-adjusted "+formatCents(r.TotalProfitWithRake))
	row("bb/100", fmt.Sprintf("%.2f", r.BBPer100), fmt.Sprintf("with rake %.2f", r.BBWithRakePer100))
	row("Hands/h", fmt.Sprintf("%.0f", r.HandsPerHour), "")
	w.Flush()
	fmt.Println()

	w = tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	for _, def := range stats.Registry {
		if def.Type != stats.TypePercent && def.Type != stats.TypeAggression {
			continue
		}
		note := ""
		if c, ok := r.Counters[def.ID]; ok {
			note = fmt.Sprintf("%d/%d", c.Actions, c.Opportunities)
		}
		fmt.Fprintf(w, "%s\t%.1f%%\t%s\n",
			labelStyle.Render(def.Label), r.Percentages[def.ID], dimStyle.Render(note))
	}
	w.Flush()
}

func printPositions(r *stats.Report) {
	fmt.Println()
	fmt.Println(headerStyle.Render("By Position"))

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintf(w, "%s\n", labelStyle.Render(strings.Join(
		[]string{"Pos", "Hands", "Profit", "bb/100", "VPIP", "PFR", "3Bet"}, "\t")))
	for _, bucket := range stats.PositionBuckets {
		pr := r.ByPosition[bucket]
		if pr == nil || pr.Hands == 0 {
			continue
		}
		fmt.Fprintf(w, "%s\t%d\t%s\t%.2f\t%.1f%%\t%.1f%%\t%.1f%%\n",
			bucket, pr.Hands, money(pr.Profit), pr.BBPer100,
			pr.Percentages[stats.MetricVPIP],
			pr.Percentages[stats.MetricPFR],
			pr.Percentages[stats.Metric3Bet])
	}
	w.Flush()
}

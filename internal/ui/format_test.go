package ui

import (
	"testing"

	"github.com/AkatukiSora/poker-hand-stats/internal/stats"
)

func TestFormatMoney(t *testing.T) {
	cases := []struct {
		cents int64
		want  string
	}{
		{0, "$0.00"},
		{2, "$0.02"},
		{205, "$2.05"},
		{-150, "-$1.50"},
		{100000, "$1000.00"},
	}
	for _, c := range cases {
		if got := formatMoney(c.cents); got != c.want {
			t.Errorf("formatMoney(%d) = %q, want %q", c.cents, got, c.want)
		}
	}
}

func TestFormatDuration(t *testing.T) {
	if got := formatDuration(0); got != "0h 00m" {
		t.Errorf("formatDuration(0) = %q", got)
	}
	if got := formatDuration(95); got != "1h 35m" {
		t.Errorf("formatDuration(95) = %q", got)
	}
}

func TestDisplayValueCoversRegistry(t *testing.T) {
	r := stats.Finalize(stats.AggregateHands(nil))
	for i := range stats.Registry {
		def := &stats.Registry[i]
		if got := displayValue(def, r); got == "" {
			t.Errorf("displayValue(%s) returned empty string", def.ID)
		}
	}
}

func TestSampleNoteOnlyForPercentMetrics(t *testing.T) {
	r := stats.Finalize(stats.AggregateHands(nil))
	money := stats.DefinitionFor(stats.MetricTotalProfit)
	if note := sampleNote(money, r); note != "" {
		t.Errorf("money metric should have no sample note, got %q", note)
	}
	vpip := stats.DefinitionFor(stats.MetricVPIP)
	if note := sampleNote(vpip, r); note != "0 / 0" {
		t.Errorf("empty-report vpip note = %q, want \"0 / 0\"", note)
	}
}

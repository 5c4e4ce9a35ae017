package stats

import (
	"encoding/json"
	"fmt"
)

// minDurationHours guards the per-hour rates: anything below this is treated
// as insufficient data and reported as 0.
const minDurationHours = 0.01

// Report is the display-ready result of finalizing an aggregate. All rates
// are guarded; no field is ever NaN or infinite. Money values stay in cents.
type Report struct {
	TotalHands            int     `json:"-"`
	DurationMinutes       float64 `json:"-"`
	HandsPerHour          float64 `json:"-"`
	ProfitPerHour         int64   `json:"-"`
	ProfitWithRakePerHour int64   `json:"-"`

	GameTypes []string `json:"-"`
	BBSize    int64    `json:"-"`
	TotalProfit         int64 `json:"-"`
	TotalRake           int64 `json:"-"`
	TotalJackpot        int64 `json:"-"`
	TotalProfitWithRake int64 `json:"-"`

	BBPer100         float64 `json:"-"`
	BBWithRakePer100 float64 `json:"-"`
	ProfitBB         float64 `json:"-"`
	ProfitWithRakeBB float64 `json:"-"`

	// Percentages keyed by metric ID; marshalled as "<id>_p".
	Percentages map[MetricID]float64 `json:"-"`
	// Raw counters carried along for sample-size display.
	Counters   map[MetricID]Counter    `json:"-"`
	Aggression map[MetricID]Aggression `json:"-"`

	ByPosition    map[PositionBucket]*PositionReport `json:"-"`
	ByTime        TimeReport                         `json:"-"`
	ProfitHistory []ProfitPoint                      `json:"-"`
}

// PositionReport is the finalized per-bucket breakdown.
type PositionReport struct {
	Hands       int                  `json:"hands"`
	Profit      int64                `json:"profit"`
	BBPer100    float64              `json:"bb_per_100"`
	Percentages map[MetricID]float64 `json:"-"`
}

// TimeCellReport is one finalized time slot.
type TimeCellReport struct {
	Hands    int     `json:"hands"`
	Profit   int64   `json:"profit"`
	BBPer100 float64 `json:"bb_per_100"`
}

// TimeReport is the finalized by-time breakdown.
type TimeReport struct {
	ByDay       map[string]TimeCellReport `json:"byDay"`
	ByDayOfWeek [7]TimeCellReport         `json:"byDayOfWeek"`
	ByHourOfDay [24]TimeCellReport        `json:"byHourOfDay"`
}

func toPercent(actions, opportunities int) float64 {
	if opportunities <= 0 {
		return 0
	}
	return float64(actions) / float64(opportunities) * 100
}

func afqPercent(a Aggression) float64 {
	aggressive := a.Bets + a.Raises
	total := aggressive + a.Calls + a.Checks
	return toPercent(aggressive, total)
}

func bbPer100(profit, bbSize int64, hands int) float64 {
	if hands <= 0 || bbSize <= 0 {
		return 0
	}
	return (float64(profit) / float64(bbSize)) / (float64(hands) / 100)
}

// Finalize converts an aggregate into a display-ready report. Pure: the
// aggregate is only read, so finalizing twice yields identical reports.
func Finalize(agg *Aggregate) *Report {
	r := &Report{
		TotalHands:      agg.HandsCounted,
		DurationMinutes: agg.DurationMinutes,
		GameTypes:       append([]string(nil), agg.GameTypes...),
		BBSize:          agg.BBSize,
		Percentages:     make(map[MetricID]float64),
		Counters:        make(map[MetricID]Counter),
		Aggression:      make(map[MetricID]Aggression),
		ByPosition:      make(map[PositionBucket]*PositionReport, len(agg.ByPosition)),
		ProfitHistory:   append([]ProfitPoint(nil), agg.ProfitHistory...),
	}

	for id, acc := range agg.Metrics {
		switch v := acc.(type) {
		case *Counter:
			r.Counters[id] = *v
			r.Percentages[id] = toPercent(v.Actions, v.Opportunities)
		case *Aggression:
			r.Aggression[id] = *v
			r.Percentages[id] = afqPercent(*v)
		case *MoneyTotal:
			switch id {
			case MetricTotalProfit:
				r.TotalProfit = v.Value
			case MetricTotalRake:
				r.TotalRake = v.Value
			case MetricTotalJackpot:
				r.TotalJackpot = v.Value
			}
		}
	}

	r.TotalProfitWithRake = r.TotalProfit + r.TotalRake + r.TotalJackpot
	r.BBPer100 = bbPer100(r.TotalProfit, agg.BBSize, r.TotalHands)
	r.BBWithRakePer100 = bbPer100(r.TotalProfitWithRake, agg.BBSize, r.TotalHands)
	if agg.BBSize > 0 {
		r.ProfitBB = float64(r.TotalProfit) / float64(agg.BBSize)
		r.ProfitWithRakeBB = float64(r.TotalProfitWithRake) / float64(agg.BBSize)
	}

	durationHours := agg.DurationMinutes / 60
	if durationHours > minDurationHours {
		r.HandsPerHour = float64(r.TotalHands) / durationHours
		r.ProfitPerHour = int64(float64(r.TotalProfit) / durationHours)
		r.ProfitWithRakePerHour = int64(float64(r.TotalProfitWithRake) / durationHours)
	}

	for bucket, p := range agg.ByPosition {
		pr := &PositionReport{
			Hands:       p.Hands,
			Profit:      p.Profit,
			Percentages: make(map[MetricID]float64),
		}
		if p.Hands > 0 {
			for id, acc := range p.Metrics {
				switch v := acc.(type) {
				case *Counter:
					pr.Percentages[id] = toPercent(v.Actions, v.Opportunities)
				case *Aggression:
					pr.Percentages[id] = afqPercent(*v)
				}
			}
			pr.BBPer100 = bbPer100(p.Profit, agg.BBSize, p.Hands)
		}
		r.ByPosition[bucket] = pr
	}

	r.ByTime.ByDay = make(map[string]TimeCellReport, len(agg.ByTime.ByDay))
	for day, cell := range agg.ByTime.ByDay {
		r.ByTime.ByDay[day] = finalizeTimeCell(*cell, agg.BBSize)
	}
	for i, cell := range agg.ByTime.ByDayOfWeek {
		r.ByTime.ByDayOfWeek[i] = finalizeTimeCell(cell, agg.BBSize)
	}
	for i, cell := range agg.ByTime.ByHourOfDay {
		r.ByTime.ByHourOfDay[i] = finalizeTimeCell(cell, agg.BBSize)
	}

	return r
}

func finalizeTimeCell(cell TimeCell, bbSize int64) TimeCellReport {
	return TimeCellReport{
		Hands:    cell.Hands,
		Profit:   cell.Profit,
		BBPer100: bbPer100(cell.Profit, bbSize, cell.Hands),
	}
}

// MarshalJSON flattens the report into the dashboard wire shape: scalar
// metrics as {"value": v}, percentage metrics as "<id>_p", plus byPosition,
// byTime and profitHistory.
func (r *Report) MarshalJSON() ([]byte, error) {
	out := map[string]any{
		string(MetricTotalHands):    scalar(r.TotalHands),
		string(MetricTotalDuration): scalar(r.DurationMinutes),
		string(MetricHandsPerHour):  scalar(r.HandsPerHour),
		string(MetricProfitPerHour): scalar(r.ProfitPerHour),
		"profit_with_rake_per_hour": scalar(r.ProfitWithRakePerHour),

		string(MetricTotalProfit):  scalar(r.TotalProfit),
		string(MetricTotalRake):    scalar(r.TotalRake),
		string(MetricTotalJackpot): scalar(r.TotalJackpot),
		"total_profit_with_rake":   scalar(r.TotalProfitWithRake),

		string(MetricBBPer100):  scalar(r.BBPer100),
		"bb_with_rake_per_100":  scalar(r.BBWithRakePer100),
		string(MetricProfitBB):  scalar(r.ProfitBB),
		"profit_with_rake_bb":   scalar(r.ProfitWithRakeBB),

		"gameTypes":     r.GameTypes,
		"bbSize":        r.BBSize,
		"byTime":        r.ByTime,
		"profitHistory": r.ProfitHistory,
	}

	for id, pct := range r.Percentages {
		out[fmt.Sprintf("%s_p", id)] = pct
	}
	for id, c := range r.Counters {
		out[string(id)] = c
	}
	for id, a := range r.Aggression {
		out[string(id)] = a
	}

	byPosition := make(map[string]map[string]any, len(r.ByPosition))
	for bucket, pr := range r.ByPosition {
		entry := map[string]any{
			"hands":      pr.Hands,
			"profit":     pr.Profit,
			"bb_per_100": pr.BBPer100,
		}
		for id, pct := range pr.Percentages {
			entry[fmt.Sprintf("%s_p", id)] = pct
		}
		byPosition[string(bucket)] = entry
	}
	out["byPosition"] = byPosition

	return json.Marshal(out)
}

func scalar(v any) map[string]any {
	return map[string]any{"value": v}
}

package stats

import (
	"sort"

	"github.com/AkatukiSora/poker-hand-stats/internal/parser"
)

// SessionGapMinutes is the idle gap that splits two hands into separate
// sessions for duration accounting.
const SessionGapMinutes = 45

// defaultBBSize (cents) is used only until the first hand reports its blind.
const defaultBBSize = 10

func newAggregate() *Aggregate {
	agg := &Aggregate{
		BBSize:     defaultBBSize,
		Metrics:    NewMetricSet(),
		ByPosition: make(map[PositionBucket]*PositionStats, len(PositionBuckets)),
		ByTime: TimeStats{
			ByDay: make(map[string]*TimeCell),
		},
	}
	for _, b := range PositionBuckets {
		agg.ByPosition[b] = &PositionStats{Metrics: NewMetricSet()}
	}
	return agg
}

// AggregateHands runs the full aggregation pipeline over the given hands:
// stable chronological sort, per-hand context construction, registry-driven
// metric updates, dimensional breakdowns, profit history and session
// duration. Hands without Hero, without an assigned Hero position, or with
// fewer than two seated players are kept in RawHands but contribute to no
// counter at all.
func AggregateHands(hands []*parser.Hand) *Aggregate {
	agg := newAggregate()
	if len(hands) == 0 {
		return agg
	}

	sorted := make([]*parser.Hand, len(hands))
	copy(sorted, hands)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].StartTime.Before(sorted[j].StartTime)
	})
	agg.RawHands = sorted

	seenGameTypes := make(map[string]bool)
	var cumulativeProfit int64
	var sessionStart, lastHand int64 // unix seconds, 0 = unset
	var totalMinutes float64

	for _, h := range sorted {
		if !h.StatsEligible() {
			continue
		}

		ts := h.StartTime.Unix()
		if sessionStart == 0 {
			sessionStart = ts
		}
		if lastHand != 0 {
			gap := float64(ts-lastHand) / 60
			if gap > SessionGapMinutes {
				totalMinutes += float64(lastHand-sessionStart) / 60
				sessionStart = ts
			}
		}
		lastHand = ts

		ctx := BuildHandContext(h)

		if !seenGameTypes[h.GameType] {
			seenGameTypes[h.GameType] = true
			agg.GameTypes = append(agg.GameTypes, h.GameType)
		}
		if h.BB > 0 {
			agg.BBSize = h.BB
		}

		agg.HandsCounted++
		cumulativeProfit += ctx.HeroResult
		agg.ProfitHistory = append(agg.ProfitHistory, ProfitPoint{
			Hand:   agg.HandsCounted,
			Profit: cumulativeProfit,
		})

		dayKey := h.StartTime.Format("2006-01-02")
		day := agg.ByTime.ByDay[dayKey]
		if day == nil {
			day = &TimeCell{}
			agg.ByTime.ByDay[dayKey] = day
		}
		day.Hands++
		day.Profit += ctx.HeroResult

		dow := int(h.StartTime.Weekday())
		agg.ByTime.ByDayOfWeek[dow].Hands++
		agg.ByTime.ByDayOfWeek[dow].Profit += ctx.HeroResult

		hour := h.StartTime.Hour()
		agg.ByTime.ByHourOfDay[hour].Hands++
		agg.ByTime.ByHourOfDay[hour].Profit += ctx.HeroResult

		var posStats *PositionStats
		if bucket := BucketFor(h.Hero.Position, len(h.Players)); bucket != "" {
			posStats = agg.ByPosition[bucket]
			posStats.Hands++
			posStats.Profit += ctx.HeroResult
		}

		for i := range Registry {
			def := &Registry[i]
			if def.Process == nil {
				continue
			}
			def.Process(ctx, agg.Metrics[def.ID])
			if posStats != nil {
				def.Process(ctx, posStats.Metrics[def.ID])
			}
		}
	}

	if sessionStart != 0 && lastHand != 0 {
		totalMinutes += float64(lastHand-sessionStart) / 60
	}
	agg.DurationMinutes = totalMinutes

	return agg
}

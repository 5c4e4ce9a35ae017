package stats

import (
	"time"

	"github.com/AkatukiSora/poker-hand-stats/internal/parser"
)

// MetricID identifies one registered metric.
type MetricID string

// MetricType selects how a metric's accumulator is finalized and displayed.
type MetricType int

const (
	// TypePercent finalizes an opportunity/action pair to a percentage.
	TypePercent MetricType = iota
	// TypeAggression finalizes a bets/raises/calls/checks tally to AFq.
	TypeAggression
	// TypeMoney is a running cents total.
	TypeMoney
	// TypeBB is derived at finalization, denominated in big blinds.
	TypeBB
	// TypeInt is a derived integer count.
	TypeInt
	// TypeDuration is derived playing time in minutes.
	TypeDuration
)

// Counter is the opportunity/action accumulator behind percentage metrics.
type Counter struct {
	Opportunities int `json:"opportunities"`
	Actions       int `json:"actions"`
}

// Aggression tallies Hero's voluntary actions on one street.
type Aggression struct {
	Bets   int `json:"bets"`
	Raises int `json:"raises"`
	Calls  int `json:"calls"`
	Checks int `json:"checks"`
}

// MoneyTotal is a running cents total.
type MoneyTotal struct {
	Value int64 `json:"value"`
}

// Accumulator is one metric's mutable state: *Counter, *Aggression or
// *MoneyTotal depending on the metric's type.
type Accumulator any

// MetricSet holds one accumulator per registered metric that declares one.
type MetricSet map[MetricID]Accumulator

// NewMetricSet builds a fresh set from the registry.
func NewMetricSet() MetricSet {
	set := make(MetricSet, len(Registry))
	for _, def := range Registry {
		if def.New != nil {
			set[def.ID] = def.New()
		}
	}
	return set
}

// PositionBucket is one of the six canonical position groups used by the
// per-position breakdown.
type PositionBucket string

const (
	BucketEP  PositionBucket = "EP"
	BucketMP  PositionBucket = "MP"
	BucketCO  PositionBucket = "CO"
	BucketBTN PositionBucket = "BTN"
	BucketSB  PositionBucket = "SB"
	BucketBB  PositionBucket = "BB"
)

// PositionBuckets lists the canonical buckets in display order.
var PositionBuckets = []PositionBucket{BucketEP, BucketMP, BucketCO, BucketBTN, BucketSB, BucketBB}

// BucketFor maps a raw position label to its canonical bucket for the given
// table size. Blinds, button and cutoff keep their own bucket. At six-handed
// and larger, UTG collapses to EP and every other middle seat (UTG+1, MP, LJ,
// HJ) collapses to MP; five-handed UTG is also EP. Positions with no bucket
// (including unknown) return "" and are counted globally only.
func BucketFor(pos parser.Position, tableSize int) PositionBucket {
	switch pos {
	case parser.PosSB:
		return BucketSB
	case parser.PosBB:
		return BucketBB
	case parser.PosBTN:
		return BucketBTN
	case parser.PosCO:
		return BucketCO
	}
	if tableSize >= 6 {
		switch pos {
		case parser.PosUTG:
			return BucketEP
		case parser.PosUTG1, parser.PosMP, parser.PosLJ, parser.PosHJ:
			return BucketMP
		}
	}
	if tableSize == 5 && pos == parser.PosUTG {
		return BucketEP
	}
	return ""
}

// PositionStats is the per-bucket dimensional breakdown.
type PositionStats struct {
	Hands   int       `json:"hands"`
	Profit  int64     `json:"profit"`
	Metrics MetricSet `json:"metrics"`
}

// TimeCell accumulates hands and profit for one time slot.
type TimeCell struct {
	Hands  int   `json:"hands"`
	Profit int64 `json:"profit"`
}

// TimeStats is the by-time dimensional breakdown.
type TimeStats struct {
	ByDay       map[string]*TimeCell `json:"byDay"`
	ByDayOfWeek [7]TimeCell          `json:"byDayOfWeek"`
	ByHourOfDay [24]TimeCell         `json:"byHourOfDay"`
}

// ProfitPoint is one step of the cumulative profit curve.
type ProfitPoint struct {
	Hand   int   `json:"hand"`
	Profit int64 `json:"profit"`
}

// Aggregate is the mutable result of one aggregation run. It keeps the
// ordered source hands so that merging and filtering can re-run the full
// pipeline; counters are never merged arithmetically.
type Aggregate struct {
	RawHands []*parser.Hand `json:"rawHands"`

	GameTypes []string `json:"gameTypes"`
	BBSize    int64    `json:"bbSize"`

	// Hands that passed the eligibility check and were aggregated.
	HandsCounted    int     `json:"handsCounted"`
	DurationMinutes float64 `json:"durationMinutes"`

	Metrics       MetricSet                         `json:"metrics"`
	ByPosition    map[PositionBucket]*PositionStats `json:"byPosition"`
	ByTime        TimeStats                         `json:"byTime"`
	ProfitHistory []ProfitPoint                     `json:"profitHistory"`
}

// FirstHandTime returns the timestamp of the earliest counted hand, zero when
// the aggregate is empty.
func (a *Aggregate) FirstHandTime() time.Time {
	if len(a.RawHands) == 0 {
		return time.Time{}
	}
	return a.RawHands[0].StartTime
}

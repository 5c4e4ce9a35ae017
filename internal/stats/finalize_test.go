package stats

import (
	"bytes"
	"encoding/json"
	"math"
	"testing"
	"time"

	"github.com/AkatukiSora/poker-hand-stats/internal/parser"
)

func TestFinalizePercentageBounds(t *testing.T) {
	agg := AggregateHands([]*parser.Hand{
		testHand("h1", testStart, 3),
		testHand("h2", testStart.Add(time.Minute), -5),
	})
	r := Finalize(agg)

	for id, pct := range r.Percentages {
		if pct < 0 || pct > 100 {
			t.Errorf("%s_p = %v out of [0, 100]", id, pct)
		}
		if math.IsNaN(pct) || math.IsInf(pct, 0) {
			t.Errorf("%s_p is not finite: %v", id, pct)
		}
	}

	// A metric with zero opportunities reports exactly 0.
	for id, c := range r.Counters {
		if c.Opportunities == 0 && r.Percentages[id] != 0 {
			t.Errorf("%s has no opportunities but percentage %v", id, r.Percentages[id])
		}
	}
}

func TestFinalizeEmptyAggregate(t *testing.T) {
	r := Finalize(AggregateHands(nil))

	if r.TotalHands != 0 {
		t.Errorf("expected 0 hands, got %d", r.TotalHands)
	}
	if r.BBPer100 != 0 || r.HandsPerHour != 0 || r.ProfitPerHour != 0 {
		t.Errorf("expected all rates 0 on empty input, got bb/100=%v hands/h=%v profit/h=%v",
			r.BBPer100, r.HandsPerHour, r.ProfitPerHour)
	}
	for id, pct := range r.Percentages {
		if pct != 0 {
			t.Errorf("expected %s_p = 0 on empty input, got %v", id, pct)
		}
	}
}

func TestFinalizeIdempotent(t *testing.T) {
	agg := AggregateHands([]*parser.Hand{
		testHand("h1", testStart, 3),
		testHand("h2", testStart.Add(time.Minute), -2),
	})

	first, err := json.Marshal(Finalize(agg))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	second, err := json.Marshal(Finalize(agg))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if !bytes.Equal(first, second) {
		t.Error("finalizing twice produced different reports")
	}

	// Finalize must not touch the aggregate's counters.
	vpip := agg.Metrics[MetricVPIP].(*Counter)
	if vpip.Opportunities != 2 {
		t.Errorf("aggregate mutated by finalize: vpip opportunities = %d", vpip.Opportunities)
	}
}

func TestFinalizeDurationGuard(t *testing.T) {
	// A single hand has zero playing duration; per-hour rates are withheld
	// rather than blown up.
	agg := AggregateHands([]*parser.Hand{testHand("h1", testStart, 500)})
	r := Finalize(agg)

	if r.HandsPerHour != 0 {
		t.Errorf("expected hands/hour 0 under minimum duration, got %v", r.HandsPerHour)
	}
	if r.ProfitPerHour != 0 {
		t.Errorf("expected profit/hour 0 under minimum duration, got %v", r.ProfitPerHour)
	}
}

func TestFinalizeDerivedRates(t *testing.T) {
	// 100 hands of +1bb each, played over a continuous hour.
	var hands []*parser.Hand
	for i := 0; i < 100; i++ {
		hands = append(hands, testHand("h", testStart.Add(time.Duration(i)*36*time.Second), 2))
	}
	agg := AggregateHands(hands)
	r := Finalize(agg)

	// 200 cents profit / 2 cent bb / (100 hands / 100) = 100 bb/100.
	if r.BBPer100 != 100 {
		t.Errorf("expected 100 bb/100, got %v", r.BBPer100)
	}
	if r.ProfitBB != 100 {
		t.Errorf("expected profit 100 bb, got %v", r.ProfitBB)
	}
	if r.HandsPerHour == 0 {
		t.Error("expected nonzero hands/hour over a one-hour session")
	}
}

func TestReportWireShape(t *testing.T) {
	agg := AggregateHands([]*parser.Hand{testHand("h1", testStart, 3)})
	data, err := json.Marshal(Finalize(agg))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var decoded map[string]json.RawMessage
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	for _, key := range []string{"vpip", "vpip_p", "total_profit", "total_hands", "bb_per_100", "byPosition", "byTime", "profitHistory"} {
		if _, ok := decoded[key]; !ok {
			t.Errorf("report is missing %q", key)
		}
	}

	var totalHands struct {
		Value int `json:"value"`
	}
	if err := json.Unmarshal(decoded["total_hands"], &totalHands); err != nil {
		t.Fatalf("total_hands shape: %v", err)
	}
	if totalHands.Value != 1 {
		t.Errorf("expected total_hands value 1, got %d", totalHands.Value)
	}
}

package stats

import (
	"bytes"
	"encoding/json"
	"testing"
	"time"

	"github.com/AkatukiSora/poker-hand-stats/internal/parser"
)

var testStart = time.Date(2025, 9, 11, 5, 30, 0, 0, time.UTC)

// testHand builds a minimal eligible 6-max hand: Hero open-raises from the
// button, everyone folds, Hero nets the blinds.
func testHand(id string, start time.Time, result int64) *parser.Hand {
	h := &parser.Hand{
		ID:        id,
		GameType:  "Hold'em",
		LimitType: "No Limit",
		SB:        1,
		BB:        2,
		StartTime: start,
		Players: []*parser.Player{
			{Seat: 1, Name: "a1", Position: parser.PosMP},
			{Seat: 2, Name: "Hero", Position: parser.PosBTN, IsHero: true},
			{Seat: 3, Name: "a3", Position: parser.PosSB},
			{Seat: 4, Name: "a4", Position: parser.PosBB},
			{Seat: 5, Name: "a5", Position: parser.PosUTG},
			{Seat: 6, Name: "a6", Position: parser.PosCO},
		},
		ButtonSeat:        2,
		PreflopRaiserSeat: 2,
	}
	h.Hero = parser.Hero{Seat: 2, Position: parser.PosBTN, Result: result}
	h.Streets[parser.StreetPreflop].Actions = []parser.Action{
		{Seat: 5, Player: "a5", Kind: parser.ActionFold},
		{Seat: 1, Player: "a1", Kind: parser.ActionFold},
		{Seat: 6, Player: "a6", Kind: parser.ActionFold},
		{Seat: 2, Player: "Hero", Kind: parser.ActionRaise, Bet: 5, Amount: 5},
		{Seat: 3, Player: "a3", Kind: parser.ActionFold, Amount: 1},
		{Seat: 4, Player: "a4", Kind: parser.ActionFold, Amount: 2},
	}
	if result > 0 {
		h.Winners = []parser.Winner{{Player: "Hero (button)", Amount: result + 5}}
	}
	return h
}

func TestAggregateBasicCounts(t *testing.T) {
	hands := []*parser.Hand{
		testHand("h1", testStart, 3),
		testHand("h2", testStart.Add(time.Minute), -5),
		testHand("h3", testStart.Add(2*time.Minute), 3),
	}
	agg := AggregateHands(hands)

	if agg.HandsCounted != 3 {
		t.Fatalf("expected 3 counted hands, got %d", agg.HandsCounted)
	}

	profit := agg.Metrics[MetricTotalProfit].(*MoneyTotal)
	if profit.Value != 1 {
		t.Errorf("expected total profit 1 cent, got %d", profit.Value)
	}

	// All three hands are open-raises from the button.
	pfr := agg.Metrics[MetricPFR].(*Counter)
	if pfr.Opportunities != 3 || pfr.Actions != 3 {
		t.Errorf("expected pfr 3/3, got %d/%d", pfr.Actions, pfr.Opportunities)
	}
	steal := agg.Metrics[MetricStealAttempt].(*Counter)
	if steal.Opportunities != 3 || steal.Actions != 3 {
		t.Errorf("expected steal 3/3, got %d/%d", steal.Actions, steal.Opportunities)
	}

	btn := agg.ByPosition[BucketBTN]
	if btn.Hands != 3 {
		t.Errorf("expected 3 hands in BTN bucket, got %d", btn.Hands)
	}
	if agg.ByPosition[BucketSB].Hands != 0 {
		t.Errorf("expected empty SB bucket, got %d hands", agg.ByPosition[BucketSB].Hands)
	}

	if len(agg.ProfitHistory) != 3 {
		t.Fatalf("expected 3 profit points, got %d", len(agg.ProfitHistory))
	}
	if last := agg.ProfitHistory[2]; last.Hand != 3 || last.Profit != 1 {
		t.Errorf("expected final profit point {3 1}, got %+v", last)
	}
}

func TestIneligibleHandContributesNothing(t *testing.T) {
	eligible := testHand("h1", testStart, 3)
	noPosition := testHand("h2", testStart.Add(time.Minute), 100)
	noPosition.Hero.Position = parser.PosUnknown

	agg := AggregateHands([]*parser.Hand{eligible, noPosition})

	if agg.HandsCounted != 1 {
		t.Errorf("expected 1 counted hand, got %d", agg.HandsCounted)
	}
	// The skipped hand stays in the raw list for later merges.
	if len(agg.RawHands) != 2 {
		t.Errorf("expected 2 raw hands, got %d", len(agg.RawHands))
	}
	profit := agg.Metrics[MetricTotalProfit].(*MoneyTotal)
	if profit.Value != 3 {
		t.Errorf("expected profit 3 from the eligible hand only, got %d", profit.Value)
	}
}

func TestSessionBoundary(t *testing.T) {
	// Two sessions: hands at +0 and +10 minutes, then a 60 minute gap, then
	// hands at +70 and +75. Duration = 10 + 5, never 75.
	hands := []*parser.Hand{
		testHand("h1", testStart, 0),
		testHand("h2", testStart.Add(10*time.Minute), 0),
		testHand("h3", testStart.Add(70*time.Minute), 0),
		testHand("h4", testStart.Add(75*time.Minute), 0),
	}
	agg := AggregateHands(hands)

	if agg.DurationMinutes != 15 {
		t.Errorf("expected 15 playing minutes across two sessions, got %v", agg.DurationMinutes)
	}
}

func TestAggregateSortsByTime(t *testing.T) {
	hands := []*parser.Hand{
		testHand("late", testStart.Add(5*time.Minute), 10),
		testHand("early", testStart, -4),
	}
	agg := AggregateHands(hands)

	if agg.RawHands[0].ID != "early" {
		t.Fatalf("expected chronological order, got %q first", agg.RawHands[0].ID)
	}
	if agg.ProfitHistory[0].Profit != -4 || agg.ProfitHistory[1].Profit != 6 {
		t.Errorf("expected profit curve [-4 6], got %+v", agg.ProfitHistory)
	}
}

func TestMergeEquivalence(t *testing.T) {
	setA := []*parser.Hand{
		testHand("a1", testStart, 3),
		testHand("a2", testStart.Add(time.Minute), -2),
	}
	setB := []*parser.Hand{
		testHand("b1", testStart.Add(2*time.Hour), 7),
	}

	merged := Merge(AggregateHands(setA), AggregateHands(setB))
	direct := AggregateHands(append(append([]*parser.Hand{}, setA...), setB...))

	mergedJSON, err := json.Marshal(Finalize(merged))
	if err != nil {
		t.Fatalf("marshal merged: %v", err)
	}
	directJSON, err := json.Marshal(Finalize(direct))
	if err != nil {
		t.Fatalf("marshal direct: %v", err)
	}
	if !bytes.Equal(mergedJSON, directJSON) {
		t.Error("merge result differs from single-pass aggregation")
	}
}

func TestExportImportRoundTrip(t *testing.T) {
	agg := AggregateHands([]*parser.Hand{
		testHand("h1", testStart, 3),
		testHand("h2", testStart.Add(time.Minute), -2),
	})

	data, err := Export(agg)
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	restored, err := Import(data)
	if err != nil {
		t.Fatalf("import: %v", err)
	}

	a, _ := json.Marshal(Finalize(agg))
	b, _ := json.Marshal(Finalize(restored))
	if !bytes.Equal(a, b) {
		t.Error("imported aggregate finalizes differently from the original")
	}
}

func TestFilterByGameType(t *testing.T) {
	holdem := testHand("h1", testStart, 3)
	omaha := testHand("h2", testStart.Add(time.Minute), 5)
	omaha.GameType = "Omaha"

	agg := AggregateHands([]*parser.Hand{holdem, omaha})

	all := FilterByGameType(agg, "All")
	if all.TotalHands != 2 {
		t.Errorf("expected 2 hands unfiltered, got %d", all.TotalHands)
	}

	only := FilterByGameType(agg, "Omaha")
	if only.TotalHands != 1 {
		t.Errorf("expected 1 Omaha hand, got %d", only.TotalHands)
	}
	if only.TotalProfit != 5 {
		t.Errorf("expected Omaha profit 5, got %d", only.TotalProfit)
	}
}

func TestBucketFor(t *testing.T) {
	tests := []struct {
		pos       parser.Position
		tableSize int
		want      PositionBucket
	}{
		{parser.PosSB, 6, BucketSB},
		{parser.PosBB, 2, BucketBB},
		{parser.PosBTN, 9, BucketBTN},
		{parser.PosCO, 4, BucketCO},
		{parser.PosUTG, 6, BucketEP},
		{parser.PosUTG, 5, BucketEP},
		{parser.PosUTG, 3, ""}, // 3-handed UTG has no bucket
		{parser.PosMP, 6, BucketMP},
		{parser.PosUTG1, 8, BucketMP},
		{parser.PosLJ, 9, BucketMP},
		{parser.PosHJ, 7, BucketMP},
		{parser.PosUnknown, 6, ""},
	}
	for _, tt := range tests {
		if got := BucketFor(tt.pos, tt.tableSize); got != tt.want {
			t.Errorf("BucketFor(%s, %d) = %q, want %q", tt.pos, tt.tableSize, got, tt.want)
		}
	}
}

package stats

import "github.com/AkatukiSora/poker-hand-stats/internal/parser"

// Merge combines any number of aggregates by re-running the full pipeline
// over the concatenation of their raw hands. Counters are never summed
// directly: session duration and the profit curve depend on chronological
// adjacency across the combined set.
func Merge(aggs ...*Aggregate) *Aggregate {
	var hands []*parser.Hand
	for _, agg := range aggs {
		if agg != nil {
			hands = append(hands, agg.RawHands...)
		}
	}
	return AggregateHands(hands)
}

// FilterByGameType re-runs the pipeline over the subset of hands matching
// the given game type and finalizes the result. "All" keeps every hand.
func FilterByGameType(agg *Aggregate, gameType string) *Report {
	if gameType == "All" || gameType == "" {
		return Finalize(agg)
	}
	var hands []*parser.Hand
	for _, h := range agg.RawHands {
		if h.GameType == gameType {
			hands = append(hands, h)
		}
	}
	return Finalize(AggregateHands(hands))
}

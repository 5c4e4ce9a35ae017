package stats

import (
	"encoding/json"
	"fmt"

	"github.com/AkatukiSora/poker-hand-stats/internal/parser"
)

// Export serializes the pre-finalized aggregate, raw hands included, for
// later re-import and merging.
func Export(agg *Aggregate) ([]byte, error) {
	data, err := json.MarshalIndent(agg, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("export aggregate: %w", err)
	}
	return data, nil
}

// Import restores an aggregate from an Export payload. Only the raw hands
// are trusted; every counter is rebuilt by re-running aggregation, so an
// imported aggregate is indistinguishable from one computed fresh.
func Import(data []byte) (*Aggregate, error) {
	var envelope struct {
		RawHands []*parser.Hand `json:"rawHands"`
	}
	if err := json.Unmarshal(data, &envelope); err != nil {
		return nil, fmt.Errorf("import aggregate: %w", err)
	}
	return AggregateHands(envelope.RawHands), nil
}

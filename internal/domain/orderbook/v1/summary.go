package orderbookv1

// SequenceSummary holds aggregate figures for one sequence.
type SequenceSummary struct {
	Count    int   `json:"count"`
	Quantity int64 `json:"quantity"`
}

// Summary is a read-only digest of the book.
type Summary struct {
	BidMarket SequenceSummary `json:"bidMarket"`
	BidLimit  SequenceSummary `json:"bidLimit"`
	AskMarket SequenceSummary `json:"askMarket"`
	AskLimit  SequenceSummary `json:"askLimit"`

	// BestBid and BestAsk are nil when the side has no limit orders.
	BestBid *float64 `json:"bestBid,omitempty"`
	BestAsk *float64 `json:"bestAsk,omitempty"`
}

// Summarize builds the digest of a sequence.
func Summarize(s *Sequence) SequenceSummary {
	return SequenceSummary{Count: s.Len(), Quantity: s.TotalQuantity()}
}

package snapshotv1

import "time"

// Snapshot represents the book contents at a given position of the order stream.
type Snapshot struct {
	OrderOffset int64       `json:"orderOffset"`
	Orders      []BookOrder `json:"orders"`
}

// BookOrder is one resting order as captured in a snapshot.
type BookOrder struct {
	OrderID  string    `json:"orderID"`
	Kind     string    `json:"kind"`
	Bid      bool      `json:"bid"`
	Quantity int64     `json:"quantity"`
	Price    float64   `json:"price"`
	Time     time.Time `json:"time"`
}

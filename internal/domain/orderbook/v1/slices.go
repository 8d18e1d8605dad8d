package orderbookv1

import (
	"sort"

	orderv1 "github.com/muhammadchandra19/orderbook/internal/domain/order/v1"
)

// Priority reports whether a must be placed strictly ahead of b.
type Priority func(a, b orderv1.Order) bool

// ByTime puts earlier orders first.
func ByTime(a, b orderv1.Order) bool {
	return a.Time().Before(b.Time())
}

// ByBestBid puts the highest price first, earlier orders first within a price.
func ByBestBid(a, b orderv1.Order) bool {
	if a.Price() != b.Price() {
		return a.Price() > b.Price()
	}
	return ByTime(a, b)
}

// ByBestAsk puts the lowest price first, earlier orders first within a price.
func ByBestAsk(a, b orderv1.Order) bool {
	if a.Price() != b.Price() {
		return a.Price() < b.Price()
	}
	return ByTime(a, b)
}

// Sequence is a slice of orders kept sorted by its priority on every insert.
// It is not safe for concurrent use.
type Sequence struct {
	orders []orderv1.Order
	before Priority
}

// NewSequence creates an empty Sequence ordered by before.
func NewSequence(before Priority) *Sequence {
	return &Sequence{before: before}
}

// Insert places o after every order that does not sort behind it, so orders
// with equal keys keep their arrival order.
func (s *Sequence) Insert(o orderv1.Order) {
	i := sort.Search(len(s.orders), func(i int) bool { return s.before(o, s.orders[i]) })
	s.orders = append(s.orders, nil)
	copy(s.orders[i+1:], s.orders[i:])
	s.orders[i] = o
}

// Len returns the number of orders in the sequence.
func (s *Sequence) Len() int { return len(s.orders) }

// Orders returns a copy of the sequence in priority order.
func (s *Sequence) Orders() []orderv1.Order {
	out := make([]orderv1.Order, len(s.orders))
	copy(out, s.orders)
	return out
}

// First returns the order at the head of the sequence.
func (s *Sequence) First() (orderv1.Order, bool) {
	if len(s.orders) == 0 {
		return nil, false
	}
	return s.orders[0], true
}

// TotalQuantity sums the quantity of every order in the sequence.
func (s *Sequence) TotalQuantity() int64 {
	var total int64
	for _, o := range s.orders {
		total += o.Quantity()
	}
	return total
}


package orderbookv1

import (
	"testing"
	"time"

	orderv1 "github.com/muhammadchandra19/orderbook/internal/domain/order/v1"
	"github.com/stretchr/testify/assert"
)

var base = time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC)

func ids(orders []orderv1.Order) []string {
	out := make([]string, 0, len(orders))
	for _, o := range orders {
		out = append(out, o.ID())
	}
	return out
}

func TestSequence_Insert(t *testing.T) {
	testCases := []struct {
		name     string
		priority Priority
		orders   []orderv1.Order
		expected []string
	}{
		{
			name:     "by time keeps arrival order among ties",
			priority: ByTime,
			orders: []orderv1.Order{
				orderv1.NewMarketOrder("a", 1, base),
				orderv1.NewMarketOrder("b", 1, base),
				orderv1.NewMarketOrder("c", 1, base.Add(-time.Minute)),
				orderv1.NewMarketOrder("d", 1, base),
			},
			expected: []string{"c", "a", "b", "d"},
		},
		{
			name:     "best bid",
			priority: ByBestBid,
			orders: []orderv1.Order{
				orderv1.NewLimitOrder("a", 1, 5, base),
				orderv1.NewLimitOrder("b", 1, 10, base),
				orderv1.NewLimitOrder("c", 1, 10, base.Add(-time.Minute)),
				orderv1.NewLimitOrder("d", 1, 10, base),
			},
			expected: []string{"c", "b", "d", "a"},
		},
		{
			name:     "best ask",
			priority: ByBestAsk,
			orders: []orderv1.Order{
				orderv1.NewLimitOrder("a", 1, 10, base),
				orderv1.NewLimitOrder("b", 1, 5, base),
				orderv1.NewLimitOrder("c", 1, 5, base),
				orderv1.NewLimitOrder("d", 1, -1, base.Add(time.Hour)),
			},
			expected: []string{"d", "b", "c", "a"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			s := NewSequence(tc.priority)
			for _, o := range tc.orders {
				s.Insert(o)
			}

			assert.Equal(t, tc.expected, ids(s.Orders()))
			assert.Equal(t, len(tc.orders), s.Len())
		})
	}
}

func TestSequence_OrdersIsCopy(t *testing.T) {
	s := NewSequence(ByTime)
	s.Insert(orderv1.NewMarketOrder("a", 1, base))

	view := s.Orders()
	view[0] = orderv1.NewMarketOrder("z", 1, base)

	assert.Equal(t, []string{"a"}, ids(s.Orders()))
}

func TestSequence_Aggregates(t *testing.T) {
	s := NewSequence(ByBestBid)

	_, ok := s.First()
	assert.False(t, ok)
	assert.Equal(t, SequenceSummary{}, Summarize(s))

	s.Insert(orderv1.NewLimitOrder("a", 2, 5, base))
	s.Insert(orderv1.NewLimitOrder("b", 3, 7, base))

	first, ok := s.First()
	assert.True(t, ok)
	assert.Equal(t, "b", first.ID())
	assert.Equal(t, SequenceSummary{Count: 2, Quantity: 5}, Summarize(s))
}

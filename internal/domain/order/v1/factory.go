package orderv1

import (
	"time"

	"github.com/muhammadchandra19/orderbook/pkg/util"
)

// Factory builds orders, reading the clock when no time is supplied.
type Factory struct {
	clock util.Clock
}

// NewFactory creates a Factory. A nil clock falls back to the wall clock.
func NewFactory(clock util.Clock) *Factory {
	if clock == nil {
		clock = util.RealClock{}
	}
	return &Factory{clock: clock}
}

// Market creates a market order stamped with the current clock reading.
func (f *Factory) Market(id string, quantity int64) *MarketOrder {
	return NewMarketOrder(id, quantity, f.clock.Now())
}

// Limit creates a limit order stamped with the current clock reading.
func (f *Factory) Limit(id string, quantity int64, price float64) *LimitOrder {
	return NewLimitOrder(id, quantity, price, f.clock.Now())
}

// Build creates an order of the given kind. A nil at means now.
func (f *Factory) Build(kind Kind, id string, quantity int64, price float64, at *time.Time) (Order, error) {
	stamp := f.clock.Now()
	if at != nil {
		stamp = *at
	}

	switch kind {
	case KindMarket:
		return NewMarketOrder(id, quantity, stamp), nil
	case KindLimit:
		return NewLimitOrder(id, quantity, price, stamp), nil
	default:
		return nil, ErrUnknownOrderType
	}
}

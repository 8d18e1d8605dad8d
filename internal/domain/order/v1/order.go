package orderv1

import (
	"fmt"
	"time"
)

// Kind names the variant of an order.
type Kind string

const (
	// KindMarket is an order executed at whatever price the book offers.
	KindMarket Kind = "market"
	// KindLimit is an order bounded by a caller supplied price.
	KindLimit Kind = "limit"
)

// MarketPrice is the price carried by every market order.
const MarketPrice = 0.0

// Order is implemented by MarketOrder and LimitOrder only.
type Order interface {
	ID() string
	Quantity() int64
	Price() float64
	Time() time.Time
	Kind() Kind
	String() string

	order()
}

type base struct {
	id       string
	quantity int64
	price    float64
	time     time.Time
}

func (b base) ID() string { return b.id }

func (b base) Quantity() int64 { return b.quantity }

func (b base) Price() float64 { return b.price }

func (b base) Time() time.Time { return b.time }

func (b base) order() {}

func (b base) fields() string {
	return fmt.Sprintf("ID: %s | Quantity: %d | Price: %g | Time: %s",
		b.id, b.quantity, b.price, b.time.Format(time.RFC3339Nano))
}

// MarketOrder is an order without a limit price.
type MarketOrder struct {
	base
}

// NewMarketOrder creates a market order stamped with the given time.
func NewMarketOrder(id string, quantity int64, at time.Time) *MarketOrder {
	return &MarketOrder{base{id: id, quantity: quantity, price: MarketPrice, time: at}}
}

// Kind returns KindMarket.
func (o *MarketOrder) Kind() Kind { return KindMarket }

func (o *MarketOrder) String() string { return "MarketOrder | " + o.fields() }

// LimitOrder is an order with a limit price.
type LimitOrder struct {
	base
}

// NewLimitOrder creates a limit order stamped with the given time.
func NewLimitOrder(id string, quantity int64, price float64, at time.Time) *LimitOrder {
	return &LimitOrder{base{id: id, quantity: quantity, price: price, time: at}}
}

// Kind returns KindLimit.
func (o *LimitOrder) Kind() Kind { return KindLimit }

func (o *LimitOrder) String() string { return "LimitOrder | " + o.fields() }

package orderbookv1

import (
	"errors"

	orderv1 "github.com/muhammadchandra19/orderbook/internal/domain/order/v1"
	snapshotv1 "github.com/muhammadchandra19/orderbook/internal/domain/snapshot/v1"
)

// ErrUnknownOrderVariant is returned when an order is nil or neither a market nor a limit order.
var ErrUnknownOrderVariant = errors.New("unknown order variant")

// Orderbook defines the interface for a single instrument order book.
//
//go:generate mockgen -source interface.go -destination=mock/interface_mock.go -package=orderbookv1_mock
type Orderbook interface {
	AddBidOrder(o orderv1.Order) error
	AddAskOrder(o orderv1.Order) error

	BidMarketOrders() []orderv1.Order
	BidLimitOrders() []orderv1.Order
	AskMarketOrders() []orderv1.Order
	AskLimitOrders() []orderv1.Order

	Summary() Summary
	CreateSnapshot() *snapshotv1.Snapshot
	RestoreOrderbook(snapshot *snapshotv1.Snapshot) error
}

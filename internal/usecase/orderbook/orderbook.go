package orderbook

import (
	stderrors "errors"
	"fmt"
	"sync"

	orderv1 "github.com/muhammadchandra19/orderbook/internal/domain/order/v1"
	orderbookv1 "github.com/muhammadchandra19/orderbook/internal/domain/orderbook/v1"
	snapshotv1 "github.com/muhammadchandra19/orderbook/internal/domain/snapshot/v1"
	"github.com/muhammadchandra19/orderbook/pkg/errors"
	"github.com/muhammadchandra19/orderbook/pkg/util"
)

// Orderbook keeps the resting orders of one instrument in four sorted sequences.
type Orderbook struct {
	mu sync.RWMutex

	bidMarket *orderbookv1.Sequence // time
	bidLimit  *orderbookv1.Sequence // highest price, then time
	askMarket *orderbookv1.Sequence // time
	askLimit  *orderbookv1.Sequence // lowest price, then time
}

// NewOrderbook creates an empty orderbook
func NewOrderbook() *Orderbook {
	return &Orderbook{
		bidMarket: orderbookv1.NewSequence(orderbookv1.ByTime),
		bidLimit:  orderbookv1.NewSequence(orderbookv1.ByBestBid),
		askMarket: orderbookv1.NewSequence(orderbookv1.ByTime),
		askLimit:  orderbookv1.NewSequence(orderbookv1.ByBestAsk),
	}
}

// AddBidOrder inserts a buy order into the bid sequence matching its variant.
func (ob *Orderbook) AddBidOrder(o orderv1.Order) error {
	ob.mu.Lock()
	defer ob.mu.Unlock()

	return ob.insert(o, ob.bidMarket, ob.bidLimit)
}

// AddAskOrder inserts a sell order into the ask sequence matching its variant.
func (ob *Orderbook) AddAskOrder(o orderv1.Order) error {
	ob.mu.Lock()
	defer ob.mu.Unlock()

	return ob.insert(o, ob.askMarket, ob.askLimit)
}

func (ob *Orderbook) insert(o orderv1.Order, market, limit *orderbookv1.Sequence) error {
	var target *orderbookv1.Sequence

	switch v := o.(type) {
	case *orderv1.MarketOrder:
		if v != nil {
			target = market
		}
	case *orderv1.LimitOrder:
		if v != nil {
			target = limit
		}
	}

	if target == nil {
		return errors.NewTracer("unknown_order_variant").
			Wrap(fmt.Errorf("%w: %T", orderbookv1.ErrUnknownOrderVariant, o))
	}

	target.Insert(o)
	return nil
}

// BidMarketOrders returns the buy market orders, earliest first.
func (ob *Orderbook) BidMarketOrders() []orderv1.Order {
	ob.mu.RLock()
	defer ob.mu.RUnlock()
	return ob.bidMarket.Orders()
}

// BidLimitOrders returns the buy limit orders, highest price first.
func (ob *Orderbook) BidLimitOrders() []orderv1.Order {
	ob.mu.RLock()
	defer ob.mu.RUnlock()
	return ob.bidLimit.Orders()
}

// AskMarketOrders returns the sell market orders, earliest first.
func (ob *Orderbook) AskMarketOrders() []orderv1.Order {
	ob.mu.RLock()
	defer ob.mu.RUnlock()
	return ob.askMarket.Orders()
}

// AskLimitOrders returns the sell limit orders, lowest price first.
func (ob *Orderbook) AskLimitOrders() []orderv1.Order {
	ob.mu.RLock()
	defer ob.mu.RUnlock()
	return ob.askLimit.Orders()
}

// Summary returns counts, quantities and the best limit prices of the book.
func (ob *Orderbook) Summary() orderbookv1.Summary {
	ob.mu.RLock()
	defer ob.mu.RUnlock()

	summary := orderbookv1.Summary{
		BidMarket: orderbookv1.Summarize(ob.bidMarket),
		BidLimit:  orderbookv1.Summarize(ob.bidLimit),
		AskMarket: orderbookv1.Summarize(ob.askMarket),
		AskLimit:  orderbookv1.Summarize(ob.askLimit),
	}

	if best, ok := ob.bidLimit.First(); ok {
		summary.BestBid = util.Ptr(best.Price())
	}
	if best, ok := ob.askLimit.First(); ok {
		summary.BestAsk = util.Ptr(best.Price())
	}

	return summary
}

// CreateSnapshot captures every sequence in its current order.
// The returned snapshot carries no stream offset; the caller records it.
func (ob *Orderbook) CreateSnapshot() *snapshotv1.Snapshot {
	ob.mu.RLock()
	defer ob.mu.RUnlock()

	var bookOrders []snapshotv1.BookOrder
	collect := func(s *orderbookv1.Sequence, bid bool) {
		for _, o := range s.Orders() {
			bookOrders = append(bookOrders, snapshotv1.BookOrder{
				OrderID:  o.ID(),
				Kind:     string(o.Kind()),
				Bid:      bid,
				Quantity: o.Quantity(),
				Price:    o.Price(),
				Time:     o.Time(),
			})
		}
	}

	collect(ob.bidMarket, true)
	collect(ob.bidLimit, true)
	collect(ob.askMarket, false)
	collect(ob.askLimit, false)

	return &snapshotv1.Snapshot{Orders: bookOrders}
}

// RestoreOrderbook replaces the book contents with the orders of a snapshot.
// Every order goes through the regular insertion path; on failure the book is left unchanged.
func (ob *Orderbook) RestoreOrderbook(snapshot *snapshotv1.Snapshot) error {
	if snapshot == nil {
		return errors.NewTracer("orderbook_restore_error").Wrap(stderrors.New("snapshot cannot be nil"))
	}

	factory := orderv1.NewFactory(nil)
	restored := NewOrderbook()

	for _, bookOrder := range snapshot.Orders {
		order, err := factory.Build(orderv1.Kind(bookOrder.Kind), bookOrder.OrderID,
			bookOrder.Quantity, bookOrder.Price, util.Ptr(bookOrder.Time))
		if err != nil {
			return errors.NewTracer("orderbook_restore_error").
				Wrap(fmt.Errorf("restore order %s: %w", bookOrder.OrderID, err))
		}

		if bookOrder.Bid {
			err = restored.AddBidOrder(order)
		} else {
			err = restored.AddAskOrder(order)
		}
		if err != nil {
			return errors.NewTracer("orderbook_restore_error").
				Wrap(fmt.Errorf("restore order %s: %w", bookOrder.OrderID, err))
		}
	}

	ob.mu.Lock()
	defer ob.mu.Unlock()

	ob.bidMarket = restored.bidMarket
	ob.bidLimit = restored.bidLimit
	ob.askMarket = restored.askMarket
	ob.askLimit = restored.askLimit

	return nil
}

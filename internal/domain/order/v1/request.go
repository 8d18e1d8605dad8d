package orderv1

import (
	stderrors "errors"
	"fmt"
	"time"

	"github.com/muhammadchandra19/orderbook/pkg/errors"
)

// ErrUnknownOrderType is returned when a payload names neither a market nor a limit order.
var ErrUnknownOrderType = stderrors.New("unknown order type")

// PlaceOrderRequest represents a request to place an order in the order book.
type PlaceOrderRequest struct {
	OrderID  string  `json:"orderID"`
	Type     Kind    `json:"type"`
	Bid      bool    `json:"bid"`
	Quantity int64   `json:"quantity"`
	Price    float64 `json:"price"`
	Time     string  `json:"time,omitempty"` // RFC 3339; empty means the time of arrival
	Offset   int64   `json:"-"`              // Offset for the order in the stream
}

// Validate reports structural problems with the payload. Quantity and price are not checked.
func (r *PlaceOrderRequest) Validate() error {
	baseErr := errors.NewBaseError()

	if r.OrderID == "" {
		baseErr.AddErrorDetails(errors.NewErrorDetails("order id is required",
			string(errors.OrderPayloadMissingID), "orderID"))
	}

	if r.Type != KindMarket && r.Type != KindLimit {
		baseErr.AddErrorDetails(errors.NewErrorDetails(fmt.Sprintf("unknown order type %q", r.Type),
			string(errors.OrderPayloadUnknownType), "type"))
	}

	if r.Time != "" {
		if _, err := time.Parse(time.RFC3339Nano, r.Time); err != nil {
			baseErr.AddErrorDetails(errors.NewErrorDetails(err.Error(),
				string(errors.OrderPayloadInvalidTime), "time"))
		}
	}

	if baseErr.HasDetails() {
		return baseErr
	}
	return nil
}

// ToOrder validates the payload and builds the order it describes.
func (r *PlaceOrderRequest) ToOrder(factory *Factory) (Order, error) {
	if err := r.Validate(); err != nil {
		return nil, err
	}

	var at *time.Time
	if r.Time != "" {
		parsed, _ := time.Parse(time.RFC3339Nano, r.Time)
		at = &parsed
	}

	return factory.Build(r.Type, r.OrderID, r.Quantity, r.Price, at)
}

package orderreaderv1

import (
	"context"
	"errors"

	orderv1 "github.com/muhammadchandra19/orderbook/internal/domain/order/v1"
	"github.com/segmentio/kafka-go"
)

// ErrUndecodableMessage is returned by ReadMessage when a message was read but its payload is not an order.
// The message is returned alongside it so the caller can skip it.
var ErrUndecodableMessage = errors.New("undecodable order message")

// OrderReader defines the interface for reading orders from a source.
//
//go:generate mockgen -source interface.go -destination=mock/interface_mock.go -package=orderreaderv1_mock
type OrderReader interface {
	// ReadMessage reads a message and returns it with the decoded order payload
	ReadMessage(ctx context.Context) (kafka.Message, orderv1.PlaceOrderRequest, error)
	// SetOffset sets the offset for the reader
	SetOffset(offset int64) error
	// Close closes the reader
	Close() error

	// CommitMessages commits the messages to Kafka after processing
	CommitMessages(ctx context.Context, msgs ...kafka.Message) error
}

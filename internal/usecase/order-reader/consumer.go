package orderreader

import (
	"context"
	"encoding/json"
	"fmt"

	orderv1 "github.com/muhammadchandra19/orderbook/internal/domain/order/v1"
	orderreaderv1 "github.com/muhammadchandra19/orderbook/internal/domain/order-reader/v1"
	"github.com/muhammadchandra19/orderbook/pkg/config"
	"github.com/muhammadchandra19/orderbook/pkg/errors"
	"github.com/muhammadchandra19/orderbook/pkg/logger"
	"github.com/segmentio/kafka-go"
)

// Reader consumes order payloads from a single partition of the order topic.
type Reader struct {
	kafkaReader *kafka.Reader
	logger      *logger.Logger
}

// NewReader creates a new Kafka reader for consuming messages from the order topic.
func NewReader(config config.KafkaConfig, log *logger.Logger) *Reader {
	kafkaReader := kafka.NewReader(kafka.ReaderConfig{
		Brokers: config.Brokers,
		Topic:   config.Topic,
		// Partition readers let the engine seek to the offset of its last snapshot.
		Partition:   0,
		MinBytes:    1,
		MaxBytes:    10e6,
		StartOffset: kafka.LastOffset,
	})

	return &Reader{
		kafkaReader: kafkaReader,
		logger:      log.WithFields(logger.NewField("topic", config.Topic)),
	}
}

// logError is a helper method to log errors consistently
func (r *Reader) logError(ctx context.Context, err error, operation string) {
	r.logger.ErrorContext(ctx, err,
		logger.NewField("error", err.Error()),
		logger.NewField("operation", operation),
	)
}

// SetOffset sets the offset for the Kafka reader.
func (r *Reader) SetOffset(offset int64) error {
	if err := r.kafkaReader.SetOffset(offset); err != nil {
		r.logError(context.Background(), err, "SetOffset")
		return err
	}
	return nil
}

// ReadMessage reads a message from the Kafka topic and decodes its order payload.
func (r *Reader) ReadMessage(ctx context.Context) (kafka.Message, orderv1.PlaceOrderRequest, error) {
	msg, err := r.kafkaReader.ReadMessage(ctx)
	if err != nil {
		r.logError(ctx, err, "ReadMessage")
		return kafka.Message{}, orderv1.PlaceOrderRequest{}, err
	}

	order, err := decode(msg)
	if err != nil {
		r.logError(ctx, err, "UnmarshalOrder")
		return msg, orderv1.PlaceOrderRequest{}, err
	}

	r.logger.DebugContext(ctx, "ReadMessage",
		logger.NewField("orderID", order.OrderID),
		logger.NewField("type", order.Type),
		logger.NewField("bid", order.Bid),
		logger.NewField("quantity", order.Quantity),
		logger.NewField("price", order.Price),
		logger.NewField("offset", order.Offset),
	)

	return msg, order, nil
}

func decode(msg kafka.Message) (orderv1.PlaceOrderRequest, error) {
	var order orderv1.PlaceOrderRequest
	if err := json.Unmarshal(msg.Value, &order); err != nil {
		return orderv1.PlaceOrderRequest{}, errors.NewTracer("order_unmarshal_error").
			Wrap(fmt.Errorf("%w: %w", orderreaderv1.ErrUndecodableMessage, err))
	}

	order.Offset = msg.Offset
	return order, nil
}

// Close properly closes the Kafka reader.
func (r *Reader) Close() error {
	if err := r.kafkaReader.Close(); err != nil {
		r.logError(context.Background(), err, "Close")
		return err
	}
	return nil
}

// CommitMessages is a no-op: a partition reader has no consumer group to commit to,
// and the engine persists its position with each snapshot.
func (r *Reader) CommitMessages(_ context.Context, _ ...kafka.Message) error {
	return nil
}

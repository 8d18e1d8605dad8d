package engine

import (
	"context"
	stderrors "errors"
	"sync"
	"time"

	orderv1 "github.com/muhammadchandra19/orderbook/internal/domain/order/v1"
	orderreaderv1 "github.com/muhammadchandra19/orderbook/internal/domain/order-reader/v1"
	orderbookv1 "github.com/muhammadchandra19/orderbook/internal/domain/orderbook/v1"
	snapshotv1 "github.com/muhammadchandra19/orderbook/internal/domain/snapshot/v1"
	"github.com/muhammadchandra19/orderbook/pkg/config"
	"github.com/muhammadchandra19/orderbook/pkg/errors"
	"github.com/muhammadchandra19/orderbook/pkg/logger"
	"github.com/muhammadchandra19/orderbook/pkg/metrics"
	"github.com/muhammadchandra19/orderbook/pkg/util"
	"github.com/segmentio/kafka-go"
)

// Engine feeds the order stream into the book and snapshots the book periodically.
type Engine struct {
	// Core components
	orderbook     orderbookv1.Orderbook
	orderReader   orderreaderv1.OrderReader
	snapshotStore snapshotv1.Store
	factory       *orderv1.Factory
	metrics       *metrics.Metrics
	logger        *logger.Logger
	config        *config.Config

	// processMu keeps a book change and its offset update atomic with respect to snapshots.
	processMu sync.Mutex

	mu                 sync.RWMutex
	orderOffset        int64
	lastSnapshotOffset int64
	acceptedOrders     int64

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup

	snapshotInterval    time.Duration
	snapshotOffsetDelta int64
	readBackoff         time.Duration
}

// NewEngine creates a new Engine and restores the book from the last snapshot, if any.
func NewEngine(
	orderbook orderbookv1.Orderbook,
	orderReader orderreaderv1.OrderReader,
	snapshotStore snapshotv1.Store,
	logger *logger.Logger,
	config *config.Config,
	clock util.Clock,
) (*Engine, error) {
	return NewEngineWithOptions(orderbook, orderReader, snapshotStore, logger, config, clock,
		OptionsFromConfig(config.EngineConfig))
}

// NewEngineWithOptions creates a new engine with custom options
func NewEngineWithOptions(
	orderbook orderbookv1.Orderbook,
	orderReader orderreaderv1.OrderReader,
	snapshotStore snapshotv1.Store,
	log *logger.Logger,
	config *config.Config,
	clock util.Clock,
	options *Options,
) (*Engine, error) {
	e := &Engine{
		orderbook:     orderbook,
		orderReader:   orderReader,
		snapshotStore: snapshotStore,
		factory:       orderv1.NewFactory(clock),
		metrics:       options.Metrics,
		logger:        log.WithFields(logger.NewField("pair", config.Pair)),
		config:        config,

		snapshotInterval:    options.SnapshotInterval,
		snapshotOffsetDelta: options.SnapshotOffsetDelta,
		readBackoff:         options.ReadBackoff,
		orderOffset:         -1,
		lastSnapshotOffset:  -1,
	}

	if err := e.loadSnapshot(context.Background()); err != nil {
		return nil, err
	}

	return e, nil
}

// Start positions the reader after the restored offset and starts the processing routines.
func (e *Engine) Start(ctx context.Context) error {
	startOffset := e.getOrderOffset()
	if startOffset >= 0 {
		startOffset++
	}

	if err := e.orderReader.SetOffset(startOffset); err != nil {
		return errors.NewTracer("engine_set_offset_error").Wrap(err)
	}

	e.ctx, e.cancel = context.WithCancel(ctx)

	e.wg.Add(2)
	go e.runOrderProcessor()
	go e.runSnapshotManager()

	e.logger.Info("Engine started", logger.NewField("startOffset", startOffset))

	return nil
}

// Stop gracefully shuts down the engine
func (e *Engine) Stop(ctx context.Context) error {
	if e.cancel != nil {
		e.cancel()
	}

	// Wait for goroutines to finish with timeout
	done := make(chan struct{})
	go func() {
		e.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		e.logger.Info("Engine stopped gracefully")
		return nil
	case <-ctx.Done():
		e.logger.Warn("Engine stop timeout exceeded")
		return ctx.Err()
	}
}

// runOrderProcessor reads, commits and applies orders one at a time.
func (e *Engine) runOrderProcessor() {
	defer e.wg.Done()
	defer e.orderReader.Close()

	e.logger.Info("Starting order processor")

	for {
		select {
		case <-e.ctx.Done():
			e.logger.Info("Order processor shutting down")
			return
		default:
		}

		msg, orderRequest, err := e.orderReader.ReadMessage(e.ctx)
		if err != nil {
			if e.ctx.Err() != nil {
				continue
			}
			if stderrors.Is(err, orderreaderv1.ErrUndecodableMessage) {
				e.skipMessage(e.ctx, msg, err)
				continue
			}
			e.logger.ErrorContext(e.ctx, err, logger.NewField("action", "read_order_message"))

			select {
			case <-e.ctx.Done():
			case <-time.After(e.readBackoff):
			}
			continue
		}

		e.applyMessage(e.ctx, msg, &orderRequest)
	}
}

// applyMessage commits the message and adds its order to the book. The offset only advances
// for orders that reached the book.
func (e *Engine) applyMessage(ctx context.Context, msg kafka.Message, orderRequest *orderv1.PlaceOrderRequest) {
	ctx = util.WithOffset(util.WithRequestID(ctx, orderRequest.OrderID), msg.Offset)

	if err := e.orderReader.CommitMessages(ctx, msg); err != nil {
		e.logger.ErrorContext(ctx, err, logger.NewField("action", "commit_order_message"))
	}

	e.processMu.Lock()
	defer e.processMu.Unlock()

	if err := e.processOrder(ctx, orderRequest); err != nil {
		e.metrics.OrderRejected()
		e.logger.ErrorContext(ctx, err, logger.NewField("action", "process_order"))
		return
	}

	e.setOrderOffset(msg.Offset)
}

// skipMessage counts a message whose payload is not an order as rejected and moves past it.
func (e *Engine) skipMessage(ctx context.Context, msg kafka.Message, err error) {
	ctx = util.WithOffset(util.WithRequestID(ctx, ""), msg.Offset)

	e.metrics.OrderRejected()
	e.logger.ErrorContext(ctx, err, logger.NewField("action", "decode_order_message"))

	if err := e.orderReader.CommitMessages(ctx, msg); err != nil {
		e.logger.ErrorContext(ctx, err, logger.NewField("action", "commit_order_message"))
	}
}

// runSnapshotManager handles periodic snapshots
func (e *Engine) runSnapshotManager() {
	defer e.wg.Done()

	ticker := time.NewTicker(e.snapshotInterval)
	defer ticker.Stop()

	e.logger.Info("Starting snapshot manager")

	for {
		select {
		case <-e.ctx.Done():
			e.logger.Info("Snapshot manager shutting down")
			return
		case <-ticker.C:
			if e.shouldCreateSnapshot() {
				e.createAndStoreSnapshot(e.ctx)
			}
		}
	}
}

// processOrder builds the order described by the request and adds it to its side of the book.
func (e *Engine) processOrder(ctx context.Context, orderRequest *orderv1.PlaceOrderRequest) error {
	order, err := orderRequest.ToOrder(e.factory)
	if err != nil {
		return err
	}

	if orderRequest.Bid {
		err = e.orderbook.AddBidOrder(order)
	} else {
		err = e.orderbook.AddAskOrder(order)
	}
	if err != nil {
		return err
	}

	e.mu.Lock()
	e.acceptedOrders++
	e.mu.Unlock()
	e.metrics.OrderAccepted(orderRequest.Bid, string(order.Kind()))

	e.logger.DebugContext(ctx, "Order added",
		logger.NewField("order", order.String()),
		logger.NewField("bid", orderRequest.Bid),
	)
	return nil
}

// shouldCreateSnapshot checks if a snapshot should be created
func (e *Engine) shouldCreateSnapshot() bool {
	e.mu.RLock()
	currentOffset := e.orderOffset
	lastSnapshotOffset := e.lastSnapshotOffset
	e.mu.RUnlock()

	if currentOffset < 0 {
		return false
	}

	delta := currentOffset - lastSnapshotOffset
	return delta >= e.snapshotOffsetDelta
}

// createAndStoreSnapshot creates and stores a snapshot
func (e *Engine) createAndStoreSnapshot(ctx context.Context) {
	e.processMu.Lock()
	currentOffset := e.getOrderOffset()
	snapshot := e.orderbook.CreateSnapshot()
	e.processMu.Unlock()

	snapshot.OrderOffset = currentOffset
	ctx = util.WithOffset(util.WithRequestID(ctx, ""), currentOffset)

	if err := e.snapshotStore.Store(ctx, snapshot); err != nil {
		e.metrics.SnapshotFailed()
		e.logger.ErrorContext(ctx, err, logger.NewField("action", "store_snapshot"))
		return
	}

	e.metrics.SnapshotStored()
	e.setLastSnapshotOffset(currentOffset)
	e.logger.InfoContext(ctx, "Snapshot stored successfully",
		logger.NewField("summary", e.orderbook.Summary()),
	)
}

func (e *Engine) getOrderOffset() int64 {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.orderOffset
}

func (e *Engine) setOrderOffset(offset int64) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.orderOffset = offset
	e.metrics.SetOrderOffset(offset)
}

func (e *Engine) setLastSnapshotOffset(offset int64) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.lastSnapshotOffset = offset
}

// loadSnapshot loads and restores the orderbook from snapshot
func (e *Engine) loadSnapshot(ctx context.Context) error {
	snapshot, err := e.snapshotStore.LoadStore(ctx)
	if err != nil {
		return err
	}

	if snapshot == nil {
		return nil
	}

	if err := e.orderbook.RestoreOrderbook(snapshot); err != nil {
		return errors.NewTracer("snapshot_restore_error").Wrap(err)
	}

	e.mu.Lock()
	e.orderOffset = snapshot.OrderOffset
	e.lastSnapshotOffset = snapshot.OrderOffset
	e.mu.Unlock()

	summary := e.orderbook.Summary()
	e.metrics.SetOrderOffset(snapshot.OrderOffset)
	e.metrics.SetBookOrders(true, string(orderv1.KindMarket), summary.BidMarket.Count)
	e.metrics.SetBookOrders(true, string(orderv1.KindLimit), summary.BidLimit.Count)
	e.metrics.SetBookOrders(false, string(orderv1.KindMarket), summary.AskMarket.Count)
	e.metrics.SetBookOrders(false, string(orderv1.KindLimit), summary.AskLimit.Count)

	e.logger.Info("Orderbook restored from snapshot",
		logger.NewField("orderOffset", snapshot.OrderOffset),
		logger.NewField("orders", len(snapshot.Orders)),
	)

	return nil
}

// GetOrderOffset returns the offset of the last applied order, or -1.
func (e *Engine) GetOrderOffset() int64 {
	return e.getOrderOffset()
}

// GetLastSnapshotOffset returns the offset captured by the last stored snapshot, or -1.
func (e *Engine) GetLastSnapshotOffset() int64 {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.lastSnapshotOffset
}

// GetAcceptedOrders returns how many orders were added to the book since start.
func (e *Engine) GetAcceptedOrders() int64 {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.acceptedOrders
}

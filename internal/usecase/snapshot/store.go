package snapshot

import (
	"context"
	"encoding/json"

	snapshotv1 "github.com/muhammadchandra19/orderbook/internal/domain/snapshot/v1"
	"github.com/muhammadchandra19/orderbook/pkg/errors"
	"github.com/muhammadchandra19/orderbook/pkg/logger"
	"github.com/muhammadchandra19/orderbook/pkg/redis"
)

const keyPrefix = "orderbook:snapshot:"

// Store persists book snapshots in Redis, one key per instrument.
type Store struct {
	key         string
	logger      *logger.Logger
	redisclient redis.Client
}

// NewSnapshotStore creates a new Store for the given pair.
func NewSnapshotStore(redisclient redis.Client, pair string, log *logger.Logger) *Store {
	return &Store{
		key:         keyPrefix + pair,
		redisclient: redisclient,
		logger:      log.WithFields(logger.NewField("pair", pair)),
	}
}

// Store stores the snapshot in Redis.
func (s *Store) Store(ctx context.Context, snapshot *snapshotv1.Snapshot) error {
	buf, err := json.Marshal(snapshot)
	if err != nil {
		s.logger.ErrorContext(ctx, err, logger.NewField("action", "marshal snapshot"))
		return errors.NewTracer("snapshot_marshal_error").Wrap(err)
	}

	if err := s.redisclient.Set(ctx, s.key, buf, 0); err != nil {
		s.logger.ErrorContext(ctx, err, logger.NewField("action", "store snapshot"))
		return errors.NewTracer("snapshot_store_error").Wrap(err)
	}

	s.logger.InfoContext(ctx, "Snapshot stored",
		logger.NewField("action", "store snapshot"),
		logger.NewField("orderOffset", snapshot.OrderOffset),
		logger.NewField("orders", len(snapshot.Orders)),
	)
	return nil
}

// LoadStore loads the snapshot from Redis. It returns nil when none is stored.
func (s *Store) LoadStore(ctx context.Context) (*snapshotv1.Snapshot, error) {
	data, err := s.redisclient.Get(ctx, s.key)
	if err != nil {
		s.logger.ErrorContext(ctx, err, logger.NewField("action", "load snapshot"))
		return nil, errors.NewTracer("snapshot_load_error").Wrap(err)
	}

	if data == "" {
		s.logger.WarnContext(ctx, "No snapshot found", logger.NewField("action", "load snapshot"))
		return nil, nil
	}

	var snapshot snapshotv1.Snapshot
	if err := json.Unmarshal([]byte(data), &snapshot); err != nil {
		s.logger.ErrorContext(ctx, err, logger.NewField("action", "unmarshal snapshot"))
		return nil, errors.NewTracer("snapshot_unmarshal_error").Wrap(err)
	}

	return &snapshot, nil
}

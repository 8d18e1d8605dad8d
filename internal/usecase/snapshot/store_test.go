package snapshot

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	snapshotv1 "github.com/muhammadchandra19/orderbook/internal/domain/snapshot/v1"
	"github.com/muhammadchandra19/orderbook/pkg/logger"
	redis_mock "github.com/muhammadchandra19/orderbook/pkg/redis/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testFixture struct {
	redis *redis_mock.MockClient
	store *Store
}

func setupTest(t *testing.T) testFixture {
	ctrl := gomock.NewController(t)
	mockRedis := redis_mock.NewMockClient(ctrl)

	return testFixture{
		redis: mockRedis,
		store: NewSnapshotStore(mockRedis, "BTC-USD", logger.NewNop()),
	}
}

func testSnapshot() *snapshotv1.Snapshot {
	return &snapshotv1.Snapshot{
		OrderOffset: 42,
		Orders: []snapshotv1.BookOrder{
			{OrderID: "004", Kind: "market", Bid: true, Quantity: 4, Time: time.Date(2024, 3, 1, 7, 30, 0, 0, time.UTC)},
			{OrderID: "010", Kind: "limit", Bid: true, Quantity: 10, Price: 15, Time: time.Date(2024, 3, 1, 7, 30, 0, 0, time.UTC)},
		},
	}
}

func TestStore_Store(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		f := setupTest(t)
		snapshot := testSnapshot()

		f.redis.EXPECT().
			Set(ctx, "orderbook:snapshot:BTC-USD", gomock.Any(), time.Duration(0)).
			DoAndReturn(func(_ context.Context, _ string, value any, _ time.Duration) error {
				var stored snapshotv1.Snapshot
				require.NoError(t, json.Unmarshal(value.([]byte), &stored))
				assert.Equal(t, *snapshot, stored)
				return nil
			})

		assert.NoError(t, f.store.Store(ctx, snapshot))
	})

	t.Run("redis failure", func(t *testing.T) {
		f := setupTest(t)
		f.redis.EXPECT().Set(ctx, gomock.Any(), gomock.Any(), gomock.Any()).Return(stderrors.New("connection refused"))

		err := f.store.Store(ctx, testSnapshot())
		require.Error(t, err)
		assert.Equal(t, "snapshot_store_error", err.Error())
	})
}

func TestStore_LoadStore(t *testing.T) {
	ctx := context.Background()

	t.Run("found", func(t *testing.T) {
		f := setupTest(t)
		raw, err := json.Marshal(testSnapshot())
		require.NoError(t, err)

		f.redis.EXPECT().Get(ctx, "orderbook:snapshot:BTC-USD").Return(string(raw), nil)

		snapshot, err := f.store.LoadStore(ctx)
		require.NoError(t, err)
		assert.Equal(t, testSnapshot(), snapshot)
	})

	t.Run("missing", func(t *testing.T) {
		f := setupTest(t)
		f.redis.EXPECT().Get(ctx, gomock.Any()).Return("", nil)

		snapshot, err := f.store.LoadStore(ctx)
		assert.NoError(t, err)
		assert.Nil(t, snapshot)
	})

	t.Run("redis failure", func(t *testing.T) {
		f := setupTest(t)
		cause := stderrors.New("timeout")
		f.redis.EXPECT().Get(ctx, gomock.Any()).Return("", cause)

		snapshot, err := f.store.LoadStore(ctx)
		assert.Nil(t, snapshot)
		assert.Equal(t, "snapshot_load_error", err.Error())
		assert.ErrorIs(t, err, cause)
	})

	t.Run("corrupt payload", func(t *testing.T) {
		f := setupTest(t)
		f.redis.EXPECT().Get(ctx, gomock.Any()).Return("{not json", nil)

		snapshot, err := f.store.LoadStore(ctx)
		assert.Nil(t, snapshot)
		require.Error(t, err)
		assert.Equal(t, "snapshot_unmarshal_error", err.Error())
	})
}

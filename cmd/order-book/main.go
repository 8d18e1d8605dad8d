package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	app "github.com/muhammadchandra19/orderbook/internal/app/engine"
	orderreader "github.com/muhammadchandra19/orderbook/internal/usecase/order-reader"
	"github.com/muhammadchandra19/orderbook/internal/usecase/orderbook"
	"github.com/muhammadchandra19/orderbook/internal/usecase/snapshot"
	"github.com/muhammadchandra19/orderbook/pkg/config"
	"github.com/muhammadchandra19/orderbook/pkg/httplib"
	"github.com/muhammadchandra19/orderbook/pkg/httplib/healthcheck"
	"github.com/muhammadchandra19/orderbook/pkg/logger"
	"github.com/muhammadchandra19/orderbook/pkg/metrics"
	"github.com/muhammadchandra19/orderbook/pkg/redis"
	"github.com/muhammadchandra19/orderbook/pkg/util"
)

var cfg *config.Config
var log *logger.Logger

func init() {
	cfg = &config.Config{}
	if err := config.Load(cfg); err != nil {
		panic(err)
	}

	l, err := logger.NewLogger(logger.WithLoggingLevel(logger.Level(cfg.LogLevel)))
	if err != nil {
		panic(err)
	}

	log = l
}

func main() {
	defer log.Sync()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Set up signal handling for graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	redisConfig := redis.DefaultConfig()
	redisConfig.Addrs = cfg.RedisConfig.Addrs
	redisConfig.Password = cfg.RedisConfig.Password
	redisConfig.Username = cfg.RedisConfig.Username
	redisConfig.DB = cfg.RedisConfig.DB

	rclient := redis.NewClient(log, redisConfig)
	if err := rclient.Connect(ctx); err != nil {
		log.Error(err, logger.NewField("action", "connect_redis"))
		if !rclient.Reconnect(ctx) {
			return
		}
	}
	defer func() {
		if err := rclient.Disconnect(context.Background()); err != nil {
			log.Error(err, logger.NewField("action", "disconnect_redis"))
		}
	}()

	ob := orderbook.NewOrderbook()
	oReader := orderreader.NewReader(cfg.KafkaConfig, log)
	snapshotStore := snapshot.NewSnapshotStore(rclient, cfg.Pair, log)

	m := metrics.New(cfg.Pair)
	opts := app.OptionsFromConfig(cfg.EngineConfig)
	opts.Metrics = m

	engine, err := app.NewEngineWithOptions(ob, oReader, snapshotStore, log, cfg, util.RealClock{}, opts)
	if err != nil {
		log.Error(err, logger.NewField("action", "create_engine"))
		return
	}

	if err := engine.Start(ctx); err != nil {
		log.Error(err, logger.NewField("action", "start_engine"))
		return
	}

	opsServer := &http.Server{
		Addr: cfg.HTTPAddr,
		Handler: httplib.NewOpsHandler(
			healthcheck.New(2*time.Second, map[string]healthcheck.Checker{"redis": rclient}),
			m.Handler(),
		),
		ReadHeaderTimeout: 5 * time.Second,
	}
	go func() {
		if err := opsServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error(err, logger.NewField("action", "serve_ops"))
		}
	}()

	log.Info("Order book service started",
		logger.NewField("pair", cfg.Pair),
		logger.NewField("httpAddr", cfg.HTTPAddr),
	)

	sig := <-sigChan
	log.Info("Received shutdown signal", logger.NewField("signal", sig.String()))

	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := engine.Stop(shutdownCtx); err != nil {
		log.Error(err, logger.NewField("action", "stop_engine"))
	}

	if err := opsServer.Shutdown(shutdownCtx); err != nil {
		log.Error(err, logger.NewField("action", "stop_ops_server"))
	}

	log.Info("Order book service shutdown complete",
		logger.NewField("acceptedOrders", engine.GetAcceptedOrders()),
		logger.NewField("orderOffset", engine.GetOrderOffset()),
		logger.NewField("summary", ob.Summary()),
	)
}

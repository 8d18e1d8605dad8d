package main

import (
	"context"
	"encoding/json"
	"flag"
	"math/rand/v2"
	"os"
	"strings"
	"time"

	orderv1 "github.com/muhammadchandra19/orderbook/internal/domain/order/v1"
	"github.com/muhammadchandra19/orderbook/pkg/logger"
	"github.com/segmentio/kafka-go"
)

func main() {
	var (
		brokers     = flag.String("brokers", "localhost:9092", "Kafka broker addresses (comma-separated)")
		topic       = flag.String("topic", "orders", "Kafka topic name")
		file        = flag.String("file", "", "JSON file with orders (optional, generates orders if not provided)")
		delay       = flag.Duration("delay", 100*time.Millisecond, "Delay between sending orders")
		count       = flag.Int("count", 1000, "Number of orders to generate")
		basePrice   = flag.Float64("base-price", 3945.5, "Base price for orders")
		priceSpread = flag.Float64("price-spread", 200.0, "Price spread range")
		bidRatio    = flag.Float64("bid-ratio", 0.5, "Share of generated orders on the bid side")
	)
	flag.Parse()

	log, err := logger.NewLogger()
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	writer := &kafka.Writer{
		Addr:         kafka.TCP(strings.Split(*brokers, ",")...),
		Topic:        *topic,
		Balancer:     &kafka.LeastBytes{},
		RequiredAcks: kafka.RequireOne,
	}
	defer writer.Close()

	ctx := context.Background()

	var orders []orderv1.PlaceOrderRequest
	if *file != "" {
		orders, err = loadOrders(*file)
		if err != nil {
			log.Error(err, logger.NewField("file", *file))
			os.Exit(1)
		}
		log.Info("Loaded orders from file", logger.NewField("file", *file), logger.NewField("count", len(orders)))
	} else {
		rng := rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), 0))
		orders = generateOrders(rng, *count, *basePrice, *priceSpread, *bidRatio)
		log.Info("Generated orders", logger.NewField("count", len(orders)))
	}

	log.Info("Sending orders",
		logger.NewField("brokers", *brokers),
		logger.NewField("topic", *topic),
		logger.NewField("delay", delay.String()),
	)

	sent := 0
	for i, order := range orders {
		if err := order.Validate(); err != nil {
			log.Warn("Skipping invalid order", logger.NewField("index", i), logger.NewField("error", err.Error()))
			continue
		}

		orderJSON, err := json.Marshal(order)
		if err != nil {
			log.Error(err, logger.NewField("index", i))
			continue
		}

		msg := kafka.Message{
			Key:   []byte(order.OrderID),
			Value: orderJSON,
			Time:  time.Now(),
		}

		if err := writer.WriteMessages(ctx, msg); err != nil {
			log.Error(err, logger.NewField("orderID", order.OrderID))
			continue
		}
		sent++

		// Log progress every 100 orders or for the last order
		if (i+1)%100 == 0 || i == len(orders)-1 {
			log.Info("Progress",
				logger.NewField("sent", sent),
				logger.NewField("total", len(orders)),
				logger.NewField("last", order.OrderID),
			)
		}

		if i < len(orders)-1 {
			time.Sleep(*delay)
		}
	}

	stats := summarize(orders)
	log.Info("Finished sending orders",
		logger.NewField("sent", sent),
		logger.NewField("market", stats.market),
		logger.NewField("limit", stats.limit),
		logger.NewField("buy", stats.buy),
		logger.NewField("sell", stats.sell),
	)
}

func loadOrders(path string) ([]orderv1.PlaceOrderRequest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var orders []orderv1.PlaceOrderRequest
	if err := json.Unmarshal(data, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

type orderStats struct {
	market, limit, buy, sell int
}

func summarize(orders []orderv1.PlaceOrderRequest) orderStats {
	var stats orderStats
	for _, order := range orders {
		if order.Type == orderv1.KindMarket {
			stats.market++
		} else {
			stats.limit++
		}
		if order.Bid {
			stats.buy++
		} else {
			stats.sell++
		}
	}
	return stats
}

package main

import (
	"math/rand/v2"

	orderv1 "github.com/muhammadchandra19/orderbook/internal/domain/order/v1"
	"github.com/oklog/ulid/v2"
)

// generateOrders creates count orders around basePrice: 30% market, 70% limit.
// Bids are priced below basePrice and asks above it.
func generateOrders(rng *rand.Rand, count int, basePrice, priceSpread, bidRatio float64) []orderv1.PlaceOrderRequest {
	orders := make([]orderv1.PlaceOrderRequest, count)

	for i := range orders {
		orderType := orderv1.KindLimit
		if rng.Float64() < 0.3 {
			orderType = orderv1.KindMarket
		}

		isBid := rng.Float64() < bidRatio

		// Quantity between 1 and 100 units
		quantity := rng.Int64N(100) + 1

		var price float64
		if orderType == orderv1.KindLimit {
			if isBid {
				price = basePrice - rng.Float64()*priceSpread*0.8
			} else {
				price = basePrice + rng.Float64()*priceSpread*0.8
			}
			price = float64(int(price*10)) / 10 // Round to 1 decimal place

			if price <= 0 {
				price = basePrice
			}
		}

		orders[i] = orderv1.PlaceOrderRequest{
			OrderID:  ulid.Make().String(),
			Type:     orderType,
			Bid:      isBid,
			Quantity: quantity,
			Price:    price,
		}
	}

	return orders
}

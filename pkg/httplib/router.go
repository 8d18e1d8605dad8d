package httplib

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/muhammadchandra19/orderbook/pkg/httplib/healthcheck"
)

// NewOpsHandler serves /metrics and, through the health check middleware, /health.
func NewOpsHandler(hc healthcheck.HealthCheck, metrics http.Handler) http.Handler {
	router := mux.NewRouter()
	router.Handle("/metrics", metrics).Methods(http.MethodGet)

	return hc.Handler(router)
}

package graceful_shutdown

import (
	"context"
	"net/http"
	"sync/atomic"
)

// Middleware rejects new requests once draining has begun, letting the load
// balancer pull the instance while in-flight work finishes.
func Middleware(isShuttingDown *atomic.Bool, drainCtx context.Context) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if drainCtx.Err() != nil && isShuttingDown.Load() {
				w.Header().Set("Connection", "close")
				http.Error(w, "service is draining", http.StatusServiceUnavailable)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

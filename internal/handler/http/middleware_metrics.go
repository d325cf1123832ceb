package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/Tristano1/friend-library-system/internal/metrics"
)

// withMetrics records duration and count of every request except scrapes of
// /metrics. Requests are labelled with the matched chi route pattern.
func (h *Handler) withMetrics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		mw := wrapResponseWriter(w)

		next.ServeHTTP(mw, r)

		if r.URL.Path == "/metrics" {
			return
		}

		var route string
		if rctx := chi.RouteContext(r.Context()); rctx != nil {
			route = rctx.RoutePattern()
		}
		metrics.RecordRequest(r.Method, route, mw.statusCode(), time.Since(start).Seconds())
	})
}

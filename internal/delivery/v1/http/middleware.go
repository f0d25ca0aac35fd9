package http

import (
	"net/http"
	"time"

	"github.com/DRSN-tech/go-storefront/pkg/logger"
	"github.com/go-chi/chi/v5/middleware"
)

// requestLogger пишет в лог метод, путь, статус и длительность каждого запроса.
func requestLogger(log logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()

			next.ServeHTTP(ww, r)

			status := ww.Status()
			if status == 0 {
				status = http.StatusOK
			}

			l := log.With(
				"request_id", middleware.GetReqID(r.Context()),
				"method", r.Method,
				"path", r.URL.Path,
				"status", status,
				"bytes", ww.BytesWritten(),
				"duration", time.Since(start),
			)
			if status >= http.StatusInternalServerError {
				l.Warnf("request failed")
				return
			}
			l.Infof("request handled")
		})
	}
}

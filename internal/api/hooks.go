package api

import (
	"context"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/matzehuels/pathviz/pkg/observability"
)

// LogHooks reports HTTP traffic through a logger. Install it with
// observability.SetHTTPHooks.
type LogHooks struct {
	Logger *log.Logger
}

// NewLogHooks creates HTTP hooks that log to l.
func NewLogHooks(l *log.Logger) *LogHooks {
	return &LogHooks{Logger: l}
}

func (h *LogHooks) OnRequest(_ context.Context, method, route string) {
	h.Logger.Debug("request", "method", method, "path", route)
}

func (h *LogHooks) OnResponse(_ context.Context, method, route string, status int, duration time.Duration) {
	h.Logger.Info("request completed",
		"method", method,
		"route", route,
		"status", status,
		"duration", duration.Round(time.Microsecond))
}

func (h *LogHooks) OnError(_ context.Context, method, route string, err error) {
	h.Logger.Warn("request error", "method", method, "route", route, "error", err)
}

// instrument fires the registered HTTP hooks around every request. The
// response is reported with the matched route pattern rather than the raw
// path so session IDs do not fan out into separate routes.
func instrument(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hooks := observability.HTTP()
		hooks.OnRequest(r.Context(), r.Method, r.URL.Path)

		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		hooks.OnResponse(r.Context(), r.Method, routePattern(r), status, time.Since(start))
	})
}

func recordError(r *http.Request, err error) {
	observability.HTTP().OnError(r.Context(), r.Method, routePattern(r), err)
}

func routePattern(r *http.Request) string {
	if rctx := chi.RouteContext(r.Context()); rctx != nil {
		if p := rctx.RoutePattern(); p != "" {
			return p
		}
	}
	return r.URL.Path
}

package inspect

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"

	"github.com/lumen-ui/lumen/pkg/reactive"
	"github.com/lumen-ui/lumen/pkg/vdom"
)

// Default tracer name for the inspector.
const defaultTracerName = "lumen-inspect"

// Server serves the inspector page, the patch stream, and metrics for a
// mounted element tree.
type Server struct {
	config   Config
	logger   *slog.Logger
	root     reactive.Accessor[*vdom.Node]
	scope    *reactive.Scope
	metrics  *metrics
	tracer   trace.Tracer
	gatherer prometheus.Gatherer
	upgrader websocket.Upgrader
}

// Option configures a Server.
type Option func(*Server)

// WithLogger sets the structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		s.logger = logger
	}
}

// WithTracer sets the tracer used for push spans. Defaults to the global
// tracer provider under the "lumen-inspect" name.
func WithTracer(tracer trace.Tracer) Option {
	return func(s *Server) {
		s.tracer = tracer
	}
}

// WithMetrics sets the Prometheus registry used for the inspector's
// metrics and the /metrics endpoint, plus any further metric options.
func WithMetrics(registry *prometheus.Registry, opts ...MetricsOption) Option {
	return func(s *Server) {
		s.gatherer = registry
		s.metrics = newMetrics(append([]MetricsOption{WithRegistry(registry)}, opts...)...)
	}
}

// NewServer creates an inspector for the given root accessor.
//
// The root is typically the output of binding.RenderOne or
// binding.RenderEach; any accessor yielding nodes works. The server
// re-renders and diffs on every root notification and pushes the patches
// to all connected sessions.
func NewServer(config Config, root reactive.Accessor[*vdom.Node], opts ...Option) *Server {
	s := &Server{
		config:   config,
		logger:   slog.Default().With("component", "inspect"),
		root:     root,
		scope:    reactive.NewScope(nil),
		gatherer: prometheus.DefaultGatherer,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.metrics == nil {
		s.metrics = newMetrics()
	}
	if s.tracer == nil {
		s.tracer = otel.Tracer(defaultTracerName)
	}
	s.upgrader = websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 4096,
		CheckOrigin:     s.checkOrigin,
	}
	return s
}

// checkOrigin enforces AllowedOrigins. With no list configured, gorilla's
// default same-host check applies.
func (s *Server) checkOrigin(r *http.Request) bool {
	if len(s.config.AllowedOrigins) == 0 {
		// nil CheckOrigin means same-host; replicate by deferring to
		// the default behavior of an unconfigured upgrader.
		origin := r.Header.Get("Origin")
		return origin == "" || origin == "http://"+r.Host || origin == "https://"+r.Host
	}
	origin := r.Header.Get("Origin")
	for _, allowed := range s.config.AllowedOrigins {
		if origin == allowed {
			return true
		}
	}
	return false
}

// Handler returns the inspector's HTTP handler for mounting in an
// external router.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Get("/", s.handleIndex)
	r.Get("/ws", s.handleWS)
	if s.config.Metrics {
		r.Handle("/metrics", promhttp.HandlerFor(s.gatherer, promhttp.HandlerOpts{}))
	}
	return r
}

// ListenAndServe runs the inspector until ctx is cancelled.
func (s *Server) ListenAndServe(ctx context.Context) error {
	srv := &http.Server{
		Addr:         s.config.Addr,
		Handler:      s.Handler(),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 0, // WebSocket connections are long-lived
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("inspector listening", "addr", s.config.Addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		s.scope.Dispose()
		return srv.Shutdown(shutdownCtx)
	case err := <-errCh:
		s.scope.Dispose()
		return err
	}
}

// Close releases all session subscriptions.
func (s *Server) Close() {
	s.scope.Dispose()
}

// handleIndex serves the rendered tree as an HTML page. The embedded
// script reconnects to /ws and reloads on the first patch; full
// client-side patch application is left to the browser bundle.
func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	timer := prometheus.NewTimer(s.metrics.renderDuration)
	body := vdom.RenderHTML(s.root.Get())
	timer.ObserveDuration()

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	fmt.Fprintf(w, indexTemplate, s.config.Title, body)
}

const indexTemplate = `<!DOCTYPE html>
<html>
<head><meta charset="utf-8"><title>%s</title></head>
<body>
<div id="lumen-root">%s</div>
<script>
(function () {
  var proto = location.protocol === "https:" ? "wss:" : "ws:";
  var ws = new WebSocket(proto + "//" + location.host + "/ws");
  ws.onmessage = function (ev) {
    var msg = JSON.parse(ev.data);
    if (msg.type === "patch" && msg.patches.length > 0) {
      location.reload();
    }
  };
})();
</script>
</body>
</html>
`

package inspect

import (
	"context"
	"net/http"

	"github.com/gorilla/websocket"
	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/lumen-ui/lumen/pkg/binding"
	"github.com/lumen-ui/lumen/pkg/reactive"
	"github.com/lumen-ui/lumen/pkg/vdom"
)

// Message is the envelope pushed to inspector sessions. Type is "tree"
// for the initial snapshot and "patch" for incremental updates.
type Message struct {
	Type    string       `json:"type"`
	Node    *vdom.Node   `json:"node,omitempty"`
	Patches []vdom.Patch `json:"patches,omitempty"`
}

// session is one connected inspector browser. Each session owns a child
// scope of the server scope so that a server shutdown tears down every
// root subscription.
type session struct {
	server *Server
	conn   *websocket.Conn
	scope  *reactive.Scope
	prev   *vdom.Node

	// wake coalesces bursts of root notifications into one push.
	wake chan struct{}
	done chan struct{}
}

func (s *Server) handleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.metrics.wsErrors.WithLabelValues("upgrade").Inc()
		s.logger.Warn("websocket upgrade failed", "error", err)
		return
	}

	sess := &session{
		server: s,
		conn:   conn,
		scope:  reactive.NewScope(s.scope),
		wake:   make(chan struct{}, 1),
		done:   make(chan struct{}),
	}

	s.metrics.activeSessions.Inc()
	s.logger.Info("session connected", "remote", conn.RemoteAddr())

	go sess.readLoop()
	sess.run(r.Context())

	s.metrics.activeSessions.Dec()
	s.logger.Info("session closed", "remote", conn.RemoteAddr())
}

// readLoop drains the connection so that close frames are processed.
// Inspector sessions are push-only; inbound payloads are discarded.
func (sess *session) readLoop() {
	defer close(sess.done)
	for {
		if _, _, err := sess.conn.ReadMessage(); err != nil {
			return
		}
	}
}

func (sess *session) run(ctx context.Context) {
	defer sess.scope.Dispose()
	defer sess.conn.Close()

	// Subscribe before the snapshot so that nothing a client does after
	// receiving the tree can slip between the two.
	binding.Track[*vdom.Node](sess.scope, sess.server.root, func() {
		sess.server.metrics.notificationsTotal.Inc()
		select {
		case sess.wake <- struct{}{}:
		default:
		}
	})

	sess.prev = sess.server.root.Get()
	if err := sess.conn.WriteJSON(Message{Type: "tree", Node: sess.prev}); err != nil {
		sess.server.metrics.wsErrors.WithLabelValues("write").Inc()
		return
	}

	for {
		select {
		case <-sess.wake:
			if err := sess.push(ctx); err != nil {
				sess.server.metrics.wsErrors.WithLabelValues("write").Inc()
				return
			}
		case <-sess.done:
			return
		case <-ctx.Done():
			return
		}
	}
}

// push re-renders the tree, diffs it against the session's last snapshot,
// and writes the patches.
func (sess *session) push(ctx context.Context) error {
	ctx, span := sess.server.tracer.Start(ctx, "inspect.push")
	defer span.End()

	timer := prometheus.NewTimer(sess.server.metrics.renderDuration)
	next := sess.server.root.Get()
	patches := vdom.Diff(sess.prev, next)
	timer.ObserveDuration()

	sess.prev = next
	span.SetAttributes(attribute.Int("inspect.patch_count", len(patches)))

	if len(patches) == 0 {
		return nil
	}

	if err := sess.conn.WriteJSON(Message{Type: "patch", Patches: patches}); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "push failed")
		return err
	}
	sess.server.metrics.patchesSent.Add(float64(len(patches)))
	return nil
}

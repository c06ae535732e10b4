// Package inspect provides the development inspector: an HTTP server that
// renders a mounted element tree and pushes diff patches to connected
// browsers over WebSocket whenever the tree's root accessor notifies.
//
// The inspector exists to watch bindings live while developing: mount the
// root accessor of a binding tree, open the page, and every property
// change, list reconciliation, or slot re-render shows up as a patch
// stream. Prometheus metrics cover sessions, pushes, and render times;
// each push runs under an OpenTelemetry span.
package inspect

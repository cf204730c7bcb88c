// Package server exposes a store over HTTP and WebSocket so that remote
// consumers can read, mutate and observe the state tree.
//
// Routes:
//
//	GET    /healthz          liveness probe
//	GET    /state            whole tree as JSON
//	GET    /state/{path}     resolved value at a dotted path (404 when absent)
//	PATCH  /state            shallow-merge the JSON object body into the tree
//	POST   /flush            request a flush window
//	POST   /reset            restore the construction-time snapshot
//	GET    /subscribe        WebSocket; streams change events for the paths
//	                         the client names in its first message
//	GET    /metrics          Prometheus exposition
//
// The server is a thin collaborator: all change detection, coalescing and
// notification semantics live in the store package.
package server

// Package websocket pushes live board updates to connected viewers.
//
// Each game session has its own set of clients. The REST API drives the
// game; this hub only fans out the resulting state snapshots and events,
// so multiple viewers of the same board stay in sync.
package websocket

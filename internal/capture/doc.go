// Package capture intercepts every slog emission in the process and
// keeps it in bounded, in-memory ring buffers for interactive
// inspection.
//
// The pipeline is deliberately capture-everything: severity and source
// filtering are view concerns applied at read time, so lowering a
// view's threshold later never loses history that was below the old
// one. The only capture-time filter is the coarse global minimum level
// enforced by the slog machinery before the sink runs.
//
// # Components
//
//   - [Record]: one captured event (level, source, message, time).
//   - [Store]: a fixed-capacity FIFO buffer of records. A full store
//     evicts its oldest record; appends never fail.
//   - [Registry]: the ordered set of sources tracked individually,
//     each bound to its own secondary Store.
//   - [Sink]: the routing core. Every event lands in the primary
//     store; events from tracked sources are copied to the matching
//     secondary store as well.
//
// # Source attribution
//
// Events carry a hierarchical source path in the conventional "source"
// attribute. The path is collapsed to its top-level segment once, at
// capture time: "net/conn" and "net::conn" both attribute to "net".
// Events without a parseable path are attributed to "<unknown>" and
// are never dropped.
//
//	logger := capture.Logger("net/conn")
//	logger.Info("dial ok", "addr", addr) // routed under "net"
//
// # Installation
//
// Install wires the process-wide sink into slog exactly once:
//
//	if err := capture.Install(capture.Options{Capacity: 1000}); err != nil {
//	    return err
//	}
//	capture.Track("net") // fan net events out to their own store
//
// A second Install returns [ErrAlreadyInstalled]: competing sinks
// would double-count events, so the failure is loud.
//
// # Thread safety
//
// All types are safe for concurrent use. Each store has its own lock,
// so writers to one store never block readers of another; snapshots
// are copies taken under the store's lock and are immune to later
// appends.
package capture

package capture

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"sync/atomic"
	"time"
)

// SourceKey is the attribute key carrying a record's hierarchical
// source path, e.g. slog.String(capture.SourceKey, "net/conn").
// Loggers created via Logger set it automatically.
const SourceKey = "source"

// ErrAlreadyInstalled is returned by Install when a capture sink has
// already been made the process-wide slog handler. Two competing sinks
// would double-count events and race on eviction order, so a second
// installation fails loudly instead of silently replacing the first.
var ErrAlreadyInstalled = errors.New("capture: sink already installed")

// Options configures a Sink.
type Options struct {
	// Capacity is the record capacity of the primary store and of
	// every secondary store. Zero means DefaultCapacity.
	Capacity int
	// MinLevel is the coarse global pre-filter applied before a record
	// reaches the sink. It is independent of any view's threshold. The
	// zero value (LevelTrace) admits everything, so switching a view
	// filter later never loses history.
	MinLevel Level
}

// Sink is the capture pipeline: it receives every log event, appends
// it to the primary store unconditionally, and fans it out to a
// secondary store when the event's normalized source is tracked.
//
// Sink is a concrete type so routing stays directly testable; the
// slog.Handler the host environment expects is the thin adapter
// returned by Handler.
type Sink struct {
	primary  *Store
	registry *Registry
	min      *slog.LevelVar
}

// NewSink builds a sink with its own primary store and registry.
func NewSink(opts Options) *Sink {
	min := new(slog.LevelVar)
	min.Set(opts.MinLevel.Slog())
	return &Sink{
		primary:  NewStore(opts.Capacity),
		registry: NewRegistry(opts.Capacity),
		min:      min,
	}
}

// Capture records one event: the source path is normalized once, the
// record lands in the primary store, and a copy lands in the matching
// secondary store if the source is tracked. A fan-out write, not a
// move — the primary retains the event regardless of routing.
func (s *Sink) Capture(level Level, sourcePath, message string, t time.Time) {
	rec := NewRecord(level, sourcePath, message, t)
	s.primary.Append(rec)
	if st, ok := s.registry.StoreFor(rec.Source); ok {
		st.Append(rec)
	}
}

// Primary returns the store capturing all events.
func (s *Sink) Primary() *Store {
	return s.primary
}

// Registry returns the sink's source registry.
func (s *Sink) Registry() *Registry {
	return s.registry
}

// SetMinLevel adjusts the global pre-filter level at runtime.
func (s *Sink) SetMinLevel(l Level) {
	s.min.Set(l.Slog())
}

// MinLevel reports the current global pre-filter level.
func (s *Sink) MinLevel() Level {
	return LevelFromSlog(s.min.Level())
}

// Handler returns the slog adapter for this sink.
func (s *Sink) Handler() slog.Handler {
	return &handler{sink: s}
}

// handler adapts a Sink to slog.Handler. It carries the attrs and
// group path bound via WithAttrs/WithGroup so a derived logger keeps
// its source and context.
type handler struct {
	sink   *Sink
	attrs  []slog.Attr
	groups []string
}

// Enabled implements the ambient pre-filter. Per-view severity
// filtering is a read-time concern and never happens here.
func (h *handler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.sink.min.Level()
}

// Handle renders the event into a Record and routes it through the
// sink. It never fails: an unparseable source falls back to the
// sentinel and the event is kept.
func (h *handler) Handle(_ context.Context, rec slog.Record) error {
	source := ""
	var b strings.Builder
	b.WriteString(rec.Message)

	appendAttr := func(groups []string, a slog.Attr) {
		if a.Key == SourceKey && len(groups) == 0 && source == "" {
			source = a.Value.String()
			return
		}
		if a.Equal(slog.Attr{}) {
			return
		}
		b.WriteByte(' ')
		for _, g := range groups {
			b.WriteString(g)
			b.WriteByte('.')
		}
		b.WriteString(a.Key)
		b.WriteByte('=')
		b.WriteString(a.Value.String())
	}

	for _, a := range h.attrs {
		appendAttr(nil, a)
	}
	rec.Attrs(func(a slog.Attr) bool {
		appendAttr(h.groups, a)
		return true
	})

	t := rec.Time
	if t.IsZero() {
		t = time.Now()
	}
	h.sink.Capture(LevelFromSlog(rec.Level), source, b.String(), t)
	return nil
}

// WithAttrs returns a handler that includes attrs in every record.
// A source attr bound here attributes all derived records.
func (h *handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	if len(attrs) == 0 {
		return h
	}
	nh := h.clone()
	for _, a := range attrs {
		qualified := a
		if len(h.groups) > 0 && a.Key != "" {
			qualified.Key = strings.Join(h.groups, ".") + "." + a.Key
		}
		nh.attrs = append(nh.attrs, qualified)
	}
	return nh
}

// WithGroup returns a handler that qualifies subsequent attr keys with
// name.
func (h *handler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	nh := h.clone()
	nh.groups = append(nh.groups, name)
	return nh
}

func (h *handler) clone() *handler {
	return &handler{
		sink:   h.sink,
		attrs:  append([]slog.Attr(nil), h.attrs...),
		groups: append([]string(nil), h.groups...),
	}
}

// Process-wide sink. The ambient logging mechanism is a singleton
// contacted from arbitrary call sites, so the sink backing it is one
// too: lazily constructed via sync.Once, installed at most once.
var (
	globalOnce sync.Once
	globalSink *Sink
	installed  atomic.Bool
)

// global returns the process-wide sink, constructing it on first use.
// The first caller's options win; Install should therefore run before
// any other access.
func global(opts Options) *Sink {
	globalOnce.Do(func() {
		globalSink = NewSink(opts)
	})
	return globalSink
}

// Install makes the process-wide sink the default slog handler. Every
// subsequent slog call in the process is captured.
//
// Install must be the only handler installation in the process: a
// second call returns ErrAlreadyInstalled rather than silently
// replacing the first sink.
func Install(opts Options) error {
	if !installed.CompareAndSwap(false, true) {
		return ErrAlreadyInstalled
	}
	slog.SetDefault(slog.New(global(opts).Handler()))
	return nil
}

// MustInstall is Install for program startup paths where a second
// installation is a programming error.
func MustInstall(opts Options) {
	if err := Install(opts); err != nil {
		panic(fmt.Sprintf("capture: %v", err))
	}
}

// Default returns the process-wide sink, constructing it with default
// options if Install has not run yet.
func Default() *Sink {
	return global(Options{})
}

// Primary returns the process-wide primary store.
func Primary() *Store {
	return Default().Primary()
}

// Track registers source with the process-wide registry, creating its
// secondary store on first registration. Idempotent.
func Track(source string) *Store {
	return Default().Registry().Register(source)
}

// Sources returns the tracked sources in registration order.
func Sources() []string {
	return Default().Registry().List()
}

// SetMinLevel adjusts the process-wide pre-filter level.
func SetMinLevel(l Level) {
	Default().SetMinLevel(l)
}

// Logger returns an slog.Logger attributed to the given hierarchical
// source path. After Install, records logged through it are routed by
// the path's top-level segment.
func Logger(sourcePath string) *slog.Logger {
	return slog.Default().With(SourceKey, sourcePath)
}

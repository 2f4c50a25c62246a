package capture

import (
	"log/slog"
	"strings"
	"time"
)

// Level is the severity of a captured record, ordered from least to
// most severe: Trace < Debug < Info < Warn < Error.
type Level int

const (
	LevelTrace Level = iota
	LevelDebug
	LevelInfo
	LevelWarn
	LevelError
)

// UnknownSource is the sentinel used when a record's source path is
// empty or cannot be parsed.
const UnknownSource = "<unknown>"

// String returns the canonical upper-case name of the level.
func (l Level) String() string {
	switch l {
	case LevelTrace:
		return "TRACE"
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return "INFO"
	}
}

// ParseLevel converts a level name to a Level. Matching is
// case-insensitive. Unrecognized names default to LevelInfo.
func ParseLevel(s string) Level {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "TRACE":
		return LevelTrace
	case "DEBUG":
		return LevelDebug
	case "INFO":
		return LevelInfo
	case "WARN", "WARNING":
		return LevelWarn
	case "ERROR":
		return LevelError
	default:
		return LevelInfo
	}
}

// ValidLevels returns the list of valid level names, least severe first.
func ValidLevels() []string {
	return []string{"TRACE", "DEBUG", "INFO", "WARN", "ERROR"}
}

// slogLevelTrace is the slog value used for trace logging. slog has no
// named trace level; -8 sits one step below slog.LevelDebug the same
// way Debug sits below Info.
const slogLevelTrace = slog.Level(-8)

// LevelFromSlog maps an slog.Level onto the capture Level scale.
// Anything below Debug is treated as Trace; anything above Error is
// clamped to Error.
func LevelFromSlog(l slog.Level) Level {
	switch {
	case l < slog.LevelDebug:
		return LevelTrace
	case l < slog.LevelInfo:
		return LevelDebug
	case l < slog.LevelWarn:
		return LevelInfo
	case l < slog.LevelError:
		return LevelWarn
	default:
		return LevelError
	}
}

// Slog returns the slog.Level equivalent of l.
func (l Level) Slog() slog.Level {
	switch l {
	case LevelTrace:
		return slogLevelTrace
	case LevelDebug:
		return slog.LevelDebug
	case LevelInfo:
		return slog.LevelInfo
	case LevelWarn:
		return slog.LevelWarn
	case LevelError:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Record is one captured log event. Records are plain values: a record
// routed to more than one store is copied, never shared, so stores stay
// independently evictable.
type Record struct {
	// Level is the severity the event was logged at.
	Level Level
	// Source is the top-level component the event is attributed to,
	// already normalized via TopLevelSource.
	Source string
	// Message is the fully rendered text. No further formatting is
	// applied downstream.
	Message string
	// Time is when the event was captured.
	Time time.Time
}

// NewRecord builds a Record from raw inputs, normalizing the source
// path. The timestamp must be captured at the moment of logging.
func NewRecord(level Level, sourcePath, message string, t time.Time) Record {
	return Record{
		Level:   level,
		Source:  TopLevelSource(sourcePath),
		Message: message,
		Time:    t,
	}
}

// TopLevelSource collapses a hierarchical source path to its first
// segment. Both "::" and "/" are accepted as hierarchy separators, so
// "net::conn::read" and "net/conn/read" normalize to "net". An empty
// or separator-only path yields UnknownSource.
//
// Normalization happens exactly once, at capture time; the same path
// always produces the same source no matter which store holds the
// record.
func TopLevelSource(path string) string {
	seg := path
	if i := strings.Index(seg, "::"); i >= 0 {
		seg = seg[:i]
	}
	if i := strings.IndexByte(seg, '/'); i >= 0 {
		seg = seg[:i]
	}
	seg = strings.TrimSpace(seg)
	if seg == "" {
		return UnknownSource
	}
	return seg
}

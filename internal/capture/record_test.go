package capture

import (
	"log/slog"
	"testing"
	"time"
)

func TestTopLevelSource(t *testing.T) {
	tests := []struct {
		name string
		path string
		want string
	}{
		{"double-colon hierarchy", "a::b::c", "a"},
		{"slash hierarchy", "net/conn/read", "net"},
		{"mixed separators", "net/conn::read", "net"},
		{"single segment", "ui", "ui"},
		{"empty path", "", UnknownSource},
		{"separator only", "::", UnknownSource},
		{"leading separator", "/conn", UnknownSource},
		{"whitespace", "   ", UnknownSource},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TopLevelSource(tt.path); got != tt.want {
				t.Errorf("TopLevelSource(%q) = %q, want %q", tt.path, got, tt.want)
			}
		})
	}
}

func TestTopLevelSourceIsPure(t *testing.T) {
	// Normalizing the same path twice must yield the same source.
	for i := 0; i < 3; i++ {
		if got := TopLevelSource("db::pool::acquire"); got != "db" {
			t.Fatalf("iteration %d: got %q, want %q", i, got, "db")
		}
	}
}

func TestNewRecordNormalizesSource(t *testing.T) {
	now := time.Now()
	rec := NewRecord(LevelWarn, "ui::widgets::button", "clicked", now)

	if rec.Source != "ui" {
		t.Errorf("Source = %q, want %q", rec.Source, "ui")
	}
	if rec.Level != LevelWarn {
		t.Errorf("Level = %v, want %v", rec.Level, LevelWarn)
	}
	if rec.Message != "clicked" {
		t.Errorf("Message = %q, want %q", rec.Message, "clicked")
	}
	if !rec.Time.Equal(now) {
		t.Errorf("Time = %v, want %v", rec.Time, now)
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want Level
	}{
		{"trace", LevelTrace},
		{"DEBUG", LevelDebug},
		{"Info", LevelInfo},
		{"warn", LevelWarn},
		{"warning", LevelWarn},
		{"ERROR", LevelError},
		{"bogus", LevelInfo},
		{"", LevelInfo},
	}

	for _, tt := range tests {
		if got := ParseLevel(tt.in); got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestLevelOrdering(t *testing.T) {
	// Error is most severe, Trace least.
	order := []Level{LevelTrace, LevelDebug, LevelInfo, LevelWarn, LevelError}
	for i := 1; i < len(order); i++ {
		if order[i-1] >= order[i] {
			t.Errorf("%v should be less severe than %v", order[i-1], order[i])
		}
	}
}

func TestLevelSlogRoundTrip(t *testing.T) {
	for _, l := range []Level{LevelTrace, LevelDebug, LevelInfo, LevelWarn, LevelError} {
		if got := LevelFromSlog(l.Slog()); got != l {
			t.Errorf("LevelFromSlog(%v.Slog()) = %v", l, got)
		}
	}
}

func TestLevelFromSlogClamps(t *testing.T) {
	if got := LevelFromSlog(slog.Level(-100)); got != LevelTrace {
		t.Errorf("very low slog level = %v, want LevelTrace", got)
	}
	if got := LevelFromSlog(slog.Level(100)); got != LevelError {
		t.Errorf("very high slog level = %v, want LevelError", got)
	}
}

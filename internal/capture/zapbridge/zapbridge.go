// Package zapbridge feeds zap-based applications into the capture
// pipeline. It implements a zapcore.Core that converts each entry into
// a capture record, using the zap logger's name as the hierarchical
// source path, so a process mixing slog and zap still sees every
// emission in one console.
package zapbridge

import (
	"fmt"
	"sort"
	"strings"

	"go.uber.org/zap/zapcore"

	"github.com/Iron-Ham/logview/internal/capture"
)

// core routes zap entries into a capture sink. Field context added via
// With is carried the same way zap's own cores do it.
type core struct {
	sink   *capture.Sink
	enab   zapcore.LevelEnabler
	fields []zapcore.Field
}

// NewCore returns a zapcore.Core that captures every entry admitted by
// enab into sink. Wire it into a zap logger with zap.New, or alongside
// an existing core with zapcore.NewTee.
func NewCore(sink *capture.Sink, enab zapcore.LevelEnabler) zapcore.Core {
	return &core{sink: sink, enab: enab}
}

func (c *core) Enabled(l zapcore.Level) bool {
	return c.enab.Enabled(l)
}

func (c *core) With(fields []zapcore.Field) zapcore.Core {
	clone := &core{
		sink: c.sink,
		enab: c.enab,
	}
	clone.fields = append(append([]zapcore.Field(nil), c.fields...), fields...)
	return clone
}

func (c *core) Check(ent zapcore.Entry, ce *zapcore.CheckedEntry) *zapcore.CheckedEntry {
	if c.Enabled(ent.Level) {
		return ce.AddCore(ent, c)
	}
	return ce
}

func (c *core) Write(ent zapcore.Entry, fields []zapcore.Field) error {
	msg := renderMessage(ent.Message, c.fields, fields)
	c.sink.Capture(levelOf(ent.Level), sourcePath(ent.LoggerName), msg, ent.Time)
	return nil
}

// Sync is a no-op: nothing buffers beyond the stores themselves.
func (c *core) Sync() error {
	return nil
}

// sourcePath converts zap's dot-separated logger name into the slash
// hierarchy the capture package normalizes, so Named("net").Named("conn")
// attributes to "net".
func sourcePath(loggerName string) string {
	return strings.ReplaceAll(loggerName, ".", "/")
}

// levelOf maps zap levels onto the capture scale. zap has no trace
// level; DPanic and above collapse to Error.
func levelOf(l zapcore.Level) capture.Level {
	switch {
	case l <= zapcore.DebugLevel:
		return capture.LevelDebug
	case l == zapcore.InfoLevel:
		return capture.LevelInfo
	case l == zapcore.WarnLevel:
		return capture.LevelWarn
	default:
		return capture.LevelError
	}
}

// renderMessage flattens the entry message and its fields into the
// final record text, key=value style with keys sorted for stable
// output.
func renderMessage(msg string, bound, fields []zapcore.Field) string {
	if len(bound) == 0 && len(fields) == 0 {
		return msg
	}

	enc := zapcore.NewMapObjectEncoder()
	for _, f := range bound {
		f.AddTo(enc)
	}
	for _, f := range fields {
		f.AddTo(enc)
	}

	keys := make([]string, 0, len(enc.Fields))
	for k := range enc.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	b.WriteString(msg)
	for _, k := range keys {
		b.WriteByte(' ')
		b.WriteString(k)
		b.WriteByte('=')
		writeValue(&b, enc.Fields[k])
	}
	return b.String()
}

func writeValue(b *strings.Builder, v any) {
	switch val := v.(type) {
	case string:
		b.WriteString(val)
	default:
		b.WriteString(fmt.Sprintf("%v", val))
	}
}

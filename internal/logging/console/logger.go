package console

import (
	"context"
	"fmt"
	"io"
	"maps"
	"os"
	"slices"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/goliatone/go-blog/internal/logging"
	"github.com/goliatone/go-blog/pkg/interfaces"
)

// Level represents the severity attached to a log entry.
type Level uint8

const (
	LevelTrace Level = iota
	LevelDebug
	LevelInfo
	LevelWarn
	LevelError
	LevelFatal
)

var levelLabels = map[Level]string{
	LevelTrace: "TRACE",
	LevelDebug: "DEBUG",
	LevelInfo:  "INFO",
	LevelWarn:  "WARN",
	LevelError: "ERROR",
	LevelFatal: "FATAL",
}

// String renders the severity label used in console output.
func (l Level) String() string {
	if label, ok := levelLabels[l]; ok {
		return label
	}
	return "INFO"
}

// Options configures the console logger provider. Zero values fall back to
// stdout, the wall clock, and a DEBUG minimum severity.
type Options struct {
	Writer   io.Writer
	TimeFunc func() time.Time
	MinLevel *Level
}

type provider struct {
	mu       sync.Mutex
	writer   io.Writer
	clock    func() time.Time
	minLevel Level
}

// NewProvider constructs a logger provider that renders each entry as a single
// console line with sorted key=value fields.
func NewProvider(opts Options) interfaces.LoggerProvider {
	p := &provider{
		writer:   opts.Writer,
		clock:    opts.TimeFunc,
		minLevel: LevelDebug,
	}
	if p.writer == nil {
		p.writer = os.Stdout
	}
	if p.clock == nil {
		p.clock = time.Now
	}
	if opts.MinLevel != nil {
		p.minLevel = *opts.MinLevel
	}
	return p
}

func (p *provider) GetLogger(name string) interfaces.Logger {
	return &consoleLogger{
		provider: p,
		fields:   map[string]any{"logger": name},
	}
}

func (p *provider) write(line string) {
	p.mu.Lock()
	defer p.mu.Unlock()

	// Log output is best effort; a failed write is dropped.
	_, _ = io.WriteString(p.writer, line+"\n")
}

type consoleLogger struct {
	provider *provider
	fields   map[string]any
	ctx      context.Context
}

var (
	_ interfaces.Logger       = (*consoleLogger)(nil)
	_ interfaces.FieldsLogger = (*consoleLogger)(nil)
)

func (l *consoleLogger) Trace(msg string, args ...any) { l.emit(LevelTrace, msg, args) }
func (l *consoleLogger) Debug(msg string, args ...any) { l.emit(LevelDebug, msg, args) }
func (l *consoleLogger) Info(msg string, args ...any)  { l.emit(LevelInfo, msg, args) }
func (l *consoleLogger) Warn(msg string, args ...any)  { l.emit(LevelWarn, msg, args) }
func (l *consoleLogger) Error(msg string, args ...any) { l.emit(LevelError, msg, args) }
func (l *consoleLogger) Fatal(msg string, args ...any) { l.emit(LevelFatal, msg, args) }

func (l *consoleLogger) WithFields(fields map[string]any) interfaces.Logger {
	if len(fields) == 0 {
		return l
	}
	merged := make(map[string]any, len(l.fields)+len(fields))
	maps.Copy(merged, l.fields)
	maps.Copy(merged, fields)
	return &consoleLogger{provider: l.provider, fields: merged, ctx: l.ctx}
}

func (l *consoleLogger) WithContext(ctx context.Context) interfaces.Logger {
	return &consoleLogger{provider: l.provider, fields: maps.Clone(l.fields), ctx: ctx}
}

// emit merges bound fields, context fields, and call-site arguments, with the
// later sources overriding the earlier ones, then writes a formatted line.
func (l *consoleLogger) emit(level Level, msg string, args []any) {
	if l.provider == nil || level < l.provider.minLevel {
		return
	}

	fields := make(map[string]any, len(l.fields)+len(args)/2+2)
	maps.Copy(fields, l.fields)
	maps.Copy(fields, logging.ContextFields(l.ctx))
	maps.Copy(fields, keyvalFields(args))

	l.provider.write(renderLine(l.provider.clock().UTC(), level, msg, fields))
}

// keyvalFields folds variadic key-value arguments into a field map. A trailing
// value without a key, or a key that is empty or not a string, is kept under a
// positional field_N key rather than dropped.
func keyvalFields(args []any) map[string]any {
	if len(args) == 0 {
		return nil
	}
	fields := make(map[string]any, (len(args)+1)/2)
	for i := 0; i < len(args); i++ {
		if i == len(args)-1 {
			fields[positionalKey(i)] = args[i]
			break
		}
		key, value := args[i], args[i+1]
		i++

		if name, ok := key.(string); ok && name != "" {
			fields[name] = value
			continue
		}
		fields[positionalKey(i/2)] = value
	}
	return fields
}

func positionalKey(n int) string {
	return fmt.Sprintf("field_%d", n)
}

func renderLine(ts time.Time, level Level, msg string, fields map[string]any) string {
	var b strings.Builder
	b.Grow(64 + len(msg) + len(fields)*16)
	b.WriteString(ts.Format(time.RFC3339Nano))
	b.WriteByte(' ')
	b.WriteString(level.String())
	b.WriteByte(' ')
	b.WriteString(msg)

	keys := make([]string, 0, len(fields))
	for key := range fields {
		keys = append(keys, key)
	}
	slices.Sort(keys)

	for _, key := range keys {
		b.WriteByte(' ')
		b.WriteString(key)
		b.WriteByte('=')
		b.WriteString(renderValue(fields[key]))
	}
	return b.String()
}

func renderValue(value any) string {
	switch v := value.(type) {
	case nil:
		return "null"
	case string:
		return quote(v)
	case time.Time:
		return quote(v.UTC().Format(time.RFC3339Nano))
	case *time.Time:
		if v == nil {
			return "null"
		}
		return quote(v.UTC().Format(time.RFC3339Nano))
	case error:
		return quote(v.Error())
	case fmt.Stringer:
		return quote(v.String())
	case bool:
		return strconv.FormatBool(v)
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return fmt.Sprintf("%d", v)
	case float32:
		return strconv.FormatFloat(float64(v), 'f', -1, 32)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return quote(fmt.Sprint(v))
	}
}

// quote wraps values containing spaces, control characters, or '=' so a line
// stays splittable on unquoted spaces.
func quote(value string) string {
	if value == "" {
		return `""`
	}
	for _, r := range value {
		if r <= 0x20 || r == '=' {
			return strconv.Quote(value)
		}
	}
	return value
}

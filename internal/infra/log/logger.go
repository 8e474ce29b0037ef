package log

import (
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/buffer"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Logger is the process-wide file logger. It is a no-op until Init is called
// with a log file, so stdout and stderr stay reserved for the CLI contract.
var Logger = zap.NewNop()

var mu sync.Mutex
var closer func() error

const (
	// DefaultMaxSizeMB is the size at which the log file is rotated.
	DefaultMaxSizeMB = 50
	// DefaultMaxBackups is the number of rotated files kept next to the log.
	DefaultMaxBackups = 3
)

// Options configures the file logger.
type Options struct {
	File       string
	Level      string
	MaxSizeMB  int
	MaxBackups int
}

// Init replaces Logger according to opts. An empty File disables logging.
func Init(opts Options) error {
	mu.Lock()
	defer mu.Unlock()

	if closer != nil {
		_ = Logger.Sync()
		_ = closer()
		closer = nil
	}

	if opts.File == "" {
		Logger = zap.NewNop()
		return nil
	}

	level := zapcore.InfoLevel
	if opts.Level != "" {
		parsed, err := zapcore.ParseLevel(opts.Level)
		if err != nil {
			return fmt.Errorf("invalid log level %q: %w", opts.Level, err)
		}
		level = parsed
	}

	if err := os.MkdirAll(filepath.Dir(opts.File), 0755); err != nil {
		return fmt.Errorf("failed to create logs directory: %w", err)
	}

	if opts.MaxSizeMB <= 0 {
		opts.MaxSizeMB = DefaultMaxSizeMB
	}
	if opts.MaxBackups <= 0 {
		opts.MaxBackups = DefaultMaxBackups
	}

	writer := &lumberjack.Logger{
		Filename:   opts.File,
		MaxSize:    opts.MaxSizeMB,
		MaxBackups: opts.MaxBackups,
	}

	core := zapcore.NewCore(
		newFileEncoder(),
		zapcore.AddSync(writer),
		level,
	)
	Logger = zap.New(core)
	closer = writer.Close
	return nil
}

// Sync flushes buffered entries and closes the rotating file, if any.
func Sync() {
	mu.Lock()
	defer mu.Unlock()

	_ = Logger.Sync()
	if closer != nil {
		_ = closer()
		closer = nil
	}
}

// GenerateRequestID returns a random id used to correlate the entries of one run.
func GenerateRequestID() string {
	b := make([]byte, 8)
	rand.Read(b)
	return hex.EncodeToString(b)
}

// RequestLogger returns Logger tagged with request_id.
func RequestLogger(requestID string) *zap.Logger {
	return Logger.With(zap.String("request_id", requestID))
}

func LogInfo(message string, fields ...zap.Field) {
	Logger.Info(message, fields...)
}

// LogSuccess logs a completed step, prefixing the duration when a duration_ms field is present.
func LogSuccess(message string, fields ...zap.Field) {
	if durationMs := extractDuration(fields); durationMs > 0 {
		Logger.Info(fmt.Sprintf("✓ %s (%dms)", message, durationMs), fields...)
		return
	}
	Logger.Info("✓ "+message, fields...)
}

func LogError(message string, fields ...zap.Field) {
	Logger.Error("✗ "+message, fields...)
}

func LogWarn(message string, fields ...zap.Field) {
	Logger.Warn(message, fields...)
}

func LogDebug(message string, fields ...zap.Field) {
	Logger.Debug(message, fields...)
}

// extractDuration returns the duration_ms field value or 0.
func extractDuration(fields []zap.Field) int64 {
	for _, field := range fields {
		if field.Key == "duration_ms" && field.Type == zapcore.Int64Type {
			return field.Integer
		}
	}
	return 0
}

var bufferPool = buffer.NewPool()

// fileEncoder writes "time     LEVEL message\t{fields}" lines. Fields added
// through With are kept in the embedded map and merged into every entry.
type fileEncoder struct {
	*zapcore.MapObjectEncoder
}

func newFileEncoder() *fileEncoder {
	return &fileEncoder{MapObjectEncoder: zapcore.NewMapObjectEncoder()}
}

func (e *fileEncoder) Clone() zapcore.Encoder {
	clone := newFileEncoder()
	for k, v := range e.Fields {
		clone.Fields[k] = v
	}
	return clone
}

func (e *fileEncoder) EncodeEntry(entry zapcore.Entry, fields []zapcore.Field) (*buffer.Buffer, error) {
	buf := bufferPool.Get()

	buf.AppendString(entry.Time.Format("2006-01-02 15:04:05"))
	buf.AppendString("     ")
	buf.AppendString(entry.Level.CapitalString())
	buf.AppendString(" ")
	buf.AppendString(entry.Message)

	if len(e.Fields) > 0 || len(fields) > 0 {
		enc := e.Clone().(*fileEncoder)
		for _, field := range fields {
			field.AddTo(enc)
		}
		if data, err := json.Marshal(enc.Fields); err == nil {
			buf.AppendString("\t")
			buf.AppendString(string(data))
		}
	}

	buf.AppendString("\n")
	return buf, nil
}

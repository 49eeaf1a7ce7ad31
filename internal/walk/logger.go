package findr

import (
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// LogLevel defines the verbosity of logging.
type LogLevel int

const (
	LogLevelError LogLevel = iota
	LogLevelWarn
	LogLevelInfo
	LogLevelDebug
)

func (l LogLevel) zapLevel() zapcore.Level {
	switch l {
	case LogLevelError:
		return zap.ErrorLevel
	case LogLevelWarn:
		return zap.WarnLevel
	case LogLevelInfo:
		return zap.InfoLevel
	case LogLevelDebug:
		return zap.DebugLevel
	}
	return zap.WarnLevel
}

// LogOptions configures NewLogger.
type LogOptions struct {
	Level  LogLevel
	Format string    // "console" (default) or "json"
	Output io.Writer // Defaults to os.Stderr

	// File, when set, receives a copy of every entry through a size-rotated
	// log file.
	File       string
	MaxSizeMB  int
	MaxBackups int
}

// NewLogger builds the zap logger used for diagnostics and debug output.
func NewLogger(opts LogOptions) (*zap.Logger, error) {
	var encCfg zapcore.EncoderConfig
	var enc zapcore.Encoder

	switch opts.Format {
	case "", "console":
		encCfg = zap.NewDevelopmentEncoderConfig()
		encCfg.TimeKey = ""
		encCfg.CallerKey = ""
		if opts.Level == LogLevelDebug {
			encCfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
		}
		enc = zapcore.NewConsoleEncoder(encCfg)
	case "json":
		encCfg = zap.NewProductionEncoderConfig()
		encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
		enc = zapcore.NewJSONEncoder(encCfg)
	default:
		return nil, fmt.Errorf("unknown log format %q (want console or json)", opts.Format)
	}

	out := opts.Output
	if out == nil {
		out = os.Stderr
	}
	level := zap.NewAtomicLevelAt(opts.Level.zapLevel())
	core := zapcore.NewCore(enc, zapcore.Lock(zapcore.AddSync(out)), level)

	if opts.File != "" {
		maxSize := opts.MaxSizeMB
		if maxSize <= 0 {
			maxSize = 10
		}
		rotated := &lumberjack.Logger{
			Filename:   opts.File,
			MaxSize:    maxSize,
			MaxBackups: opts.MaxBackups,
		}
		fileEnc := zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())
		core = zapcore.NewTee(core, zapcore.NewCore(fileEnc, zapcore.AddSync(rotated), level))
	}

	return zap.New(core), nil
}

// LogDiagnostics returns a DiagnosticFunc writing each diagnostic at warn level.
func LogDiagnostics(logger *zap.Logger) DiagnosticFunc {
	return func(d Diagnostic) {
		logger.Warn(d.Op.message(),
			zap.String("path", d.Path),
			zap.String("op", string(d.Op)),
			zap.Error(d.Err),
		)
	}
}

func (op Op) message() string {
	switch op {
	case OpReadDir:
		return "cannot read directory"
	case OpReadEntry:
		return "cannot read directory entry"
	case OpWatch:
		return "watch failed"
	}
	return string(op)
}

package logger

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"gopkg.in/natefinch/lumberjack.v2"
)

type Level int

const (
	Debug Level = iota
	Info
	Warn
	Error
)

func ParseLevel(s string) Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return Debug
	case "info", "":
		return Info
	case "warn", "warning":
		return Warn
	case "error":
		return Error
	default:
		return Info
	}
}

func (l Level) String() string {
	switch l {
	case Debug:
		return "debug"
	case Info:
		return "info"
	case Warn:
		return "warn"
	case Error:
		return "error"
	default:
		return "info"
	}
}

func (l Level) zerolog() zerolog.Level {
	switch l {
	case Debug:
		return zerolog.DebugLevel
	case Warn:
		return zerolog.WarnLevel
	case Error:
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
)

func ParseFormat(s string) Format {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "json":
		return FormatJSON
	default:
		return FormatText
	}
}

type Logger interface {
	With(fields map[string]any) Logger

	Debug(msg string, fields map[string]any)
	Info(msg string, fields map[string]any)
	Warn(msg string, fields map[string]any)
	Error(msg string, fields map[string]any)
}

// ZeroLogger adapta zerolog a la interfaz Logger (campos como map).
type ZeroLogger struct {
	zl zerolog.Logger
}

type Options struct {
	Level  Level
	Format Format
	App    string

	// File, si viene, agrega salida a archivo con rotación (lumberjack).
	File string

	// Output reemplaza stdout (tests).
	Output io.Writer
}

func New(opts Options) Logger {
	out := opts.Output
	if out == nil {
		out = os.Stdout
	}

	var w io.Writer = out
	if opts.Format != FormatJSON {
		w = zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339, NoColor: true}
	}

	if f := strings.TrimSpace(opts.File); f != "" {
		// El archivo siempre en JSON, aunque la consola sea texto.
		w = zerolog.MultiLevelWriter(w, &lumberjack.Logger{
			Filename:   f,
			MaxSize:    50,
			MaxBackups: 5,
			MaxAge:     28,
			Compress:   true,
		})
	}

	ctx := zerolog.New(w).Level(opts.Level.zerolog()).With().Timestamp()
	if app := strings.TrimSpace(opts.App); app != "" {
		ctx = ctx.Str("app", app)
	}

	return &ZeroLogger{zl: ctx.Logger()}
}

// Nop descarta todo; útil en tests.
func Nop() Logger {
	return &ZeroLogger{zl: zerolog.Nop()}
}

func (l *ZeroLogger) With(fields map[string]any) Logger {
	if len(fields) == 0 {
		return l
	}
	ctx := l.zl.With()
	for k, v := range fields {
		if strings.TrimSpace(k) == "" {
			continue
		}
		ctx = ctx.Interface(k, v)
	}
	return &ZeroLogger{zl: ctx.Logger()}
}

func (l *ZeroLogger) Debug(msg string, fields map[string]any) { l.log(l.zl.Debug(), msg, fields) }
func (l *ZeroLogger) Info(msg string, fields map[string]any)  { l.log(l.zl.Info(), msg, fields) }
func (l *ZeroLogger) Warn(msg string, fields map[string]any)  { l.log(l.zl.Warn(), msg, fields) }
func (l *ZeroLogger) Error(msg string, fields map[string]any) { l.log(l.zl.Error(), msg, fields) }

func (l *ZeroLogger) log(evt *zerolog.Event, msg string, fields map[string]any) {
	// evt es nil cuando el nivel está deshabilitado
	if evt == nil {
		return
	}
	for k, v := range fields {
		if strings.TrimSpace(k) == "" {
			continue
		}
		if err, ok := v.(error); ok {
			evt = evt.AnErr(k, err)
			continue
		}
		evt = evt.Interface(k, v)
	}
	evt.Msg(msg)
}

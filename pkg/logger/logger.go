package logger

import (
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Config opciones del logger estructurado.
type Config struct {
	Env     string // development -> consola legible; otro -> JSON
	Level   string // debug, info, warn, error
	Service string // nombre estampado en cada línea
}

// Logger wrapper fino sobre zerolog para inyección por constructor.
type Logger struct {
	zl zerolog.Logger
}

// New crea el logger de la aplicación. En development la salida es consola
// legible; en cualquier otro entorno, JSON por stdout. También redirige el
// logger global de zerolog para el código que loguea vía rs/zerolog/log
// (el mapeador de errores HTTP, por ejemplo).
func New(cfg Config) *Logger {
	var w io.Writer = os.Stdout
	if cfg.Env == "development" {
		w = zerolog.ConsoleWriter{Out: os.Stdout}
	}

	ctxb := zerolog.New(w).Level(parseLevel(cfg.Level)).With().Timestamp()
	if cfg.Service != "" {
		ctxb = ctxb.Str("service", cfg.Service)
	}
	zl := ctxb.Logger()
	log.Logger = zl

	return &Logger{zl: zl}
}

func parseLevel(s string) zerolog.Level {
	switch s {
	case "debug":
		return zerolog.DebugLevel
	case "warn":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

func (l *Logger) Debug() *zerolog.Event { return l.zl.Debug() }
func (l *Logger) Info() *zerolog.Event  { return l.zl.Info() }
func (l *Logger) Warn() *zerolog.Event  { return l.zl.Warn() }
func (l *Logger) Error() *zerolog.Event { return l.zl.Error() }
func (l *Logger) Fatal() *zerolog.Event { return l.zl.Fatal() }

// With crea un sublogger con campos fijos (por componente).
func (l *Logger) With() zerolog.Context {
	return l.zl.With()
}

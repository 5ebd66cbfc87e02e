// Package logger configura el logging estructurado del servicio sobre
// zerolog: consola legible en development, JSON en el resto de entornos, y el
// campo "service" fijo en cada evento para correlación entre instancias.
package logger

import (
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Config parámetros de construcción del logger del servicio.
type Config struct {
	Env     string    // development -> consola legible; resto -> JSON
	Level   string    // trace, debug, info, warn, error; inválido o vacío -> info
	Service string    // nombre del servicio, incluido en cada evento
	Writer  io.Writer // destino de salida; nil -> os.Stdout
}

// Logger envoltorio de zerolog inyectable en los componentes del servicio.
type Logger struct {
	zl zerolog.Logger
}

// New construye el logger del servicio y redirige además el logger global de
// zerolog, de modo que los avisos emitidos vía rs/zerolog/log (p. ej. la
// degradación de una fecha de vencimiento almacenada malformada) compartan
// destino y formato con el resto del proceso.
func New(cfg Config) *Logger {
	w := cfg.Writer
	if w == nil {
		w = os.Stdout
	}
	if cfg.Env == "development" {
		w = zerolog.ConsoleWriter{Out: w}
	}

	lvl, err := zerolog.ParseLevel(strings.ToLower(cfg.Level))
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}

	ctx := zerolog.New(w).Level(lvl).With().Timestamp()
	if cfg.Service != "" {
		ctx = ctx.Str("service", cfg.Service)
	}
	zl := ctx.Logger()
	log.Logger = zl

	return &Logger{zl: zl}
}

// Eventos delegados a zerolog.
func (l *Logger) Debug() *zerolog.Event { return l.zl.Debug() }
func (l *Logger) Info() *zerolog.Event  { return l.zl.Info() }
func (l *Logger) Warn() *zerolog.Event  { return l.zl.Warn() }
func (l *Logger) Error() *zerolog.Event { return l.zl.Error() }
func (l *Logger) Fatal() *zerolog.Event { return l.zl.Fatal() }

// Zerolog devuelve el logger interno para los componentes que reciben un
// zerolog.Logger directamente (el motor de importación del feed).
func (l *Logger) Zerolog() zerolog.Logger { return l.zl }

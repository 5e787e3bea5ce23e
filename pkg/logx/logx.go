// Package logx configures the process-wide zerolog logger.
package logx

import (
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type Opts struct {
	// Production switches to plain JSON output at info level; anything else
	// gets the console writer with caller info at debug level.
	Production bool
}

func Init(opts Opts) {
	if opts.Production {
		log.Logger = log.Logger.Level(zerolog.InfoLevel)
		return
	}
	log.Logger = zerolog.New(zerolog.NewConsoleWriter()).With().Timestamp().Caller().Logger()
	log.Logger = log.Logger.Level(zerolog.DebugLevel)
}

func Debug() *zerolog.Event { return log.Debug() }
func Info() *zerolog.Event  { return log.Info() }
func Warn() *zerolog.Event  { return log.Warn() }
func Error() *zerolog.Event { return log.Error() }
func Fatal() *zerolog.Event { return log.Fatal() }

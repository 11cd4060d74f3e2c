package logger

import (
	"os"
	"sync"

	"github.com/rs/zerolog"
)

var (
	once sync.Once
	log  zerolog.Logger
)

const timeFormat = "15:04:05.000"

func configure() {
	zerolog.TimeFieldFormat = timeFormat
	output := zerolog.ConsoleWriter{
		Out:        os.Stdout,
		TimeFormat: timeFormat,
	}
	log = zerolog.New(output).With().Timestamp().Logger()
}

// Get returns the shared console logger.
func Get() *zerolog.Logger {
	once.Do(configure)
	return &log
}

// GetLeveled returns the shared console logger after setting the global
// level.
func GetLeveled(level zerolog.Level) *zerolog.Logger {
	once.Do(configure)
	zerolog.SetGlobalLevel(level)
	return &log
}

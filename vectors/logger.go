package vectors

import (
	"sync"

	"github.com/sirupsen/logrus"
)

var logger *logrus.Logger
var initLoggerOnce sync.Once

// Logger returns the package-wide logger. Callers may adjust its level and
// output; generation logs skipped attempts at Debug and run summaries at
// Info.
func Logger() *logrus.Logger {
	initLoggerOnce.Do(func() {
		logger = logrus.New()
		logger.Formatter = &logrus.TextFormatter{
			FullTimestamp:   true,
			TimestampFormat: "15:04:05",
		}
		logger.Level = logrus.InfoLevel
	})
	return logger
}

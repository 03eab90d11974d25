package antipasto

import (
	"log/slog"

	"github.com/BrandonKowalski/antipasto/pkg/antipasto/internal"
)

// SetLogFilename routes the widget's logging to logs/<filename>. Logging
// is discarded until a filename is set — stdout belongs to the menu box.
func SetLogFilename(filename string) {
	internal.SetLogFilename(filename)
}

// GetLogger returns the widget's logger for embedding applications that
// want their log lines in the same sink.
func GetLogger() *slog.Logger {
	return internal.GetLogger()
}

func SetLogLevel(level slog.Level) {
	internal.SetLogLevel(level)
}

func SetRawLogLevel(level string) {
	internal.SetRawLogLevel(level)
}

package log

import "os"

var defaultLogger = New(os.Stderr)

// Default returns the default logger.
func Default() *Logger {
	return defaultLogger
}

// Debug level message on the default logger.
func Debug(tag any, msg string, v ...any) {
	defaultLogger.log(tag, msg, LevelDebug, v...)
}

// Info level message on the default logger.
func Info(tag any, msg string, v ...any) {
	defaultLogger.log(tag, msg, LevelInfo, v...)
}

// Warn level message on the default logger.
func Warn(tag any, msg string, v ...any) {
	defaultLogger.log(tag, msg, LevelWarn, v...)
}

// Error level message on the default logger.
func Error(tag any, msg string, v ...any) {
	defaultLogger.Error(tag, msg, v...)
}

// Fatal level message on the default logger, followed by an exit.
func Fatal(tag any, msg string, v ...any) {
	defaultLogger.Fatal(tag, msg, v...)
}

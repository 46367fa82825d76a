package config

// Accepted values for LoggerSettings.LogLevel. Critical keeps only the
// records written by Fatal and Panic.
const (
	LogLevelDebug    = "debug"
	LogLevelInfo     = "info"
	LogLevelWarning  = "warning"
	LogLevelError    = "error"
	LogLevelCritical = "critical"
)

// Accepted values for LoggerSettings.LogType.
const (
	LogTypeConsole = "console"
	LogTypeFile    = "file"
)

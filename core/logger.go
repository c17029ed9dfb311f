package core

// Logger is the minimal logging contract shared by all app services.
type Logger interface {
	// Enable turns remote error reporting on/off (console output is unaffected).
	Enable(enabled bool)

	Debug(msg string, args ...interface{})
	Info(msg string, args ...interface{})
	Warn(msg string, args ...interface{})
	Error(msg string, args ...interface{})
	Fatal(msg string, args ...interface{})
}

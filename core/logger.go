package core

// Logger is the application logger.
// expected args: error | map[string]interface{} | profile.Profile (the logged in Profile)
type Logger interface {
	Debug(msg string, args ...interface{})
	Info(msg string, args ...interface{})
	Warn(msg string, args ...interface{})
	Error(msg string, args ...interface{})
	Fatal(msg string, args ...interface{})
}

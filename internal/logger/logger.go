package logger

// Logger provides component-tagged structured logging
type Logger interface {
	Info(component, message string, fields map[string]interface{})
	Error(component string, err error, fields map[string]interface{})
	Warning(component, message string, fields map[string]interface{})
	Debug(component, message string, fields map[string]interface{})
}

// NoOpLogger discards everything
type NoOpLogger struct{}

func (NoOpLogger) Info(component, message string, fields map[string]interface{})    {}
func (NoOpLogger) Error(component string, err error, fields map[string]interface{}) {}
func (NoOpLogger) Warning(component, message string, fields map[string]interface{}) {}
func (NoOpLogger) Debug(component, message string, fields map[string]interface{})   {}

func Nop() Logger {
	return NoOpLogger{}
}

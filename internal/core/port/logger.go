package port

// Fields is a set of structured logging fields.
type Fields map[string]interface{}

// LoggerPort is the logging contract used across the service. Adapters fan
// log records out to one or more backends.
type LoggerPort interface {
	Debug(msg string, fields Fields)
	Info(msg string, fields Fields)
	Warn(msg string, fields Fields)
	Error(msg string, err error, fields Fields)

	// WithFields returns a logger that attaches the given fields to every
	// record it produces.
	WithFields(fields Fields) LoggerPort
}

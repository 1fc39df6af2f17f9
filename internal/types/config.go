package types

type RunMode string

const (
	// ModeLocal runs the API server and the background sweeper in one process
	ModeLocal RunMode = "local"
	// ModeAPI runs just the API server
	ModeAPI RunMode = "api"
	// ModeSweeper runs just the background expiration sweeper
	ModeSweeper RunMode = "sweeper"
)

type LogLevel string

const (
	LogLevelDebug LogLevel = "debug"
	LogLevelInfo  LogLevel = "info"
	LogLevelWarn  LogLevel = "warn"
	LogLevelError LogLevel = "error"
)

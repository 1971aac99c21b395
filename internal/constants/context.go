package constants

// ConfigCtxKeyType is the type for the config context key
type ConfigCtxKeyType string

// ConfigCtxKey is the key used to store config in context
const ConfigCtxKey ConfigCtxKeyType = "config"

// LoggerCtxKeyType is the type for the logger context key
type LoggerCtxKeyType string

// LoggerCtxKey is the key used to store the CLI logger in context
const LoggerCtxKey LoggerCtxKeyType = "logger"

// RequestIDLogField is the field name used for request ID in log entries
const RequestIDLogField = "request_id"

// TraceIDLogField is the field name used for trace ID in log entries
const TraceIDLogField = "trace_id"

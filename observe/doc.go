// Package observe provides observability for the resolution engine:
// OpenTelemetry tracing and metrics plus structured logging, wired
// together by a middleware that wraps a resolve function. The engine
// itself stays pure; all telemetry happens in the wrapper.
package observe

// Package logger builds the structured loggers used across the service.
// Records are text in development and JSON in production.
package logger

// Package config loads the service configuration from an optional .env
// file, a YAML file and environment variables, and validates it. It covers
// the listen address, logging, the backend request timeout, which backends
// each capability registers, and the health monitor and metrics settings.
package config

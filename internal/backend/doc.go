// Package backend implements the registry entry of one translation backend.
// It guards the backend's health state with its own lock and tracks
// in-flight calls and response time for diagnostics.
package backend

// Package healthcheck periodically publishes the health of every
// registered backend. Backends are never probed; the monitor only reports
// what the dispatchers observed on real calls.
package healthcheck

// Package handler implements the HTTP endpoints of the translation
// service. It decodes query parameters, runs the call through a detector or
// translator and maps library errors to status codes.
package handler

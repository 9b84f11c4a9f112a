// Package transport issues the HTTP GET requests made by translation
// backends. A Client is safe for concurrent use and is shared by every
// backend built from the same configuration.
package transport

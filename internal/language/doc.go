// Package language maps the languages understood by the translation
// backends to and from their short codes.
package language

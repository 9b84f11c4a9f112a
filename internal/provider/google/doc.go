// Package google implements translation backends on top of the public
// Google Translate endpoints used by the mobile site and the browser
// extensions. None of them need an API key.
//
// Every backend is stateless apart from its shared transport and may be
// used from any number of goroutines.
package google

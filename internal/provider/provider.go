// Package provider defines the capabilities a translation backend can offer
// and the errors backends report while decoding responses.
package provider

import (
	"context"
	"errors"
	"fmt"

	"github.com/angeloszaimis/libtranslate/internal/language"
)

var (
	// ErrEmptyResult is returned when a backend answers with no text.
	ErrEmptyResult = errors.New("backend returned an empty result")

	// ErrUnexpectedResult is returned when a response decodes but does not
	// have the expected shape.
	ErrUnexpectedResult = errors.New("backend returned an unexpected result")
)

// ParseError reports a response body that could not be decoded.
type ParseError struct {
	Format string
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s parsing error: %v", e.Format, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Translation is the result of translating a piece of text.
type Translation struct {
	// Source is the detected source language, or language.Unknown when the
	// backend does not report it.
	Source language.Language
	Target language.Language
	Text   string
}

// Detector identifies the language of a text.
type Detector interface {
	Detect(ctx context.Context, text string) (language.Language, error)
}

// Translator translates text between two languages.
type Translator interface {
	Translate(ctx context.Context, text string, source, target language.Language) (Translation, error)
}

package google

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"unicode/utf8"

	"github.com/angeloszaimis/libtranslate/internal/language"
	"github.com/angeloszaimis/libtranslate/internal/provider"
	"github.com/angeloszaimis/libtranslate/internal/transport"
)

// Catalog names of the Google backends.
const (
	NameMobileTranslate           = "google.MobileTranslate"
	NameDictionaryChromeExtension = "google.DictionaryChromeExtension"
	NameTranslateExtensions       = "google.TranslateExtensions"
)

// Option configures a backend.
type Option func(*endpoint)

// WithEndpoint replaces the URL a backend sends its requests to.
func WithEndpoint(u string) Option {
	return func(e *endpoint) {
		e.url = u
	}
}

type endpoint struct {
	client transport.Getter
	url    string
}

func newEndpoint(client transport.Getter, defaultURL string, opts []Option) endpoint {
	e := endpoint{client: client, url: defaultURL}
	for _, opt := range opts {
		opt(&e)
	}
	return e
}

func (e endpoint) get(ctx context.Context, params url.Values) (string, error) {
	return e.client.Get(ctx, e.url+"?"+params.Encode())
}

func decodeJSON(body string) (any, error) {
	var v any
	if err := json.Unmarshal([]byte(body), &v); err != nil {
		return nil, &provider.ParseError{Format: "json", Err: err}
	}
	return v, nil
}

// index returns v[i] when v is a JSON array long enough to hold it.
func index(v any, i int) (any, bool) {
	arr, ok := v.([]any)
	if !ok || i >= len(arr) {
		return nil, false
	}
	return arr[i], true
}

func unexpected(body string) error {
	return fmt.Errorf("%w: %q", provider.ErrUnexpectedResult, truncate(body, 256))
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n] + "..."
}

// detectVia detects the language of text by translating it to English and
// reading back the source the backend reports.
func detectVia(ctx context.Context, t provider.Translator, text string) (language.Language, error) {
	result, err := t.Translate(ctx, text, language.Auto, language.English)
	if err != nil {
		return language.Unknown, err
	}

	if !result.Source.IsKnown() {
		return language.Unknown, fmt.Errorf("%w: undetected source language", provider.ErrUnexpectedResult)
	}

	return result.Source, nil
}

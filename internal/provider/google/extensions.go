package google

import (
	"context"
	"net/url"
	"strings"

	"github.com/angeloszaimis/libtranslate/internal/language"
	"github.com/angeloszaimis/libtranslate/internal/provider"
	"github.com/angeloszaimis/libtranslate/internal/transport"
)

const (
	dictionaryURL = "https://clients5.google.com/translate_a/t"
	gtxURL        = "https://translate.googleapis.com/translate_a/single"
)

// DictionaryChromeExtension uses the endpoint of the Google Dictionary
// browser extension. The response is [["translated","en"]].
type DictionaryChromeExtension struct {
	endpoint
}

// NewDictionaryChromeExtension creates the backend.
func NewDictionaryChromeExtension(client transport.Getter, opts ...Option) *DictionaryChromeExtension {
	return &DictionaryChromeExtension{endpoint: newEndpoint(client, dictionaryURL, opts)}
}

// Detect implements provider.Detector.
func (d *DictionaryChromeExtension) Detect(ctx context.Context, text string) (language.Language, error) {
	return detectVia(ctx, d, text)
}

// Translate implements provider.Translator.
func (d *DictionaryChromeExtension) Translate(ctx context.Context, text string, source, target language.Language) (provider.Translation, error) {
	params := url.Values{}
	params.Set("client", "dict-chrome-ex")
	params.Set("sl", source.Code())
	params.Set("tl", target.Code())
	params.Set("q", text)

	body, err := d.get(ctx, params)
	if err != nil {
		return provider.Translation{}, err
	}

	v, err := decodeJSON(body)
	if err != nil {
		return provider.Translation{}, err
	}

	first, ok := index(v, 0)
	if !ok {
		return provider.Translation{}, unexpected(body)
	}
	textValue, _ := index(first, 0)
	langValue, _ := index(first, 1)

	result, ok := textValue.(string)
	if !ok {
		return provider.Translation{}, unexpected(body)
	}
	code, ok := langValue.(string)
	if !ok {
		return provider.Translation{}, unexpected(body)
	}
	if result == "" {
		return provider.Translation{}, provider.ErrEmptyResult
	}

	detected, _ := language.Parse(code)
	return provider.Translation{
		Source: detected,
		Target: target,
		Text:   result,
	}, nil
}

// TranslateExtensions uses the gtx client endpoint of the Google Translate
// extensions. Sentences come back in json[0] and the detected language in
// json[8][0][0].
type TranslateExtensions struct {
	endpoint
}

// NewTranslateExtensions creates the backend.
func NewTranslateExtensions(client transport.Getter, opts ...Option) *TranslateExtensions {
	return &TranslateExtensions{endpoint: newEndpoint(client, gtxURL, opts)}
}

// Detect implements provider.Detector.
func (t *TranslateExtensions) Detect(ctx context.Context, text string) (language.Language, error) {
	return detectVia(ctx, t, text)
}

// Translate implements provider.Translator.
func (t *TranslateExtensions) Translate(ctx context.Context, text string, source, target language.Language) (provider.Translation, error) {
	params := url.Values{}
	params.Set("client", "gtx")
	params.Set("dt", "t")
	params.Set("sl", source.Code())
	params.Set("tl", target.Code())
	params.Set("q", text)

	body, err := t.get(ctx, params)
	if err != nil {
		return provider.Translation{}, err
	}

	v, err := decodeJSON(body)
	if err != nil {
		return provider.Translation{}, err
	}

	// empty input yields [null,null,"en",...]
	sentencesValue, _ := index(v, 0)
	sentences, ok := sentencesValue.([]any)
	if !ok {
		return provider.Translation{}, provider.ErrEmptyResult
	}
	if _, ok := index(sentences, 0); !ok {
		return provider.Translation{}, unexpected(body)
	}

	detectedValue, _ := index(v, 8)
	detectedValue, _ = index(detectedValue, 0)
	detectedValue, _ = index(detectedValue, 0)
	code, ok := detectedValue.(string)
	if !ok {
		return provider.Translation{}, unexpected(body)
	}

	var sb strings.Builder
	for _, sentence := range sentences {
		part, _ := index(sentence, 0)
		s, ok := part.(string)
		if !ok {
			return provider.Translation{}, unexpected(body)
		}
		sb.WriteString(s)
	}
	if sb.Len() == 0 {
		return provider.Translation{}, provider.ErrEmptyResult
	}

	detected, _ := language.Parse(code)
	return provider.Translation{
		Source: detected,
		Target: target,
		Text:   sb.String(),
	}, nil
}

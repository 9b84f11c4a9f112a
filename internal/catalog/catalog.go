// Package catalog lists the backends compiled into the library for each
// capability, with their static weights.
package catalog

import (
	"slices"

	"github.com/angeloszaimis/libtranslate/internal/provider"
	"github.com/angeloszaimis/libtranslate/internal/provider/google"
	"github.com/angeloszaimis/libtranslate/internal/transport"
)

// Entry is a backend implementation and its static routing weight.
type Entry[T any] struct {
	API    T
	Weight uint64
}

// Catalog maps backend names to implementations of one capability.
type Catalog[T any] map[string]Entry[T]

// Names returns the catalog's backend names in lexical order.
func (c Catalog[T]) Names() []string {
	names := make([]string, 0, len(c))
	for name := range c {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Detectors returns every backend able to detect a language.
func Detectors(client transport.Getter) Catalog[provider.Detector] {
	return Catalog[provider.Detector]{
		google.NameDictionaryChromeExtension: {API: google.NewDictionaryChromeExtension(client), Weight: 100000},
		google.NameTranslateExtensions:       {API: google.NewTranslateExtensions(client), Weight: 100000},
	}
}

// Translators returns every backend able to translate.
func Translators(client transport.Getter) Catalog[provider.Translator] {
	return Catalog[provider.Translator]{
		google.NameDictionaryChromeExtension: {API: google.NewDictionaryChromeExtension(client), Weight: 100000},
		google.NameTranslateExtensions:       {API: google.NewTranslateExtensions(client), Weight: 100000},
		google.NameMobileTranslate:           {API: google.NewMobileTranslate(client), Weight: 20000},
	}
}

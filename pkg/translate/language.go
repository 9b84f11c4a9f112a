package translate

import (
	"github.com/angeloszaimis/libtranslate/internal/language"
	"github.com/angeloszaimis/libtranslate/internal/provider"
	"github.com/angeloszaimis/libtranslate/internal/provider/google"
)

type (
	Language    = language.Language
	Translation = provider.Translation
)

const (
	Unknown            = language.Unknown
	Auto               = language.Auto
	English            = language.English
	ChineseSimplified  = language.ChineseSimplified
	ChineseTraditional = language.ChineseTraditional
)

// Backend names accepted by Single and Mix.
const (
	MobileTranslate           = google.NameMobileTranslate
	DictionaryChromeExtension = google.NameDictionaryChromeExtension
	TranslateExtensions       = google.NameTranslateExtensions
)

// ParseLanguage looks up a language by its code, e.g. "en" or "zh-CN".
func ParseLanguage(code string) (Language, bool) {
	return language.Parse(code)
}

// Languages returns every supported language, Auto first.
func Languages() []Language {
	return language.All()
}

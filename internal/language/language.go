package language

import (
	"strings"

	textlang "golang.org/x/text/language"
)

// Language identifies a natural language by its Google Translate code.
type Language int

const (
	Unknown Language = iota
	Auto
	Afrikaans
	Amharic
	Arabic
	Azerbaijani
	Belarusian
	Bulgarian
	Bengali
	Bosnian
	Catalan
	Corsican
	Czech
	Welsh
	Danish
	German
	Greek
	English
	Esperanto
	Spanish
	Estonian
	Basque
	Persian
	Finnish
	French
	WesternFrisian
	Irish
	ScottishGaelic
	Galician
	Gujarati
	Hausa
	Hebrew
	Hindi
	Croatian
	HaitianCreole
	Hungarian
	Armenian
	Indonesian
	Igbo
	Icelandic
	Italian
	Japanese
	Georgian
	Kazakh
	CentralKhmer
	Kannada
	Korean
	Kurdish
	Kirghiz
	Latin
	Luxembourgish
	Lao
	Lithuanian
	Latvian
	Malagasy
	Maori
	Macedonian
	Malayalam
	Mongolian
	Marathi
	Malay
	Maltese
	Burmese
	Nepali
	Dutch
	Norwegian
	Chichewa
	Oriya
	Panjabi
	Polish
	Pushto
	Portuguese
	Romanian
	Russian
	Sindhi
	Sinhalese
	Slovak
	Slovenian
	Samoan
	Shona
	Somali
	Albanian
	Serbian
	SothoSouthern
	Sundanese
	Swedish
	Swahili
	Tamil
	Telugu
	Tajik
	Thai
	Tagalog
	Turkish
	Uighur
	Ukrainian
	Urdu
	Uzbek
	Vietnamese
	Xhosa
	Yiddish
	Yoruba
	ChineseSimplified
	ChineseTraditional
	Zulu
)

var table = [...]struct {
	name string
	code string
}{
	Unknown:             {"Unknown", ""},
	Auto:                {"Auto", "auto"},
	Afrikaans:           {"Afrikaans", "af"},
	Amharic:             {"Amharic", "am"},
	Arabic:              {"Arabic", "ar"},
	Azerbaijani:         {"Azerbaijani", "az"},
	Belarusian:          {"Belarusian", "be"},
	Bulgarian:           {"Bulgarian", "bg"},
	Bengali:             {"Bengali", "bn"},
	Bosnian:             {"Bosnian", "bs"},
	Catalan:             {"Catalan", "ca"},
	Corsican:            {"Corsican", "co"},
	Czech:               {"Czech", "cs"},
	Welsh:               {"Welsh", "cy"},
	Danish:              {"Danish", "da"},
	German:              {"German", "de"},
	Greek:               {"Greek", "el"},
	English:             {"English", "en"},
	Esperanto:           {"Esperanto", "eo"},
	Spanish:             {"Spanish", "es"},
	Estonian:            {"Estonian", "et"},
	Basque:              {"Basque", "eu"},
	Persian:             {"Persian", "fa"},
	Finnish:             {"Finnish", "fi"},
	French:              {"French", "fr"},
	WesternFrisian:      {"Western Frisian", "fy"},
	Irish:               {"Irish", "ga"},
	ScottishGaelic:      {"Scottish Gaelic", "gd"},
	Galician:            {"Galician", "gl"},
	Gujarati:            {"Gujarati", "gu"},
	Hausa:               {"Hausa", "ha"},
	Hebrew:              {"Hebrew", "he"},
	Hindi:               {"Hindi", "hi"},
	Croatian:            {"Croatian", "hr"},
	HaitianCreole:       {"Haitian Creole", "ht"},
	Hungarian:           {"Hungarian", "hu"},
	Armenian:            {"Armenian", "hy"},
	Indonesian:          {"Indonesian", "id"},
	Igbo:                {"Igbo", "ig"},
	Icelandic:           {"Icelandic", "is"},
	Italian:             {"Italian", "it"},
	Japanese:            {"Japanese", "ja"},
	Georgian:            {"Georgian", "ka"},
	Kazakh:              {"Kazakh", "kk"},
	CentralKhmer:        {"Central Khmer", "km"},
	Kannada:             {"Kannada", "kn"},
	Korean:              {"Korean", "ko"},
	Kurdish:             {"Kurdish", "ku"},
	Kirghiz:             {"Kirghiz", "ky"},
	Latin:               {"Latin", "la"},
	Luxembourgish:       {"Luxembourgish", "lb"},
	Lao:                 {"Lao", "lo"},
	Lithuanian:          {"Lithuanian", "lt"},
	Latvian:             {"Latvian", "lv"},
	Malagasy:            {"Malagasy", "mg"},
	Maori:               {"Maori", "mi"},
	Macedonian:          {"Macedonian", "mk"},
	Malayalam:           {"Malayalam", "ml"},
	Mongolian:           {"Mongolian", "mn"},
	Marathi:             {"Marathi", "mr"},
	Malay:               {"Malay", "ms"},
	Maltese:             {"Maltese", "mt"},
	Burmese:             {"Burmese", "my"},
	Nepali:              {"Nepali", "ne"},
	Dutch:               {"Dutch", "nl"},
	Norwegian:           {"Norwegian", "no"},
	Chichewa:            {"Chichewa", "ny"},
	Oriya:               {"Oriya", "or"},
	Panjabi:             {"Panjabi", "pa"},
	Polish:              {"Polish", "pl"},
	Pushto:              {"Pushto", "ps"},
	Portuguese:          {"Portuguese", "pt"},
	Romanian:            {"Romanian", "ro"},
	Russian:             {"Russian", "ru"},
	Sindhi:              {"Sindhi", "sd"},
	Sinhalese:           {"Sinhalese", "si"},
	Slovak:              {"Slovak", "sk"},
	Slovenian:           {"Slovenian", "sl"},
	Samoan:              {"Samoan", "sm"},
	Shona:               {"Shona", "sn"},
	Somali:              {"Somali", "so"},
	Albanian:            {"Albanian", "sq"},
	Serbian:             {"Serbian", "sr"},
	SothoSouthern:       {"Sotho Southern", "st"},
	Sundanese:           {"Sundanese", "su"},
	Swedish:             {"Swedish", "sv"},
	Swahili:             {"Swahili", "sw"},
	Tamil:               {"Tamil", "ta"},
	Telugu:              {"Telugu", "te"},
	Tajik:               {"Tajik", "tg"},
	Thai:                {"Thai", "th"},
	Tagalog:             {"Tagalog", "tl"},
	Turkish:             {"Turkish", "tr"},
	Uighur:              {"Uighur", "ug"},
	Ukrainian:           {"Ukrainian", "uk"},
	Urdu:                {"Urdu", "ur"},
	Uzbek:               {"Uzbek", "uz"},
	Vietnamese:          {"Vietnamese", "vi"},
	Xhosa:               {"Xhosa", "xh"},
	Yiddish:             {"Yiddish", "yi"},
	Yoruba:              {"Yoruba", "yo"},
	ChineseSimplified:   {"Chinese (Simplified)", "zh-CN"},
	ChineseTraditional:  {"Chinese (Traditional)", "zh-TW"},
	Zulu:                {"Zulu", "zu"},
}

var byCode = func() map[string]Language {
	m := make(map[string]Language, len(table))
	for i := Auto; int(i) < len(table); i++ {
		m[table[i].code] = i
	}
	return m
}()

// Code returns the abbreviation sent to backends, e.g. "en" or "zh-CN".
// Unknown has no code.
func (l Language) Code() string {
	if l < 0 || int(l) >= len(table) {
		return ""
	}
	return table[l].code
}

// String returns the English name of the language.
func (l Language) String() string {
	if l < 0 || int(l) >= len(table) {
		return table[Unknown].name
	}
	return table[l].name
}

// IsKnown reports whether l is a member of the table other than Unknown.
func (l Language) IsKnown() bool {
	return l > Unknown && int(l) < len(table)
}

// Parse looks up a language by code. Matching is exact first, then
// case-insensitive, so "zh-cn" resolves to ChineseSimplified. Other BCP 47
// tags fall back to their base language ("en-GB" is English) and Chinese
// tags to the variant of their script.
func Parse(code string) (Language, bool) {
	if l, ok := byCode[code]; ok {
		return l, true
	}
	for c, l := range byCode {
		if strings.EqualFold(c, code) {
			return l, true
		}
	}
	return parseTag(code)
}

func parseTag(code string) (Language, bool) {
	if code == "" {
		return Unknown, false
	}

	tag, err := textlang.Parse(code)
	if err != nil {
		return Unknown, false
	}

	base, _ := tag.Base()
	if base.String() == "zh" {
		if script, _ := tag.Script(); script.String() == "Hant" {
			return ChineseTraditional, true
		}
		return ChineseSimplified, true
	}

	if l, ok := byCode[base.String()]; ok {
		return l, true
	}
	return Unknown, false
}

// All returns every language in the table, Auto first.
func All() []Language {
	all := make([]Language, 0, len(table)-1)
	for i := Auto; int(i) < len(table); i++ {
		all = append(all, i)
	}
	return all
}

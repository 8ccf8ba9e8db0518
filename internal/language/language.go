// Package language holds the ISO 639-1 language code vocabulary shared by
// every translation backend: code normalization, the built-in supported
// language table, and display-name lookup for prompt construction.
package language

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/amitiii/udaan-next-gen-translator-api/internal/domain"
)

var codePattern = regexp.MustCompile(`^[a-z]{2}$`)

// defaultCatalog is the built-in set of supported ISO 639-1 codes. It seeds
// validation when no dynamic catalog is available and provides the English
// display names used in translation prompts. Read-only after init.
var defaultCatalog = map[string]string{
	"en": "English",
	"es": "Spanish",
	"fr": "French",
	"de": "German",
	"it": "Italian",
	"pt": "Portuguese",
	"ru": "Russian",
	"ja": "Japanese",
	"ko": "Korean",
	"zh": "Chinese",
	"ar": "Arabic",
	"hi": "Hindi",
	"ta": "Tamil",
	"te": "Telugu",
	"bn": "Bengali",
	"kn": "Kannada",
	"ur": "Urdu",
	"th": "Thai",
	"vi": "Vietnamese",
	"nl": "Dutch",
	"sv": "Swedish",
	"no": "Norwegian",
	"da": "Danish",
	"fi": "Finnish",
	"pl": "Polish",
	"tr": "Turkish",
	"he": "Hebrew",
	"id": "Indonesian",
	"ms": "Malay",
	"fa": "Persian",
	"uk": "Ukrainian",
	"cs": "Czech",
	"sk": "Slovak",
	"hu": "Hungarian",
	"ro": "Romanian",
	"bg": "Bulgarian",
	"hr": "Croatian",
	"sr": "Serbian",
	"sl": "Slovenian",
	"et": "Estonian",
	"lv": "Latvian",
	"lt": "Lithuanian",
	"el": "Greek",
	"is": "Icelandic",
	"mt": "Maltese",
	"ga": "Irish",
	"cy": "Welsh",
	"eu": "Basque",
	"ca": "Catalan",
	"gl": "Galician",
	"af": "Afrikaans",
	"sw": "Swahili",
	"zu": "Zulu",
	"xh": "Xhosa",
	"st": "Southern Sotho",
	"tn": "Tswana",
	"ss": "Swati",
	"ve": "Venda",
	"ts": "Tsonga",
	"nr": "Southern Ndebele",
	"nd": "Northern Ndebele",
}

// Normalize case-folds and trims a language code and verifies it matches
// the two-letter ISO 639-1 pattern. The returned code is always lowercase.
func Normalize(code string) (string, error) {
	c := strings.ToLower(strings.TrimSpace(code))
	if !codePattern.MatchString(c) {
		return "", fmt.Errorf("%w: %q", domain.ErrInvalidFormat, code)
	}
	return c, nil
}

// IsSupported reports whether a normalized code is in the given catalog.
// A nil catalog falls back to the built-in table rather than rejecting
// everything.
func IsSupported(code string, catalog map[string]string) bool {
	if catalog == nil {
		catalog = defaultCatalog
	}
	_, ok := catalog[code]
	return ok
}

// DisplayName returns the English name of a language code, or the
// uppercased code itself when the code is not in the built-in table.
func DisplayName(code string) string {
	if name, ok := defaultCatalog[code]; ok {
		return name
	}
	return strings.ToUpper(code)
}

// DefaultCatalog returns a copy of the built-in supported-language table.
func DefaultCatalog() map[string]string {
	out := make(map[string]string, len(defaultCatalog))
	for code, name := range defaultCatalog {
		out[code] = name
	}
	return out
}

package translator

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/amitiii/udaan-next-gen-translator-api/internal/domain"
	"github.com/amitiii/udaan-next-gen-translator-api/internal/language"
)

const phraseBackendName = "phrase-dictionary"

// PhraseTranslator is the offline backend: greedy longest-phrase-first
// substitution over the built-in bilingual dictionaries. Once input has
// passed validation it never produces an error outcome; text without any
// dictionary match is returned annotated with a per-language suffix.
type PhraseTranslator struct {
	dicts      map[string]map[string]string
	suffixes   map[string]string
	sortedKeys map[string][]string // dictionary keys, longest first
}

// NewPhraseTranslator builds the offline backend over the static
// dictionaries. The key order used for substitution is fixed here:
// descending length, ties broken alphabetically for determinism.
func NewPhraseTranslator() *PhraseTranslator {
	p := &PhraseTranslator{
		dicts:      phraseDictionaries,
		suffixes:   passthroughSuffixes,
		sortedKeys: make(map[string][]string, len(phraseDictionaries)),
	}
	for lang, dict := range p.dicts {
		keys := make([]string, 0, len(dict))
		for k := range dict {
			keys = append(keys, k)
		}
		sort.Slice(keys, func(i, j int) bool {
			if len(keys[i]) != len(keys[j]) {
				return len(keys[i]) > len(keys[j])
			}
			return keys[i] < keys[j]
		})
		p.sortedKeys[lang] = keys
	}
	return p
}

// Name returns the backend identifier reported in outcomes.
func (p *PhraseTranslator) Name() string {
	return phraseBackendName
}

// TranslateOne translates a single text. Status is always success.
func (p *PhraseTranslator) TranslateOne(ctx context.Context, text, targetLang string) domain.TranslationOutcome {
	start := time.Now()
	translated := p.translate(text, targetLang)
	return domain.TranslationOutcome{
		OriginalText:     text,
		TranslatedText:   translated,
		TargetLang:       targetLang,
		Status:           domain.StatusSuccess,
		ProcessingTimeMs: time.Since(start).Milliseconds(),
		Backend:          phraseBackendName,
	}
}

// TranslateBatch translates texts with per-item isolation and input-order
// results.
func (p *PhraseTranslator) TranslateBatch(ctx context.Context, texts []string, targetLang string) domain.BatchOutcome {
	return translateBatch(ctx, p, texts, targetLang)
}

// translate runs the phrase-substitution algorithm.
func (p *PhraseTranslator) translate(text, targetLang string) string {
	if dict, ok := p.dicts[targetLang]; ok {
		folded, punct := splitTrailingPunct(strings.ToLower(strings.TrimSpace(text)))

		// Exact-match short-circuit: return the mapping verbatim.
		if mapped, hit := dict[folded]; hit {
			return mapped
		}

		// Greedy longest-phrase-first substitution. Replacement happens in
		// fixed key order over the working copy, so a shorter key can match
		// inside an already-substituted segment. That order-dependent
		// behavior is intentional and pinned by tests.
		working := folded
		matched := false
		for _, key := range p.sortedKeys[targetLang] {
			if strings.Contains(working, key) {
				working = strings.ReplaceAll(working, key, dict[key])
				matched = true
			}
		}
		if matched {
			return capitalizeFirst(working) + punct
		}
	}

	suffix, ok := p.suffixes[targetLang]
	if !ok {
		suffix = fmt.Sprintf("(in %s)", targetLang)
	}
	return strings.TrimSpace(text) + " " + suffix
}

// scriptLanguages maps Unicode scripts to the language codes the offline
// backend can recognize.
var scriptLanguages = []struct {
	table *unicode.RangeTable
	code  string
}{
	{unicode.Devanagari, "hi"},
	{unicode.Tamil, "ta"},
	{unicode.Telugu, "te"},
	{unicode.Bengali, "bn"},
	{unicode.Kannada, "kn"},
}

// DetectLanguage is a deterministic heuristic: a script hit wins, then a
// dictionary-key hit marks the text as English, otherwise unknown.
func (p *PhraseTranslator) DetectLanguage(ctx context.Context, text string) domain.DetectionResult {
	trimmed := strings.TrimSpace(text)
	for _, r := range trimmed {
		for _, s := range scriptLanguages {
			if unicode.Is(s.table, r) {
				return domain.DetectionResult{
					DetectedLanguage: s.code,
					Confidence:       0.8,
					Status:           domain.StatusSuccess,
					Backend:          phraseBackendName,
				}
			}
		}
	}

	folded := strings.ToLower(trimmed)
	for _, dict := range p.dicts {
		if _, ok := dict[folded]; ok {
			return domain.DetectionResult{
				DetectedLanguage: "en",
				Confidence:       0.6,
				Status:           domain.StatusSuccess,
				Backend:          phraseBackendName,
			}
		}
	}

	return domain.DetectionResult{
		DetectedLanguage: domain.DetectUnknown,
		Confidence:       0,
		Status:           domain.StatusSuccess,
		Backend:          phraseBackendName,
	}
}

// SupportedLanguages returns the full built-in catalog. Languages without a
// dictionary are still accepted; they take the annotated passthrough path.
func (p *PhraseTranslator) SupportedLanguages() map[string]string {
	return language.DefaultCatalog()
}

// splitTrailingPunct strips at most one trailing sentence punctuation
// character so "hello." still exact-matches "hello". The character is
// reattached after a successful substitution.
func splitTrailingPunct(s string) (string, string) {
	if s == "" {
		return s, ""
	}
	switch last := s[len(s)-1]; last {
	case '.', ',', '!', '?':
		return strings.TrimRight(s[:len(s)-1], " "), string(last)
	}
	return s, ""
}

// capitalizeFirst upper-cases the first rune. Scripts without case are
// returned unchanged.
func capitalizeFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError && size <= 1 {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}

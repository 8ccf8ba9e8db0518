// Package translator defines the translation backend contract and its two
// implementations: the offline phrase-dictionary matcher and the remote
// Gemini-backed translator.
package translator

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/amitiii/udaan-next-gen-translator-api/internal/domain"
)

// Backend is the capability contract every translation backend satisfies.
// TranslateOne and TranslateBatch never return an error for ordinary
// translation failure; such failures are folded into the outcome status.
type Backend interface {
	TranslateOne(ctx context.Context, text, targetLang string) domain.TranslationOutcome
	TranslateBatch(ctx context.Context, texts []string, targetLang string) domain.BatchOutcome
	DetectLanguage(ctx context.Context, text string) domain.DetectionResult
	SupportedLanguages() map[string]string
	Name() string
}

// Mode selects a concrete backend implementation.
type Mode string

const (
	ModePhrase Mode = "phrase"
	ModeGemini Mode = "gemini"
)

// Config carries backend construction parameters.
type Config struct {
	Mode Mode

	GeminiAPIKey            string
	GeminiModel             string
	GeminiRequestTimeout    time.Duration
	GeminiRequestsPerSecond float64
}

// New builds the backend selected by cfg.Mode. An empty mode defaults to
// the offline phrase backend.
func New(cfg Config) (Backend, error) {
	switch cfg.Mode {
	case ModePhrase, "":
		return NewPhraseTranslator(), nil
	case ModeGemini:
		return NewGeminiTranslator(GeminiConfig{
			APIKey:            cfg.GeminiAPIKey,
			Model:             cfg.GeminiModel,
			RequestTimeout:    cfg.GeminiRequestTimeout,
			RequestsPerSecond: cfg.GeminiRequestsPerSecond,
		}), nil
	default:
		return nil, fmt.Errorf("unknown translator mode %q", cfg.Mode)
	}
}

// batchConcurrency bounds how many items of one batch are in flight at once.
const batchConcurrency = 4

// translateBatch fans TranslateOne out over texts with per-item failure
// isolation. The result slice preserves input order and the aggregate
// processing time is the wall-clock span of the whole batch. When ctx is
// cancelled mid-batch, not-yet-started items resolve as error outcomes
// while completed ones are returned intact.
func translateBatch(ctx context.Context, b Backend, texts []string, targetLang string) domain.BatchOutcome {
	start := time.Now()
	items := make([]domain.TranslationOutcome, len(texts))

	var wg sync.WaitGroup
	sem := make(chan struct{}, batchConcurrency)
	for i, text := range texts {
		if err := ctx.Err(); err != nil {
			items[i] = domain.TranslationOutcome{
				OriginalText: text,
				TargetLang:   targetLang,
				Status:       domain.StatusError,
				ErrorMessage: fmt.Sprintf("translation cancelled: %v", err),
				Backend:      b.Name(),
			}
			continue
		}

		sem <- struct{}{}
		wg.Add(1)
		go func(i int, text string) {
			defer wg.Done()
			defer func() { <-sem }()
			items[i] = b.TranslateOne(ctx, text, targetLang)
		}(i, text)
	}
	wg.Wait()

	successful := 0
	var errs []string
	for i, item := range items {
		if item.Status == domain.StatusSuccess {
			successful++
			continue
		}
		errs = append(errs, fmt.Sprintf("Text %d: %s", i+1, item.ErrorMessage))
	}

	status := domain.StatusSuccess
	if len(errs) > 0 {
		status = domain.StatusPartialSuccess
	}

	return domain.BatchOutcome{
		Translations:     items,
		Status:           status,
		ErrorMessage:     strings.Join(errs, "; "),
		ProcessingTimeMs: time.Since(start).Milliseconds(),
		TotalTexts:       len(texts),
		SuccessfulCount:  successful,
		Backend:          b.Name(),
	}
}

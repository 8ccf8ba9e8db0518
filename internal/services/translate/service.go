// Package translate implements the translation orchestrator: input
// validation, backend dispatch, batch aggregation, and fire-and-forget
// activity recording.
package translate

import (
	"context"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/amitiii/udaan-next-gen-translator-api/internal/cache"
	"github.com/amitiii/udaan-next-gen-translator-api/internal/domain"
	"github.com/amitiii/udaan-next-gen-translator-api/internal/language"
	"github.com/amitiii/udaan-next-gen-translator-api/internal/translator"
	"github.com/amitiii/udaan-next-gen-translator-api/pkg/logger"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Recorder persists translation activity. Implementations must be safe for
// concurrent use. A Recorder failure never affects the translation response.
type Recorder interface {
	Record(ctx context.Context, entries []*domain.TranslationLog) error
}

// ResultCache is an optional lookaside cache for successful translations.
type ResultCache interface {
	Get(ctx context.Context, targetLang, text string) (string, bool)
	Set(ctx context.Context, targetLang, text, translated string)
}

// Config carries orchestrator limits.
type Config struct {
	MaxTextLength int           // characters per text, default 1000
	MaxBulkTexts  int           // items per bulk request, default 10
	RecordTimeout time.Duration // budget for one recording attempt
}

// ClientContext carries request metadata handed to the activity recorder.
type ClientContext struct {
	IP string
}

// Service orchestrates translation requests against one backend.
type Service struct {
	backend  translator.Backend
	catalog  *cache.CatalogCache
	recorder Recorder    // nil disables activity recording
	results  ResultCache // nil disables the result cache
	cfg      Config
}

// NewService builds the orchestrator. recorder and results may be nil.
func NewService(backend translator.Backend, catalog *cache.CatalogCache, recorder Recorder, results ResultCache, cfg Config) *Service {
	if cfg.MaxTextLength <= 0 {
		cfg.MaxTextLength = 1000
	}
	if cfg.MaxBulkTexts <= 0 {
		cfg.MaxBulkTexts = 10
	}
	if cfg.RecordTimeout <= 0 {
		cfg.RecordTimeout = 5 * time.Second
	}
	return &Service{
		backend:  backend,
		catalog:  catalog,
		recorder: recorder,
		results:  results,
		cfg:      cfg,
	}
}

// Backend exposes the configured backend, mainly for the health endpoint.
func (s *Service) Backend() translator.Backend {
	return s.backend
}

// Translate validates and translates a single text. Validation failures are
// returned as errors; backend failures are reported in the outcome status.
func (s *Service) Translate(ctx context.Context, text, targetLang string, client ClientContext) (domain.TranslationOutcome, error) {
	clean, err := s.checkText(text)
	if err != nil {
		return domain.TranslationOutcome{}, err
	}
	lang, err := s.resolveLang(ctx, targetLang)
	if err != nil {
		return domain.TranslationOutcome{}, err
	}

	if s.results != nil {
		if translated, ok := s.results.Get(ctx, lang, clean); ok {
			outcome := domain.TranslationOutcome{
				OriginalText:   clean,
				TranslatedText: translated,
				TargetLang:     lang,
				Status:         domain.StatusSuccess,
				Backend:        s.backend.Name(),
			}
			s.record("", client, outcome)
			return outcome, nil
		}
	}

	outcome := s.backend.TranslateOne(ctx, clean, lang)
	if outcome.Status == domain.StatusSuccess && s.results != nil {
		s.results.Set(ctx, lang, clean, outcome.TranslatedText)
	}
	s.record("", client, outcome)
	return outcome, nil
}

// TranslateBulk validates and translates a batch of texts. The returned
// outcome carries a generated request identifier; item order matches input
// order and one item's failure never aborts its siblings.
func (s *Service) TranslateBulk(ctx context.Context, texts []string, targetLang string, client ClientContext) (domain.BatchOutcome, error) {
	if len(texts) == 0 {
		return domain.BatchOutcome{}, fmt.Errorf("%w: bulk request has no texts", domain.ErrEmptyText)
	}
	if len(texts) > s.cfg.MaxBulkTexts {
		return domain.BatchOutcome{}, fmt.Errorf("%w: at most %d texts per request, got %d",
			domain.ErrTooManyTexts, s.cfg.MaxBulkTexts, len(texts))
	}

	clean := make([]string, len(texts))
	for i, text := range texts {
		c, err := s.checkText(text)
		if err != nil {
			return domain.BatchOutcome{}, fmt.Errorf("text at index %d: %w", i, err)
		}
		clean[i] = c
	}

	lang, err := s.resolveLang(ctx, targetLang)
	if err != nil {
		return domain.BatchOutcome{}, err
	}

	batch := s.backend.TranslateBatch(ctx, clean, lang)
	batch.RequestID = uuid.New().String()

	if s.results != nil {
		for _, item := range batch.Translations {
			if item.Status == domain.StatusSuccess {
				s.results.Set(ctx, lang, item.OriginalText, item.TranslatedText)
			}
		}
	}

	s.record(batch.RequestID, client, batch.Translations...)
	return batch, nil
}

// Detect validates the text and runs backend language detection.
func (s *Service) Detect(ctx context.Context, text string) (domain.DetectionResult, error) {
	clean, err := s.checkText(text)
	if err != nil {
		return domain.DetectionResult{}, err
	}
	return s.backend.DetectLanguage(ctx, clean), nil
}

// Languages returns the current supported-language catalog.
func (s *Service) Languages(ctx context.Context) (map[string]string, error) {
	snap, err := s.catalog.Get(ctx)
	if err != nil {
		return nil, err
	}
	return snap.Entries, nil
}

// checkText sanitizes one input text: whitespace trim only, then empty and
// length checks. The length limit counts characters, not bytes.
func (s *Service) checkText(text string) (string, error) {
	clean := strings.TrimSpace(text)
	if clean == "" {
		return "", domain.ErrEmptyText
	}
	if n := utf8.RuneCountInString(clean); n > s.cfg.MaxTextLength {
		return "", fmt.Errorf("%w: %d characters, limit %d", domain.ErrTextTooLong, n, s.cfg.MaxTextLength)
	}
	return clean, nil
}

// resolveLang normalizes the target code and confirms catalog membership.
// When no catalog snapshot can be obtained the built-in language list
// answers instead; a code outside even that list surfaces the
// catalog-unavailable condition rather than claiming "unsupported".
func (s *Service) resolveLang(ctx context.Context, targetLang string) (string, error) {
	lang, err := language.Normalize(targetLang)
	if err != nil {
		return "", err
	}

	snap, err := s.catalog.Get(ctx)
	if err != nil {
		if language.IsSupported(lang, nil) {
			return lang, nil
		}
		return "", fmt.Errorf("%w: cannot confirm support for %q", domain.ErrCatalogUnavailable, lang)
	}

	if !language.IsSupported(lang, snap.Entries) {
		return "", fmt.Errorf("%w: %q", domain.ErrUnsupportedLanguage, lang)
	}
	return lang, nil
}

// record hands outcomes to the activity recorder without blocking the
// response. Recorder failures are logged and swallowed.
func (s *Service) record(requestID string, client ClientContext, outcomes ...domain.TranslationOutcome) {
	if s.recorder == nil || len(outcomes) == 0 {
		return
	}

	entries := make([]*domain.TranslationLog, len(outcomes))
	for i, o := range outcomes {
		entries[i] = &domain.TranslationLog{
			RequestID:        requestID,
			OriginalText:     o.OriginalText,
			TranslatedText:   o.TranslatedText,
			TargetLang:       o.TargetLang,
			Status:           o.Status,
			ErrorMessage:     o.ErrorMessage,
			ProcessingTimeMs: o.ProcessingTimeMs,
			Backend:          o.Backend,
			ClientIP:         client.IP,
		}
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), s.cfg.RecordTimeout)
		defer cancel()
		if err := s.recorder.Record(ctx, entries); err != nil {
			logger.Base().Warn("activity recording failed",
				zap.Int("entries", len(entries)),
				zap.Error(err))
		}
	}()
}

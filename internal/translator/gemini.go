package translator

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/amitiii/udaan-next-gen-translator-api/internal/domain"
	"github.com/amitiii/udaan-next-gen-translator-api/internal/language"
	"github.com/amitiii/udaan-next-gen-translator-api/pkg/logger"
	"github.com/sony/gobreaker"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
	"google.golang.org/genai"
)

const (
	defaultGeminiModel   = "gemini-1.5-flash"
	defaultGeminiTimeout = 30 * time.Second
	defaultGeminiRPS     = 5
)

// GeminiConfig carries construction parameters for the remote backend.
type GeminiConfig struct {
	APIKey            string
	Model             string
	RequestTimeout    time.Duration
	RequestsPerSecond float64
}

// GeminiTranslator wraps the Gemini generative API behind the Backend
// contract. Construction without a credential yields a degraded instance:
// translation and detection report error outcomes while SupportedLanguages
// keeps returning the static table.
type GeminiTranslator struct {
	cfg     GeminiConfig
	client  *genai.Client // nil when initialization failed
	initErr error
	breaker *gobreaker.CircuitBreaker
	limiter *rate.Limiter
}

// NewGeminiTranslator builds the remote backend. It never fails; an
// unusable configuration degrades the instance instead.
func NewGeminiTranslator(cfg GeminiConfig) *GeminiTranslator {
	if cfg.Model == "" {
		cfg.Model = defaultGeminiModel
	}
	if cfg.RequestTimeout <= 0 {
		cfg.RequestTimeout = defaultGeminiTimeout
	}
	if cfg.RequestsPerSecond <= 0 {
		cfg.RequestsPerSecond = defaultGeminiRPS
	}

	g := &GeminiTranslator{
		cfg:     cfg,
		limiter: rate.NewLimiter(rate.Limit(cfg.RequestsPerSecond), int(cfg.RequestsPerSecond)+1),
		breaker: gobreaker.NewCircuitBreaker(gobreaker.Settings{
			Name:    "gemini",
			Timeout: 30 * time.Second,
			ReadyToTrip: func(counts gobreaker.Counts) bool {
				return counts.ConsecutiveFailures >= 5
			},
			OnStateChange: func(name string, from, to gobreaker.State) {
				logger.Base().Warn("gemini circuit breaker state change",
					zap.String("from", from.String()),
					zap.String("to", to.String()))
			},
		}),
	}

	if cfg.APIKey == "" {
		g.initErr = errors.New("GEMINI_API_KEY not set")
		logger.Base().Warn("gemini translator running degraded, no API key configured")
		return g
	}

	client, err := genai.NewClient(context.Background(), &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		g.initErr = fmt.Errorf("creating gemini client: %w", err)
		logger.Base().Error("gemini client initialization failed", zap.Error(err))
		return g
	}

	g.client = client
	logger.Base().Info("gemini translator initialized", zap.String("model", cfg.Model))
	return g
}

// Name returns the model identifier reported in outcomes.
func (g *GeminiTranslator) Name() string {
	return g.cfg.Model
}

// TranslateOne translates a single text through one generate call. Upstream
// failures are captured in the outcome, never thrown past the backend.
func (g *GeminiTranslator) TranslateOne(ctx context.Context, text, targetLang string) domain.TranslationOutcome {
	start := time.Now()
	outcome := domain.TranslationOutcome{
		OriginalText: text,
		TargetLang:   targetLang,
		Backend:      g.cfg.Model,
	}

	name := language.DisplayName(targetLang)
	prompt := fmt.Sprintf(
		"Translate the following text to %s (ISO code: %s). "+
			"Provide only the translated text without any explanations, quotes, or additional text. "+
			"Make sure to translate to the correct language - %s (%s).\n\n"+
			"Text to translate: %q",
		name, targetLang, name, targetLang, text)

	translated, err := g.generate(ctx, prompt)
	if err != nil {
		outcome.Status = domain.StatusError
		outcome.ErrorMessage = fmt.Sprintf("Gemini translation failed: %v", err)
	} else {
		outcome.Status = domain.StatusSuccess
		outcome.TranslatedText = stripEnclosingQuotes(translated)
	}
	outcome.ProcessingTimeMs = time.Since(start).Milliseconds()
	return outcome
}

// TranslateBatch translates texts with per-item isolation and input-order
// results.
func (g *GeminiTranslator) TranslateBatch(ctx context.Context, texts []string, targetLang string) domain.BatchOutcome {
	return translateBatch(ctx, g, texts, targetLang)
}

// DetectLanguage asks the model for a bare two-letter code. Anything else
// in the response is normalized to "unknown" with confidence 0.
func (g *GeminiTranslator) DetectLanguage(ctx context.Context, text string) domain.DetectionResult {
	prompt := fmt.Sprintf(
		"Detect the language of the following text and respond with only the "+
			"ISO 639-1 language code (2 letters). If you cannot detect the "+
			"language, respond with 'unknown'.\n\nText: %q\n\nLanguage code:",
		text)

	resp, err := g.generate(ctx, prompt)
	if err != nil {
		return domain.DetectionResult{
			Status:       domain.StatusError,
			ErrorMessage: err.Error(),
			Backend:      g.cfg.Model,
		}
	}

	code := normalizeDetectedCode(resp)
	confidence := 0.9
	if code == domain.DetectUnknown {
		confidence = 0
	}
	return domain.DetectionResult{
		DetectedLanguage: code,
		Confidence:       confidence,
		Status:           domain.StatusSuccess,
		Backend:          g.cfg.Model,
	}
}

// SupportedLanguages returns the static language table. It works even when
// the instance is degraded.
func (g *GeminiTranslator) SupportedLanguages() map[string]string {
	return language.DefaultCatalog()
}

// generate performs one bounded, rate-limited generate call through the
// circuit breaker.
func (g *GeminiTranslator) generate(ctx context.Context, prompt string) (string, error) {
	if g.client == nil {
		return "", fmt.Errorf("gemini model not initialized: %w", g.initErr)
	}
	if err := g.limiter.Wait(ctx); err != nil {
		return "", err
	}

	result, err := g.breaker.Execute(func() (interface{}, error) {
		callCtx, cancel := context.WithTimeout(ctx, g.cfg.RequestTimeout)
		defer cancel()

		resp, err := g.client.Models.GenerateContent(callCtx, g.cfg.Model, genai.Text(prompt), nil)
		if err != nil {
			return nil, err
		}
		text := strings.TrimSpace(resp.Text())
		if text == "" {
			return nil, errors.New("empty response from model")
		}
		return text, nil
	})
	if err != nil {
		return "", err
	}
	return result.(string), nil
}

// stripEnclosingQuotes removes a single pair of matching quote characters
// around the whole string.
func stripEnclosingQuotes(s string) string {
	if len(s) >= 2 {
		first, last := s[0], s[len(s)-1]
		if first == last && (first == '"' || first == '\'') {
			return s[1 : len(s)-1]
		}
	}
	return s
}

// normalizeDetectedCode reduces a model response to a lowercase two-letter
// code or "unknown".
func normalizeDetectedCode(resp string) string {
	code := strings.ToLower(strings.TrimSpace(resp))
	code = strings.Trim(code, `"'.`)
	if len(code) != 2 {
		return domain.DetectUnknown
	}
	for _, r := range code {
		if r < 'a' || r > 'z' {
			return domain.DetectUnknown
		}
	}
	return code
}

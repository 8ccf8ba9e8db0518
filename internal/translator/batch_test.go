package translator

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/amitiii/udaan-next-gen-translator-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubBackend fails any text prefixed with "fail" and can delay each item.
type stubBackend struct {
	delay time.Duration
}

func (s *stubBackend) Name() string { return "stub" }

func (s *stubBackend) TranslateOne(ctx context.Context, text, targetLang string) domain.TranslationOutcome {
	if s.delay > 0 {
		time.Sleep(s.delay)
	}
	if strings.HasPrefix(text, "fail") {
		return domain.TranslationOutcome{
			OriginalText: text,
			TargetLang:   targetLang,
			Status:       domain.StatusError,
			ErrorMessage: "upstream exploded",
			Backend:      s.Name(),
		}
	}
	return domain.TranslationOutcome{
		OriginalText:   text,
		TranslatedText: "translated:" + text,
		TargetLang:     targetLang,
		Status:         domain.StatusSuccess,
		Backend:        s.Name(),
	}
}

func (s *stubBackend) TranslateBatch(ctx context.Context, texts []string, targetLang string) domain.BatchOutcome {
	return translateBatch(ctx, s, texts, targetLang)
}

func (s *stubBackend) DetectLanguage(ctx context.Context, text string) domain.DetectionResult {
	return domain.DetectionResult{DetectedLanguage: domain.DetectUnknown, Status: domain.StatusSuccess, Backend: s.Name()}
}

func (s *stubBackend) SupportedLanguages() map[string]string {
	return map[string]string{"en": "English"}
}

func TestTranslateBatchPreservesInputOrder(t *testing.T) {
	b := &stubBackend{}
	texts := make([]string, 20)
	for i := range texts {
		texts[i] = fmt.Sprintf("text-%02d", i)
	}

	batch := b.TranslateBatch(context.Background(), texts, "en")

	require.Len(t, batch.Translations, len(texts))
	for i, item := range batch.Translations {
		assert.Equal(t, texts[i], item.OriginalText)
		assert.Equal(t, "translated:"+texts[i], item.TranslatedText)
	}
	assert.Equal(t, domain.StatusSuccess, batch.Status)
	assert.Equal(t, len(texts), batch.SuccessfulCount)
}

func TestTranslateBatchIsolatesItemFailures(t *testing.T) {
	b := &stubBackend{}
	texts := []string{"ok one", "fail two", "ok three", "fail four"}

	batch := b.TranslateBatch(context.Background(), texts, "en")

	require.Len(t, batch.Translations, 4)
	assert.Equal(t, domain.StatusSuccess, batch.Translations[0].Status)
	assert.Equal(t, domain.StatusError, batch.Translations[1].Status)
	assert.Equal(t, domain.StatusSuccess, batch.Translations[2].Status)
	assert.Equal(t, domain.StatusError, batch.Translations[3].Status)

	assert.Equal(t, domain.StatusPartialSuccess, batch.Status)
	assert.Equal(t, 4, batch.TotalTexts)
	assert.Equal(t, 2, batch.SuccessfulCount)

	// Per-item errors are joined with "; " and carry 1-based positions.
	assert.Equal(t, "Text 2: upstream exploded; Text 4: upstream exploded", batch.ErrorMessage)
}

func TestTranslateBatchWallClockTiming(t *testing.T) {
	b := &stubBackend{delay: 100 * time.Millisecond}
	texts := []string{"a", "b", "c", "d", "e", "f", "g", "h"}

	start := time.Now()
	batch := b.TranslateBatch(context.Background(), texts, "en")
	elapsed := time.Since(start)

	// Eight 100ms items over a window of four should finish well under the
	// 800ms a sequential pass would take.
	assert.Less(t, elapsed, 600*time.Millisecond)
	assert.GreaterOrEqual(t, batch.ProcessingTimeMs, int64(100))
	assert.Equal(t, 8, batch.SuccessfulCount)
}

func TestTranslateBatchCancelledContext(t *testing.T) {
	b := &stubBackend{}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	batch := b.TranslateBatch(ctx, []string{"one", "two"}, "en")

	require.Len(t, batch.Translations, 2)
	for i, item := range batch.Translations {
		assert.Equal(t, domain.StatusError, item.Status, "item %d", i)
		assert.Contains(t, item.ErrorMessage, "cancelled")
	}
	assert.Equal(t, domain.StatusPartialSuccess, batch.Status)
	assert.Equal(t, 0, batch.SuccessfulCount)
}

func TestTranslateBatchEmptyInput(t *testing.T) {
	b := &stubBackend{}

	batch := b.TranslateBatch(context.Background(), nil, "en")

	assert.Empty(t, batch.Translations)
	assert.Equal(t, domain.StatusSuccess, batch.Status)
	assert.Equal(t, 0, batch.TotalTexts)
}

func TestNewFactory(t *testing.T) {
	t.Run("default mode is phrase", func(t *testing.T) {
		b, err := New(Config{})
		require.NoError(t, err)
		assert.Equal(t, "phrase-dictionary", b.Name())
	})

	t.Run("gemini mode", func(t *testing.T) {
		b, err := New(Config{Mode: ModeGemini, GeminiModel: "gemini-1.5-flash"})
		require.NoError(t, err)
		assert.Equal(t, "gemini-1.5-flash", b.Name())
	})

	t.Run("unknown mode", func(t *testing.T) {
		_, err := New(Config{Mode: "babelfish"})
		assert.Error(t, err)
	})
}

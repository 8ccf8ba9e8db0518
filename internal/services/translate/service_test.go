package translate

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/amitiii/udaan-next-gen-translator-api/internal/cache"
	"github.com/amitiii/udaan-next-gen-translator-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeBackend echoes its input; texts prefixed "fail" produce error outcomes.
type fakeBackend struct {
	languages map[string]string
}

func newFakeBackend() *fakeBackend {
	return &fakeBackend{languages: map[string]string{
		"hi": "Hindi",
		"ta": "Tamil",
		"fr": "French",
	}}
}

func (f *fakeBackend) Name() string { return "fake" }

func (f *fakeBackend) TranslateOne(ctx context.Context, text, targetLang string) domain.TranslationOutcome {
	if strings.HasPrefix(text, "fail") {
		return domain.TranslationOutcome{
			OriginalText: text,
			TargetLang:   targetLang,
			Status:       domain.StatusError,
			ErrorMessage: "backend down",
			Backend:      f.Name(),
		}
	}
	return domain.TranslationOutcome{
		OriginalText:   text,
		TranslatedText: "t:" + text,
		TargetLang:     targetLang,
		Status:         domain.StatusSuccess,
		Backend:        f.Name(),
	}
}

func (f *fakeBackend) TranslateBatch(ctx context.Context, texts []string, targetLang string) domain.BatchOutcome {
	items := make([]domain.TranslationOutcome, len(texts))
	successful := 0
	var errs []string
	for i, text := range texts {
		items[i] = f.TranslateOne(ctx, text, targetLang)
		if items[i].Status == domain.StatusSuccess {
			successful++
		} else {
			errs = append(errs, items[i].ErrorMessage)
		}
	}
	status := domain.StatusSuccess
	if len(errs) > 0 {
		status = domain.StatusPartialSuccess
	}
	return domain.BatchOutcome{
		Translations:    items,
		Status:          status,
		ErrorMessage:    strings.Join(errs, "; "),
		TotalTexts:      len(texts),
		SuccessfulCount: successful,
		Backend:         f.Name(),
	}
}

func (f *fakeBackend) DetectLanguage(ctx context.Context, text string) domain.DetectionResult {
	return domain.DetectionResult{DetectedLanguage: "hi", Confidence: 0.9, Status: domain.StatusSuccess, Backend: f.Name()}
}

func (f *fakeBackend) SupportedLanguages() map[string]string { return f.languages }

// fakeRecorder captures recorded entries and signals each call.
type fakeRecorder struct {
	err   error
	calls chan []*domain.TranslationLog
}

func newFakeRecorder(err error) *fakeRecorder {
	return &fakeRecorder{err: err, calls: make(chan []*domain.TranslationLog, 8)}
}

func (r *fakeRecorder) Record(ctx context.Context, entries []*domain.TranslationLog) error {
	r.calls <- entries
	return r.err
}

func (r *fakeRecorder) wait(t *testing.T) []*domain.TranslationLog {
	t.Helper()
	select {
	case entries := <-r.calls:
		return entries
	case <-time.After(2 * time.Second):
		t.Fatal("recorder was not called")
		return nil
	}
}

func newTestService(recorder Recorder, results ResultCache) *Service {
	backend := newFakeBackend()
	catalog := cache.NewCatalogCache(func(ctx context.Context) (map[string]string, error) {
		return backend.SupportedLanguages(), nil
	}, time.Hour)
	return NewService(backend, catalog, recorder, results, Config{})
}

func TestTranslateSuccess(t *testing.T) {
	recorder := newFakeRecorder(nil)
	s := newTestService(recorder, nil)

	outcome, err := s.Translate(context.Background(), "  hello  ", "TA", ClientContext{IP: "10.0.0.1"})
	require.NoError(t, err)

	assert.Equal(t, domain.StatusSuccess, outcome.Status)
	assert.Equal(t, "t:hello", outcome.TranslatedText)
	// Sanitation strips surrounding whitespace before dispatch.
	assert.Equal(t, "hello", outcome.OriginalText)
	assert.Equal(t, "ta", outcome.TargetLang)

	entries := recorder.wait(t)
	require.Len(t, entries, 1)
	assert.Equal(t, "hello", entries[0].OriginalText)
	assert.Equal(t, "10.0.0.1", entries[0].ClientIP)
}

func TestTranslateValidationErrors(t *testing.T) {
	s := newTestService(nil, nil)

	tests := []struct {
		name    string
		text    string
		lang    string
		wantErr error
	}{
		{name: "empty text", text: "   ", lang: "hi", wantErr: domain.ErrEmptyText},
		{name: "too long", text: strings.Repeat("a", 1001), lang: "hi", wantErr: domain.ErrTextTooLong},
		{name: "single letter code", text: "hello", lang: "E", wantErr: domain.ErrInvalidFormat},
		{name: "three letter code", text: "hello", lang: "eng", wantErr: domain.ErrInvalidFormat},
		{name: "unsupported code", text: "hello", lang: "zz", wantErr: domain.ErrUnsupportedLanguage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := s.Translate(context.Background(), tt.text, tt.lang, ClientContext{})
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestTranslateTextLengthCountsCharacters(t *testing.T) {
	s := newTestService(nil, nil)

	// 400 three-byte runes are 1200 bytes but only 400 characters.
	text := strings.Repeat("न", 400)
	outcome, err := s.Translate(context.Background(), text, "hi", ClientContext{})
	require.NoError(t, err)
	assert.Equal(t, domain.StatusSuccess, outcome.Status)
}

func TestTranslateCatalogUnavailableFallsBackToBuiltinList(t *testing.T) {
	backend := newFakeBackend()
	catalog := cache.NewCatalogCache(func(ctx context.Context) (map[string]string, error) {
		return nil, errors.New("listing down")
	}, time.Hour)
	s := NewService(backend, catalog, nil, nil, Config{})

	// "fr" is in the built-in list, so translation proceeds.
	outcome, err := s.Translate(context.Background(), "hello", "fr", ClientContext{})
	require.NoError(t, err)
	assert.Equal(t, domain.StatusSuccess, outcome.Status)

	// "zz" is not even in the built-in list; the error names the catalog
	// condition, not "unsupported".
	_, err = s.Translate(context.Background(), "hello", "zz", ClientContext{})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrCatalogUnavailable)
	assert.NotErrorIs(t, err, domain.ErrUnsupportedLanguage)
}

func TestTranslateRecorderFailureDoesNotAffectResponse(t *testing.T) {
	recorder := newFakeRecorder(errors.New("database on fire"))
	s := newTestService(recorder, nil)

	outcome, err := s.Translate(context.Background(), "hello", "hi", ClientContext{})
	require.NoError(t, err)
	assert.Equal(t, domain.StatusSuccess, outcome.Status)
	recorder.wait(t)
}

func TestTranslateWithoutRecorder(t *testing.T) {
	s := newTestService(nil, nil)

	outcome, err := s.Translate(context.Background(), "hello", "hi", ClientContext{})
	require.NoError(t, err)
	assert.Equal(t, domain.StatusSuccess, outcome.Status)
}

func TestTranslateBulk(t *testing.T) {
	recorder := newFakeRecorder(nil)
	s := newTestService(recorder, nil)

	batch, err := s.TranslateBulk(context.Background(), []string{"one", "fail two", "three"}, "hi", ClientContext{})
	require.NoError(t, err)

	assert.NotEmpty(t, batch.RequestID)
	assert.Equal(t, domain.StatusPartialSuccess, batch.Status)
	assert.Equal(t, 3, batch.TotalTexts)
	assert.Equal(t, 2, batch.SuccessfulCount)
	require.Len(t, batch.Translations, 3)
	assert.Equal(t, "one", batch.Translations[0].OriginalText)
	assert.Equal(t, "fail two", batch.Translations[1].OriginalText)

	entries := recorder.wait(t)
	require.Len(t, entries, 3)
	for _, e := range entries {
		assert.Equal(t, batch.RequestID, e.RequestID)
	}
}

func TestTranslateBulkValidation(t *testing.T) {
	s := newTestService(nil, nil)

	t.Run("no texts", func(t *testing.T) {
		_, err := s.TranslateBulk(context.Background(), nil, "hi", ClientContext{})
		assert.ErrorIs(t, err, domain.ErrEmptyText)
	})

	t.Run("too many texts", func(t *testing.T) {
		texts := make([]string, 11)
		for i := range texts {
			texts[i] = "x"
		}
		_, err := s.TranslateBulk(context.Background(), texts, "hi", ClientContext{})
		assert.ErrorIs(t, err, domain.ErrTooManyTexts)
	})

	t.Run("invalid item names its index", func(t *testing.T) {
		_, err := s.TranslateBulk(context.Background(), []string{"ok", "   "}, "hi", ClientContext{})
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrEmptyText)
		assert.Contains(t, err.Error(), "index 1")
	})
}

func TestDetect(t *testing.T) {
	s := newTestService(nil, nil)

	result, err := s.Detect(context.Background(), "नमस्ते")
	require.NoError(t, err)
	assert.Equal(t, "hi", result.DetectedLanguage)

	_, err = s.Detect(context.Background(), "  ")
	assert.ErrorIs(t, err, domain.ErrEmptyText)
}

func TestLanguages(t *testing.T) {
	s := newTestService(nil, nil)

	languages, err := s.Languages(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Hindi", languages["hi"])
	assert.Len(t, languages, 3)
}

// memoryResultCache is an in-process stand-in for the Redis lookaside cache.
type memoryResultCache struct {
	entries map[string]string
}

func (m *memoryResultCache) Get(ctx context.Context, targetLang, text string) (string, bool) {
	v, ok := m.entries[targetLang+":"+text]
	return v, ok
}

func (m *memoryResultCache) Set(ctx context.Context, targetLang, text, translated string) {
	m.entries[targetLang+":"+text] = translated
}

func TestTranslateResultCache(t *testing.T) {
	results := &memoryResultCache{entries: map[string]string{}}
	s := newTestService(nil, results)

	first, err := s.Translate(context.Background(), "hello", "hi", ClientContext{})
	require.NoError(t, err)
	assert.Equal(t, "t:hello", first.TranslatedText)
	assert.Equal(t, "t:hello", results.entries["hi:hello"])

	// Poison the cache to prove the second call is served from it.
	results.entries["hi:hello"] = "cached-value"
	second, err := s.Translate(context.Background(), "hello", "hi", ClientContext{})
	require.NoError(t, err)
	assert.Equal(t, "cached-value", second.TranslatedText)
}

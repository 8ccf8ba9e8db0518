package domain

// Status values reported for a single translation attempt or a batch.
const (
	StatusSuccess        = "success"
	StatusError          = "error"
	StatusPartialSuccess = "partial_success"
)

// DetectUnknown is reported when a backend cannot determine the language.
// It always pairs with a confidence of 0.
const DetectUnknown = "unknown"

// TranslationOutcome is the result of one translation attempt. It is
// constructed once by a backend and never modified afterwards.
// TranslatedText is set iff Status is StatusSuccess.
type TranslationOutcome struct {
	OriginalText     string `json:"original_text"`
	TranslatedText   string `json:"translated_text,omitempty"`
	TargetLang       string `json:"target_lang"`
	Status           string `json:"status"`
	ErrorMessage     string `json:"error_message,omitempty"`
	ProcessingTimeMs int64  `json:"processing_time_ms"`
	Backend          string `json:"model,omitempty"`
}

// BatchOutcome aggregates the per-item outcomes of a bulk translation.
// Translations preserves the order of the input texts; callers correlate
// results by index. Status is StatusSuccess iff every item succeeded,
// otherwise StatusPartialSuccess with the joined per-item errors.
type BatchOutcome struct {
	RequestID        string               `json:"request_id,omitempty"`
	Translations     []TranslationOutcome `json:"translations"`
	Status           string               `json:"status"`
	ErrorMessage     string               `json:"error_message,omitempty"`
	ProcessingTimeMs int64                `json:"processing_time_ms"`
	TotalTexts       int                  `json:"total_texts"`
	SuccessfulCount  int                  `json:"successful_translations"`
	Backend          string               `json:"model,omitempty"`
}

// DetectionResult is the outcome of a language detection attempt.
// Confidence is backend-defined within [0, 1].
type DetectionResult struct {
	DetectedLanguage string  `json:"detected_language"`
	Confidence       float64 `json:"confidence"`
	Status           string  `json:"status"`
	ErrorMessage     string  `json:"error_message,omitempty"`
	Backend          string  `json:"model,omitempty"`
}

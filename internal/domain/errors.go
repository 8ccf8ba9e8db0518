package domain

import "errors"

// Validation-class errors are detected before any backend is called and
// returned synchronously. Backend failures are never surfaced as errors;
// they are folded into the Status field of the returned outcome.
var (
	// ErrInvalidFormat indicates a target language code that does not
	// match the two-letter ISO 639-1 pattern.
	ErrInvalidFormat = errors.New("invalid language code format")

	// ErrEmptyText indicates input text that is empty after trimming.
	ErrEmptyText = errors.New("text is empty")

	// ErrTextTooLong indicates input text over the configured limit.
	ErrTextTooLong = errors.New("text exceeds maximum length")

	// ErrTooManyTexts indicates a bulk request over the item limit.
	ErrTooManyTexts = errors.New("too many texts in bulk request")

	// ErrUnsupportedLanguage indicates a well-formed code that is not in
	// the supported-language catalog.
	ErrUnsupportedLanguage = errors.New("unsupported target language")

	// ErrCatalogUnavailable indicates that language support could not be
	// confirmed because no catalog snapshot could be obtained. It is
	// distinct from ErrUnsupportedLanguage: the code may well be valid.
	ErrCatalogUnavailable = errors.New("language catalog unavailable")
)

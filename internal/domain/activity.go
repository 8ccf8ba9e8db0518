package domain

import "time"

// TranslationLog is one persisted translation activity record.
type TranslationLog struct {
	ID               string    `json:"id" gorm:"primaryKey;type:uuid"`
	RequestID        string    `json:"request_id" gorm:"index"`
	OriginalText     string    `json:"original_text" gorm:"type:text"`
	TranslatedText   string    `json:"translated_text" gorm:"type:text"`
	TargetLang       string    `json:"target_lang" gorm:"index;size:8"`
	Status           string    `json:"status" gorm:"index;size:32"`
	ErrorMessage     string    `json:"error_message" gorm:"type:text"`
	ProcessingTimeMs int64     `json:"processing_time_ms"`
	Backend          string    `json:"backend" gorm:"size:64"`
	ClientIP         string    `json:"client_ip" gorm:"size:64"`
	CreatedAt        time.Time `json:"created_at" gorm:"index"`
}

// TableName implements the GORM Tabler interface.
func (TranslationLog) TableName() string {
	return "translation_logs"
}

// LanguageCount is a per-target-language request count.
type LanguageCount struct {
	TargetLang string `json:"target_lang"`
	Count      int64  `json:"count"`
}

// TranslationStats summarizes recorded translation activity.
type TranslationStats struct {
	TotalRequests   int64           `json:"total_requests"`
	SuccessCount    int64           `json:"success_count"`
	ErrorCount      int64           `json:"error_count"`
	AvgProcessingMs float64         `json:"avg_processing_time_ms"`
	ByLanguage      []LanguageCount `json:"by_language"`
}

package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/amitiii/udaan-next-gen-translator-api/internal/domain"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TranslationLogRepository handles database operations for translation
// activity records.
type TranslationLogRepository struct {
	db *gorm.DB
}

// NewTranslationLogRepository creates a new translation log repository.
func NewTranslationLogRepository(db *gorm.DB) *TranslationLogRepository {
	return &TranslationLogRepository{db: db}
}

// Record persists a group of translation activity entries in one insert.
func (r *TranslationLogRepository) Record(ctx context.Context, entries []*domain.TranslationLog) error {
	if len(entries) == 0 {
		return nil
	}
	now := time.Now()
	for _, e := range entries {
		if e.ID == "" {
			e.ID = uuid.New().String()
		}
		if e.CreatedAt.IsZero() {
			e.CreatedAt = now
		}
	}
	if err := r.db.WithContext(ctx).Create(&entries).Error; err != nil {
		return fmt.Errorf("failed to record translation activity: %w", err)
	}
	return nil
}

// Stats aggregates the recorded translation activity.
func (r *TranslationLogRepository) Stats(ctx context.Context) (*domain.TranslationStats, error) {
	stats := &domain.TranslationStats{}
	model := func() *gorm.DB {
		return r.db.WithContext(ctx).Model(&domain.TranslationLog{})
	}

	if err := model().Count(&stats.TotalRequests).Error; err != nil {
		return nil, fmt.Errorf("failed to count translation logs: %w", err)
	}
	if err := model().Where("status = ?", domain.StatusSuccess).Count(&stats.SuccessCount).Error; err != nil {
		return nil, fmt.Errorf("failed to count successful translations: %w", err)
	}
	if err := model().Where("status = ?", domain.StatusError).Count(&stats.ErrorCount).Error; err != nil {
		return nil, fmt.Errorf("failed to count failed translations: %w", err)
	}
	if err := model().Select("COALESCE(AVG(processing_time_ms), 0)").Scan(&stats.AvgProcessingMs).Error; err != nil {
		return nil, fmt.Errorf("failed to average processing time: %w", err)
	}
	if err := model().
		Select("target_lang, COUNT(*) as count").
		Group("target_lang").
		Order("count DESC").
		Scan(&stats.ByLanguage).Error; err != nil {
		return nil, fmt.Errorf("failed to count per-language activity: %w", err)
	}

	return stats, nil
}

// RecentLogs returns the most recent activity entries, newest first.
func (r *TranslationLogRepository) RecentLogs(ctx context.Context, limit int) ([]*domain.TranslationLog, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	var logs []*domain.TranslationLog
	if err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Limit(limit).
		Find(&logs).Error; err != nil {
		return nil, fmt.Errorf("failed to load recent translation logs: %w", err)
	}
	return logs, nil
}

package handler

import (
	"context"
	"time"

	"github.com/amitiii/udaan-next-gen-translator-api/internal/cache"
	"github.com/amitiii/udaan-next-gen-translator-api/internal/config"
	"github.com/amitiii/udaan-next-gen-translator-api/internal/repository"
	"github.com/amitiii/udaan-next-gen-translator-api/internal/services/translate"
	"github.com/amitiii/udaan-next-gen-translator-api/internal/translator"
	"github.com/amitiii/udaan-next-gen-translator-api/pkg/logger"
	"github.com/amitiii/udaan-next-gen-translator-api/pkg/redis"
	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

// HandlerManager wires the translation service and its handlers. Optional
// collaborators (database, Redis) degrade to disabled rather than failing
// startup: translation keeps working without recording or result caching.
type HandlerManager struct {
	config    *config.Config
	service   *translate.Service
	statsRepo *repository.TranslationLogRepository
	startedAt time.Time
}

// NewHandlerManager creates all services the handlers depend on.
func NewHandlerManager(cfg *config.Config) (*HandlerManager, error) {
	backend, err := translator.New(translator.Config{
		Mode:                    translator.Mode(cfg.TranslatorMode),
		GeminiAPIKey:            cfg.GeminiAPIKey,
		GeminiModel:             cfg.GeminiModel,
		GeminiRequestTimeout:    cfg.GeminiRequestTimeout,
		GeminiRequestsPerSecond: cfg.GeminiRequestsPerSecond,
	})
	if err != nil {
		return nil, err
	}
	logger.Base().Info("translation backend selected", zap.String("backend", backend.Name()))

	catalog := cache.NewCatalogCache(func(ctx context.Context) (map[string]string, error) {
		return backend.SupportedLanguages(), nil
	}, cfg.CatalogTTL)

	var recorder translate.Recorder
	var statsRepo *repository.TranslationLogRepository
	if db, err := repository.NewDatabaseConnection(repository.LoadDatabaseConfigFromEnv()); err != nil {
		logger.Base().Warn("database unavailable, activity recording disabled", zap.Error(err))
	} else if err := repository.AutoMigrate(db); err != nil {
		logger.Base().Warn("database migration failed, activity recording disabled", zap.Error(err))
	} else {
		repo := repository.NewTranslationLogRepository(db)
		recorder = repo
		statsRepo = repo
	}

	var results translate.ResultCache
	if cfg.RedisHost != "" {
		svc, err := redis.NewService(&redis.Config{
			Host:     cfg.RedisHost,
			Port:     cfg.RedisPort,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		if err != nil {
			logger.Base().Warn("redis unavailable, result cache disabled", zap.Error(err))
		} else {
			results = cache.NewResultCache(svc, cfg.ResultCacheTTL)
		}
	}

	service := translate.NewService(backend, catalog, recorder, results, translate.Config{
		MaxTextLength: cfg.MaxTextLength,
		MaxBulkTexts:  cfg.MaxBulkTexts,
		RecordTimeout: cfg.RecordTimeout,
	})

	return &HandlerManager{
		config:    cfg,
		service:   service,
		statsRepo: statsRepo,
		startedAt: time.Now(),
	}, nil
}

// SetupAllRoutes registers all endpoints and middleware on the router.
func (m *HandlerManager) SetupAllRoutes(router *mux.Router) {
	if m.config.EnableCORS {
		router.Use(CORSMiddleware)
	}
	router.Use(LoggingMiddleware)
	router.Use(ValidationMiddleware)

	h := NewTranslateHandler(m.service, m.statsRepo, m.startedAt)

	router.HandleFunc("/health", h.Health).Methods("GET")
	router.HandleFunc("/translate", h.Translate).Methods("POST")
	router.HandleFunc("/translate/bulk", h.TranslateBulk).Methods("POST")
	router.HandleFunc("/detect", h.Detect).Methods("POST")
	router.HandleFunc("/languages", h.Languages).Methods("GET")
	router.HandleFunc("/stats", h.Stats).Methods("GET")
}

package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/time/rate"

	getAvailableSlotsHandler "github.com/m04kA/SMC-OfferService/internal/api/handlers/get_available_slots"
	getOfferHandler "github.com/m04kA/SMC-OfferService/internal/api/handlers/get_offer"
	getOfferContextHandler "github.com/m04kA/SMC-OfferService/internal/api/handlers/get_offer_context"
	getUserOffersHandler "github.com/m04kA/SMC-OfferService/internal/api/handlers/get_user_offers"
	quoteOfferHandler "github.com/m04kA/SMC-OfferService/internal/api/handlers/quote_offer"
	sendCustomOfferHandler "github.com/m04kA/SMC-OfferService/internal/api/handlers/send_custom_offer"
	"github.com/m04kA/SMC-OfferService/internal/api/middleware"
	"github.com/m04kA/SMC-OfferService/internal/config"
	locationCache "github.com/m04kA/SMC-OfferService/internal/infra/cache/location"
	offerRepo "github.com/m04kA/SMC-OfferService/internal/infra/storage/offer"
	"github.com/m04kA/SMC-OfferService/internal/integrations/marketplace"
	offersService "github.com/m04kA/SMC-OfferService/internal/service/offers"
	getAvailableSlotsUC "github.com/m04kA/SMC-OfferService/internal/usecase/get_available_slots"
	getOfferContextUC "github.com/m04kA/SMC-OfferService/internal/usecase/get_offer_context"
	quoteOfferUC "github.com/m04kA/SMC-OfferService/internal/usecase/quote_offer"
	sendCustomOfferUC "github.com/m04kA/SMC-OfferService/internal/usecase/send_custom_offer"
	"github.com/m04kA/SMC-OfferService/pkg/dbmetrics"
	"github.com/m04kA/SMC-OfferService/pkg/logger"
	"github.com/m04kA/SMC-OfferService/pkg/metrics"
)

func main() {
	// Загружаем конфигурацию
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Инициализируем логгер
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting SMC-OfferService...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены).
	// Интерфейсы остаются nil, когда метрики выключены.
	var (
		metricsCollector *metrics.Metrics
		upstreamMetrics  marketplace.MetricsRecorder
		quoteMetrics     quoteOfferUC.Metrics
		sendMetrics      sendCustomOfferUC.Metrics
	)
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		upstreamMetrics = metricsCollector
		quoteMetrics = metricsCollector
		sendMetrics = metricsCollector
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Подключаемся к базе данных (журнал отправленных предложений)
	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Настраиваем connection pool
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	// Проверяем соединение
	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	// Инициализируем репозиторий (с метриками или без)
	var offerRepository *offerRepo.Repository
	if cfg.Metrics.Enabled {
		wrappedDB := dbmetrics.WrapWithDefault(db, metricsCollector, stopMetricsCh)
		offerRepository = offerRepo.NewRepository(wrappedDB)
		log.Info("Database metrics collection started")
	} else {
		offerRepository = offerRepo.NewRepository(db)
	}

	// Инициализируем клиента marketplace API
	var limiter *rate.Limiter
	if cfg.Marketplace.RPS > 0 {
		limiter = rate.NewLimiter(rate.Limit(cfg.Marketplace.RPS), cfg.Marketplace.Burst)
	}
	marketplaceClient := marketplace.NewClient(
		cfg.Marketplace.URL,
		cfg.Marketplace.APIToken,
		time.Duration(cfg.Marketplace.Timeout)*time.Second,
		limiter,
		log,
		upstreamMetrics,
	)
	log.Info("Marketplace client initialized (url=%s, timeout=%ds, rps=%.1f)",
		cfg.Marketplace.URL, cfg.Marketplace.Timeout, cfg.Marketplace.RPS)

	// Кэш документов локаций для чтения формы (отправка всегда идёт к API напрямую)
	var (
		readClient marketplace.API = marketplaceClient
		formCache  sendCustomOfferUC.LocationCache
	)
	if cfg.Cache.Enabled {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.Cache.Addr,
			Password: cfg.Cache.Password,
			DB:       cfg.Cache.DB,
		})
		defer redisClient.Close()

		pingCtx, cancelPing := context.WithTimeout(context.Background(), 3*time.Second)
		if err := redisClient.Ping(pingCtx).Err(); err != nil {
			log.Warn("Redis is not reachable at %s, cache calls will fall through to the API: %v", cfg.Cache.Addr, err)
		}
		cancelPing()

		cache := locationCache.New(redisClient, time.Duration(cfg.Cache.TTL)*time.Second)
		cachedClient := marketplace.NewCachedClient(marketplaceClient, cache, log)
		readClient = cachedClient
		formCache = cachedClient
		log.Info("Location cache enabled (redis=%s, ttl=%ds)", cfg.Cache.Addr, cfg.Cache.TTL)
	}

	// Инициализируем сервисы
	offerSvc := offersService.NewService(offerRepository, log)

	// Инициализируем use cases
	getOfferContextUseCase := getOfferContextUC.NewUseCase(readClient, log)
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(readClient, log)
	quoteOfferUseCase := quoteOfferUC.NewUseCase(readClient, quoteMetrics, log)
	sendCustomOfferUseCase := sendCustomOfferUC.NewUseCase(
		marketplaceClient,
		marketplaceClient,
		offerRepository,
		formCache,
		sendMetrics,
		log,
	)

	// Инициализируем handlers
	getOfferContext := getOfferContextHandler.NewHandler(getOfferContextUseCase, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	quoteOffer := quoteOfferHandler.NewHandler(quoteOfferUseCase, log)
	sendCustomOffer := sendCustomOfferHandler.NewHandler(sendCustomOfferUseCase, log)
	getOffer := getOfferHandler.NewHandler(offerSvc, log)
	getUserOffers := getUserOffersHandler.NewHandler(offerSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recovery(log))

	// Добавляем metrics middleware и endpoint (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Занятые и свободные часы локации на дату
	api.HandleFunc("/locations/{locationId}/available-hours",
		getAvailableSlots.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Форма индивидуального предложения ---
	protected.HandleFunc("/locations/{locationId}/offer-context", getOfferContext.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/locations/{locationId}/offers/quote", quoteOffer.Handle).Methods(http.MethodPost)

	// --- Отправка и журнал ---
	protected.HandleFunc("/offers", sendCustomOffer.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/offers/{offerId}", getOffer.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/users/{userId}/offers", getUserOffers.Handle).Methods(http.MethodGet)

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	// Graceful shutdown
	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	// Ожидаем сигнал завершения
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	// Останавливаем сбор метрик connection pool
	close(stopMetricsCh)

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server stopped gracefully")
}

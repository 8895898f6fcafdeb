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

	gorillaHandlers "github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	bookSlotHandler "github.com/playgrid/SlotBookingService/internal/api/handlers/book_slot"
	getDatesHandler "github.com/playgrid/SlotBookingService/internal/api/handlers/get_dates"
	getSlotsHandler "github.com/playgrid/SlotBookingService/internal/api/handlers/get_slots"
	getSportsHandler "github.com/playgrid/SlotBookingService/internal/api/handlers/get_sports"
	getVenuesHandler "github.com/playgrid/SlotBookingService/internal/api/handlers/get_venues"
	"github.com/playgrid/SlotBookingService/internal/api/middleware"
	"github.com/playgrid/SlotBookingService/internal/app"
	"github.com/playgrid/SlotBookingService/internal/config"
	bookingRepo "github.com/playgrid/SlotBookingService/internal/infra/storage/booking"
	slotRepo "github.com/playgrid/SlotBookingService/internal/infra/storage/slot"
	venueRepo "github.com/playgrid/SlotBookingService/internal/infra/storage/venue"
	catalogService "github.com/playgrid/SlotBookingService/internal/service/catalog"
	bookSlotUC "github.com/playgrid/SlotBookingService/internal/usecase/book_slot"
	listSlotsUC "github.com/playgrid/SlotBookingService/internal/usecase/list_slots"
	"github.com/playgrid/SlotBookingService/pkg/dbmetrics"
	"github.com/playgrid/SlotBookingService/pkg/logger"
	"github.com/playgrid/SlotBookingService/pkg/metrics"
	"github.com/playgrid/SlotBookingService/pkg/simpletxmanager"
	"github.com/playgrid/SlotBookingService/pkg/txmanager"
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

	log.Info("Starting SlotBookingService...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	var wrappedDB *dbmetrics.DB
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Подключаемся к базе данных
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

	// Применяем миграции
	migrator, err := app.NewMigrator(db, cfg.Database.MigrationsPath)
	if err != nil {
		log.Fatal("Failed to init migrator: %v", err)
	}
	if err := migrator.Run(context.Background()); err != nil {
		log.Fatal("Failed to apply migrations: %v", err)
	}
	if version, err := migrator.Version(context.Background()); err == nil {
		log.Info("Database migrations applied, version=%d", version)
	}

	// Инициализируем репозитории и менеджер транзакций (с метриками или без)
	var (
		venueRepository   *venueRepo.Repository
		slotRepository    *slotRepo.Repository
		bookingRepository *bookingRepo.Repository
	)

	// Интерфейс для transaction manager (используется в usecases)
	type TxManager interface {
		Do(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		venueRepository = venueRepo.NewRepository(wrappedDB)
		slotRepository = slotRepo.NewRepository(wrappedDB)
		bookingRepository = bookingRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		venueRepository = venueRepo.NewRepository(db)
		slotRepository = slotRepo.NewRepository(db)
		bookingRepository = bookingRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы и use cases
	catalogSvc := catalogService.NewService(venueRepository, slotRepository, log)
	bookSlotUseCase := bookSlotUC.NewUseCase(slotRepository, bookingRepository, txMgr, log)
	listSlotsUseCase := listSlotsUC.NewUseCase(venueRepository, slotRepository, log)

	// Инициализируем handlers
	bookSlot := bookSlotHandler.NewHandler(bookSlotUseCase, log)
	getSlots := getSlotsHandler.NewHandler(listSlotsUseCase, log)
	getVenues := getVenuesHandler.NewHandler(catalogSvc, log)
	getSports := getSportsHandler.NewHandler(catalogSvc, log)
	getDates := getDatesHandler.NewHandler(catalogSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Лимит размера тела запроса
	r.Use(middleware.BodyLimit(int64(cfg.Server.MaxBodyBytes)))

	// Metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		log.Info("HTTP metrics middleware enabled")
	}

	// Metrics endpoint
	if cfg.Metrics.Enabled {
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// Приветственный endpoint
	r.HandleFunc("/", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"message":"Welcome to the Slot Booking Service API"}`))
	}).Methods(http.MethodGet)

	// API prefix
	api := r.PathPrefix("/api").Subrouter()

	// Каталог
	api.HandleFunc("/getVenues", getVenues.Handle).Methods(http.MethodGet)
	api.HandleFunc("/sports", getSports.Handle).Methods(http.MethodGet)
	api.HandleFunc("/dates", getDates.Handle).Methods(http.MethodGet)

	// Слоты и бронирование
	api.HandleFunc("/slots", getSlots.Handle).Methods(http.MethodGet)

	stopRateLimitCh := make(chan struct{})
	if cfg.RateLimit.Enabled {
		// Ограничиваем только запись - чтение должно оставаться дешёвым
		rl := middleware.NewRateLimiter(cfg.RateLimit.RPS, cfg.RateLimit.Burst, stopRateLimitCh)
		api.Handle("/book", rl.Middleware(http.HandlerFunc(bookSlot.Handle))).Methods(http.MethodPost)
		log.Info("Rate limiting enabled for /api/book (rps=%.1f, burst=%d)", cfg.RateLimit.RPS, cfg.RateLimit.Burst)
	} else {
		api.HandleFunc("/book", bookSlot.Handle).Methods(http.MethodPost)
	}

	// CORS для браузерных клиентов
	var handler http.Handler = r
	if len(cfg.CORS.AllowedOrigins) > 0 {
		handler = gorillaHandlers.CORS(
			gorillaHandlers.AllowedOrigins(cfg.CORS.AllowedOrigins),
			gorillaHandlers.AllowedMethods([]string{http.MethodGet, http.MethodPost}),
			gorillaHandlers.AllowedHeaders([]string{"Content-Type", "Authorization"}),
			gorillaHandlers.AllowCredentials(),
		)(r)
		log.Info("CORS enabled for origins: %v", cfg.CORS.AllowedOrigins)
	}

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      handler,
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
	if cfg.Metrics.Enabled {
		close(stopMetricsCh)
		log.Info("Metrics collection stopped")
	}

	// Останавливаем чистку rate limiter
	if cfg.RateLimit.Enabled {
		close(stopRateLimitCh)
	}

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

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

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"

	createBookingHandler "github.com/m04kA/PetSitting-BookingService/internal/api/handlers/create_booking"
	createOverrideHandler "github.com/m04kA/PetSitting-BookingService/internal/api/handlers/create_override"
	decideBookingHandler "github.com/m04kA/PetSitting-BookingService/internal/api/handlers/decide_booking"
	deleteOverrideHandler "github.com/m04kA/PetSitting-BookingService/internal/api/handlers/delete_override"
	getBookingHandler "github.com/m04kA/PetSitting-BookingService/internal/api/handlers/get_booking"
	getCalendarHandler "github.com/m04kA/PetSitting-BookingService/internal/api/handlers/get_calendar"
	getCapacitySettingsHandler "github.com/m04kA/PetSitting-BookingService/internal/api/handlers/get_capacity_settings"
	getCustomerBookingsHandler "github.com/m04kA/PetSitting-BookingService/internal/api/handlers/get_customer_bookings"
	getOccupancyHandler "github.com/m04kA/PetSitting-BookingService/internal/api/handlers/get_occupancy"
	listBookingsHandler "github.com/m04kA/PetSitting-BookingService/internal/api/handlers/list_bookings"
	listOverridesHandler "github.com/m04kA/PetSitting-BookingService/internal/api/handlers/list_overrides"
	saveCapacitySettingsHandler "github.com/m04kA/PetSitting-BookingService/internal/api/handlers/save_capacity_settings"
	"github.com/m04kA/PetSitting-BookingService/internal/api/middleware"
	"github.com/m04kA/PetSitting-BookingService/internal/config"
	"github.com/m04kA/PetSitting-BookingService/internal/domain"
	"github.com/m04kA/PetSitting-BookingService/internal/infra/cache"
	"github.com/m04kA/PetSitting-BookingService/internal/infra/events"
	bookingRepo "github.com/m04kA/PetSitting-BookingService/internal/infra/storage/booking"
	capacityRepo "github.com/m04kA/PetSitting-BookingService/internal/infra/storage/capacity"
	"github.com/m04kA/PetSitting-BookingService/internal/integrations/petdirectory"
	bookingsService "github.com/m04kA/PetSitting-BookingService/internal/service/bookings"
	capacityService "github.com/m04kA/PetSitting-BookingService/internal/service/capacity"
	createBookingUC "github.com/m04kA/PetSitting-BookingService/internal/usecase/create_booking"
	getCalendarUC "github.com/m04kA/PetSitting-BookingService/internal/usecase/get_calendar"
	getOccupancyUC "github.com/m04kA/PetSitting-BookingService/internal/usecase/get_occupancy"
	"github.com/m04kA/PetSitting-BookingService/pkg/dbmetrics"
	"github.com/m04kA/PetSitting-BookingService/pkg/logger"
	"github.com/m04kA/PetSitting-BookingService/pkg/metrics"
	"github.com/m04kA/PetSitting-BookingService/pkg/txmanager"
	"github.com/m04kA/PetSitting-BookingService/pkg/types"
)

// occupancyCache объединяет то, что от кэша нужно use case занятости и сервисам
type occupancyCache interface {
	Key(ctx context.Context, from, to types.Date) (string, error)
	Get(ctx context.Context, key string) ([]domain.OccupancyRecord, bool, error)
	Set(ctx context.Context, key string, records []domain.OccupancyRecord) error
	Invalidate(ctx context.Context) error
}

type eventPublisher interface {
	PublishBooking(ctx context.Context, event events.BookingEvent) error
}

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

	log.Info("Starting PetSitting-BookingService...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены). nil коллектор безопасен во всех вызовах.
	var metricsCollector *metrics.Metrics
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

	// Обертка над БД: с метриками собирает статистику пула, без метрик только передает транзакцию через контекст
	var wrappedDB *dbmetrics.DB
	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")
	} else {
		wrappedDB = dbmetrics.Wrap(db, nil, cfg.Metrics.ServiceName)
	}
	txMgr := txmanager.NewTransactionManager(wrappedDB)

	// Кэш занятости
	var occupancy occupancyCache = cache.Noop{}
	var redisCache *cache.OccupancyCache
	if cfg.Redis.Enabled {
		redisCache = cache.NewOccupancyCache(redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		}), cfg.RedisTTL())

		pingCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		if err := redisCache.Ping(pingCtx); err != nil {
			// Без кэша сервис работает, только медленнее
			log.Warn("Redis is unavailable, occupancy cache disabled: %v", err)
			_ = redisCache.Close()
			redisCache = nil
		} else {
			occupancy = redisCache
			log.Info("Occupancy cache enabled (addr=%s, ttl=%ds)", cfg.Redis.Addr, cfg.Redis.TTL)
		}
		cancel()
	}

	// События заявок
	var publisher eventPublisher = events.Noop{}
	var producer *events.Producer
	if cfg.Kafka.Enabled {
		producer = events.NewProducer(cfg.Kafka.Brokers, cfg.Kafka.Topic,
			time.Duration(cfg.Kafka.WriteTimeout)*time.Second)
		publisher = producer
		log.Info("Booking events enabled (brokers=%v, topic=%s)", cfg.Kafka.Brokers, cfg.Kafka.Topic)
	}

	// Инициализируем интеграционных клиентов
	petClient := petdirectory.NewClient(
		cfg.PetDirectory.URL,
		time.Duration(cfg.PetDirectory.Timeout)*time.Second,
		log,
	)
	log.Info("Integration clients initialized (PetDirectory=%s timeout=%ds)",
		cfg.PetDirectory.URL, cfg.PetDirectory.Timeout)

	// Инициализируем репозитории
	bookingRepository := bookingRepo.NewRepository(wrappedDB)
	capacityRepository := capacityRepo.NewRepository(wrappedDB)

	// Инициализируем сервисы
	bookingSvc := bookingsService.NewService(
		bookingRepository,
		occupancy,
		publisher,
		metricsCollector,
		log,
	)
	capacitySvc := capacityService.NewService(
		capacityRepository,
		occupancy,
		txMgr,
		log,
	)

	// Инициализируем use cases
	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		petClient,
		publisher,
		metricsCollector,
		txMgr,
		cfg.Booking.MaxBookingDays,
		log,
	)
	getOccupancyUseCase := getOccupancyUC.NewUseCase(
		bookingRepository,
		capacityRepository,
		occupancy,
		metricsCollector,
		cfg.Booking.MaxRangeDays,
		log,
	)
	getCalendarUseCase := getCalendarUC.NewUseCase(
		bookingRepository,
		capacityRepository,
		log,
	)

	// Инициализируем handlers
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	getCustomerBookings := getCustomerBookingsHandler.NewHandler(bookingSvc, log)
	listBookings := listBookingsHandler.NewHandler(bookingSvc, log)
	decideBooking := decideBookingHandler.NewHandler(bookingSvc, log)
	getCapacitySettings := getCapacitySettingsHandler.NewHandler(capacitySvc, log)
	saveCapacitySettings := saveCapacitySettingsHandler.NewHandler(capacitySvc, log)
	listOverrides := listOverridesHandler.NewHandler(capacitySvc, log)
	createOverride := createOverrideHandler.NewHandler(capacitySvc, log)
	deleteOverride := deleteOverrideHandler.NewHandler(capacitySvc, log)
	getOccupancy := getOccupancyHandler.NewHandler(getOccupancyUseCase, log)
	getCalendar := getCalendarHandler.NewHandler(getCalendarUseCase, log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.RequestID)

	// Добавляем metrics middleware и endpoint (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// CUSTOMER ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// Создание заявки
	protected.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)

	// Получение заявки по ID (владелец или администратор)
	protected.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)

	// Заявки клиента
	protected.HandleFunc("/customers/{customerId}/bookings", getCustomerBookings.Handle).Methods(http.MethodGet)

	// ============================================================
	// ADMIN ROUTES (X-User-Role: admin)
	// ============================================================

	admin := protected.PathPrefix("/admin").Subrouter()
	admin.Use(middleware.RequireAdmin)

	// --- Заявки ---
	admin.HandleFunc("/bookings", listBookings.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/bookings/{bookingId}/decision", decideBooking.Handle).Methods(http.MethodPatch)

	// --- Емкость ---
	admin.HandleFunc("/capacity/settings", getCapacitySettings.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/capacity/settings", saveCapacitySettings.Handle).Methods(http.MethodPut)
	admin.HandleFunc("/capacity/overrides", listOverrides.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/capacity/overrides", createOverride.Handle).Methods(http.MethodPost)
	admin.HandleFunc("/capacity/overrides/{overrideId}", deleteOverride.Handle).Methods(http.MethodDelete)

	// --- Занятость и календарь ---
	admin.HandleFunc("/occupancy", getOccupancy.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/calendar", getCalendar.Handle).Methods(http.MethodGet)

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

	if producer != nil {
		if err := producer.Close(); err != nil {
			log.Error("Failed to close event producer: %v", err)
		}
	}
	if redisCache != nil {
		if err := redisCache.Close(); err != nil {
			log.Error("Failed to close redis client: %v", err)
		}
	}

	log.Info("Server stopped gracefully")
}

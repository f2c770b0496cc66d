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

	createBookingHandler "github.com/tanmaybhole18/Aarti-Booking-Portal/internal/api/handlers/create_booking"
	deleteBookingHandler "github.com/tanmaybhole18/Aarti-Booking-Portal/internal/api/handlers/delete_booking"
	getBookingsHandler "github.com/tanmaybhole18/Aarti-Booking-Portal/internal/api/handlers/get_bookings"
	getSlotHandler "github.com/tanmaybhole18/Aarti-Booking-Portal/internal/api/handlers/get_slot"
	getSlotsHandler "github.com/tanmaybhole18/Aarti-Booking-Portal/internal/api/handlers/get_slots"
	updateBookingHandler "github.com/tanmaybhole18/Aarti-Booking-Portal/internal/api/handlers/update_booking"
	"github.com/tanmaybhole18/Aarti-Booking-Portal/internal/api/middleware"
	"github.com/tanmaybhole18/Aarti-Booking-Portal/internal/config"
	bookingRepo "github.com/tanmaybhole18/Aarti-Booking-Portal/internal/infra/storage/booking"
	slotRepo "github.com/tanmaybhole18/Aarti-Booking-Portal/internal/infra/storage/slot"
	bookingsService "github.com/tanmaybhole18/Aarti-Booking-Portal/internal/service/bookings"
	slotsService "github.com/tanmaybhole18/Aarti-Booking-Portal/internal/service/slots"
	createBookingUC "github.com/tanmaybhole18/Aarti-Booking-Portal/internal/usecase/create_booking"
	updateBookingUC "github.com/tanmaybhole18/Aarti-Booking-Portal/internal/usecase/update_booking"
	"github.com/tanmaybhole18/Aarti-Booking-Portal/pkg/dbmetrics"
	"github.com/tanmaybhole18/Aarti-Booking-Portal/pkg/logger"
	"github.com/tanmaybhole18/Aarti-Booking-Portal/pkg/metrics"
	"github.com/tanmaybhole18/Aarti-Booking-Portal/pkg/simpletxmanager"
	"github.com/tanmaybhole18/Aarti-Booking-Portal/pkg/txmanager"
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

	log.Info("Starting Aarti-Booking-Portal...")
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

	// Инициализируем репозитории (с метриками или без)
	var (
		slotRepository    *slotRepo.Repository
		bookingRepository *bookingRepo.Repository
	)

	// Интерфейс для transaction manager (используется в usecases)
	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	// Бизнес-метрики допуска бронирований
	var admissionMetrics createBookingUC.AdmissionMetrics

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		slotRepository = slotRepo.NewRepository(wrappedDB)
		bookingRepository = bookingRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
		admissionMetrics = metricsCollector
	} else {
		slotRepository = slotRepo.NewRepository(db)
		bookingRepository = bookingRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	slotSvc := slotsService.NewService(slotRepository, bookingRepository, log)
	bookingSvc := bookingsService.NewService(bookingRepository, log)

	// Инициализируем use cases
	createBookingUseCase := createBookingUC.NewUseCase(
		slotRepository,
		bookingRepository,
		txMgr,
		admissionMetrics,
		log,
	)
	updateBookingUseCase := updateBookingUC.NewUseCase(
		slotRepository,
		bookingRepository,
		txMgr,
		log,
	)

	// Инициализируем handlers
	getSlots := getSlotsHandler.NewHandler(slotSvc, log)
	getSlot := getSlotHandler.NewHandler(slotSvc, log)
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	updateBooking := updateBookingHandler.NewHandler(updateBookingUseCase, log)
	deleteBooking := deleteBookingHandler.NewHandler(bookingSvc, log)
	getBookings := getBookingsHandler.NewHandler(bookingSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		log.Info("HTTP metrics middleware enabled")
	}

	// Metrics endpoint (публичный, без аутентификации)
	if cfg.Metrics.Enabled {
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Каталог слотов с бронированиями
	api.HandleFunc("/slots", getSlots.Handle).Methods(http.MethodGet)

	// Один слот с бронированиями
	api.HandleFunc("/slots/{slotId}", getSlot.Handle).Methods(http.MethodGet)

	// Попытка бронирования слота
	api.HandleFunc("/slots/{slotId}/bookings", createBooking.Handle).Methods(http.MethodPost)

	// ============================================================
	// ADMIN ROUTES (требуют X-Admin-Token header)
	// ============================================================

	admin := api.PathPrefix("").Subrouter()
	admin.Use(middleware.AdminAuth(cfg.Admin.Token))

	// Журнал всех бронирований
	admin.HandleFunc("/bookings", getBookings.Handle).Methods(http.MethodGet)

	// Редактирование бронирования
	admin.HandleFunc("/bookings/{bookingId}", updateBooking.Handle).Methods(http.MethodPut)

	// Удаление бронирования
	admin.HandleFunc("/bookings/{bookingId}", deleteBooking.Handle).Methods(http.MethodDelete)

	// CORS для фронтенда портала
	corsHandler := gorillaHandlers.CORS(
		gorillaHandlers.AllowedOrigins([]string{"*"}),
		gorillaHandlers.AllowedMethods([]string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete}),
		gorillaHandlers.AllowedHeaders([]string{"Content-Type", middleware.AdminTokenHeader}),
	)(r)

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      corsHandler,
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

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

	cancelBookingHandler "github.com/damn-devil/bath.book/internal/api/handlers/cancel_booking"
	createBookingHandler "github.com/damn-devil/bath.book/internal/api/handlers/create_booking"
	dialogEventHandler "github.com/damn-devil/bath.book/internal/api/handlers/dialog_event"
	getAvailabilityHandler "github.com/damn-devil/bath.book/internal/api/handlers/get_availability"
	getScheduleHandler "github.com/damn-devil/bath.book/internal/api/handlers/get_schedule"
	getUserBookingsHandler "github.com/damn-devil/bath.book/internal/api/handlers/get_user_bookings"
	registerUserHandler "github.com/damn-devil/bath.book/internal/api/handlers/register_user"
	"github.com/damn-devil/bath.book/internal/api/middleware"
	"github.com/damn-devil/bath.book/internal/config"
	"github.com/damn-devil/bath.book/internal/dialog"
	bookingRepo "github.com/damn-devil/bath.book/internal/infra/storage/booking"
	operdayRepo "github.com/damn-devil/bath.book/internal/infra/storage/operday"
	userRepo "github.com/damn-devil/bath.book/internal/infra/storage/user"
	bookingsService "github.com/damn-devil/bath.book/internal/service/bookings"
	dayclockService "github.com/damn-devil/bath.book/internal/service/dayclock"
	usersService "github.com/damn-devil/bath.book/internal/service/users"
	createBookingUC "github.com/damn-devil/bath.book/internal/usecase/create_booking"
	getAvailabilityUC "github.com/damn-devil/bath.book/internal/usecase/get_availability"
	"github.com/damn-devil/bath.book/pkg/logger"
	"github.com/damn-devil/bath.book/pkg/metrics"
	"github.com/damn-devil/bath.book/pkg/txmanager"
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

	log.Info("Starting shower-booking-service...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
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

	// Инициализируем репозитории
	bookingRepository := bookingRepo.NewRepository(db)
	userRepository := userRepo.NewRepository(db)
	operdayRepository := operdayRepo.NewRepository(db)
	txMgr := txmanager.NewTransactionManager(db)

	// Инициализируем сервисы
	dayClock := dayclockService.NewService(
		bookingRepository,
		operdayRepository,
		txMgr,
		metricsCollector,
		log,
	)
	userSvc := usersService.NewService(userRepository, log)
	bookingSvc := bookingsService.NewService(
		bookingRepository,
		dayClock,
		metricsCollector,
		log,
	)

	// Инициализируем use cases
	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		userRepository,
		dayClock,
		txMgr,
		metricsCollector,
		log,
	)
	getAvailabilityUseCase := getAvailabilityUC.NewUseCase(
		bookingRepository,
		dayClock,
		log,
	)

	// Инициализируем диалоговый движок
	sessionStore := dialog.NewSessionStore(time.Duration(cfg.Sessions.TTLMinutes) * time.Minute)
	dialogManager := dialog.NewManager(
		sessionStore,
		getAvailabilityUseCase,
		createBookingUseCase,
		bookingSvc,
		userSvc,
		log,
	)
	log.Info("Dialog session store initialized (ttl=%dm)", cfg.Sessions.TTLMinutes)

	// Инициализируем handlers
	registerUser := registerUserHandler.NewHandler(userSvc, log)
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	getAvailability := getAvailabilityHandler.NewHandler(getAvailabilityUseCase, log)
	cancelBooking := cancelBookingHandler.NewHandler(bookingSvc, log)
	getUserBookings := getUserBookingsHandler.NewHandler(bookingSvc, log)
	getSchedule := getScheduleHandler.NewHandler(bookingSvc, log)
	dialogEvent := dialogEventHandler.NewHandler(dialogManager, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Свободные кабины на слот для заданного пола
	api.HandleFunc("/availability", getAvailability.Handle).Methods(http.MethodGet)

	// Расписание на текущий день
	api.HandleFunc("/schedule", getSchedule.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// Регистрация / обновление профиля
	protected.HandleFunc("/users", registerUser.Handle).Methods(http.MethodPost)

	// Создание бронирования
	protected.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)

	// Отмена бронирования
	protected.HandleFunc("/bookings/{bookingId}", cancelBooking.Handle).Methods(http.MethodDelete)

	// Бронирования пользователя на текущий день
	protected.HandleFunc("/users/{userId}/bookings", getUserBookings.Handle).Methods(http.MethodGet)

	// События диалога бронирования
	protected.HandleFunc("/dialog/events", dialogEvent.Handle).Methods(http.MethodPost)

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

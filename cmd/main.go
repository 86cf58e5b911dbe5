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

	createBookingHandler "github.com/m04kA/CourtBookingService/internal/api/handlers/create_booking"
	createCourtHandler "github.com/m04kA/CourtBookingService/internal/api/handlers/create_court"
	deleteBookingHandler "github.com/m04kA/CourtBookingService/internal/api/handlers/delete_booking"
	deleteCourtHandler "github.com/m04kA/CourtBookingService/internal/api/handlers/delete_court"
	getBookingHandler "github.com/m04kA/CourtBookingService/internal/api/handlers/get_booking"
	getCourtHandler "github.com/m04kA/CourtBookingService/internal/api/handlers/get_court"
	getCourtBookingsHandler "github.com/m04kA/CourtBookingService/internal/api/handlers/get_court_bookings"
	getUserBookingsHandler "github.com/m04kA/CourtBookingService/internal/api/handlers/get_user_bookings"
	listAvailabilityHandler "github.com/m04kA/CourtBookingService/internal/api/handlers/list_availability"
	listCourtsHandler "github.com/m04kA/CourtBookingService/internal/api/handlers/list_courts"
	publishAvailabilityHandler "github.com/m04kA/CourtBookingService/internal/api/handlers/publish_availability"
	updateBookingStatusHandler "github.com/m04kA/CourtBookingService/internal/api/handlers/update_booking_status"
	"github.com/m04kA/CourtBookingService/internal/api/middleware"
	"github.com/m04kA/CourtBookingService/internal/config"
	"github.com/m04kA/CourtBookingService/internal/infra/events"
	availabilityRepo "github.com/m04kA/CourtBookingService/internal/infra/storage/availability"
	bookingRepo "github.com/m04kA/CourtBookingService/internal/infra/storage/booking"
	courtRepo "github.com/m04kA/CourtBookingService/internal/infra/storage/court"
	paymentServiceClient "github.com/m04kA/CourtBookingService/internal/integrations/paymentservice"
	bookingsService "github.com/m04kA/CourtBookingService/internal/service/bookings"
	courtsService "github.com/m04kA/CourtBookingService/internal/service/courts"
	createBookingUC "github.com/m04kA/CourtBookingService/internal/usecase/create_booking"
	listAvailabilityUC "github.com/m04kA/CourtBookingService/internal/usecase/list_availability"
	publishAvailabilityUC "github.com/m04kA/CourtBookingService/internal/usecase/publish_availability"
	"github.com/m04kA/CourtBookingService/pkg/dbmetrics"
	"github.com/m04kA/CourtBookingService/pkg/logger"
	"github.com/m04kA/CourtBookingService/pkg/metrics"
	"github.com/m04kA/CourtBookingService/pkg/simpletxmanager"
	"github.com/m04kA/CourtBookingService/pkg/txmanager"
)

// TxManager объединяет режимы транзакций, которые нужны сервисам и usecases
type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// EventPublisher интерфейс публикации событий бронирований
type EventPublisher interface {
	Publish(ctx context.Context, event events.BookingEvent) error
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

	log.Info("Starting CourtBookingService...")
	log.Info("Configuration loaded from config.toml")

	// Операционная таймзона, в которой администраторы вводят расписание
	location, err := time.LoadLocation(cfg.Booking.Timezone)
	if err != nil {
		log.Fatal("Failed to load timezone %q: %v", cfg.Booking.Timezone, err)
	}

	// Инициализируем метрики (если включены)
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

	// Инициализируем интеграционных клиентов
	paymentClient := paymentServiceClient.NewClient(
		cfg.PaymentService.URL,
		time.Duration(cfg.PaymentService.Timeout)*time.Second,
		log,
	)
	log.Info("Integration clients initialized (PaymentService=%s timeout=%ds)",
		cfg.PaymentService.URL, cfg.PaymentService.Timeout)

	// Инициализируем издателя событий бронирований
	var publisher EventPublisher
	if cfg.Kafka.Enabled {
		kafkaPublisher := events.NewPublisher(cfg.Kafka.Brokers, cfg.Kafka.Topic, cfg.Metrics.ServiceName, log)
		defer kafkaPublisher.Close()
		publisher = kafkaPublisher
		log.Info("Kafka publisher initialized (brokers=%v, topic=%s)", cfg.Kafka.Brokers, cfg.Kafka.Topic)
	} else {
		publisher = events.NopPublisher{}
		log.Info("Kafka disabled, booking events will not be published")
	}

	// Инициализируем репозитории и транзакционный менеджер (с метриками или без)
	var (
		courtRepository        *courtRepo.Repository
		availabilityRepository *availabilityRepo.Repository
		bookingRepository      *bookingRepo.Repository
		txMgr                  TxManager
	)

	if cfg.Metrics.Enabled {
		wrappedDB := dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		courtRepository = courtRepo.NewRepository(wrappedDB)
		availabilityRepository = availabilityRepo.NewRepository(wrappedDB)
		bookingRepository = bookingRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		courtRepository = courtRepo.NewRepository(db)
		availabilityRepository = availabilityRepo.NewRepository(db)
		bookingRepository = bookingRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	courtSvc := courtsService.NewService(
		courtRepository,
		bookingRepository,
		txMgr,
		log,
	)
	bookingSvc := bookingsService.NewService(
		bookingRepository,
		availabilityRepository,
		paymentClient,
		txMgr,
		publisher,
		time.Duration(cfg.Booking.CancellationCutoffMinutes)*time.Minute,
		log,
	)

	// Инициализируем use cases
	publishAvailabilityUseCase := publishAvailabilityUC.NewUseCase(
		courtRepository,
		availabilityRepository,
		bookingRepository,
		txMgr,
		publishAvailabilityUC.Policy{
			Location:        location,
			MinLeadTime:     time.Duration(cfg.Booking.MinLeadTimeMinutes) * time.Minute,
			MinSlotDuration: time.Duration(cfg.Booking.MinSlotDurationMinutes) * time.Minute,
			MinSlotGap:      time.Duration(cfg.Booking.MinSlotGapMinutes) * time.Minute,
		},
		log,
	)
	listAvailabilityUseCase := listAvailabilityUC.NewUseCase(
		courtRepository,
		availabilityRepository,
		location,
		log,
	)
	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		availabilityRepository,
		txMgr,
		publisher,
		log,
	)

	// Инициализируем handlers
	publishAvailability := publishAvailabilityHandler.NewHandler(publishAvailabilityUseCase, log)
	listAvailability := listAvailabilityHandler.NewHandler(listAvailabilityUseCase, log)
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	updateBookingStatus := updateBookingStatusHandler.NewHandler(bookingSvc, log)
	deleteBooking := deleteBookingHandler.NewHandler(bookingSvc, log)
	getUserBookings := getUserBookingsHandler.NewHandler(bookingSvc, log)
	getCourtBookings := getCourtBookingsHandler.NewHandler(bookingSvc, log)
	createCourt := createCourtHandler.NewHandler(courtSvc, log)
	getCourt := getCourtHandler.NewHandler(courtSvc, log)
	listCourts := listCourtsHandler.NewHandler(courtSvc, log)
	deleteCourt := deleteCourtHandler.NewHandler(courtSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.RequestID)

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

	// Каталог площадок
	api.HandleFunc("/courts", listCourts.Handle).Methods(http.MethodGet)
	api.HandleFunc("/courts/{courtId}", getCourt.Handle).Methods(http.MethodGet)

	// Доступные слоты площадки
	api.HandleFunc("/courts/{courtId}/availability", listAvailability.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Площадки (для администраторов) ---
	protected.HandleFunc("/courts", createCourt.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/courts/{courtId}", deleteCourt.Handle).Methods(http.MethodDelete)

	// Публикация расписания дня площадки
	protected.HandleFunc("/courts/{courtId}/availability", publishAvailability.Handle).Methods(http.MethodPost)

	// Бронирования площадки (для администраторов)
	protected.HandleFunc("/courts/{courtId}/bookings", getCourtBookings.Handle).Methods(http.MethodGet)

	// --- Бронирования ---
	// Создание бронирования на слот площадки
	protected.HandleFunc("/courts/{courtId}/bookings", createBooking.Handle).Methods(http.MethodPost)

	// Получение бронирования по ID
	protected.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)

	// Смена статуса бронирования (подтверждение, отмена, завершение)
	protected.HandleFunc("/bookings/{bookingId}/status", updateBookingStatus.Handle).Methods(http.MethodPatch)

	// Удаление терминального бронирования
	protected.HandleFunc("/bookings/{bookingId}", deleteBooking.Handle).Methods(http.MethodDelete)

	// История бронирований пользователя
	protected.HandleFunc("/users/me/bookings", getUserBookings.Handle).Methods(http.MethodGet)

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

package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	cancelBookingHandler "github.com/aidosbay/HBP-RatesService/internal/api/handlers/cancel_booking"
	createBookingHandler "github.com/aidosbay/HBP-RatesService/internal/api/handlers/create_booking"
	getBookingHandler "github.com/aidosbay/HBP-RatesService/internal/api/handlers/get_booking"
	getCalendarHandler "github.com/aidosbay/HBP-RatesService/internal/api/handlers/get_calendar"
	getHotelHandler "github.com/aidosbay/HBP-RatesService/internal/api/handlers/get_hotel"
	getUserBookingsHandler "github.com/aidosbay/HBP-RatesService/internal/api/handlers/get_user_bookings"
	quoteStayHandler "github.com/aidosbay/HBP-RatesService/internal/api/handlers/quote_stay"
	searchOffersHandler "github.com/aidosbay/HBP-RatesService/internal/api/handlers/search_offers"
	"github.com/aidosbay/HBP-RatesService/internal/api/middleware"
	"github.com/aidosbay/HBP-RatesService/internal/config"
	"github.com/aidosbay/HBP-RatesService/internal/core/calendar"
	"github.com/aidosbay/HBP-RatesService/internal/infra/storage"
	availabilityRepo "github.com/aidosbay/HBP-RatesService/internal/infra/storage/availability"
	bookingsRepo "github.com/aidosbay/HBP-RatesService/internal/infra/storage/bookings"
	catalogRepo "github.com/aidosbay/HBP-RatesService/internal/infra/storage/catalog"
	pricesRepo "github.com/aidosbay/HBP-RatesService/internal/infra/storage/prices"
	rulesRepo "github.com/aidosbay/HBP-RatesService/internal/infra/storage/rules"
	bookingsService "github.com/aidosbay/HBP-RatesService/internal/service/bookings"
	hotelsService "github.com/aidosbay/HBP-RatesService/internal/service/hotels"
	createBookingUC "github.com/aidosbay/HBP-RatesService/internal/usecase/create_booking"
	getCalendarUC "github.com/aidosbay/HBP-RatesService/internal/usecase/get_calendar"
	quoteStayUC "github.com/aidosbay/HBP-RatesService/internal/usecase/quote_stay"
	searchOffersUC "github.com/aidosbay/HBP-RatesService/internal/usecase/search_offers"
	"github.com/aidosbay/HBP-RatesService/pkg/dbmetrics"
	"github.com/aidosbay/HBP-RatesService/pkg/logger"
	"github.com/aidosbay/HBP-RatesService/pkg/metrics"
	"github.com/aidosbay/HBP-RatesService/pkg/simpletxmanager"
	"github.com/aidosbay/HBP-RatesService/pkg/txmanager"
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

	log.Info("Starting HBP-RatesService...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Открываем базу данных
	db, err := storage.Open(cfg.Database.Path)
	if err != nil {
		log.Fatal("Failed to open database: %v", err)
	}
	defer db.Close()

	// Настраиваем connection pool
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	// Проверяем соединение и накатываем схему
	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	if err := storage.Migrate(context.Background(), db); err != nil {
		log.Fatal("Failed to migrate database: %v", err)
	}
	log.Info("Database ready at %s", cfg.Database.Path)

	// Интерфейс transaction manager (используется в usecases)
	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}

	// Исполнитель запросов: с обёрткой метрик или без
	var (
		executor dbmetrics.DBExecutor = db
		txMgr    TxManager            = simpletxmanager.NewTransactionManager(db)
	)

	if cfg.Metrics.Enabled {
		wrappedDB := dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		executor = wrappedDB
		txMgr = txmanager.NewTransactionManager(wrappedDB)
		log.Info("Database metrics collection started")
	}

	// Инициализируем репозитории
	priceRepository := pricesRepo.NewRepository(executor)
	availRepository := availabilityRepo.NewRepository(executor)
	ruleRepository := rulesRepo.NewRepository(executor)
	catalogRepository := catalogRepo.NewRepository(executor)
	bookingRepository := bookingsRepo.NewRepository(executor)

	// Кэш календарных сеток
	calendarCache := calendar.NewCache(cfg.Calendar.CacheCapacity)

	// Инициализируем сервисы
	bookingSvc := bookingsService.NewService(bookingRepository, log)
	hotelSvc := hotelsService.NewService(catalogRepository, priceRepository, cfg.Calendar.LookaheadDays, log)

	// Инициализируем use cases
	getCalendarUseCase := getCalendarUC.NewUseCase(
		catalogRepository,
		priceRepository,
		availRepository,
		ruleRepository,
		calendarCache,
		log,
	)

	searchOffersUseCase := searchOffersUC.NewUseCase(
		catalogRepository,
		priceRepository,
		availRepository,
		cfg.Calendar.LookaheadDays,
		log,
	)

	quoteStayUseCase := quoteStayUC.NewUseCase(
		catalogRepository,
		priceRepository,
		availRepository,
		ruleRepository,
		log,
	)

	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		catalogRepository,
		priceRepository,
		availRepository,
		ruleRepository,
		txMgr,
		log,
	)

	// Инициализируем handlers
	getCalendar := getCalendarHandler.NewHandler(getCalendarUseCase, log)
	getHotel := getHotelHandler.NewHandler(hotelSvc, log)
	searchOffers := searchOffersHandler.NewHandler(searchOffersUseCase, log)
	quoteStay := quoteStayHandler.NewHandler(quoteStayUseCase, log)
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	cancelBooking := cancelBookingHandler.NewHandler(bookingSvc, log)
	getUserBookings := getUserBookingsHandler.NewHandler(bookingSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	r.Use(middleware.Logging(log))

	if cfg.Metrics.Enabled {
		r.Use(middleware.Metrics(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Карточка отеля
	api.HandleFunc("/hotels/{hotelId}", getHotel.Handle).Methods(http.MethodGet)

	// Календарь цен на месяц
	api.HandleFunc("/hotels/{hotelId}/calendar", getCalendar.Handle).Methods(http.MethodGet)

	// Поиск предложений
	api.HandleFunc("/offers", searchOffers.Handle).Methods(http.MethodGet)

	// Котировка проживания
	api.HandleFunc("/quotes", quoteStay.Handle).Methods(http.MethodPost)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// Создание бронирования
	protected.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)

	// Получение бронирования по ID
	protected.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)

	// Отмена бронирования
	protected.HandleFunc("/bookings/{bookingId}/cancel", cancelBooking.Handle).Methods(http.MethodPatch)

	// История бронирований пользователя
	protected.HandleFunc("/users/{userId}/bookings", getUserBookings.Handle).Methods(http.MethodGet)

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

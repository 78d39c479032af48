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

	createBookingHandler "github.com/m04kA/SMC-CoachingCalendar/internal/api/handlers/create_booking"
	deleteBookingHandler "github.com/m04kA/SMC-CoachingCalendar/internal/api/handlers/delete_booking"
	getBookingHandler "github.com/m04kA/SMC-CoachingCalendar/internal/api/handlers/get_booking"
	getClientHandler "github.com/m04kA/SMC-CoachingCalendar/internal/api/handlers/get_client"
	getDaySlotsHandler "github.com/m04kA/SMC-CoachingCalendar/internal/api/handlers/get_day_slots"
	listBookingsHandler "github.com/m04kA/SMC-CoachingCalendar/internal/api/handlers/list_bookings"
	searchClientsHandler "github.com/m04kA/SMC-CoachingCalendar/internal/api/handlers/search_clients"
	streamBookingsHandler "github.com/m04kA/SMC-CoachingCalendar/internal/api/handlers/stream_bookings"
	updateBookingHandler "github.com/m04kA/SMC-CoachingCalendar/internal/api/handlers/update_booking"
	"github.com/m04kA/SMC-CoachingCalendar/internal/api/middleware"
	"github.com/m04kA/SMC-CoachingCalendar/internal/config"
	bookingRepo "github.com/m04kA/SMC-CoachingCalendar/internal/infra/storage/booking"
	clientRepo "github.com/m04kA/SMC-CoachingCalendar/internal/infra/storage/client"
	"github.com/m04kA/SMC-CoachingCalendar/internal/scheduling"
	bookingsService "github.com/m04kA/SMC-CoachingCalendar/internal/service/bookings"
	clientsService "github.com/m04kA/SMC-CoachingCalendar/internal/service/clients"
	feedService "github.com/m04kA/SMC-CoachingCalendar/internal/service/feed"
	createBookingUC "github.com/m04kA/SMC-CoachingCalendar/internal/usecase/create_booking"
	getDaySlotsUC "github.com/m04kA/SMC-CoachingCalendar/internal/usecase/get_day_slots"
	"github.com/m04kA/SMC-CoachingCalendar/pkg/dbmetrics"
	"github.com/m04kA/SMC-CoachingCalendar/pkg/logger"
	"github.com/m04kA/SMC-CoachingCalendar/pkg/metrics"
	"github.com/m04kA/SMC-CoachingCalendar/pkg/txmanager"
)

const configPath = "config.toml"

func main() {
	// Загружаем конфигурацию
	path := configPath
	if v, ok := os.LookupEnv("CONFIG_PATH"); ok {
		path = v
	}
	cfg, err := config.Load(path)
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

	log.Info("Starting SMC-CoachingCalendar...")
	log.Info("Configuration loaded from %s", path)

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

	// Без метрик обёртка просто проксирует запросы
	wrappedDB := dbmetrics.WrapWithDefault(db, metricsCollector, stopMetricsCh)

	// Репозитории
	bookingRepository := bookingRepo.NewRepository(wrappedDB)
	clientRepository := clientRepo.NewRepository(wrappedDB)
	txMgr := txmanager.NewTransactionManager(wrappedDB)

	// Сетка слотов дня одна на весь процесс
	grid := scheduling.DefaultGrid()
	log.Info("Slot grid: %d slots, step %d min", grid.Len(), grid.Step())

	// Сервисы
	bookingSvc := bookingsService.NewService(bookingRepository, clientRepository, txMgr, grid, log)
	clientSvc := clientsService.NewService(clientRepository, log)

	// Use cases
	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		clientRepository,
		txMgr,
		grid,
		metricsCollector,
		log,
	)
	getDaySlotsUseCase := getDaySlotsUC.NewUseCase(bookingRepository, grid, log)

	// Живая лента бронирований (LISTEN/NOTIFY)
	feedCtx, stopFeed := context.WithCancel(context.Background())
	defer stopFeed()

	var (
		hub      *feedService.Hub
		listener *bookingRepo.ChangeListener
	)
	if cfg.Feed.Enabled {
		hub = feedService.NewHub(bookingRepository, metricsCollector, log)

		listener, err = bookingRepo.NewChangeListener(
			cfg.Database.DSN(),
			cfg.Feed.Channel,
			time.Duration(cfg.Feed.MinReconnectInterval)*time.Second,
			time.Duration(cfg.Feed.MaxReconnectInterval)*time.Second,
			log,
		)
		if err != nil {
			log.Fatal("Failed to start booking change listener: %v", err)
		}
		go listener.Run(feedCtx, hub.OnChange)
		log.Info("Booking feed enabled (channel=%s)", cfg.Feed.Channel)
	}

	// Ограничение частоты запросов
	var limiter middleware.Limiter
	var redisClient *redis.Client
	if cfg.RateLimit.Enabled {
		switch cfg.RateLimit.Backend {
		case config.RateLimitBackendRedis:
			redisClient = redis.NewClient(&redis.Options{
				Addr:     cfg.Redis.Addr,
				Password: cfg.Redis.Password,
				DB:       cfg.Redis.DB,
			})
			pingCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
			if err := redisClient.Ping(pingCtx).Err(); err != nil {
				// Лимитер работает в режиме fail-open, сервис поднимается и без Redis
				log.Warn("Redis is not reachable at %s: %v", cfg.Redis.Addr, err)
			}
			cancel()
			limiter = middleware.NewRedisLimiter(redisClient, cfg.RateLimit.RequestsPerMinute, time.Minute, "coaching-calendar:rl")
		default:
			limiter = middleware.NewMemoryLimiter(cfg.RateLimit.RequestsPerMinute, cfg.RateLimit.Burst)
		}
		log.Info("Rate limiting enabled (backend=%s, rpm=%d)", cfg.RateLimit.Backend, cfg.RateLimit.RequestsPerMinute)
	}

	// Инициализируем handlers
	getDaySlots := getDaySlotsHandler.NewHandler(getDaySlotsUseCase, log)
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	listBookings := listBookingsHandler.NewHandler(bookingSvc, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	updateBooking := updateBookingHandler.NewHandler(bookingSvc, log)
	deleteBooking := deleteBookingHandler.NewHandler(bookingSvc, log)
	searchClients := searchClientsHandler.NewHandler(clientSvc, log)
	getClient := getClientHandler.NewHandler(clientSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.AccessLog(log))

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// ЧТЕНИЕ
	// ============================================================

	// Сетка слотов дня
	api.HandleFunc("/days/{date}/slots", getDaySlots.Handle).Methods(http.MethodGet)

	// Лента бронирований (SSE), до маршрута /bookings/{bookingId}
	if hub != nil {
		streamBookings := streamBookingsHandler.NewHandler(hub, log)
		api.HandleFunc("/bookings/stream", streamBookings.Handle).Methods(http.MethodGet)
	}

	// Бронирования
	api.HandleFunc("/bookings", listBookings.Handle).Methods(http.MethodGet)
	api.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)

	// Справочник клиентов
	api.HandleFunc("/clients", searchClients.Handle).Methods(http.MethodGet)
	api.HandleFunc("/clients/{clientId}", getClient.Handle).Methods(http.MethodGet)

	// ============================================================
	// ИЗМЕНЕНИЕ (с ограничением частоты)
	// ============================================================

	mutating := api.PathPrefix("").Subrouter()
	if limiter != nil {
		mutating.Use(middleware.RateLimit(limiter, metricsCollector, log))
	}

	mutating.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)
	mutating.HandleFunc("/bookings/{bookingId}", updateBooking.Handle).Methods(http.MethodPatch)
	mutating.HandleFunc("/bookings/{bookingId}", deleteBooking.Handle).Methods(http.MethodDelete)

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

	// Закрываем ленту первой: открытые SSE-потоки иначе задержат Shutdown
	stopFeed()
	if hub != nil {
		hub.Close()
	}
	if listener != nil {
		if err := listener.Close(); err != nil {
			log.Warn("Failed to close booking change listener: %v", err)
		}
	}

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

	if redisClient != nil {
		if err := redisClient.Close(); err != nil {
			log.Warn("Failed to close redis client: %v", err)
		}
	}

	log.Info("Server stopped gracefully")
}

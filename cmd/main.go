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
	_ "time/tzdata"

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"

	createReservationHandler "github.com/m04kA/SMC-ReservationService/internal/api/handlers/create_reservation"
	deleteReservationHandler "github.com/m04kA/SMC-ReservationService/internal/api/handlers/delete_reservation"
	getAvailabilityHandler "github.com/m04kA/SMC-ReservationService/internal/api/handlers/get_availability"
	getOfferSlotsHandler "github.com/m04kA/SMC-ReservationService/internal/api/handlers/get_offer_slots"
	getReservationHandler "github.com/m04kA/SMC-ReservationService/internal/api/handlers/get_reservation"
	getTemplatesHandler "github.com/m04kA/SMC-ReservationService/internal/api/handlers/get_templates"
	listReservationsHandler "github.com/m04kA/SMC-ReservationService/internal/api/handlers/list_reservations"
	replaceTemplatesHandler "github.com/m04kA/SMC-ReservationService/internal/api/handlers/replace_templates"
	rescheduleReservationHandler "github.com/m04kA/SMC-ReservationService/internal/api/handlers/reschedule_reservation"
	"github.com/m04kA/SMC-ReservationService/internal/api/middleware"
	"github.com/m04kA/SMC-ReservationService/internal/availability"
	"github.com/m04kA/SMC-ReservationService/internal/config"
	"github.com/m04kA/SMC-ReservationService/internal/infra/lock"
	reservationRepo "github.com/m04kA/SMC-ReservationService/internal/infra/storage/reservation"
	templateRepo "github.com/m04kA/SMC-ReservationService/internal/infra/storage/template"
	"github.com/m04kA/SMC-ReservationService/internal/migrations"
	reservationsService "github.com/m04kA/SMC-ReservationService/internal/service/reservations"
	templatesService "github.com/m04kA/SMC-ReservationService/internal/service/templates"
	createReservationUC "github.com/m04kA/SMC-ReservationService/internal/usecase/create_reservation"
	getAvailabilityUC "github.com/m04kA/SMC-ReservationService/internal/usecase/get_availability"
	getOfferSlotsUC "github.com/m04kA/SMC-ReservationService/internal/usecase/get_offer_slots"
	replaceTemplatesUC "github.com/m04kA/SMC-ReservationService/internal/usecase/replace_templates"
	rescheduleReservationUC "github.com/m04kA/SMC-ReservationService/internal/usecase/reschedule_reservation"
	"github.com/m04kA/SMC-ReservationService/pkg/dbmetrics"
	"github.com/m04kA/SMC-ReservationService/pkg/logger"
	"github.com/m04kA/SMC-ReservationService/pkg/metrics"
	"github.com/m04kA/SMC-ReservationService/pkg/txmanager"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var configPath string

	root := &cobra.Command{
		Use:           "reservation-service",
		Short:         "Shop reservations over weekly capacity templates",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVarP(&configPath, "config", "c", "config.toml", "path to the TOML config file")

	root.AddCommand(newServeCmd(&configPath))
	root.AddCommand(newMigrateCmd(&configPath))

	return root
}

func newServeCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve(*configPath)
		},
	}
}

func newMigrateCmd(configPath *string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Manage the database schema",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "up",
		Short: "Apply all pending migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withMigrations(*configPath, func(r *migrations.Runner) error {
				return r.Up()
			})
		},
	})

	var steps int
	down := &cobra.Command{
		Use:   "down",
		Short: "Roll back the last migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withMigrations(*configPath, func(r *migrations.Runner) error {
				return r.Down(steps)
			})
		},
	}
	down.Flags().IntVarP(&steps, "steps", "n", 1, "number of migrations to roll back")
	cmd.AddCommand(down)

	cmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print the current schema version",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withMigrations(*configPath, func(r *migrations.Runner) error {
				version, dirty, err := r.Version()
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "version=%d dirty=%t\n", version, dirty)
				return nil
			})
		},
	})

	return cmd
}

// withMigrations открывает БД из конфигурации и выполняет fn над runner-ом миграций
func withMigrations(configPath string, fn func(r *migrations.Runner) error) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer log.Close()

	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	runner, err := migrations.NewRunner(db, log)
	if err != nil {
		return err
	}
	defer runner.Close()

	return fn(runner)
}

func serve(configPath string) error {
	// Загружаем конфигурацию
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	// Инициализируем логгер
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer log.Close()

	log.Info("Starting SMC-ReservationService...")
	log.Info("Configuration loaded from %s", configPath)

	loc, err := cfg.Location()
	if err != nil {
		return err
	}

	// Инициализируем метрики (если включены); nil-коллектор ничего не пишет
	var metricsCollector *metrics.Metrics
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Подключаемся к базе данных
	rawDB, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}

	// Настраиваем connection pool
	rawDB.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	rawDB.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	rawDB.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	db := dbmetrics.Wrap(rawDB, metricsCollector)
	defer db.Close()

	// Проверяем соединение
	pingCtx, cancelPing := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelPing()
	if err := db.PingContext(pingCtx); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	if cfg.Metrics.Enabled {
		db.CollectStats(time.Duration(cfg.Metrics.StatsIntervalSeconds)*time.Second, stopMetricsCh)
		log.Info("Database metrics collection started")
	}

	// Инициализируем блокировки бронирования
	lockOpts := lock.Options{
		TTL:   cfg.LockTTL(),
		Wait:  cfg.LockWait(),
		Retry: cfg.LockRetry(),
	}

	var locker interface {
		WithLock(ctx context.Context, keys []string, fn func(ctx context.Context) error) error
	}

	switch cfg.Lock.Backend {
	case config.LockBackendRedis:
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer redisClient.Close()

		if err := redisClient.Ping(pingCtx).Err(); err != nil {
			log.Fatal("Failed to ping redis at %s: %v", cfg.Redis.Addr, err)
		}
		locker = lock.NewRedisLocker(redisClient, lockOpts)
		log.Info("Reservation locks backed by redis (addr=%s)", cfg.Redis.Addr)
	default:
		locker = lock.NewPostgresLocker(db, lockOpts)
		log.Info("Reservation locks backed by postgres advisory locks")
	}

	// Инициализируем репозитории, движок и менеджер транзакций
	reservationRepository := reservationRepo.NewRepository(db)
	templateRepository := templateRepo.NewRepository(db)
	txMgr := txmanager.NewTransactionManager(db)
	engine := availability.NewEngine(loc)

	// Инициализируем сервисы
	reservationSvc := reservationsService.NewService(reservationRepository, loc, cfg.Shop.MaxRangeDays, log)
	templateSvc := templatesService.NewService(templateRepository, loc, log)

	// Инициализируем use cases
	getAvailabilityUseCase := getAvailabilityUC.NewUseCase(
		reservationRepository,
		templateRepository,
		engine,
		cfg.Shop.MaxRangeDays,
		log,
	)

	getOfferSlotsUseCase := getOfferSlotsUC.NewUseCase(
		reservationRepository,
		templateRepository,
		engine,
		cfg.SlotStep(),
		cfg.Shop.MaxRangeDays,
		metricsCollector,
		log,
	)

	createReservationUseCase := createReservationUC.NewUseCase(
		reservationRepository,
		templateRepository,
		txMgr,
		locker,
		engine,
		metricsCollector,
		log,
	)

	rescheduleReservationUseCase := rescheduleReservationUC.NewUseCase(
		reservationRepository,
		templateRepository,
		txMgr,
		locker,
		engine,
		metricsCollector,
		log,
	)

	replaceTemplatesUseCase := replaceTemplatesUC.NewUseCase(templateRepository, metricsCollector, log)

	// Инициализируем handlers
	getAvailability := getAvailabilityHandler.NewHandler(getAvailabilityUseCase, log)
	getOfferSlots := getOfferSlotsHandler.NewHandler(
		getOfferSlotsUseCase,
		time.Duration(cfg.Shop.DefaultDurationMinutes)*time.Minute,
		log,
	)
	createReservation := createReservationHandler.NewHandler(createReservationUseCase, loc, log)
	rescheduleReservation := rescheduleReservationHandler.NewHandler(rescheduleReservationUseCase, loc, log)
	getReservation := getReservationHandler.NewHandler(reservationSvc, log)
	listReservations := listReservationsHandler.NewHandler(reservationSvc, log)
	deleteReservation := deleteReservationHandler.NewHandler(reservationSvc, log)
	getTemplates := getTemplatesHandler.NewHandler(templateSvc, log)
	replaceTemplates := replaceTemplatesHandler.NewHandler(replaceTemplatesUseCase, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
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

	// Доступность по элементарным диапазонам
	api.HandleFunc("/availability", getAvailability.Handle).Methods(http.MethodGet)

	// Слоты для бронирования
	api.HandleFunc("/offer-slots", getOfferSlots.Handle).Methods(http.MethodGet)

	// --- Бронирования ---
	api.HandleFunc("/reservations", createReservation.Handle).Methods(http.MethodPost)
	api.HandleFunc("/reservations/{reservationId}", getReservation.Handle).Methods(http.MethodGet)
	api.HandleFunc("/reservations/{reservationId}", rescheduleReservation.Handle).Methods(http.MethodPut)

	// --- Шаблоны ---
	api.HandleFunc("/templates", getTemplates.Handle).Methods(http.MethodGet)

	// ============================================================
	// ADMIN ROUTES (требуют X-Admin-Token header)
	// ============================================================

	admin := api.PathPrefix("").Subrouter()
	admin.Use(middleware.AdminAuth(cfg.Shop.AdminToken))
	if cfg.Shop.AdminToken == "" {
		log.Warn("shop.admin_token is empty, admin routes will reject every request")
	}

	// Список бронирований в окне
	admin.HandleFunc("/reservations", listReservations.Handle).Methods(http.MethodGet)

	// Удаление бронирования
	admin.HandleFunc("/reservations/{reservationId}", deleteReservation.Handle).Methods(http.MethodDelete)

	// Замена набора шаблонов вместимости
	admin.HandleFunc("/templates", replaceTemplates.Handle).Methods(http.MethodPut)

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
	return nil
}

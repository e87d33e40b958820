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

	"github.com/m04kA/SMC-AppointmentService/internal/api/handlers"
	createAppointmentHandler "github.com/m04kA/SMC-AppointmentService/internal/api/handlers/create_appointment"
	deleteAppointmentHandler "github.com/m04kA/SMC-AppointmentService/internal/api/handlers/delete_appointment"
	exportAppointmentsHandler "github.com/m04kA/SMC-AppointmentService/internal/api/handlers/export_appointments"
	getAppointmentHandler "github.com/m04kA/SMC-AppointmentService/internal/api/handlers/get_appointment"
	getDayScheduleHandler "github.com/m04kA/SMC-AppointmentService/internal/api/handlers/get_day_schedule"
	getFreeSlotsHandler "github.com/m04kA/SMC-AppointmentService/internal/api/handlers/get_free_slots"
	getGanttBarsHandler "github.com/m04kA/SMC-AppointmentService/internal/api/handlers/get_gantt_bars"
	getUpcomingHandler "github.com/m04kA/SMC-AppointmentService/internal/api/handlers/get_upcoming"
	listAppointmentsHandler "github.com/m04kA/SMC-AppointmentService/internal/api/handlers/list_appointments"
	updateAppointmentHandler "github.com/m04kA/SMC-AppointmentService/internal/api/handlers/update_appointment"
	"github.com/m04kA/SMC-AppointmentService/internal/api/middleware"
	"github.com/m04kA/SMC-AppointmentService/internal/app"
	"github.com/m04kA/SMC-AppointmentService/internal/config"
	"github.com/m04kA/SMC-AppointmentService/internal/infra/export/xlsx"
	appointmentsService "github.com/m04kA/SMC-AppointmentService/internal/service/appointments"
	scheduleService "github.com/m04kA/SMC-AppointmentService/internal/service/schedule"
	createAppointmentUC "github.com/m04kA/SMC-AppointmentService/internal/usecase/create_appointment"
	getFreeSlotsUC "github.com/m04kA/SMC-AppointmentService/internal/usecase/get_free_slots"
	"github.com/m04kA/SMC-AppointmentService/pkg/logger"
	"github.com/m04kA/SMC-AppointmentService/pkg/metrics"
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

	log.Info("Starting SMC-AppointmentService...")
	log.Info("Configuration loaded (storage=%s)", cfg.Storage.Driver)

	slotsConfig, err := cfg.Slots.ToDomain()
	if err != nil {
		log.Fatal("Invalid slots config: %v", err)
	}

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Открываем хранилище: файл или таблица PostgreSQL
	startupCtx, cancelStartup := context.WithTimeout(context.Background(), 30*time.Second)
	storage, err := app.OpenStorage(startupCtx, cfg, log, metricsCollector, stopMetricsCh)
	cancelStartup()
	if err != nil {
		log.Fatal("Failed to open storage: %v", err)
	}
	defer storage.Close()

	// Инициализируем сервисы
	appointmentSvc := appointmentsService.NewService(
		storage.Repo,
		storage.TxManager,
		metricsCollector,
		log,
	)
	scheduleSvc := scheduleService.NewService(storage.Repo, log)

	// Инициализируем use cases
	createAppointmentUseCase := createAppointmentUC.NewUseCase(
		storage.Repo,
		storage.TxManager,
		metricsCollector,
		log,
	)
	getFreeSlotsUseCase := getFreeSlotsUC.NewUseCase(storage.Repo, slotsConfig, log)

	// Инициализируем handlers
	createAppointment := createAppointmentHandler.NewHandler(createAppointmentUseCase, log)
	getAppointment := getAppointmentHandler.NewHandler(appointmentSvc, log)
	updateAppointment := updateAppointmentHandler.NewHandler(appointmentSvc, log)
	deleteAppointment := deleteAppointmentHandler.NewHandler(appointmentSvc, log)
	listAppointments := listAppointmentsHandler.NewHandler(scheduleSvc, log)
	exportAppointments := exportAppointmentsHandler.NewHandler(scheduleSvc, xlsx.NewExporter(), metricsCollector, log)
	getDaySchedule := getDayScheduleHandler.NewHandler(scheduleSvc, log)
	getGanttBars := getGanttBarsHandler.NewHandler(scheduleSvc, log)
	getUpcoming := getUpcomingHandler.NewHandler(scheduleSvc, log)
	getFreeSlots := getFreeSlotsHandler.NewHandler(getFreeSlotsUseCase, log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Logging(log))

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	r.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		handlers.RespondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}).Methods(http.MethodGet)

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// --- Записи ---
	api.HandleFunc("/appointments", createAppointment.Handle).Methods(http.MethodPost)
	api.HandleFunc("/appointments", listAppointments.Handle).Methods(http.MethodGet)
	api.HandleFunc("/appointments/export", exportAppointments.Handle).Methods(http.MethodGet)
	api.HandleFunc("/appointments/{id:[0-9]+}", getAppointment.Handle).Methods(http.MethodGet)
	api.HandleFunc("/appointments/{id:[0-9]+}", updateAppointment.Handle).Methods(http.MethodPut)
	api.HandleFunc("/appointments/{id:[0-9]+}", deleteAppointment.Handle).Methods(http.MethodDelete)

	// --- Расписание ---
	api.HandleFunc("/schedule", getDaySchedule.Handle).Methods(http.MethodGet)
	api.HandleFunc("/schedule/{date}/gantt", getGanttBars.Handle).Methods(http.MethodGet)
	api.HandleFunc("/schedule/{date}/free-slots", getFreeSlots.Handle).Methods(http.MethodGet)
	api.HandleFunc("/upcoming", getUpcoming.Handle).Methods(http.MethodGet)

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

package commands

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/m04kA/SMC-AppointmentService/internal/app"
	"github.com/m04kA/SMC-AppointmentService/internal/commands/options"
	"github.com/m04kA/SMC-AppointmentService/internal/config"
	"github.com/m04kA/SMC-AppointmentService/internal/infra/export/xlsx"
	appointmentsService "github.com/m04kA/SMC-AppointmentService/internal/service/appointments"
	scheduleService "github.com/m04kA/SMC-AppointmentService/internal/service/schedule"
	createAppointmentUC "github.com/m04kA/SMC-AppointmentService/internal/usecase/create_appointment"
	getFreeSlotsUC "github.com/m04kA/SMC-AppointmentService/internal/usecase/get_free_slots"
	"github.com/m04kA/SMC-AppointmentService/pkg/logger"
)

const defaultConfigPath = "config.toml"

// Runtime зависимости команд, собираются перед запуском любой подкоманды
type Runtime struct {
	Config       *config.Config
	Create       *createAppointmentUC.UseCase
	Appointments *appointmentsService.Service
	Schedule     *scheduleService.Service
	FreeSlots    *getFreeSlotsUC.UseCase
	Exporter     *xlsx.Exporter

	// Now источник текущего времени для upcoming и --on=today
	Now func() time.Time

	storage *app.Storage
	log     *logger.Logger
}

func (rt *Runtime) open(ctx context.Context, ro *options.RootOptions) error {
	cfg, err := loadConfig(ro)
	if err != nil {
		return err
	}
	if ro.File != "" {
		cfg.Storage.Driver = config.DriverCSV
		cfg.Storage.File = ro.File
	}
	if ro.LogFile != "" {
		cfg.Logs.File = ro.LogFile
	}

	slotsConfig, err := cfg.Slots.ToDomain()
	if err != nil {
		return err
	}

	log, err := logger.NewFileOnly(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}

	storage, err := app.OpenStorage(ctx, cfg, log, nil, nil)
	if err != nil {
		log.Close()
		return err
	}

	rt.Config = cfg
	rt.storage = storage
	rt.log = log
	rt.Create = createAppointmentUC.NewUseCase(storage.Repo, storage.TxManager, nil, log)
	rt.Appointments = appointmentsService.NewService(storage.Repo, storage.TxManager, nil, log)
	rt.Schedule = scheduleService.NewService(storage.Repo, log)
	rt.Exporter = xlsx.NewExporter()
	if rt.Now == nil {
		rt.Now = time.Now
	}
	rt.Schedule.WithTimeProvider(timeFunc(rt.Now))
	rt.FreeSlots = getFreeSlotsUC.NewUseCase(storage.Repo, slotsConfig, log).
		WithTimeProvider(timeFunc(rt.Now))
	return nil
}

// Close освобождает хранилище и логгер
func (rt *Runtime) Close() error {
	var errs []error
	if rt.storage != nil {
		errs = append(errs, rt.storage.Close())
	}
	if rt.log != nil {
		errs = append(errs, rt.log.Close())
	}
	return errors.Join(errs...)
}

func loadConfig(ro *options.RootOptions) (*config.Config, error) {
	if ro.ConfigPath != "" {
		return config.Load(ro.ConfigPath)
	}
	if os.Getenv(config.EnvConfigPath) != "" {
		return config.Load(defaultConfigPath)
	}
	if _, err := os.Stat(defaultConfigPath); err == nil {
		return config.Load(defaultConfigPath)
	}
	return config.Default(), nil
}

type timeFunc func() time.Time

func (f timeFunc) Now() time.Time { return f() }

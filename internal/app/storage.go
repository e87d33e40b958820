package app

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "github.com/lib/pq"

	"github.com/m04kA/SMC-AppointmentService/internal/config"
	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	"github.com/m04kA/SMC-AppointmentService/internal/infra/export/xlsx"
	"github.com/m04kA/SMC-AppointmentService/internal/infra/storage/appointment"
	"github.com/m04kA/SMC-AppointmentService/internal/infra/storage/csvfile"
	"github.com/m04kA/SMC-AppointmentService/pkg/dbmetrics"
	"github.com/m04kA/SMC-AppointmentService/pkg/logger"
	"github.com/m04kA/SMC-AppointmentService/pkg/metrics"
	"github.com/m04kA/SMC-AppointmentService/pkg/txmanager"
)

var ErrOpenStorage = errors.New("app: failed to open storage")

// Repository хранилище записей, общее для файла и таблицы
type Repository interface {
	LoadAll(ctx context.Context) ([]*domain.Appointment, error)
	AppendOne(ctx context.Context, appt *domain.Appointment) (*domain.Appointment, error)
	ReplaceAll(ctx context.Context, appts []*domain.Appointment) error
}

// TxManager сериализует цикл "прочитать, проверить, записать"
type TxManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Storage открытое хранилище
type Storage struct {
	Repo      Repository
	TxManager TxManager

	closeFn func() error
}

// Close освобождает соединения с БД, для файла ничего не делает
func (s *Storage) Close() error {
	if s.closeFn == nil {
		return nil
	}
	return s.closeFn()
}

// OpenStorage собирает хранилище по конфигурации.
// m может быть nil, если метрики выключены. Сбор статистики пула БД идёт до закрытия stopCh.
func OpenStorage(ctx context.Context, cfg *config.Config, log *logger.Logger, m *metrics.Metrics, stopCh <-chan struct{}) (*Storage, error) {
	var (
		storage *Storage
		err     error
	)

	switch cfg.Storage.Driver {
	case config.DriverPostgres:
		storage, err = openPostgres(ctx, cfg, log, m, stopCh)
	default:
		store := csvfile.NewStore(cfg.Storage.File, log)
		log.Info("Using CSV storage at %s", store.Path())
		storage = &Storage{Repo: store, TxManager: store}
	}
	if err != nil {
		return nil, err
	}

	if cfg.Export.Auto {
		storage.Repo = xlsx.NewAutoExportRepository(storage.Repo, xlsx.NewExporter(), cfg.Export.File, exportRecorder(m), log)
		log.Info("Auto export to %s enabled", cfg.Export.File)
	}

	return storage, nil
}

func openPostgres(ctx context.Context, cfg *config.Config, log *logger.Logger, m *metrics.Metrics, stopCh <-chan struct{}) (*Storage, error) {
	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		return nil, fmt.Errorf("%w: open database: %v", ErrOpenStorage, err)
	}

	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("%w: ping database: %v", ErrOpenStorage, err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	var wrapped *dbmetrics.DB
	if m != nil {
		wrapped = dbmetrics.WrapWithDefault(db, m, stopCh)
		log.Info("Database metrics collection started")
	} else {
		wrapped = dbmetrics.Wrap(db, nil)
	}

	repo := appointment.NewRepository(wrapped)
	if err := repo.EnsureSchema(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("%w: %v", ErrOpenStorage, err)
	}

	return &Storage{
		Repo:      repo,
		TxManager: txmanager.NewTransactionManager(wrapped),
		closeFn:   db.Close,
	}, nil
}

// exportRecorder не даёт nil *metrics.Metrics превратиться в ненулевой интерфейс
func exportRecorder(m *metrics.Metrics) xlsx.MetricsRecorder {
	if m == nil {
		return nil
	}
	return m
}

package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	"github.com/m04kA/SMC-AppointmentService/pkg/types"
)

// EnvConfigPath переменная окружения, переопределяющая путь к файлу конфигурации
const EnvConfigPath = "APPT_CONFIG"

const (
	DriverCSV      = "csv"
	DriverPostgres = "postgres"
)

var (
	ErrReadConfig    = errors.New("config: failed to read config file")
	ErrInvalidConfig = errors.New("config: invalid configuration")
)

// Config конфигурация сервиса записей
type Config struct {
	Server   ServerConfig   `toml:"server"`
	Storage  StorageConfig  `toml:"storage"`
	Database DatabaseConfig `toml:"database"`
	Logs     LogsConfig     `toml:"logs"`
	Metrics  MetricsConfig  `toml:"metrics"`
	Export   ExportConfig   `toml:"export"`
	Slots    SlotsConfig    `toml:"slots"`
}

// ServerConfig параметры HTTP сервера, таймауты в секундах
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

// StorageConfig выбор хранилища записей
type StorageConfig struct {
	Driver string `toml:"driver"`
	File   string `toml:"file"`
}

// DatabaseConfig подключение к PostgreSQL, используется при driver = "postgres"
type DatabaseConfig struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"`
}

// DSN строка подключения для lib/pq
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode,
	)
}

type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// ExportConfig автоматическая выгрузка в xlsx после каждого изменения
type ExportConfig struct {
	Auto bool   `toml:"auto"`
	File string `toml:"file"`
}

// SlotsConfig рабочие часы и сетка поиска свободного времени
type SlotsConfig struct {
	Open             string `toml:"open"`
	Close            string `toml:"close"`
	DurationMinutes  int    `toml:"duration_minutes"`
	StepMinutes      int    `toml:"step_minutes"`
	MinNoticeMinutes int    `toml:"min_notice_minutes"`
}

// ToDomain переводит настройки в domain.SlotsConfig
func (s SlotsConfig) ToDomain() (domain.SlotsConfig, error) {
	open, err := types.NewTimeStringFromString(s.Open)
	if err != nil {
		return domain.SlotsConfig{}, fmt.Errorf("%w: slots.open: %v", ErrInvalidConfig, err)
	}
	closeAt, err := types.NewTimeStringFromString(s.Close)
	if err != nil {
		return domain.SlotsConfig{}, fmt.Errorf("%w: slots.close: %v", ErrInvalidConfig, err)
	}

	result := domain.SlotsConfig{
		OpenTime:                open,
		CloseTime:               closeAt,
		SlotDurationMinutes:     s.DurationMinutes,
		StepMinutes:             s.StepMinutes,
		MinBookingNoticeMinutes: s.MinNoticeMinutes,
	}
	if err := result.Validate(); err != nil {
		return domain.SlotsConfig{}, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return result, nil
}

// Load читает конфигурацию из TOML файла.
// Если задана переменная APPT_CONFIG, путь берётся из неё.
func Load(path string) (*Config, error) {
	if env := os.Getenv(EnvConfigPath); env != "" {
		path = env
	}

	cfg := &Config{}
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrReadConfig, path, err)
	}

	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Default конфигурация без файла: CSV хранилище в текущем каталоге
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

func (c *Config) applyDefaults() {
	if c.Server.HTTPPort == 0 {
		c.Server.HTTPPort = 8080
	}
	if c.Server.ReadTimeout == 0 {
		c.Server.ReadTimeout = 15
	}
	if c.Server.WriteTimeout == 0 {
		c.Server.WriteTimeout = 15
	}
	if c.Server.IdleTimeout == 0 {
		c.Server.IdleTimeout = 60
	}
	if c.Server.ShutdownTimeout == 0 {
		c.Server.ShutdownTimeout = 10
	}

	c.Storage.Driver = strings.ToLower(strings.TrimSpace(c.Storage.Driver))
	if c.Storage.Driver == "" {
		c.Storage.Driver = DriverCSV
	}
	if c.Storage.File == "" {
		c.Storage.File = "data.csv"
	}

	if c.Database.Port == 0 {
		c.Database.Port = 5432
	}
	if c.Database.SSLMode == "" {
		c.Database.SSLMode = "disable"
	}
	if c.Database.MaxOpenConns == 0 {
		c.Database.MaxOpenConns = 10
	}
	if c.Database.MaxIdleConns == 0 {
		c.Database.MaxIdleConns = 5
	}
	if c.Database.ConnMaxLifetime == 0 {
		c.Database.ConnMaxLifetime = 300
	}

	if c.Logs.Level == "" {
		c.Logs.Level = "info"
	}
	if c.Logs.File == "" {
		c.Logs.File = "logs/appointment-service.log"
	}

	if c.Metrics.Path == "" {
		c.Metrics.Path = "/metrics"
	}
	if c.Metrics.ServiceName == "" {
		c.Metrics.ServiceName = "appointment-service"
	}

	if c.Export.File == "" {
		c.Export.File = "appointments.xlsx"
	}

	if c.Slots.Open == "" {
		c.Slots.Open = domain.DefaultOpenTime.String()
	}
	if c.Slots.Close == "" {
		c.Slots.Close = domain.DefaultCloseTime.String()
	}
	if c.Slots.DurationMinutes == 0 {
		c.Slots.DurationMinutes = domain.DefaultSlotDurationMinutes
	}
	if c.Slots.StepMinutes == 0 {
		c.Slots.StepMinutes = domain.DefaultSlotStepMinutes
	}
}

// Validate проверяет согласованность настроек
func (c *Config) Validate() error {
	switch c.Storage.Driver {
	case DriverCSV:
		if strings.TrimSpace(c.Storage.File) == "" {
			return fmt.Errorf("%w: storage.file is required for csv driver", ErrInvalidConfig)
		}
	case DriverPostgres:
		if c.Database.Host == "" || c.Database.DBName == "" {
			return fmt.Errorf("%w: database.host and database.dbname are required for postgres driver", ErrInvalidConfig)
		}
	default:
		return fmt.Errorf("%w: unknown storage driver %q", ErrInvalidConfig, c.Storage.Driver)
	}

	if c.Server.HTTPPort < 1 || c.Server.HTTPPort > 65535 {
		return fmt.Errorf("%w: server.http_port %d out of range", ErrInvalidConfig, c.Server.HTTPPort)
	}

	if _, err := c.Slots.ToDomain(); err != nil {
		return err
	}
	return nil
}

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	"github.com/m04kA/SMC-AppointmentService/pkg/types"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv(EnvConfigPath, "")
	cfg, err := Load(writeConfig(t, ""))
	require.NoError(t, err)

	assert.Equal(t, DriverCSV, cfg.Storage.Driver)
	assert.Equal(t, "data.csv", cfg.Storage.File)
	assert.Equal(t, 8080, cfg.Server.HTTPPort)
	assert.Equal(t, "info", cfg.Logs.Level)
	assert.Equal(t, "/metrics", cfg.Metrics.Path)
	assert.False(t, cfg.Export.Auto)
	assert.Equal(t, "appointments.xlsx", cfg.Export.File)

	slots, err := cfg.Slots.ToDomain()
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultSlotsConfig(), slots)
}

func TestSlotsConfig_ToDomain(t *testing.T) {
	t.Setenv(EnvConfigPath, "")
	cfg, err := Load(writeConfig(t, `
[slots]
open = "8:30"
close = "20:00"
duration_minutes = 45
step_minutes = 15
min_notice_minutes = 120
`))
	require.NoError(t, err)

	slots, err := cfg.Slots.ToDomain()
	require.NoError(t, err)
	assert.Equal(t, types.TimeString("08:30"), slots.OpenTime)
	assert.Equal(t, types.TimeString("20:00"), slots.CloseTime)
	assert.Equal(t, 45, slots.SlotDurationMinutes)
	assert.Equal(t, 15, slots.StepMinutes)
	assert.Equal(t, 120, slots.MinBookingNoticeMinutes)
}

func TestLoad_Postgres(t *testing.T) {
	t.Setenv(EnvConfigPath, "")
	cfg, err := Load(writeConfig(t, `
[storage]
driver = "Postgres"

[database]
host = "db"
user = "smc"
password = "secret"
dbname = "appointments"

[export]
auto = true
file = "out/book.xlsx"
`))
	require.NoError(t, err)

	assert.Equal(t, DriverPostgres, cfg.Storage.Driver)
	assert.Equal(t, "host=db port=5432 user=smc password=secret dbname=appointments sslmode=disable", cfg.Database.DSN())
	assert.True(t, cfg.Export.Auto)
	assert.Equal(t, "out/book.xlsx", cfg.Export.File)
}

func TestLoad_Errors(t *testing.T) {
	t.Setenv(EnvConfigPath, "")

	tests := []struct {
		name    string
		body    string
		wantErr error
	}{
		{name: "broken toml", body: "[server\nhttp_port = 1", wantErr: ErrReadConfig},
		{name: "unknown driver", body: "[storage]\ndriver = \"sqlite\"", wantErr: ErrInvalidConfig},
		{name: "postgres without host", body: "[storage]\ndriver = \"postgres\"", wantErr: ErrInvalidConfig},
		{name: "port out of range", body: "[server]\nhttp_port = 70000", wantErr: ErrInvalidConfig},
		{name: "slots close before open", body: "[slots]\nopen = \"18:00\"\nclose = \"09:00\"", wantErr: ErrInvalidConfig},
		{name: "slots bad time", body: "[slots]\nopen = \"nine\"", wantErr: ErrInvalidConfig},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.body))
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}

	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.ErrorIs(t, err, ErrReadConfig)
}

func TestLoad_EnvOverride(t *testing.T) {
	path := writeConfig(t, "[storage]\nfile = \"other.csv\"")
	t.Setenv(EnvConfigPath, path)

	cfg, err := Load("does-not-exist.toml")
	require.NoError(t, err)
	assert.Equal(t, "other.csv", cfg.Storage.File)
}

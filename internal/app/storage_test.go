package app

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AppointmentService/internal/config"
	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	"github.com/m04kA/SMC-AppointmentService/internal/infra/export/xlsx"
	"github.com/m04kA/SMC-AppointmentService/internal/infra/storage/csvfile"
	"github.com/m04kA/SMC-AppointmentService/pkg/logger"
)

func TestOpenStorage_CSV(t *testing.T) {
	dir := t.TempDir()
	cfg := config.Default()
	cfg.Storage.File = filepath.Join(dir, "data.csv")

	storage, err := OpenStorage(context.Background(), cfg, logger.NewNop(), nil, nil)
	require.NoError(t, err)
	defer storage.Close()

	_, ok := storage.Repo.(*csvfile.Store)
	assert.True(t, ok)
	assert.Same(t, storage.Repo, storage.TxManager)
}

func TestOpenStorage_AutoExport(t *testing.T) {
	dir := t.TempDir()
	cfg := config.Default()
	cfg.Storage.File = filepath.Join(dir, "data.csv")
	cfg.Export.Auto = true
	cfg.Export.File = filepath.Join(dir, "appointments.xlsx")

	storage, err := OpenStorage(context.Background(), cfg, logger.NewNop(), nil, nil)
	require.NoError(t, err)

	_, ok := storage.Repo.(*xlsx.AutoExportRepository)
	require.True(t, ok)

	d, err := domain.ParseDate("2024-01-05")
	require.NoError(t, err)
	r, err := domain.ParseTimeRange("09:00", "10:00")
	require.NoError(t, err)
	a, err := domain.NewAppointment("Ann", d, r, "", "")
	require.NoError(t, err)

	err = storage.TxManager.DoSerializable(context.Background(), func(ctx context.Context) error {
		_, err := storage.Repo.AppendOne(ctx, a)
		return err
	})
	require.NoError(t, err)

	_, err = os.Stat(cfg.Export.File)
	assert.NoError(t, err)
}

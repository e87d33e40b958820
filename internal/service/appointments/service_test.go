package appointments

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	"github.com/m04kA/SMC-AppointmentService/internal/infra/storage/csvfile"
	"github.com/m04kA/SMC-AppointmentService/internal/service/appointments/models"
	"github.com/m04kA/SMC-AppointmentService/internal/service/conflicts"
	"github.com/m04kA/SMC-AppointmentService/pkg/logger"
)

// newFileBacked собирает сервис поверх настоящего файлового хранилища
func newFileBacked(t *testing.T, seed ...*domain.Appointment) (*Service, *csvfile.Store) {
	t.Helper()
	store := csvfile.NewStore(filepath.Join(t.TempDir(), "data.csv"), logger.NewNop())
	require.NoError(t, store.ReplaceAll(context.Background(), seed))
	return NewService(store, store, nil, logger.NewNop()), store
}

func appt(t *testing.T, name, date, start, end string) *domain.Appointment {
	t.Helper()
	d, err := domain.ParseDate(date)
	require.NoError(t, err)
	r, err := domain.ParseTimeRange(start, end)
	require.NoError(t, err)
	a, err := domain.NewAppointment(name, d, r, "", "")
	require.NoError(t, err)
	return a
}

func seed(t *testing.T) []*domain.Appointment {
	return []*domain.Appointment{
		appt(t, "Ann", "2024-01-05", "09:00", "10:00"),
		appt(t, "Bob", "2024-01-05", "11:00", "12:00"),
		appt(t, "Cat", "2024-01-06", "09:00", "10:00"),
	}
}

func TestService_GetByID(t *testing.T) {
	svc, _ := newFileBacked(t, seed(t)...)

	got, err := svc.GetByID(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "Bob", got.ClientName)
	assert.Equal(t, "11:00", got.StartTime)

	_, err = svc.GetByID(context.Background(), 99)
	assert.ErrorIs(t, err, ErrAppointmentNotFound)
}

func TestService_Update(t *testing.T) {
	t.Run("move own appointment over its old slot", func(t *testing.T) {
		svc, store := newFileBacked(t, seed(t)...)

		resp, err := svc.Update(context.Background(), 0, &models.UpdateAppointmentRequest{
			ClientName: "Ann", Phone: "081", Date: "2024-01-05", StartTime: "09:30", EndTime: "10:30", Note: "moved\nlater",
		})
		require.NoError(t, err)
		assert.Equal(t, int64(0), resp.ID)
		assert.Equal(t, "09:30", resp.StartTime)
		assert.Equal(t, "moved later", resp.Note)

		all, err := store.LoadAll(context.Background())
		require.NoError(t, err)
		require.Len(t, all, 3)
		assert.Equal(t, "09:30-10:30", all[0].Range.String())
		assert.Equal(t, "Bob", all[1].ClientName)
	})

	t.Run("overlap with another appointment", func(t *testing.T) {
		svc, store := newFileBacked(t, seed(t)...)

		_, err := svc.Update(context.Background(), 0, &models.UpdateAppointmentRequest{
			ClientName: "Ann", Date: "2024-01-05", StartTime: "10:30", EndTime: "11:30",
		})
		assert.ErrorIs(t, err, ErrSlotOverlap)
		var overlap *conflicts.OverlapError
		require.True(t, errors.As(err, &overlap))
		assert.Equal(t, "Bob", overlap.Existing.ClientName)

		all, err := store.LoadAll(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "09:00-10:00", all[0].Range.String(), "store must not change")
	})

	t.Run("rename into existing client on same date", func(t *testing.T) {
		svc, _ := newFileBacked(t, seed(t)...)

		_, err := svc.Update(context.Background(), 0, &models.UpdateAppointmentRequest{
			ClientName: "Bob", Date: "2024-01-05", StartTime: "15:00", EndTime: "16:00",
		})
		assert.ErrorIs(t, err, ErrDuplicateClient)
	})

	t.Run("move to another date", func(t *testing.T) {
		svc, _ := newFileBacked(t, seed(t)...)

		resp, err := svc.Update(context.Background(), 1, &models.UpdateAppointmentRequest{
			ClientName: "Bob", Date: "2024-01-06", StartTime: "10:00", EndTime: "11:00",
		})
		require.NoError(t, err)
		assert.Equal(t, "2024-01-06", resp.Date)
	})

	t.Run("validation", func(t *testing.T) {
		svc, _ := newFileBacked(t, seed(t)...)

		_, err := svc.Update(context.Background(), 0, &models.UpdateAppointmentRequest{
			ClientName: "Ann", Date: "2024-01-05", StartTime: "10:00", EndTime: "09:00",
		})
		assert.ErrorIs(t, err, ErrInvalidInput)
		assert.ErrorIs(t, err, domain.ErrInvalidTimeRange)

		_, err = svc.Update(context.Background(), 0, &models.UpdateAppointmentRequest{
			Date: "2024-01-05", StartTime: "09:00", EndTime: "10:00",
		})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("unknown id", func(t *testing.T) {
		svc, _ := newFileBacked(t, seed(t)...)

		_, err := svc.Update(context.Background(), 42, &models.UpdateAppointmentRequest{
			ClientName: "Dan", Date: "2024-01-05", StartTime: "13:00", EndTime: "14:00",
		})
		assert.ErrorIs(t, err, ErrAppointmentNotFound)
	})
}

func TestService_Delete(t *testing.T) {
	svc, store := newFileBacked(t, seed(t)...)

	require.NoError(t, svc.Delete(context.Background(), 0))

	all, err := store.LoadAll(context.Background())
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "Bob", all[0].ClientName)
	assert.Equal(t, int64(0), all[0].ID)

	// освободившееся время снова доступно
	_, err = svc.Update(context.Background(), 0, &models.UpdateAppointmentRequest{
		ClientName: "Bob", Date: "2024-01-05", StartTime: "09:00", EndTime: "10:00",
	})
	require.NoError(t, err)

	err = svc.Delete(context.Background(), 10)
	assert.ErrorIs(t, err, ErrAppointmentNotFound)
}

type failingRepo struct{}

func (failingRepo) LoadAll(context.Context) ([]*domain.Appointment, error) {
	return nil, errors.New("permission denied")
}

func (failingRepo) ReplaceAll(context.Context, []*domain.Appointment) error {
	return errors.New("permission denied")
}

type passthroughTx struct{}

func (passthroughTx) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func TestService_StorageErrors(t *testing.T) {
	svc := NewService(failingRepo{}, passthroughTx{}, nil, logger.NewNop())

	err := svc.Delete(context.Background(), 0)
	assert.ErrorIs(t, err, ErrStorage)

	_, err = svc.Update(context.Background(), 0, &models.UpdateAppointmentRequest{
		ClientName: "Ann", Date: "2024-01-05", StartTime: "09:00", EndTime: "10:00",
	})
	assert.ErrorIs(t, err, ErrStorage)

	_, err = svc.GetByID(context.Background(), 0)
	assert.ErrorIs(t, err, ErrStorage)
}

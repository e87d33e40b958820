package appointment

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	"github.com/m04kA/SMC-AppointmentService/pkg/dbmetrics"
	"github.com/m04kA/SMC-AppointmentService/pkg/psqlbuilder"
	"github.com/m04kA/SMC-AppointmentService/pkg/types"
)

const table = "appointments"

var columns = []string{"name", "date", "start_time", "end_time", "phone", "note"}

// schema таблица и миграция старых таблиц без phone/note.
// Уникальный индекс (name, date) дублирует проверку политики конфликтов на уровне БД.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS appointments (
		id         BIGSERIAL PRIMARY KEY,
		name       TEXT NOT NULL,
		date       DATE NOT NULL,
		start_time TIME NOT NULL,
		end_time   TIME NOT NULL
	)`,
	`ALTER TABLE appointments ADD COLUMN IF NOT EXISTS phone TEXT NOT NULL DEFAULT ''`,
	`ALTER TABLE appointments ADD COLUMN IF NOT EXISTS note TEXT NOT NULL DEFAULT ''`,
	`CREATE UNIQUE INDEX IF NOT EXISTS appointments_name_date_uq ON appointments (name, date)`,
}

// Repository репозиторий записей в PostgreSQL
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория записей
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// EnsureSchema создает таблицу и добавляет отсутствующие колонки phone/note
func (r *Repository) EnsureSchema(ctx context.Context) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	for _, stmt := range schema {
		if _, err := executor.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("%w: EnsureSchema - %v", ErrSchema, err)
		}
	}
	return nil
}

// LoadAll получает все записи в порядке id
func (r *Repository) LoadAll(ctx context.Context) ([]*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(append([]string{"id"}, columns...)...).
		From(table).
		OrderBy("id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: LoadAll - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: LoadAll - execute select: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanAppointments(rows)
}

// AppendOne вставляет запись и возвращает её с id из БД.
// Уникальность не проверяет, это делает политика конфликтов до вызова.
func (r *Repository) AppendOne(ctx context.Context, appt *domain.Appointment) (*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert(table).
		Columns(columns...).
		Values(appt.ClientName, appt.Date, appt.Range.Start, appt.Range.End, appt.Phone, appt.Note).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: AppendOne - build insert query: %v", ErrBuildQuery, err)
	}

	created := appt.Clone()
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&created.ID); err != nil {
		return nil, fmt.Errorf("%w: AppendOne - execute insert: %v", ErrExecQuery, err)
	}

	return created, nil
}

// ReplaceAll заменяет содержимое таблицы набором appts, сохраняя их id.
// Записи без id (<= 0) получают новый id из последовательности.
// Атомарность обеспечивает транзакция из контекста (txmanager).
func (r *Repository) ReplaceAll(ctx context.Context, appts []*domain.Appointment) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete(table).ToSql()
	if err != nil {
		return fmt.Errorf("%w: ReplaceAll - build delete query: %v", ErrBuildQuery, err)
	}
	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: ReplaceAll - execute delete: %v", ErrExecQuery, err)
	}

	for _, appt := range appts {
		insert := psqlbuilder.Insert(table)
		if appt.ID > 0 {
			insert = insert.
				Columns(append([]string{"id"}, columns...)...).
				Values(appt.ID, appt.ClientName, appt.Date, appt.Range.Start, appt.Range.End, appt.Phone, appt.Note)
		} else {
			insert = insert.
				Columns(columns...).
				Values(appt.ClientName, appt.Date, appt.Range.Start, appt.Range.End, appt.Phone, appt.Note)
		}

		query, args, err := insert.Suffix("RETURNING id").ToSql()
		if err != nil {
			return fmt.Errorf("%w: ReplaceAll - build insert query: %v", ErrBuildQuery, err)
		}
		if err := executor.QueryRowContext(ctx, query, args...).Scan(&appt.ID); err != nil {
			return fmt.Errorf("%w: ReplaceAll - execute insert for %s: %v", ErrExecQuery, appt.Label(), err)
		}
	}

	return nil
}

func (r *Repository) scanAppointments(rows *sql.Rows) ([]*domain.Appointment, error) {
	appts := make([]*domain.Appointment, 0)

	for rows.Next() {
		var (
			appt       domain.Appointment
			date       time.Time
			start, end types.TimeString
		)

		err := rows.Scan(
			&appt.ID,
			&appt.ClientName,
			&date,
			&start,
			&end,
			&appt.Phone,
			&appt.Note,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: scanAppointments - scan row: %v", ErrScanRow, err)
		}

		appt.Date = domain.DateOnly(date)
		appt.Range = domain.TimeRange{Start: start, End: end}
		appts = append(appts, &appt)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanAppointments - rows error: %v", ErrScanRow, err)
	}

	return appts, nil
}

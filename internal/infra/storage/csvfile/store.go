package csvfile

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
)

// Store хранилище записей в CSV файле со схемой domain.Columns.
// Каждая операция читает файл заново, кэша между вызовами нет.
// ID записи - номер строки данных (с 0).
type Store struct {
	path   string
	logger Logger

	// txMu сериализует цепочки load -> decide -> write (DoSerializable)
	txMu sync.Mutex
	// ioMu защищает сам файл
	ioMu sync.Mutex
}

// NewStore создает хранилище. Файл создаётся при первом обращении.
func NewStore(path string, logger Logger) *Store {
	return &Store{path: path, logger: logger}
}

// Path путь к файлу хранилища
func (s *Store) Path() string {
	return s.path
}

// DoSerializable выполняет fn, не допуская параллельных изменений из этого процесса.
// От внешних писателей файла не защищает.
func (s *Store) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	s.txMu.Lock()
	defer s.txMu.Unlock()

	if err := ctx.Err(); err != nil {
		return err
	}
	return fn(ctx)
}

// LoadAll читает все записи.
// Отсутствующий или пустой файл - пустой набор, файл создаётся с заголовком.
// Если в файле нет колонок Phone/Note, они дозаполняются пустыми строками и файл перезаписывается.
func (s *Store) LoadAll(ctx context.Context) ([]*domain.Appointment, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.ioMu.Lock()
	defer s.ioMu.Unlock()

	return s.loadLocked()
}

// AppendOne дописывает запись в конец файла и возвращает её с присвоенным ID.
// Уникальность не проверяет.
func (s *Store) AppendOne(ctx context.Context, appt *domain.Appointment) (*domain.Appointment, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.ioMu.Lock()
	defer s.ioMu.Unlock()

	existing, err := s.loadLocked()
	if err != nil {
		return nil, err
	}

	f, err := os.OpenFile(s.path, os.O_RDWR|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("%w: AppendOne - open %s: %v", ErrWriteFile, s.path, err)
	}
	defer f.Close()

	// Файл мог быть отредактирован вручную без перевода строки в конце
	if err := ensureTrailingNewline(f); err != nil {
		return nil, fmt.Errorf("%w: AppendOne - %v", ErrWriteFile, err)
	}

	w := csv.NewWriter(f)
	if err := w.Write(appt.Record()); err != nil {
		return nil, fmt.Errorf("%w: AppendOne - write record: %v", ErrWriteFile, err)
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("%w: AppendOne - flush: %v", ErrWriteFile, err)
	}

	created := appt.Clone()
	created.ID = int64(len(existing))
	return created, nil
}

// ReplaceAll перезаписывает файл целиком. ID записей становятся их позициями в appts.
// Запись идёт во временный файл с последующим переименованием, чтобы не оставить файл наполовину записанным.
func (s *Store) ReplaceAll(ctx context.Context, appts []*domain.Appointment) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.ioMu.Lock()
	defer s.ioMu.Unlock()

	return s.writeLocked(appts)
}

func (s *Store) loadLocked() ([]*domain.Appointment, error) {
	f, err := os.Open(s.path)
	if errors.Is(err, os.ErrNotExist) {
		s.logger.Info("csvfile: %s not found, creating empty store", s.path)
		if err := s.writeLocked(nil); err != nil {
			return nil, err
		}
		return []*domain.Appointment{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: LoadAll - open %s: %v", ErrReadFile, s.path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.TrimLeadingSpace = true

	header, err := r.Read()
	if errors.Is(err, io.EOF) {
		s.logger.Info("csvfile: %s is empty, writing header", s.path)
		if err := s.writeLocked(nil); err != nil {
			return nil, err
		}
		return []*domain.Appointment{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: LoadAll - read header: %v", ErrCorruptRecord, err)
	}

	cols, missing, err := mapHeader(header)
	if err != nil {
		return nil, err
	}

	appts := make([]*domain.Appointment, 0)
	for {
		record, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: LoadAll - read row: %v", ErrCorruptRecord, err)
		}

		line, _ := r.FieldPos(0)
		appt, err := cols.parse(record)
		if err != nil {
			return nil, fmt.Errorf("%w: LoadAll - line %d: %v", ErrCorruptRecord, line, err)
		}
		appt.ID = int64(len(appts))
		appts = append(appts, appt)
	}

	// AppendOne пишет строки в порядке domain.Columns, поэтому любой другой заголовок переписывается
	if len(missing) > 0 || !isCanonicalHeader(header) {
		if len(missing) > 0 {
			s.logger.Warn("csvfile: %s lacks columns %s, migrating %d rows", s.path, strings.Join(missing, ","), len(appts))
		} else {
			s.logger.Warn("csvfile: %s header %v differs from schema, rewriting %d rows", s.path, header, len(appts))
		}
		f.Close()
		if err := s.writeLocked(appts); err != nil {
			return nil, err
		}
	}

	return appts, nil
}

func (s *Store) writeLocked(appts []*domain.Appointment) error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("%w: create dir %s: %v", ErrWriteFile, dir, err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("%w: create temp file: %v", ErrWriteFile, err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	w := csv.NewWriter(tmp)
	if err := w.Write(domain.Columns); err != nil {
		tmp.Close()
		return fmt.Errorf("%w: write header: %v", ErrWriteFile, err)
	}
	for i, appt := range appts {
		if err := w.Write(appt.Record()); err != nil {
			tmp.Close()
			return fmt.Errorf("%w: write row %d: %v", ErrWriteFile, i, err)
		}
		appt.ID = int64(i)
	}
	w.Flush()
	if err := w.Error(); err != nil {
		tmp.Close()
		return fmt.Errorf("%w: flush: %v", ErrWriteFile, err)
	}

	if err := tmp.Close(); err != nil {
		return fmt.Errorf("%w: close temp file: %v", ErrWriteFile, err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		return fmt.Errorf("%w: rename %s: %v", ErrWriteFile, s.path, err)
	}

	return nil
}

func ensureTrailingNewline(f *os.File) error {
	info, err := f.Stat()
	if err != nil {
		return fmt.Errorf("stat: %w", err)
	}
	if info.Size() == 0 {
		return nil
	}

	last := make([]byte, 1)
	if _, err := f.ReadAt(last, info.Size()-1); err != nil {
		return fmt.Errorf("read last byte: %w", err)
	}
	if last[0] == '\n' {
		return nil
	}
	if _, err := f.Write([]byte("\n")); err != nil {
		return fmt.Errorf("write newline: %w", err)
	}
	return nil
}

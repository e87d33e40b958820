package get_free_slots

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("get_free_slots: invalid input data")

	// ErrStorage возвращается, когда не удалось прочитать записи
	ErrStorage = errors.New("get_free_slots: storage error")
)

package schedule

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных параметрах запроса
	ErrInvalidInput = errors.New("schedule: invalid input data")

	// ErrStorage возвращается, когда хранилище не удалось прочитать
	ErrStorage = errors.New("schedule: storage error")
)

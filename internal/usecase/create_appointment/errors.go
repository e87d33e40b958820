package create_appointment

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_appointment: invalid input data")

	// ErrDuplicateClient возвращается, когда у клиента уже есть запись на эту дату
	ErrDuplicateClient = errors.New("create_appointment: client already booked on this date")

	// ErrSlotOverlap возвращается, когда время пересекается с другой записью
	ErrSlotOverlap = errors.New("create_appointment: time slot overlaps another appointment")

	// ErrStorage возвращается, когда хранилище недоступно или повреждено
	ErrStorage = errors.New("create_appointment: storage error")
)

package appointments

import "errors"

var (
	// ErrAppointmentNotFound возвращается, когда запись с таким ID не найдена
	ErrAppointmentNotFound = errors.New("appointment not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrDuplicateClient возвращается, когда у клиента уже есть другая запись на эту дату
	ErrDuplicateClient = errors.New("client already booked on this date")

	// ErrSlotOverlap возвращается, когда новое время пересекается с другой записью
	ErrSlotOverlap = errors.New("time slot overlaps another appointment")

	// ErrStorage возвращается, когда хранилище недоступно или повреждено
	ErrStorage = errors.New("service: storage error")
)

package xlsx

import "errors"

var (
	// ErrBuildWorkbook возвращается, когда не удалось сформировать книгу
	ErrBuildWorkbook = errors.New("xlsx.exporter: failed to build workbook")

	// ErrWriteWorkbook возвращается, когда книгу не удалось записать
	ErrWriteWorkbook = errors.New("xlsx.exporter: failed to write workbook")
)

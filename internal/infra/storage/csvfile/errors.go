package csvfile

import "errors"

var (
	// ErrReadFile возвращается, когда файл хранилища не удалось прочитать
	ErrReadFile = errors.New("csvfile.store: failed to read file")

	// ErrWriteFile возвращается, когда файл хранилища не удалось записать
	ErrWriteFile = errors.New("csvfile.store: failed to write file")

	// ErrCorruptRecord возвращается, когда заголовок или строка файла не разбираются
	ErrCorruptRecord = errors.New("csvfile.store: corrupt record")
)

package printers

import (
	"encoding/json"
	"io"
)

// JSON печатает v с отступами
func JSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

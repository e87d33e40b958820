package options

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

// OutputOptions формат вывода
type OutputOptions struct {
	JSON bool
}

func AddOutputArg(cmd *cobra.Command, o *OutputOptions) {
	cmd.Flags().BoolVar(&o.JSON, "json", false,
		"Output as JSON.")
}

// HandleError в режиме JSON печатает ошибку объектом и всё равно возвращает её,
// чтобы процесс завершился с ненулевым кодом
func (o *OutputOptions) HandleError(w io.Writer, err error) error {
	if o.JSON && err != nil {
		b, mErr := json.Marshal(map[string]string{"error": err.Error()})
		if mErr != nil {
			return err
		}
		_, _ = fmt.Fprintln(w, string(b))
	}
	return err
}

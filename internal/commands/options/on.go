package options

import (
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
)

// OnOptions дата, на которую смотрим расписание
type OnOptions struct {
	OnString string
}

func AddOnArgs(cmd *cobra.Command, o *OnOptions) {
	cmd.Flags().StringVar(&o.OnString, "on", "",
		`Specify a date, example: --on="2024-02-28" or --on=today.`)
}

// GetOn nil, если дата не задана
func (o *OnOptions) GetOn(now time.Time) (*time.Time, error) {
	s := strings.TrimSpace(o.OnString)
	switch strings.ToLower(s) {
	case "":
		return nil, nil
	case "today":
		d := domain.DateOnly(now)
		return &d, nil
	case "tomorrow":
		d := domain.DateOnly(now.AddDate(0, 0, 1))
		return &d, nil
	}

	d, err := domain.ParseDate(s)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

package options

import "github.com/spf13/cobra"

// AppointmentOptions поля записи для add и update
type AppointmentOptions struct {
	Name      string
	Phone     string
	Date      string
	StartTime string
	EndTime   string
	Note      string
}

const (
	FlagName  = "name"
	FlagPhone = "phone"
	FlagDate  = "date"
	FlagStart = "start"
	FlagEnd   = "end"
	FlagNote  = "note"
)

func AddAppointmentArgs(cmd *cobra.Command, o *AppointmentOptions) {
	cmd.Flags().StringVar(&o.Name, FlagName, "", "Client name.")
	cmd.Flags().StringVar(&o.Phone, FlagPhone, "", "Client phone.")
	cmd.Flags().StringVar(&o.Date, FlagDate, "", `Appointment date, example: --date="2024-02-28".`)
	cmd.Flags().StringVar(&o.StartTime, FlagStart, "", `Start time, example: --start="09:00".`)
	cmd.Flags().StringVar(&o.EndTime, FlagEnd, "", `End time, exclusive, example: --end="10:30".`)
	cmd.Flags().StringVar(&o.Note, FlagNote, "", "Free text note. Line breaks are replaced with spaces.")
}

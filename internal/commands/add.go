package commands

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/m04kA/SMC-AppointmentService/internal/commands/options"
	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	"github.com/m04kA/SMC-AppointmentService/internal/printers"
	createAppointmentUC "github.com/m04kA/SMC-AppointmentService/internal/usecase/create_appointment"
)

func addAdd(topLevel *cobra.Command, rt *Runtime) {
	ao := &options.AppointmentOptions{}
	oo := &options.OutputOptions{}

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Book a new appointment",
		Example: `
apptctl add --name "Ann" --date 2024-02-28 --start 09:00 --end 10:00
apptctl add --name "Bob" --phone 0812345678 --date 2024-02-28 --start 10:00 --end 11:30 --note "first visit"
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			resp, err := rt.Create.Execute(cmd.Context(), &createAppointmentUC.Request{
				ClientName: ao.Name,
				Phone:      ao.Phone,
				Date:       ao.Date,
				StartTime:  ao.StartTime,
				EndTime:    ao.EndTime,
				Note:       ao.Note,
			})
			if err != nil {
				return oo.HandleError(out, err)
			}

			if oo.JSON {
				return printers.JSON(out, resp)
			}
			_, _ = color.New(color.FgGreen).Fprintf(out, "Booked #%d %s on %s %s-%s\n",
				resp.ID, resp.ClientName, resp.Date.Format(domain.DateFormat), resp.StartTime, resp.EndTime)
			return nil
		},
	}
	options.AddAppointmentArgs(cmd, ao)
	options.AddOutputArg(cmd, oo)

	topLevel.AddCommand(cmd)
}

package commands

import (
	"github.com/spf13/cobra"

	"github.com/m04kA/SMC-AppointmentService/internal/commands/options"
	"github.com/m04kA/SMC-AppointmentService/internal/printers"
	"github.com/m04kA/SMC-AppointmentService/internal/service/schedule/models"
)

func addUpcoming(topLevel *cobra.Command, rt *Runtime) {
	fo := &options.FilterOptions{}
	oo := &options.OutputOptions{}

	cmd := &cobra.Command{
		Use:   "upcoming",
		Short: "Show appointments that have not ended yet",
		Example: `
apptctl upcoming
apptctl upcoming --name bob --json
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			resp, err := rt.Schedule.GetUpcoming(cmd.Context(), &models.UpcomingRequest{
				Now:        rt.Now(),
				NameFilter: fo.Name,
			})
			if err != nil {
				return oo.HandleError(out, err)
			}

			if oo.JSON {
				return printers.JSON(out, resp)
			}
			printers.Title(out, "Upcoming", len(resp.Appointments))
			printers.Appointments(out, resp.Appointments)
			return nil
		},
	}
	options.AddFilterArgs(cmd, fo)
	options.AddOutputArg(cmd, oo)

	topLevel.AddCommand(cmd)
}

package commands

import (
	"github.com/spf13/cobra"

	"github.com/m04kA/SMC-AppointmentService/internal/commands/options"
	"github.com/m04kA/SMC-AppointmentService/internal/printers"
	"github.com/m04kA/SMC-AppointmentService/internal/service/schedule/models"
)

func addList(topLevel *cobra.Command, rt *Runtime) {
	fo := &options.FilterOptions{}
	po := &options.PageOptions{}
	oo := &options.OutputOptions{}

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List all appointments by date and start time",
		Example: `
apptctl list
apptctl list --name ann --page 2 --per-page 20
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			resp, err := rt.Schedule.ListAppointments(cmd.Context(), &models.ListRequest{
				NameFilter: fo.Name,
				Page:       po.Page,
				PerPage:    po.PerPage,
			})
			if err != nil {
				return oo.HandleError(out, err)
			}

			if oo.JSON {
				return printers.JSON(out, resp)
			}
			printers.Title(out, "Appointments", resp.Total)
			printers.Appointments(out, resp.Appointments)
			printers.PageFooter(out, resp)
			return nil
		},
	}
	options.AddFilterArgs(cmd, fo)
	options.AddPageArgs(cmd, po)
	options.AddOutputArg(cmd, oo)

	topLevel.AddCommand(cmd)
}

package commands

import (
	"github.com/spf13/cobra"

	"github.com/m04kA/SMC-AppointmentService/internal/commands/options"
	"github.com/m04kA/SMC-AppointmentService/internal/printers"
	"github.com/m04kA/SMC-AppointmentService/internal/service/schedule/models"
)

func addDay(topLevel *cobra.Command, rt *Runtime) {
	on := &options.OnOptions{}
	fo := &options.FilterOptions{}
	oo := &options.OutputOptions{}

	cmd := &cobra.Command{
		Use:   "day",
		Short: "Show the schedule of one day",
		Long: `Show the appointments of one day ordered by start time, followed by the Gantt chart
of the whole day. Without --on every stored appointment is listed in storage order.`,
		Example: `
apptctl day --on today
apptctl day --on 2024-02-28 --name ann
apptctl day
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			date, err := on.GetOn(rt.Now())
			if err != nil {
				return oo.HandleError(out, err)
			}

			resp, err := rt.Schedule.GetDaySchedule(cmd.Context(), &models.DayScheduleRequest{
				Date:       date,
				NameFilter: fo.Name,
			})
			if err != nil {
				return oo.HandleError(out, err)
			}

			if oo.JSON {
				return printers.JSON(out, resp)
			}

			title := "All appointments"
			if resp.Date != nil {
				title = "Schedule " + *resp.Date
			}
			printers.Title(out, title, len(resp.Appointments))
			printers.Appointments(out, resp.Appointments)
			if resp.Gantt != nil {
				printers.Gantt(out, resp.Gantt, printers.DefaultGanttWidth)
			}
			return nil
		},
	}
	options.AddOnArgs(cmd, on)
	options.AddFilterArgs(cmd, fo)
	options.AddOutputArg(cmd, oo)

	topLevel.AddCommand(cmd)
}

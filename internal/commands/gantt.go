package commands

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/m04kA/SMC-AppointmentService/internal/commands/options"
	"github.com/m04kA/SMC-AppointmentService/internal/printers"
)

func addGantt(topLevel *cobra.Command, rt *Runtime) {
	on := &options.OnOptions{}
	oo := &options.OutputOptions{}
	var width int

	cmd := &cobra.Command{
		Use:   "gantt",
		Short: "Draw the Gantt chart of one day",
		Example: `
apptctl gantt --on 2024-02-28
apptctl gantt --on today --width 48
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			date, err := on.GetOn(rt.Now())
			if err != nil {
				return oo.HandleError(out, err)
			}
			if date == nil {
				return oo.HandleError(out, errors.New("--on is required"))
			}

			resp, err := rt.Schedule.GetGanttBars(cmd.Context(), *date)
			if err != nil {
				return oo.HandleError(out, err)
			}

			if oo.JSON {
				return printers.JSON(out, resp)
			}
			printers.Gantt(out, resp, width)
			return nil
		},
	}
	options.AddOnArgs(cmd, on)
	options.AddOutputArg(cmd, oo)
	cmd.Flags().IntVar(&width, "width", printers.DefaultGanttWidth, "Chart width in characters for 24 hours.")

	topLevel.AddCommand(cmd)
}

package commands

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/m04kA/SMC-AppointmentService/internal/commands/options"
	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	"github.com/m04kA/SMC-AppointmentService/internal/printers"
	getFreeSlotsUC "github.com/m04kA/SMC-AppointmentService/internal/usecase/get_free_slots"
)

func addFree(topLevel *cobra.Command, rt *Runtime) {
	on := &options.OnOptions{}
	oo := &options.OutputOptions{}
	var (
		duration int
		step     int
		all      bool
	)

	cmd := &cobra.Command{
		Use:   "free",
		Short: "Show free time slots of one day",
		Example: `
apptctl free --on tomorrow
apptctl free --on 2024-02-28 --duration 90 --step 15
apptctl free --on today --all
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

			resp, err := rt.FreeSlots.Execute(cmd.Context(), &getFreeSlotsUC.Request{
				Date:            *date,
				DurationMinutes: duration,
				StepMinutes:     step,
				OnlyFree:        !all,
			})
			if err != nil {
				return oo.HandleError(out, err)
			}

			if oo.JSON {
				return printers.JSON(out, resp.Slots)
			}

			title := "Free slots " + resp.Date.Format(domain.DateFormat)
			if all {
				title = "Slots " + resp.Date.Format(domain.DateFormat)
			}
			printers.Title(out, title, len(resp.Slots))
			printers.FreeSlots(out, resp.Slots)
			return nil
		},
	}
	options.AddOnArgs(cmd, on)
	options.AddOutputArg(cmd, oo)
	cmd.Flags().IntVar(&duration, "duration", 0, "Slot length in minutes, defaults to slots.duration_minutes.")
	cmd.Flags().IntVar(&step, "step", 0, "Grid step in minutes, defaults to slots.step_minutes.")
	cmd.Flags().BoolVar(&all, "all", false, "Also list busy slots.")

	topLevel.AddCommand(cmd)
}

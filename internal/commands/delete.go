package commands

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/m04kA/SMC-AppointmentService/internal/commands/options"
	"github.com/m04kA/SMC-AppointmentService/internal/printers"
)

func addDelete(topLevel *cobra.Command, rt *Runtime) {
	oo := &options.OutputOptions{}

	cmd := &cobra.Command{
		Use:     "delete <id>",
		Aliases: []string{"rm"},
		Short:   "Delete an appointment permanently",
		Long: `Delete an appointment permanently. With the CSV storage the ids of the
appointments after it shift down by one.`,
		Example: `
apptctl delete 3
`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			id, err := parseID(args[0])
			if err != nil {
				return oo.HandleError(out, err)
			}

			if err := rt.Appointments.Delete(cmd.Context(), id); err != nil {
				return oo.HandleError(out, err)
			}

			if oo.JSON {
				return printers.JSON(out, map[string]int64{"deleted": id})
			}
			_, _ = color.New(color.FgYellow).Fprintf(out, "Deleted #%d\n", id)
			return nil
		},
	}
	options.AddOutputArg(cmd, oo)

	topLevel.AddCommand(cmd)
}

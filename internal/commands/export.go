package commands

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/m04kA/SMC-AppointmentService/internal/commands/options"
	"github.com/m04kA/SMC-AppointmentService/internal/printers"
)

func addExport(topLevel *cobra.Command, rt *Runtime) {
	oo := &options.OutputOptions{}
	var path string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export all appointments to an Excel workbook, one sheet per month",
		Example: `
apptctl export
apptctl export --out backup/2024.xlsx
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			if path == "" {
				path = rt.Config.Export.File
			}

			appts, err := rt.Schedule.GetAll(cmd.Context())
			if err != nil {
				return oo.HandleError(out, err)
			}
			if err := rt.Exporter.WriteFile(path, appts); err != nil {
				return oo.HandleError(out, err)
			}

			if oo.JSON {
				return printers.JSON(out, map[string]interface{}{"file": path, "count": len(appts)})
			}
			_, _ = color.New(color.FgGreen).Fprintf(out, "Exported %d appointments to %s\n", len(appts), path)
			return nil
		},
	}
	cmd.Flags().StringVar(&path, "out", "", "Workbook path. Defaults to export.file from the config.")
	options.AddOutputArg(cmd, oo)

	topLevel.AddCommand(cmd)
}

package commands

import (
	"github.com/spf13/cobra"

	"github.com/m04kA/SMC-AppointmentService/internal/commands/options"
)

// New корневая команда apptctl
func New() *cobra.Command {
	return NewWithRuntime(&Runtime{})
}

// NewWithRuntime позволяет подменить часы в тестах
func NewWithRuntime(rt *Runtime) *cobra.Command {
	ro := &options.RootOptions{}

	cmd := &cobra.Command{
		Use:           "apptctl",
		Short:         "Book appointments on a single shared resource from the command line.",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return rt.open(cmd.Context(), ro)
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			return rt.Close()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}
	options.AddRootArgs(cmd, ro)

	AddCommands(cmd, rt)
	return cmd
}

func AddCommands(topLevel *cobra.Command, rt *Runtime) {
	addAdd(topLevel, rt)
	addUpdate(topLevel, rt)
	addDelete(topLevel, rt)
	addDay(topLevel, rt)
	addUpcoming(topLevel, rt)
	addGantt(topLevel, rt)
	addFree(topLevel, rt)
	addList(topLevel, rt)
	addExport(topLevel, rt)
}

package options

import "github.com/spf13/cobra"

// RootOptions общие флаги всех команд
type RootOptions struct {
	ConfigPath string
	File       string
	LogFile    string
}

func AddRootArgs(cmd *cobra.Command, o *RootOptions) {
	cmd.PersistentFlags().StringVar(&o.ConfigPath, "config", "",
		`Path to config.toml. Defaults to $APPT_CONFIG or ./config.toml when present.`)
	cmd.PersistentFlags().StringVar(&o.File, "file", "",
		`Use this CSV file as storage, overriding the config, example: --file="data.csv".`)
	cmd.PersistentFlags().StringVar(&o.LogFile, "log-file", "",
		`Write logs to this file instead of the one from the config.`)
}

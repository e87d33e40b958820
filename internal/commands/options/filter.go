package options

import "github.com/spf13/cobra"

// FilterOptions фильтр по имени клиента (подстрока без учёта регистра)
type FilterOptions struct {
	Name string
}

func AddFilterArgs(cmd *cobra.Command, o *FilterOptions) {
	cmd.Flags().StringVar(&o.Name, "name", "",
		"Only show clients whose name contains this text, case-insensitive.")
}

// PageOptions параметры страницы списка
type PageOptions struct {
	Page    int
	PerPage int
}

func AddPageArgs(cmd *cobra.Command, o *PageOptions) {
	cmd.Flags().IntVar(&o.Page, "page", 1, "Page number, starting at 1.")
	cmd.Flags().IntVar(&o.PerPage, "per-page", 10, "Rows per page: 10, 20 or 50.")
}

// Package cli implements the fortune command line.
package cli

import (
	"github.com/bobmcallan/jinyao-fortune/internal/fortune"
	"github.com/spf13/cobra"
)

// App holds the services used by CLI commands.
type App struct {
	Generator *fortune.Generator
}

// NewRootCmd creates the top-level "fortune" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "fortune",
		Short:         "Draw festive market fortunes",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newDrawCmd(app),
		newScenariosCmd(),
		newCompaniesCmd(),
		newVersionCmd(),
	)

	return root
}

package cli

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/bobmcallan/jinyao-fortune/internal/config"
	"github.com/bobmcallan/jinyao-fortune/internal/fortune"
	"github.com/spf13/cobra"
)

func newScenariosCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "scenarios",
		Short: "List wish scenarios",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "ID\tLABEL\tCHARACTERS")
			for _, s := range fortune.Scenarios() {
				fmt.Fprintf(tw, "%s\t%s\t%s\n", s.ID, s.Label, strings.Join(s.AllowedCharacters, " "))
			}
			return tw.Flush()
		},
	}
}

func newCompaniesCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "companies [query]",
		Short: "List known companies, optionally filtered by name or ticker",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			list := fortune.Companies()
			if len(args) == 1 {
				list = fortune.Suggest(args[0], limit)
			} else if limit > 0 && len(list) > limit {
				list = list[:limit]
			}
			if len(list) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "no matching companies")
				return nil
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "TICKER\tNAME")
			for _, c := range list {
				fmt.Fprintf(tw, "%s\t%s\n", c.Ticker, c.Name)
			}
			return tw.Flush()
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 0, "Maximum number of companies (0 for all)")
	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "fortune version %s\n", config.GetFullVersion())
		},
	}
}

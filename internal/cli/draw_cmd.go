package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/bobmcallan/jinyao-fortune/internal/fortune"
	"github.com/spf13/cobra"
)

func newDrawCmd(app *App) *cobra.Command {
	var (
		req    fortune.Request
		asJSON bool
	)

	cmd := &cobra.Command{
		Use:   "draw",
		Short: "Draw a fortune for a name, company and wish",
		RunE: func(cmd *cobra.Command, args []string) error {
			if strings.TrimSpace(req.Name) == "" {
				return errors.New("--name is required")
			}
			result := app.Generator.Generate(cmd.Context(), req)
			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(result)
			}
			printFortune(cmd.OutOrStdout(), result)
			return nil
		},
	}

	cmd.Flags().StringVarP(&req.Name, "name", "n", "", "Name of the person drawing the fortune")
	cmd.Flags().StringVarP(&req.Company, "company", "c", "", "Company name or ticker")
	cmd.Flags().StringVarP(&req.WishID, "wish", "w", fortune.DefaultScenarioID, "Wish scenario id")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the fortune as JSON")
	return cmd
}

func printFortune(w io.Writer, r fortune.Result) {
	theme := scenarioStyle(r.Scenario)
	fmt.Fprintf(w, "%s\n\n", theme.Render(r.Header))
	fmt.Fprintf(w, "  %s\n\n", theme.Render("【"+r.BigCharacter+"】"))
	for _, line := range fortune.SplitPoem(r.LuckyPoem) {
		fmt.Fprintf(w, "  %s\n", stylePoem.Render(line))
	}
	fmt.Fprintf(w, "\n%s\n", r.FinancialInsight)
	if r.Source == fortune.SourceTemplate {
		fmt.Fprintf(w, "\n%s\n", styleDim.Render("(template)"))
	}
}

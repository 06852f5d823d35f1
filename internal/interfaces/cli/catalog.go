package cli

import (
	"encoding/json"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	appconsultation "github.com/takweol/casematch/internal/application/consultation"
	"github.com/takweol/casematch/internal/domain/catalog"
	"github.com/takweol/casematch/pkg/errors"
	"github.com/takweol/casematch/pkg/types/consultation"
)

func newCatalogCommand(root *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "catalog [id]",
		Short: "Show the case category catalog",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				return printCategory(cmd, root, args[0])
			}
			return printCatalog(cmd, root)
		},
	}
}

func printCatalog(cmd *cobra.Command, root *RootOptions) error {
	all := catalog.All()
	if root.OutputFormat == "json" {
		dtos := make([]consultation.CategoryDTO, len(all))
		for i, c := range all {
			dtos[i] = appconsultation.NewCategoryDTO(c)
		}
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(dtos)
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tBASE WIN RATE\tCOST\tCASES")
	for _, c := range all {
		fmt.Fprintf(w, "%s\t%s\t%d%%\t%d~%d%s\t%d\n",
			c.ID, c.Name, c.BaseWinRate, c.BaseCost.Min, c.BaseCost.Max, catalog.CostUnit, c.PlatformCaseCount)
	}
	return w.Flush()
}

func printCategory(cmd *cobra.Command, root *RootOptions, id string) error {
	c, ok := catalog.ByID(id)
	if !ok {
		return errors.NotFound("case category not found").WithDetail("id=" + id)
	}
	if root.OutputFormat == "json" {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(appconsultation.NewCategoryDTO(c))
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s (%s)\n", c.Name, c.ID)
	fmt.Fprintf(out, "Law reference:  %s\n", c.LawReference)
	fmt.Fprintf(out, "Parent:         %s\n", c.ParentCategory)
	fmt.Fprintf(out, "Keywords:       %s\n", strings.Join(c.Keywords, ", "))
	fmt.Fprintf(out, "Base win rate:  %d%%\n", c.BaseWinRate)
	fmt.Fprintf(out, "Cost band:      %d~%d%s\n", c.BaseCost.Min, c.BaseCost.Max, catalog.CostUnit)
	fmt.Fprintf(out, "Platform cases: %d\n", c.PlatformCaseCount)
	if c.Description != "" {
		fmt.Fprintf(out, "Description:    %s\n", c.Description)
	}
	for _, e := range c.SampleExperts {
		fmt.Fprintf(out, "Expert:         %s (%s, %.1f★, %d cases)\n", e.Name, e.Specialty, e.Rating, e.ResolvedCases)
	}
	return nil
}

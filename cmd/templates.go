package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/folio/internal/portfolio"
)

var templatesCmd = &cobra.Command{
	Use:   "templates",
	Short: "List the available templates",
	RunE: func(cmd *cobra.Command, args []string) error {
		catalog := portfolio.Catalog()

		if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(catalog)
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tNAME\tCOLORS\tFONT\tRADIUS")
		for _, t := range catalog {
			fmt.Fprintf(w, "%s\t%s\t%s / %s\t%s\t%s\n",
				t.ID, t.Name, t.Theme.PrimaryColor, t.Theme.SecondaryColor, t.Theme.FontFamily, t.Theme.BorderRadius)
		}
		if err := w.Flush(); err != nil {
			return err
		}

		if verbose {
			fmt.Println()
			for _, t := range catalog {
				fmt.Printf("%s: %s\n", t.ID, t.Description)
			}
		}
		return nil
	},
}

func init() {
	templatesCmd.Flags().Bool("json", false, "output the catalog as JSON")
	rootCmd.AddCommand(templatesCmd)
}

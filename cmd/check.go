package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/wandermaxq-star/GeoblogRF-sub005/internal/geo"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Validate the built-in region catalog",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := geo.CheckConsistency(); err != nil {
			return fmt.Errorf("catalog check failed: %w", err)
		}

		byDistrict := make(map[string]int)
		for _, r := range geo.Regions() {
			byDistrict[string(r.District)]++
		}

		fmt.Printf("Catalog OK: %d regions\n", len(geo.Regions()))
		for _, d := range geo.DistrictOrder {
			fmt.Printf("  %-5s %-30s %d\n", d, geo.DistrictNames[d], byDistrict[string(d)])
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

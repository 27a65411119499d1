package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/wandermaxq-star/GeoblogRF-sub005/internal/geo"
	"github.com/wandermaxq-star/GeoblogRF-sub005/internal/store"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show which regions have cached tiles",
	RunE: func(cmd *cobra.Command, args []string) error {
		registry, err := store.New(dataDir)
		if err != nil {
			return err
		}
		defer registry.Close()

		rows, err := registry.ReadDownloaded()
		if err != nil {
			return err
		}

		downloaded := make(map[string]string, len(rows))
		for _, r := range rows {
			downloaded[r.RegionID] = r.DownloadedAt
		}

		fmt.Printf("Offline Regions\n")
		fmt.Printf("===============\n")
		fmt.Printf("Downloaded: %d / %d\n", len(downloaded), len(geo.Regions()))

		for _, d := range geo.DistrictOrder {
			var have int
			for _, id := range geo.DistrictRegions[d] {
				if _, ok := downloaded[id]; ok {
					have++
				}
			}
			fmt.Printf("\n%s (%d/%d)\n", geo.DistrictNames[d], have, len(geo.DistrictRegions[d]))
			for _, id := range geo.DistrictRegions[d] {
				at, ok := downloaded[id]
				if !ok {
					continue
				}
				region, _ := geo.Get(id)
				fmt.Printf("  %-28s %s\n", region.Label, at)
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(statusCmd)
}

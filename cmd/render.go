package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/wandermaxq-star/GeoblogRF-sub005/internal/app"
	"github.com/wandermaxq-star/GeoblogRF-sub005/internal/logger"
	"github.com/wandermaxq-star/GeoblogRF-sub005/internal/store"
	"github.com/wandermaxq-star/GeoblogRF-sub005/internal/viewport"
)

var (
	renderOut    string
	renderRegion string
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render the map once as SVG",
	Long: `Render writes a single SVG snapshot of the map. With --region the
viewport is flown to that region first; animations run synchronously, so the
output shows the final framing.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		log := logger.L()

		registry, err := store.New(dataDir)
		if err != nil {
			return err
		}
		defer registry.Close()

		paths, err := registry.ReadPaths()
		if err != nil {
			return err
		}

		composer := app.New(paths, nil, viewport.SyncScheduler{}, log)
		defer composer.Close()

		downloaded, err := registry.ReadDownloaded()
		if err != nil {
			return err
		}
		ids := make([]string, 0, len(downloaded))
		for _, d := range downloaded {
			ids = append(ids, d.RegionID)
		}
		composer.State.InitDownloadedRegions(ids)

		if renderRegion != "" {
			composer.SelectRegion(renderRegion)
		}

		svg := composer.RenderSVG()
		if renderOut == "" || renderOut == "-" {
			fmt.Println(svg)
			return nil
		}
		if err := os.WriteFile(renderOut, []byte(svg), 0o644); err != nil {
			return fmt.Errorf("writing %s: %w", renderOut, err)
		}
		log.Info("rendered", "out", renderOut, "bytes", len(svg))
		return nil
	},
}

func init() {
	renderCmd.Flags().StringVarP(&renderOut, "out", "o", "-", "Output file ('-' for stdout)")
	renderCmd.Flags().StringVar(&renderRegion, "region", "", "Fly to this region id before rendering")
	rootCmd.AddCommand(renderCmd)
}

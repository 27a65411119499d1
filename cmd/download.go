package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/wandermaxq-star/GeoblogRF-sub005/internal/geo"
	"github.com/wandermaxq-star/GeoblogRF-sub005/internal/logger"
	"github.com/wandermaxq-star/GeoblogRF-sub005/internal/state"
	"github.com/wandermaxq-star/GeoblogRF-sub005/internal/store"
	"github.com/wandermaxq-star/GeoblogRF-sub005/internal/tiles"
)

var downloadDelete bool

var downloadCmd = &cobra.Command{
	Use:   "download <region-id>...",
	Short: "Download (or evict) tile caches for regions",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		log := logger.L()

		registry, err := store.New(dataDir)
		if err != nil {
			return err
		}
		defer registry.Close()

		st := state.New()
		svc := tiles.NewService(registry, st, tiles.Options{
			BaseURL:   cfg.Tiles.BaseURL,
			RateLimit: cfg.Tiles.RateLimit,
			Timeout:   time.Duration(cfg.Tiles.TimeoutSeconds) * time.Second,
			TileZoom:  cfg.Tiles.Zoom,
		}, log)

		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}

		for _, id := range args {
			if _, ok := geo.Get(id); !ok {
				return fmt.Errorf("unknown region %q", id)
			}

			if downloadDelete {
				if err := svc.Delete(ctx, id); err != nil {
					return err
				}
				fmt.Printf("%s: evicted\n", id)
				continue
			}

			last := -1
			unsub := st.Subscribe(func(snap state.Snapshot) {
				if p := snap.Progress[id]; p != last {
					last = p
					fmt.Printf("\r%s: %3d%%", id, p)
				}
			})
			err := svc.Start(ctx, id)
			unsub()
			fmt.Println()
			if err != nil {
				return err
			}
		}
		return nil
	},
}

func init() {
	downloadCmd.Flags().BoolVar(&downloadDelete, "delete", false, "Evict cached tiles instead of downloading")
	rootCmd.AddCommand(downloadCmd)
}

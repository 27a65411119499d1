package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/wandermaxq-star/GeoblogRF-sub005/internal/app"
	"github.com/wandermaxq-star/GeoblogRF-sub005/internal/geo"
	"github.com/wandermaxq-star/GeoblogRF-sub005/internal/logger"
	"github.com/wandermaxq-star/GeoblogRF-sub005/internal/store"
	"github.com/wandermaxq-star/GeoblogRF-sub005/internal/tiles"
	"github.com/wandermaxq-star/GeoblogRF-sub005/internal/viewport"
	"github.com/wandermaxq-star/GeoblogRF-sub005/internal/web"
)

var (
	serveHost string
	servePort int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the interactive offline map web app",
	RunE: func(cmd *cobra.Command, args []string) error {
		if !cmd.Flags().Changed("host") {
			serveHost = cfg.Server.Host
		}
		if !cmd.Flags().Changed("port") {
			servePort = cfg.Server.Port
		}

		log := logger.L()

		if err := geo.CheckConsistency(); err != nil {
			return fmt.Errorf("region catalog: %w", err)
		}

		registry, err := store.New(dataDir)
		if err != nil {
			return err
		}
		defer registry.Close()

		paths, err := registry.ReadPaths()
		if err != nil {
			return err
		}

		composer := app.New(paths, nil, viewport.NewTickerScheduler(16*time.Millisecond), log)
		defer composer.Close()

		composer.Orch = tiles.NewService(registry, composer.State, tiles.Options{
			BaseURL:   cfg.Tiles.BaseURL,
			RateLimit: cfg.Tiles.RateLimit,
			Timeout:   time.Duration(cfg.Tiles.TimeoutSeconds) * time.Second,
			TileZoom:  cfg.Tiles.Zoom,
		}, log)

		if err := composer.Mount(context.Background()); err != nil {
			return fmt.Errorf("seeding downloaded regions: %w", err)
		}

		srv := &web.Server{
			Composer: composer,
			Addr:     fmt.Sprintf("%s:%d", serveHost, servePort),
			Log:      log,
		}
		return srv.ListenAndServe()
	},
}

func init() {
	serveCmd.Flags().StringVar(&serveHost, "host", "localhost", "Host to listen on")
	serveCmd.Flags().IntVar(&servePort, "port", 8080, "Port to listen on")
	rootCmd.AddCommand(serveCmd)
}

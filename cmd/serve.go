package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Zachkp/folio/internal/content"
	"github.com/Zachkp/folio/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the portfolio over HTTP",
	Long: `Serves the page on PORT along with the images, videos, files and static
directories under FOLIO_ASSETS_DIR. With FOLIO_WATCH_CONTENT=true the content
file is reloaded whenever it changes.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe(cmd.Context())
	},
}

func runServe(parent context.Context) error {
	if parent == nil {
		parent = context.Background()
	}
	ctx, stop := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
	defer stop()

	gin.SetMode(appConfig.GinMode)

	store, err := content.NewStore(appConfig.ContentFile, logger)
	if err != nil {
		return err
	}
	site := store.Current()
	logger.Info("content loaded",
		zap.String("source", contentSource(appConfig.ContentFile)),
		zap.String("name", site.Profile.Name),
		zap.Int("projects", len(site.Projects)),
	)

	if appConfig.WatchContent {
		if err := store.Watch(ctx); err != nil {
			return err
		}
	}

	srv, err := server.New(appConfig, store, logger)
	if err != nil {
		return err
	}
	return srv.Run(ctx)
}

func contentSource(path string) string {
	if path == "" {
		return "embedded"
	}
	return path
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

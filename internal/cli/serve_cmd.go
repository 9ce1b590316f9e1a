package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/Morris-Command-Center/agentic-skill-tree/internal/server"
)

func newServeCmd(app *App) *cobra.Command {
	var port string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			if port == "" {
				port = app.HTTPPort
			}

			srv := server.New(app.Catalog, app.Progression, app.Stats, app.Logger)
			fiberApp := srv.App()

			errCh := make(chan error, 1)
			go func() {
				errCh <- fiberApp.Listen(":" + port)
			}()

			sigCh := make(chan os.Signal, 1)
			signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

			select {
			case err := <-errCh:
				if err != nil {
					return fmt.Errorf("server error: %w", err)
				}
			case <-sigCh:
				ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
				defer cancel()
				if err := fiberApp.ShutdownWithContext(ctx); err != nil {
					return fmt.Errorf("shutdown error: %w", err)
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&port, "port", "", "Listen port (defaults to SKILLTREE_PORT)")

	return cmd
}

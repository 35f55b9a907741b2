package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/hsdev/portfolio"
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the web server",
	Long: `Start the web server. Send SIGHUP after running import to drop the
record cache without restarting.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := portfolio.LoadConfig(cfgFile)
		if err != nil {
			return err
		}
		if serveAddr != "" {
			cfg.Addr = serveAddr
		}

		app := portfolio.New(cfg)
		defer app.Close()
		if err := app.Init(); err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		hup := make(chan os.Signal, 1)
		signal.Notify(hup, syscall.SIGHUP)
		defer signal.Stop(hup)

		go func() {
			for {
				select {
				case <-hup:
					app.Reload()
				case <-ctx.Done():
					shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
					defer cancel()
					app.Echo.Logger.Info("portfolio: shutting down")
					if err := app.Shutdown(shutdownCtx); err != nil {
						app.Echo.Logger.Errorf("portfolio: shutdown: %v", err)
					}
					return
				}
			}
		}()

		return app.Serve()
	},
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "listen address (overrides config)")
	rootCmd.AddCommand(serveCmd)
}

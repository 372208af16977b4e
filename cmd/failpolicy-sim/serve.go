package main

import (
	"context"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"failpolicy-sim/internal/admin"
)

var (
	serveAddr       string
	serveConfigPath string
	serveSchemaPath string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve simulation runs over HTTP",
	Long:  "serve starts a small web console that triggers policy runs on demand and returns their reports as JSON.",
	RunE: func(cmd *cobra.Command, args []string) error {
		log, err := newLogger()
		if err != nil {
			return err
		}
		cfg, err := loadConfig(serveConfigPath, serveSchemaPath)
		if err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		srv := admin.NewServer(cfg)
		log.Info("console listening", "addr", serveAddr)
		if err := srv.Start(ctx, serveAddr); err != nil && err != http.ErrServerClosed {
			return err
		}
		return nil
	},
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", ":8080", "Listen address")
	serveCmd.Flags().StringVar(&serveConfigPath, "config", "", "Path to simulation configuration YAML (defaults to built-ins)")
	serveCmd.Flags().StringVar(&serveSchemaPath, "schema", "schemas/simulation.cue", "Path to CUE schema file")
	rootCmd.AddCommand(serveCmd)
}

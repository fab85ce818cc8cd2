package main

import (
	"fmt"

	"github.com/jonathan/travel-planner/internal/config"
	"github.com/jonathan/travel-planner/internal/server"
	"github.com/spf13/cobra"
)

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server that exposes REST endpoints for itinerary generation, saved trips and the travel wallet.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on (overrides PORT)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg, err := config.NewServerConfig()
	if err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	if servePort != 0 {
		if err := cfg.OverridePort(servePort); err != nil {
			return fmt.Errorf("invalid --port value: %w", err)
		}
	}

	srv, err := server.New(cfg)
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	return srv.Start()
}

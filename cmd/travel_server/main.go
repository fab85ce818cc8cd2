// Package main provides the entry point for the Travel Planner HTTP API server.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "travel_server",
	Short: "Travel Planner HTTP API Server",
	Long:  "Travel Planner generates personalized, weather- and crowd-aware trip itineraries and manages saved trips and travel documents via REST API.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

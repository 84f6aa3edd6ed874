package cmd

import (
	"github.com/nirbhaypatil1311-max/Task-Management-System/internal/api"
	"github.com/nirbhaypatil1311-max/Task-Management-System/internal/config"
	"github.com/nirbhaypatil1311-max/Task-Management-System/internal/telemetry"
	"github.com/spf13/cobra"
)

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Start Task Server",
	Run: func(cmd *cobra.Command, args []string) {
		conf := config.ReadConfig()

		shutdownTelemetry := telemetry.NewProvider(conf.OTEL_EXPORTER_OTLP_ENDPOINT)
		defer shutdownTelemetry()

		s := api.New()
		s.Start()
	},
}

// Register the "server" command
func init() {
	rootCmd.AddCommand(serverCmd)
}

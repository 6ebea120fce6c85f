// Command civicconnect runs the CivicConnect citizen portal.
package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/civicconnect/portal/pkg/logger"
)

var rootCmd = &cobra.Command{
	Use:   "civicconnect",
	Short: "CivicConnect citizen issue-reporting portal",
	Long: `CivicConnect serves the citizen portal: a landing page, the citizen and
authorities dashboards, the report-issue and registration forms and the city
selector.

Configuration is read from the environment (PORT, ENV, LOG_LEVEL,
HTTP_READ_TIMEOUT, HTTP_WRITE_TIMEOUT, HTTP_SHUTDOWN_TIMEOUT, METRICS_ENABLED).`,
	SilenceUsage: true,
}

func init() {
	rootCmd.AddCommand(serveCmd, routesCmd)
}

func main() {
	// cobra prints the error; once serve has initialised the logger the
	// failure is also recorded as a structured entry.
	if err := rootCmd.Execute(); err != nil {
		log := logger.Get()
		log.Error().Err(err).Msg("command failed")
		os.Exit(1)
	}
}

package main

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/civicconnect/portal/internal/api"
)

var routesCmd = &cobra.Command{
	Use:   "routes",
	Short: "Print the registered routes",
	Args:  cobra.NoArgs,
	RunE:  runRoutes,
}

func runRoutes(cmd *cobra.Command, _ []string) error {
	reg := prometheus.NewRegistry()
	e, err := buildRouter(zerolog.Nop(), reg, reg)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for _, line := range api.RouteTable(e) {
		fmt.Fprintln(out, line)
	}
	return nil
}

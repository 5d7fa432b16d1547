package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:           "shopadmin",
	Short:         "shopadmin: e-commerce admin API",
	Long:          "shopadmin serves the product catalogue and order management API behind the admin dashboard.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	serveCmd.Flags().StringP("port", "p", "", "port to listen on (default APP_PORT or 8080)")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(routeListCmd)
}

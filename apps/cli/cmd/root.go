package cmd

import (
	"errors"
	"os"

	"github.com/spf13/cobra"

	"github.com/andrewatan/httpcall/packages/httpclient"
	"github.com/andrewatan/httpcall/packages/output"
)

var (
	version   = "dev"
	buildTime = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "httpcall",
	Short: "A small HTTP client for REST APIs",
	Long: `httpcall issues GET, POST, PUT, and DELETE requests against REST
APIs and prints normalized, colorized summaries of the responses.`,
	SilenceErrors: true,
	SilenceUsage:  true,
}

func Execute(v, bt string) {
	version = v
	buildTime = bt
	if err := rootCmd.Execute(); err != nil {
		printer := output.NewPrinter(output.WithWriter(os.Stderr))
		printer.PrintError(err)
		os.Exit(exitCode(err))
	}
}

func exitCode(err error) int {
	var transportErr *httpclient.TransportError
	var bodyErr *httpclient.BodyError
	if errors.As(err, &transportErr) || errors.As(err, &bodyErr) {
		return ExitNetworkError
	}
	return ExitInputError
}

func init() {
	rootCmd.AddCommand(getCmd)
	rootCmd.AddCommand(postCmd)
	rootCmd.AddCommand(putCmd)
	rootCmd.AddCommand(deleteCmd)
	rootCmd.AddCommand(demoCmd)
	rootCmd.AddCommand(versionCmd)
}

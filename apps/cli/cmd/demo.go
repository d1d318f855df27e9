package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/andrewatan/httpcall/packages/httpclient"
	"github.com/andrewatan/httpcall/packages/output"
)

const demoBaseURL = "https://jsonplaceholder.typicode.com"

var demoNoColorFlag bool

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Run a request sequence against jsonplaceholder.typicode.com",
	Long: `Run a fixed sequence of GET, POST, PUT, and DELETE requests against
the public jsonplaceholder test API and print the results. Failed steps
are reported and the sequence continues.`,
	RunE: demoCommand,
}

func init() {
	demoCmd.Flags().BoolVar(&demoNoColorFlag, "no-color", false, "Disable colored output")
}

func demoCommand(cmd *cobra.Command, _ []string) error {
	out := cmd.OutOrStdout()
	printer := output.NewPrinter(
		output.WithWriter(out),
		output.WithNoColor(demoNoColorFlag),
	)
	client := httpclient.NewClient(httpclient.WithRequestIDs())

	fmt.Fprintln(out, "httpcall API client demo")
	fmt.Fprintln(out, strings.Repeat("=", 40))

	fmt.Fprintln(out, "\nGET request")
	if resp, err := client.Get(demoBaseURL+"/posts/1", httpclient.NewConfig().WithPrettyPrint(true)); err != nil {
		printer.PrintError(err)
	} else {
		printer.PrintResponse(resp, resp.IsJSON())
	}

	fmt.Fprintln(out, "\nPOST request")
	postBody := `{"title": "watan loves cats", "body": "i love cats", "userId": 1}`
	postCfg := httpclient.NewConfig().AddHeader("Content-Type", "application/json")
	if resp, err := client.Post(demoBaseURL+"/posts", postBody, postCfg); err != nil {
		printer.PrintError(err)
	} else {
		fmt.Fprintf(out, "Status: %s %s\n", output.StatusIndicator(resp.Status), resp.StatusText)
		if id, ok := resp.Field("id"); ok && resp.IsSuccess() {
			fmt.Fprintf(out, "New post id: %v\n", id)
		}
	}

	fmt.Fprintln(out, "\nAuthenticated GET request")
	authCfg := httpclient.NewConfig().
		WithBearerToken("test-token-12345").
		AddHeader("Accept", "application/json")
	if resp, err := client.Get(demoBaseURL+"/users", authCfg); err != nil {
		printer.PrintError(err)
	} else {
		fmt.Fprintf(out, "Status: %s %s\n", output.StatusIndicator(resp.Status), resp.StatusText)
		fmt.Fprintf(out, "Headers: %d\n", len(resp.Headers))
		fmt.Fprintf(out, "Content-Type: %s\n", resp.ContentType)
	}

	fmt.Fprintln(out, "\nPUT request")
	putBody := `{"id": 1, "name": "cat", "email": "cat@andrewatan.com"}`
	if resp, err := client.Put(demoBaseURL+"/users/1", putBody, httpclient.NewConfig()); err != nil {
		printer.PrintError(err)
	} else {
		fmt.Fprintf(out, "Status: %s %s\n", output.StatusIndicator(resp.Status), resp.StatusText)
	}

	fmt.Fprintln(out, "\nDELETE request")
	if resp, err := client.Delete(demoBaseURL+"/posts/1", httpclient.NewConfig()); err != nil {
		printer.PrintError(err)
	} else {
		fmt.Fprintf(out, "Status: %s %s\n", output.StatusIndicator(resp.Status), resp.StatusText)
	}

	fmt.Fprintln(out, "\nShort-timeout GET request")
	quickClient := httpclient.NewClient(httpclient.WithTimeout(5 * time.Second))
	if resp, err := quickClient.Get(demoBaseURL+"/posts", httpclient.NewConfig()); err != nil {
		printer.PrintError(err)
	} else {
		fmt.Fprintf(out, "Status: %s\n", output.StatusIndicator(resp.Status))
	}

	fmt.Fprintln(out, "\nDone")
	return nil
}

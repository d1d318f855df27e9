package cmd

import (
	"net/http"

	"github.com/spf13/cobra"
)

var getCmd = &cobra.Command{
	Use:   "get <url>",
	Short: "Send a GET request",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return sendCommand(cmd, http.MethodGet, args[0])
	},
}

var postCmd = &cobra.Command{
	Use:   "post <url>",
	Short: "Send a POST request with a JSON body",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return sendCommand(cmd, http.MethodPost, args[0])
	},
}

var putCmd = &cobra.Command{
	Use:   "put <url>",
	Short: "Send a PUT request with a JSON body",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return sendCommand(cmd, http.MethodPut, args[0])
	},
}

var deleteCmd = &cobra.Command{
	Use:   "delete <url>",
	Short: "Send a DELETE request",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return sendCommand(cmd, http.MethodDelete, args[0])
	},
}

func init() {
	addRequestFlags(getCmd, false)
	addRequestFlags(deleteCmd, false)
	addRequestFlags(postCmd, true)
	addRequestFlags(putCmd, true)

	_ = postCmd.MarkFlagRequired("data")
	_ = putCmd.MarkFlagRequired("data")
}

// Package cli defines the cobra command tree for cq.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/evcraddock/comment-queue/internal/client"
)

var flagFormat string

// NewRootCmd creates the root cobra command with global flags.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "cq",
		Short:         "Queue comments and read them back in order",
		Long:          "A first-in-first-out comment queue. Run 'cq serve' to host a queue, then add and pop comments against it.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringVar(&flagFormat, "format", "text", "output format (text|json)")

	root.AddCommand(
		newAddCmd(),
		newPopCmd(),
		newGreetCmd(),
		newServeCmd(),
		newStatusCmd(),
		newConfigCmd(),
		newVersionCmd(),
	)

	return root
}

// newAPIClient creates an HTTP client for the configured server.
func newAPIClient() *client.Client {
	return client.New(getServerURL())
}

// isJSON returns true if the --format flag is set to json.
func isJSON() bool {
	return flagFormat == "json"
}

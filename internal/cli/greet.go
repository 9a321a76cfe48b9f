package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/evcraddock/comment-queue/internal/greet"
)

func newGreetCmd() *cobra.Command {
	var remote bool

	cmd := &cobra.Command{
		Use:   "greet <name>",
		Short: "Print a greeting",
		Long:  "Print a greeting. With --remote the greeting comes from the configured server.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGreet(cmd, args[0], remote)
		},
	}

	cmd.Flags().BoolVar(&remote, "remote", false, "ask the server instead of formatting locally")

	return cmd
}

func runGreet(cmd *cobra.Command, name string, remote bool) error {
	msg := greet.Greet(name)
	if remote {
		var err error
		msg, err = newAPIClient().Greet(name)
		if err != nil {
			return err
		}
	}

	if isJSON() {
		return printJSON(cmd.OutOrStdout(), map[string]string{"message": msg})
	}
	fmt.Fprintln(cmd.OutOrStdout(), msg)
	return nil
}

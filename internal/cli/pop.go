package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/evcraddock/comment-queue/internal/web"
)

// emptyMessage is printed when pop finds nothing queued. It matches the
// viewer page.
const emptyMessage = web.EmptyQueueMessage

func newPopCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "pop",
		Short: "Take the oldest comment text from the queue",
		Long:  "Remove the comment at the head of the queue and print its text.",
		Args:  cobra.NoArgs,
		RunE:  runPop,
	}
}

func runPop(cmd *cobra.Command, args []string) error {
	text, ok, err := newAPIClient().PopNextText()
	if err != nil {
		return err
	}

	if isJSON() {
		var v *string
		if ok {
			v = &text
		}
		return printJSON(cmd.OutOrStdout(), map[string]*string{"text": v})
	}

	if !ok {
		fmt.Fprintln(cmd.OutOrStdout(), emptyMessage)
		return nil
	}
	fmt.Fprintln(cmd.OutOrStdout(), text)
	return nil
}

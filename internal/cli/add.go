package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
)

func newAddCmd() *cobra.Command {
	return &cobra.Command{
		Use:   `add <id> <author> ["text"]`,
		Short: "Add a comment to the queue",
		Long:  "Append a comment to the tail of the queue. Remaining arguments are joined into the comment text, which may be empty. Put -- before a negative id.",
		Args:  cobra.MinimumNArgs(2),
		RunE:  runAdd,
	}
}

func runAdd(cmd *cobra.Command, args []string) error {
	id, err := parseCommentID(args[0])
	if err != nil {
		return err
	}

	author := args[1]
	text := strings.Join(args[2:], " ")

	if err := newAPIClient().AddComment(id, author, text); err != nil {
		return err
	}

	if isJSON() {
		return printJSON(cmd.OutOrStdout(), map[string]string{"status": "queued"})
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Comment #%d queued.\n", id)
	return nil
}

// parseCommentID converts a CLI argument into a 32-bit comment id.
func parseCommentID(s string) (int32, error) {
	id, err := strconv.ParseInt(s, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid comment ID: %s", s)
	}
	return int32(id), nil
}

package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/evcraddock/comment-queue/internal/logging"
	"github.com/evcraddock/comment-queue/internal/web"
)

func newServeCmd() *cobra.Command {
	var (
		port int
		dev  bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Host a comment queue over HTTP",
		Long:  "Start an HTTP server that owns one in-memory comment queue. The queue is lost when the server stops.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(port, dev)
		},
	}

	cmd.Flags().IntVar(&port, "port", 8080, "port to listen on")
	cmd.Flags().BoolVar(&dev, "dev", os.Getenv("CQ_DEV_MODE") == "true", "human-readable debug logging")

	return cmd
}

func runServe(port int, dev bool) error {
	logging.Setup(dev)

	srv, err := web.NewServer()
	if err != nil {
		return fmt.Errorf("creating server: %w", err)
	}
	return srv.ListenAndServe(port)
}

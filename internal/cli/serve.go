package cli

import (
	"github.com/spf13/cobra"

	"github.com/coursemd/coursemd/pkg/transcripts"
)

// serveCommand creates the serve command, which runs the local
// transcript receiver.
func (c *CLI) serveCommand() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Receive transcripts from a browser userscript",
		Long: `Run a local HTTP endpoint that accepts transcript uploads.

A browser userscript POSTs a JSON object mapping lecture IDs to
transcript text; each entry is written to the transcript directory as
<id>.txt. The server binds to loopback only and stops on Ctrl-C.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.loadConfig()
			if err != nil {
				return err
			}
			store, err := transcripts.NewStore(transcriptDir(cfg))
			if err != nil {
				return err
			}

			logger := loggerFromContext(cmd.Context())
			srv := transcripts.NewServer(store, addr, logger)

			printInfo("Listening on http://%s", srv.Addr())
			printDetail("Saving to %s", store.Dir())
			return srv.Run(cmd.Context())
		},
	}

	cmd.Flags().StringVar(&addr, "addr", transcripts.DefaultAddr, "address to listen on")

	return cmd
}

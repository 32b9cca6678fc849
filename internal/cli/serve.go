package cli

import (
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/varunvasudeva1/wordplay/internal/httpserver"
)

func newServeCmd(app *App) *cobra.Command {
	var addr string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the leaderboard as a read-only JSON API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			st, closeStore, err := openStore(app.Cfg)
			if err != nil {
				return err
			}
			defer closeStore()

			log.Info().Str("addr", addr).Msg("starting leaderboard server")
			return httpserver.New(st).Start(addr)
		},
	}
	def := ":8080"
	if p := os.Getenv("PORT"); p != "" {
		def = ":" + p
	}
	cmd.Flags().StringVar(&addr, "addr", def, "Listen address")
	return cmd
}

package cli

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/varunvasudeva1/wordplay/internal/config"
	"github.com/varunvasudeva1/wordplay/internal/llm"
	"github.com/varunvasudeva1/wordplay/internal/ui"
)

func newConfigCmd(app *App) *cobra.Command {
	var baseURL, provider, model string
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Set configuration options, e.g. API base URL, provider, model",
		Long: `Set configuration options, e.g. API base URL, provider, model.

Values are written to the .env file (ENV_FILE, default ".env").
Run without flags to print the current settings.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			st := ui.NewStyles(app.Out, app.Cfg.NoColor)
			values := map[string]string{}
			if cmd.Flags().Changed("base_url") {
				values["BASE_URL"] = baseURL
			}
			if cmd.Flags().Changed("provider") {
				p, err := llm.ParseProvider(provider)
				if err != nil {
					return err
				}
				values["PROVIDER"] = string(p)
			}
			if cmd.Flags().Changed("model") {
				values["MODEL"] = model
			}

			if len(values) == 0 {
				env, err := config.Read(app.Cfg.EnvFile)
				if err != nil {
					return err
				}
				for _, k := range []string{"BASE_URL", "PROVIDER", "MODEL"} {
					v := env[k]
					if v == "" {
						v = st.Dim("(not set)")
					}
					fmt.Fprintf(app.Out, "%s=%s\n", k, v)
				}
				return nil
			}

			if err := config.Set(app.Cfg.EnvFile, values); err != nil {
				return err
			}
			env, err := config.Read(app.Cfg.EnvFile)
			if err != nil {
				return err
			}
			keys := make([]string, 0, len(values))
			for k := range values {
				keys = append(keys, k)
			}
			sort.Strings(keys)
			for _, k := range keys {
				fmt.Fprintf(app.Out, "Environment variable %s set to %s\n", k, st.Good(env[k]))
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&baseURL, "base_url", "b", "", "Set the API base URL")
	cmd.Flags().StringVarP(&provider, "provider", "p", "", "Set the API provider (ollama or openai)")
	cmd.Flags().StringVarP(&model, "model", "m", "", "Set the language model")
	return cmd
}

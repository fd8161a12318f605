package commands

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"turak/internal/app"
	"turak/internal/notify"
)

var (
	home       string
	apiURL     string
	passphrase string

	wire *app.Wire
)

func Execute() error {
	root := &cobra.Command{
		Use:           "turak",
		Short:         "Real-estate marketplace client",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg := app.FromEnv()
			if home != "" {
				cfg.Home = home
			}
			if apiURL != "" {
				cfg.BaseURL = apiURL
			}
			if passphrase != "" {
				cfg.Passphrase = passphrase
			}
			cfg.Notifier = notify.NewLogger(slog.New(slog.NewTextHandler(os.Stderr, nil)))

			var err error
			wire, err = app.NewWire(cfg)
			return err
		},
	}

	root.PersistentFlags().StringVar(&home, "home", "", "config dir (default ~/.turak)")
	root.PersistentFlags().StringVar(&apiURL, "api", "", "backend origin (default $TURAK_API_URL)")
	root.PersistentFlags().StringVarP(&passphrase, "passphrase", "p", "", "passphrase protecting stored tokens")

	root.AddCommand(
		loginCmd(), logoutCmd(), signupCmd(), whoamiCmd(), confirmCmd(), resendCmd(),
		resetCmd(), profileCmd(),
		housesCmd(), adminCmd(),
		predictCmd(), postsCmd(), chatCmd(), assistantCmd(),
		exchangeCmd(), trendsCmd(),
		consultCmd(), applyCmd(), applicationsCmd(),
	)
	return root.Execute()
}

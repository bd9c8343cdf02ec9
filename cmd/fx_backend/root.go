package main

import (
	"fmt"

	"github.com/SscSPs/fx_rates_service/internal/platform/config"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// flagKeys maps persistent flag names to the config keys they override.
var flagKeys = []struct{ flag, key string }{
	{"rates-file", config.KeyRatesFile},
	{"port", config.KeyPort},
	{"static-dir", config.KeyStaticDir},
}

func newRootCmd() *cobra.Command {
	v := viper.New()

	rootCmd := &cobra.Command{
		Use:   "fx_backend",
		Short: "Serve currency exchange rates from a static rate file",
		Long: `fx_backend loads a currency -> currency -> rate table from a JSON or YAML
file once at startup and serves it read-only over HTTP (/rate, /convert).

Running without a subcommand is the same as "fx_backend serve".`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context(), v)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.String("rates-file", "", "Path to the rate file (env RATES_FILE)")
	flags.String("port", "", "Port to listen on (env PORT)")
	flags.String("static-dir", "", "Directory with frontend assets (env STATIC_DIR)")
	if err := bindFlags(v, flags); err != nil {
		panic(err)
	}

	rootCmd.AddCommand(newServeCmd(v))
	rootCmd.AddCommand(newCheckRatesCmd(v))
	return rootCmd
}

func bindFlags(v *viper.Viper, flags *pflag.FlagSet) error {
	for _, fk := range flagKeys {
		if err := v.BindPFlag(fk.key, flags.Lookup(fk.flag)); err != nil {
			return fmt.Errorf("bind --%s: %w", fk.flag, err)
		}
	}
	return nil
}

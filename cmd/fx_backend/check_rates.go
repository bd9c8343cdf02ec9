package main

import (
	"fmt"

	"github.com/SscSPs/fx_rates_service/internal/adapters/ratefile"
	"github.com/SscSPs/fx_rates_service/internal/platform/config"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func newCheckRatesCmd(v *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "check-rates",
		Short: "Validate the rate file without starting the server",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadConfig(v)
			if err != nil {
				return err
			}

			table, err := ratefile.Load(cfg.RatesFile)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s: %d base currencies, %d pairs\n", cfg.RatesFile, table.Len(), table.Pairs())
			return nil
		},
	}
}

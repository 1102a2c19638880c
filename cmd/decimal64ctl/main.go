// Command decimal64ctl exercises the decimal64 package from the shell:
// parsing, formatting, arithmetic, and precision casts, all dispatched at a
// runtime-chosen precision and rounding policy via internal/dynamic.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	logger *zap.Logger

	flagPrec     int
	flagRounding string
	flagCurrency string
	flagConfig   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "decimal64ctl",
	Short: "parse, format, and compute fixed-point decimal values",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		l, err := zap.NewProduction()
		if err != nil {
			return fmt.Errorf("decimal64ctl: build logger: %w", err)
		}
		logger = l
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.IntVar(&flagPrec, "prec", 2, "fractional digit count, 0-18")
	flags.StringVar(&flagRounding, "rounding", "half-even",
		"rounding policy: down, default, half-down, half-up, half-even, ceiling, floor, up")
	flags.StringVar(&flagCurrency, "currency", "",
		"currency preset name from --config; overrides --prec/--rounding")
	flags.StringVar(&flagConfig, "config", "", "path to a TOML currency preset file")

	rootCmd.AddCommand(parseCmd, formatCmd, addCmd, subCmd, mulCmd, divCmd, castCmd)
}

package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/dakova-io/decimal64/internal/config"
	"github.com/dakova-io/decimal64/internal/dynamic"
)

// resolvePreset returns the precision/rounding pair the current command
// should use: the --currency preset from --config if --currency is set (an
// error if --config is not), otherwise the --prec/--rounding flags directly.
func resolvePreset() (prec int, rounding string, err error) {
	if flagCurrency == "" {
		return flagPrec, flagRounding, nil
	}
	if flagConfig == "" {
		return 0, "", fmt.Errorf("decimal64ctl: --currency requires --config")
	}
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return 0, "", err
	}
	preset, err := cfg.Resolve(flagCurrency)
	if err != nil {
		return 0, "", err
	}
	return preset.Precision, preset.Rounding, nil
}

func runAndPrint(cmd *cobra.Command, op dynamic.Op, args []string, toPrec int) error {
	prec, rounding, err := resolvePreset()
	if err != nil {
		return err
	}
	result, err := dynamic.Run(op, prec, rounding, args, toPrec)
	if err != nil {
		if logger != nil {
			logger.Error("decimal64ctl: operation failed",
				zap.String("op", cmd.Name()),
				zap.Int("prec", prec),
				zap.String("rounding", rounding),
				zap.Error(err))
		}
		return err
	}
	cmd.Println(result)
	return nil
}

var parseCmd = &cobra.Command{
	Use:   "parse [value]",
	Short: "parse a decimal string and print its trimmed form",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runAndPrint(cmd, dynamic.OpParse, args, 0)
	},
}

var formatCmd = &cobra.Command{
	Use:   "format [value]",
	Short: "parse a decimal string and print it with exactly --prec fractional digits",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runAndPrint(cmd, dynamic.OpFormat, args, 0)
	},
}

var addCmd = &cobra.Command{
	Use:   "add [a] [b]",
	Short: "add two decimal values",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runAndPrint(cmd, dynamic.OpAdd, args, 0)
	},
}

var subCmd = &cobra.Command{
	Use:   "sub [a] [b]",
	Short: "subtract b from a",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runAndPrint(cmd, dynamic.OpSub, args, 0)
	},
}

var mulCmd = &cobra.Command{
	Use:   "mul [a] [b]",
	Short: "multiply two decimal values via the overflow-avoiding mult-div kernel",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runAndPrint(cmd, dynamic.OpMul, args, 0)
	},
}

var divCmd = &cobra.Command{
	Use:   "div [a] [b]",
	Short: "divide a by b via the overflow-avoiding mult-div kernel",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runAndPrint(cmd, dynamic.OpDiv, args, 0)
	},
}

var flagCastTo int

var castCmd = &cobra.Command{
	Use:   "cast [value]",
	Short: "parse a decimal at --prec and re-round it at --cast-to, using --rounding both times",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runAndPrint(cmd, dynamic.OpCast, args, flagCastTo)
	},
}

func init() {
	castCmd.Flags().IntVar(&flagCastTo, "cast-to", 2, "destination fractional digit count, 0-18")
}

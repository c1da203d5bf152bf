package cmd

import (
	"github.com/spf13/cobra"

	"github.com/msto63/devkit/foundation/utils/mathx"
	"github.com/msto63/devkit/foundation/utils/stringx"
)

var (
	baseFrom string
	baseTo   string
)

var baseCmd = &cobra.Command{
	Use:   "base <value>",
	Short: "Convert between binary, octal, decimal and hexadecimal",
	Long: `Converts a non-negative integer of any size between number bases.
Without --to the value is shown in all four bases.

Examples:
  devkit base 255
  devkit base --from hex FF
  devkit base --from 2 --to 16 11111111`,
	Args: cobra.ExactArgs(1),
	RunE: runBase,
}

func init() {
	rootCmd.AddCommand(baseCmd)

	baseCmd.Flags().StringVarP(&baseFrom, "from", "f", "", "input base: 2, 8, 10, 16 or bin, oct, dec, hex (default from config)")
	baseCmd.Flags().StringVarP(&baseTo, "to", "t", "", "output base; all bases if empty")
}

func runBase(cmd *cobra.Command, args []string) error {
	from, err := mathx.ParseNumberBase(stringx.FirstNonBlank(baseFrom, cfg.Base.From))
	if err != nil {
		return err
	}

	if baseTo == "" {
		op, err := runner.ConvertBase(cmd.Context(), args[0], from)
		return emit(cmd, op, err)
	}

	to, err := mathx.ParseNumberBase(baseTo)
	if err != nil {
		return err
	}
	op, err := runner.ConvertBaseTo(cmd.Context(), args[0], from, to)
	return emit(cmd, op, err)
}

package cmd

import (
	"github.com/spf13/cobra"

	"github.com/msto63/devkit/foundation/utils/loremx"
	"github.com/msto63/devkit/foundation/utils/stringx"
)

var (
	uuidCount  int
	loremCount int
	loremUnit  string
)

var uuidCmd = &cobra.Command{
	Use:   "uuid",
	Short: "Generate version 4 UUIDs",
	Long: `Generates 1 to 100 random version 4 UUIDs, one per line.

Examples:
  devkit uuid
  devkit uuid --count 10`,
	Args: cobra.NoArgs,
	RunE: runUUID,
}

var loremCmd = &cobra.Command{
	Use:   "lorem",
	Short: "Generate Lorem Ipsum placeholder text",
	Long: `Generates placeholder text.

Limits: 1-10000 words, 1-1000 sentences, 1-100 paragraphs.

Examples:
  devkit lorem
  devkit lorem --count 20 --unit words`,
	Args: cobra.NoArgs,
	RunE: runLorem,
}

func init() {
	rootCmd.AddCommand(uuidCmd)
	rootCmd.AddCommand(loremCmd)

	uuidCmd.Flags().IntVarP(&uuidCount, "count", "n", 0, "number of UUIDs (default from config)")

	loremCmd.Flags().IntVarP(&loremCount, "count", "n", 0, "number of units (default from config)")
	loremCmd.Flags().StringVarP(&loremUnit, "unit", "u", "", "words, sentences or paragraphs (default from config)")
}

func runUUID(cmd *cobra.Command, _ []string) error {
	count := cfg.UUID.Count
	if cmd.Flags().Changed("count") {
		count = uuidCount
	}
	op, err := runner.GenerateUUIDs(cmd.Context(), count)
	return emit(cmd, op, err)
}

func runLorem(cmd *cobra.Command, _ []string) error {
	unit, err := loremx.ParseUnit(stringx.FirstNonBlank(loremUnit, cfg.Lorem.Unit))
	if err != nil {
		return err
	}

	count := cfg.Lorem.Count
	if cmd.Flags().Changed("count") {
		count = loremCount
	}
	op, err := runner.GenerateLorem(cmd.Context(), count, unit)
	return emit(cmd, op, err)
}

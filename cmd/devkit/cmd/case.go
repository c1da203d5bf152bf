package cmd

import (
	"github.com/spf13/cobra"

	"github.com/msto63/devkit/foundation/utils/stringx"
)

var caseCmd = &cobra.Command{
	Use:   "case <format> [text]",
	Short: "Convert text between case formats",
	Long: `Converts text to lowercase, uppercase, titlecase, camelcase,
snakecase, kebabcase or pascalcase.

Examples:
  devkit case camel "hello world"
  echo "Hello World" | devkit case snake_case`,
	Args: cobra.MinimumNArgs(1),
	RunE: runCase,
}

func init() {
	rootCmd.AddCommand(caseCmd)
}

func runCase(cmd *cobra.Command, args []string) error {
	format, err := parseCaseArg(args[0])
	if err != nil {
		return err
	}
	text, err := readInput(cmd, args[1:])
	if err != nil {
		return err
	}
	op, err := runner.ConvertCase(cmd.Context(), text, format)
	return emit(cmd, op, err)
}

// parseCaseArg also accepts the short forms "lower", "upper", "title" etc.
func parseCaseArg(s string) (stringx.CaseFormat, error) {
	if f, err := stringx.ParseCaseFormat(s); err == nil {
		return f, nil
	}
	return stringx.ParseCaseFormat(s + "case")
}

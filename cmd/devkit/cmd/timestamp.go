package cmd

import (
	"github.com/spf13/cobra"
)

var timestampCmd = &cobra.Command{
	Use:   "timestamp",
	Short: "Convert between Unix timestamps and dates",
	Long: `Converts between Unix timestamps and human-readable dates.

Timestamps of 10,000,000,000 and above are read as milliseconds.

Examples:
  devkit timestamp to-date 1700000000
  devkit timestamp to-unix "2023-11-14T22:13:20Z"
  devkit timestamp now`,
}

var toDateCmd = &cobra.Command{
	Use:   "to-date <timestamp>",
	Short: "Convert a Unix timestamp to an ISO 8601 date",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		op, err := runner.TimestampToDate(cmd.Context(), args[0])
		return emitDetails(cmd, op, err, "unit", "utc", "locale", "relative")
	},
}

var toUnixCmd = &cobra.Command{
	Use:   "to-unix [date]",
	Short: "Convert a date string to Unix seconds",
	RunE: func(cmd *cobra.Command, args []string) error {
		date, err := readInput(cmd, args)
		if err != nil {
			return err
		}
		op, err := runner.DateToTimestamp(cmd.Context(), date)
		return emitDetails(cmd, op, err, "iso", "milliseconds", "relative")
	},
}

var nowCmd = &cobra.Command{
	Use:   "now",
	Short: "Print the current Unix timestamp",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		op, err := runner.Now(cmd.Context())
		return emitDetails(cmd, op, err, "iso", "milliseconds", "locale")
	},
}

func init() {
	rootCmd.AddCommand(timestampCmd)
	timestampCmd.AddCommand(toDateCmd, toUnixCmd, nowCmd)
}

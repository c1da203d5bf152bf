package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"github.com/spf13/cobra"

	mdwerror "github.com/msto63/devkit/foundation/core/error"
	mdwerrors "github.com/msto63/devkit/foundation/core/errors"
	"github.com/msto63/devkit/foundation/utils/timex"
	"github.com/msto63/devkit/internal/toolkit"
	"github.com/msto63/devkit/pkg/core/config"
	"github.com/msto63/devkit/pkg/core/logging"
)

const (
	outputText = "text"
	outputJSON = "json"
)

var (
	cfgFile    string
	outputMode string
	copyResult bool
	verbose    bool

	cfg      *config.Config
	logger   *logging.Logger
	runner   *toolkit.Runner
	registry = toolkit.DefaultRegistry()
)

var rootCmd = &cobra.Command{
	Use:   "devkit",
	Short: "devkit - Developer Conversion Toolkit",
	Long: `devkit bundles small conversion and generation tools for everyday
development work. All tools run locally.

Tools:
  case       - Case Converter
  uuid       - UUID Generator
  base64     - Base64 Converter
  url        - URL Encoder
  timestamp  - Timestamp Converter
  hash       - Hash Generator
  lorem      - Lorem Ipsum Generator
  base       - Number Base Converter

Text input is read from the arguments or, if none are given, from stdin.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
}

// Execute runs the command tree and prints the error, if any
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		printError(rootCmd.ErrOrStderr(), err)
		return err
	}
	return nil
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ./configs/devkit.toml, ./devkit.toml, ~/.config/devkit/config.toml)")
	rootCmd.PersistentFlags().StringVarP(&outputMode, "output", "o", "", "output format: text or json (default from config)")
	rootCmd.PersistentFlags().BoolVarP(&copyResult, "copy", "c", false, "copy the result to the clipboard")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log operations at debug level")
}

// setup loads the configuration and builds the logger and runner
func setup(cmd *cobra.Command, _ []string) error {
	loaded, err := config.Discover(cfgFile)
	if err != nil {
		return err
	}
	cfg = loaded

	if outputMode == "" {
		outputMode = cfg.General.Output
	}
	if outputMode != outputText && outputMode != outputJSON {
		return mdwerrors.Unsupported(mdwerrors.ModuleToolkit, "output", outputMode)
	}
	copyResult = copyResult || cfg.General.Copy

	logger = logging.NewFromConfig(logging.LoggerConfig{
		ServiceName: "devkit",
		Level:       cfg.General.LogLevel,
		Format:      cfg.General.LogFormat,
		Output:      cmd.ErrOrStderr(),
	})
	if verbose {
		logger = logger.WithLevel(logging.LevelDebug)
	}
	if path := cfg.Path(); path != "" {
		logger.Debug("configuration loaded", "path", path)
	}

	loc, err := timex.LoadLocation(cfg.General.Timezone)
	if err != nil {
		return err
	}
	runner = toolkit.NewRunner(
		toolkit.WithLogger(logger.Logger),
		toolkit.WithLocale(cfg.General.Locale),
		toolkit.WithLocation(loc),
	)
	return nil
}

// readInput joins args, or reads stdin when there are none. A single
// trailing line break from stdin is removed.
func readInput(cmd *cobra.Command, args []string) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}

	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", mdwerrors.NewErrorBuilder(mdwerrors.ModuleToolkit).
			Operation("readInput").
			Message("failed to read stdin").
			Cause(err).
			Code(mdwerror.CodeUnknown).
			Build()
	}
	text := strings.TrimSuffix(string(data), "\n")
	return strings.TrimSuffix(text, "\r"), nil
}

func printError(w io.Writer, err error) {
	label := fmt.Sprintf("Error [%s]:", mdwerror.GetCode(err))
	fmt.Fprintf(w, "%s %s\n", errorStyle.Render(label), err.Error())
}

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	mdwerrors "github.com/msto63/devkit/foundation/core/errors"
	"github.com/msto63/devkit/foundation/utils/slicex"
	"github.com/msto63/devkit/foundation/utils/stringx"
	"github.com/msto63/devkit/internal/toolkit"
	"github.com/msto63/devkit/pkg/core/version"
)

var toolsCategory string

var toolsCmd = &cobra.Command{
	Use:   "tools",
	Short: "List the available tools",
	Args:  cobra.NoArgs,
	RunE:  runTools,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		info := version.Get()
		if outputMode == outputJSON {
			return writeJSON(cmd.OutOrStdout(), info)
		}
		fmt.Fprintln(cmd.OutOrStdout(), info.String())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(toolsCmd)
	rootCmd.AddCommand(versionCmd)

	toolsCmd.Flags().StringVar(&toolsCategory, "category", "", "only list tools of this category")
}

type toolEntry struct {
	toolkit.Tool
	Version string `json:"version"`
}

func runTools(cmd *cobra.Command, _ []string) error {
	tools := registry.Sorted()
	if toolsCategory != "" {
		category := toolkit.Category(toolsCategory)
		if !slicex.Contains(toolkit.Categories(), category) {
			return mdwerrors.Unsupported(mdwerrors.ModuleToolkit, "tools", toolsCategory)
		}
		tools = slicex.Filter(tools, func(t toolkit.Tool) bool { return t.Category == category })
	}

	entries := slicex.Map(tools, func(t toolkit.Tool) toolEntry {
		return toolEntry{Tool: t, Version: version.ToolVersion(t.ID)}
	})

	out := cmd.OutOrStdout()
	if outputMode == outputJSON {
		return writeJSON(out, entries)
	}

	groups := slicex.GroupBy(entries, func(e toolEntry) toolkit.Category { return e.Category })
	for _, category := range toolkit.Categories() {
		group, ok := groups[category]
		if !ok {
			continue
		}
		fmt.Fprintln(out, titleStyle.Render(string(category)))
		for _, e := range group {
			fmt.Fprintf(out, "  %s%s %s\n",
				idStyle.Render(e.Command),
				e.Name,
				mutedStyle.Render(fmt.Sprintf("P%d v%s", e.Priority, e.Version)))
			fmt.Fprintf(out, "  %s%s\n", idStyle.Render(""), stringx.Truncate(e.Description, 64, "..."))
		}
	}
	return nil
}

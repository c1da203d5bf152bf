package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/msto63/devkit/internal/toolkit"
)

type codecFunc func(r *toolkit.Runner, ctx context.Context, text string) (*toolkit.Operation, error)

// newCodecCommand builds a command with encode and decode subcommands
func newCodecCommand(use, short string, encode, decode codecFunc) *cobra.Command {
	parent := &cobra.Command{
		Use:   use,
		Short: short,
	}

	for _, sub := range []struct {
		name string
		fn   codecFunc
	}{
		{"encode", encode},
		{"decode", decode},
	} {
		fn := sub.fn
		parent.AddCommand(&cobra.Command{
			Use:   sub.name + " [text]",
			Short: fmt.Sprintf("%s %s", sub.name, use),
			RunE: func(cmd *cobra.Command, args []string) error {
				text, err := readInput(cmd, args)
				if err != nil {
					return err
				}
				op, err := fn(runner, cmd.Context(), text)
				return emit(cmd, op, err)
			},
		})
	}
	return parent
}

func init() {
	rootCmd.AddCommand(newCodecCommand("base64", "Encode and decode Base64 strings",
		(*toolkit.Runner).EncodeBase64, (*toolkit.Runner).DecodeBase64))
	rootCmd.AddCommand(newCodecCommand("url", "Encode and decode URL strings",
		(*toolkit.Runner).EncodeURL, (*toolkit.Runner).DecodeURL))
}

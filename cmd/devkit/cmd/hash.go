package cmd

import (
	"github.com/spf13/cobra"

	"github.com/msto63/devkit/foundation/utils/hashx"
	"github.com/msto63/devkit/foundation/utils/stringx"
)

var (
	hashAlgorithm string
	hashAll       bool
)

var hashCmd = &cobra.Command{
	Use:   "hash [text]",
	Short: "Generate hash digests",
	Long: `Generates the hex digest of the UTF-8 input.

Algorithms: MD5, SHA-1, SHA-256, SHA-512, SHA3-256, SHA3-512, BLAKE2b-256.
MD5 and SHA-1 are provided for checksums only.

Examples:
  devkit hash "hello"
  devkit hash --algorithm md5 "hello"
  devkit hash --all < file.txt`,
	RunE: runHash,
}

func init() {
	rootCmd.AddCommand(hashCmd)

	hashCmd.Flags().StringVarP(&hashAlgorithm, "algorithm", "a", "", "hash algorithm (default from config)")
	hashCmd.Flags().BoolVar(&hashAll, "all", false, "digest with every algorithm")
}

func runHash(cmd *cobra.Command, args []string) error {
	text, err := readInput(cmd, args)
	if err != nil {
		return err
	}
	if hashAll {
		op, err := runner.HashAll(cmd.Context(), text)
		return emit(cmd, op, err)
	}

	alg, err := hashx.ParseAlgorithm(stringx.FirstNonBlank(hashAlgorithm, cfg.Hash.Algorithm))
	if err != nil {
		return err
	}
	op, err := runner.Hash(cmd.Context(), text, alg)
	return emit(cmd, op, err)
}

package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	mdwerror "github.com/msto63/devkit/foundation/core/error"
	mdwerrors "github.com/msto63/devkit/foundation/core/errors"
	"github.com/msto63/devkit/internal/toolkit"
)

// clipboardWrite is replaced in tests
var clipboardWrite = clipboard.WriteAll

// emit prints an operation in the selected output format and copies the
// result when requested. The operation error, if any, is returned.
func emit(cmd *cobra.Command, op *toolkit.Operation, opErr error) error {
	if op == nil {
		return opErr
	}
	out := cmd.OutOrStdout()

	if outputMode == outputJSON {
		if err := writeJSON(out, op); err != nil {
			return err
		}
	} else if opErr == nil {
		fmt.Fprintln(out, op.OutputValue)
	}
	if opErr != nil {
		return opErr
	}

	if copyResult {
		if err := copyToClipboard(op.OutputValue); err != nil {
			logger.Warn("clipboard unavailable", "error", err.Error())
			return err
		}
		if outputMode == outputText {
			fmt.Fprintln(cmd.ErrOrStderr(), successStyle.Render("Copied to clipboard"))
		}
	}
	return nil
}

// emitDetails prints op and, in text mode, the listed metadata entries
func emitDetails(cmd *cobra.Command, op *toolkit.Operation, opErr error, keys ...string) error {
	if err := emit(cmd, op, opErr); err != nil || outputMode != outputText {
		return err
	}
	out := cmd.OutOrStdout()
	for _, key := range keys {
		if value, ok := op.Metadata[key]; ok {
			fmt.Fprintf(out, "%s%v\n", labelStyle.Render(key), value)
		}
	}
	return nil
}

func writeJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return mdwerrors.ConversionFailed(mdwerrors.ModuleToolkit, "writeJSON", err)
	}
	return nil
}

func copyToClipboard(text string) error {
	if err := clipboardWrite(text); err != nil {
		return mdwerrors.NewErrorBuilder(mdwerrors.ModuleToolkit).
			Operation("copyToClipboard").
			Message("failed to copy result to clipboard").
			Cause(err).
			Code(mdwerror.CodeClipboardFailed).
			Build()
	}
	return nil
}

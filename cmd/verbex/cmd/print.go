package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/KromDaniel/verbex/internal/types"
)

var (
	errorStyle   = color.New(color.FgRed, color.Bold)
	labelStyle   = color.New(color.FgCyan, color.Bold)
	patternStyle = color.New(color.FgGreen, color.Bold)
	mutedStyle   = color.New(color.FgHiBlack)
)

func printError(w io.Writer, err error) {
	errorStyle.Fprint(w, "ERROR: ")
	fmt.Fprintln(w, message(err))
}

// message strips the stage prefix from expression errors.
func message(err error) string {
	var verr *types.Error
	if !errors.As(err, &verr) {
		return err.Error()
	}
	if verr.Offset >= 0 {
		return fmt.Sprintf("%s (offset %d)", verr.Message, verr.Offset)
	}
	return verr.Message
}

func printField(w io.Writer, label, value string) {
	labelStyle.Fprintf(w, "%-8s ", label+":")
	fmt.Fprintln(w, value)
}

// readSource returns the expression named by --file, the joined arguments,
// or standard input, in that order.
func readSource(cmd *cobra.Command, args []string, file string) (string, error) {
	switch {
	case file != "":
		data, err := os.ReadFile(file)
		if err != nil {
			return "", fmt.Errorf("failed to read source: %w", err)
		}
		return string(data), nil
	case len(args) > 0:
		return strings.Join(args, " "), nil
	default:
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", fmt.Errorf("failed to read source: %w", err)
		}
		return string(data), nil
	}
}

package cmd

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/KromDaniel/verbex/internal/emitter"
)

var commandsCmd = &cobra.Command{
	Use:   "commands [name]",
	Short: "List the commands of the expression language",
	Long: `Lists every command with its aliases, argument count, leading integer
arguments and emitted syntax. With a name, only that command is shown.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		list := emitter.Commands()
		if len(args) == 1 {
			c, ok := emitter.Lookup(args[0])
			if !ok {
				return fmt.Errorf("unknown command: %s", args[0])
			}
			list = []emitter.Command{c}
		}
		return printCommands(cmd.OutOrStdout(), list)
	},
}

func printCommands(w io.Writer, list []emitter.Command) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "COMMAND\tALIASES\tARGUMENTS\tINTEGERS\tDESCRIPTION")
	for _, c := range list {
		aliases := strings.Join(c.Aliases, " ")
		if aliases == "" {
			aliases = "-"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%d\t%s\n", c.Name, aliases, c.Arity, c.Counts, c.Summary)
	}
	return tw.Flush()
}

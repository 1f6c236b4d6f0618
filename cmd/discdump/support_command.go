package main

import (
	"fmt"
	"maps"
	"slices"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"discdump/internal/programs"
)

func newSupportCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "support [command]",
		Short: "List the flags each command accepts",
		Long: "Without an argument, list every command with its flag count. With a command " +
			"(quote two-word Aaru verbs), list the flags it accepts in declared order.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			program, err := ctx.program()
			if err != nil {
				return err
			}
			empty, err := programs.New(program)
			if err != nil {
				return err
			}
			support := empty.CommandSupport()

			if len(args) == 1 {
				command := strings.TrimSpace(args[0])
				flags, ok := support[command]
				if !ok {
					return fmt.Errorf("%s has no command %q", program.DisplayName(), command)
				}
				if ctx.wantJSON() {
					return writeJSON(cmd, map[string][]string{command: flags})
				}
				rows := make([][]string, len(flags))
				for i, flag := range flags {
					rows[i] = []string{flag}
				}
				fmt.Fprintln(cmd.OutOrStdout(), renderTable(columns("Flag"), rows))
				return nil
			}

			if ctx.wantJSON() {
				return writeJSON(cmd, support)
			}
			rows := make([][]string, 0, len(support))
			for _, command := range slices.Sorted(maps.Keys(support)) {
				label := command
				if label == "" {
					label = "(none)"
				}
				rows = append(rows, []string{label, strconv.Itoa(len(support[command]))})
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable([]column{{header: "Command"}, {header: "Flags", right: true}}, rows))
			return nil
		},
	}
}

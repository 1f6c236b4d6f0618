package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"discdump/internal/execctx"
	"discdump/internal/presets"
)

func newPresetCommand(ctx *commandContext) *cobra.Command {
	presetCmd := &cobra.Command{
		Use:   "preset",
		Short: "Manage saved parameter presets",
	}
	presetCmd.AddCommand(newPresetSaveCommand(ctx))
	presetCmd.AddCommand(newPresetListCommand(ctx))
	presetCmd.AddCommand(newPresetShowCommand(ctx))
	presetCmd.AddCommand(newPresetDeleteCommand(ctx))
	return presetCmd
}

// withPresets opens the preset store for the duration of fn.
func withPresets(ctx *commandContext, cmd *cobra.Command, fn func(*presets.Store, execctx.Program) error) error {
	program, err := ctx.program()
	if err != nil {
		return err
	}
	store, err := ctx.openPresets(cmd)
	if err != nil {
		return err
	}
	defer store.Close()
	return fn(store, program)
}

func newPresetSaveCommand(ctx *commandContext) *cobra.Command {
	var description string
	cmd := &cobra.Command{
		Use:   "save NAME -- PARAMS...",
		Short: "Normalize and store a parameter string",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withPresets(ctx, cmd, func(store *presets.Store, program execctx.Program) error {
				saved, err := store.Save(cmd.Context(), program, args[0], joinParams(args[1:]), description)
				if err != nil {
					return err
				}
				if ctx.wantJSON() {
					return writeJSON(cmd, saved)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Saved %s preset %q: %s\n", program.DisplayName(), saved.Name, saved.Parameters)
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&description, "description", "", "Free-form note stored with the preset")
	return cmd
}

func newPresetListCommand(ctx *commandContext) *cobra.Command {
	var all bool
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List saved presets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withPresets(ctx, cmd, func(store *presets.Store, program execctx.Program) error {
				if all {
					program = ""
				}
				list, err := store.List(cmd.Context(), program)
				if err != nil {
					return err
				}
				if ctx.wantJSON() {
					if list == nil {
						list = []presets.Preset{}
					}
					return writeJSON(cmd, list)
				}
				out := cmd.OutOrStdout()
				if len(list) == 0 {
					fmt.Fprintln(out, "No presets saved")
					return nil
				}
				rows := make([][]string, len(list))
				for i, p := range list {
					rows[i] = []string{string(p.Program), p.Name, p.Parameters, p.UpdatedAt.Local().Format(time.DateTime)}
				}
				fmt.Fprintln(out, renderTable(columns("Program", "Name", "Parameters", "Updated"), rows))
				return nil
			})
		},
	}
	cmd.Flags().BoolVarP(&all, "all", "a", false, "List presets for every program")
	return cmd
}

func newPresetShowCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "show NAME",
		Short: "Show a preset and what its parameters set",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withPresets(ctx, cmd, func(store *presets.Store, program execctx.Program) error {
				preset, err := store.Get(cmd.Context(), program, args[0])
				if err != nil {
					return err
				}
				parsed, err := store.Context(preset)
				if err != nil {
					return err
				}
				if ctx.wantJSON() {
					return writeJSON(cmd, newContextView(parsed))
				}
				out := cmd.OutOrStdout()
				fmt.Fprintf(out, "Preset:     %s\n", preset.Name)
				if preset.Description != "" {
					fmt.Fprintf(out, "Note:       %s\n", preset.Description)
				}
				printContext(out, parsed)
				return nil
			})
		},
	}
}

func newPresetDeleteCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "delete NAME",
		Short: "Delete a preset",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withPresets(ctx, cmd, func(store *presets.Store, program execctx.Program) error {
				if err := store.Delete(cmd.Context(), program, args[0]); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Deleted %s preset %q\n", program.DisplayName(), args[0])
				return nil
			})
		},
	}
}

package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"discdump/internal/logging"
)

func newParseCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "parse -- PARAMS...",
		Short: "Parse a parameter string and show what it sets",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			program, err := ctx.program()
			if err != nil {
				return err
			}
			reg, err := ctx.registry(cmd)
			if err != nil {
				return err
			}
			parsed, err := reg.Parse(program, joinParams(args))
			if err != nil {
				return err
			}
			if ctx.wantJSON() {
				return writeJSON(cmd, newContextView(parsed))
			}
			printContext(cmd.OutOrStdout(), parsed)
			return nil
		},
	}
}

func newNormalizeCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "normalize -- PARAMS...",
		Short: "Rewrite a parameter string in canonical order and spelling",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			program, err := ctx.program()
			if err != nil {
				return err
			}
			reg, err := ctx.registry(cmd)
			if err != nil {
				return err
			}
			normalized, validateErr := reg.Normalize(program, joinParams(args))
			if normalized == "" && validateErr != nil {
				return validateErr
			}
			if ctx.wantJSON() {
				if err := writeJSON(cmd, map[string]string{"program": string(program), "parameters": normalized}); err != nil {
					return err
				}
			} else {
				fmt.Fprintln(cmd.OutOrStdout(), normalized)
			}
			return validateErr
		},
	}
}

func newValidateCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "validate -- PARAMS...",
		Short: "Check that every flag is accepted by the command it follows",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			program, err := ctx.program()
			if err != nil {
				return err
			}
			reg, err := ctx.registry(cmd)
			if err != nil {
				return err
			}
			parsed, err := reg.Parse(program, joinParams(args))
			if err != nil {
				return err
			}
			if err := parsed.Validate(); err != nil {
				logger, _ := ctx.ensureLogger(cmd.ErrOrStderr())
				logging.WarnWithContext(logger, "parameters failed validation", "validation_failed",
					"remove the listed flags or switch to a command that accepts them",
					logging.String(logging.FieldProgram, string(program)),
					logging.Error(err),
				)
				return fmt.Errorf("%s parameters invalid:\n%w", program.DisplayName(), err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s parameters valid\n", program.DisplayName())
			return nil
		},
	}
}

func newDetectCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "detect -- PARAMS...",
		Short: "Guess which program a parameter string was written for",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			reg, err := ctx.registry(cmd)
			if err != nil {
				return err
			}
			detected, ok := reg.Detect(joinParams(args))
			if !ok {
				return errors.New("no supported program recognises these parameters")
			}
			if ctx.wantJSON() {
				return writeJSON(cmd, newContextView(detected))
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s (%s)\n", detected.Program().DisplayName(), detected.Program())
			return nil
		},
	}
}

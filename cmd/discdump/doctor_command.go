package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"discdump/internal/preflight"
)

var errDoctorFailed = errors.New("one or more checks failed")

type doctorResult struct {
	Name     string `json:"name"`
	Passed   bool   `json:"passed"`
	Optional bool   `json:"optional"`
	Detail   string `json:"detail,omitempty"`
}

func newDoctorCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Check directories and dumping program binaries",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			results := preflight.RunAll(cfg)
			failed := preflight.Failed(results)

			if ctx.wantJSON() {
				view := make([]doctorResult, len(results))
				for i, r := range results {
					view[i] = doctorResult(r)
				}
				if err := writeJSON(cmd, view); err != nil {
					return err
				}
			} else {
				printer := newStatusPrinter(cmd.OutOrStdout())
				printer.section("Environment")
				for _, r := range results {
					printer.result(r)
				}
			}

			if len(failed) > 0 {
				return fmt.Errorf("%w: %d of %d", errDoctorFailed, len(failed), len(results))
			}
			return nil
		},
	}
}

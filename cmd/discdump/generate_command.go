package main

import (
	"fmt"
	"path/filepath"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"discdump/internal/execctx"
	"discdump/internal/media"
	"discdump/internal/preflight"
	"discdump/internal/settings"
)

type generateOptions struct {
	mediaType string
	system    string
	drive     string
	speed     int
	filename  string
	options   []string
	check     bool
}

func newGenerateCommand(ctx *commandContext) *cobra.Command {
	var opts generateOptions

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Build default parameters for a media type from configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			program, err := ctx.program()
			if err != nil {
				return err
			}
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			s, err := opts.apply(cmd, cfg.Settings(), cfg.Paths.OutputDir)
			if err != nil {
				return err
			}
			reg, err := ctx.registry(cmd)
			if err != nil {
				return err
			}
			generated, err := reg.FromSettings(program, s)
			if err != nil {
				return err
			}
			if generated.Generate() == "" {
				return fmt.Errorf("%s cannot dump %s media", program.DisplayName(), s.MediaType.LongName())
			}
			if opts.check {
				if result := preflight.CheckOutput(generated); !result.Passed {
					return fmt.Errorf("%s: %s", result.Name, result.Detail)
				}
			}
			if ctx.wantJSON() {
				if err := writeJSON(cmd, newContextView(generated)); err != nil {
					return err
				}
			} else {
				fmt.Fprintln(cmd.OutOrStdout(), generated.Generate())
			}
			if err := generated.Validate(); err != nil {
				return fmt.Errorf("%s parameters incomplete: %w", program.DisplayName(), err)
			}
			return nil
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&opts.mediaType, "media-type", "m", "", "Media type (cdrom, dvd, bluray, ...)")
	flags.StringVarP(&opts.system, "system", "s", "", "Cataloguing system, e.g. sony-playstation")
	flags.StringVarP(&opts.drive, "drive", "d", "", "Drive path or letter")
	flags.IntVar(&opts.speed, "speed", 0, "Drive speed (0 leaves it unset)")
	flags.StringVarP(&opts.filename, "filename", "o", "", "Output image path, relative to the output directory")
	flags.StringArrayVar(&opts.options, "option", nil, "Program option as key=value, e.g. redumper.reread_count=5 (repeatable)")
	flags.BoolVar(&opts.check, "check", false, "Fail when the image directory is missing or not writable")
	return cmd
}

// apply overlays the flags the user changed onto the configured settings.
func (o generateOptions) apply(cmd *cobra.Command, s execctx.Settings, outputDir string) (execctx.Settings, error) {
	flags := cmd.Flags()
	if flags.Changed("media-type") {
		t, ok := media.ParseType(o.mediaType)
		if !ok {
			return s, fmt.Errorf("unknown media type %q", o.mediaType)
		}
		s.MediaType = t
	}
	if flags.Changed("system") {
		if strings.TrimSpace(o.system) == "" {
			s.System = media.SystemNone
		} else {
			system, ok := media.ParseSystem(o.system)
			if !ok {
				return s, fmt.Errorf("unknown system %q", o.system)
			}
			s.System = system
		}
	}
	if flags.Changed("drive") {
		s.DrivePath = o.drive
	}
	if flags.Changed("speed") {
		if o.speed < 0 {
			return s, fmt.Errorf("speed must not be negative")
		}
		s.DriveSpeed = o.speed
	}
	if flags.Changed("filename") {
		s.Filename = o.filename
		if o.filename != "" && !filepath.IsAbs(o.filename) && outputDir != "" {
			s.Filename = filepath.Join(outputDir, o.filename)
		}
	}
	if len(o.options) > 0 {
		s.Options = s.Options.Clone()
		known := settings.KnownKeys()
		for _, raw := range o.options {
			key, value, ok := strings.Cut(raw, "=")
			key = strings.ToLower(strings.TrimSpace(key))
			if !ok || key == "" {
				return s, fmt.Errorf("option %q: want key=value", raw)
			}
			if !slices.Contains(known, key) {
				return s, fmt.Errorf("option %q: unknown key", key)
			}
			s.Options[key] = strings.TrimSpace(value)
		}
	}
	return s, nil
}

package config

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"discdump/internal/execctx"
	"discdump/internal/media"
	"discdump/internal/settings"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateDumping(); err != nil {
		return err
	}
	if err := c.validateOptions(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validateDumping() error {
	d := c.Dumping
	if _, ok := execctx.ParseProgram(d.Program); !ok {
		return fmt.Errorf("dumping.program: unsupported value %q (want redumper, dic or aaru)", d.Program)
	}
	if d.MediaType != "" {
		if _, ok := media.ParseType(d.MediaType); !ok {
			return fmt.Errorf("dumping.media_type: unsupported value %q", d.MediaType)
		}
	}
	if d.System != "" {
		if _, ok := media.ParseSystem(d.System); !ok {
			return fmt.Errorf("dumping.system: unsupported value %q", d.System)
		}
	}
	if d.Speed < 0 || d.Speed > maxDriveSpeed {
		return fmt.Errorf("dumping.speed must be between 0 and %d", maxDriveSpeed)
	}
	return nil
}

func (c *Config) validateOptions() error {
	known := settings.KnownKeys()
	var errs []error
	for _, program := range sortedKeys(c.Options) {
		if _, ok := execctx.ParseProgram(program); !ok {
			errs = append(errs, fmt.Errorf("options.%s: unknown program", program))
			continue
		}
		table := c.Options[program]
		for _, key := range sortedKeys(table) {
			full := program + "." + key
			if !slices.Contains(known, full) {
				errs = append(errs, fmt.Errorf("options.%s: unknown option", full))
				continue
			}
			if err := validateOptionValue(full, table[key]); err != nil {
				errs = append(errs, err)
			}
		}
	}
	return errors.Join(errs...)
}

func validateOptionValue(key string, value any) error {
	switch v := value.(type) {
	case bool, int64:
		return nil
	case string:
		switch key {
		case settings.RedumperReadMethod:
			return oneOf(key, v, settings.RedumperReadMethods)
		case settings.RedumperSectorOrder:
			return oneOf(key, v, settings.RedumperSectorOrders)
		}
		return nil
	default:
		return fmt.Errorf("options.%s: unsupported value type %T", key, value)
	}
}

func oneOf(key, value string, allowed []string) error {
	for _, candidate := range allowed {
		if strings.EqualFold(candidate, value) {
			return nil
		}
	}
	return fmt.Errorf("options.%s: %q is not one of %s", key, value, strings.Join(allowed, ", "))
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format: unsupported value %q", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level: unsupported value %q", c.Logging.Level)
	}
	return nil
}

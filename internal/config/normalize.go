package config

import (
	"fmt"
	"strings"

	"discdump/internal/execctx"
	"discdump/internal/media"
)

func (c *Config) normalize() error {
	if err := c.normalizePaths(); err != nil {
		return err
	}
	c.normalizeDumping()
	c.normalizeOptions()
	c.normalizeTools()
	return c.normalizeLogging()
}

func (c *Config) normalizePaths() error {
	if strings.TrimSpace(c.Paths.OutputDir) == "" {
		c.Paths.OutputDir = defaultOutputDir
	}
	if strings.TrimSpace(c.Paths.DataDir) == "" {
		c.Paths.DataDir = defaultDataDir
	}
	var err error
	if c.Paths.OutputDir, err = expandPath(c.Paths.OutputDir); err != nil {
		return fmt.Errorf("paths.output_dir: %w", err)
	}
	if c.Paths.DataDir, err = expandPath(c.Paths.DataDir); err != nil {
		return fmt.Errorf("paths.data_dir: %w", err)
	}
	return nil
}

// normalizeDumping rewrites recognised names into their canonical spelling
// and leaves unrecognised ones for Validate to report.
func (c *Config) normalizeDumping() {
	d := &c.Dumping
	d.Program = strings.TrimSpace(d.Program)
	if d.Program == "" {
		d.Program = defaultProgram
	}
	if p, ok := execctx.ParseProgram(d.Program); ok {
		d.Program = string(p)
	}
	d.Drive = strings.TrimSpace(d.Drive)
	d.Filename = strings.TrimSpace(d.Filename)

	d.MediaType = strings.TrimSpace(d.MediaType)
	if t, ok := media.ParseType(d.MediaType); ok {
		d.MediaType = string(t)
	}
	d.System = strings.TrimSpace(d.System)
	if s, ok := media.ParseSystem(d.System); ok {
		d.System = string(s)
	}
}

func (c *Config) normalizeOptions() {
	if c.Options == nil {
		c.Options = Options{}
		return
	}
	normalized := make(Options, len(c.Options))
	for program, table := range c.Options {
		name := strings.ToLower(strings.TrimSpace(program))
		if p, ok := execctx.ParseProgram(name); ok {
			name = string(p)
		}
		dst := normalized[name]
		if dst == nil {
			dst = make(map[string]any, len(table))
			normalized[name] = dst
		}
		for key, value := range table {
			dst[strings.ToLower(strings.TrimSpace(key))] = value
		}
	}
	c.Options = normalized
}

func (c *Config) normalizeTools() {
	if strings.TrimSpace(c.Tools.Redumper) == "" {
		c.Tools.Redumper = defaultRedumperBinary
	}
	if strings.TrimSpace(c.Tools.DiscImageCreator) == "" {
		c.Tools.DiscImageCreator = defaultDICBinary
	}
	if strings.TrimSpace(c.Tools.Aaru) == "" {
		c.Tools.Aaru = defaultAaruBinary
	}
}

func (c *Config) normalizeLogging() error {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
	if strings.TrimSpace(c.Logging.File) == "" {
		c.Logging.File = ""
		return nil
	}
	var err error
	if c.Logging.File, err = expandPath(c.Logging.File); err != nil {
		return fmt.Errorf("logging.file: %w", err)
	}
	return nil
}

package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"discdump/internal/execctx"
	"discdump/internal/media"
	"discdump/internal/settings"
)

//go:embed sample_config.toml
var sampleConfig string

// Paths contains output and state directories.
type Paths struct {
	OutputDir string `toml:"output_dir"`
	DataDir   string `toml:"data_dir"`
}

// Dumping holds the selections the defaulting pipeline starts from.
type Dumping struct {
	Program   string `toml:"program"`
	Drive     string `toml:"drive"`
	Speed     int    `toml:"speed"`
	MediaType string `toml:"media_type"`
	System    string `toml:"system"`
	Filename  string `toml:"filename"`
}

// Tools names the executable for each dumping program.
type Tools struct {
	Redumper         string `toml:"redumper"`
	DiscImageCreator string `toml:"discimagecreator"`
	Aaru             string `toml:"aaru"`
}

// Logging contains configuration for log output. An empty File disables the
// JSON log file.
type Logging struct {
	Format string `toml:"format"`
	Level  string `toml:"level"`
	File   string `toml:"file"`
}

// Options holds per-program option tables such as [options.redumper]. Keys
// inside a table omit the program prefix.
type Options map[string]map[string]any

// Config encapsulates all configuration values for discdump.
type Config struct {
	Paths   Paths   `toml:"paths"`
	Dumping Dumping `toml:"dumping"`
	Options Options `toml:"options"`
	Tools   Tools   `toml:"tools"`
	Logging Logging `toml:"logging"`
}

// DefaultConfigPath returns the absolute path to the default configuration
// file location.
func DefaultConfigPath() (string, error) {
	return expandPath(defaultConfigPath)
}

// Load locates, parses, and validates a configuration file. The returned
// config has all path fields expanded and every name in canonical form.
func Load(path string) (*Config, string, bool, error) {
	cfg := Default()

	resolvedPath, exists, err := resolveConfigPath(path)
	if err != nil {
		return nil, "", false, err
	}

	if exists {
		file, err := os.Open(resolvedPath)
		if err != nil {
			return nil, "", false, fmt.Errorf("open config: %w", err)
		}
		defer file.Close()

		decoder := toml.NewDecoder(file)
		decoder.DisallowUnknownFields()
		if err := decoder.Decode(&cfg); err != nil {
			return nil, "", false, fmt.Errorf("parse config: %w", err)
		}
	}

	if drive, ok := os.LookupEnv("DISCDUMP_DRIVE"); ok && strings.TrimSpace(drive) != "" {
		cfg.Dumping.Drive = drive
	}

	if err := cfg.normalize(); err != nil {
		return nil, "", false, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, "", false, err
	}
	return &cfg, resolvedPath, exists, nil
}

func resolveConfigPath(path string) (string, bool, error) {
	if path != "" {
		expanded, err := expandPath(path)
		if err != nil {
			return "", false, err
		}
		if _, err := os.Stat(expanded); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return expanded, false, nil
			}
			return "", false, fmt.Errorf("stat config: %w", err)
		}
		return expanded, true, nil
	}

	defaultPath, err := DefaultConfigPath()
	if err != nil {
		return "", false, err
	}
	projectPath, err := filepath.Abs(projectConfigFilename)
	if err != nil {
		return "", false, err
	}

	if info, err := os.Stat(defaultPath); err == nil && !info.IsDir() {
		return defaultPath, true, nil
	}
	if info, err := os.Stat(projectPath); err == nil && !info.IsDir() {
		return projectPath, true, nil
	}
	return defaultPath, false, nil
}

// Program returns the configured dumping program.
func (c *Config) Program() execctx.Program {
	p, _ := execctx.ParseProgram(c.Dumping.Program)
	return p
}

// Settings converts the [dumping] and [options] sections into defaulting
// input. The filename is placed under the output directory.
func (c *Config) Settings() execctx.Settings {
	mediaType, _ := media.ParseType(c.Dumping.MediaType)
	system, _ := media.ParseSystem(c.Dumping.System)

	filename := c.Dumping.Filename
	if filename != "" && !filepath.IsAbs(filename) && c.Paths.OutputDir != "" {
		filename = filepath.Join(c.Paths.OutputDir, filename)
	}

	return execctx.Settings{
		System:     system,
		MediaType:  mediaType,
		DrivePath:  c.Dumping.Drive,
		Filename:   filename,
		DriveSpeed: c.Dumping.Speed,
		Options:    c.Options.Flatten(),
	}
}

// Flatten converts the option tables into prefixed keys, for example
// "redumper.enable_verbose".
func (o Options) Flatten() settings.Options {
	out := make(settings.Options)
	for program, table := range o {
		for key, value := range table {
			out[program+"."+key] = fmt.Sprint(value)
		}
	}
	return out
}

// Binary returns the executable name configured for p.
func (c *Config) Binary(p execctx.Program) string {
	switch p {
	case execctx.ProgramRedumper:
		return c.Tools.Redumper
	case execctx.ProgramDiscImageCreator:
		return c.Tools.DiscImageCreator
	case execctx.ProgramAaru:
		return c.Tools.Aaru
	default:
		return ""
	}
}

// PresetsPath returns the preset database location inside the data
// directory.
func (c *Config) PresetsPath() string {
	return filepath.Join(c.Paths.DataDir, presetsDatabaseFilename)
}

func expandPath(pathValue string) (string, error) {
	if pathValue == "" {
		return pathValue, nil
	}
	if strings.HasPrefix(pathValue, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		if pathValue == "~" {
			pathValue = home
		} else if len(pathValue) > 1 && (pathValue[1] == '/' || pathValue[1] == '\\') {
			pathValue = filepath.Join(home, pathValue[2:])
		}
	}
	absolute, err := filepath.Abs(filepath.Clean(pathValue))
	if err != nil {
		return "", fmt.Errorf("resolve absolute path for %q: %w", pathValue, err)
	}
	return absolute, nil
}

// ExpandPath exposes the repository path expansion rules for other packages.
func ExpandPath(pathValue string) (string, error) {
	return expandPath(pathValue)
}

// CreateSample writes a sample configuration file to path.
func CreateSample(path string) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create config directory: %w", err)
		}
	}
	if err := os.WriteFile(path, []byte(sampleConfig), 0o644); err != nil {
		return fmt.Errorf("write sample config: %w", err)
	}
	return nil
}

func sortedKeys[V any](m map[string]V) []string {
	return slices.Sorted(maps.Keys(m))
}

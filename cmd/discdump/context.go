package main

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"

	"github.com/spf13/cobra"

	"discdump/internal/config"
	"discdump/internal/execctx"
	"discdump/internal/logging"
	"discdump/internal/presets"
	"discdump/internal/programs"
)

type commandContext struct {
	configFlag   *string
	logLevelFlag *string
	programFlag  *string
	jsonFlag     *bool

	configOnce sync.Once
	config     *config.Config
	configPath string
	configSeen bool
	configErr  error

	loggerOnce sync.Once
	logger     *slog.Logger
	loggerErr  error
}

func newCommandContext(configFlag, logLevelFlag, programFlag *string, jsonFlag *bool) *commandContext {
	return &commandContext{
		configFlag:   configFlag,
		logLevelFlag: logLevelFlag,
		programFlag:  programFlag,
		jsonFlag:     jsonFlag,
	}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		cfg, path, exists, err := config.Load(flagValue(c.configFlag))
		if err != nil {
			c.configErr = err
			return
		}
		c.config = cfg
		c.configPath = path
		c.configSeen = exists
	})
	return c.config, c.configErr
}

// ensureLogger builds the logger once, writing console output to w.
func (c *commandContext) ensureLogger(w io.Writer) (*slog.Logger, error) {
	c.loggerOnce.Do(func() {
		cfg, err := c.ensureConfig()
		if err != nil {
			c.loggerErr = err
			return
		}
		effective := *cfg
		if level := flagValue(c.logLevelFlag); level != "" {
			effective.Logging.Level = level
		}
		c.logger, c.loggerErr = logging.NewFromConfig(&effective, w)
	})
	return c.logger, c.loggerErr
}

func (c *commandContext) registry(cmd *cobra.Command) (*programs.Registry, error) {
	logger, err := c.ensureLogger(cmd.ErrOrStderr())
	if err != nil {
		return nil, err
	}
	return programs.NewRegistry(logger), nil
}

// program resolves --program, falling back to the configured program.
func (c *commandContext) program() (execctx.Program, error) {
	name := flagValue(c.programFlag)
	if name == "" {
		cfg, err := c.ensureConfig()
		if err != nil {
			return "", err
		}
		name = cfg.Dumping.Program
	}
	p, ok := execctx.ParseProgram(name)
	if !ok {
		return "", fmt.Errorf("%w: %q", programs.ErrUnknownProgram, name)
	}
	return p, nil
}

func (c *commandContext) openPresets(cmd *cobra.Command) (*presets.Store, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}
	logger, err := c.ensureLogger(cmd.ErrOrStderr())
	if err != nil {
		return nil, err
	}
	return presets.Open(cmd.Context(), cfg.PresetsPath(), logger)
}

func (c *commandContext) wantJSON() bool {
	return c.jsonFlag != nil && *c.jsonFlag
}

func flagValue(flag *string) string {
	if flag == nil {
		return ""
	}
	return strings.TrimSpace(*flag)
}

func shouldSkipConfig(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations != nil && c.Annotations["skipConfigLoad"] == "true" {
			return true
		}
	}
	return false
}

// joinParams rebuilds the parameter string from the arguments after "--".
// Arguments the shell unquoted regain their quotes; for name=value forms only
// the value is quoted.
func joinParams(args []string) string {
	quoted := make([]string, len(args))
	for i, arg := range args {
		quoted[i] = requote(arg)
	}
	return strings.Join(quoted, " ")
}

func requote(arg string) string {
	if !strings.ContainsAny(arg, " \t") || strings.Contains(arg, `"`) {
		return arg
	}
	if eq := strings.Index(arg, "="); eq > 0 && !strings.ContainsAny(arg[:eq], " \t") {
		return arg[:eq+1] + `"` + arg[eq+1:] + `"`
	}
	return `"` + arg + `"`
}

func yesNo(value bool) string {
	if value {
		return "yes"
	}
	return "no"
}

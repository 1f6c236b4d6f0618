package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

type cliTestEnv struct {
	configPath string
	outputDir  string
	dataDir    string
	stubPath   string
}

// setupCLITestEnv writes a configuration that points every directory into a
// temp dir and uses a stub redumper binary.
func setupCLITestEnv(t *testing.T) *cliTestEnv {
	t.Helper()

	base := t.TempDir()
	home := filepath.Join(base, "home")
	env := &cliTestEnv{
		configPath: filepath.Join(base, "config.toml"),
		outputDir:  filepath.Join(base, "dumps"),
		dataDir:    filepath.Join(base, "data"),
		stubPath:   filepath.Join(base, "bin", "redumper"),
	}
	for _, dir := range []string{home, env.outputDir, env.dataDir, filepath.Dir(env.stubPath)} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			t.Fatalf("mkdir %s: %v", dir, err)
		}
	}
	if err := os.WriteFile(env.stubPath, []byte("#!/bin/sh\nexit 0\n"), 0o755); err != nil {
		t.Fatalf("write stub: %v", err)
	}
	t.Setenv("HOME", home)
	t.Setenv("DISCDUMP_DRIVE", "")

	env.writeConfig(t, env.stubPath)
	return env
}

func (e *cliTestEnv) writeConfig(t *testing.T, redumperBinary string) {
	t.Helper()
	content := fmt.Sprintf(`[paths]
output_dir = %q
data_dir = %q

[dumping]
program = "redumper"
drive = "/dev/sr0"
speed = 8
media_type = "cdrom"
filename = "game"

[options.redumper]
enable_verbose = false
reread_count = 5

[tools]
redumper = %q
discimagecreator = "discdump-test-missing-dic"
aaru = "discdump-test-missing-aaru"

[logging]
level = "error"
`, e.outputDir, e.dataDir, redumperBinary)
	if err := os.WriteFile(e.configPath, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
}

func runCLI(t *testing.T, args []string, configPath string) (string, string, error) {
	t.Helper()
	cmd := newRootCommand()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	var flags []string
	if configPath != "" {
		flags = append(flags, "--config", configPath)
	}
	cmd.SetArgs(append(flags, args...))
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func requireContains(t *testing.T, haystack, needle string) {
	t.Helper()
	if !strings.Contains(haystack, needle) {
		t.Fatalf("expected output to contain %q\n%s", needle, haystack)
	}
}

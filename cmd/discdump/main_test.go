package main

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"discdump/internal/execctx"
	"discdump/internal/presets"
)

func TestGenerateUsesConfiguredSettings(t *testing.T) {
	env := setupCLITestEnv(t)

	out, _, err := runCLI(t, []string{"generate"}, env.configPath)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	line := strings.TrimSpace(out)
	if !strings.HasPrefix(line, "cd ") {
		t.Fatalf("expected cd mode first, got %q", line)
	}
	for _, fragment := range []string{
		"--drive=/dev/sr0",
		"--speed=8",
		"--retries=5",
		`--image-path="` + env.outputDir + `"`,
		`--image-name="game"`,
	} {
		requireContains(t, line, fragment)
	}
	if strings.Contains(line, "--verbose") {
		t.Fatalf("verbose disabled in config but present: %q", line)
	}
}

func TestGenerateFlagOverrides(t *testing.T) {
	env := setupCLITestEnv(t)

	out, _, err := runCLI(t, []string{
		"generate", "--media-type", "dvd", "--drive", "/dev/sr1", "--speed", "4",
		"--option", "redumper.enable_verbose=true",
	}, env.configPath)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	line := strings.TrimSpace(out)
	if !strings.HasPrefix(line, "dvd ") {
		t.Fatalf("expected dvd mode, got %q", line)
	}
	requireContains(t, line, "--verbose")
	requireContains(t, line, "--drive=/dev/sr1")
	requireContains(t, line, "--speed=4")
}

func TestGenerateRejectsUnsupportedMedia(t *testing.T) {
	env := setupCLITestEnv(t)

	_, _, err := runCLI(t, []string{"generate", "--media-type", "floppy"}, env.configPath)
	if err == nil || !strings.Contains(err.Error(), "cannot dump") {
		t.Fatalf("expected unsupported media error, got %v", err)
	}

	_, _, err = runCLI(t, []string{"generate", "--option", "redumper.nonsense=1"}, env.configPath)
	if err == nil || !strings.Contains(err.Error(), "unknown key") {
		t.Fatalf("expected unknown option error, got %v", err)
	}
}

func TestGenerateReportsMissingDrive(t *testing.T) {
	env := setupCLITestEnv(t)

	out, _, err := runCLI(t, []string{"--program", "dic", "generate", "--drive", ""}, env.configPath)
	if err == nil || !strings.Contains(err.Error(), "drive is required") {
		t.Fatalf("expected missing drive error, got %v", err)
	}
	requireContains(t, out, `cd "" "`)
}

func TestParseCommand(t *testing.T) {
	env := setupCLITestEnv(t)

	out, _, err := runCLI(t, []string{"--program", "dic", "parse", "--", "cd", "D:", "out dir/disc.bin", "8", "/q"}, env.configPath)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	requireContains(t, out, "Program:    DiscImageCreator")
	requireContains(t, out, "Command:    cd")
	requireContains(t, out, "Speed:      8")
	requireContains(t, out, "Dumping:    yes")
	requireContains(t, out, `Parameters: cd D: "out dir/disc.bin" 8 /q`)
}

func TestParseCommandJSON(t *testing.T) {
	env := setupCLITestEnv(t)

	out, _, err := runCLI(t, []string{"--json", "parse", "--", "cd", "--drive=/dev/sr0", "--speed=8"}, env.configPath)
	if err != nil {
		t.Fatalf("parse --json: %v", err)
	}
	var view contextView
	if err := json.Unmarshal([]byte(out), &view); err != nil {
		t.Fatalf("decode json: %v\n%s", err, out)
	}
	if view.Program != string(execctx.ProgramRedumper) {
		t.Fatalf("program = %q", view.Program)
	}
	if view.Speed == nil || *view.Speed != 8 {
		t.Fatalf("speed = %v, want 8", view.Speed)
	}
	if view.Flags["--drive"] != "/dev/sr0" {
		t.Fatalf("drive flag = %q", view.Flags["--drive"])
	}
	if view.Parameters != "cd --drive=/dev/sr0 --speed=8" {
		t.Fatalf("parameters = %q", view.Parameters)
	}
}

func TestNormalizeCommand(t *testing.T) {
	env := setupCLITestEnv(t)

	out, _, err := runCLI(t, []string{"normalize", "--", "cd", "--speed=8", "--drive=D", "--bogus"}, env.configPath)
	if err != nil {
		t.Fatalf("normalize: %v", err)
	}
	if got := strings.TrimSpace(out); got != "cd --drive=D --speed=8" {
		t.Fatalf("normalize = %q", got)
	}
}

func TestValidateCommand(t *testing.T) {
	env := setupCLITestEnv(t)

	out, _, err := runCLI(t, []string{"--program", "aaru", "validate", "--", "media", "dump", "--force", "true", "/dev/sr0", "disc.aaruf"}, env.configPath)
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	requireContains(t, out, "Aaru parameters valid")

	_, _, err = runCLI(t, []string{"--program", "aaru", "validate", "--", "media", "info", "--force", "true", "/dev/sr0"}, env.configPath)
	if !errors.Is(err, execctx.ErrUnsupportedFlag) {
		t.Fatalf("expected unsupported flag error, got %v", err)
	}
}

func TestSupportCommand(t *testing.T) {
	env := setupCLITestEnv(t)

	out, _, err := runCLI(t, []string{"--program", "aaru", "support"}, env.configPath)
	if err != nil {
		t.Fatalf("support: %v", err)
	}
	requireContains(t, out, "media dump")
	requireContains(t, out, "image verify")

	out, _, err = runCLI(t, []string{"--program", "dic", "support", "cd"}, env.configPath)
	if err != nil {
		t.Fatalf("support cd: %v", err)
	}
	requireContains(t, out, "/c2")

	if _, _, err := runCLI(t, []string{"--program", "dic", "support", "nonsense"}, env.configPath); err == nil {
		t.Fatal("expected error for unknown command")
	}
}

func TestDetectCommand(t *testing.T) {
	env := setupCLITestEnv(t)

	out, _, err := runCLI(t, []string{"detect", "--", "cd", "/dev/sr0", "disc.bin", "8", "/c2", "20"}, env.configPath)
	if err != nil {
		t.Fatalf("detect: %v", err)
	}
	requireContains(t, out, "DiscImageCreator (dic)")

	if _, _, err := runCLI(t, []string{"detect", "--", "hello", "world"}, env.configPath); err == nil {
		t.Fatal("expected detect to fail for unrecognised parameters")
	}
}

func TestPresetLifecycle(t *testing.T) {
	env := setupCLITestEnv(t)

	out, _, err := runCLI(t, []string{"preset", "save", "fast", "--description", "quick pass", "--", "cd", "--speed=8", "--drive=D"}, env.configPath)
	if err != nil {
		t.Fatalf("preset save: %v", err)
	}
	requireContains(t, out, `Saved Redumper preset "fast": cd --drive=D --speed=8`)

	if _, err := os.Stat(filepath.Join(env.dataDir, "presets.db")); err != nil {
		t.Fatalf("expected preset database: %v", err)
	}

	out, _, err = runCLI(t, []string{"preset", "list"}, env.configPath)
	if err != nil {
		t.Fatalf("preset list: %v", err)
	}
	requireContains(t, out, "fast")
	requireContains(t, out, "cd --drive=D --speed=8")

	out, _, err = runCLI(t, []string{"preset", "show", "fast"}, env.configPath)
	if err != nil {
		t.Fatalf("preset show: %v", err)
	}
	requireContains(t, out, "Preset:     fast")
	requireContains(t, out, "Note:       quick pass")
	requireContains(t, out, "Speed:      8")

	out, _, err = runCLI(t, []string{"--json", "preset", "list", "--all"}, env.configPath)
	if err != nil {
		t.Fatalf("preset list --json: %v", err)
	}
	var listed []presets.Preset
	if err := json.Unmarshal([]byte(out), &listed); err != nil {
		t.Fatalf("decode json: %v\n%s", err, out)
	}
	if len(listed) != 1 || listed[0].Name != "fast" {
		t.Fatalf("unexpected json list: %+v", listed)
	}

	if _, _, err := runCLI(t, []string{"preset", "delete", "fast"}, env.configPath); err != nil {
		t.Fatalf("preset delete: %v", err)
	}
	_, _, err = runCLI(t, []string{"preset", "show", "fast"}, env.configPath)
	if !errors.Is(err, presets.ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}

	out, _, err = runCLI(t, []string{"preset", "list"}, env.configPath)
	if err != nil {
		t.Fatalf("preset list: %v", err)
	}
	requireContains(t, out, "No presets saved")
}

func TestDoctorCommand(t *testing.T) {
	env := setupCLITestEnv(t)

	out, _, err := runCLI(t, []string{"doctor"}, env.configPath)
	if err != nil {
		t.Fatalf("doctor: %v\n%s", err, out)
	}
	requireContains(t, out, "== Environment ==")
	requireContains(t, out, "Redumper:")
	requireContains(t, out, "[OK] "+env.stubPath)
	requireContains(t, out, "[WARN]")

	env.writeConfig(t, "discdump-test-missing-redumper")
	out, _, err = runCLI(t, []string{"doctor"}, env.configPath)
	if !errors.Is(err, errDoctorFailed) {
		t.Fatalf("expected doctor failure, got %v", err)
	}
	requireContains(t, out, "[ERROR]")
}

package execctx_test

import (
	"path/filepath"
	"testing"

	"discdump/internal/execctx"
)

func TestSplitFilename(t *testing.T) {
	tests := []struct {
		filename string
		dir      string
		base     string
	}{
		{"game.bin", "", "game"},
		{filepath.Join("out", "game.bin"), "out", "game"},
		{`"` + filepath.Join("my dumps", "disc 1.iso") + `"`, "my dumps", "disc 1"},
		{"noext", "", "noext"},
		{"", "", ""},
	}
	for _, tt := range tests {
		dir, base := execctx.SplitFilename(tt.filename)
		if dir != tt.dir || base != tt.base {
			t.Fatalf("SplitFilename(%q) = (%q,%q), want (%q,%q)", tt.filename, dir, base, tt.dir, tt.base)
		}
	}
}

func TestJoinOutput(t *testing.T) {
	if got := execctx.JoinOutput("", "track", ".bin"); got != "track.bin" {
		t.Fatalf("JoinOutput = %q", got)
	}
	want := filepath.Join("out", "game.iso")
	if got := execctx.JoinOutput(`"out"`, `"game"`, ".iso"); got != want {
		t.Fatalf("JoinOutput = %q, want %q", got, want)
	}
}

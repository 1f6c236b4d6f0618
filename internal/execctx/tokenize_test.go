package execctx_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"discdump/internal/execctx"
)

func TestSplit(t *testing.T) {
	tests := []struct {
		name   string
		params string
		want   []string
	}{
		{"blank", "   ", nil},
		{"plain", "cd dump --drive=D", []string{"cd", "dump", "--drive=D"}},
		{"extra spaces", "  cd   --speed 8 ", []string{"cd", "--speed", "8"}},
		{
			"quoted inline",
			`cd --image-path="C:\My Games" --image-name="a b"`,
			[]string{"cd", `--image-path="C:\My Games"`, `--image-name="a b"`},
		},
		{
			"quoted separate",
			`cd /dev/sr0 "out dir/game.bin" 8`,
			[]string{"cd", "/dev/sr0", `"out dir/game.bin"`, "8"},
		},
		{"empty quotes", `--image-name=""`, []string{`--image-name=""`}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := execctx.Split(tt.params)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Fatalf("Split mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestJoinFragments(t *testing.T) {
	got := execctx.JoinFragments([]string{"cd", "", " --drive=D ", "", "--verbose"})
	if got != "cd --drive=D --verbose" {
		t.Fatalf("JoinFragments = %q", got)
	}
	if got := execctx.JoinFragments(nil); got != "" {
		t.Fatalf("JoinFragments(nil) = %q", got)
	}
}

func TestParseProgram(t *testing.T) {
	tests := map[string]execctx.Program{
		"redumper":         execctx.ProgramRedumper,
		"DiscImageCreator": execctx.ProgramDiscImageCreator,
		" dic ":            execctx.ProgramDiscImageCreator,
		"Aaru":             execctx.ProgramAaru,
	}
	for value, want := range tests {
		got, ok := execctx.ParseProgram(value)
		if !ok || got != want {
			t.Fatalf("ParseProgram(%q) = (%q,%v), want %q", value, got, ok, want)
		}
	}
	if _, ok := execctx.ParseProgram("cdrdao"); ok {
		t.Fatal("expected unknown program")
	}
}

package settings_test

import (
	"testing"

	"discdump/internal/settings"
)

func TestOptionsGetters(t *testing.T) {
	opts := settings.Options{
		"flag":    " true ",
		"bad":     "maybe",
		"count":   "12",
		"name":    "BE",
		"blank":   "   ",
		"numeric": "x12",
	}

	if !opts.Bool("flag", false) {
		t.Fatal("expected flag to be true")
	}
	if opts.Bool("bad", false) {
		t.Fatal("expected unparseable bool to fall back")
	}
	if !opts.Bool("missing", true) {
		t.Fatal("expected missing bool to fall back")
	}
	if got := opts.Int("count", 1); got != 12 {
		t.Fatalf("Int = %d, want 12", got)
	}
	if got := opts.Int("numeric", 7); got != 7 {
		t.Fatalf("Int = %d, want fallback 7", got)
	}
	if got := opts.String("name", "NONE"); got != "BE" {
		t.Fatalf("String = %q, want BE", got)
	}
	if got := opts.String("blank", "NONE"); got != "NONE" {
		t.Fatalf("String = %q, want fallback", got)
	}
}

func TestNilOptions(t *testing.T) {
	var opts settings.Options
	if got := opts.Int(settings.RedumperRereadCount, settings.RedumperRereadCountDefault); got != 20 {
		t.Fatalf("Int = %d, want default", got)
	}
	clone := opts.Clone()
	clone["k"] = "v"
	if len(clone.Keys()) != 1 {
		t.Fatalf("unexpected keys %v", clone.Keys())
	}
}

func TestIsNone(t *testing.T) {
	for _, v := range []string{"", " ", "NONE", "none"} {
		if !settings.IsNone(v) {
			t.Fatalf("IsNone(%q) = false", v)
		}
	}
	if settings.IsNone("BE") {
		t.Fatal("IsNone(BE) = true")
	}
}

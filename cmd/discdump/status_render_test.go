package main

import (
	"bytes"
	"strings"
	"testing"

	"discdump/internal/preflight"
)

func TestRenderStatusLine(t *testing.T) {
	line := renderStatusLine("Output directory", statusOK, "/tmp/dumps", false)
	if want := "  Output directory:    [OK] /tmp/dumps"; line != want {
		t.Fatalf("renderStatusLine = %q, want %q", line, want)
	}

	colored := renderStatusLine("Aaru", statusError, "", true)
	if !strings.HasPrefix(colored, statusStyles[statusError].color) || !strings.HasSuffix(colored, ansiReset) {
		t.Fatalf("expected red line, got %q", colored)
	}
	if !strings.Contains(colored, "[ERROR]") {
		t.Fatalf("expected ERROR label, got %q", colored)
	}
}

func TestRenderSectionHeader(t *testing.T) {
	lines := renderSectionHeader(" Environment ", false)
	if len(lines) != 2 || lines[0] != "== Environment ==" || lines[1] != strings.Repeat("-", len(lines[0])) {
		t.Fatalf("unexpected header: %q", lines)
	}
}

func TestShouldColorizeIgnoresBuffers(t *testing.T) {
	if shouldColorize(&bytes.Buffer{}) {
		t.Fatal("buffers are never terminals")
	}
}

func TestResultKind(t *testing.T) {
	tests := []struct {
		result preflight.Result
		want   statusKind
	}{
		{preflight.Result{Passed: true}, statusOK},
		{preflight.Result{Optional: true}, statusWarn},
		{preflight.Result{}, statusError},
	}
	for _, tt := range tests {
		if got := resultKind(tt.result); got != tt.want {
			t.Fatalf("resultKind(%+v) = %d, want %d", tt.result, got, tt.want)
		}
	}
}

package presets_test

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/gofrs/flock"
	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"

	"discdump/internal/execctx"
	"discdump/internal/presets"
	"discdump/internal/programs"
)

func openStore(t *testing.T) (*presets.Store, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "data", "presets.db")
	store, err := presets.Open(t.Context(), path, nil)
	if err != nil {
		t.Fatalf("Open returned error: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })
	return store, path
}

func TestSaveNormalizesParameters(t *testing.T) {
	store, _ := openStore(t)
	ctx := t.Context()

	saved, err := store.Save(ctx, execctx.ProgramRedumper, " ps1 ", "cd  --speed=8   --drive=/dev/sr0 --unknown", "PlayStation")
	if err != nil {
		t.Fatalf("Save returned error: %v", err)
	}
	if _, err := uuid.Parse(saved.ID); err != nil {
		t.Fatalf("ID %q is not a UUID: %v", saved.ID, err)
	}
	if saved.Name != "ps1" {
		t.Fatalf("Name = %q, want trimmed ps1", saved.Name)
	}
	if want := "cd --drive=/dev/sr0 --speed=8"; saved.Parameters != want {
		t.Fatalf("Parameters = %q, want %q", saved.Parameters, want)
	}

	got, err := store.Get(ctx, execctx.ProgramRedumper, "ps1")
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	if diff := cmp.Diff(saved, got); diff != "" {
		t.Fatalf("stored preset mismatch (-saved +got):\n%s", diff)
	}

	parsed, err := store.Context(got)
	if err != nil {
		t.Fatalf("Context returned error: %v", err)
	}
	if parsed.Generate() != got.Parameters {
		t.Fatalf("stored parameters do not round trip: %q", parsed.Generate())
	}
}

func TestSaveReplacesExistingPreset(t *testing.T) {
	store, _ := openStore(t)
	ctx := t.Context()

	first, err := store.Save(ctx, execctx.ProgramAaru, "default", "media dump /dev/sr0 disc.aaruf", "")
	if err != nil {
		t.Fatalf("Save returned error: %v", err)
	}
	second, err := store.Save(ctx, execctx.ProgramAaru, "default", "media dump --force true /dev/sr0 disc.aaruf", "forced")
	if err != nil {
		t.Fatalf("second Save returned error: %v", err)
	}
	if second.ID != first.ID {
		t.Fatalf("ID changed on replace: %q -> %q", first.ID, second.ID)
	}
	if !second.CreatedAt.Equal(first.CreatedAt) {
		t.Fatalf("CreatedAt changed on replace")
	}
	if second.UpdatedAt.Before(first.UpdatedAt) {
		t.Fatalf("UpdatedAt went backwards")
	}

	list, err := store.List(ctx, execctx.ProgramAaru)
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if len(list) != 1 || list[0].Parameters != second.Parameters || list[0].Description != "forced" {
		t.Fatalf("unexpected list: %+v", list)
	}
}

func TestSaveRejectsInvalidInput(t *testing.T) {
	store, _ := openStore(t)
	ctx := t.Context()

	if _, err := store.Save(ctx, execctx.ProgramRedumper, "  ", "cd", ""); !errors.Is(err, presets.ErrInvalidName) {
		t.Fatalf("blank name error = %v, want ErrInvalidName", err)
	}
	if _, err := store.Save(ctx, execctx.ProgramRedumper, "bad", "not-a-mode --speed=8", ""); !errors.Is(err, programs.ErrInvalidParameters) {
		t.Fatalf("bad params error = %v, want ErrInvalidParameters", err)
	}
	if _, err := store.Save(ctx, execctx.ProgramAaru, "bad", "media info --force true /dev/sr0", ""); !errors.Is(err, execctx.ErrUnsupportedFlag) {
		t.Fatalf("unsupported flag error = %v, want ErrUnsupportedFlag", err)
	}

	list, err := store.List(ctx, "")
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if len(list) != 0 {
		t.Fatalf("expected nothing stored, got %+v", list)
	}
}

func TestListOrdersByProgramAndName(t *testing.T) {
	store, _ := openStore(t)
	ctx := t.Context()

	entries := []struct {
		program execctx.Program
		name    string
		params  string
	}{
		{execctx.ProgramRedumper, "zeta", "dvd"},
		{execctx.ProgramDiscImageCreator, "cd", "cd /dev/sr0 disc.bin 8"},
		{execctx.ProgramRedumper, "alpha", "cd"},
	}
	for _, e := range entries {
		if _, err := store.Save(ctx, e.program, e.name, e.params, ""); err != nil {
			t.Fatalf("Save(%s) returned error: %v", e.name, err)
		}
	}

	list, err := store.List(ctx, "")
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	var got []string
	for _, p := range list {
		got = append(got, string(p.Program)+"/"+p.Name)
	}
	want := []string{"dic/cd", "redumper/alpha", "redumper/zeta"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("order mismatch (-want +got):\n%s", diff)
	}
}

func TestDelete(t *testing.T) {
	store, _ := openStore(t)
	ctx := t.Context()

	if _, err := store.Save(ctx, execctx.ProgramRedumper, "cd", "cd", ""); err != nil {
		t.Fatalf("Save returned error: %v", err)
	}
	if err := store.Delete(ctx, execctx.ProgramRedumper, "cd"); err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}
	if _, err := store.Get(ctx, execctx.ProgramRedumper, "cd"); !errors.Is(err, presets.ErrNotFound) {
		t.Fatalf("Get after delete error = %v, want ErrNotFound", err)
	}
	if err := store.Delete(ctx, execctx.ProgramRedumper, "cd"); !errors.Is(err, presets.ErrNotFound) {
		t.Fatalf("second Delete error = %v, want ErrNotFound", err)
	}
}

func TestReopenKeepsPresets(t *testing.T) {
	store, path := openStore(t)
	if _, err := store.Save(t.Context(), execctx.ProgramRedumper, "cd", "cd --speed=4", ""); err != nil {
		t.Fatalf("Save returned error: %v", err)
	}
	if err := store.Close(); err != nil {
		t.Fatalf("Close returned error: %v", err)
	}

	reopened, err := presets.Open(t.Context(), path, nil)
	if err != nil {
		t.Fatalf("reopen returned error: %v", err)
	}
	defer reopened.Close()
	got, err := reopened.Get(t.Context(), execctx.ProgramRedumper, "cd")
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	if got.Parameters != "cd --speed=4" {
		t.Fatalf("Parameters = %q", got.Parameters)
	}
}

func TestWritesFailWhileLocked(t *testing.T) {
	store, path := openStore(t)

	other := flock.New(path + ".lock")
	locked, err := other.TryLock()
	if err != nil || !locked {
		t.Fatalf("TryLock = %v, %v", locked, err)
	}
	defer other.Unlock()

	ctx, cancel := context.WithTimeout(t.Context(), 100*time.Millisecond)
	defer cancel()
	if _, err := store.Save(ctx, execctx.ProgramRedumper, "cd", "cd", ""); !errors.Is(err, presets.ErrLocked) {
		t.Fatalf("Save while locked error = %v, want ErrLocked", err)
	}
}

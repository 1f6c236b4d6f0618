package media_test

import (
	"testing"

	"discdump/internal/media"
)

func TestParseType(t *testing.T) {
	tests := []struct {
		value string
		want  media.Type
		ok    bool
	}{
		{"cdrom", media.TypeCDROM, true},
		{" CD ", media.TypeCDROM, true},
		{"blu-ray", media.TypeBluRay, true},
		{"dvd", media.TypeDVD, true},
		{"laserdisc", media.TypeNone, false},
		{"", media.TypeNone, false},
	}
	for _, tt := range tests {
		got, ok := media.ParseType(tt.value)
		if got != tt.want || ok != tt.ok {
			t.Fatalf("ParseType(%q) = (%q,%v), want (%q,%v)", tt.value, got, ok, tt.want, tt.ok)
		}
	}
}

func TestExtension(t *testing.T) {
	tests := map[media.Type]string{
		media.TypeCDROM:      ".bin",
		media.TypeGDROM:      ".bin",
		media.TypeDVD:        ".iso",
		media.TypeBluRay:     ".iso",
		media.TypeFloppyDisk: ".img",
		media.TypeNone:       ".bin",
	}
	for mediaType, want := range tests {
		if got := media.Extension(mediaType); got != want {
			t.Fatalf("Extension(%q) = %q, want %q", mediaType, got, want)
		}
	}
}

func TestSystemDisplayName(t *testing.T) {
	if got := media.SystemSonyPlayStation2.DisplayName(); got != "Sony Playstation 2" {
		t.Fatalf("unexpected display name %q", got)
	}
	if got := media.SystemNone.DisplayName(); got != "None" {
		t.Fatalf("unexpected display name %q", got)
	}
}

func TestParseSystem(t *testing.T) {
	got, ok := media.ParseSystem("Super Audio CD")
	if !ok || got != media.SystemSuperAudioCD {
		t.Fatalf("ParseSystem = (%q,%v)", got, ok)
	}
	if _, ok := media.ParseSystem("commodore-amiga"); ok {
		t.Fatal("expected unknown system")
	}
}

func TestSystemMediaTypes(t *testing.T) {
	types := media.SystemSegaDreamcast.MediaTypes()
	if len(types) == 0 || types[0] != media.TypeGDROM {
		t.Fatalf("unexpected media types %v", types)
	}
	if media.SystemNone.MediaTypes() != nil {
		t.Fatal("expected no media types for empty system")
	}
	if !media.TypeDVD.IsOptical() || media.TypeHardDisk.IsOptical() {
		t.Fatal("unexpected optical classification")
	}
}

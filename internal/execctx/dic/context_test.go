package dic_test

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"discdump/internal/execctx"
	"discdump/internal/execctx/dic"
	"discdump/internal/input"
	"discdump/internal/media"
	"discdump/internal/settings"
)

func ptr(v int32) *int32 { return &v }

func TestParseCD(t *testing.T) {
	ctx, ok := dic.Parse(`cd D "out dir/game.bin" 8 /c2 20 /q /nl /bogus /raw /vnx /f`)
	if !ok {
		t.Fatal("expected parse to succeed")
	}
	if ctx.BaseCommand() != dic.CommandCD {
		t.Fatalf("BaseCommand = %q", ctx.BaseCommand())
	}
	if ctx.InputPath() != "D" || ctx.OutputPath() != "out dir/game.bin" {
		t.Fatalf("paths = %q %q", ctx.InputPath(), ctx.OutputPath())
	}
	if speed, ok := ctx.Speed(); !ok || speed != 8 {
		t.Fatalf("Speed = (%d,%v)", speed, ok)
	}

	want := map[string]input.Value{
		dic.FlagC2Opcode:          input.Int32Array{ptr(20), nil, nil, nil},
		dic.FlagDisableBeep:       input.Bool(true),
		dic.FlagNoFixSubQLibCrypt: input.Bool(true),
		dic.FlagVideoNowXP:        input.Bool(true),
		dic.FlagForceUnitAccess:   nil,
	}
	if diff := cmp.Diff(want, ctx.Values()); diff != "" {
		t.Fatalf("values mismatch (-want +got):\n%s", diff)
	}
	if got := ctx.Generate(); got != `cd D "out dir/game.bin" 8 /c2 20 /q /f /nl /vnx` {
		t.Fatalf("Generate = %q", got)
	}
}

func TestParseRange(t *testing.T) {
	ctx, ok := dic.Parse(`audio /dev/sr0 "track.bin" 4 0 1200 /sk 5 10 /ps ff /a -30`)
	if !ok {
		t.Fatal("expected parse to succeed")
	}
	start, end, ok := ctx.Range()
	if !ok || start != 0 || end != 1200 {
		t.Fatalf("Range = (%d,%d,%v)", start, end, ok)
	}
	if got := ctx.Value(dic.FlagPadSector); got != input.Uint8(0xff) {
		t.Fatalf("pad sector = %v", got)
	}
	if ctx.Present(dic.FlagSkipSector) {
		t.Fatal("skip sector is not an audio flag")
	}
	if got := ctx.Generate(); got != `audio /dev/sr0 "track.bin" 4 0 1200 /a -30 /ps ff` {
		t.Fatalf("Generate = %q", got)
	}
}

func TestParseRejects(t *testing.T) {
	for _, params := range []string{"", "dump D out.bin", "cd D", `cd D "out.bin" fast`, "audio D out.bin 8 0"} {
		ctx, ok := dic.Parse(params)
		if ok {
			t.Fatalf("Parse(%q) succeeded", params)
		}
		if ctx.BaseCommand() != "" || ctx.InputPath() != "" {
			t.Fatalf("Parse(%q) left state behind", params)
		}
	}
}

func TestParseDriveOnlyCommands(t *testing.T) {
	ctx, ok := dic.Parse("eject D")
	if !ok {
		t.Fatal("expected parse to succeed")
	}
	if ctx.IsDumpingCommand() {
		t.Fatal("eject does not dump")
	}
	if _, ok := ctx.MediaType(); ok {
		t.Fatal("eject has no media type")
	}
	if got := ctx.Generate(); got != "eject D" {
		t.Fatalf("Generate = %q", got)
	}

	ctx, ok = dic.Parse("version")
	if !ok || ctx.Generate() != "version" {
		t.Fatalf("version: ok=%v generate=%q", ok, ctx.Generate())
	}
}

func TestFromSettings(t *testing.T) {
	tests := []struct {
		name     string
		settings execctx.Settings
		want     string
	}{
		{
			name: "cd defaults",
			settings: execctx.Settings{
				MediaType: media.TypeCDROM, DrivePath: "D", Filename: "game.bin", DriveSpeed: 8,
			},
			want: `cd D "game.bin" 8 /c2 20`,
		},
		{
			name: "playstation quiet paranoid",
			settings: execctx.Settings{
				MediaType: media.TypeCDROM, System: media.SystemSonyPlayStation, DrivePath: "D", Filename: "game.bin", DriveSpeed: 8,
				Options: settings.Options{
					settings.DICQuietMode:    "true",
					settings.DICParanoidMode: "true",
					settings.DICRereadCount:  "5",
				},
			},
			want: `cd D "game.bin" 8 /c2 5 /q /nq /nr /nl`,
		},
		{
			name: "pc multi sector",
			settings: execctx.Settings{
				MediaType: media.TypeCDROM, System: media.SystemIBMPC, DrivePath: "D", Filename: "game.bin", DriveSpeed: 16,
				Options: settings.Options{
					settings.DICMultiSectorRead:  "true",
					settings.DICMultiSectorValue: "2",
				},
			},
			want: `cd D "game.bin" 16 /c2 20 /mr 2 /ns /sf 0 /ss`,
		},
		{
			name:     "sacd",
			settings: execctx.Settings{MediaType: media.TypeCDROM, System: media.SystemSuperAudioCD, DrivePath: "D", Filename: "a.iso"},
			want:     `sacd D "a.iso"`,
		},
		{
			name:     "dvd",
			settings: execctx.Settings{MediaType: media.TypeDVD, DrivePath: "D", Filename: "movie.iso", DriveSpeed: 4},
			want:     `dvd D "movie.iso" 4 /rr 10`,
		},
		{
			name:     "xbox",
			settings: execctx.Settings{MediaType: media.TypeDVD, System: media.SystemMicrosoftXbox, DrivePath: "D", Filename: "x.iso"},
			want:     `xbox D "x.iso" /rr 10`,
		},
		{
			name:     "gamecube",
			settings: execctx.Settings{MediaType: media.TypeGameCube, DrivePath: "D", Filename: "gc.iso"},
			want:     `dvd D "gc.iso" 0 /raw /rr 10`,
		},
		{
			name:     "bluray",
			settings: execctx.Settings{MediaType: media.TypeBluRay, DrivePath: "D", Filename: "b.iso", DriveSpeed: 2},
			want:     `bd D "b.iso"`,
		},
		{
			name:     "floppy",
			settings: execctx.Settings{MediaType: media.TypeFloppyDisk, DrivePath: "A", Filename: "f.img"},
			want:     `fd A "f.img"`,
		},
		{
			name:     "gd with spaces",
			settings: execctx.Settings{MediaType: media.TypeGDROM, DrivePath: "My Drive", Filename: filepath.Join("out", "d.bin"), DriveSpeed: 1},
			want:     `gd "My Drive" "` + filepath.Join("out", "d.bin") + `" 1 /c2 20`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := dic.FromSettings(tt.settings)
			if got := ctx.Generate(); got != tt.want {
				t.Fatalf("Generate = %q\nwant       %q", got, tt.want)
			}
			if err := ctx.Validate(); err != nil {
				t.Fatalf("Validate: %v", err)
			}
		})
	}
}

func TestFromSettingsUnsupportedMediaIsNoop(t *testing.T) {
	ctx := dic.FromSettings(execctx.Settings{MediaType: media.TypeUMD, DrivePath: "D", Filename: "u.iso", DriveSpeed: 8})
	if ctx.BaseCommand() != "" || len(ctx.Values()) != 0 || ctx.Generate() != "" {
		t.Fatalf("expected empty context, got %q", ctx.Generate())
	}
}

func TestEmptyDriveKeepsPositionalSlot(t *testing.T) {
	ctx := dic.FromSettings(execctx.Settings{MediaType: media.TypeCDROM, Filename: "game.bin", DriveSpeed: 8})
	generated := ctx.Generate()
	if want := `cd "" "game.bin" 8 /c2 20`; generated != want {
		t.Fatalf("Generate = %q, want %q", generated, want)
	}
	if err := ctx.Validate(); err == nil {
		t.Fatal("expected missing drive to fail validation")
	}

	parsed, ok := dic.Parse(generated)
	if !ok {
		t.Fatalf("Parse(%q) failed", generated)
	}
	if parsed.InputPath() != "" || parsed.OutputPath() != "game.bin" {
		t.Fatalf("positionals shifted: drive %q, file %q", parsed.InputPath(), parsed.OutputPath())
	}
	if speed, ok := parsed.Speed(); !ok || speed != 8 {
		t.Fatalf("Speed = %d, %v; want 8, true", speed, ok)
	}
	if got := parsed.Generate(); got != generated {
		t.Fatalf("round trip = %q, want %q", got, generated)
	}
}

func TestMediaType(t *testing.T) {
	tests := map[string]media.Type{
		`cd D "a.bin" 8`:       media.TypeCDROM,
		`gd D "a.bin" 8`:       media.TypeGDROM,
		`dvd D "a.iso" 8`:      media.TypeDVD,
		`xbox D "a.iso"`:       media.TypeDVD,
		`bd D "a.iso"`:         media.TypeBluRay,
		`fd A "a.img"`:         media.TypeFloppyDisk,
		`disk E "a.img"`:       media.TypeHardDisk,
		`data D "a.bin" 8 0 9`: media.TypeCDROM,
	}
	for params, want := range tests {
		ctx, ok := dic.Parse(params)
		if !ok {
			t.Fatalf("Parse(%q) failed", params)
		}
		got, known := ctx.MediaType()
		if !known || got != want {
			t.Fatalf("%q: MediaType = (%q,%v), want %q", params, got, known, want)
		}
		if !ctx.IsDumpingCommand() {
			t.Fatalf("%q: expected dumping command", params)
		}
	}
}

func TestValidate(t *testing.T) {
	ctx, _ := dic.Parse(`dvd D "a.iso" 8`)
	if err := ctx.Set(dic.FlagNoFixSubQLibCrypt, input.Bool(true)); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if err := ctx.Validate(); !errors.Is(err, execctx.ErrUnsupportedFlag) {
		t.Fatalf("expected ErrUnsupportedFlag, got %v", err)
	}
	if got := ctx.Generate(); got != `dvd D "a.iso" 8` {
		t.Fatalf("unsupported flags should not render, got %q", got)
	}

	ctx = dic.New()
	if err := ctx.SetCommand("dump"); !errors.Is(err, execctx.ErrUnknownCommand) {
		t.Fatalf("expected ErrUnknownCommand, got %v", err)
	}
	if err := ctx.SetCommand(dic.CommandData); err != nil {
		t.Fatalf("SetCommand: %v", err)
	}
	ctx.SetDrive("D")
	ctx.SetFilename("a.bin")
	ctx.SetSpeed(8)
	if err := ctx.Validate(); err == nil {
		t.Fatal("expected missing range error")
	}
	ctx.SetRange(0, 100)
	if err := ctx.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if got := ctx.Generate(); got != `data D "a.bin" 8 0 100` {
		t.Fatalf("Generate = %q", got)
	}
}

func TestCommandSupportCoversEveryFlag(t *testing.T) {
	seen := map[string]bool{}
	for _, flags := range dic.New().CommandSupport() {
		for _, flag := range flags {
			seen[flag] = true
		}
	}
	for _, flag := range []string{
		dic.FlagAddOffset, dic.FlagAtariJaguar, dic.FlagAnchorVolumeDescPtr, dic.FlagBEOpcode, dic.FlagC2Opcode,
		dic.FlagD8Opcode, dic.FlagDisableBeep, dic.FlagForceUnitAccess, dic.FlagMultiSectorRead, dic.FlagMultiSession,
		dic.FlagNoFixSubP, dic.FlagNoFixSubQ, dic.FlagNoFixSubRtoW, dic.FlagNoFixSubQLibCrypt, dic.FlagNoFixSubQSecuROM,
		dic.FlagNoSkipSS, dic.FlagPadSector, dic.FlagRaw, dic.FlagReverse, dic.FlagDVDReread, dic.FlagScanFileProtect,
		dic.FlagScanSectorProtect, dic.FlagSkipSector, dic.FlagSubchannelReadLevel, dic.FlagVideoNow,
		dic.FlagVideoNowColor, dic.FlagVideoNowXP,
	} {
		if !seen[flag] {
			t.Fatalf("flag %s is not supported by any command", flag)
		}
	}
}

package media

import (
	"strings"
)

// Type identifies a physical media format.
type Type string

const (
	TypeNone       Type = ""
	TypeCDROM      Type = "cdrom"
	TypeGDROM      Type = "gdrom"
	TypeDVD        Type = "dvd"
	TypeHDDVD      Type = "hddvd"
	TypeBluRay     Type = "bluray"
	TypeGameCube   Type = "gamecube"
	TypeWii        Type = "wii"
	TypeFloppyDisk Type = "floppy"
	TypeHardDisk   Type = "harddisk"
	TypeUMD        Type = "umd"
)

var typeNames = map[Type]string{
	TypeCDROM:      "CD-ROM",
	TypeGDROM:      "GD-ROM",
	TypeDVD:        "DVD",
	TypeHDDVD:      "HD-DVD",
	TypeBluRay:     "BD-ROM",
	TypeGameCube:   "Nintendo GameCube Game Disc",
	TypeWii:        "Nintendo Wii Optical Disc",
	TypeFloppyDisk: "Floppy Disk",
	TypeHardDisk:   "Hard Disk",
	TypeUMD:        "UMD",
}

var typeAliases = map[string]Type{
	"cd":       TypeCDROM,
	"cd-rom":   TypeCDROM,
	"gd":       TypeGDROM,
	"gd-rom":   TypeGDROM,
	"hd-dvd":   TypeHDDVD,
	"bd":       TypeBluRay,
	"bd-rom":   TypeBluRay,
	"blu-ray":  TypeBluRay,
	"gc":       TypeGameCube,
	"fd":       TypeFloppyDisk,
	"hdd":      TypeHardDisk,
	"disk":     TypeHardDisk,
	"harddisk": TypeHardDisk,
}

// Types lists every known media type in display order.
func Types() []Type {
	return []Type{TypeCDROM, TypeGDROM, TypeDVD, TypeHDDVD, TypeBluRay, TypeGameCube, TypeWii, TypeFloppyDisk, TypeHardDisk, TypeUMD}
}

// ParseType resolves a user supplied media type name or alias.
func ParseType(value string) (Type, bool) {
	key := strings.ToLower(strings.TrimSpace(value))
	if key == "" {
		return TypeNone, false
	}
	if t, ok := typeAliases[key]; ok {
		return t, true
	}
	if _, ok := typeNames[Type(key)]; ok {
		return Type(key), true
	}
	return TypeNone, false
}

// LongName returns the human readable media type name.
func (t Type) LongName() string {
	if name, ok := typeNames[t]; ok {
		return name
	}
	return "Unknown"
}

// IsOptical reports whether the type is read from an optical drive.
func (t Type) IsOptical() bool {
	switch t {
	case TypeFloppyDisk, TypeHardDisk, TypeNone:
		return false
	}
	_, ok := typeNames[t]
	return ok
}

// Extension returns the conventional image extension for a media type,
// including the leading dot. Unknown types fall back to ".bin".
func Extension(t Type) string {
	switch t {
	case TypeCDROM, TypeGDROM:
		return ".bin"
	case TypeDVD, TypeHDDVD, TypeBluRay, TypeGameCube, TypeWii, TypeUMD:
		return ".iso"
	case TypeFloppyDisk, TypeHardDisk:
		return ".img"
	default:
		return ".bin"
	}
}

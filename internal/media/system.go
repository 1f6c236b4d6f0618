package media

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// System identifies the cataloguing system a disc belongs to. Some dumping
// defaults depend on it (audio-only formats, console specific flags).
type System string

const (
	SystemNone              System = ""
	SystemAudioCD           System = "audio-cd"
	SystemSuperAudioCD      System = "super-audio-cd"
	SystemIBMPC             System = "ibm-pc-compatible"
	SystemSonyPlayStation   System = "sony-playstation"
	SystemSonyPlayStation2  System = "sony-playstation-2"
	SystemSegaDreamcast     System = "sega-dreamcast"
	SystemSegaSaturn        System = "sega-saturn"
	SystemAtariJaguarCD     System = "atari-jaguar-cd"
	SystemMicrosoftXbox     System = "microsoft-xbox"
	SystemMicrosoftXbox360  System = "microsoft-xbox-360"
	SystemNintendoGameCube  System = "nintendo-gamecube"
	SystemNintendoWii       System = "nintendo-wii"
	SystemHasbroVideoNow    System = "hasbro-videonow"
	SystemHasbroVideoNowXP  System = "hasbro-videonow-xp"
	SystemHasbroVideoNowClr System = "hasbro-videonow-color"
	SystemDVDVideo          System = "dvd-video"
	SystemBDVideo           System = "bd-video"
)

var knownSystems = []System{
	SystemAudioCD,
	SystemSuperAudioCD,
	SystemIBMPC,
	SystemSonyPlayStation,
	SystemSonyPlayStation2,
	SystemSegaDreamcast,
	SystemSegaSaturn,
	SystemAtariJaguarCD,
	SystemMicrosoftXbox,
	SystemMicrosoftXbox360,
	SystemNintendoGameCube,
	SystemNintendoWii,
	SystemHasbroVideoNow,
	SystemHasbroVideoNowXP,
	SystemHasbroVideoNowClr,
	SystemDVDVideo,
	SystemBDVideo,
}

// Systems lists every known system.
func Systems() []System {
	return append([]System(nil), knownSystems...)
}

// ParseSystem resolves a system name; spaces and underscores are treated as
// dashes.
func ParseSystem(value string) (System, bool) {
	key := strings.ToLower(strings.TrimSpace(value))
	key = strings.NewReplacer(" ", "-", "_", "-").Replace(key)
	if key == "" {
		return SystemNone, false
	}
	for _, s := range knownSystems {
		if string(s) == key {
			return s, true
		}
	}
	return SystemNone, false
}

// DisplayName renders the system for humans, e.g. "Sony Playstation 2".
func (s System) DisplayName() string {
	if s == SystemNone {
		return "None"
	}
	words := strings.ReplaceAll(string(s), "-", " ")
	return cases.Title(language.Und).String(words)
}

// MediaTypes returns the media types a system ships on, most common first.
func (s System) MediaTypes() []Type {
	switch s {
	case SystemAudioCD, SystemSuperAudioCD, SystemSonyPlayStation, SystemSegaSaturn, SystemAtariJaguarCD,
		SystemHasbroVideoNow, SystemHasbroVideoNowXP, SystemHasbroVideoNowClr:
		return []Type{TypeCDROM}
	case SystemSegaDreamcast:
		return []Type{TypeGDROM, TypeCDROM}
	case SystemSonyPlayStation2:
		return []Type{TypeCDROM, TypeDVD}
	case SystemMicrosoftXbox, SystemMicrosoftXbox360, SystemDVDVideo:
		return []Type{TypeDVD}
	case SystemNintendoGameCube:
		return []Type{TypeGameCube}
	case SystemNintendoWii:
		return []Type{TypeWii}
	case SystemBDVideo:
		return []Type{TypeBluRay}
	case SystemIBMPC:
		return []Type{TypeCDROM, TypeDVD, TypeBluRay, TypeFloppyDisk, TypeHardDisk}
	default:
		return nil
	}
}

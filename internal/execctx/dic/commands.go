package dic

import "discdump/internal/media"

const (
	CommandAudio   = "audio"
	CommandBluRay  = "bd"
	CommandClose   = "close"
	CommandCD      = "cd"
	CommandData    = "data"
	CommandDisk    = "disk"
	CommandDVD     = "dvd"
	CommandEject   = "eject"
	CommandFloppy  = "fd"
	CommandGDROM   = "gd"
	CommandReset   = "reset"
	CommandSACD    = "sacd"
	CommandStart   = "start"
	CommandStop    = "stop"
	CommandSub     = "sub"
	CommandVersion = "version"
	CommandXbox    = "xbox"
)

// positional describes the bare parameters a verb takes, in order: drive,
// output file, speed, then an LBA range.
type positional struct {
	drive    bool
	file     bool
	speed    bool
	lbaRange bool
	media    media.Type
}

func (p positional) dumps() bool { return p.media != media.TypeNone }

var commands = map[string]positional{
	CommandAudio:   {drive: true, file: true, speed: true, lbaRange: true, media: media.TypeCDROM},
	CommandBluRay:  {drive: true, file: true, media: media.TypeBluRay},
	CommandClose:   {drive: true},
	CommandCD:      {drive: true, file: true, speed: true, media: media.TypeCDROM},
	CommandData:    {drive: true, file: true, speed: true, lbaRange: true, media: media.TypeCDROM},
	CommandDisk:    {drive: true, file: true, media: media.TypeHardDisk},
	CommandDVD:     {drive: true, file: true, speed: true, media: media.TypeDVD},
	CommandEject:   {drive: true},
	CommandFloppy:  {drive: true, file: true, media: media.TypeFloppyDisk},
	CommandGDROM:   {drive: true, file: true, speed: true, media: media.TypeGDROM},
	CommandReset:   {drive: true},
	CommandSACD:    {drive: true, file: true, media: media.TypeCDROM},
	CommandStart:   {drive: true},
	CommandStop:    {drive: true},
	CommandSub:     {file: true},
	CommandVersion: {},
	CommandXbox:    {drive: true, file: true, media: media.TypeDVD},
}

// IsCommand reports whether token is a DiscImageCreator verb.
func IsCommand(token string) bool {
	_, ok := commands[token]
	return ok
}

var cdFlags = []string{
	FlagAddOffset,
	FlagAtariJaguar,
	FlagBEOpcode,
	FlagC2Opcode,
	FlagD8Opcode,
	FlagDisableBeep,
	FlagForceUnitAccess,
	FlagMultiSectorRead,
	FlagMultiSession,
	FlagNoFixSubP,
	FlagNoFixSubQ,
	FlagNoFixSubRtoW,
	FlagNoFixSubQLibCrypt,
	FlagNoFixSubQSecuROM,
	FlagPadSector,
	FlagReverse,
	FlagScanFileProtect,
	FlagScanSectorProtect,
	FlagSkipSector,
	FlagSubchannelReadLevel,
	FlagVideoNow,
	FlagVideoNowColor,
	FlagVideoNowXP,
}

var rangeFlags = []string{
	FlagAddOffset,
	FlagBEOpcode,
	FlagC2Opcode,
	FlagD8Opcode,
	FlagDisableBeep,
	FlagForceUnitAccess,
	FlagMultiSectorRead,
	FlagNoFixSubP,
	FlagNoFixSubQ,
	FlagNoFixSubRtoW,
	FlagNoFixSubQLibCrypt,
	FlagNoFixSubQSecuROM,
	FlagPadSector,
	FlagReverse,
	FlagScanFileProtect,
	FlagSubchannelReadLevel,
}

var support = map[string][]string{
	CommandAudio:  rangeFlags,
	CommandBluRay: {FlagAnchorVolumeDescPtr, FlagDisableBeep, FlagForceUnitAccess},
	CommandClose:  {},
	CommandCD:     cdFlags,
	CommandData:   rangeFlags,
	CommandDisk:   {FlagDisableBeep},
	CommandDVD: {
		FlagAnchorVolumeDescPtr,
		FlagC2Opcode,
		FlagDisableBeep,
		FlagForceUnitAccess,
		FlagPadSector,
		FlagRaw,
		FlagDVDReread,
		FlagScanFileProtect,
	},
	CommandEject:  {},
	CommandFloppy: {FlagDisableBeep},
	CommandGDROM: {
		FlagBEOpcode,
		FlagC2Opcode,
		FlagD8Opcode,
		FlagDisableBeep,
		FlagForceUnitAccess,
		FlagNoFixSubP,
		FlagNoFixSubQ,
		FlagNoFixSubRtoW,
		FlagSubchannelReadLevel,
	},
	CommandReset:   {},
	CommandSACD:    {FlagDisableBeep},
	CommandStart:   {},
	CommandStop:    {},
	CommandSub:     {},
	CommandVersion: {},
	CommandXbox: {
		FlagDisableBeep,
		FlagForceUnitAccess,
		FlagNoSkipSS,
		FlagDVDReread,
	},
}

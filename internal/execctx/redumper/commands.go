package redumper

// Modes. ModeNone is the support key shared by every mode.
const (
	ModeNone       = ""
	ModeCD         = "cd"
	ModeDVD        = "dvd"
	ModeBluRay     = "bd"
	ModeSACD       = "sacd"
	ModeNew        = "new"
	ModeRings      = "rings"
	ModeDump       = "dump"
	ModeDumpNew    = "dumpnew"
	ModeRefine     = "refine"
	ModeRefineNew  = "refinenew"
	ModeVerify     = "verify"
	ModeDVDKey     = "dvdkey"
	ModeEject      = "eject"
	ModeDVDIsoKey  = "dvdisokey"
	ModeProtection = "protection"
	ModeSplit      = "split"
	ModeHash       = "hash"
	ModeInfo       = "info"
	ModeSkeleton   = "skeleton"
	ModeDebug      = "debug"
)

var knownModes = map[string]bool{
	ModeCD:         true,
	ModeDVD:        true,
	ModeBluRay:     true,
	ModeSACD:       true,
	ModeNew:        true,
	ModeRings:      true,
	ModeDump:       true,
	ModeDumpNew:    true,
	ModeRefine:     true,
	ModeRefineNew:  true,
	ModeVerify:     true,
	ModeDVDKey:     true,
	ModeEject:      true,
	ModeDVDIsoKey:  true,
	ModeProtection: true,
	ModeSplit:      true,
	ModeHash:       true,
	ModeInfo:       true,
	ModeSkeleton:   true,
	ModeDebug:      true,
}

// dumpingModes start a dump when present; an empty mode list runs the
// default cd pipeline and also dumps.
var dumpingModes = []string{ModeCD, ModeDVD, ModeBluRay, ModeSACD, ModeNew, ModeDump, ModeDumpNew}

// IsMode reports whether token is a Redumper mode.
func IsMode(token string) bool {
	return knownModes[token]
}

// commandSupport lists every flag in generation order under ModeNone.
var commandSupport = []string{
	FlagHelpLong,
	FlagHelpShort,
	FlagVersion,
	FlagVerbose,
	FlagAutoEject,
	FlagDebug,
	FlagDrive,
	FlagSpeed,
	FlagRetries,
	FlagImagePath,
	FlagImageName,
	FlagOverwrite,

	FlagDriveType,
	FlagDriveReadOffset,
	FlagDriveC2Shift,
	FlagDrivePregapStart,
	FlagDriveReadMethod,
	FlagDriveSectorOrder,

	FlagPlextorSkipLeadin,
	FlagPlextorLeadinRetries,
	FlagAsusSkipLeadout,

	FlagForceOffset,
	FlagAudioSilenceThreshold,
	FlagCorrectOffsetShift,
	FlagOffsetShiftRelocate,

	FlagForceSplit,
	FlagLeaveUnchanged,
	FlagForceQTOC,
	FlagSkipFill,
	FlagISO9660Trim,

	FlagLBAStart,
	FlagLBAEnd,
	FlagRefineSubchannel,
	FlagSkip,
	FlagDumpWriteOffset,
	FlagDumpReadSize,
	FlagOverreadLeadout,
	FlagForceUnscrambled,
	FlagLegacySubs,
	FlagDisableCDText,
}

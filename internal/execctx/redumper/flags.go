package redumper

// General
const (
	FlagHelpLong  = "--help"
	FlagHelpShort = "-h"
	FlagVersion   = "--version"
	FlagVerbose   = "--verbose"
	FlagAutoEject = "--auto-eject"
	FlagDebug     = "--debug"
	FlagDrive     = "--drive"
	FlagSpeed     = "--speed"
	FlagRetries   = "--retries"
	FlagImagePath = "--image-path"
	FlagImageName = "--image-name"
	FlagOverwrite = "--overwrite"
)

// Drive configuration
const (
	FlagDriveType        = "--drive-type"
	FlagDriveReadOffset  = "--drive-read-offset"
	FlagDriveC2Shift     = "--drive-c2-shift"
	FlagDrivePregapStart = "--drive-pregap-start"
	FlagDriveReadMethod  = "--drive-read-method"
	FlagDriveSectorOrder = "--drive-sector-order"
)

// Drive specific
const (
	FlagPlextorSkipLeadin    = "--plextor-skip-leadin"
	FlagPlextorLeadinRetries = "--plextor-leadin-retries"
	FlagAsusSkipLeadout      = "--asus-skip-leadout"
)

// Offset
const (
	FlagForceOffset           = "--force-offset"
	FlagAudioSilenceThreshold = "--audio-silence-threshold"
	FlagCorrectOffsetShift    = "--correct-offset-shift"
	FlagOffsetShiftRelocate   = "--offset-shift-relocate"
)

// Split
const (
	FlagForceSplit     = "--force-split"
	FlagLeaveUnchanged = "--leave-unchanged"
	FlagForceQTOC      = "--force-qtoc"
	FlagSkipFill       = "--skip-fill"
	FlagISO9660Trim    = "--iso9660-trim"
)

// Miscellaneous
const (
	FlagLBAStart         = "--lba-start"
	FlagLBAEnd           = "--lba-end"
	FlagRefineSubchannel = "--refine-subchannel"
	FlagSkip             = "--skip"
	FlagDumpWriteOffset  = "--dump-write-offset"
	FlagDumpReadSize     = "--dump-read-size"
	FlagOverreadLeadout  = "--overread-leadout"
	FlagForceUnscrambled = "--force-unscrambled"
	FlagLegacySubs       = "--legacy-subs"
	FlagDisableCDText    = "--disable-cdtext"
)

// GenericDriveType is the drive type forced by the generic drive option.
const GenericDriveType = "GENERIC"

// FallbackImageName is used for the output path when a parsed string names
// no image.
const FallbackImageName = "track"

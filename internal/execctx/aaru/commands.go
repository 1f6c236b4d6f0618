package aaru

import "strings"

// Verbs. Aaru commands are a family word followed by an action.
const (
	CommandNone          = ""
	CommandDatabaseStats = "database stats"
	CommandDeviceInfo    = "device info"
	CommandDeviceList    = "device list"
	CommandImageChecksum = "image checksum"
	CommandImageConvert  = "image convert"
	CommandImageInfo     = "image info"
	CommandImageVerify   = "image verify"
	CommandMediaDump     = "media dump"
	CommandMediaInfo     = "media info"
	CommandMediaScan     = "media scan"
)

// positionals is the number of trailing path arguments each verb takes:
// input first, then output.
var positionals = map[string]int{
	CommandDatabaseStats: 0,
	CommandDeviceInfo:    1,
	CommandDeviceList:    0,
	CommandImageChecksum: 1,
	CommandImageConvert:  2,
	CommandImageInfo:     1,
	CommandImageVerify:   1,
	CommandMediaDump:     2,
	CommandMediaInfo:     1,
	CommandMediaScan:     1,
}

// IsCommand reports whether verb names an Aaru command.
func IsCommand(verb string) bool {
	_, ok := positionals[verb]
	return ok
}

// JoinCommand builds a verb from its family and action words.
func JoinCommand(family, action string) string {
	return strings.ToLower(family) + " " + strings.ToLower(action)
}

var preCommandFlags = []string{
	FlagDebugLong,
	FlagHelpLong,
	FlagVerboseLong,
	FlagVersion,
}

var support = map[string][]string{
	CommandNone:          preCommandFlags,
	CommandDatabaseStats: {},
	CommandDeviceInfo:    {FlagOutputPrefix},
	CommandDeviceList:    {},
	CommandImageChecksum: {
		FlagAdler32,
		FlagCRC16,
		FlagCRC32,
		FlagCRC64,
		FlagFletcher16,
		FlagFletcher32,
		FlagMD5,
		FlagSeparatedTracks,
		FlagSHA1,
		FlagSHA256,
		FlagSHA384,
		FlagSHA512,
		FlagSpamSum,
		FlagWholeDisc,
	},
	CommandImageConvert: {
		FlagComments,
		FlagCount,
		FlagCreator,
		FlagFixSubchannel,
		FlagFixSubchannelCrc,
		FlagFixSubchannelPosition,
		FlagForceLong,
		FlagFormatLong,
		FlagGenerateSubchannels,
		FlagOptionsLong,
	},
	CommandImageInfo:   {},
	CommandImageVerify: {FlagVerifyDisc, FlagVerifySectors},
	CommandMediaDump: {
		FlagEject,
		FlagEncodingLong,
		FlagFirstPregap,
		FlagFixOffset,
		FlagFixSubchannel,
		FlagFixSubchannelCrc,
		FlagFixSubchannelPosition,
		FlagForceLong,
		FlagFormatLong,
		FlagGenerateSubchannels,
		FlagIgnoreCdrRunouts,
		FlagMaxBlocks,
		FlagMetadata,
		FlagOptionsLong,
		FlagPersistent,
		FlagPrivate,
		FlagResumeLong,
		FlagRetryPassesLong,
		FlagRetrySubchannel,
		FlagSkipLong,
		FlagSpeed,
		FlagStopOnErrorLong,
		FlagStoreEncrypted,
		FlagSubchannel,
		FlagTitleKeys,
		FlagTrim,
		FlagUseBufferedReads,
	},
	CommandMediaInfo: {FlagOutputPrefix},
	CommandMediaScan: {
		FlagCreateGraphLong,
		FlagDimensionsLong,
		FlagIBGLog,
		FlagMHDDLog,
		FlagUseBufferedReads,
	},
}

package aaru

// Pre-command switches.
const (
	FlagDebugLong    = "--debug"
	FlagDebugShort   = "-d"
	FlagHelpLong     = "--help"
	FlagHelpShort    = "-h"
	FlagVerboseLong  = "--verbose"
	FlagVerboseShort = "-v"
	FlagVersion      = "--version"
)

// Media dump and shared options.
const (
	FlagEject                 = "--eject"
	FlagEncodingLong          = "--encoding"
	FlagEncodingShort         = "-e"
	FlagFirstPregap           = "--first-pregap"
	FlagFixOffset             = "--fix-offset"
	FlagFixSubchannel         = "--fix-subchannel"
	FlagFixSubchannelCrc      = "--fix-subchannel-crc"
	FlagFixSubchannelPosition = "--fix-subchannel-position"
	FlagForceLong             = "--force"
	FlagForceShort            = "-f"
	FlagFormatLong            = "--format"
	FlagFormatShort           = "-t"
	FlagGenerateSubchannels   = "--generate-subchannels"
	FlagIgnoreCdrRunouts      = "--ignore-cdr-runouts"
	FlagMaxBlocks             = "--max-blocks"
	FlagMetadata              = "--metadata"
	FlagOptionsLong           = "--options"
	FlagOptionsShort          = "-O"
	FlagPersistent            = "--persistent"
	FlagPrivate               = "--private"
	FlagResumeLong            = "--resume"
	FlagResumeShort           = "-r"
	FlagRetryPassesLong       = "--retry-passes"
	FlagRetryPassesShort      = "-p"
	FlagRetrySubchannel       = "--retry-subchannel"
	FlagSkipLong              = "--skip"
	FlagSkipShort             = "-k"
	FlagSpeed                 = "--speed"
	FlagStopOnErrorLong       = "--stop-on-error"
	FlagStopOnErrorShort      = "-s"
	FlagStoreEncrypted        = "--store-encrypted"
	FlagSubchannel            = "--subchannel"
	FlagTitleKeys             = "--title-keys"
	FlagTrim                  = "--trim"
	FlagUseBufferedReads      = "--use-buffered-reads"
)

// Media scan options.
const (
	FlagCreateGraphLong  = "--create-graph"
	FlagCreateGraphShort = "-g"
	FlagDimensionsLong   = "--dimensions"
	FlagDimensionsShort  = "-l"
	FlagIBGLog           = "--ibg-log"
	FlagMHDDLog          = "--mhdd-log"
)

// Image options.
const (
	FlagAdler32         = "--adler32"
	FlagComments        = "--comments"
	FlagCount           = "--count"
	FlagCRC16           = "--crc16"
	FlagCRC32           = "--crc32"
	FlagCRC64           = "--crc64"
	FlagCreator         = "--creator"
	FlagFletcher16      = "--fletcher16"
	FlagFletcher32      = "--fletcher32"
	FlagMD5             = "--md5"
	FlagOutputPrefix    = "--output-prefix"
	FlagSeparatedTracks = "--separated-tracks"
	FlagSHA1            = "--sha1"
	FlagSHA256          = "--sha256"
	FlagSHA384          = "--sha384"
	FlagSHA512          = "--sha512"
	FlagSpamSum         = "--spamsum"
	FlagVerifyDisc      = "--verify-disc"
	FlagVerifySectors   = "--verify-sectors"
	FlagWholeDisc       = "--whole-disc"
)

// Subchannel modes accepted by --subchannel.
const (
	SubchannelAny    = "any"
	SubchannelRW     = "rw"
	SubchannelRWOrPQ = "rw-or-pq"
	SubchannelPQ     = "pq"
	SubchannelNone   = "none"
)

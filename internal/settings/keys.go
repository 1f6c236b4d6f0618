package settings

// Redumper option keys and their defaults.
const (
	RedumperEnableVerbose       = "redumper.enable_verbose"
	RedumperEnableDebug         = "redumper.enable_debug"
	RedumperReadMethod          = "redumper.read_method"
	RedumperSectorOrder         = "redumper.sector_order"
	RedumperUseGenericDriveType = "redumper.use_generic_drive_type"
	RedumperRereadCount         = "redumper.reread_count"
	RedumperEnableLeadinRetry   = "redumper.enable_leadin_retry"
	RedumperLeadinRetryCount    = "redumper.leadin_retry_count"

	RedumperEnableVerboseDefault       = true
	RedumperEnableDebugDefault         = false
	RedumperReadMethodDefault          = "NONE"
	RedumperSectorOrderDefault         = "NONE"
	RedumperUseGenericDriveTypeDefault = false
	RedumperRereadCountDefault         = 20
	RedumperEnableLeadinRetryDefault   = false
	RedumperLeadinRetryCountDefault    = 4
)

// DiscImageCreator option keys and their defaults.
const (
	DICQuietMode        = "dic.quiet_mode"
	DICParanoidMode     = "dic.paranoid_mode"
	DICRereadCount      = "dic.reread_count"
	DICDVDRereadCount   = "dic.dvd_reread_count"
	DICMultiSectorRead  = "dic.multi_sector_read"
	DICMultiSectorValue = "dic.multi_sector_read_value"

	DICQuietModeDefault        = false
	DICParanoidModeDefault     = false
	DICRereadCountDefault      = 20
	DICDVDRereadCountDefault   = 10
	DICMultiSectorReadDefault  = false
	DICMultiSectorValueDefault = 0
)

// Aaru option keys and their defaults.
const (
	AaruEnableDebug       = "aaru.enable_debug"
	AaruEnableVerbose     = "aaru.enable_verbose"
	AaruForceDumping      = "aaru.force_dumping"
	AaruRereadCount       = "aaru.reread_count"
	AaruStripPersonalData = "aaru.strip_personal_data"

	AaruEnableDebugDefault       = false
	AaruEnableVerboseDefault     = false
	AaruForceDumpingDefault      = true
	AaruRereadCountDefault       = 5
	AaruStripPersonalDataDefault = false
)

// Redumper read methods and sector orders accepted by the read_method and
// sector_order options. NONE leaves the drive default in place.
var (
	RedumperReadMethods  = []string{"NONE", "BE", "D8"}
	RedumperSectorOrders = []string{"NONE", "DATA_C2_SUB", "DATA_SUB_C2", "DATA_SUB", "DATA_C2"}
)

// KnownKeys lists every option key a defaulting pipeline reads.
func KnownKeys() []string {
	return []string{
		RedumperEnableVerbose,
		RedumperEnableDebug,
		RedumperReadMethod,
		RedumperSectorOrder,
		RedumperUseGenericDriveType,
		RedumperRereadCount,
		RedumperEnableLeadinRetry,
		RedumperLeadinRetryCount,
		DICQuietMode,
		DICParanoidMode,
		DICRereadCount,
		DICDVDRereadCount,
		DICMultiSectorRead,
		DICMultiSectorValue,
		AaruEnableDebug,
		AaruEnableVerbose,
		AaruForceDumping,
		AaruRereadCount,
		AaruStripPersonalData,
	}
}

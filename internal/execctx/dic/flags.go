package dic

const (
	FlagAddOffset           = "/a"
	FlagAtariJaguar         = "/aj"
	FlagAnchorVolumeDescPtr = "/avdp"
	FlagBEOpcode            = "/be"
	FlagC2Opcode            = "/c2"
	FlagD8Opcode            = "/d8"
	FlagDisableBeep         = "/q"
	FlagForceUnitAccess     = "/f"
	FlagMultiSectorRead     = "/mr"
	FlagMultiSession        = "/ms"
	FlagNoFixSubP           = "/np"
	FlagNoFixSubQ           = "/nq"
	FlagNoFixSubRtoW        = "/nr"
	FlagNoFixSubQLibCrypt   = "/nl"
	FlagNoFixSubQSecuROM    = "/ns"
	FlagNoSkipSS            = "/nss"
	FlagPadSector           = "/ps"
	FlagRaw                 = "/raw"
	FlagReverse             = "/r"
	FlagDVDReread           = "/rr"
	FlagScanFileProtect     = "/sf"
	FlagScanSectorProtect   = "/ss"
	FlagSkipSector          = "/sk"
	FlagSubchannelReadLevel = "/s"
	FlagVideoNow            = "/vn"
	FlagVideoNowColor       = "/vnc"
	FlagVideoNowXP          = "/vnx"
)

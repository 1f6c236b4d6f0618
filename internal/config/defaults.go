package config

const (
	defaultOutputDir        = "~/dumps"
	defaultDataDir          = "~/.local/share/discdump"
	defaultProgram          = "redumper"
	defaultDrive            = "/dev/sr0"
	defaultMediaType        = "cdrom"
	defaultFilename         = "track"
	defaultLogFormat        = "console"
	defaultLogLevel         = "info"
	defaultRedumperBinary   = "redumper"
	defaultDICBinary        = "DiscImageCreator"
	defaultAaruBinary       = "aaru"
	defaultConfigPath       = "~/.config/discdump/config.toml"
	projectConfigFilename   = "discdump.toml"
	presetsDatabaseFilename = "presets.db"
	maxDriveSpeed           = 72
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			OutputDir: defaultOutputDir,
			DataDir:   defaultDataDir,
		},
		Dumping: Dumping{
			Program:   defaultProgram,
			Drive:     defaultDrive,
			MediaType: defaultMediaType,
			Filename:  defaultFilename,
		},
		Options: Options{},
		Tools: Tools{
			Redumper:         defaultRedumperBinary,
			DiscImageCreator: defaultDICBinary,
			Aaru:             defaultAaruBinary,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}

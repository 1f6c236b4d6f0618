package execctx

import (
	"strings"

	"discdump/internal/input"
	"discdump/internal/media"
	"discdump/internal/settings"
)

// Program names a supported dumping program.
type Program string

const (
	ProgramRedumper         Program = "redumper"
	ProgramDiscImageCreator Program = "dic"
	ProgramAaru             Program = "aaru"
)

// Programs lists the supported programs in preference order.
func Programs() []Program {
	return []Program{ProgramRedumper, ProgramDiscImageCreator, ProgramAaru}
}

// ParseProgram resolves a program name, accepting the long DiscImageCreator
// spelling as well as "dic".
func ParseProgram(value string) (Program, bool) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "redumper":
		return ProgramRedumper, true
	case "dic", "discimagecreator":
		return ProgramDiscImageCreator, true
	case "aaru":
		return ProgramAaru, true
	default:
		return "", false
	}
}

// DisplayName returns the program's published name.
func (p Program) DisplayName() string {
	switch p {
	case ProgramRedumper:
		return "Redumper"
	case ProgramDiscImageCreator:
		return "DiscImageCreator"
	case ProgramAaru:
		return "Aaru"
	default:
		return string(p)
	}
}

// Settings are the discrete selections the defaulting pipeline starts from.
// A DriveSpeed of zero leaves the speed unset.
type Settings struct {
	System     media.System
	MediaType  media.Type
	DrivePath  string
	Filename   string
	DriveSpeed int
	Options    settings.Options
}

// Context is one dumping program's view of an invocation. Implementations are
// plain mutable values and are not safe for concurrent use.
type Context interface {
	Program() Program

	// Parse resets the context and reads params. It reports false for blank
	// input or a malformed command prefix.
	Parse(params string) bool
	// SetDefaults resets the context and fills it from s. Media types the
	// program cannot dump leave the context empty.
	SetDefaults(s Settings)
	// Generate renders the argument string. It never fails; absent values
	// are omitted.
	Generate() string
	// Validate reports every present flag the active command does not
	// accept.
	Validate() error

	CommandSupport() map[string][]string
	DefaultExtension(t media.Type) string
	MediaType() (media.Type, bool)
	IsDumpingCommand() bool

	BaseCommand() string
	Modes() []string
	InputPath() string
	OutputPath() string
	Speed() (int, bool)

	Present(flag string) bool
	Value(flag string) input.Value
	Set(flag string, v input.Value) error
	Unset(flag string)
	// Values returns every present flag keyed by its primary name.
	Values() map[string]input.Value
	Reset()
}

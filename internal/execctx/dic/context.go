package dic

import (
	"fmt"
	"math"
	"slices"
	"strconv"
	"strings"

	"discdump/internal/execctx"
	"discdump/internal/input"
	"discdump/internal/media"
	"discdump/internal/settings"
)

// Context holds a DiscImageCreator invocation.
type Context struct {
	command string

	drive    string
	filename string
	speed    int
	hasSpeed bool
	lbaStart int
	lbaEnd   int
	hasRange bool

	table     *execctx.Table
	mediaType media.Type
}

var _ execctx.Context = (*Context)(nil)

// New returns an empty Context.
func New() *Context {
	return &Context{table: newTable()}
}

// Parse builds a Context from an argument string.
func Parse(params string) (*Context, bool) {
	c := New()
	ok := c.Parse(params)
	return c, ok
}

// FromSettings builds a Context through the defaulting pipeline.
func FromSettings(s execctx.Settings) *Context {
	c := New()
	c.SetDefaults(s)
	return c
}

func newTable() *execctx.Table {
	slash := input.FlagPrefix("/")
	return execctx.NewTable(
		input.NewInt32(FlagAddOffset, input.Required()),
		input.NewBool(FlagAtariJaguar),
		input.NewBool(FlagAnchorVolumeDescPtr),
		input.NewString(FlagBEOpcode, slash, input.Bare()),
		input.NewInt32Array(FlagC2Opcode, 4),
		input.NewBool(FlagD8Opcode),
		input.NewBool(FlagDisableBeep),
		input.NewInt32(FlagForceUnitAccess, input.Bare()),
		input.NewInt32(FlagMultiSectorRead, input.Bare()),
		input.NewBool(FlagMultiSession),
		input.NewBool(FlagNoFixSubP),
		input.NewBool(FlagNoFixSubQ),
		input.NewBool(FlagNoFixSubRtoW),
		input.NewBool(FlagNoFixSubQLibCrypt),
		input.NewBool(FlagNoFixSubQSecuROM),
		input.NewBool(FlagNoSkipSS),
		input.NewUint8(FlagPadSector, input.Hex(), input.Required()),
		input.NewBool(FlagRaw),
		input.NewBool(FlagReverse),
		input.NewInt32(FlagDVDReread, input.Bare()),
		input.NewInt32(FlagScanFileProtect, input.Bare()),
		input.NewBool(FlagScanSectorProtect),
		input.NewInt32Array(FlagSkipSector, 2, input.Bounds(0, math.MaxInt32)),
		input.NewInt32(FlagSubchannelReadLevel, input.Required()),
		input.NewInt32(FlagVideoNow, input.Bare()),
		input.NewBool(FlagVideoNowColor),
		input.NewBool(FlagVideoNowXP),
	)
}

func (c *Context) Program() execctx.Program { return execctx.ProgramDiscImageCreator }

// Reset clears the verb, positionals and flags.
func (c *Context) Reset() {
	*c = Context{table: c.table}
	c.table.Reset()
}

// Parse reads the verb, its positional parameters and then flags. Flags the
// verb does not accept are skipped.
func (c *Context) Parse(params string) bool {
	c.Reset()
	parts := execctx.Split(params)
	if len(parts) == 0 {
		return false
	}

	spec, ok := commands[parts[0]]
	if !ok {
		return false
	}
	c.command = parts[0]

	index, ok := c.parsePositionals(parts, spec)
	if !ok {
		c.Reset()
		return false
	}

	c.table.Process(parts, index, execctx.SupportedBy(support, c.command))
	return true
}

func (c *Context) parsePositionals(parts []string, spec positional) (int, bool) {
	index := 1
	next := func() (string, bool) {
		if index >= len(parts) {
			return "", false
		}
		token := parts[index]
		index++
		return strings.Trim(token, `"`), true
	}
	nextInt := func() (int, bool) {
		token, ok := next()
		if !ok {
			return 0, false
		}
		n, err := strconv.Atoi(token)
		return n, err == nil
	}

	var ok bool
	if spec.drive {
		if c.drive, ok = next(); !ok {
			return index, false
		}
	}
	if spec.file {
		if c.filename, ok = next(); !ok {
			return index, false
		}
	}
	if spec.speed {
		if c.speed, ok = nextInt(); !ok {
			return index, false
		}
		c.hasSpeed = true
	}
	if spec.lbaRange {
		if c.lbaStart, ok = nextInt(); !ok {
			return index, false
		}
		if c.lbaEnd, ok = nextInt(); !ok {
			return index, false
		}
		c.hasRange = true
	}
	return index, true
}

// SetDefaults picks a verb for the media type and system and applies the
// DiscImageCreator options. Media DiscImageCreator cannot dump leave the
// context empty.
func (c *Context) SetDefaults(s execctx.Settings) {
	c.Reset()

	command, ok := commandFor(s.MediaType, s.System)
	if !ok {
		return
	}
	c.command = command
	c.mediaType = s.MediaType
	spec := commands[command]

	c.drive = s.DrivePath
	c.filename = s.Filename
	if spec.speed {
		c.speed = max(s.DriveSpeed, 0)
		c.hasSpeed = true
	}

	opts := s.Options
	if opts.Bool(settings.DICQuietMode, settings.DICQuietModeDefault) {
		c.table.MustSet(FlagDisableBeep, input.Bool(true))
	}

	switch command {
	case CommandCD, CommandGDROM:
		reread := opts.Int(settings.DICRereadCount, settings.DICRereadCountDefault)
		c.table.MustSet(FlagC2Opcode, input.Int32Array{int32Ptr(reread), nil, nil, nil})
		if opts.Bool(settings.DICParanoidMode, settings.DICParanoidModeDefault) {
			c.table.MustSet(FlagNoFixSubQ, input.Bool(true))
			c.table.MustSet(FlagNoFixSubRtoW, input.Bool(true))
		}
	case CommandDVD, CommandXbox:
		if reread := opts.Int(settings.DICDVDRereadCount, settings.DICDVDRereadCountDefault); reread > 0 {
			c.table.MustSet(FlagDVDReread, input.Int32(reread))
		}
	}

	if command == CommandCD {
		if opts.Bool(settings.DICMultiSectorRead, settings.DICMultiSectorReadDefault) {
			value := opts.Int(settings.DICMultiSectorValue, settings.DICMultiSectorValueDefault)
			c.table.MustSet(FlagMultiSectorRead, input.Int32(value))
		}
		c.applySystemDefaults(s.System)
	}

	if s.MediaType == media.TypeGameCube || s.MediaType == media.TypeWii {
		c.table.MustSet(FlagRaw, input.Bool(true))
	}
}

func (c *Context) applySystemDefaults(system media.System) {
	switch system {
	case media.SystemIBMPC:
		c.table.MustSet(FlagNoFixSubQSecuROM, input.Bool(true))
		c.table.MustSet(FlagScanFileProtect, input.Int32(0))
		c.table.MustSet(FlagScanSectorProtect, input.Bool(true))
	case media.SystemAtariJaguarCD:
		c.table.MustSet(FlagAtariJaguar, input.Bool(true))
	case media.SystemSonyPlayStation:
		c.table.MustSet(FlagNoFixSubQLibCrypt, input.Bool(true))
	case media.SystemHasbroVideoNow:
		c.table.MustSet(FlagVideoNow, input.Int32(0))
	case media.SystemHasbroVideoNowClr:
		c.table.MustSet(FlagVideoNowColor, input.Bool(true))
	case media.SystemHasbroVideoNowXP:
		c.table.MustSet(FlagVideoNowXP, input.Bool(true))
	}
}

func commandFor(t media.Type, system media.System) (string, bool) {
	switch t {
	case media.TypeCDROM:
		if system == media.SystemSuperAudioCD {
			return CommandSACD, true
		}
		return CommandCD, true
	case media.TypeGDROM:
		return CommandGDROM, true
	case media.TypeDVD:
		if system == media.SystemMicrosoftXbox || system == media.SystemMicrosoftXbox360 {
			return CommandXbox, true
		}
		return CommandDVD, true
	case media.TypeHDDVD, media.TypeGameCube, media.TypeWii:
		return CommandDVD, true
	case media.TypeBluRay:
		return CommandBluRay, true
	case media.TypeFloppyDisk:
		return CommandFloppy, true
	case media.TypeHardDisk:
		return CommandDisk, true
	default:
		return "", false
	}
}

// Generate renders the verb, its positionals and the flags it accepts.
func (c *Context) Generate() string {
	if c.command == "" {
		return ""
	}
	spec := commands[c.command]
	fragments := []string{c.command}
	if spec.drive {
		fragments = append(fragments, quoteIfSpaced(c.drive))
	}
	if spec.file {
		fragments = append(fragments, `"`+strings.Trim(c.filename, `"`)+`"`)
	}
	if spec.speed && c.hasSpeed {
		fragments = append(fragments, strconv.Itoa(c.speed))
	}
	if spec.lbaRange && c.hasRange {
		fragments = append(fragments, strconv.Itoa(c.lbaStart), strconv.Itoa(c.lbaEnd))
	}

	allowed := support[c.command]
	for _, name := range c.table.Names() {
		if !slices.Contains(allowed, name) {
			continue
		}
		fragments = append(fragments, c.table.Format(name, false))
	}
	return execctx.JoinFragments(fragments)
}

// quoteIfSpaced quotes s when it holds whitespace or is empty, so an empty
// positional keeps its slot.
func quoteIfSpaced(s string) string {
	s = strings.Trim(s, `"`)
	if s == "" || strings.ContainsAny(s, " \t") {
		return `"` + s + `"`
	}
	return s
}

// Validate reports flags the verb does not accept and missing positionals.
func (c *Context) Validate() error {
	spec, ok := commands[c.command]
	if !ok {
		return fmt.Errorf("%w: %q", execctx.ErrUnknownCommand, c.command)
	}
	if spec.drive && c.drive == "" {
		return fmt.Errorf("command %s: drive is required", c.command)
	}
	if spec.file && c.filename == "" {
		return fmt.Errorf("command %s: output file is required", c.command)
	}
	if spec.speed && !c.hasSpeed {
		return fmt.Errorf("command %s: drive speed is required", c.command)
	}
	if spec.lbaRange && !c.hasRange {
		return fmt.Errorf("command %s: LBA range is required", c.command)
	}
	return execctx.ValidateSupport(c.table, support, c.command)
}

func (c *Context) CommandSupport() map[string][]string {
	out := make(map[string][]string, len(support))
	for command, flags := range support {
		out[command] = slices.Clone(flags)
	}
	return out
}

func (c *Context) DefaultExtension(t media.Type) string { return media.Extension(t) }

// MediaType returns the media the verb dumps.
func (c *Context) MediaType() (media.Type, bool) {
	spec, ok := commands[c.command]
	if !ok || !spec.dumps() {
		return media.TypeNone, false
	}
	if c.mediaType != media.TypeNone {
		return c.mediaType, true
	}
	return spec.media, true
}

func (c *Context) IsDumpingCommand() bool {
	spec, ok := commands[c.command]
	return ok && spec.dumps()
}

func (c *Context) BaseCommand() string { return c.command }

func (c *Context) Modes() []string {
	if c.command == "" {
		return nil
	}
	return []string{c.command}
}

// SetCommand switches the verb. Positionals the new verb does not take are
// kept but not rendered.
func (c *Context) SetCommand(command string) error {
	if !IsCommand(command) {
		return fmt.Errorf("%w: %q", execctx.ErrUnknownCommand, command)
	}
	c.command = command
	return nil
}

// SetDrive sets the drive positional.
func (c *Context) SetDrive(drive string) { c.drive = drive }

// SetFilename sets the output file positional.
func (c *Context) SetFilename(filename string) { c.filename = filename }

// SetSpeed sets the speed positional.
func (c *Context) SetSpeed(speed int) {
	c.speed = speed
	c.hasSpeed = true
}

// SetRange sets the LBA range used by the audio and data verbs.
func (c *Context) SetRange(start, end int) {
	c.lbaStart, c.lbaEnd = start, end
	c.hasRange = true
}

// Range returns the LBA range and whether one was supplied.
func (c *Context) Range() (start, end int, ok bool) {
	return c.lbaStart, c.lbaEnd, c.hasRange
}

func (c *Context) InputPath() string { return c.drive }

// OutputPath is the output file exactly as passed to DiscImageCreator.
func (c *Context) OutputPath() string { return c.filename }

func (c *Context) Speed() (int, bool) { return c.speed, c.hasSpeed }

// SetBare marks a flag that takes an optional value as given without one.
func (c *Context) SetBare(flag string) error { return c.table.SetBare(flag) }

func (c *Context) Present(flag string) bool             { return c.table.Present(flag) }
func (c *Context) Value(flag string) input.Value        { return c.table.Value(flag) }
func (c *Context) Set(flag string, v input.Value) error { return c.table.Set(flag, v) }
func (c *Context) Unset(flag string)                    { c.table.Unset(flag) }
func (c *Context) Values() map[string]input.Value       { return c.table.Values() }

func int32Ptr(n int) *int32 {
	v := int32(n)
	return &v
}

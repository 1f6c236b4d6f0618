package redumper

import (
	"fmt"
	"slices"
	"strings"

	"discdump/internal/execctx"
	"discdump/internal/input"
	"discdump/internal/media"
	"discdump/internal/settings"
)

// Context holds a Redumper invocation.
type Context struct {
	modes     []string
	table     *execctx.Table
	mediaType media.Type
	system    media.System
	fallback  string
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
	return execctx.NewTable(
		input.NewBool(FlagHelpLong, input.Alias(FlagHelpShort)),
		input.NewBool(FlagVersion),
		input.NewBool(FlagVerbose),
		input.NewBool(FlagAutoEject),
		input.NewBool(FlagDebug),
		input.NewString(FlagDrive),
		input.NewInt32(FlagSpeed),
		input.NewInt32(FlagRetries),
		input.NewString(FlagImagePath, input.AlwaysQuote()),
		input.NewString(FlagImageName, input.AlwaysQuote()),
		input.NewBool(FlagOverwrite),

		input.NewString(FlagDriveType),
		input.NewInt32(FlagDriveReadOffset),
		input.NewInt32(FlagDriveC2Shift),
		input.NewInt32(FlagDrivePregapStart),
		input.NewString(FlagDriveReadMethod),
		input.NewString(FlagDriveSectorOrder),

		input.NewBool(FlagPlextorSkipLeadin),
		input.NewInt32(FlagPlextorLeadinRetries),
		input.NewBool(FlagAsusSkipLeadout),

		input.NewInt32(FlagForceOffset),
		input.NewInt32(FlagAudioSilenceThreshold),
		input.NewBool(FlagCorrectOffsetShift),
		input.NewBool(FlagOffsetShiftRelocate),

		input.NewBool(FlagForceSplit),
		input.NewBool(FlagLeaveUnchanged),
		input.NewBool(FlagForceQTOC),
		input.NewUint8(FlagSkipFill, input.Hex()),
		input.NewBool(FlagISO9660Trim),

		input.NewInt32(FlagLBAStart),
		input.NewInt32(FlagLBAEnd),
		input.NewBool(FlagRefineSubchannel),
		input.NewString(FlagSkip),
		input.NewInt32(FlagDumpWriteOffset),
		input.NewInt32(FlagDumpReadSize),
		input.NewBool(FlagOverreadLeadout),
		input.NewBool(FlagForceUnscrambled),
		input.NewBool(FlagLegacySubs),
		input.NewBool(FlagDisableCDText),
	)
}

func (c *Context) Program() execctx.Program { return execctx.ProgramRedumper }

// Reset clears modes, flags and any remembered media selection.
func (c *Context) Reset() {
	c.modes = nil
	c.table.Reset()
	c.mediaType = media.TypeNone
	c.system = media.SystemNone
	c.fallback = ""
}

// Parse reads leading modes and then flags. A token before the first flag
// that is not a mode fails the parse and leaves the context reset.
func (c *Context) Parse(params string) bool {
	c.Reset()
	parts := execctx.Split(params)
	if len(parts) == 0 {
		return false
	}

	index := 0
	for ; index < len(parts); index++ {
		part := parts[index]
		if IsMode(part) {
			c.modes = append(c.modes, part)
			continue
		}
		if strings.HasPrefix(part, "-") {
			break
		}
		c.Reset()
		return false
	}

	c.table.Process(parts, index, nil)

	if !c.table.Present(FlagImageName) {
		c.fallback = FallbackImageName
	}
	return true
}

// SetDefaults fills the context for dumping s.MediaType. Only CD, DVD, HD-DVD
// and Blu-ray media are dumped by Redumper.
func (c *Context) SetDefaults(s execctx.Settings) {
	c.Reset()

	switch s.MediaType {
	case media.TypeCDROM:
		if s.System == media.SystemSuperAudioCD {
			c.modes = []string{ModeSACD}
		} else {
			c.modes = []string{ModeCD}
		}
	case media.TypeDVD, media.TypeHDDVD:
		c.modes = []string{ModeDVD}
	case media.TypeBluRay:
		c.modes = []string{ModeBluRay}
	default:
		return
	}
	c.mediaType = s.MediaType
	c.system = s.System

	if s.DrivePath != "" {
		c.table.MustSet(FlagDrive, input.String(s.DrivePath))
	}
	if s.DriveSpeed > 0 {
		c.table.MustSet(FlagSpeed, input.Int32(s.DriveSpeed))
	}

	opts := s.Options
	if opts.Bool(settings.RedumperEnableVerbose, settings.RedumperEnableVerboseDefault) {
		c.table.MustSet(FlagVerbose, input.Bool(true))
	}
	if opts.Bool(settings.RedumperEnableDebug, settings.RedumperEnableDebugDefault) {
		c.table.MustSet(FlagDebug, input.Bool(true))
	}
	if method := opts.String(settings.RedumperReadMethod, settings.RedumperReadMethodDefault); !settings.IsNone(method) {
		c.table.MustSet(FlagDriveReadMethod, input.String(method))
	}
	if order := opts.String(settings.RedumperSectorOrder, settings.RedumperSectorOrderDefault); !settings.IsNone(order) {
		c.table.MustSet(FlagDriveSectorOrder, input.String(order))
	}
	if opts.Bool(settings.RedumperUseGenericDriveType, settings.RedumperUseGenericDriveTypeDefault) {
		c.table.MustSet(FlagDriveType, input.String(GenericDriveType))
	}

	dir, base := execctx.SplitFilename(s.Filename)
	if dir != "" {
		c.table.MustSet(FlagImagePath, input.String(dir))
	}
	if base != "" {
		c.table.MustSet(FlagImageName, input.String(base))
	}

	retries := opts.Int(settings.RedumperRereadCount, settings.RedumperRereadCountDefault)
	c.table.MustSet(FlagRetries, input.Int32(retries))

	if opts.Bool(settings.RedumperEnableLeadinRetry, settings.RedumperEnableLeadinRetryDefault) {
		count := opts.Int(settings.RedumperLeadinRetryCount, settings.RedumperLeadinRetryCountDefault)
		c.table.MustSet(FlagPlextorLeadinRetries, input.Int32(count))
	}
}

// Generate renders modes and then present flags in declared order.
func (c *Context) Generate() string {
	fragments := slices.Clone(c.modes)
	for _, name := range c.table.Names() {
		if name == FlagDumpReadSize && !c.positive(name) {
			continue
		}
		fragments = append(fragments, c.table.Format(name, true))
	}
	return execctx.JoinFragments(fragments)
}

func (c *Context) positive(flag string) bool {
	n, ok := input.AsInt(c.table.Value(flag))
	return ok && n > 0
}

// Validate checks modes and flags. Every flag is valid in every mode.
func (c *Context) Validate() error {
	for _, mode := range c.modes {
		if !IsMode(mode) {
			return fmt.Errorf("%w: %q", execctx.ErrUnknownCommand, mode)
		}
	}
	return execctx.ValidateSupport(c.table, c.CommandSupport(), ModeNone)
}

func (c *Context) CommandSupport() map[string][]string {
	return map[string][]string{ModeNone: slices.Clone(commandSupport)}
}

func (c *Context) DefaultExtension(t media.Type) string { return media.Extension(t) }

// MediaType infers the media from the first mode that names one.
func (c *Context) MediaType() (media.Type, bool) {
	for _, mode := range c.modes {
		switch mode {
		case ModeCD, ModeSACD:
			return media.TypeCDROM, true
		case ModeDVD:
			return media.TypeDVD, true
		case ModeBluRay:
			return media.TypeBluRay, true
		}
	}
	return media.TypeNone, false
}

// IsDumpingCommand reports true for an empty mode list or any dumping mode.
func (c *Context) IsDumpingCommand() bool {
	if len(c.modes) == 0 {
		return true
	}
	for _, mode := range c.modes {
		if slices.Contains(dumpingModes, mode) {
			return true
		}
	}
	return false
}

// BaseCommand is always empty; Redumper selects behaviour through modes.
func (c *Context) BaseCommand() string { return ModeNone }

func (c *Context) Modes() []string {
	if len(c.modes) == 0 {
		return nil
	}
	return slices.Clone(c.modes)
}

// SetModes replaces the mode list.
func (c *Context) SetModes(modes ...string) error {
	for _, mode := range modes {
		if !IsMode(mode) {
			return fmt.Errorf("%w: %q", execctx.ErrUnknownCommand, mode)
		}
	}
	c.modes = append([]string(nil), modes...)
	return nil
}

func (c *Context) InputPath() string {
	s, _ := input.AsString(c.table.Value(FlagDrive))
	return s
}

// OutputPath joins the image path and name with the extension for the known
// or inferred media type.
func (c *Context) OutputPath() string {
	dir, _ := input.AsString(c.table.Value(FlagImagePath))
	name, ok := input.AsString(c.table.Value(FlagImageName))
	if !ok || name == "" {
		name = c.fallback
	}
	t := c.mediaType
	if t == media.TypeNone {
		t, _ = c.MediaType()
	}
	return execctx.JoinOutput(dir, name, c.DefaultExtension(t))
}

func (c *Context) Speed() (int, bool) {
	n, ok := input.AsInt(c.table.Value(FlagSpeed))
	return int(n), ok
}

func (c *Context) Present(flag string) bool             { return c.table.Present(flag) }
func (c *Context) Value(flag string) input.Value        { return c.table.Value(flag) }
func (c *Context) Set(flag string, v input.Value) error { return c.table.Set(flag, v) }
func (c *Context) Unset(flag string)                    { c.table.Unset(flag) }
func (c *Context) Values() map[string]input.Value       { return c.table.Values() }

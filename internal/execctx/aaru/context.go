package aaru

import (
	"fmt"
	"path/filepath"
	"slices"
	"strings"

	"discdump/internal/execctx"
	"discdump/internal/input"
	"discdump/internal/media"
	"discdump/internal/settings"
)

// Extension is the image extension Aaru writes for every media type.
const Extension = ".aaruf"

// Context holds an Aaru invocation.
type Context struct {
	command   string
	input     string
	output    string
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
	explicit := input.ExplicitBool()
	return execctx.NewTable(
		input.NewBool(FlagDebugLong, input.Alias(FlagDebugShort)),
		input.NewBool(FlagHelpLong, input.Alias(FlagHelpShort)),
		input.NewBool(FlagVerboseLong, input.Alias(FlagVerboseShort)),
		input.NewBool(FlagVersion),

		input.NewBool(FlagEject, explicit),
		input.NewString(FlagEncodingLong, input.Alias(FlagEncodingShort)),
		input.NewBool(FlagFirstPregap, explicit),
		input.NewBool(FlagFixOffset, explicit),
		input.NewBool(FlagFixSubchannel, explicit),
		input.NewBool(FlagFixSubchannelCrc, explicit),
		input.NewBool(FlagFixSubchannelPosition, explicit),
		input.NewBool(FlagForceLong, input.Alias(FlagForceShort), explicit),
		input.NewString(FlagFormatLong, input.Alias(FlagFormatShort)),
		input.NewBool(FlagGenerateSubchannels, explicit),
		input.NewUint32(FlagIgnoreCdrRunouts),
		input.NewUint32(FlagMaxBlocks),
		input.NewBool(FlagMetadata, explicit),
		input.NewString(FlagOptionsLong, input.Alias(FlagOptionsShort)),
		input.NewBool(FlagPersistent, explicit),
		input.NewBool(FlagPrivate, explicit),
		input.NewBool(FlagResumeLong, input.Alias(FlagResumeShort), explicit),
		input.NewUint16(FlagRetryPassesLong, input.Alias(FlagRetryPassesShort)),
		input.NewBool(FlagRetrySubchannel, explicit),
		input.NewUint32(FlagSkipLong, input.Alias(FlagSkipShort)),
		input.NewUint8(FlagSpeed),
		input.NewBool(FlagStopOnErrorLong, input.Alias(FlagStopOnErrorShort), explicit),
		input.NewBool(FlagStoreEncrypted, explicit),
		input.NewString(FlagSubchannel),
		input.NewBool(FlagTitleKeys, explicit),
		input.NewBool(FlagTrim, explicit),
		input.NewBool(FlagUseBufferedReads, explicit),

		input.NewBool(FlagCreateGraphLong, input.Alias(FlagCreateGraphShort), explicit),
		input.NewUint32(FlagDimensionsLong, input.Alias(FlagDimensionsShort)),
		input.NewString(FlagIBGLog),
		input.NewString(FlagMHDDLog),

		input.NewBool(FlagAdler32, explicit),
		input.NewString(FlagComments),
		input.NewUint32(FlagCount),
		input.NewBool(FlagCRC16, explicit),
		input.NewBool(FlagCRC32, explicit),
		input.NewBool(FlagCRC64, explicit),
		input.NewString(FlagCreator),
		input.NewBool(FlagFletcher16, explicit),
		input.NewBool(FlagFletcher32, explicit),
		input.NewBool(FlagMD5, explicit),
		input.NewString(FlagOutputPrefix),
		input.NewBool(FlagSeparatedTracks, explicit),
		input.NewBool(FlagSHA1, explicit),
		input.NewBool(FlagSHA256, explicit),
		input.NewBool(FlagSHA384, explicit),
		input.NewBool(FlagSHA512, explicit),
		input.NewBool(FlagSpamSum, explicit),
		input.NewBool(FlagVerifyDisc, explicit),
		input.NewBool(FlagVerifySectors, explicit),
		input.NewBool(FlagWholeDisc, explicit),
	)
}

func (c *Context) Program() execctx.Program { return execctx.ProgramAaru }

// Reset clears the verb, paths and flags.
func (c *Context) Reset() {
	*c = Context{table: c.table}
	c.table.Reset()
}

func isPreCommand(flag string) bool { return slices.Contains(preCommandFlags, flag) }

// Parse reads leading switches, the two-word verb, then options and the
// trailing paths. A string of switches alone, such as "--version", is valid.
// Options the verb does not accept are still read so Validate can report
// them; Generate leaves them out.
func (c *Context) Parse(params string) bool {
	c.Reset()
	parts := execctx.Split(params)
	if len(parts) == 0 {
		return false
	}

	index := 0
	for index < len(parts) && strings.HasPrefix(parts[index], "-") {
		next := c.table.ProcessAt(parts, index, isPreCommand)
		if next == index {
			next++
		}
		index = next
	}
	if index == len(parts) {
		return true
	}
	if index+1 >= len(parts) {
		c.Reset()
		return false
	}
	command := JoinCommand(parts[index], parts[index+1])
	if !IsCommand(command) {
		c.Reset()
		return false
	}
	c.command = command

	var candidates []pathToken
	for i := index + 2; i < len(parts); {
		next := c.table.ProcessAt(parts, i, nil)
		if next != i {
			if c.rejectedValue(parts, i, next) {
				candidates = append(candidates, pathToken{value: parts[next], rejected: true})
				next++
			}
			i = next
			continue
		}
		if !strings.HasPrefix(parts[i], "-") {
			candidates = append(candidates, pathToken{value: parts[i]})
		}
		i++
	}
	paths := selectPaths(candidates, positionals[command])
	if len(paths) > 0 {
		c.input = paths[0]
	}
	if len(paths) > 1 {
		c.output = paths[1]
	}
	return true
}

// rejectedValue reports whether the token after a valued flag at parts[i]
// was its value and failed to parse. That token belongs to the flag, not to
// the trailing paths.
func (c *Context) rejectedValue(parts []string, i, next int) bool {
	if next != i+1 || next >= len(parts) || strings.Contains(parts[i], "=") {
		return false
	}
	in, ok := c.table.Input(parts[i])
	if !ok || in.Kind() == input.KindBool {
		return false
	}
	return !strings.HasPrefix(parts[next], "-")
}

type pathToken struct {
	value    string
	rejected bool
}

// selectPaths picks up to count paths. Values rejected by a preceding flag
// are dropped first when there are too many candidates, then the trailing
// tokens win.
func selectPaths(candidates []pathToken, count int) []string {
	if len(candidates) > count {
		kept := candidates[:0:0]
		for _, tok := range candidates {
			if !tok.rejected {
				kept = append(kept, tok)
			}
		}
		if len(kept) >= count {
			candidates = kept
		}
	}
	if len(candidates) > count {
		candidates = candidates[len(candidates)-count:]
	}
	paths := make([]string, len(candidates))
	for i, tok := range candidates {
		paths[i] = strings.Trim(tok.value, `"`)
	}
	return paths
}

// SetDefaults prepares a media dump for s.MediaType. Media Aaru cannot dump
// leave the context empty.
func (c *Context) SetDefaults(s execctx.Settings) {
	c.Reset()

	switch s.MediaType {
	case media.TypeCDROM, media.TypeGDROM, media.TypeDVD, media.TypeHDDVD, media.TypeBluRay,
		media.TypeFloppyDisk, media.TypeHardDisk, media.TypeUMD:
	default:
		return
	}
	c.command = CommandMediaDump
	c.mediaType = s.MediaType
	c.input = s.DrivePath
	if s.Filename != "" {
		c.output = strings.TrimSuffix(s.Filename, filepath.Ext(s.Filename)) + Extension
	}

	opts := s.Options
	if opts.Bool(settings.AaruEnableDebug, settings.AaruEnableDebugDefault) {
		c.table.MustSet(FlagDebugLong, input.Bool(true))
	}
	if opts.Bool(settings.AaruEnableVerbose, settings.AaruEnableVerboseDefault) {
		c.table.MustSet(FlagVerboseLong, input.Bool(true))
	}
	if opts.Bool(settings.AaruForceDumping, settings.AaruForceDumpingDefault) {
		c.table.MustSet(FlagForceLong, input.Bool(true))
	}
	if opts.Bool(settings.AaruStripPersonalData, settings.AaruStripPersonalDataDefault) {
		c.table.MustSet(FlagPrivate, input.Bool(true))
	}
	passes := min(max(opts.Int(settings.AaruRereadCount, settings.AaruRereadCountDefault), 0), 1<<16-1)
	c.table.MustSet(FlagRetryPassesLong, input.Uint16(passes))
	if s.DriveSpeed > 0 {
		c.table.MustSet(FlagSpeed, input.Uint8(min(s.DriveSpeed, 255)))
	}

	switch s.MediaType {
	case media.TypeCDROM, media.TypeGDROM:
		c.table.MustSet(FlagFirstPregap, input.Bool(true))
		c.table.MustSet(FlagFixOffset, input.Bool(true))
		c.table.MustSet(FlagSubchannel, input.String(SubchannelAny))
	case media.TypeDVD, media.TypeHDDVD, media.TypeBluRay:
		c.table.MustSet(FlagStoreEncrypted, input.Bool(true))
	}
}

// Generate renders switches, the verb, its options and then the paths.
func (c *Context) Generate() string {
	var fragments []string
	for _, name := range preCommandFlags {
		fragments = append(fragments, c.table.Format(name, false))
	}
	if c.command == "" {
		return execctx.JoinFragments(fragments)
	}

	fragments = append(fragments, c.command)
	allowed := support[c.command]
	for _, name := range c.table.Names() {
		if slices.Contains(allowed, name) {
			fragments = append(fragments, c.table.Format(name, false))
		}
	}

	count := positionals[c.command]
	if count > 0 && (c.input != "" || count > 1 && c.output != "") {
		fragments = append(fragments, quoteIfSpaced(c.input))
	}
	if count > 1 && c.output != "" {
		fragments = append(fragments, `"`+strings.Trim(c.output, `"`)+`"`)
	}
	return execctx.JoinFragments(fragments)
}

func quoteIfSpaced(s string) string {
	s = strings.Trim(s, `"`)
	if s == "" || strings.ContainsAny(s, " \t") {
		return `"` + s + `"`
	}
	return s
}

// Validate reports unsupported options and missing paths.
func (c *Context) Validate() error {
	if c.command == "" {
		return execctx.ValidateSupport(c.table, support, CommandNone)
	}
	count, ok := positionals[c.command]
	if !ok {
		return fmt.Errorf("%w: %q", execctx.ErrUnknownCommand, c.command)
	}
	if count > 0 && c.input == "" {
		return fmt.Errorf("command %s: input is required", c.command)
	}
	if count > 1 && c.output == "" {
		return fmt.Errorf("command %s: output is required", c.command)
	}
	return execctx.ValidateSupport(c.table, support, CommandNone, c.command)
}

func (c *Context) CommandSupport() map[string][]string {
	out := make(map[string][]string, len(support))
	for command, flags := range support {
		out[command] = slices.Clone(flags)
	}
	return out
}

func (c *Context) DefaultExtension(media.Type) string { return Extension }

// MediaType is only known when the context was built from settings.
func (c *Context) MediaType() (media.Type, bool) {
	if c.command != CommandMediaDump || c.mediaType == media.TypeNone {
		return media.TypeNone, false
	}
	return c.mediaType, true
}

func (c *Context) IsDumpingCommand() bool { return c.command == CommandMediaDump }

func (c *Context) BaseCommand() string { return c.command }

func (c *Context) Modes() []string {
	if c.command == "" {
		return nil
	}
	return strings.Fields(c.command)
}

// SetCommand switches the verb.
func (c *Context) SetCommand(command string) error {
	if !IsCommand(command) {
		return fmt.Errorf("%w: %q", execctx.ErrUnknownCommand, command)
	}
	c.command = command
	return nil
}

// SetInput sets the device or image the verb reads.
func (c *Context) SetInput(path string) { c.input = path }

// SetOutput sets the image the verb writes.
func (c *Context) SetOutput(path string) { c.output = path }

func (c *Context) InputPath() string  { return c.input }
func (c *Context) OutputPath() string { return c.output }

func (c *Context) Speed() (int, bool) {
	n, ok := input.AsInt(c.table.Value(FlagSpeed))
	return int(n), ok
}

func (c *Context) Present(flag string) bool             { return c.table.Present(flag) }
func (c *Context) Value(flag string) input.Value        { return c.table.Value(flag) }
func (c *Context) Set(flag string, v input.Value) error { return c.table.Set(flag, v) }
func (c *Context) Unset(flag string)                    { c.table.Unset(flag) }
func (c *Context) Values() map[string]input.Value       { return c.table.Values() }

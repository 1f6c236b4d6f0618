package execctx

import "errors"

var (
	// ErrUnknownFlag is returned when a flag name is not defined by a
	// dialect.
	ErrUnknownFlag = errors.New("unknown flag")
	// ErrUnsupportedFlag is returned when a present flag is not accepted by
	// the active command.
	ErrUnsupportedFlag = errors.New("flag not supported by command")
	// ErrUnknownCommand is returned when the active command has no support
	// entry.
	ErrUnknownCommand = errors.New("unknown command")
)

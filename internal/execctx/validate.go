package execctx

import (
	"errors"
	"fmt"
	"slices"
)

// ValidateSupport checks every present flag in t against the support lists of
// the given commands. A flag is accepted when any of the commands lists it.
func ValidateSupport(t *Table, support map[string][]string, commands ...string) error {
	var allowed []string
	var errs []error
	for _, command := range commands {
		flags, ok := support[command]
		if !ok {
			errs = append(errs, fmt.Errorf("%w: %q", ErrUnknownCommand, command))
			continue
		}
		allowed = append(allowed, flags...)
	}
	for _, name := range t.PresentNames() {
		if slices.Contains(allowed, name) {
			continue
		}
		errs = append(errs, fmt.Errorf("%w: %s (%s)", ErrUnsupportedFlag, name, describeCommands(commands)))
	}
	return errors.Join(errs...)
}

// SupportedBy returns an accept filter for Table.ProcessAt limited to the
// flags listed for command.
func SupportedBy(support map[string][]string, command string) func(string) bool {
	flags := support[command]
	return func(flag string) bool {
		return slices.Contains(flags, flag)
	}
}

func describeCommands(commands []string) string {
	switch len(commands) {
	case 0:
		return "no command"
	case 1:
		if commands[0] == "" {
			return "no command"
		}
		return "command " + commands[0]
	default:
		return fmt.Sprintf("commands %v", commands)
	}
}

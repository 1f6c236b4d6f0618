package execctx

import (
	"fmt"

	"discdump/internal/input"
)

// Table owns a dialect's Inputs in declared precedence order and the value
// resolved for each flag. Flags that allow a bare form may hold an entry with
// a nil value, meaning the flag was given without one.
type Table struct {
	order  []*input.Input
	lookup map[string]*input.Input
	values map[string]input.Value
}

// NewTable registers inputs in precedence order. Every spelling must be
// unique; a duplicate is a programming error and panics.
func NewTable(inputs ...*input.Input) *Table {
	t := &Table{
		lookup: make(map[string]*input.Input, len(inputs)),
		values: make(map[string]input.Value, len(inputs)),
	}
	for _, in := range inputs {
		for _, name := range in.Names() {
			if _, dup := t.lookup[name]; dup {
				panic(fmt.Sprintf("execctx: flag %s defined twice", name))
			}
			t.lookup[name] = in
		}
		t.order = append(t.order, in)
	}
	return t
}

// Input returns the Input registered under any of its spellings.
func (t *Table) Input(flag string) (*input.Input, bool) {
	in, ok := t.lookup[flag]
	return in, ok
}

// Names returns the primary flag names in precedence order.
func (t *Table) Names() []string {
	names := make([]string, 0, len(t.order))
	for _, in := range t.order {
		names = append(names, in.Name())
	}
	return names
}

// ProcessAt offers parts[index] to every Input in precedence order. A flag
// that matches moves the cursor and later Inputs are tried at the new
// position. accept, when non-nil, filters the Inputs that may run. The
// returned cursor equals index when nothing matched.
//
// A flag whose value could not be read does not replace a value stored by an
// earlier pass.
func (t *Table) ProcessAt(parts []string, index int, accept func(flag string) bool) int {
	cursor := index
	for _, in := range t.order {
		if cursor >= len(parts) {
			break
		}
		if accept != nil && !accept(in.Name()) {
			continue
		}
		next, _ := in.Process(parts, cursor)
		if next == cursor {
			continue
		}
		name := in.Name()
		if v := in.Value(); v != nil {
			t.values[name] = v
		} else if _, seen := t.values[name]; !seen && in.AllowsBare() {
			t.values[name] = nil
		}
		cursor = next
	}
	return cursor
}

// Process scans parts from start to the end, skipping tokens no flag
// recognises.
func (t *Table) Process(parts []string, start int, accept func(flag string) bool) {
	for i := start; i < len(parts); {
		next := t.ProcessAt(parts, i, accept)
		if next == i {
			i++
			continue
		}
		i = next
	}
}

// Present reports whether flag has a value that renders, or was given bare.
func (t *Table) Present(flag string) bool {
	in, ok := t.lookup[flag]
	if !ok {
		return false
	}
	return t.present(in)
}

func (t *Table) present(in *input.Input) bool {
	v, ok := t.values[in.Name()]
	if !ok {
		return false
	}
	if v == nil {
		return in.AllowsBare()
	}
	return in.Emits(v)
}

// Value returns the stored value for flag, or nil.
func (t *Table) Value(flag string) input.Value {
	in, ok := t.lookup[flag]
	if !ok {
		return nil
	}
	return t.values[in.Name()]
}

// Set stores v for flag after checking its kind. A nil v clears the flag.
func (t *Table) Set(flag string, v input.Value) error {
	in, ok := t.lookup[flag]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownFlag, flag)
	}
	if v == nil {
		delete(t.values, in.Name())
		return nil
	}
	if err := in.SetValue(v); err != nil {
		return err
	}
	t.values[in.Name()] = in.Value()
	return nil
}

// SetBare marks flag as given without a value.
func (t *Table) SetBare(flag string) error {
	in, ok := t.lookup[flag]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownFlag, flag)
	}
	if !in.AllowsBare() {
		return fmt.Errorf("flag %s requires a value", in.Name())
	}
	t.values[in.Name()] = nil
	return nil
}

// MustSet is Set for values built by the dialect itself.
func (t *Table) MustSet(flag string, v input.Value) {
	if err := t.Set(flag, v); err != nil {
		panic(err)
	}
}

// Unset clears flag.
func (t *Table) Unset(flag string) {
	if in, ok := t.lookup[flag]; ok {
		delete(t.values, in.Name())
	}
}

// Values returns every present flag keyed by primary name.
func (t *Table) Values() map[string]input.Value {
	out := make(map[string]input.Value, len(t.values))
	for name, v := range t.values {
		if t.present(t.lookup[name]) {
			out[name] = v
		}
	}
	return out
}

// PresentNames returns the present flags in precedence order.
func (t *Table) PresentNames() []string {
	var names []string
	for _, in := range t.order {
		if t.present(in) {
			names = append(names, in.Name())
		}
	}
	return names
}

// Format renders flag's stored value, the bare name for a flag given
// without one, or "" when it is absent.
func (t *Table) Format(flag string, useEquals bool) string {
	in, ok := t.lookup[flag]
	if !ok || !t.present(in) {
		return ""
	}
	v := t.values[in.Name()]
	if v == nil {
		return in.Name()
	}
	return in.FormatValue(v, useEquals)
}

// Reset clears every stored value.
func (t *Table) Reset() {
	clear(t.values)
	for _, in := range t.order {
		in.Reset()
	}
}

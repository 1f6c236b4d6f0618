// Package input models a single command-line flag of an external dumping
// tool together with the typed value it carries.
//
// An Input knows its spellings (primary name plus aliases), whether a value
// is mandatory, and how to read that value from a token stream and render it
// back. Values are a closed set of tagged variants (Bool, the fixed-width
// integers, Int32Array, String) so callers can switch over them
// exhaustively instead of juggling per-type flag classes.
//
// Inputs are parsers, not storage: execution contexts construct them once
// and copy resolved values into their own flag table after each Process.
package input

// Package programs maps program names to their execution contexts and wraps
// the parsing and defaulting entrypoints with logging.
package programs

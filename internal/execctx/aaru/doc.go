// Package aaru implements the Aaru dialect: optional global switches, a
// two-word verb such as "media dump", --flag value options with explicit
// boolean values, and the input and output paths as trailing positionals.
package aaru

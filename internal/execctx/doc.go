// Package execctx defines the contract shared by every dumping program
// dialect: a Context that parses an argument string, fills itself from
// discrete settings, and generates the argument string back.
//
// Dialects live in subpackages and keep their flags in a Table, which maps a
// flag name to its optional typed value. A flag is present when its table
// entry would render, so presence and value cannot drift apart.
package execctx

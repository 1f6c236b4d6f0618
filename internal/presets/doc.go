// Package presets stores named parameter strings per dumping program in
// SQLite.
//
// Saving parses the parameters with the program's grammar, rejects strings
// that do not parse or validate, and stores the regenerated form so every
// preset round-trips exactly. Writers serialize on a lock file next to the
// database.
package presets

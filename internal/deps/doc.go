// Package deps reports whether the dumping programs' executables can be
// found on PATH.
package deps

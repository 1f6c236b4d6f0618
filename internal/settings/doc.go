// Package settings holds the string keyed options map handed to the
// defaulting pipeline, typed getters with fallbacks, and the option keys each
// dumping program understands.
package settings

// Package config loads, normalizes, and validates discdump configuration.
//
// It supplies defaults, expands user paths (including tilde shortcuts),
// reads TOML files and honours the DISCDUMP_DRIVE environment fallback. The
// [dumping] and [options] sections become the execctx.Settings the
// defaulting pipelines start from.
package config

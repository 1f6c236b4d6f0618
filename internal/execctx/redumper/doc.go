// Package redumper implements the Redumper dialect: one or more bare mode
// tokens followed by --flag=value options, every flag valid in every mode.
package redumper

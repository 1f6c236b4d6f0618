// Package preflight checks that the directories a dump writes to exist and
// are usable, and folds in the tool availability report.
package preflight

// Package logging builds the slog loggers used by discdump.
//
// New assembles a console or JSON handler from Options and can tee every
// record into a JSON log file. Components tag their records with
// NewComponentLogger; the codec packages never log.
package logging

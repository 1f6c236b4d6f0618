// Package media names the disc formats and cataloguing systems the dumping
// tools are driven for, and the file extensions their images use.
package media

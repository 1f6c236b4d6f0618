// Package dic implements the DiscImageCreator dialect: a single verb, the
// positional parameters that verb takes, then /flag options whose values
// follow after a space.
package dic

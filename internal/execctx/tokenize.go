package execctx

import (
	"regexp"
	"strings"
)

// tokenPattern keeps a double quoted span, optionally prefixed by "key=", as
// one token and otherwise splits on whitespace.
var tokenPattern = regexp.MustCompile(`([A-Za-z0-9\-]*=)?"[^"]*"|\S+`)

// Split tokenizes an argument string. Quotes are kept in the tokens.
func Split(params string) []string {
	params = strings.TrimSpace(params)
	if params == "" {
		return nil
	}
	return tokenPattern.FindAllString(params, -1)
}

// IsFlag reports whether token starts with one of the given flag prefixes.
func IsFlag(token string, prefixes ...string) bool {
	for _, prefix := range prefixes {
		if strings.HasPrefix(token, prefix) {
			return true
		}
	}
	return false
}

// JoinFragments joins non-empty fragments with single spaces.
func JoinFragments(fragments []string) string {
	out := fragments[:0:0]
	for _, fragment := range fragments {
		if fragment = strings.TrimSpace(fragment); fragment != "" {
			out = append(out, fragment)
		}
	}
	return strings.Join(out, " ")
}

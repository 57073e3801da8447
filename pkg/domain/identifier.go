package domain

import "regexp"

// IdentifierPattern matches one identifier: letters, digits and underscores
// from any script, as in variable names like "température".
const IdentifierPattern = `[\p{L}\p{N}_]+`

var identifierRe = regexp.MustCompile(`^` + IdentifierPattern + `$`)

// IsIdentifier reports whether s is a valid target or dependency name.
func IsIdentifier(s string) bool {
	return identifierRe.MatchString(s)
}

package codegen

import "regexp"

// colorRegex matches the hex color tokens the runtime palette accepts,
// either #rgb or #rrggbb.
var colorRegex = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

// validColor reports whether s is a recognized color token.
func validColor(s string) bool {
	return colorRegex.MatchString(s)
}

// identRegex matches identifiers usable as JavaScript class and property
// names, which is what the extension id must turn into.
var identRegex = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

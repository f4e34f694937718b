// Package validation holds field-level checks shared by config validation.
package validation

import "regexp"

var hexColorRE = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

func IsHexColor(value string) bool {
	return hexColorRE.MatchString(value)
}

// NamedColor is one palette entry to check.
type NamedColor struct {
	Name  string
	Value string
}

// ValidatePaletteHex reports every entry that is not a #RRGGBB color.
func ValidatePaletteHex(prefix string, colors ...NamedColor) []string {
	var errs []string
	for _, c := range colors {
		if !IsHexColor(c.Value) {
			errs = append(errs, prefix+"."+c.Name+" must be a hex color like #RRGGBB")
		}
	}
	return errs
}

package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidatePaletteHex(t *testing.T) {
	errs := ValidatePaletteHex("appearance.palette",
		NamedColor{Name: "background", Value: "#0a0a0b"},
		NamedColor{Name: "accent", Value: "green"},
		NamedColor{Name: "text", Value: "#fff"},
	)
	assert.Equal(t, []string{
		"appearance.palette.accent must be a hex color like #RRGGBB",
		"appearance.palette.text must be a hex color like #RRGGBB",
	}, errs)
}

func TestValidateTimeLayout(t *testing.T) {
	assert.Empty(t, ValidateTimeLayout("taskbar.clock_format", "15:04"))
	assert.Empty(t, ValidateTimeLayout("taskbar.date_format", "Jan 2"))
	assert.Len(t, ValidateTimeLayout("taskbar.clock_format", ""), 1)
	assert.Len(t, ValidateTimeLayout("taskbar.clock_format", "hh:mm"), 1)
}

func TestValidateAppKinds(t *testing.T) {
	assert.Empty(t, ValidateAppKinds("taskbar.pinned", []string{"notepad", "Terminal"}))

	errs := ValidateAppKinds("taskbar.pinned", []string{"notepad", "solitaire", "notepad"})
	assert.Len(t, errs, 2)
	assert.Contains(t, errs[1], "duplicate app notepad")
}

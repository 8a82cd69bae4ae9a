package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Style selects the glyph ramp and color palette used for a run.
// Parsed once at the configuration boundary; the render path never
// sees an invalid style.
type Style int

const (
	StylePlasma Style = iota
	StyleWaves
	StyleEmber
)

// DefaultStyle is used when no style is configured.
const DefaultStyle = StylePlasma

// styleNames maps styles to their user-facing names, in enum order.
var styleNames = [...]string{"plasma", "waves", "ember"}

// Glyph ramps ordered from sparsest to densest. Intensity is scaled
// linearly across the ramp, so length only affects granularity.
var styleRamps = [...]string{
	StylePlasma: " .:+*#%@",
	StyleWaves:  " .-~*~=",
	StyleEmber:  " `^,:;Il!i><~+",
}

// ANSI color palettes, cycled per row. Codes follow the 16-color
// terminal palette for broad compatibility.
var stylePalettes = [...][]lipgloss.Color{
	StylePlasma: {"13", "5", "12", "0"},
	StyleWaves:  {"12", "14", "0"},
	StyleEmber:  {"1", "9", "3", "11"},
}

// ParseStyle maps a style name to its Style value.
// Unknown names are rejected so the render loop never has to branch on them.
func ParseStyle(name string) (Style, error) {
	for i, n := range styleNames {
		if n == name {
			return Style(i), nil
		}
	}
	return DefaultStyle, fmt.Errorf("unknown style %q (valid: %s)", name, strings.Join(StyleNames(), ", "))
}

// StyleNames returns the valid style names in declaration order.
func StyleNames() []string {
	names := make([]string, len(styleNames))
	copy(names, styleNames[:])
	return names
}

// String returns the user-facing style name.
func (s Style) String() string {
	if s < 0 || int(s) >= len(styleNames) {
		return styleNames[DefaultStyle]
	}
	return styleNames[s]
}

// Ramp returns the style's glyph ramp, sparsest glyph first.
func (s Style) Ramp() string {
	if s < 0 || int(s) >= len(styleRamps) {
		return styleRamps[DefaultStyle]
	}
	return styleRamps[s]
}

// Palette returns the style's ordered row colors.
func (s Style) Palette() []lipgloss.Color {
	if s < 0 || int(s) >= len(stylePalettes) {
		return stylePalettes[DefaultStyle]
	}
	return stylePalettes[s]
}

// RowColor returns the background color for a row. Colors cycle across
// rows so tall frames use the whole palette and short frames repeat it.
func (s Style) RowColor(row int) lipgloss.Color {
	palette := s.Palette()
	return palette[row%len(palette)]
}

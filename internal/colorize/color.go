// Package colorize provides the color model used when rendering tree lines.
package colorize

import (
	"fmt"
	"sort"

	"github.com/fatih/color"
)

// ansiAttributeMap maps ANSI color names to fatih/color foreground attributes.
var ansiAttributeMap = map[string]color.Attribute{
	"black":          color.FgBlack,
	"red":            color.FgRed,
	"green":          color.FgGreen,
	"yellow":         color.FgYellow,
	"blue":           color.FgBlue,
	"magenta":        color.FgMagenta,
	"cyan":           color.FgCyan,
	"white":          color.FgWhite,
	"bright-black":   color.FgHiBlack,
	"bright-red":     color.FgHiRed,
	"bright-green":   color.FgHiGreen,
	"bright-yellow":  color.FgHiYellow,
	"bright-blue":    color.FgHiBlue,
	"bright-magenta": color.FgHiMagenta,
	"bright-cyan":    color.FgHiCyan,
	"bright-white":   color.FgHiWhite,
}

// Color is either a named ANSI color or a full RGB triple.
type Color struct {
	ansiName   string
	red        uint8
	green      uint8
	blue       uint8
	isRGBColor bool
}

// Ansi constructs a named ANSI color. The name must be one of the sixteen
// standard names, for example "red" or "bright-cyan".
func Ansi(colorName string) (Color, error) {
	if _, known := ansiAttributeMap[colorName]; !known {
		return Color{}, fmt.Errorf("unknown ANSI color name %q; accepted names: %v", colorName, ansiNames())
	}
	return Color{ansiName: colorName}, nil
}

// MustAnsi constructs a named ANSI color and panics on an unknown name.
// It is intended for static color tables.
func MustAnsi(colorName string) Color {
	ansiColor, ansiError := Ansi(colorName)
	if ansiError != nil {
		panic(ansiError)
	}
	return ansiColor
}

// RGB constructs a 24-bit color.
func RGB(red uint8, green uint8, blue uint8) Color {
	return Color{red: red, green: green, blue: blue, isRGBColor: true}
}

// IsRGB reports whether the color carries an RGB triple.
func (colorValue Color) IsRGB() bool {
	return colorValue.isRGBColor
}

// AnsiName returns the ANSI color name, or an empty string for RGB colors.
func (colorValue Color) AnsiName() string {
	return colorValue.ansiName
}

// RGBComponents returns the red, green, and blue components of an RGB color.
func (colorValue Color) RGBComponents() (uint8, uint8, uint8) {
	return colorValue.red, colorValue.green, colorValue.blue
}

// Sprint renders text wrapped in the escape sequences for the color. When
// enabled is false the text is returned unchanged.
func (colorValue Color) Sprint(text string, enabled bool) string {
	if !enabled {
		return text
	}
	printer := colorValue.printer()
	printer.EnableColor()
	return printer.Sprint(text)
}

// printer builds the fatih/color printer backing this color.
func (colorValue Color) printer() *color.Color {
	if colorValue.isRGBColor {
		return color.RGB(int(colorValue.red), int(colorValue.green), int(colorValue.blue))
	}
	return color.New(ansiAttributeMap[colorValue.ansiName])
}

// ansiNames lists the accepted ANSI color names in a stable order.
func ansiNames() []string {
	names := make([]string, 0, len(ansiAttributeMap))
	for name := range ansiAttributeMap {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

package colorize

import (
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
)

// ColorChoice controls whether escape sequences are emitted.
type ColorChoice string

const (
	// ColorChoiceAlways emits escape sequences unconditionally.
	ColorChoiceAlways ColorChoice = "always"
	// ColorChoiceNever suppresses escape sequences unconditionally.
	ColorChoiceNever ColorChoice = "never"
	// ColorChoiceAuto emits escape sequences when stdout is a terminal and
	// the NO_COLOR environment variable is unset.
	ColorChoiceAuto ColorChoice = "auto"

	noColorEnvironmentVariable = "NO_COLOR"
)

// ParseColorChoice converts a string into a ColorChoice.
func ParseColorChoice(rawChoice string) (ColorChoice, error) {
	switch ColorChoice(rawChoice) {
	case ColorChoiceAlways, ColorChoiceNever, ColorChoiceAuto:
		return ColorChoice(rawChoice), nil
	default:
		return "", fmt.Errorf("invalid color choice %q; accepted values: always, never, auto", rawChoice)
	}
}

// Enabled resolves the tri-state choice into a concrete on/off decision.
// The resolution happens once, before rendering begins.
func (choice ColorChoice) Enabled() bool {
	switch choice {
	case ColorChoiceAlways:
		return true
	case ColorChoiceNever:
		return false
	default:
		if _, noColorSet := os.LookupEnv(noColorEnvironmentVariable); noColorSet {
			return false
		}
		standardOutputDescriptor := os.Stdout.Fd()
		return isatty.IsTerminal(standardOutputDescriptor) || isatty.IsCygwinTerminal(standardOutputDescriptor)
	}
}

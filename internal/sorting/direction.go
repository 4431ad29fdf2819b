package sorting

import (
	"fmt"
	"strings"
)

// Direction selects ascending or descending order.
type Direction string

const (
	// DirectionAscending sorts smallest first.
	DirectionAscending Direction = "asc"
	// DirectionDescending sorts largest first.
	DirectionDescending Direction = "desc"
)

// ParseDirection converts a string into a Direction. Both the short form and
// the spelled-out form ("asc"/"ascending", "desc"/"descending") are accepted.
func ParseDirection(rawDirection string) (Direction, error) {
	switch {
	case strings.HasPrefix(rawDirection, string(DirectionAscending)):
		return DirectionAscending, nil
	case strings.HasPrefix(rawDirection, string(DirectionDescending)):
		return DirectionDescending, nil
	default:
		return "", fmt.Errorf("invalid sorting direction %q; accepted values: %s, %s", rawDirection, DirectionAscending, DirectionDescending)
	}
}

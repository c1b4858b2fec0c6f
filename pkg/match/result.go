package match

import (
	"fmt"
	"strings"
)

// Result represents the result of a single ladder match.
type Result int

const (
	Win  Result = +1
	Loss Result = -1
)

// ParseResult parses a match result. It accepts "w", "win", "l", and "loss"
// in any case.
func ParseResult(s string) (Result, error) {
	switch strings.ToLower(s) {
	case "w", "win":
		return Win, nil
	case "l", "loss":
		return Loss, nil
	default:
		return 0, fmt.Errorf("invalid match result %q", s)
	}
}

// String returns a string representation of the given Result.
func (result Result) String() string {
	switch result {
	case Win:
		return "W"
	case Loss:
		return "L"
	default:
		return "?"
	}
}

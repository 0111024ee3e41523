package normalizer

import (
	"errors"
	"strings"
)

// ErrNoJSON is returned when the agent's text contains no JSON object at all.
var ErrNoJSON = errors.New("No JSON found")

// ExtractJSON returns the first complete JSON object embedded in raw.
//
// It scans from the first '{' tracking string and escape state, so braces
// inside string values (a title containing a literal '}', say) do not end the
// span early, and commentary after the object is excluded. When no balanced
// object closes, it falls back to the greedy first-'{'-to-last-'}' span so
// the JSON parser can report what is wrong with it.
func ExtractJSON(raw string) (string, error) {
	start := strings.IndexByte(raw, '{')
	if start < 0 {
		return "", ErrNoJSON
	}

	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(raw); i++ {
		c := raw[i]
		switch {
		case escaped:
			escaped = false
		case inString && c == '\\':
			escaped = true
		case c == '"':
			inString = !inString
		case inString:
		case c == '{':
			depth++
		case c == '}':
			depth--
			if depth == 0 {
				return raw[start : i+1], nil
			}
		}
	}

	end := strings.LastIndexByte(raw, '}')
	if end < start {
		return "", ErrNoJSON
	}
	return raw[start : end+1], nil
}

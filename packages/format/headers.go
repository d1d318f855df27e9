package format

import (
	"fmt"
	"strings"
)

// HeaderLineError reports a header line without a colon separator.
type HeaderLineError struct {
	Line string
}

func (e *HeaderLineError) Error() string {
	return fmt.Sprintf("invalid header format: %s", e.Line)
}

// ParseHeaderBlock parses a newline-separated block of "Name: value"
// lines into a header map. Lines are trimmed, blank lines are skipped,
// and each remaining line splits on its first colon with both sides
// trimmed.
func ParseHeaderBlock(text string) (map[string]string, error) {
	headers := make(map[string]string)

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		key, value, ok := strings.Cut(line, ":")
		if !ok {
			return nil, &HeaderLineError{Line: line}
		}
		headers[strings.TrimSpace(key)] = strings.TrimSpace(value)
	}

	return headers, nil
}

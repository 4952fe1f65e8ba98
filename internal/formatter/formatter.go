package formatter

import (
	"strings"
)

// Formatter normalizes generated Dart source. There is no Dart equivalent
// of go/format in the toolchain here, so this is a line-oriented cleanup:
// trailing whitespace is stripped, runs of blank lines collapse to one, and
// the output ends with exactly one newline.
type Formatter struct{}

// NewFormatter creates a new Formatter instance
func NewFormatter() *Formatter {
	return &Formatter{}
}

// Format takes Dart source as a string and returns the normalized form.
func (f *Formatter) Format(code string) (string, error) {
	if strings.TrimSpace(code) == "" {
		return "", nil
	}

	lines := strings.Split(code, "\n")
	result := make([]string, 0, len(lines))
	blankRun := 0

	for _, line := range lines {
		line = strings.TrimRight(line, " \t")
		if line == "" {
			blankRun++
			if blankRun > 1 {
				continue
			}
		} else {
			blankRun = 0
		}
		result = append(result, line)
	}

	// drop leading and trailing blank lines
	for len(result) > 0 && result[0] == "" {
		result = result[1:]
	}
	for len(result) > 0 && result[len(result)-1] == "" {
		result = result[:len(result)-1]
	}

	return strings.Join(result, "\n") + "\n", nil
}

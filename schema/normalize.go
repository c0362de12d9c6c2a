package schema

import (
	"fmt"
	"strings"
	"unicode"
)

// NormalizeTagName trims a tag name and rejects empty names or control characters.
// Names are labels only and need not be unique.
func NormalizeTagName(name string) (string, error) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return "", fmt.Errorf("%w: empty tag name", ErrInvalidRequest)
	}
	for _, r := range trimmed {
		if unicode.IsControl(r) {
			return "", fmt.Errorf("%w: tag name %q contains control characters", ErrInvalidRequest, name)
		}
	}
	return trimmed, nil
}

// NormalizeTagNames normalizes every name, preserving order.
func NormalizeTagNames(names []string) ([]string, error) {
	if len(names) == 0 {
		return nil, nil
	}
	out := make([]string, 0, len(names))
	for _, name := range names {
		normalized, err := NormalizeTagName(name)
		if err != nil {
			return nil, err
		}
		out = append(out, normalized)
	}
	return out, nil
}

// NormalizeOutputName validates an output connector name.
func NormalizeOutputName(name string) (OutputName, error) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return "", fmt.Errorf("%w: empty output name", ErrInvalidRequest)
	}
	if strings.ContainsFunc(trimmed, unicode.IsSpace) {
		return "", fmt.Errorf("%w: output name %q contains whitespace", ErrInvalidRequest, name)
	}
	return OutputName(trimmed), nil
}

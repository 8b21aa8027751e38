package cli

import (
	"fmt"
	"strings"
)

// ShortIDLength is how many characters of an id the list commands print
const ShortIDLength = 8

// ResolveID expands a full id or unique prefix against ids.
// Input that matches nothing is returned unchanged so the store command
// becomes a no-op; a prefix shared by several ids is an error.
func ResolveID(ids []string, input string) (string, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return "", fmt.Errorf("id is required")
	}

	var matches []string
	for _, id := range ids {
		if id == input {
			return id, nil
		}
		if strings.HasPrefix(id, input) {
			matches = append(matches, id)
		}
	}

	switch len(matches) {
	case 0:
		return input, nil
	case 1:
		return matches[0], nil
	default:
		short := make([]string, len(matches))
		for i, m := range matches {
			short[i] = ShortID(m)
		}
		return "", fmt.Errorf("ambiguous id %q matches %d entries: %s", input, len(matches), strings.Join(short, ", "))
	}
}

// IDs collects the id of every item
func IDs[T any](items []T, idOf func(T) string) []string {
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = idOf(it)
	}
	return out
}

func ShortID(id string) string {
	if len(id) <= ShortIDLength {
		return id
	}
	return id[:ShortIDLength]
}

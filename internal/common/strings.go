package common

import "strings"

// NormalizeLabel uppercases a family label. Surrounding spaces are kept.
func NormalizeLabel(s string) string {
	return strings.ToUpper(s)
}

// UniqueNonEmpty trims and de-duplicates strings, preserving order.
func UniqueNonEmpty(in []string) []string {
	seen := NewOrderedSet[string]()
	for _, s := range in {
		t := strings.TrimSpace(s)
		if t == "" {
			continue
		}
		seen.Add(t)
	}
	return seen.Items()
}

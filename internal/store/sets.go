// Package store exposes registered clients, consents and authorization records to the
// authorization-flow engine, translating between domain objects and their persisted form.
package store

import (
	"sort"
	"strings"
)

const setDelimiter = ","

// encodeSet renders a set as sorted, de-duplicated, comma-delimited text. Blank members are dropped.
func encodeSet[T ~string](vals []T) string {
	seen := make(map[string]struct{}, len(vals))
	out := make([]string, 0, len(vals))
	for _, v := range vals {
		s := strings.TrimSpace(string(v))
		if s == "" {
			continue
		}
		if _, dup := seen[s]; dup {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	sort.Strings(out)
	return strings.Join(out, setDelimiter)
}

// decodeSet splits delimited text produced by encodeSet. Empty text yields an empty, non-nil set.
func decodeSet[T ~string](text string, resolve func(string) T) []T {
	parts := strings.Split(text, setDelimiter)
	out := make([]T, 0, len(parts))
	seen := make(map[string]struct{}, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		if _, dup := seen[p]; dup {
			continue
		}
		seen[p] = struct{}{}
		out = append(out, resolve(p))
	}
	return out
}

func identity(s string) string { return s }

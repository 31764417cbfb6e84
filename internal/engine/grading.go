package engine

import "strings"

// Grade compares a raw candidate answer against the question's expected
// answers. A single expected value is matched by trimmed, case-insensitive
// equality. A multi-value expected answer requires exact set equality with
// the submitted values, split on commas.
func Grade(expected []string, raw string) bool {
	if len(expected) == 0 {
		return false
	}
	if len(expected) == 1 {
		return normalize(raw) == normalize(expected[0])
	}

	want := make(map[string]bool, len(expected))
	for _, e := range expected {
		want[normalize(e)] = true
	}
	got := make(map[string]bool)
	for _, part := range strings.Split(raw, ",") {
		if n := normalize(part); n != "" {
			got[n] = true
		}
	}
	if len(got) != len(want) {
		return false
	}
	for v := range got {
		if !want[v] {
			return false
		}
	}
	return true
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

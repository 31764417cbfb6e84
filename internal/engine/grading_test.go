package engine

import "testing"

func TestGrade(t *testing.T) {
	testCases := []struct {
		name     string
		expected []string
		raw      string
		correct  bool
	}{
		{"exact match", []string{"42"}, "42", true},
		{"case insensitive", []string{"Paris"}, "paris", true},
		{"surrounding whitespace trimmed", []string{"O(n log n)"}, "  o(n log n) ", true},
		{"wrong answer", []string{"42"}, "43", false},
		{"empty submission", []string{"42"}, "", false},
		{"no expected answers", nil, "anything", false},
		{"multi set equality", []string{"a", "b"}, "b, a", true},
		{"multi case and spacing", []string{"TCP", "UDP"}, " udp ,tcp", true},
		{"multi missing value", []string{"a", "b"}, "a", false},
		{"multi extra value", []string{"a", "b"}, "a,b,c", false},
		{"multi duplicate submitted", []string{"a", "b"}, "a,a", false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Grade(tc.expected, tc.raw); got != tc.correct {
				t.Errorf("Grade(%v, %q) = %v, expected %v", tc.expected, tc.raw, got, tc.correct)
			}
		})
	}
}

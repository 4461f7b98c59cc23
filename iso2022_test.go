package charstream

import (
	"testing"
)

func TestISO2022State(t *testing.T) {
	type testCase struct {
		name     string
		input    string
		expected string
	}
	testCases := []testCase{
		{"plain", "abc", "abc"},
		{"jis x 0208", "\x1b$B\x30\x21", "\x1b$B\xb0\xa1"},
		{"jis x 0212", "\x1b$(D\x30\x21", "\x1b$(D\xb0\xa1"},
		{"back to ascii", "\x1b$B\x30\x1b(Ba", "\x1b$B\xb0\x1b(Ba"},
		{"unknown escape", "\x1bNa", "\x1bNa"},
		{"escape restarts", "\x1b$\x1b(Jq", "\x1b$\x1b(Jq"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var st iso2022State
			out := make([]byte, 0, len(tc.input))
			for i := 0; i < len(tc.input); i++ {
				out = append(out, st.step(tc.input[i]))
			}
			if string(out) != tc.expected {
				t.Errorf("expected %q, got %q", tc.expected, string(out))
			}
		})
	}
}

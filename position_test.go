package charstream

import (
	"testing"
)

func TestPosition(t *testing.T) {
	pos := MakePosition()
	if pos != At(0, 1, 1) {
		t.Errorf("expected %v, got %v", At(0, 1, 1), pos)
	}
	pos.Offset = 9
	pos.Column = 4
	pos.newline()
	if pos != At(9, 2, 1) {
		t.Errorf("expected %v, got %v", At(9, 2, 1), pos)
	}
	pos.Reset()
	if pos != MakePosition() {
		t.Errorf("Reset left %v", pos)
	}

	expected := "line 3 column 7 (byte offset 42)"
	if s := At(42, 3, 7).String(); s != expected {
		t.Errorf("expected %q, got %q", expected, s)
	}
}

func TestPosition_nextTabStop(t *testing.T) {
	type testCase struct {
		column, tabSize, distance int
	}
	testCases := []testCase{
		{1, 8, 8},
		{2, 8, 7},
		{8, 8, 1},
		{9, 8, 8},
		{5, 4, 4},
		{3, 1, 1},
	}
	for _, tc := range testCases {
		pos := At(0, 1, tc.column)
		if d := pos.nextTabStop(tc.tabSize); d != tc.distance {
			t.Errorf("column %d, tab size %d: expected %d, got %d", tc.column, tc.tabSize, tc.distance, d)
		}
	}
}

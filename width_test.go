package termtext

import (
	"testing"
)

func TestRuneWidth(t *testing.T) {
	tests := []struct {
		r        rune
		expected int
	}{
		{'A', 1},
		{'a', 1},
		{'1', 1},
		{' ', 1},
		{'中', 2},
		{'日', 2},
		{'本', 2},
		{'한', 2},
		{'가', 2},
		{'Ａ', 2},      // Fullwidth A
		{'\u0301', 0}, // combining acute accent
		{'±', 1},      // East Asian ambiguous
		{'─', 1},      // East Asian ambiguous
		{'α', 1},      // East Asian ambiguous
		{'\t', 0},
		{0, 0},
	}

	for _, tt := range tests {
		got := RuneWidth(tt.r)
		if got != tt.expected {
			t.Errorf("RuneWidth(%q) = %d, want %d", tt.r, got, tt.expected)
		}
	}
}

func TestIsWideRune(t *testing.T) {
	tests := []struct {
		r        rune
		expected bool
	}{
		{'A', false},
		{' ', false},
		{'中', true},
		{'한', true},
		{'Ａ', true},
		{'0', false},
	}

	for _, tt := range tests {
		got := IsWideRune(tt.r)
		if got != tt.expected {
			t.Errorf("IsWideRune(%q) = %v, want %v", tt.r, got, tt.expected)
		}
	}
}

func TestStringWidth(t *testing.T) {
	tests := []struct {
		s        string
		expected int
	}{
		{"", 0},
		{"ab", 2},
		{"Hello", 5},
		{"你好", 4},
		{"Hello中文", 9},
		{"한글", 4},
		{"e\u0301", 1},
	}

	for _, tt := range tests {
		got := StringWidth(tt.s)
		if got != tt.expected {
			t.Errorf("StringWidth(%q) = %d, want %d", tt.s, got, tt.expected)
		}
	}
}

func TestStringWidthIsSumOfRuneWidths(t *testing.T) {
	for _, s := range []string{"abc", "中文abc", "a\u0301b", "Ａｂｃ"} {
		sum := 0
		for _, r := range s {
			sum += RuneWidth(r)
		}
		if got := StringWidth(s); got != sum {
			t.Errorf("StringWidth(%q) = %d, want %d", s, got, sum)
		}
	}
}

package classplan

import (
	"errors"
	"testing"
)

func TestSuffix(t *testing.T) {
	cases := []struct {
		index int
		want  string
	}{
		{0, "a"},
		{1, "b"},
		{25, "z"},
		{26, "aa"},
		{27, "ab"},
		{51, "az"},
		{52, "ba"},
		{77, "bz"},
		{78, "ca"},
		{675, "yz"},
	}
	for _, tc := range cases {
		got, err := Suffix(tc.index)
		if err != nil {
			t.Fatalf("Suffix(%d) error: %v", tc.index, err)
		}
		if got != tc.want {
			t.Fatalf("Suffix(%d) = %q, want %q", tc.index, got, tc.want)
		}
	}
}

func TestSuffixOutOfRange(t *testing.T) {
	for _, index := range []int{-1, SuffixCeiling, SuffixCeiling + 1} {
		if _, err := Suffix(index); !errors.Is(err, ErrSuffixRange) {
			t.Fatalf("Suffix(%d) error = %v, want ErrSuffixRange", index, err)
		}
	}
}

func TestParallel(t *testing.T) {
	cases := []struct {
		suffix string
		want   string
	}{
		{"a", "A"},
		{"z", "Z"},
		{"ab", "A"},
		{"bz", "B"},
		{"", "A"},
	}
	for _, tc := range cases {
		if got := Parallel(tc.suffix); got != tc.want {
			t.Fatalf("Parallel(%q) = %q, want %q", tc.suffix, got, tc.want)
		}
	}
}

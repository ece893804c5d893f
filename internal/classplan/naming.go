package classplan

import (
	"errors"
	"fmt"
	"strings"

	"github.com/conn-castle/mockfactory/internal/messages"
)

// SuffixCeiling is the exclusive upper bound of the naming scheme.
// Two lowercase letters cover 26*26 continuation blocks beyond the single
// letters; index 676 and up would need a third letter and is rejected
// instead of silently colliding.
const SuffixCeiling = 676

// ErrSuffixRange is a sentinel for suffix indexes beyond the two-letter
// ceiling. It surfaces as a configuration-level failure.
var ErrSuffixRange = errors.New("class suffix out of range")

// Suffix returns the alphabetic class suffix for a zero-based index:
// 0→"a" … 25→"z", 26→"aa", 51→"az", 52→"ba", 77→"bz", 78→"ca".
func Suffix(index int) (string, error) {
	if index < 0 || index >= SuffixCeiling {
		return "", fmt.Errorf("%w: "+messages.PlanSuffixRangeFmt, ErrSuffixRange, index, SuffixCeiling)
	}
	if index < 26 {
		return string(rune('a' + index)), nil
	}
	first := rune('a' + index/26 - 1)
	second := rune('a' + index%26)
	return string(first) + string(second), nil
}

// Parallel returns the parallel-group marker for a suffix: the uppercase
// of its first letter. Capstone classes carry the fixed marker "A".
func Parallel(suffix string) string {
	if suffix == "" {
		return "A"
	}
	return strings.ToUpper(suffix[:1])
}

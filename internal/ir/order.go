package ir

import (
	"cmp"
	"slices"
)

// Canonicalize returns the codes ordered by numeric code, ascending.
// Codes sharing a value keep their declaration order. The input slice is
// not modified and no validation is performed.
func Canonicalize(codes []ErrorCode) []ErrorCode {
	out := slices.Clone(codes)
	slices.SortStableFunc(out, func(a, b ErrorCode) int {
		return cmp.Compare(a.Code, b.Code)
	})
	return out
}

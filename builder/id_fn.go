package builder

import "strconv"

// IDFn generates a vertex identifier from its zero-based index. It must be
// pure and deterministic: the same idx always yields the same string.
type IDFn func(idx int) string

// DefaultIDFn returns the decimal string of idx, e.g. 0 -> "0", 42 -> "42".
func DefaultIDFn(idx int) string {
	return strconv.Itoa(idx)
}

// PrefixedIDFn returns an IDFn that concatenates prefix with the decimal
// index, e.g. PrefixedIDFn("v")(3) -> "v3".
func PrefixedIDFn(prefix string) IDFn {
	return func(idx int) string {
		return prefix + strconv.Itoa(idx)
	}
}

// WithPrefixedIDs sets the ID scheme to PrefixedIDFn(prefix).
func WithPrefixedIDs(prefix string) BuilderOption {
	return WithIDScheme(PrefixedIDFn(prefix))
}

// Package patch applies partial updates where a nil pointer means "leave as is".
package patch

// Coalesce returns the value pointed to by ptr if it's not nil, otherwise returns fallback
func Coalesce[T any](ptr *T, fallback T) T {
	if ptr != nil {
		return *ptr
	}
	return fallback
}

// Nullable keeps current when ptr is nil and clears the field when ptr holds the zero value.
func Nullable[T comparable](ptr *T, current *T) *T {
	if ptr == nil {
		return current
	}
	var zero T
	if *ptr == zero {
		return nil
	}
	v := *ptr
	return &v
}

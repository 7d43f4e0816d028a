package common

// IsEmpty returns true if the slice is empty.
func IsEmpty[S ~[]E, E any](s S) bool {
	return len(s) == 0
}

// Clone returns a shallow copy of the slice, or nil for an empty slice.
func Clone[S ~[]E, E any](s S) S {
	if len(s) == 0 {
		return nil
	}

	out := make(S, len(s))
	copy(out, s)

	return out
}

// Prepended returns a new slice with e at the head followed by the elements of s.
// The input slice is never modified.
func Prepended[S ~[]E, E any](s S, e E) S {
	out := make(S, 0, len(s)+1)
	out = append(out, e)
	out = append(out, s...)

	return out
}

// First returns the first element of the slice and true, or the zero value and false if empty.
func First[S ~[]E, E any](s S) (E, bool) {
	if len(s) == 0 {
		var zero E
		return zero, false
	}

	return s[0], true
}

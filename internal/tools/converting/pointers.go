package converting

// If nil returns the default value for the type
func Unwrap[T any](x *T) (r T) {
	if x != nil {
		r = *x
	}

	return
}

func PointerToValue[T any](v T) *T {
	return &v
}

// UnwrapOr returns the pointed-at value, or fallback when nil.
func UnwrapOr[T any](x *T, fallback T) T {
	if x != nil {
		return *x
	}

	return fallback
}

package utils

// FindIndex returns the position of the first element equal to item, or -1.
func FindIndex[T comparable](slice []T, item T) int {
	for i, v := range slice {
		if v == item {
			return i
		}
	}
	return -1
}

// Unique returns the elements of slice in order with later duplicates removed.
func Unique[T comparable](slice []T) []T {
	out := make([]T, 0, len(slice))
	for _, v := range slice {
		if FindIndex(out, v) < 0 {
			out = append(out, v)
		}
	}
	return out
}

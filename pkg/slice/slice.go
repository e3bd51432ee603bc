// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package slice complements the standard [slices] package with generic
transformations.
*/
package slice

// Map returns a new slice holding transform applied to every element.
// A nil or empty input yields an empty, non-nil slice.
func Map[T any, U any](input []T, transform func(T) U) []U {
	result := make([]U, len(input))
	for index, value := range input {
		result[index] = transform(value)
	}
	return result
}

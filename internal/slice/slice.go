package slice

import "strings"

// Delims are the bytes that separate words on a command line.
const Delims = " \t\r\n\a"

func IsDelim(b byte) bool {
	return strings.IndexByte(Delims, b) >= 0
}

// Grow returns a copy of slice with the same elements and double the
// capacity. A zero capacity grows to one.
func Grow[T any](slice []T) []T {
	newCap := 2 * cap(slice)
	if newCap == 0 {
		newCap = 1
	}

	newSlice := make([]T, len(slice), newCap)
	copy(newSlice, slice)

	return newSlice
}

// TrimSpaces returns the index of the first non-delimiter at or after id.
func TrimSpaces(line string, id int) int {
	for id < len(line) && IsDelim(line[id]) {
		id++
	}

	return id
}

// WordEnd returns the index of the first delimiter at or after id.
func WordEnd(line string, id int) int {
	for id < len(line) && !IsDelim(line[id]) {
		id++
	}

	return id
}

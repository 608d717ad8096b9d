package plural

import "strconv"

// Suffix returns suffix unless n is one.
func Suffix(n int, suffix string) string {
	if n == 1 {
		return ""
	}
	return suffix
}

// Count formats n followed by word, pluralized with an "s".
func Count(n int, word string) string {
	return strconv.Itoa(n) + " " + word + Suffix(n, "s")
}

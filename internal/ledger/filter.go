package ledger

import "strings"

func matchText(field, needle string) bool {
	return needle == "" || strings.Contains(strings.ToLower(field), strings.ToLower(needle))
}

func matchExact[T comparable](field, want T) bool {
	var zero T
	return want == zero || field == want
}

// inDateRange compares YYYY-MM-DD strings lexicographically, bounds inclusive.
func inDateRange(date, from, to string) bool {
	if from != "" && date < from {
		return false
	}
	if to != "" && date > to {
		return false
	}
	return true
}

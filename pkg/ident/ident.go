// Package ident allocates human-readable record identifiers of the form
// "prod-001" or "ord-042".
package ident

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Next returns prefix-N where N is one more than the largest numeric suffix
// among ids carrying the same prefix, zero-padded to at least three digits.
// IDs with another prefix or a non-numeric suffix are ignored, so gaps left
// by deletions are never reused while the current maximum remains.
func Next(prefix string, ids []string) string {
	max := 0
	for _, id := range ids {
		if n, ok := Suffix(prefix, id); ok && n > max {
			max = n
		}
	}
	return Format(prefix, max+1)
}

// Format renders prefix and n as "prefix-NNN".
func Format(prefix string, n int) string {
	return fmt.Sprintf("%s-%03d", prefix, n)
}

// Suffix extracts the numeric part of id when it starts with prefix + "-".
// The suffix must be plain decimal digits and leave room for Next to add one.
func Suffix(prefix, id string) (int, bool) {
	rest, ok := strings.CutPrefix(id, prefix+"-")
	if !ok || rest == "" || strings.TrimLeft(rest, "0123456789") != "" {
		return 0, false
	}
	n, err := strconv.Atoi(rest)
	if err != nil || n == math.MaxInt {
		return 0, false
	}
	return n, true
}

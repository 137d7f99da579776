package utils

import (
	"strconv"
	"strings"
)

// FormatINR renders a rupee amount with Indian digit grouping, e.g.
// 45000 -> "45,000" and 150000 -> "1,50,000".
func FormatINR(amount int64) string {
	neg := amount < 0
	if neg {
		amount = -amount
	}

	s := strconv.FormatInt(amount, 10)
	if len(s) > 3 {
		head := s[:len(s)-3]
		tail := s[len(s)-3:]
		var parts []string
		for len(head) > 2 {
			parts = append([]string{head[len(head)-2:]}, parts...)
			head = head[:len(head)-2]
		}
		parts = append(parts, tail)
		s = head + "," + strings.Join(parts, ",")
	}

	if neg {
		return "-" + s
	}
	return s
}

package utils

import (
	"fmt"
	"strings"
)

// SplitMatch splits word around the first occurrence of sub.
// ok is false when sub is empty or does not occur in word.
func SplitMatch(word, sub string) (before, match, after string, ok bool) {
	if sub == "" {
		return word, "", "", false
	}
	pos := strings.Index(word, sub)
	if pos == -1 {
		return word, "", "", false
	}
	end := pos + len(sub)
	return word[:pos], word[pos:end], word[end:], true
}

// FormatWithCommas formats an integer with comma separators
func FormatWithCommas(n int) string {
	if n < 0 {
		return "-" + FormatWithCommas(-n)
	}
	if n < 1000 {
		return fmt.Sprintf("%d", n)
	}

	str := fmt.Sprintf("%d", n)
	var sb strings.Builder
	for i, char := range str {
		if i > 0 && (len(str)-i)%3 == 0 {
			sb.WriteByte(',')
		}
		sb.WriteRune(char)
	}
	return sb.String()
}

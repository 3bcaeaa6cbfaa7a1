package inflect

import (
	"strings"
	"unicode"
)

// IsVowel reports whether c is an English vowel letter, case-insensitively.
func IsVowel(c byte) bool {
	switch c {
	case 'a', 'e', 'i', 'o', 'u', 'A', 'E', 'I', 'O', 'U':
		return true
	}
	return false
}

// Capitalize uppercases the first character of s, leaving the rest unchanged.
func Capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// PreserveCase transfers the leading-character case of original onto
// replacement. Irregular tables store lowercase spellings; this keeps a
// caller-supplied "Person" mapping to "People" rather than "people".
// Only the first character is adjusted.
func PreserveCase(original, replacement string) string {
	if original == "" {
		return replacement
	}
	if unicode.IsUpper(rune(original[0])) {
		return Capitalize(replacement)
	}
	return replacement
}

// SplitCamelCase splits s at every lowercase-to-uppercase boundary.
// Example: "BlogPost" -> ["Blog", "Post"]. A string without boundaries is
// returned as a single word; the empty string yields no words.
func SplitCamelCase(s string) []string {
	if s == "" {
		return nil
	}
	runes := []rune(s)
	var words []string
	start := 0
	for i := 1; i < len(runes); i++ {
		if unicode.IsLower(runes[i-1]) && unicode.IsUpper(runes[i]) {
			words = append(words, string(runes[start:i]))
			start = i
		}
	}
	return append(words, string(runes[start:]))
}

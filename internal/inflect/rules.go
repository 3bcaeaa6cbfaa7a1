package inflect

import "strings"

// rule pairs a match predicate with the transform applied when it fires.
// Predicates receive the lowercased word; transforms receive the original
// spelling so interior casing survives mechanical suffix changes.
type rule struct {
	match func(word string) bool
	apply func(word string) string
}

// ruleChain is an ordered list of rules evaluated first-match-wins. Keeping
// precedence as an explicit list makes each rule independently testable.
type ruleChain []rule

// Apply runs word through the chain and returns the first matching
// transform's output, or word unchanged when nothing matches.
func (c ruleChain) Apply(word string) string {
	lower := strings.ToLower(word)
	for _, r := range c {
		if r.match(lower) {
			return r.apply(word)
		}
	}
	return word
}

func endsWith(suffixes ...string) func(string) bool {
	return func(word string) bool {
		for _, s := range suffixes {
			if strings.HasSuffix(word, s) {
				return true
			}
		}
		return false
	}
}

// endsConsonantY matches words ending in y preceded by a consonant,
// e.g. "category" but not "day".
func endsConsonantY(word string) bool {
	if len(word) < 2 || word[len(word)-1] != 'y' {
		return false
	}
	return !IsVowel(word[len(word)-2])
}

func always(string) bool { return true }

// appendSuffix returns a transform that appends add to the word.
func appendSuffix(add string) func(string) string {
	return func(word string) string { return word + add }
}

// swapSuffix returns a transform that removes drop trailing characters and
// appends add.
func swapSuffix(drop int, add string) func(string) string {
	return func(word string) string { return word[:len(word)-drop] + add }
}

// doubleLast returns a transform that doubles the final consonant before
// appending add, e.g. "stop" + "ed" -> "stopped".
func doubleLast(add string) func(string) string {
	return func(word string) string {
		return word + string(word[len(word)-1]) + add
	}
}

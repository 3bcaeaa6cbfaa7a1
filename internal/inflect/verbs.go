package inflect

import "strings"

// doublingVerbs enumerates verbs known to double their final consonant when
// suffixed ("submit" -> "submitted"). The consonant-vowel-consonant shape is
// checked structurally first; this list decides the ambiguous cases for words
// longer than three characters. A word matches when it equals an entry or
// ends with one ("resubmit" matches "submit"). The list is deliberately
// closed: longer words outside it never double, even when English says they
// should, so derived spellings stay stable for downstream consumers.
var doublingVerbs = []string{
	"acquit", "admit", "allot", "bat", "beg", "begin", "blot", "blur",
	"brag", "chat", "chip", "chop", "clap", "clip", "commit", "compel",
	"concur", "confer", "control", "cram", "crop", "dab", "debug", "defer",
	"deter", "dig", "dim", "dip", "drag", "drip", "drop", "drum", "dub",
	"emit", "equip", "excel", "expel", "fit", "flag", "flap", "flip",
	"flop", "forbid", "forget", "format", "grab", "grin", "grip", "hop",
	"hug", "hum", "incur", "infer", "jam", "jog", "knit", "lag", "lap",
	"log", "man", "map", "mop", "nag", "net", "nip", "nod", "occur",
	"omit", "pad", "patrol", "permit", "pin", "plan", "plod", "plot",
	"plug", "pop", "prefer", "prod", "program", "prop", "propel", "quit",
	"ram", "rap", "rebel", "recur", "refer", "regret", "remit", "repel",
	"rev", "rig", "rip", "rob", "rot", "rub", "run", "sag", "scan",
	"scrap", "scrub", "ship", "shop", "shrug", "shun", "sin", "sip",
	"sit", "skim", "skip", "slam", "slap", "slip", "slot", "snap", "snip",
	"sob", "span", "spot", "spur", "squat", "stab", "stem", "step",
	"stir", "stop", "strap", "strip", "strut", "stub", "stun", "submit",
	"sum", "swap", "tag", "tan", "tap", "thin", "throb", "tip", "top",
	"transfer", "transmit", "trap", "trek", "trim", "trip", "trot",
	"tug", "wed", "wet", "whip", "wrap", "zap", "zip",
}

// shouldDoubleConsonant reports whether word doubles its final consonant
// before a vowel-initial suffix. Words of three characters or fewer with a
// vowel-consonant ending always double; longer words only when they match
// the doubling list.
func (e *Engine) shouldDoubleConsonant(word string) bool {
	if len(word) < 2 {
		return false
	}
	last := word[len(word)-1]
	if last == 'w' || last == 'x' || last == 'y' {
		return false
	}
	if IsVowel(last) || !IsVowel(word[len(word)-2]) {
		return false
	}
	if len(word) <= 3 {
		return true
	}
	for _, v := range e.doubling {
		if strings.HasSuffix(word, v) {
			return true
		}
	}
	return false
}

// buildVerbRules assembles the ordered suffix rules for each derived verb
// form. Rule order matters: the ate/ify/ize result rules are special cases
// of the generic e-ending rule and must run first.
func (e *Engine) buildVerbRules() {
	e.pastParticipleRules = ruleChain{
		{endsWith("e"), appendSuffix("d")},
		{endsConsonantY, swapSuffix(1, "ied")},
		{e.shouldDoubleConsonant, doubleLast("ed")},
		{always, appendSuffix("ed")},
	}
	e.actorNounRules = ruleChain{
		{endsWith("e"), appendSuffix("r")},
		{endsConsonantY, swapSuffix(1, "ier")},
		{e.shouldDoubleConsonant, doubleLast("er")},
		{always, appendSuffix("er")},
	}
	e.presentTenseRules = ruleChain{
		{endsConsonantY, swapSuffix(1, "ies")},
		{endsWith("s", "x", "z", "ch", "sh"), appendSuffix("es")},
		{always, appendSuffix("s")},
	}
	e.gerundRules = ruleChain{
		{endsWith("ie"), swapSuffix(2, "ying")},
		{func(w string) bool {
			return strings.HasSuffix(w, "e") && !strings.HasSuffix(w, "ee")
		}, swapSuffix(1, "ing")},
		{e.shouldDoubleConsonant, doubleLast("ing")},
		{always, appendSuffix("ing")},
	}
	e.resultNounRules = ruleChain{
		{endsWith("ate"), swapSuffix(1, "ion")},
		{endsWith("ify"), swapSuffix(1, "ication")},
		{endsWith("ize"), swapSuffix(1, "ation")},
		{endsWith("e"), swapSuffix(1, "ion")},
		{always, appendSuffix("ion")},
	}
}

// pastParticiple derives the past participle of a lowercase base verb.
func (e *Engine) pastParticiple(word string) string {
	return e.pastParticipleRules.Apply(word)
}

// actorNoun derives the agent noun ("publish" -> "publisher").
func (e *Engine) actorNoun(word string) string {
	return e.actorNounRules.Apply(word)
}

// presentTense derives the third-person present tense ("publish" -> "publishes").
func (e *Engine) presentTense(word string) string {
	return e.presentTenseRules.Apply(word)
}

// gerund derives the -ing form ("publish" -> "publishing").
func (e *Engine) gerund(word string) string {
	return e.gerundRules.Apply(word)
}

// resultNoun derives the result noun ("create" -> "creation"). This is the
// roughest of the heuristics; verbs with Latinate results ("publish" ->
// "publication") belong in the known-verbs table instead.
func (e *Engine) resultNoun(word string) string {
	return e.resultNounRules.Apply(word)
}

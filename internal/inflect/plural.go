package inflect

import "strings"

// irregularPlurals maps singular -> plural for the canonical English
// irregulars. The singular table below is derived from it at init so the two
// directions can never drift apart.
var irregularPlurals = map[string]string{
	"person":     "people",
	"child":      "children",
	"man":        "men",
	"woman":      "women",
	"tooth":      "teeth",
	"foot":       "feet",
	"goose":      "geese",
	"mouse":      "mice",
	"louse":      "lice",
	"ox":         "oxen",
	"die":        "dice",
	"datum":      "data",
	"medium":     "media",
	"criterion":  "criteria",
	"phenomenon": "phenomena",
	"analysis":   "analyses",
	"basis":      "bases",
	"crisis":     "crises",
	"thesis":     "theses",
	"diagnosis":  "diagnoses",
	"index":      "indices",
	"matrix":     "matrices",
	"vertex":     "vertices",
	"cactus":     "cacti",
	"focus":      "foci",
	"fungus":     "fungi",
	"nucleus":    "nuclei",
	"radius":     "radii",
	"syllabus":   "syllabi",
}

var irregularSingulars = func() map[string]string {
	m := make(map[string]string, len(irregularPlurals))
	for singular, plural := range irregularPlurals {
		m[plural] = singular
	}
	return m
}()

func (e *Engine) buildNounRules() {
	e.pluralRules = ruleChain{
		{endsConsonantY, swapSuffix(1, "ies")},
		{func(w string) bool {
			return strings.HasSuffix(w, "z") && !strings.HasSuffix(w, "zz")
		}, appendSuffix("zes")},
		{endsWith("s", "x", "zz", "ch", "sh"), appendSuffix("es")},
		{endsWith("f"), swapSuffix(1, "ves")},
		{endsWith("fe"), swapSuffix(2, "ves")},
		{always, appendSuffix("s")},
	}
	e.singularRules = ruleChain{
		{endsWith("ies"), swapSuffix(3, "y")},
		{endsWith("ves"), swapSuffix(3, "f")},
		{func(w string) bool {
			if !strings.HasSuffix(w, "es") {
				return false
			}
			stem := w[:len(w)-2]
			return endsWith("ss", "x", "z", "ch", "sh")(stem)
		}, swapSuffix(2, "")},
		{func(w string) bool {
			return strings.HasSuffix(w, "s") && !strings.HasSuffix(w, "ss")
		}, swapSuffix(1, "")},
		// Anything else is already singular or unrecognized; leave it alone.
	}
}

// Pluralize converts a singular word to its plural form. Configured
// overrides win, then the irregular table, then the suffix rules. Table hits
// preserve the leading-character case of the input.
func (e *Engine) Pluralize(word string) string {
	if override, ok := e.config.PluralOverrides[word]; ok {
		return override
	}
	if plural, ok := irregularPlurals[strings.ToLower(word)]; ok {
		return PreserveCase(word, plural)
	}
	return e.pluralRules.Apply(word)
}

// Singularize converts a plural word to its singular form. It is not a
// perfect inverse of Pluralize: outside the override and irregular tables
// both directions are mechanical suffix heuristics, and round-tripping an
// arbitrary noun through Pluralize then Singularize may not return the
// original spelling.
func (e *Engine) Singularize(word string) string {
	if override, ok := e.config.SingularOverrides[word]; ok {
		return override
	}
	if singular, ok := irregularSingulars[strings.ToLower(word)]; ok {
		return PreserveCase(word, singular)
	}
	return e.singularRules.Apply(word)
}

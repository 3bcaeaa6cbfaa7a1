package inflect

import "strings"

// Noun is the inferred singular/plural phrase for a type name plus the fixed
// default action and event names every type carries.
type Noun struct {
	Singular string   `json:"singular"`
	Plural   string   `json:"plural"`
	Actions  []string `json:"actions"`
	Events   []string `json:"events"`
}

// InferNoun splits a camel-case type name into words and derives the
// lowercase singular and plural phrases. Only the final word is pluralized:
// "BlogPost" -> "blog post" / "blog posts".
func (e *Engine) InferNoun(typeName string) Noun {
	words := SplitCamelCase(typeName)
	lower := make([]string, len(words))
	for i, w := range words {
		lower[i] = strings.ToLower(w)
	}
	singular := strings.Join(lower, " ")

	plural := singular
	if len(lower) > 0 {
		lower[len(lower)-1] = e.Pluralize(lower[len(lower)-1])
		plural = strings.Join(lower, " ")
	}

	return Noun{
		Singular: singular,
		Plural:   plural,
		Actions:  []string{"create", "update", "delete"},
		Events:   []string{"created", "updated", "deleted"},
	}
}

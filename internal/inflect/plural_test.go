package inflect

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPluralize(t *testing.T) {
	engine := Default()

	tests := []struct {
		input    string
		expected string
	}{
		{"post", "posts"},
		{"category", "categories"},
		{"day", "days"}, // vowel + y stays
		{"person", "people"},
		{"child", "children"},
		{"quiz", "quizzes"},
		{"buzz", "buzzes"},
		{"status", "statuses"},
		{"box", "boxes"},
		{"branch", "branches"},
		{"dish", "dishes"},
		{"leaf", "leaves"},
		{"knife", "knives"},
		{"analysis", "analyses"},
		{"datum", "data"},
		{"orderItem", "orderItems"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, engine.Pluralize(tt.input))
		})
	}
}

func TestSingularize(t *testing.T) {
	engine := Default()

	tests := []struct {
		input    string
		expected string
	}{
		{"posts", "post"},
		{"categories", "category"},
		{"people", "person"},
		{"children", "child"},
		{"leaves", "leaf"},
		{"classes", "class"},
		{"boxes", "box"},
		{"branches", "branch"},
		{"dishes", "dish"},
		{"analyses", "analysis"},
		{"data", "datum"},
		{"post", "post"},   // already singular
		{"class", "class"}, // ss ending left alone
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, engine.Singularize(tt.input))
		})
	}
}

func TestPluralizePreservesLeadingCase(t *testing.T) {
	engine := Default()

	assert.Equal(t, "People", engine.Pluralize("Person"))
	assert.Equal(t, "Person", engine.Singularize("People"))
	assert.Equal(t, "Categories", engine.Pluralize("Category"))
}

func TestPluralizeWithOverrides(t *testing.T) {
	cfg := DefaultConfig()
	cfg.PluralOverrides = map[string]string{
		"staff": "staff", // Same singular/plural
	}
	engine := New(cfg, nil)

	assert.Equal(t, "staff", engine.Pluralize("staff"))
	assert.Equal(t, "posts", engine.Pluralize("post")) // Falls back to rules
}

func TestSingularizeWithOverrides(t *testing.T) {
	cfg := DefaultConfig()
	cfg.SingularOverrides = map[string]string{
		"statuses": "status",
	}
	engine := New(cfg, nil)

	assert.Equal(t, "status", engine.Singularize("statuses"))
	assert.Equal(t, "post", engine.Singularize("posts")) // Falls back to rules
}

// Round-tripping is only guaranteed for irregular table entries. Regular
// nouns with ambiguous suffixes may drift ("statuses" -> "statuse"); that is
// a documented limitation of the suffix heuristics, not a bug.
func TestIrregularRoundTripStability(t *testing.T) {
	engine := Default()

	for singular := range irregularPlurals {
		plural := engine.Pluralize(singular)
		assert.Equal(t, singular, engine.Singularize(plural), "singularize(pluralize(%q))", singular)
		assert.Equal(t, plural, engine.Pluralize(engine.Singularize(plural)), "pluralize(singularize(%q))", plural)
	}
}

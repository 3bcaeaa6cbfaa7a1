package inflect

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConjugateKnownVerbs(t *testing.T) {
	engine := Default()

	tests := []struct {
		action   string
		actor    string
		act      string
		activity string
		result   string
		at       string
	}{
		{"publish", "publisher", "publishes", "publishing", "publication", "publishedAt"},
		{"create", "creator", "creates", "creating", "creation", "createdAt"},
		{"update", "updater", "updates", "updating", "update", "updatedAt"},
		{"delete", "deleter", "deletes", "deleting", "deletion", "deletedAt"},
		{"choose", "chooser", "chooses", "choosing", "choice", "chosenAt"},
	}

	for _, tt := range tests {
		t.Run(tt.action, func(t *testing.T) {
			forms := engine.Conjugate(tt.action)
			assert.Equal(t, tt.action, forms.Action)
			assert.Equal(t, tt.actor, forms.Actor)
			assert.Equal(t, tt.act, forms.Act)
			assert.Equal(t, tt.activity, forms.Activity)
			assert.Equal(t, tt.result, forms.Result)
			assert.Equal(t, tt.at, forms.Reverse.At)
		})
	}
}

func TestConjugateDerived(t *testing.T) {
	engine := Default()

	forms := engine.Conjugate("archive")
	assert.Equal(t, "archive", forms.Action)
	assert.Equal(t, "archiver", forms.Actor)
	assert.Equal(t, "archives", forms.Act)
	assert.Equal(t, "archiving", forms.Activity)
	assert.Equal(t, "archivion", forms.Result) // mechanical, linguistically wrong, accepted
	assert.Equal(t, ReverseFields{
		At:  "archivedAt",
		By:  "archivedBy",
		In:  "archivedIn",
		For: "archivedFor",
	}, forms.Reverse)
}

func TestConjugateLowercasesInput(t *testing.T) {
	engine := Default()

	forms := engine.Conjugate("Deploy")
	assert.Equal(t, "deploy", forms.Action)
	assert.Equal(t, "deployer", forms.Actor)
	assert.Equal(t, "deployedAt", forms.Reverse.At)
}

func TestConjugateNonsenseToken(t *testing.T) {
	engine := Default()

	// Any string is accepted; derivation is mechanical.
	forms := engine.Conjugate("frob")
	assert.Equal(t, "frob", forms.Action)
	assert.Equal(t, "frobs", forms.Act)
	assert.Equal(t, "frobion", forms.Result)
}

func TestConjugateOverridePrecedence(t *testing.T) {
	cfg := DefaultConfig()
	cfg.KnownVerbs["archive"] = knownVerb(
		"archive", "archivist", "archives", "archiving", "archival", "archived",
	)
	engine := New(cfg, nil)

	forms := engine.Conjugate("archive")
	assert.Equal(t, "archivist", forms.Actor)
	assert.Equal(t, "archival", forms.Result)
}

func TestVerbFields(t *testing.T) {
	engine := Default()

	// Known action: reverse record from the table.
	assert.Equal(t, ReverseFields{
		At:  "publishedAt",
		By:  "publishedBy",
		In:  "publishedIn",
		For: "publishedFor",
	}, engine.VerbFields("publish"))

	// Unknown action: zero value, no derivation fallback.
	assert.Equal(t, ReverseFields{}, engine.VerbFields("archive"))
}

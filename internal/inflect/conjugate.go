package inflect

import (
	"log/slog"
	"strings"
)

// ReverseFields holds the timestamp/actor field names keyed off a verb's
// past participle, used when a relationship points back at the acting entity.
type ReverseFields struct {
	At  string `json:"at"`
	By  string `json:"by"`
	In  string `json:"in"`
	For string `json:"for"`
}

// VerbForms is the full derived (or pre-registered) record for one verb.
// Action is always lowercase; every other field follows deterministically
// from it unless the record came from the known-verbs table.
type VerbForms struct {
	Action   string        `json:"action"`
	Actor    string        `json:"actor"`
	Act      string        `json:"act"`
	Activity string        `json:"activity"`
	Result   string        `json:"result"`
	Reverse  ReverseFields `json:"reverse"`
}

// reverseFor builds the reverse-field record for a past participle.
func reverseFor(participle string) ReverseFields {
	return ReverseFields{
		At:  participle + "At",
		By:  participle + "By",
		In:  participle + "In",
		For: participle + "For",
	}
}

func knownVerb(action, actor, act, activity, result, participle string) VerbForms {
	return VerbForms{
		Action:   action,
		Actor:    actor,
		Act:      act,
		Activity: activity,
		Result:   result,
		Reverse:  reverseFor(participle),
	}
}

// DefaultKnownVerbs returns the standard pre-registered verb table: verbs
// whose conventional forms the suffix rules cannot reach ("publish" ->
// "publication", "create" -> "creator") or that are irregular outright
// ("choose" -> "chosen").
func DefaultKnownVerbs() map[string]VerbForms {
	return map[string]VerbForms{
		"create":  knownVerb("create", "creator", "creates", "creating", "creation", "created"),
		"update":  knownVerb("update", "updater", "updates", "updating", "update", "updated"),
		"delete":  knownVerb("delete", "deleter", "deletes", "deleting", "deletion", "deleted"),
		"publish": knownVerb("publish", "publisher", "publishes", "publishing", "publication", "published"),
		"submit":  knownVerb("submit", "submitter", "submits", "submitting", "submission", "submitted"),
		"approve": knownVerb("approve", "approver", "approves", "approving", "approval", "approved"),
		"cancel":  knownVerb("cancel", "canceller", "cancels", "cancelling", "cancellation", "cancelled"),
		"respond": knownVerb("respond", "responder", "responds", "responding", "response", "responded"),
		"receive": knownVerb("receive", "receiver", "receives", "receiving", "receipt", "received"),
		"choose":  knownVerb("choose", "chooser", "chooses", "choosing", "choice", "chosen"),
	}
}

// Conjugate returns the VerbForms record for an action name. A known-verbs
// table entry is returned unmodified; otherwise every form is derived from
// the lowercased input. Any string is accepted: nonsense tokens simply yield
// mechanically derived spellings.
func (e *Engine) Conjugate(action string) VerbForms {
	if forms, ok := e.config.KnownVerbs[action]; ok {
		e.logger.Debug("known verb override", slog.String("action", action))
		return forms
	}

	word := strings.ToLower(action)
	participle := e.pastParticiple(word)
	return VerbForms{
		Action:   word,
		Actor:    e.actorNoun(word),
		Act:      e.presentTense(word),
		Activity: e.gerund(word),
		Result:   e.resultNoun(word),
		Reverse:  reverseFor(participle),
	}
}

// VerbFields returns the reverse-field record for a pre-registered action.
// Unlike Conjugate it never derives: an action missing from the known-verbs
// table yields the zero value.
func (e *Engine) VerbFields(action string) ReverseFields {
	if forms, ok := e.config.KnownVerbs[action]; ok {
		return forms.Reverse
	}
	return ReverseFields{}
}

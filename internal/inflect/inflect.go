// Package inflect provides the morphological inference engine used to derive
// naming conventions from bare noun and verb tokens: pluralization,
// singularization, verb conjugation, and camel-case decomposition.
package inflect

import "log/slog"

// Config holds inflection customization options
type Config struct {
	// PluralOverrides maps singular -> custom plural, consulted before the
	// built-in irregular table and suffix rules.
	// Example: {"staff": "staff", "status": "statuses"}
	PluralOverrides map[string]string `mapstructure:"plural_overrides"`

	// SingularOverrides maps plural -> custom singular.
	// Example: {"statuses": "status", "data": "datum"}
	SingularOverrides map[string]string `mapstructure:"singular_overrides"`

	// KnownVerbs maps an action name to a fully pre-built record. Entries
	// take absolute precedence over derivation and are returned as-is.
	KnownVerbs map[string]VerbForms

	// DoublingVerbs extends the built-in final-consonant doubling list.
	DoublingVerbs []string `mapstructure:"doubling_verbs"`
}

// DefaultConfig returns sensible defaults, including the standard
// known-verbs table.
func DefaultConfig() Config {
	return Config{
		PluralOverrides:   make(map[string]string),
		SingularOverrides: make(map[string]string),
		KnownVerbs:        DefaultKnownVerbs(),
	}
}

// Engine performs all name form derivations. Every method is pure and safe
// for concurrent use; the engine holds no mutable state after construction.
type Engine struct {
	config   Config
	logger   *slog.Logger
	doubling []string

	pastParticipleRules ruleChain
	actorNounRules      ruleChain
	presentTenseRules   ruleChain
	gerundRules         ruleChain
	resultNounRules     ruleChain
	pluralRules         ruleChain
	singularRules       ruleChain
}

// New creates an Engine with the given configuration
func New(cfg Config, logger *slog.Logger) *Engine {
	if logger == nil {
		logger = slog.Default()
	}
	e := &Engine{
		config: cfg,
		logger: logger,
	}
	e.doubling = make([]string, 0, len(doublingVerbs)+len(cfg.DoublingVerbs))
	e.doubling = append(e.doubling, doublingVerbs...)
	e.doubling = append(e.doubling, cfg.DoublingVerbs...)
	e.buildVerbRules()
	e.buildNounRules()
	return e
}

// Default returns an Engine with default configuration
func Default() *Engine {
	return New(DefaultConfig(), nil)
}

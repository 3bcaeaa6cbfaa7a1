// Package config loads and validates naming engine configuration from
// command line flags, environment variables, and config files.
package config

import (
	"schema-inflect/internal/inflect"
	"schema-inflect/internal/logging"
)

// Config is the root configuration for the inflect tool.
type Config struct {
	Logging logging.Config `mapstructure:"logging"`
	Naming  NamingConfig   `mapstructure:"naming"`
	Verbs   VerbsConfig    `mapstructure:"verbs"`
	Output  OutputConfig   `mapstructure:"output"`
}

// NamingConfig holds noun inflection customization.
type NamingConfig struct {
	// PluralOverrides maps singular -> custom plural
	// Example: {"staff": "staff", "status": "statuses"}
	PluralOverrides map[string]string `mapstructure:"plural_overrides"`

	// SingularOverrides maps plural -> custom singular
	// Example: {"statuses": "status", "data": "datum"}
	SingularOverrides map[string]string `mapstructure:"singular_overrides"`
}

// VerbsConfig holds verb conjugation customization.
type VerbsConfig struct {
	// Known adds to (or replaces entries in) the built-in known-verbs
	// table. Keys are action names, matched verbatim against input.
	Known map[string]VerbConfig `mapstructure:"known"`

	// Doubling extends the built-in final-consonant doubling verb list.
	Doubling []string `mapstructure:"doubling"`
}

// VerbConfig is one pre-registered verb record. All fields are emitted
// exactly as written; nothing is re-derived for a registered verb.
type VerbConfig struct {
	Actor      string `mapstructure:"actor"`
	Act        string `mapstructure:"act"`
	Activity   string `mapstructure:"activity"`
	Result     string `mapstructure:"result"`
	Participle string `mapstructure:"participle"`
}

// OutputConfig controls how the CLI renders derived names.
type OutputConfig struct {
	// JSON switches output from tab-separated text to indented JSON.
	JSON bool `mapstructure:"json"`

	// Mode selects what each input token is treated as:
	// type, verb, plural, or singular.
	Mode string `mapstructure:"mode"`
}

// EngineConfig assembles the inflect.Config for this configuration:
// the built-in defaults with file-provided overrides layered on top.
func (c *Config) EngineConfig() inflect.Config {
	ec := inflect.DefaultConfig()
	for singular, plural := range c.Naming.PluralOverrides {
		ec.PluralOverrides[singular] = plural
	}
	for plural, singular := range c.Naming.SingularOverrides {
		ec.SingularOverrides[plural] = singular
	}
	for action, verb := range c.Verbs.Known {
		ec.KnownVerbs[action] = verb.Forms(action)
	}
	ec.DoublingVerbs = append(ec.DoublingVerbs, c.Verbs.Doubling...)
	return ec
}

// Forms converts a configured verb record into the engine representation.
func (v VerbConfig) Forms(action string) inflect.VerbForms {
	return inflect.VerbForms{
		Action:   action,
		Actor:    v.Actor,
		Act:      v.Act,
		Activity: v.Activity,
		Result:   v.Result,
		Reverse: inflect.ReverseFields{
			At:  v.Participle + "At",
			By:  v.Participle + "By",
			In:  v.Participle + "In",
			For: v.Participle + "For",
		},
	}
}

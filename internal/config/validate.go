package config

import (
	"fmt"
	"strings"
)

// ValidationError represents a configuration validation error with context.
type ValidationError struct {
	Field   string
	Message string
	Hint    string
}

func (e ValidationError) Error() string {
	if e.Hint != "" {
		return fmt.Sprintf("%s: %s (hint: %s)", e.Field, e.Message, e.Hint)
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationWarning represents a non-fatal configuration issue.
type ValidationWarning struct {
	Field   string
	Message string
	Hint    string
}

// ValidationResult contains the results of configuration validation.
type ValidationResult struct {
	Errors   []ValidationError
	Warnings []ValidationWarning
}

// HasErrors returns true if there are any validation errors.
func (r *ValidationResult) HasErrors() bool {
	return len(r.Errors) > 0
}

// Error returns a combined error message if there are validation errors.
func (r *ValidationResult) Error() string {
	if !r.HasErrors() {
		return ""
	}
	var msgs []string
	for _, e := range r.Errors {
		msgs = append(msgs, e.Error())
	}
	return strings.Join(msgs, "; ")
}

// Validate checks the configuration for errors and returns validation
// results. It returns both errors (fatal) and warnings (non-fatal issues).
func (c *Config) Validate() *ValidationResult {
	result := &ValidationResult{}

	c.validateLogging(result)
	c.validateNaming(result)
	c.validateVerbs(result)
	c.validateOutput(result)

	return result
}

func (c *Config) validateLogging(result *ValidationResult) {
	switch c.Logging.Level {
	case "", "debug", "info", "warn", "error":
	default:
		result.Errors = append(result.Errors, ValidationError{
			Field:   "logging.level",
			Message: fmt.Sprintf("unknown log level %q", c.Logging.Level),
			Hint:    "use one of: debug, info, warn, error",
		})
	}

	switch c.Logging.Format {
	case "", "json", "text":
	default:
		result.Errors = append(result.Errors, ValidationError{
			Field:   "logging.format",
			Message: fmt.Sprintf("unknown log format %q", c.Logging.Format),
			Hint:    "use one of: json, text",
		})
	}
}

func (c *Config) validateNaming(result *ValidationResult) {
	for singular, plural := range c.Naming.PluralOverrides {
		if singular == "" || plural == "" {
			result.Errors = append(result.Errors, ValidationError{
				Field:   "naming.plural_overrides",
				Message: "override entries must have a non-empty key and value",
			})
		}
	}
	for plural, singular := range c.Naming.SingularOverrides {
		if plural == "" || singular == "" {
			result.Errors = append(result.Errors, ValidationError{
				Field:   "naming.singular_overrides",
				Message: "override entries must have a non-empty key and value",
			})
		}
	}
}

func (c *Config) validateVerbs(result *ValidationResult) {
	for action, verb := range c.Verbs.Known {
		field := fmt.Sprintf("verbs.known.%s", action)

		if action != strings.ToLower(action) {
			result.Errors = append(result.Errors, ValidationError{
				Field:   field,
				Message: "action names must be lowercase",
				Hint:    "registered verbs are matched verbatim against the lowercase action name",
			})
		}

		if verb.Participle == "" {
			result.Errors = append(result.Errors, ValidationError{
				Field:   field + ".participle",
				Message: "participle is required",
				Hint:    "reverse fields (At/By/In/For) are built from the past participle",
			})
		}

		for name, value := range map[string]string{
			"actor":    verb.Actor,
			"act":      verb.Act,
			"activity": verb.Activity,
			"result":   verb.Result,
		} {
			if value == "" {
				result.Warnings = append(result.Warnings, ValidationWarning{
					Field:   field + "." + name,
					Message: "empty form will be emitted as-is",
					Hint:    "registered verbs are never re-derived; fill in every form",
				})
			}
		}
	}

	for _, word := range c.Verbs.Doubling {
		if word == "" {
			result.Errors = append(result.Errors, ValidationError{
				Field:   "verbs.doubling",
				Message: "doubling entries must be non-empty",
			})
			continue
		}
		if word != strings.ToLower(word) {
			result.Errors = append(result.Errors, ValidationError{
				Field:   "verbs.doubling",
				Message: fmt.Sprintf("entry %q must be lowercase", word),
			})
		}
		last := word[len(word)-1]
		if last == 'w' || last == 'x' || last == 'y' || strings.ContainsRune("aeiou", rune(last)) {
			result.Warnings = append(result.Warnings, ValidationWarning{
				Field:   "verbs.doubling",
				Message: fmt.Sprintf("entry %q can never match", word),
				Hint:    "doubling only applies to words ending in a consonant other than w, x, or y",
			})
		}
	}
}

func (c *Config) validateOutput(result *ValidationResult) {
	switch c.Output.Mode {
	case "", "type", "verb", "plural", "singular":
	default:
		result.Errors = append(result.Errors, ValidationError{
			Field:   "output.mode",
			Message: fmt.Sprintf("unknown mode %q", c.Output.Mode),
			Hint:    "use one of: type, verb, plural, singular",
		})
	}
}

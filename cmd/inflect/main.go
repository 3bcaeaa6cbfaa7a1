package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"

	"schema-inflect/internal/config"
	"schema-inflect/internal/inflect"
	"schema-inflect/internal/logging"
	"schema-inflect/internal/observability"
	"schema-inflect/internal/typemeta"

	"github.com/spf13/pflag"
)

var (
	// Version is set at build time via -ldflags "-X main.Version=...".
	Version = "dev"
	Commit  = "none"
)

func main() {
	if err := run(); err != nil {
		slog.Error("inflect error", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func run() error {
	pflag.Bool("version", false, "Print version and exit")

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	if showVersion, _ := pflag.CommandLine.GetBool("version"); showVersion {
		fmt.Printf("inflect %s (%s)\n", Version, Commit)
		return nil
	}

	validationResult := cfg.Validate()
	for _, warn := range validationResult.Warnings {
		slog.Warn("configuration warning",
			slog.String("field", warn.Field),
			slog.String("message", warn.Message),
			slog.String("hint", warn.Hint),
		)
	}
	if validationResult.HasErrors() {
		for _, err := range validationResult.Errors {
			slog.Error("configuration error",
				slog.String("field", err.Field),
				slog.String("message", err.Message),
				slog.String("hint", err.Hint),
			)
		}
		return fmt.Errorf("configuration validation failed")
	}

	logger := logging.NewLogger(cfg.Logging)
	engine := inflect.New(cfg.EngineConfig(), logger.Logger)

	metrics, err := observability.InitCacheMetrics()
	if err != nil {
		logger.Warn("cache metrics disabled", slog.String("error", err.Error()))
	}
	store := typemeta.New(engine, logger.Logger, metrics)

	tokens := pflag.Args()
	if len(tokens) == 0 {
		return fmt.Errorf("no tokens given: pass one or more type or verb names")
	}

	out := bufio.NewWriter(os.Stdout)
	defer out.Flush()

	for _, token := range tokens {
		if err := emit(out, cfg.Output, engine, store, token); err != nil {
			return fmt.Errorf("failed to emit %q: %w", token, err)
		}
	}
	return nil
}

// emit derives the forms for one token according to the output mode and
// writes them as JSON or tab-separated text.
func emit(w io.Writer, out config.OutputConfig, engine *inflect.Engine, store *typemeta.Store, token string) error {
	var payload any
	switch out.Mode {
	case "verb":
		payload = engine.Conjugate(token)
	case "plural":
		payload = engine.Pluralize(token)
	case "singular":
		payload = engine.Singularize(token)
	default:
		payload = store.Type(token)
	}

	if out.JSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(payload)
	}

	switch v := payload.(type) {
	case string:
		_, err := fmt.Fprintf(w, "%s\t%s\n", token, v)
		return err
	case inflect.VerbForms:
		_, err := fmt.Fprintf(w, "%s\tactor=%s act=%s activity=%s result=%s at=%s\n",
			v.Action, v.Actor, v.Act, v.Activity, v.Result, v.Reverse.At)
		return err
	case typemeta.TypeMeta:
		_, err := fmt.Fprintf(w, "%s\tsingular=%q plural=%q slug=%s created=%s\n",
			v.Name, v.Singular, v.Plural, v.Slug, v.Created)
		return err
	}
	return nil
}

package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/medscan/medscan/pkg/analyzer"
	"github.com/medscan/medscan/pkg/analyzer/llm"
	"github.com/medscan/medscan/pkg/retry"
)

func (cfg *Config) RegisterAnalyzer(id string, p analyzer.Provider) {
	if cfg.analyzers == nil {
		cfg.analyzers = make(map[string]analyzer.Provider)
	}

	if _, ok := cfg.analyzers[""]; !ok {
		cfg.analyzers[""] = p
	}

	cfg.analyzers[id] = p
}

func (cfg *Config) Analyzer(id string) (analyzer.Provider, error) {
	if cfg.analyzers != nil {
		if a, ok := cfg.analyzers[id]; ok {
			return a, nil
		}
	}

	return nil, errors.New("analyzer not found: " + id)
}

type analyzerConfig struct {
	Type string `yaml:"type"`

	Model string `yaml:"model"`

	Attempts int    `yaml:"attempts"`
	Delay    string `yaml:"delay"`
}

func (cfg *Config) registerAnalyzers(f *configFile) error {
	var configs map[string]analyzerConfig

	if !f.Analyzers.IsZero() {
		if err := f.Analyzers.Decode(&configs); err != nil {
			return err
		}
	}

	if len(configs) == 0 {
		configs = map[string]analyzerConfig{
			"report": {Type: "llm"},
		}
	}

	for id, config := range configs {
		analyzer, err := cfg.createAnalyzer(config)

		if err != nil {
			return err
		}

		cfg.RegisterAnalyzer(id, analyzer)
	}

	return nil
}

func (cfg *Config) createAnalyzer(c analyzerConfig) (analyzer.Provider, error) {
	switch strings.ToLower(c.Type) {
	case "llm":
		return cfg.llmAnalyzer(c)

	default:
		return nil, errors.New("invalid analyzer type: " + c.Type)
	}
}

func (cfg *Config) llmAnalyzer(c analyzerConfig) (analyzer.Provider, error) {
	completer, err := cfg.Completer(c.Model)

	if err != nil {
		return nil, err
	}

	policy := retry.Default()

	if c.Attempts > 0 {
		policy.Attempts = c.Attempts
	}

	if c.Delay != "" {
		delay, err := time.ParseDuration(c.Delay)

		if err != nil {
			return nil, fmt.Errorf("invalid analyzer delay: %w", err)
		}

		policy.Delay = delay
	}

	return llm.New(completer, llm.WithPolicy(policy))
}

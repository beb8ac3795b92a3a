package config

import (
	"errors"
	"strings"

	"github.com/medscan/medscan/pkg/limiter"
	"github.com/medscan/medscan/pkg/provider"
	"github.com/medscan/medscan/pkg/provider/google"
)

func (cfg *Config) RegisterModel(id string) {
	if cfg.models == nil {
		cfg.models = make(map[string]provider.Model)
	}

	cfg.models[id] = provider.Model{
		ID: id,
	}
}

func (cfg *Config) Models() []provider.Model {
	var result []provider.Model

	for _, m := range cfg.models {
		result = append(result, m)
	}

	return result
}

func (cfg *Config) RegisterCompleter(model string, p provider.Completer) {
	if cfg.completer == nil {
		cfg.completer = make(map[string]provider.Completer)
	}

	if _, ok := cfg.completer[""]; !ok {
		cfg.completer[""] = p
	}

	cfg.completer[model] = p
}

func (cfg *Config) Completer(model string) (provider.Completer, error) {
	if cfg.completer != nil {
		if c, ok := cfg.completer[model]; ok {
			return c, nil
		}
	}

	return nil, errors.New("completer not found: " + model)
}

type providerConfig struct {
	Type string `yaml:"type"`

	Token string `yaml:"token"`

	Limit *int `yaml:"limit"`

	Models map[string]modelConfig `yaml:"models"`
}

type modelConfig struct {
	ID string `yaml:"id"`
}

func (cfg *Config) registerProviders(f *configFile) error {
	for _, p := range f.Providers {
		models := p.Models

		for id, model := range models {
			if model.ID == "" {
				model.ID = id
			}

			completer, err := createCompleter(p, model)

			if err != nil {
				return err
			}

			if _, ok := completer.(limiter.Completer); !ok {
				completer = limiter.NewCompleter(createLimiter(p.Limit), completer)
			}

			cfg.RegisterModel(id)
			cfg.RegisterCompleter(id, completer)
		}
	}

	return nil
}

func createCompleter(cfg providerConfig, model modelConfig) (provider.Completer, error) {
	switch strings.ToLower(cfg.Type) {
	case "google":
		return googleCompleter(cfg, model)

	default:
		return nil, errors.New("invalid provider type: " + cfg.Type)
	}
}

func googleCompleter(cfg providerConfig, model modelConfig) (provider.Completer, error) {
	if cfg.Token == "" {
		return nil, errors.New("missing provider token")
	}

	return google.NewCompleter(model.ID, google.WithToken(cfg.Token))
}

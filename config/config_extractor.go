package config

import (
	"errors"
	"maps"
	"slices"
	"strings"

	"github.com/medscan/medscan/pkg/extractor"
	"github.com/medscan/medscan/pkg/extractor/multi"
	"github.com/medscan/medscan/pkg/extractor/pdf"
	"github.com/medscan/medscan/pkg/extractor/text"
)

func (cfg *Config) RegisterExtractor(id string, p extractor.Provider) {
	if cfg.extractors == nil {
		cfg.extractors = make(map[string]extractor.Provider)
	}

	cfg.extractors[id] = p
}

func (cfg *Config) Extractor(id string) (extractor.Provider, error) {
	if cfg.extractors != nil {
		if e, ok := cfg.extractors[id]; ok {
			return e, nil
		}
	}

	return nil, errors.New("extractor not found: " + id)
}

type extractorConfig struct {
	Type string `yaml:"type"`
}

func (cfg *Config) registerExtractors(f *configFile) error {
	var configs map[string]extractorConfig

	if !f.Extractors.IsZero() {
		if err := f.Extractors.Decode(&configs); err != nil {
			return err
		}
	}

	// an unconfigured service still reads PDF and plain-text reports
	if len(configs) == 0 {
		configs = map[string]extractorConfig{
			"pdf":  {Type: "pdf"},
			"text": {Type: "text"},
		}
	}

	var extractors []extractor.Provider

	for _, id := range slices.Sorted(maps.Keys(configs)) {
		extractor, err := createExtractor(configs[id])

		if err != nil {
			return err
		}

		extractors = append(extractors, extractor)

		cfg.RegisterExtractor(id, extractor)
	}

	cfg.RegisterExtractor("", multi.New(extractors...))

	return nil
}

func createExtractor(cfg extractorConfig) (extractor.Provider, error) {
	switch strings.ToLower(cfg.Type) {
	case "pdf":
		return pdf.New()

	case "text":
		return text.New()

	default:
		return nil, errors.New("invalid extractor type: " + cfg.Type)
	}
}

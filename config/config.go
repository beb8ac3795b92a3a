package config

import (
	"bytes"
	"fmt"
	"os"
	"time"

	"github.com/medscan/medscan/pkg/analyzer"
	"github.com/medscan/medscan/pkg/extractor"
	"github.com/medscan/medscan/pkg/fetcher"
	"github.com/medscan/medscan/pkg/provider"

	"golang.org/x/time/rate"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Address string

	Fetcher *fetcher.Client

	models map[string]provider.Model

	completer map[string]provider.Completer

	extractors map[string]extractor.Provider
	analyzers  map[string]analyzer.Provider
}

func Parse(path string) (*Config, error) {
	file, err := parseFile(path)

	if err != nil {
		return nil, err
	}

	c := &Config{
		Address: ":8080",
	}

	if file.Address != "" {
		c.Address = file.Address
	}

	if err := c.registerFetcher(file); err != nil {
		return nil, err
	}

	if err := c.registerProviders(file); err != nil {
		return nil, err
	}

	if err := c.registerExtractors(file); err != nil {
		return nil, err
	}

	if err := c.registerAnalyzers(file); err != nil {
		return nil, err
	}

	return c, nil
}

type configFile struct {
	Address string `yaml:"address"`

	Download downloadConfig `yaml:"download"`

	Providers []providerConfig `yaml:"providers"`

	Extractors yaml.Node `yaml:"extractors"`
	Analyzers  yaml.Node `yaml:"analyzers"`
}

type downloadConfig struct {
	Timeout string `yaml:"timeout"`
}

func parseFile(path string) (*configFile, error) {
	data, err := os.ReadFile(path)

	if err != nil {
		return nil, err
	}

	data = []byte(os.ExpandEnv(string(data)))

	var config configFile

	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)

	if err := decoder.Decode(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

func (cfg *Config) registerFetcher(f *configFile) error {
	var options []fetcher.Option

	if f.Download.Timeout != "" {
		timeout, err := time.ParseDuration(f.Download.Timeout)

		if err != nil {
			return fmt.Errorf("invalid download timeout: %w", err)
		}

		if timeout > 0 {
			options = append(options, fetcher.WithTimeout(timeout))
		}
	}

	client, err := fetcher.New(options...)

	if err != nil {
		return err
	}

	cfg.Fetcher = client

	return nil
}

func createLimiter(limit *int) *rate.Limiter {
	if limit == nil {
		return nil
	}

	return rate.NewLimiter(rate.Limit(*limit), *limit)
}

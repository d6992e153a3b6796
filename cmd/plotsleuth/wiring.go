package main

import (
	"github.com/davetashner/plotsleuth/internal/config"
	"github.com/davetashner/plotsleuth/internal/identify"
	"github.com/davetashner/plotsleuth/internal/llm"
)

// newLLMProvider constructs the LLM provider for the commands. Swappable in
// tests. The identify pipeline makes a single blocking round-trip per
// request, so transport-level retries are disabled.
var newLLMProvider = func() (llm.Provider, error) {
	return llm.NewAnthropicProvider(llm.WithMaxRetries(0))
}

// resolveConfig loads the config file (an explicit path, or .plotsleuth.yaml
// in the working directory), applies flag overrides, fills defaults, and
// validates the result.
func resolveConfig(path, listen, model string) (*config.Config, error) {
	var (
		cfg *config.Config
		err error
	)
	if path != "" {
		cfg, err = config.LoadFile(path)
	} else {
		cfg, err = config.Load(".")
	}
	if err != nil {
		return nil, err
	}

	if listen != "" {
		cfg.Listen = listen
	}
	if model != "" {
		cfg.Model = model
	}

	config.ApplyDefaults(cfg)
	if err := config.Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// newIdentifyService wires a Service from the provider and resolved config.
func newIdentifyService(provider llm.Provider, cfg *config.Config) *identify.Service {
	opts := []identify.Option{
		identify.WithMaxTokens(cfg.MaxTokens),
		identify.WithSampling(*cfg.Temperature, *cfg.TopP),
	}
	if cfg.Model != "" {
		opts = append(opts, identify.WithModel(cfg.Model))
	}
	return identify.NewService(provider, opts...)
}

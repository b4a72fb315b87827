package main

import (
	"context"
	"fmt"
	"os"

	"github.com/rmoreira/researchflow/internal/app"
	"github.com/rmoreira/researchflow/internal/config"
	"github.com/rmoreira/researchflow/internal/llm"
	"github.com/rmoreira/researchflow/internal/store"
	"github.com/rmoreira/researchflow/internal/synthesis"
)

// loadRuntimeConfig layers configuration: config file under environment
// variables, with built-in defaults filling the rest.
func loadRuntimeConfig() (config.Config, error) {
	cfg := *config.FromEnv()
	cfg.Verbose = rootVerbose

	if rootConfigFile != "" {
		fileCfg, err := config.LoadConfig(rootConfigFile)
		if err != nil {
			return config.Config{}, err
		}
		cfg = cfg.MergeWithDefaults(*fileCfg)
	}
	cfg = cfg.MergeWithDefaults(config.Config{
		DataDir:       config.DefaultDataDir(),
		SearchResults: config.DefaultSearchResults,
	})

	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

// openKV selects the library store backend: PostgreSQL when a database URL
// is configured, the file store otherwise.
func openKV(ctx context.Context, cfg config.Config) (store.KV, func(), error) {
	if cfg.DatabaseURL != "" {
		pg, err := store.ConnectPostgres(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, nil, err
		}
		return pg, pg.Close, nil
	}

	kv, err := store.NewFileKV(cfg.DataDir)
	if err != nil {
		return nil, nil, err
	}
	return kv, func() {}, nil
}

// buildApp wires the pipeline, store, and orchestration state. A missing API
// key is a startup warning, not an error; generation calls will then fail
// with an authentication error.
func buildApp(ctx context.Context, cfg config.Config) (*app.App, func(), error) {
	var client llm.Client
	if cfg.APIKey == "" {
		fmt.Fprintf(os.Stderr, "Warning: %s is not set; synthesis calls will fail until a key is configured\n", config.EnvAPIKey)
		client = llm.Unauthenticated()
	} else {
		llmConfig := llm.DefaultConfig()
		if cfg.Model != "" {
			llmConfig = llmConfig.WithModel(llm.TierStandard, cfg.Model)
		}
		c, err := llm.NewClient(ctx, llmConfig, cfg.APIKey)
		if err != nil {
			return nil, nil, err
		}
		client = c
	}

	kv, closeKV, err := openKV(ctx, cfg)
	if err != nil {
		_ = client.Close()
		return nil, nil, err
	}

	pipeline := synthesis.New(client, synthesis.WithBatchSize(cfg.SearchResults))
	library := store.NewLibrary(kv)
	application := app.New(ctx, pipeline, library, os.Stderr)

	cleanup := func() {
		closeKV()
		_ = client.Close()
	}
	return application, cleanup, nil
}

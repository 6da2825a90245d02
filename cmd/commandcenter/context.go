package main

import (
	"context"
	"time"

	"command-center/market"
	"command-center/market/youtube"
	"command-center/shared/ai"
	"command-center/shared/config"
	"command-center/shared/storage"
	"command-center/strategy"
	"command-center/strategy/transcript"
)

// commandContext carries the loaded configuration and builds the
// pipeline components commands need.
type commandContext struct {
	configFlag *string
	cfg        *config.Config
}

func newCommandContext(configFlag *string) *commandContext {
	return &commandContext{configFlag: configFlag}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	if c.cfg != nil {
		return c.cfg, nil
	}
	cfg, err := config.Load(*c.configFlag)
	if err != nil {
		return nil, err
	}
	c.cfg = cfg
	return cfg, nil
}

func (c *commandContext) newScanner(ctx context.Context, cfg *config.Config) (*market.Scanner, error) {
	client, err := youtube.NewClient(ctx, &cfg.YouTube, cfg.Market.Region)
	if err != nil {
		return nil, err
	}
	cache := storage.NewScanCache(15 * time.Minute)
	return market.NewScanner(client, cfg.Market.RPM, cfg.Market.MaxResults, cache), nil
}

func (c *commandContext) newEngine(ctx context.Context, cfg *config.Config) (*strategy.Engine, error) {
	if err := cfg.RequireAI(); err != nil {
		return nil, err
	}
	generator, err := ai.NewGenerator(ctx, &cfg.AI)
	if err != nil {
		return nil, err
	}
	transcripts := transcript.NewClient(cfg.Strategy.Language)
	return strategy.NewEngine(transcripts, generator, cfg.Strategy.TranscriptChars), nil
}

package main

import (
	"errors"
	"fmt"

	"github.com/poiesic/resumatch"
	"github.com/poiesic/resumatch/ai"
	"github.com/poiesic/resumatch/core"
	"github.com/spf13/viper"
	"github.com/urfave/cli/v2"
)

var errNoDatabase = errors.New("database path is required (--db or db in the config file)")

type embeddingSettings struct {
	Host     string `mapstructure:"host"`
	Model    string `mapstructure:"model"`
	Disabled bool   `mapstructure:"disabled"`
}

type settings struct {
	DB        string            `mapstructure:"db"`
	PoolSize  int               `mapstructure:"pool-size"`
	Top       int               `mapstructure:"top"`
	Embedding embeddingSettings `mapstructure:"embedding"`
}

// loadSettings merges defaults, the optional config file and command line
// flags, in increasing order of precedence.
func loadSettings(c *cli.Context) (*settings, error) {
	defaults := ai.DefaultConfig()

	v := viper.New()
	v.SetDefault("embedding.host", defaults.EmbeddingHost)
	v.SetDefault("embedding.model", defaults.EmbeddingModel)
	v.SetDefault("embedding.disabled", false)
	v.SetDefault("pool-size", 0)
	v.SetDefault("top", 0)

	if path := c.String("config"); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config %s: %w", path, err)
		}
	}

	overrides := map[string]string{
		"db":              "db",
		"pool-size":       "pool-size",
		"top":             "top",
		"embedding-host":  "embedding.host",
		"embedding-model": "embedding.model",
		"no-embeddings":   "embedding.disabled",
	}
	for flag, key := range overrides {
		if c.IsSet(flag) {
			v.Set(key, c.Value(flag))
		}
	}

	var s settings
	if err := v.Unmarshal(&s); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return &s, nil
}

// databaseOptions translates the settings into resumatch options.
func (s *settings) databaseOptions() []resumatch.DatabaseOption {
	if s.Embedding.Disabled {
		return []resumatch.DatabaseOption{resumatch.WithoutEmbeddings()}
	}
	return []resumatch.DatabaseOption{
		resumatch.WithAIConfig(ai.NewConfig(
			ai.WithEmbeddingHost(s.Embedding.Host),
			ai.WithEmbeddingModel(s.Embedding.Model),
		)),
	}
}

func openDatabase(c *cli.Context) (*resumatch.Database, *settings, error) {
	s, err := loadSettings(c)
	if err != nil {
		return nil, nil, err
	}
	if s.DB == "" {
		return nil, nil, errNoDatabase
	}

	db, err := resumatch.NewDatabase(s.DB, s.databaseOptions()...)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open database: %w", err)
	}
	return db, s, nil
}

// loadJob reads a job requirement from a YAML (or JSON/TOML) file.
func loadJob(path string) (core.JobRequirement, error) {
	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return core.JobRequirement{}, fmt.Errorf("failed to read job %s: %w", path, err)
	}

	var job core.JobRequirement
	if err := v.Unmarshal(&job); err != nil {
		return core.JobRequirement{}, fmt.Errorf("invalid job %s: %w", path, err)
	}
	if err := core.ValidateJobRequirement(&job); err != nil {
		return core.JobRequirement{}, err
	}
	return job, nil
}

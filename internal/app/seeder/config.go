package seeder

import (
	"errors"
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config tunes a seeding run. Environment variables win over the YAML file.
type Config struct {
	FixturesPath string        `yaml:"fixtures_path" env:"SEEDER_FIXTURES_PATH"`
	Concurrency  int           `yaml:"concurrency"   env:"SEEDER_CONCURRENCY"   env-default:"4"`
	WaitPersist  time.Duration `yaml:"wait_persist"  env:"SEEDER_WAIT_PERSIST"  env-default:"30s"`
	DryRun       bool          `yaml:"dry_run"       env:"SEEDER_DRY_RUN"`
}

// LoadConfig reads path when given, otherwise the environment alone.
func LoadConfig(path string) (*Config, error) {
	var (
		cfg Config
		err error
	)
	if path == "" {
		err = cleanenv.ReadEnv(&cfg)
	} else {
		err = cleanenv.ReadConfig(path, &cfg)
	}
	if err != nil {
		return nil, fmt.Errorf("seeder config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("seeder config: %w", err)
	}
	return &cfg, nil
}

func (c Config) validate() error {
	var errs []error
	if c.Concurrency < 1 {
		errs = append(errs, fmt.Errorf("concurrency must be at least 1, got %d", c.Concurrency))
	}
	if c.WaitPersist < 0 {
		errs = append(errs, errors.New("wait_persist must not be negative"))
	}
	return errors.Join(errs...)
}

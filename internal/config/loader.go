package config

import (
	"context"
	"os"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const (
	envPrefix     = "LINEOUT_"
	envConfigFile = "LINEOUT_CONFIG"
	envDotFile    = "LINEOUT_ENV_FILE"
	defaultDotEnv = ".env"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Load builds a Config by layering defaults, optional file, and env vars.
// Order of precedence (low -> high):
//  1. defaults (New(ctx))
//  2. file (YAML) if LINEOUT_CONFIG is set
//  3. env (prefix LINEOUT_), after an optional .env file is merged into the
//     process environment without overriding variables already set
func Load(ctx context.Context) (*Config, error) {
	base := New(ctx)

	if err := loadDotEnv(); err != nil {
		return nil, errors.Mark(errors.Wrap(err, "read env file"), ErrLoadConfig)
	}

	k := koanf.New(".")

	if path := os.Getenv(envConfigFile); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, errors.Mark(errors.Wrapf(err, "read config file %s", path), ErrLoadConfig)
		}
	}

	// LINEOUT_WORKBOOK_PATH -> workbook_path; underscores are kept to match
	// the flat koanf tags.
	envProvider := env.Provider(envPrefix, ".", func(s string) string {
		return strings.TrimPrefix(strings.ToLower(s), strings.ToLower(envPrefix))
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, errors.Mark(errors.Wrap(err, "read environment"), ErrLoadConfig)
	}

	cfg := *base
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, errors.Mark(errors.Wrap(err, "decode config"), ErrLoadConfig)
	}

	if err := Validate(ctx, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the struct constraints of cfg.
func Validate(_ context.Context, cfg *Config) error {
	if err := validate.Struct(cfg); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			fe := verrs[0]
			return errors.Mark(errors.Newf("%s failed %q validation", strings.ToLower(fe.Field()), fe.Tag()), ErrInvalidConfig)
		}
		return errors.Mark(err, ErrInvalidConfig)
	}
	return nil
}

func loadDotEnv() error {
	path := os.Getenv(envDotFile)
	if path == "" {
		path = defaultDotEnv
	}
	if err := godotenv.Load(path); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

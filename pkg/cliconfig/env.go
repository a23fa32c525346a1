package cliconfig

import (
	"fmt"
	"os"
	"strconv"
)

// Environment variable names
const (
	EnvLocale    = "FAKERHELPER_LOCALE"
	EnvSeed      = "FAKERHELPER_SEED"
	EnvCount     = "FAKERHELPER_COUNT"
	EnvFormat    = "FAKERHELPER_FORMAT"
	EnvLogLevel  = "FAKERHELPER_LOG_LEVEL"
	EnvLogFormat = "FAKERHELPER_LOG_FORMAT"
)

// LoadEnvConfig loads configuration from environment variables.
// It only sets values that are present in the environment.
func LoadEnvConfig(cfg *CLIConfig) error {
	env := &CLIConfig{
		Locale:    os.Getenv(EnvLocale),
		Format:    os.Getenv(EnvFormat),
		LogLevel:  os.Getenv(EnvLogLevel),
		LogFormat: os.Getenv(EnvLogFormat),
	}

	if v := os.Getenv(EnvSeed); v != "" {
		seed, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return fmt.Errorf("%s: invalid seed %q", EnvSeed, v)
		}
		env.Seed = &seed
	}

	if v := os.Getenv(EnvCount); v != "" {
		count, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s: invalid count %q", EnvCount, v)
		}
		env.Count = &count
	}

	MergeConfig(cfg, env, SourceEnv)
	return nil
}

package config

import (
	"fmt"
	"path/filepath"
	"runtime"
	"strings"

	internal "github.com/ZanzyTHEbar/seqpad/seqpad"

	"github.com/spf13/viper"
)

// Config stores all configuration of the application.
// The values are read by viper from a config file or environment variables.
type Config struct {
	Data   DataConfig   `mapstructure:"data"`
	Model  ModelConfig  `mapstructure:"model"`
	Loader LoaderConfig `mapstructure:"loader"`
	Log    LogConfig    `mapstructure:"log"`
}

// DataConfig describes which fields the dataset produces.
type DataConfig struct {
	PadIdx      int  `mapstructure:"padIdx"`
	HasFeatures bool `mapstructure:"hasFeatures"`
	HasTarget   bool `mapstructure:"hasTarget"`
}

// ModelConfig selects the target model architecture.
type ModelConfig struct {
	Arch string `mapstructure:"arch"`
}

// LoaderConfig controls concurrent batch collation.
type LoaderConfig struct {
	Workers int `mapstructure:"workers"`
}

// LogConfig stores logging settings.
type LogConfig struct {
	Level string `mapstructure:"level"`
}

// LoadConfig reads configuration from file or environment variables.
// A missing config file is not an error; defaults are used instead.
func LoadConfig(configPath string) (*Config, error) {
	v := viper.New()
	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.AddConfigPath(".")
		v.AddConfigPath("..")
		v.AddConfigPath(filepath.Join("etc", internal.DefaultAppName))
		v.AddConfigPath(internal.DefaultConfigPath)
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}

	v.SetDefault("data.padIdx", internal.DefaultPadIdx)
	v.SetDefault("data.hasFeatures", internal.DefaultHasFeatures)
	v.SetDefault("data.hasTarget", internal.DefaultHasTarget)
	v.SetDefault("model.arch", internal.DefaultArch)
	v.SetDefault("loader.workers", runtime.NumCPU())
	v.SetDefault("log.level", internal.DefaultLogLevel)

	// e.g. data.padIdx becomes SEQPAD_DATA_PADIDX
	v.SetEnvPrefix(strings.ToUpper(internal.DefaultAppName))
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unable to decode into struct: %w", err)
	}
	if cfg.Loader.Workers <= 0 {
		cfg.Loader.Workers = runtime.NumCPU()
	}
	return &cfg, nil
}

package internal

import (
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
)

var (
	// DefaultAppName is used for config search paths and env prefixes
	DefaultAppName    = "seqpad"
	DefaultConfigPath = filepath.Join(getHomeDir(), ".config", DefaultAppName)
	DefaultConfigFile = filepath.Join(DefaultConfigPath, "config.yaml")

	// Default data settings
	DefaultPadIdx      = 0
	DefaultHasFeatures = false
	DefaultHasTarget   = true
	DefaultArch        = "attentive_lstm"
	DefaultLogLevel    = "info"
)

func getHomeDir() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		cwd, cwdErr := os.Getwd()
		if cwdErr != nil {
			log.Printf("Unable to get home or working directory, using /tmp: %v", err)
			return "/tmp"
		}
		log.Printf("Unable to get home directory, using current working directory: %v", err)
		return cwd
	}
	return homeDir
}

// GetLogger returns a properly configured zerolog logger instance.
// An empty or unknown level falls back to info.
func GetLogger(level ...string) zerolog.Logger {
	lvl := zerolog.InfoLevel
	if len(level) > 0 {
		if parsed, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(level[0]))); err == nil && parsed != zerolog.NoLevel {
			lvl = parsed
		}
	}
	return zerolog.New(os.Stderr).Level(lvl).With().Timestamp().Logger()
}

package config

import (
	"fmt"
	"path/filepath"
	"strings"

	internal "github.com/ZanzyTHEbar/fskit/fskit"

	"github.com/spf13/viper"
)

// Config stores all configuration of the library.
// The values are read by viper from a config file or environment variables.
type Config struct {
	Fskit FskitConfig `mapstructure:"fskit"`
}

// FskitConfig stores file operation tunables.
type FskitConfig struct {
	CacheDir          string `mapstructure:"cacheDir"`
	TrashDir          string `mapstructure:"trashDir"`
	CopyBufferSize    int    `mapstructure:"copyBufferSize"`
	MaxSuffixAttempts int    `mapstructure:"maxSuffixAttempts"`
	WorkerCount       int    `mapstructure:"workerCount"`
}

var AppConfig Config

// LoadConfig reads configuration from file or environment variables.
func LoadConfig(configPath string) (*Config, error) {
	if configPath != "" {
		viper.SetConfigFile(configPath)
	} else {
		viper.AddConfigPath(".")
		viper.AddConfigPath("..")
		viper.AddConfigPath(filepath.Join("etc", internal.DefaultAppName))
		viper.AddConfigPath(internal.DefaultConfigPath)
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
	}

	// Set default values
	viper.SetDefault("fskit.cacheDir", internal.DefaultCacheDir)
	viper.SetDefault("fskit.trashDir", internal.DefaultTrashDir)
	viper.SetDefault("fskit.copyBufferSize", internal.DefaultCopyBufferSize)
	viper.SetDefault("fskit.maxSuffixAttempts", internal.DefaultMaxSuffixAttempts)
	viper.SetDefault("fskit.workerCount", internal.DefaultWorkerCount)

	viper.AutomaticEnv()                                   // Read in environment variables that match
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_")) // e.g. fskit.copyBufferSize becomes FSKIT_COPYBUFFERSIZE

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		// Config file not found; defaults will be used.
	}

	err := viper.Unmarshal(&AppConfig)
	if err != nil {
		return nil, fmt.Errorf("unable to decode into struct: %w", err)
	}

	return &AppConfig, nil
}

package config

import (
	"os"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"

	"durak/internal/util"
)

// Config provides configuration for the durak command-line tool
type Config struct {
	loaded bool

	// Seed makes shuffles deterministic when > 0; 0 uses a crypto source
	Seed     int64  `yaml:"seed" envconfig:"seed"`
	LogLevel string `yaml:"logLevel" envconfig:"log_level"`
	Players  struct {
		Attacker string `yaml:"attacker"`
		Defender string `yaml:"defender"`
	} `yaml:"players"`
}

var config Config

// Instance returns a singleton instance
// If the config hasn't been loaded, it will be loaded
func Instance() Config {
	if !config.loaded {
		if err := Load(); err != nil {
			panic(err)
		}
	}

	return config
}

// Load will load the configuration
// A missing config file is not an error; the environment alone is enough.
func Load() error {
	config = Config{
		LogLevel: "info",
	}

	configFile := util.Getenv("DURAK_CONFIG_FILE", "config.yaml")
	file, err := os.Open(configFile)
	if err == nil {
		defer file.Close()
		if err := yaml.NewDecoder(file).Decode(&config); err != nil {
			return err
		}
	} else if !os.IsNotExist(err) {
		return err
	}

	if err := envconfig.Process("durak", &config); err != nil {
		return err
	}

	config.loaded = true
	return nil
}

package main

import (
	"fmt"
	"io/ioutil"
	"time"

	"gopkg.in/yaml.v3"
)

type config struct {
	URL      string        `yaml:"url"`
	Token    string        `yaml:"token"`
	ClientID string        `yaml:"client_id"`
	Timeout  time.Duration `yaml:"timeout"`
	Verbose  bool          `yaml:"verbose"`
}

func defaultConfig() config {
	return config{
		URL:     "http://127.0.0.1:32400",
		Timeout: 30 * time.Second,
	}
}

// loadConfig reads path over the defaults. An empty path leaves them as is.
func loadConfig(path string) (config, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}

	b, err := ioutil.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return cfg, nil
}

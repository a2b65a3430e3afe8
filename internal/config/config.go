package config

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	defaultPort    = 3000
	defaultBalance = 1000
)

type Config struct {
	Port    int               `yaml:"port"`
	Balance float64           `yaml:"balance"`
	Data    map[string]string `yaml:"data"`
}

func Read(r io.Reader) (*Config, error) {
	cfg := Config{
		Port:    defaultPort,
		Balance: defaultBalance,
	}

	d := yaml.NewDecoder(r)
	if err := d.Decode(&cfg); err != nil {
		return nil, fmt.Errorf("unable to parse config file: %w", err)
	}

	if len(cfg.Data) == 0 {
		return nil, errors.New("config must map at least one symbol to a data file")
	}

	return &cfg, nil
}

func ReadFromFile(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("unable to read config file: %w", err)
	}
	defer f.Close()

	return Read(f)
}

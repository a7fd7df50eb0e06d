// Package config loads and validates the runtime configuration: the station
// fleet to simulate, the simulation parameters and the observability sinks.
package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/enerva/fuelcore/core/sim"
	"github.com/enerva/fuelcore/infra/metrics"
	"github.com/enerva/fuelcore/infra/mqtt"
)

type Config struct {
	Stations []StationConfig `json:"stations"`
	Sim      sim.Config      `json:"sim"`
	Metrics  metrics.Config  `json:"metrics"`
	MQTT     mqtt.Config     `json:"mqtt"`
	Logging  LoggingConfig   `json:"logging"`
}

func Load(path string) (*Config, error) {
	k := koanf.New(".")
	ext := strings.ToLower(filepath.Ext(path))
	var parser koanf.Parser
	switch ext {
	case ".yaml", ".yml":
		parser = yaml.Parser()
	case ".json":
		parser = json.Parser()
	default:
		return nil, fmt.Errorf("unsupported config format: %s", ext)
	}
	if err := k.Load(file.Provider(path), parser); err != nil {
		return nil, err
	}
	// Optional environment overrides
	if err := k.Load(env.Provider("FC_", "__", func(s string) string {
		s = strings.TrimPrefix(strings.ToLower(s), "fc_")
		return strings.ReplaceAll(s, "__", ".")
	}), nil); err != nil {
		return nil, err
	}
	var cfg Config
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "json"}); err != nil {
		return nil, err
	}
	cfg.Sim.SetDefaults()
	cfg.Metrics.SetDefaults()
	cfg.MQTT.SetDefaults()
	cfg.Logging.SetDefaults()
	if err := cfg.Sim.Validate(); err != nil {
		return nil, err
	}
	if err := cfg.MQTT.Validate(); err != nil {
		return nil, err
	}
	if err := cfg.Logging.Validate(); err != nil {
		return nil, err
	}
	if len(cfg.Stations) == 0 {
		return nil, fmt.Errorf("at least one station is required")
	}
	for i := range cfg.Stations {
		cfg.Stations[i].SetDefaults()
		if err := cfg.Stations[i].Validate(); err != nil {
			return nil, fmt.Errorf("station %d: %w", i, err)
		}
	}
	return &cfg, nil
}

// Package config loads the simulator configuration from YAML or JSON files
// with environment overrides.
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

	"github.com/zachAtSiftStack/tlmSim/infra/telemetry"
)

// Config is the root configuration.
type Config struct {
	Sim     SimConfig              `json:"sim"`
	MQTT    telemetry.MQTTConfig   `json:"mqtt"`
	Influx  telemetry.InfluxConfig `json:"influx"`
	Metrics MetricsConfig          `json:"metrics"`
	Script  []ScriptStep           `json:"script"`
}

// Load reads the file at path, applies TLM_-prefixed environment overrides
// (TLM_SIM__SEED=7 sets sim.seed), fills defaults and validates.
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
	if err := k.Load(env.Provider("TLM_", ".", func(s string) string {
		s = strings.TrimPrefix(strings.ToLower(s), "tlm_")
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
	if err := cfg.Sim.Validate(); err != nil {
		return nil, err
	}
	if err := validateScript(cfg.Script); err != nil {
		return nil, err
	}
	return &cfg, nil
}

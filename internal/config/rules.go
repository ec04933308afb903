package config

import (
	"fmt"

	"github.com/spf13/viper"

	"github.com/arenaduna/booking-backend/internal/schedule"
)

// LoadClassifierRules reads the classification rule list from a YAML file:
//
//	rules:
//	  - pattern: "futev[oô]lei"
//	    court: 1
//
// An empty path returns the built-in default rules. A configured file replaces
// the defaults wholesale.
func LoadClassifierRules(path string) ([]schedule.RuleConfig, error) {
	if path == "" {
		return schedule.DefaultRules(), nil
	}

	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read classifier rules file: %w", err)
	}

	var out struct {
		Rules []schedule.RuleConfig `mapstructure:"rules"`
	}
	if err := v.Unmarshal(&out); err != nil {
		return nil, fmt.Errorf("failed to parse classifier rules file: %w", err)
	}

	return out.Rules, nil
}

// Package config loads tool configuration from an optional YAML file and
// RDSOPS_* environment variables.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds the runtime settings shared by all subcommands.
type Config struct {
	// Region overrides the AWS SDK region resolution when set.
	Region string `mapstructure:"region"`

	// SecretNameTemplate is the Secrets Manager name pattern for database
	// credentials. It must contain a single %s for the database identifier.
	SecretNameTemplate string `mapstructure:"secret_name_template"`

	// PollInterval is how often switchover progress is re-checked.
	PollInterval time.Duration `mapstructure:"poll_interval"`

	// SwitchoverTimeout bounds both the switchover API call and the wait loop.
	SwitchoverTimeout time.Duration `mapstructure:"switchover_timeout"`

	// PromptTimeout is how long interactive confirmations wait before
	// defaulting to "no".
	PromptTimeout time.Duration `mapstructure:"prompt_timeout"`

	// ConnectTimeout applies to direct PostgreSQL connections.
	ConnectTimeout time.Duration `mapstructure:"connect_timeout"`

	LogLevel string `mapstructure:"log_level"`
}

// Load reads configuration from the given file, or from the default search
// paths when configFile is empty. A missing config file is not an error,
// defaults and environment variables still apply.
func Load(configFile string) (*Config, error) {
	v := viper.New()

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("rdsops")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.rdsops")
		v.AddConfigPath("/etc/rdsops")
	}

	v.SetEnvPrefix("RDSOPS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("region", "")
	v.SetDefault("secret_name_template", "athena/rds/%s/root")
	v.SetDefault("poll_interval", "30s")
	v.SetDefault("switchover_timeout", "300s")
	v.SetDefault("prompt_timeout", "30s")
	v.SetDefault("connect_timeout", "30s")
	v.SetDefault("log_level", "info")
}

package config

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// Environment variables are read as ARBOR_<KEY>, with dashes replaced by
// underscores.
const EnvPrefix = "ARBOR"

// Settings are the runner options that can come from a configuration file or
// the environment. Command line flags take precedence over both.
type Settings struct {
	Verbosity   string `mapstructure:"verbosity"`
	AzureDevops bool   `mapstructure:"azure-devops"`
	Report      string `mapstructure:"report"`
	Metrics     string `mapstructure:"metrics"`
}

func defaults() map[string]any {
	return map[string]any{
		"verbosity":    "info",
		"azure-devops": false,
		"report":       "",
		"metrics":      "",
	}
}

// Load reads the YAML configuration file at path, if any, and the ARBOR_*
// environment. Unknown keys in the file are an error.
func Load(path string) (Settings, error) {
	v := viper.New()
	for key, value := range defaults() {
		// Only keys viper knows about are picked up from the environment.
		v.SetDefault(key, value)
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigType("yaml")
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Settings{}, fmt.Errorf("failed to read configuration file '%s': %w", path, err)
		}
	}

	var settings Settings
	if err := v.UnmarshalExact(&settings); err != nil {
		return Settings{}, fmt.Errorf("could not unmarshal configuration: %w", err)
	}

	if _, err := settings.LogLevel(); err != nil {
		return Settings{}, err
	}

	return settings, nil
}

func (s Settings) LogLevel() (logrus.Level, error) {
	level, err := logrus.ParseLevel(s.Verbosity)
	if err != nil {
		return logrus.InfoLevel, fmt.Errorf("invalid verbosity '%s': %w", s.Verbosity, err)
	}

	return level, nil
}

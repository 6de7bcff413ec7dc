// Package configpkg provides parsing functionality for environment variables.
package configpkg

import (
	"time"

	"github.com/spf13/viper"
)

// Config stores all configuration of the application.
//
// The values are read by viper from a config file or environment variables.
type Config struct {
	DiscordToken    string        `mapstructure:"DISCORD_TOKEN"`
	TestingGuildID  string        `mapstructure:"DISCORD_TESTING_GUILD_ID"`
	DBDriver        string        `mapstructure:"DB_DRIVER"`
	DBSource        string        `mapstructure:"DB_SOURCE"`
	StatusAddress   string        `mapstructure:"STATUS_ADDRESS"`
	ConfirmDuration time.Duration `mapstructure:"CONFIRM_DURATION"`
	Environment     string        `mapstructure:"GO_ENV"`
}

// Load reads configuration from file or environment variables.
func Load(path string) (Config, error) {
	var c Config

	viper.AddConfigPath(path)
	viper.SetConfigName("app")
	viper.SetConfigType("env")

	viper.AutomaticEnv()

	err := viper.ReadInConfig()
	if err != nil {
		return c, err
	}

	err = viper.Unmarshal(&c)
	if err != nil {
		return c, err
	}

	if c.ConfirmDuration == 0 {
		c.ConfirmDuration = 2 * time.Minute
	}

	return c, nil
}

package configs

import (
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	Server struct {
		Port string   `mapstructure:"port"`
		Mode string   `mapstructure:"mode"` // debug or release
		CORS []string `mapstructure:"cors_origins"`
	} `mapstructure:"server"`

	Database struct {
		Driver   string `mapstructure:"driver"`
		Host     string `mapstructure:"host"`
		Port     string `mapstructure:"port"`
		User     string `mapstructure:"user"`
		Password string `mapstructure:"password"`
		DBName   string `mapstructure:"dbname"`
	} `mapstructure:"database"`

	Auth struct {
		Secret    string `mapstructure:"secret"`
		Issuer    string `mapstructure:"issuer"`
		ExpiresIn int    `mapstructure:"expires_in"` // hours, used when issuing dev tokens
	} `mapstructure:"auth"`
}

// Load reads config.yaml and applies STUDYCIRCLE_* environment overrides.
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./configs")
	viper.AddConfigPath(".")

	viper.SetEnvPrefix("studycircle")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		return nil, err
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

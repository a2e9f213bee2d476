package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

type ConfigScheme struct {
	BotToken     string `mapstructure:"bottoken"`
	BotUsername  string `mapstructure:"botusername"`
	DatabaseURL  string `mapstructure:"databaseurl"`
	AdminID      int64  `mapstructure:"adminid"`
	Language     string `mapstructure:"language"`
	QueryTimeout int    `mapstructure:"querytimeout"`
	PollTimeout  int    `mapstructure:"polltimeout"`
	LocalesPath  string `mapstructure:"localespath"`
}

func LoadConfig(configPath string) (*ConfigScheme, error) {
	c := &ConfigScheme{}
	v := viper.New()

	v.SetConfigType(strings.ReplaceAll(filepath.Ext(configPath), ".", ""))
	v.SetConfigName(strings.ReplaceAll(filepath.Base(configPath), filepath.Ext(configPath), ""))
	v.AddConfigPath(filepath.Dir(configPath))

	v.SetDefault("adminid", int64(5959954413))
	v.SetDefault("language", "fa")
	v.SetDefault("querytimeout", 10)
	v.SetDefault("polltimeout", 30)
	v.SetDefault("localespath", "locales")

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("Error reading config: %w", err)
	}
	if err := v.Unmarshal(c); err != nil {
		return nil, fmt.Errorf("Error unmarshalling config: %w", err)
	}

	return c, nil
}

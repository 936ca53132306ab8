package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all plugin configuration.
type Config struct {
	Memos  MemosConfig
	Logger LoggerConfig
	Proxy  ProxyConfig
}

type MemosConfig struct {
	Host  string // base URL of the note service; empty means unconfigured
	Token string // bearer access token; empty means unconfigured
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type ProxyConfig struct {
	CacheTTL        time.Duration
	CacheSize       int
	FetchRatePerMin int
}

// Load loads configuration using Viper.
// Config file name: config.yaml — searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	cfg.Memos.Host = viper.GetString("memos.host")
	cfg.Memos.Token = viper.GetString("memos.token")
	if host := viper.GetString("memos_host"); host != "" {
		cfg.Memos.Host = host
	}
	if token := viper.GetString("memos_token"); token != "" {
		cfg.Memos.Token = token
	}

	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	cfg.Proxy.CacheTTL = viper.GetDuration("proxy.cache_ttl")
	cfg.Proxy.CacheSize = viper.GetInt("proxy.cache_size")
	cfg.Proxy.FetchRatePerMin = viper.GetInt("proxy.fetch_rate_per_min")

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)
	viper.SetDefault("proxy.cache_ttl", "1h")
	viper.SetDefault("proxy.cache_size", 64)
	viper.SetDefault("proxy.fetch_rate_per_min", 120)
}

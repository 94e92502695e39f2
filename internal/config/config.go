// Package config loads CLI configuration by merging defaults, an optional
// config file, NLPRULE_-prefixed environment variables and command-line
// flags, in increasing order of precedence.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

type Config struct {
	Language string       `mapstructure:"language"`
	LogLevel string       `mapstructure:"log_level"`
	Paths    PathsConfig  `mapstructure:"paths"`
	Text     TextConfig   `mapstructure:"text"`
	Server   ServerConfig `mapstructure:"server"`
}

type PathsConfig struct {
	// TokenizerPath and RulesPath point at local artifacts. When empty, the
	// artifacts are resolved by language code through the cache.
	TokenizerPath string `mapstructure:"tokenizer_path"`
	RulesPath     string `mapstructure:"rules_path"`
	// CacheDir overrides the artifact cache root.
	CacheDir string `mapstructure:"cache_dir"`
}

type TextConfig struct {
	// SplitChars configures the built-in sentence splitter; each entry must
	// be one character.
	SplitChars []string `mapstructure:"split_chars"`
}

type ServerConfig struct {
	ListenAddr string `mapstructure:"listen_addr"`
	// RedisAddr enables the redis-backed personal dictionary when set.
	RedisAddr string `mapstructure:"redis_addr"`
}

type LoadOptions struct {
	Cmd        flagBinder
	ConfigFile string
	Defaults   Config
}

type flagBinder interface {
	Flags() *pflag.FlagSet
}

func DefaultConfig() Config {
	return Config{
		Language: "en",
		LogLevel: "info",
		Paths:    PathsConfig{},
		Text: TextConfig{
			SplitChars: []string{".", "!", "?"},
		},
		Server: ServerConfig{
			ListenAddr: ":8080",
			RedisAddr:  "",
		},
	}
}

func RegisterFlags(fs *pflag.FlagSet, defaults Config) {
	fs.String("language", defaults.Language, "Language code selecting the artifact set")
	fs.String("log-level", defaults.LogLevel, "Log level (debug|info|warn|error)")
	fs.String("paths-tokenizer-path", defaults.Paths.TokenizerPath, "Path to a local tokenizer artifact")
	fs.String("paths-rules-path", defaults.Paths.RulesPath, "Path to a local rules artifact")
	fs.String("paths-cache-dir", defaults.Paths.CacheDir, "Artifact cache directory override")
	fs.StringSlice("text-split-chars", defaults.Text.SplitChars, "Sentence split characters")
	fs.String("server-listen-addr", defaults.Server.ListenAddr, "HTTP listen address")
	fs.String("server-redis-addr", defaults.Server.RedisAddr, "Redis address for the personal dictionary (empty disables)")
}

func Load(opts LoadOptions) (Config, error) {
	v := viper.New()

	setDefaults(v, opts.Defaults)
	if opts.Cmd != nil {
		if err := v.BindPFlags(opts.Cmd.Flags()); err != nil {
			return Config{}, fmt.Errorf("bind flags: %w", err)
		}
	}
	registerAliases(v)

	v.SetEnvPrefix("NLPRULE")
	replacer := strings.NewReplacer("-", "_", ".", "_", "__", "_")
	v.SetEnvKeyReplacer(replacer)
	v.AutomaticEnv()

	if opts.ConfigFile != "" {
		v.SetConfigFile(opts.ConfigFile)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
	} else {
		v.SetConfigName("nlprule")
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
				return Config{}, fmt.Errorf("read config file: %w", err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper, c Config) {
	v.SetDefault("language", c.Language)
	v.SetDefault("log_level", c.LogLevel)
	v.SetDefault("paths.tokenizer_path", c.Paths.TokenizerPath)
	v.SetDefault("paths.rules_path", c.Paths.RulesPath)
	v.SetDefault("paths.cache_dir", c.Paths.CacheDir)
	v.SetDefault("text.split_chars", c.Text.SplitChars)
	v.SetDefault("server.listen_addr", c.Server.ListenAddr)
	v.SetDefault("server.redis_addr", c.Server.RedisAddr)
}

func registerAliases(v *viper.Viper) {
	v.RegisterAlias("log_level", "log-level")
	v.RegisterAlias("paths.tokenizer_path", "paths-tokenizer-path")
	v.RegisterAlias("paths.rules_path", "paths-rules-path")
	v.RegisterAlias("paths.cache_dir", "paths-cache-dir")
	v.RegisterAlias("text.split_chars", "text-split-chars")
	v.RegisterAlias("server.listen_addr", "server-listen-addr")
	v.RegisterAlias("server.redis_addr", "server-redis-addr")
}

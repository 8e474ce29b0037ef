package config

import (
	"errors"
	"fmt"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap/zapcore"
)

// Config holds ambient settings. Nothing here changes how charts are drawn.
type Config struct {
	Log LogConfig `mapstructure:"log"`
}

type LogConfig struct {
	File       string `mapstructure:"file"`
	Level      string `mapstructure:"level"`
	MaxSizeMB  int    `mapstructure:"max_size_mb"`
	MaxBackups int    `mapstructure:"max_backups"`
}

// RegisterFlags adds the configuration flags to fs.
func RegisterFlags(fs *pflag.FlagSet) {
	fs.String("config", "", "Path to a YAML config file (default: ./trendchart.yaml if present)")
	fs.String("log-file", "", "Write logs to this file (env: TRENDCHART_LOG_FILE)")
	fs.String("log-level", "info", "Log level: debug, info, warn, error (env: TRENDCHART_LOG_LEVEL)")
	fs.Int("log-max-size", 50, "Rotate the log file after this many megabytes (env: TRENDCHART_LOG_MAX_SIZE_MB)")
	fs.Int("log-max-backups", 3, "Number of rotated log files to keep (env: TRENDCHART_LOG_MAX_BACKUPS)")
}

// Load resolves the configuration in this order:
// 1. defaults
// 2. trendchart.yaml or the file given by --config
// 3. .env file
// 4. environment
// 5. flags set on the command line
func Load(fs *pflag.FlagSet) (*Config, error) {
	godotenv.Load(".env")

	v := viper.New()
	setDefaults(v)

	if err := readConfigFile(v, fs); err != nil {
		return nil, err
	}

	setupEnvAliases(v)

	if fs != nil {
		if err := bindFlags(v, fs); err != nil {
			return nil, err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}

	if err := validateConfig(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func readConfigFile(v *viper.Viper, fs *pflag.FlagSet) error {
	if fs != nil {
		if path, _ := fs.GetString("config"); path != "" {
			v.SetConfigFile(path)
			if err := v.ReadInConfig(); err != nil {
				return fmt.Errorf("failed to read config file %s: %w", path, err)
			}
			return nil
		}
	}

	v.SetConfigName("trendchart")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("failed to read config file: %w", err)
		}
	}
	return nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("log.file", "")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.max_size_mb", 50)
	v.SetDefault("log.max_backups", 3)
}

func setupEnvAliases(v *viper.Viper) {
	v.BindEnv("log.file", "TRENDCHART_LOG_FILE")
	v.BindEnv("log.level", "TRENDCHART_LOG_LEVEL")
	v.BindEnv("log.max_size_mb", "TRENDCHART_LOG_MAX_SIZE_MB")
	v.BindEnv("log.max_backups", "TRENDCHART_LOG_MAX_BACKUPS")
}

func bindFlags(v *viper.Viper, fs *pflag.FlagSet) error {
	bindings := map[string]string{
		"log.file":        "log-file",
		"log.level":       "log-level",
		"log.max_size_mb": "log-max-size",
		"log.max_backups": "log-max-backups",
	}
	for key, name := range bindings {
		flag := fs.Lookup(name)
		if flag == nil {
			continue
		}
		if err := v.BindPFlag(key, flag); err != nil {
			return fmt.Errorf("failed to bind flag %s: %w", name, err)
		}
	}
	return nil
}

func validateConfig(cfg *Config) error {
	if _, err := zapcore.ParseLevel(cfg.Log.Level); err != nil {
		return fmt.Errorf("invalid log.level %q: %w", cfg.Log.Level, err)
	}
	if cfg.Log.MaxSizeMB <= 0 {
		return fmt.Errorf("log.max_size_mb must be positive, got %d", cfg.Log.MaxSizeMB)
	}
	if cfg.Log.MaxBackups < 0 {
		return fmt.Errorf("log.max_backups must not be negative, got %d", cfg.Log.MaxBackups)
	}
	return nil
}

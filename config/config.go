package config

import (
	"os"
	"path/filepath"

	"github.com/philipp01105/alog/logger"
	"github.com/philipp01105/alog/sink"
	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

// Config mirrors the YAML layout of an alog.yaml file.
type Config struct {
	Name        string   `mapstructure:"name"`
	File        string   `mapstructure:"file"`
	CallerField bool     `mapstructure:"caller_field"`
	FieldWidth  int      `mapstructure:"field_width"`
	Tag         string   `mapstructure:"tag"`
	TimeFormat  string   `mapstructure:"time_format"`
	ColorLevel  bool     `mapstructure:"color_level"`
	ColorLine   bool     `mapstructure:"color_line"`
	Rotation    Rotation `mapstructure:"rotation"`
}

// Rotation mirrors the rotation block of the config file.
type Rotation struct {
	Enabled    bool `mapstructure:"enabled"`
	MaxSize    int  `mapstructure:"max_size"`
	MaxBackups int  `mapstructure:"max_backups"`
	MaxAge     int  `mapstructure:"max_age"`
	Compress   bool `mapstructure:"compress"`
}

// Default configuration values
var defaultConfig = Config{
	Name:        "alog",
	CallerField: true,
	FieldWidth:  20,
	ColorLevel:  true,
	Rotation: Rotation{
		MaxSize:    10,
		MaxBackups: 5,
		MaxAge:     30,
		Compress:   true,
	},
}

// Default returns the built-in configuration.
func Default() Config {
	return defaultConfig
}

// setDefaults seeds every key so environment overrides also work for
// keys absent from the file.
func setDefaults(v *viper.Viper) {
	v.SetDefault("name", defaultConfig.Name)
	v.SetDefault("file", defaultConfig.File)
	v.SetDefault("caller_field", defaultConfig.CallerField)
	v.SetDefault("field_width", defaultConfig.FieldWidth)
	v.SetDefault("tag", defaultConfig.Tag)
	v.SetDefault("time_format", defaultConfig.TimeFormat)
	v.SetDefault("color_level", defaultConfig.ColorLevel)
	v.SetDefault("color_line", defaultConfig.ColorLine)
	v.SetDefault("rotation.enabled", defaultConfig.Rotation.Enabled)
	v.SetDefault("rotation.max_size", defaultConfig.Rotation.MaxSize)
	v.SetDefault("rotation.max_backups", defaultConfig.Rotation.MaxBackups)
	v.SetDefault("rotation.max_age", defaultConfig.Rotation.MaxAge)
	v.SetDefault("rotation.compress", defaultConfig.Rotation.Compress)
}

// Load reads alog.yaml from the search paths (current directory, then
// ~/.config/alog), falling back to defaults when no file exists.
func Load() (Config, error) {
	v := viper.New()
	v.SetConfigName("alog")
	v.SetConfigType("yaml")

	v.AddConfigPath(".")
	if home, err := os.UserHomeDir(); err == nil {
		v.AddConfigPath(filepath.Join(home, ".config", "alog"))
	}

	return load(v, true)
}

// LoadFile reads an explicit configuration file, which must exist.
func LoadFile(path string) (Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	return load(v, false)
}

func load(v *viper.Viper, optional bool) (Config, error) {
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		// A file missing from the search paths falls back to defaults.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok || !optional {
			return Config{}, errors.Wrap(err, "read config")
		}
	}

	// Environment variables override file values: ALOG_TAG, ALOG_FILE...
	v.SetEnvPrefix("ALOG")
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, errors.Wrap(err, "unmarshal config")
	}
	return cfg, nil
}

// Build constructs a logger from the configuration.
func (c Config) Build() (*logger.Logger, error) {
	opts := []logger.Option{
		logger.WithCaller(c.CallerField),
		logger.WithFieldWidth(c.FieldWidth),
		logger.WithTag(c.Tag),
		logger.WithTimeFormat(c.TimeFormat),
		logger.WithColoring(c.ColorLevel, c.ColorLine),
	}
	if c.File != "" {
		if c.Rotation.Enabled {
			opts = append(opts, logger.WithRotation(sink.Rotation{
				MaxSize:    c.Rotation.MaxSize,
				MaxBackups: c.Rotation.MaxBackups,
				MaxAge:     c.Rotation.MaxAge,
				Compress:   c.Rotation.Compress,
			}))
		}
		opts = append(opts, logger.WithFile(c.File))
	}
	return logger.New(c.Name, opts...)
}

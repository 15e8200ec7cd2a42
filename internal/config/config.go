package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Server    ServerConfig
	Recommend RecommendConfig
	Student   StudentConfig
	Log       LogConfig
}

// ServerConfig locates the recommender service.
type ServerConfig struct {
	URL     string
	Timeout int // seconds per request
}

// RecommendConfig holds recommendation fetch settings.
type RecommendConfig struct {
	TopN int `mapstructure:"top_n"`
}

// StudentConfig optionally pins a known student ID. When set, stored
// recommendations are fetched for it at startup.
type StudentConfig struct {
	ID string
}

// LogConfig holds diagnostics log settings. The TUI owns the terminal, so
// logs go to a file.
type LogConfig struct {
	File  string
	Level string
}

// Load reads configuration from file and env. Env var overrides use prefix
// SCHOLARMATCH_.
func Load() (Config, error) {
	v := viper.New()

	// default values
	v.SetDefault("server.url", "http://127.0.0.1:5000")
	v.SetDefault("server.timeout", 8)
	v.SetDefault("recommend.top_n", 10)
	v.SetDefault("student.id", "")
	v.SetDefault("log.file", defaultLogPath())
	v.SetDefault("log.level", "info")

	v.SetConfigType("toml")

	cfgPath := os.Getenv("SCHOLARMATCH_CONFIG")
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(configDir())
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("SCHOLARMATCH")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// read config file if present
	_ = v.ReadInConfig()

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	c.Recommend.TopN = clampTopN(c.Recommend.TopN)
	return c, nil
}

// Save writes the provided config to disk, creating the config directory if
// needed.
func Save(cfg Config) error {
	path := os.Getenv("SCHOLARMATCH_CONFIG")
	if path == "" {
		path = filepath.Join(configDir(), "config.toml")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir config dir: %w", err)
	}

	v := viper.New()
	v.SetConfigType("toml")
	v.Set("server.url", cfg.Server.URL)
	v.Set("server.timeout", cfg.Server.Timeout)
	v.Set("recommend.top_n", cfg.Recommend.TopN)
	v.Set("student.id", cfg.Student.ID)
	v.Set("log.file", cfg.Log.File)
	v.Set("log.level", cfg.Log.Level)

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// clampTopN keeps the requested recommendation count within the range the
// service accepts (1..50).
func clampTopN(n int) int {
	if n < 1 {
		return 1
	}
	if n > 50 {
		return 50
	}
	return n
}

// configDir returns the scholarmatch config directory, honoring
// XDG_CONFIG_HOME and falling back to ~/.config.
func configDir() string {
	if dir, err := os.UserConfigDir(); err == nil {
		return filepath.Join(dir, "scholarmatch")
	}
	return filepath.Join(os.Getenv("HOME"), ".config", "scholarmatch")
}

// defaultLogPath places the diagnostics log under XDG_STATE_HOME, falling
// back to ~/.local/state.
func defaultLogPath() string {
	dir := os.Getenv("XDG_STATE_HOME")
	if dir == "" {
		dir = filepath.Join(os.Getenv("HOME"), ".local", "state")
	}
	return filepath.Join(dir, "scholarmatch", "scholarmatch.log")
}

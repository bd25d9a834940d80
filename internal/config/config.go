package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

var validate = validator.New()

// Config holds application configuration.
type Config struct {
	Database DatabaseConfig `mapstructure:"database"`
	Security SecurityConfig `mapstructure:"security"`
	Audit    AuditConfig    `mapstructure:"audit"`
	UI       UIConfig       `mapstructure:"ui"`
}

// DatabaseConfig holds sqlite settings.
type DatabaseConfig struct {
	Path string `mapstructure:"path" validate:"required"`
}

// SecurityConfig holds password hashing settings.
type SecurityConfig struct {
	BcryptCost int `mapstructure:"bcrypt_cost" validate:"min=4,max=31"`
}

// AuditConfig holds the audit log destination. An empty path disables it.
type AuditConfig struct {
	Path string `mapstructure:"path"`
}

// UIConfig holds presentation settings.
type UIConfig struct {
	Title       string `mapstructure:"title" validate:"required"`
	ButtonLabel string `mapstructure:"button_label" validate:"required"`
	Suggest     bool   `mapstructure:"suggest"`
}

// Load reads configuration from file and env. Env var overrides use prefix SIGNUP_.
func Load() (Config, error) {
	v := viper.New()

	dataDir := filepath.Join(os.Getenv("HOME"), ".local", "share", "signup")
	v.SetDefault("database.path", filepath.Join(dataDir, "signup.db"))
	v.SetDefault("security.bcrypt_cost", 10)
	v.SetDefault("audit.path", filepath.Join(dataDir, "audit.log"))
	v.SetDefault("ui.title", "Create your account")
	v.SetDefault("ui.button_label", "Sign Up")
	v.SetDefault("ui.suggest", true)

	v.SetConfigType("toml")

	if cfgPath := os.Getenv("SIGNUP_CONFIG"); cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		dir, err := configDir()
		if err != nil {
			return Config{}, err
		}
		v.AddConfigPath(dir)
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("SIGNUP")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !os.IsNotExist(err) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := validate.Struct(c); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}
	return c, nil
}

// Path returns where Save writes the config file.
func Path() (string, error) {
	if p := os.Getenv("SIGNUP_CONFIG"); p != "" {
		return p, nil
	}
	dir, err := configDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// Save writes cfg to Path, creating the config directory if needed.
func Save(cfg Config) (string, error) {
	path, err := Path()
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", fmt.Errorf("mkdir config dir: %w", err)
	}

	v := viper.New()
	v.SetConfigType("toml")
	v.Set("database.path", cfg.Database.Path)
	v.Set("security.bcrypt_cost", cfg.Security.BcryptCost)
	v.Set("audit.path", cfg.Audit.Path)
	v.Set("ui.title", cfg.UI.Title)
	v.Set("ui.button_label", cfg.UI.ButtonLabel)
	v.Set("ui.suggest", cfg.UI.Suggest)

	if err := v.WriteConfigAs(path); err != nil {
		return "", fmt.Errorf("write config: %w", err)
	}
	return path, nil
}

func configDir() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("config dir: %w", err)
	}
	return filepath.Join(dir, "signup"), nil
}

package config

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/viper"
)

// Config holds the configuration for the Codetrail server and its dependencies.
type Config struct {
	// Listen is the address the Codetrail server will listen on.
	Listen string `yaml:"listen" mapstructure:"listen"`
	// ServerURL is the base URL of the Codetrail server.
	ServerURL string `yaml:"server_url" mapstructure:"server_url"`
	// SessionKey is the key used to encrypt session data.
	SessionKey string `yaml:"session_key" mapstructure:"session_key"`
	// SessionMaxAge is the maximum age of a session in seconds.
	SessionMaxAge int `yaml:"session_max_age" mapstructure:"session_max_age"`
	// AllowedOrigins lists the origins allowed to call the API from a browser.
	AllowedOrigins []string `yaml:"allowed_origins" mapstructure:"allowed_origins"`
	// Auth holds the authentication configuration.
	Auth *AuthConfig `yaml:"auth" mapstructure:"auth"`
	// Database holds the database configuration.
	Database *DatabaseConfig `yaml:"database" mapstructure:"database"`
}

// AuthConfig holds the authentication configuration for the Codetrail server.
type AuthConfig struct {
	// OIDC holds the OpenID Connect configuration.
	OIDC *OIDCConfig `yaml:"oidc" mapstructure:"oidc"`
}

// OIDCConfig holds the OpenID Connect configuration for the Codetrail server.
type OIDCConfig struct {
	// Issuer is the OIDC issuer URL.
	Issuer string `yaml:"issuer" mapstructure:"issuer"`
	// ClientID is the OIDC client ID.
	ClientID string `yaml:"client_id" mapstructure:"client_id"`
	// ClientSecret is the OIDC client secret.
	ClientSecret string `yaml:"client_secret" mapstructure:"client_secret"`
	// RedirectURL is the redirect URL for the oidc flow.
	RedirectURL string `yaml:"redirect_url" mapstructure:"redirect_url"`
}

// DatabaseConfig holds the database configuration.
type DatabaseConfig struct {
	// Path is the directory the sqlite database file lives in.
	Path string `yaml:"path" mapstructure:"path"`
}

// Load reads the configuration from the given path, falling back to the
// default search locations and environment variables.
func Load(path string) (*Config, error) {
	v := viper.New()

	setDefaults(v)

	v.SetConfigType("yaml")
	v.SetEnvPrefix("CODETRAIL")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var configFileFound bool
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.codetrail")
		v.AddConfigPath("/etc/codetrail")
	}

	if err := v.ReadInConfig(); err != nil {
		// If no config file is found, use defaults
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	} else {
		configFileFound = true
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if configFileFound {
		log.Debug("Using config file", "file", v.ConfigFileUsed())
		log.Debug("Environment variables with CODETRAIL_ prefix will override config file values")
	}

	if err := validateConfig(&c); err != nil {
		return nil, err
	}

	return &c, nil
}

// setDefaults sets default values for the configuration.
func setDefaults(v *viper.Viper) {
	v.SetDefault("listen", "0.0.0.0:5000")
	v.SetDefault("server_url", "http://localhost:5000")
	v.SetDefault("session_max_age", 86400) // 24 hours
	v.SetDefault("database.path", "./data")
}

func validateConfig(c *Config) error {
	if c.SessionKey == "" {
		return fmt.Errorf("session_key is required")
	}
	if c.Auth == nil || c.Auth.OIDC == nil {
		return fmt.Errorf("auth.oidc configuration is required")
	}
	oidc := c.Auth.OIDC
	if oidc.Issuer == "" {
		return fmt.Errorf("auth.oidc.issuer is required")
	}
	if oidc.ClientID == "" {
		return fmt.Errorf("auth.oidc.client_id is required")
	}
	if oidc.ClientSecret == "" {
		return fmt.Errorf("auth.oidc.client_secret is required")
	}
	if oidc.RedirectURL == "" {
		oidc.RedirectURL = strings.TrimSuffix(c.ServerURL, "/") + "/auth/callback"
	}
	if c.Database == nil {
		c.Database = &DatabaseConfig{Path: "./data"}
	}
	return nil
}

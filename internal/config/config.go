package config

import (
	"errors"
	"fmt"
	"net/url"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
	"github.com/spf13/viper"
)

const (
	// DirName is the per-user directory holding config and logs
	DirName = ".vigit"
	// FileName is the per-user config file inside DirName
	FileName = "config.yaml"
	// LocalFileName is the optional per-directory override
	LocalFileName = ".vigit.yaml"
	// EnvPrefix prefixes every environment override
	EnvPrefix = "VIGIT"
)

// Config holds vigit's settings.
type Config struct {
	MainBranch     string `mapstructure:"main_branch"`
	Remote         string `mapstructure:"remote"`
	GitHubAPIURL   string `mapstructure:"github_api_url"`
	TokenBackend   string `mapstructure:"token_backend"`
	KeyringService string `mapstructure:"keyring_service"`
	ClearScreen    bool   `mapstructure:"clear_screen"`
}

// DefaultConfig returns a Config with default values
func DefaultConfig() *Config {
	return &Config{
		MainBranch:     "main",
		Remote:         "origin",
		GitHubAPIURL:   "https://api.github.com/",
		TokenBackend:   "keyring",
		KeyringService: "vigit",
		ClearScreen:    true,
	}
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if err := validateRefName("main_branch", c.MainBranch); err != nil {
		return err
	}
	if err := validateRefName("remote", c.Remote); err != nil {
		return err
	}
	u, err := url.Parse(c.GitHubAPIURL)
	if err != nil {
		return fmt.Errorf("invalid github_api_url: %w", err)
	}
	if (u.Scheme != "https" && u.Scheme != "http") || u.Host == "" {
		return fmt.Errorf("invalid github_api_url %q: expected an http(s) URL", c.GitHubAPIURL)
	}
	switch c.TokenBackend {
	case "keyring", "gitconfig":
	default:
		return fmt.Errorf("invalid token_backend %q: expected keyring or gitconfig", c.TokenBackend)
	}
	if c.TokenBackend == "keyring" && c.KeyringService == "" {
		return fmt.Errorf("keyring_service cannot be empty")
	}
	return nil
}

func validateRefName(field, value string) error {
	if value == "" {
		return fmt.Errorf("%s cannot be empty", field)
	}
	if strings.ContainsAny(value, " \t~^:?*[\\") || strings.Contains(value, "..") {
		return fmt.Errorf("invalid %s %q", field, value)
	}
	return nil
}

// Loader reads configuration from a filesystem.
type Loader struct {
	Fs      afero.Fs
	HomeDir string
	WorkDir string
}

// UserConfigPath returns the location of the per-user config file.
func (l *Loader) UserConfigPath() string {
	return filepath.Join(l.HomeDir, DirName, FileName)
}

func (l *Loader) newViper() *viper.Viper {
	v := viper.New()
	v.SetFs(l.Fs)
	v.SetConfigType("yaml")

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	defaults := DefaultConfig()
	v.SetDefault("main_branch", defaults.MainBranch)
	v.SetDefault("remote", defaults.Remote)
	v.SetDefault("github_api_url", defaults.GitHubAPIURL)
	v.SetDefault("token_backend", defaults.TokenBackend)
	v.SetDefault("keyring_service", defaults.KeyringService)
	v.SetDefault("clear_screen", defaults.ClearScreen)
	return v
}

// Load merges defaults, config files and environment, then validates the result.
func (l *Loader) Load() (*Config, error) {
	v := l.newViper()

	if l.HomeDir != "" {
		v.SetConfigName(strings.TrimSuffix(FileName, filepath.Ext(FileName)))
		v.AddConfigPath(filepath.Join(l.HomeDir, DirName))
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("failed to read %s: %w", l.UserConfigPath(), err)
			}
		}
	}

	if l.WorkDir != "" {
		local := filepath.Join(l.WorkDir, LocalFileName)
		exists, err := afero.Exists(l.Fs, local)
		if err != nil {
			return nil, fmt.Errorf("failed to stat %s: %w", local, err)
		}
		if exists {
			v.SetConfigFile(local)
			if err := v.MergeInConfig(); err != nil {
				return nil, fmt.Errorf("failed to read %s: %w", local, err)
			}
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return &config, nil
}

// WriteDefault creates the per-user config file with default values unless it exists.
// It returns the path and whether a file was written. Without a home
// directory nothing is written.
func (l *Loader) WriteDefault() (string, bool, error) {
	if l.HomeDir == "" {
		return "", false, nil
	}
	path := l.UserConfigPath()
	exists, err := afero.Exists(l.Fs, path)
	if err != nil {
		return path, false, fmt.Errorf("failed to stat %s: %w", path, err)
	}
	if exists {
		return path, false, nil
	}
	if err := l.Fs.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return path, false, fmt.Errorf("failed to create %s: %w", filepath.Dir(path), err)
	}

	v := l.newViper()
	if err := v.WriteConfigAs(path); err != nil {
		return path, false, fmt.Errorf("failed to write %s: %w", path, err)
	}
	return path, true, nil
}

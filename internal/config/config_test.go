package config_test

import (
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"

	"vigit.dev/vigit/internal/config"
)

func newLoader(t *testing.T) *config.Loader {
	t.Helper()
	return &config.Loader{
		Fs:      afero.NewMemMapFs(),
		HomeDir: "/home/user",
		WorkDir: "/work",
	}
}

func writeFile(t *testing.T, fs afero.Fs, path, contents string) {
	t.Helper()
	require.NoError(t, fs.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, afero.WriteFile(fs, path, []byte(contents), 0o644))
}

func TestLoad(t *testing.T) {
	t.Run("returns defaults without any config file", func(t *testing.T) {
		cfg, err := newLoader(t).Load()
		require.NoError(t, err)
		require.Equal(t, config.DefaultConfig(), cfg)
	})

	t.Run("reads the user config file", func(t *testing.T) {
		l := newLoader(t)
		writeFile(t, l.Fs, l.UserConfigPath(), "main_branch: trunk\ntoken_backend: gitconfig\n")

		cfg, err := l.Load()
		require.NoError(t, err)
		require.Equal(t, "trunk", cfg.MainBranch)
		require.Equal(t, "gitconfig", cfg.TokenBackend)
		require.Equal(t, "origin", cfg.Remote)
	})

	t.Run("local file overrides the user file", func(t *testing.T) {
		l := newLoader(t)
		writeFile(t, l.Fs, l.UserConfigPath(), "main_branch: trunk\nremote: upstream\n")
		writeFile(t, l.Fs, "/work/.vigit.yaml", "main_branch: develop\n")

		cfg, err := l.Load()
		require.NoError(t, err)
		require.Equal(t, "develop", cfg.MainBranch)
		require.Equal(t, "upstream", cfg.Remote)
	})

	t.Run("environment overrides files", func(t *testing.T) {
		t.Setenv("VIGIT_REMOTE", "fork")
		t.Setenv("VIGIT_CLEAR_SCREEN", "false")
		l := newLoader(t)
		writeFile(t, l.Fs, l.UserConfigPath(), "remote: upstream\n")

		cfg, err := l.Load()
		require.NoError(t, err)
		require.Equal(t, "fork", cfg.Remote)
		require.False(t, cfg.ClearScreen)
	})

	t.Run("rejects invalid values", func(t *testing.T) {
		l := newLoader(t)
		writeFile(t, l.Fs, l.UserConfigPath(), "token_backend: vault\n")

		_, err := l.Load()
		require.ErrorContains(t, err, "token_backend")
	})
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*config.Config)
	}{
		{"empty main branch", func(c *config.Config) { c.MainBranch = "" }},
		{"main branch with spaces", func(c *config.Config) { c.MainBranch = "my branch" }},
		{"empty remote", func(c *config.Config) { c.Remote = "" }},
		{"relative api url", func(c *config.Config) { c.GitHubAPIURL = "api.github.com" }},
		{"empty keyring service", func(c *config.Config) { c.KeyringService = "" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.DefaultConfig()
			tt.mutate(cfg)
			require.Error(t, cfg.Validate())
		})
	}
}

func TestWriteDefault(t *testing.T) {
	l := newLoader(t)

	path, written, err := l.WriteDefault()
	require.NoError(t, err)
	require.True(t, written)
	require.Equal(t, l.UserConfigPath(), path)

	_, written, err = l.WriteDefault()
	require.NoError(t, err)
	require.False(t, written)

	cfg, err := l.Load()
	require.NoError(t, err)
	require.Equal(t, config.DefaultConfig(), cfg)
}

func TestWriteDefaultWithoutHome(t *testing.T) {
	l := &config.Loader{Fs: afero.NewMemMapFs(), WorkDir: "/work"}

	path, written, err := l.WriteDefault()
	require.NoError(t, err)
	require.False(t, written)
	require.Empty(t, path)
}

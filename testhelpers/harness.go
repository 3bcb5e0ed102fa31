package testhelpers

import (
	"bytes"
	"context"
	"sync"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"

	"vigit.dev/vigit/internal/config"
	"vigit.dev/vigit/internal/github"
	"vigit.dev/vigit/internal/runtime"
	"vigit.dev/vigit/internal/tui"
)

// MemoryTokenStore keeps a token in memory.
type MemoryTokenStore struct {
	mu    sync.Mutex
	token string
}

func (s *MemoryTokenStore) Get(context.Context) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token, nil
}

func (s *MemoryTokenStore) Set(_ context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
	return nil
}

// Harness is a runtime.Context wired entirely to fakes. Console output is
// captured in Out and the filesystem is an in-memory afero Fs.
type Harness struct {
	Ctx      *runtime.Context
	Runner   *FakeRunner
	Prober   *FakeProber
	Prompter *FakePrompter
	Tokens   *MemoryTokenStore
	Fs       afero.Fs
	Out      *bytes.Buffer
}

// NewHarness creates a Harness whose prompter replays answers.
func NewHarness(t *testing.T, answers ...Answer) *Harness {
	t.Helper()
	out := &bytes.Buffer{}
	splog, err := tui.NewSplogWithConfig(out, "")
	require.NoError(t, err)

	cfg := config.DefaultConfig()
	cfg.ClearScreen = false

	h := &Harness{
		Runner:   NewFakeRunner(),
		Prober:   NewFakeProber(),
		Prompter: NewFakePrompter(t, answers...),
		Tokens:   &MemoryTokenStore{},
		Fs:       afero.NewMemMapFs(),
		Out:      out,
	}
	h.Ctx, err = runtime.NewContext(runtime.Options{
		Config:   cfg,
		Runner:   h.Runner,
		Prober:   h.Prober,
		Prompter: h.Prompter,
		Splog:    splog,
		Tokens:   h.Tokens,
		Fs:       h.Fs,
		WorkDir:  t.TempDir(),
		Stdout:   out,
	})
	require.NoError(t, err)
	return h
}

// WithGitHub points the GitHub client at a mock server serving config and
// stores config's token.
func (h *Harness) WithGitHub(t *testing.T, config *MockGitHubServerConfig) *Harness {
	t.Helper()
	server := NewMockGitHubServer(t, config)
	h.Ctx.GitHub = github.NewFactory(server.URL)
	require.NoError(t, h.Tokens.Set(context.Background(), config.Token))
	return h
}

// Output returns everything printed so far.
func (h *Harness) Output() string {
	return h.Out.String()
}

// Package credentials stores the GitHub token used by the remote repository client.
package credentials

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/zalando/go-keyring"
)

// ErrReadOnly is returned by stores that cannot persist a token.
var ErrReadOnly = errors.New("token store is read-only")

const (
	// LegacyGitConfigKey is where earlier versions kept the token in plain text
	LegacyGitConfigKey = "github.token"
	// EnvVar overrides every other source
	EnvVar = "GITHUB_TOKEN"
	// DefaultService is the keyring service name
	DefaultService = "vigit"

	keyringUser = "github-token"
)

// Store reads and writes the token. Get returns "" and no error when none is stored.
type Store interface {
	Get(ctx context.Context) (string, error)
	Set(ctx context.Context, token string) error
}

// ConfigEditor is the subset of the git client used for the legacy store.
type ConfigEditor interface {
	GetConfig(ctx context.Context, key string) (string, error)
	SetConfig(ctx context.Context, key, value string) error
	UnsetConfig(ctx context.Context, key string) error
}

// EnvStore reads the token from GITHUB_TOKEN.
type EnvStore struct{}

func (EnvStore) Get(context.Context) (string, error) {
	return os.Getenv(EnvVar), nil
}

func (EnvStore) Set(context.Context, string) error {
	return fmt.Errorf("%s: %w", EnvVar, ErrReadOnly)
}

// KeyringStore keeps the token in the operating system's secret store.
type KeyringStore struct {
	Service string
}

// NewKeyringStore creates a KeyringStore for service, "vigit" when empty.
func NewKeyringStore(service string) *KeyringStore {
	if service == "" {
		service = DefaultService
	}
	return &KeyringStore{Service: service}
}

func (s *KeyringStore) Get(context.Context) (string, error) {
	token, err := keyring.Get(s.Service, keyringUser)
	if errors.Is(err, keyring.ErrNotFound) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to read token from keyring: %w", err)
	}
	return token, nil
}

func (s *KeyringStore) Set(_ context.Context, token string) error {
	if err := keyring.Set(s.Service, keyringUser, token); err != nil {
		return fmt.Errorf("failed to store token in keyring: %w", err)
	}
	return nil
}

// GitConfigStore keeps the token in the global git config under github.token.
type GitConfigStore struct {
	git ConfigEditor
}

// NewGitConfigStore creates a GitConfigStore.
func NewGitConfigStore(git ConfigEditor) *GitConfigStore {
	return &GitConfigStore{git: git}
}

func (s *GitConfigStore) Get(ctx context.Context) (string, error) {
	return s.git.GetConfig(ctx, LegacyGitConfigKey)
}

func (s *GitConfigStore) Set(ctx context.Context, token string) error {
	return s.git.SetConfig(ctx, LegacyGitConfigKey, token)
}

// Clear removes the token.
func (s *GitConfigStore) Clear(ctx context.Context) error {
	return s.git.UnsetConfig(ctx, LegacyGitConfigKey)
}

// ChainStore reads from each source in order and writes to the primary store.
// After a successful write the legacy plain-text token is removed.
type ChainStore struct {
	primary Store
	legacy  *GitConfigStore
	sources []Store
}

// NewChainStore builds the lookup order environment, primary, legacy.
// legacy may be nil.
func NewChainStore(primary Store, legacy *GitConfigStore) *ChainStore {
	sources := []Store{EnvStore{}, primary}
	if legacy != nil && legacy != primary {
		sources = append(sources, legacy)
	}
	return &ChainStore{primary: primary, legacy: legacy, sources: sources}
}

func (c *ChainStore) Get(ctx context.Context) (string, error) {
	var errs []error
	for _, s := range c.sources {
		token, err := s.Get(ctx)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		if token != "" {
			return token, nil
		}
	}
	return "", errors.Join(errs...)
}

func (c *ChainStore) Set(ctx context.Context, token string) error {
	if err := c.primary.Set(ctx, token); err != nil {
		return err
	}
	if legacy, ok := c.primary.(*GitConfigStore); ok && legacy == c.legacy {
		return nil
	}
	if c.legacy != nil {
		if err := c.legacy.Clear(ctx); err != nil {
			return fmt.Errorf("token saved, but the plain-text copy could not be removed: %w", err)
		}
	}
	return nil
}

// New builds the store for backend: "keyring" (default) or "gitconfig".
func New(backend, service string, git ConfigEditor) (*ChainStore, error) {
	legacy := NewGitConfigStore(git)
	switch backend {
	case "", "keyring":
		return NewChainStore(NewKeyringStore(service), legacy), nil
	case "gitconfig":
		return NewChainStore(legacy, legacy), nil
	default:
		return nil, fmt.Errorf("unknown token backend %q", backend)
	}
}

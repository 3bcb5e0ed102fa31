package runtime

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/afero"

	"vigit.dev/vigit/internal/config"
	"vigit.dev/vigit/internal/credentials"
	"vigit.dev/vigit/internal/git"
	"vigit.dev/vigit/internal/github"
	"vigit.dev/vigit/internal/menu"
	"vigit.dev/vigit/internal/tui"
)

// Context provides access to everything an action needs
type Context struct {
	Config   *config.Config
	Runner   git.Runner
	Probes   git.Prober
	Git      *git.Client
	Prompter menu.Prompter
	Splog    *tui.Splog
	Screen   *tui.Screen
	Tokens   credentials.Store
	GitHub   github.Factory
	Fs       afero.Fs
	// WorkDir is the directory vigit operates in
	WorkDir string
	// Stdin and Stdout are handed to full-screen views
	Stdin  io.Reader
	Stdout io.Writer
}

// Options overrides parts of a Context built by NewContext.
type Options struct {
	Config   *config.Config
	Runner   git.Runner
	Prober   git.Prober
	Prompter menu.Prompter
	Splog    *tui.Splog
	Tokens   credentials.Store
	GitHub   github.Factory
	Fs       afero.Fs
	WorkDir  string
	Stdout   io.Writer
}

// NewContext fills every unset option with its default.
func NewContext(opts Options) (*Context, error) {
	if opts.Config == nil {
		opts.Config = config.DefaultConfig()
	}
	if opts.Splog == nil {
		opts.Splog = tui.NewSplog()
	}
	if opts.Stdout == nil {
		opts.Stdout = os.Stdout
	}
	if opts.WorkDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get working directory: %w", err)
		}
		opts.WorkDir = wd
	}
	if opts.Runner == nil {
		opts.Runner = git.NewExecRunner(opts.WorkDir, opts.Splog.FileLogger())
	}
	if opts.Prober == nil {
		opts.Prober = git.NewProbes(opts.Runner, opts.Config.Remote)
	}
	if opts.Prompter == nil {
		opts.Prompter = tui.NewSurveyPrompter()
	}
	if opts.Fs == nil {
		opts.Fs = afero.NewOsFs()
	}
	if opts.GitHub == nil {
		opts.GitHub = github.NewFactory(opts.Config.GitHubAPIURL)
	}

	client := git.NewClient(opts.Runner, opts.Config.Remote)
	if opts.Tokens == nil {
		store, err := credentials.New(opts.Config.TokenBackend, opts.Config.KeyringService, client)
		if err != nil {
			return nil, err
		}
		opts.Tokens = store
	}

	return &Context{
		Config:   opts.Config,
		Runner:   opts.Runner,
		Probes:   opts.Prober,
		Git:      client,
		Prompter: opts.Prompter,
		Splog:    opts.Splog,
		Screen:   tui.NewScreen(opts.Stdout, opts.Config.ClearScreen),
		Tokens:   opts.Tokens,
		GitHub:   opts.GitHub,
		Fs:       opts.Fs,
		WorkDir:  opts.WorkDir,
		Stdin:    os.Stdin,
		Stdout:   opts.Stdout,
	}, nil
}

// MainBranch returns the configured trunk branch name.
func (c *Context) MainBranch() string {
	return c.Config.MainBranch
}

// Remote returns the configured remote name.
func (c *Context) Remote() string {
	return c.Config.Remote
}

// GitHubClient reads the stored token and builds a GitHub client.
func (c *Context) GitHubClient(ctx context.Context) (github.Client, error) {
	token, err := c.Tokens.Get(ctx)
	if err != nil {
		c.Splog.Debug("token lookup failed: %v", err)
	}
	if token == "" {
		return nil, github.ErrTokenMissing
	}
	return c.GitHub(ctx, token)
}

type contextKey struct{}

// WithContext stores c in ctx so cobra commands can retrieve it.
func WithContext(ctx context.Context, c *Context) context.Context {
	return context.WithValue(ctx, contextKey{}, c)
}

// GetContext returns the Context stored by WithContext.
func GetContext(ctx context.Context) (*Context, error) {
	if ctx != nil {
		if c, ok := ctx.Value(contextKey{}).(*Context); ok {
			return c, nil
		}
	}
	return nil, fmt.Errorf("vigit context not initialized")
}

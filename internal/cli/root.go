// Package cli wires vigit's cobra commands to the menu handlers.
package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"vigit.dev/vigit/internal/actions"
	"vigit.dev/vigit/internal/cli/common"
	"vigit.dev/vigit/internal/config"
	vigiterrors "vigit.dev/vigit/internal/errors"
	"vigit.dev/vigit/internal/runtime"
	"vigit.dev/vigit/internal/tui"
)

// skipContext marks commands that run without a runtime context.
const skipContext = "vigit/skip-context"

// ContextBuilder creates the runtime context for one invocation.
type ContextBuilder func(debug bool) (*runtime.Context, error)

// NewRootCmd creates the root cobra command
func NewRootCmd(version, commit, date string) *cobra.Command {
	return newRootCmd(buildInfo{version: version, commit: commit, date: date}, contextFromEnvironment)
}

type buildInfo struct {
	version string
	commit  string
	date    string
}

func newRootCmd(info buildInfo, build ContextBuilder) *cobra.Command {
	var debug bool
	var splog *tui.Splog

	rootCmd := &cobra.Command{
		Use:   "vigit",
		Short: "Visual Git: an interactive menu for everyday git and GitHub tasks",
		Long: `Visual Git is an interactive menu for everyday git and GitHub tasks.

Run it without arguments inside (or outside) a repository to open the menu.
The subcommands are quick actions that skip the menu.`,
		Args:          cobra.NoArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if !needsContext(cmd) {
				return nil
			}
			c, err := build(debug)
			if err != nil {
				return err
			}
			splog = c.Splog

			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			if !c.Probes.IsGitInstalled(ctx) {
				actions.Report(ctx, c, vigiterrors.ErrGitNotInstalled)
				return &common.ReportedError{Err: vigiterrors.ErrGitNotInstalled}
			}
			cmd.SetContext(runtime.WithContext(ctx, c))
			return nil
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			if splog != nil {
				_ = splog.Close()
			}
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return common.Interactive(cmd, func(ctx context.Context, c *runtime.Context) error {
				defer passInterruptsToGit(c)()
				return actions.NewMenus(c).Run(ctx)
			})
		},
	}
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Print debug messages")

	rootCmd.AddCommand(
		newAddCmd(),
		newAddBranchCmd(),
		newCommitCmd(),
		newPushCmd(),
		newBranchCmd(),
		newMergeCmd(),
		newConfigCmd(),
		newStatusCmd(),
		newVersionCmd(info),
	)
	return rootCmd
}

func needsContext(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		switch {
		case c.Annotations[skipContext] != "":
			return false
		case c.Name() == "help", c.Name() == "completion", c.Name() == cobra.ShellCompRequestCmd:
			return false
		}
	}
	return true
}

// passInterruptsToGit keeps Ctrl-C from killing vigit while a git child runs.
// The child still receives the signal from the terminal. Prompts read Ctrl-C
// as a key press and treat it as Back.
func passInterruptsToGit(c *runtime.Context) func() {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, os.Interrupt)
	done := make(chan struct{})
	go func() {
		for {
			select {
			case <-sigs:
				c.Splog.FileLogger().Debug("interrupt received")
			case <-done:
				return
			}
		}
	}()
	return func() {
		signal.Stop(sigs)
		close(done)
	}
}

func contextFromEnvironment(debug bool) (*runtime.Context, error) {
	wd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("failed to get working directory: %w", err)
	}
	// No home directory only means no per-user config file
	home, _ := os.UserHomeDir()

	loader := &config.Loader{Fs: afero.NewOsFs(), HomeDir: home, WorkDir: wd}
	cfg, err := loader.Load()
	if err != nil {
		return nil, err
	}

	var vigitDir string
	if home != "" {
		vigitDir = filepath.Join(home, config.DirName)
	}
	splog, err := tui.NewSplogWithConfig(os.Stdout, tui.LogFilePath(vigitDir))
	if err != nil {
		splog = tui.NewSplog()
		splog.Warn("File logging disabled: %v", err)
	}
	if debug {
		splog.SetDebug(true)
	}
	if path, written, err := loader.WriteDefault(); err != nil {
		splog.Warn("Could not create the default config file: %v", err)
	} else if written {
		splog.Debug("Created default config at %s", path)
	}

	return runtime.NewContext(runtime.Options{
		Config:  cfg,
		Splog:   splog,
		WorkDir: wd,
	})
}

func newVersionCmd(info buildInfo) *cobra.Command {
	return &cobra.Command{
		Use:         "version",
		Short:       "Print the version",
		Args:        cobra.NoArgs,
		Annotations: map[string]string{skipContext: "true"},
		Run: func(cmd *cobra.Command, _ []string) {
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "vigit %s (commit %s, built %s)\n", info.version, info.commit, info.date)
		},
	}
}

package git

import (
	"context"
)

// PullMode selects how remote changes are integrated.
type PullMode int

const (
	// PullMerge merges, allowing unrelated histories so a fresh local repo can join a remote
	PullMerge PullMode = iota
	// PullRebase replays local commits on top of the remote branch
	PullRebase
)

func pullArgs(remote, branch string, mode PullMode) []string {
	args := []string{"pull"}
	switch mode {
	case PullRebase:
		args = append(args, "--rebase")
	default:
		args = append(args, "--allow-unrelated-histories")
	}
	return append(args, remote, branch)
}

// Pull fetches branch from the configured remote and integrates it.
// Output is captured so a failure can be reported and a fallback offered.
func (c *Client) Pull(ctx context.Context, branch string, mode PullMode) (Result, error) {
	return c.captured(ctx, pullArgs(c.remote, branch, mode)...)
}

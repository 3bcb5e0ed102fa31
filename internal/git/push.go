package git

import (
	"context"
	"fmt"
)

// PushMode selects the flags of a push.
type PushMode int

const (
	// PushPlain is `git push <remote> <branch>`
	PushPlain PushMode = iota
	// PushSetUpstream adds -u so the branch tracks the remote
	PushSetUpstream
	// PushForce overwrites the remote branch
	PushForce
	// PushForceWithLease overwrites only if the remote has not moved
	PushForceWithLease
)

func (m PushMode) String() string {
	switch m {
	case PushSetUpstream:
		return "push -u"
	case PushForce:
		return "push --force"
	case PushForceWithLease:
		return "push --force-with-lease"
	default:
		return "push"
	}
}

func pushArgs(remote, branch string, mode PushMode) []string {
	args := []string{"push"}
	switch mode {
	case PushSetUpstream:
		args = append(args, "-u")
	case PushForce:
		args = append(args, "--force")
	case PushForceWithLease:
		args = append(args, "--force-with-lease")
	}
	return append(args, remote, branch)
}

// Push pushes branch to the configured remote.
// Output is captured so a rejection can be reported and a fallback offered.
func (c *Client) Push(ctx context.Context, branch string, mode PushMode) (Result, error) {
	return c.captured(ctx, pushArgs(c.remote, branch, mode)...)
}

// DeleteRemoteBranch removes branch from the remote.
func (c *Client) DeleteRemoteBranch(ctx context.Context, branch string) error {
	if _, err := c.captured(ctx, "push", c.remote, "--delete", branch); err != nil {
		return fmt.Errorf("failed to delete remote branch %s: %w", branch, err)
	}
	return nil
}

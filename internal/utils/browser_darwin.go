//go:build darwin

package utils

import (
	"context"
	"os/exec"
)

// OpenBrowser opens url in the default browser on macOS.
// It returns once the opener has started.
func OpenBrowser(ctx context.Context, url string) error {
	cmd := exec.CommandContext(ctx, "open", url)
	if err := cmd.Start(); err != nil {
		return err
	}
	go func() { _ = cmd.Wait() }()
	return nil
}

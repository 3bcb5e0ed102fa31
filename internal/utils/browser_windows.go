//go:build windows

package utils

import (
	"context"
	"os/exec"
)

// OpenBrowser opens url in the default browser on Windows.
// It returns once the opener has started.
func OpenBrowser(ctx context.Context, url string) error {
	cmd := exec.CommandContext(ctx, "rundll32", "url.dll,FileProtocolHandler", url)
	if err := cmd.Start(); err != nil {
		return err
	}
	go func() { _ = cmd.Wait() }()
	return nil
}

package git

import (
	"context"
	"fmt"
)

// GetConfig reads a global git config value. A missing key yields "".
func (c *Client) GetConfig(ctx context.Context, key string) (string, error) {
	res, err := c.captured(ctx, "config", "--global", "--get", key)
	if err != nil {
		// git config exits 1 for an unset key
		if res.ExitCode == 1 {
			return "", nil
		}
		return "", fmt.Errorf("failed to read %s: %w", key, err)
	}
	return res.Output(), nil
}

// SetConfig writes a global git config value.
func (c *Client) SetConfig(ctx context.Context, key, value string) error {
	if _, err := c.captured(ctx, "config", "--global", key, value); err != nil {
		return fmt.Errorf("failed to set %s: %w", key, err)
	}
	return nil
}

// UnsetConfig removes a global git config value. Removing a missing key is not an error.
func (c *Client) UnsetConfig(ctx context.Context, key string) error {
	res, err := c.captured(ctx, "config", "--global", "--unset", key)
	if err != nil && res.ExitCode != 5 {
		return fmt.Errorf("failed to unset %s: %w", key, err)
	}
	return nil
}


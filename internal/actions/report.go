package actions

import (
	"context"
	"errors"
	"strings"

	vigiterrors "vigit.dev/vigit/internal/errors"
	"vigit.dev/vigit/internal/github"
	"vigit.dev/vigit/internal/runtime"
)

// Report prints err the way its Kind calls for. It never exits the process.
func Report(_ context.Context, c *runtime.Context, err error) {
	if err == nil {
		return
	}
	c.Splog.FileLogger().Debug("action failed", "kind", vigiterrors.KindOf(err).String(), "error", err.Error())

	var pre *vigiterrors.PreconditionError
	var apiErr *github.APIError
	switch vigiterrors.KindOf(err) {
	case vigiterrors.KindPrecondition:
		if errors.Is(err, vigiterrors.ErrGitNotInstalled) {
			c.Splog.Error("Git is not installed. You need to install git to use VisualGit.")
			return
		}
		c.Splog.Warn("%s", err.Error())
		if errors.As(err, &pre) && pre.Remedy != "" {
			c.Splog.Tip("To fix it go to: %s", pre.Remedy)
		}
	case vigiterrors.KindCommandFailed:
		c.Splog.Error("%s", vigiterrors.Reason(err))
	case vigiterrors.KindRemote:
		if errors.As(err, &apiErr) {
			c.Splog.Error("GitHub request failed: %s", apiErr.Message)
			if hint := apiErr.Hint(); hint != "" {
				c.Splog.Tip("%s", hint)
			}
			return
		}
		c.Splog.Error("%s", err.Error())
	case vigiterrors.KindInvalidInput:
		c.Splog.Error("%s", err.Error())
	case vigiterrors.KindCanceled:
		c.Splog.Info("Operation canceled: %s.", canceledReason(err))
	default:
		if errors.Is(err, github.ErrTokenMissing) {
			c.Splog.Warn("GitHub token not found. Please configure one in the configuration menu.")
			c.Splog.Tip("Go to: %s", menuPath(ConfigurationID, GitHubTokenID))
			return
		}
		c.Splog.Error("%s", err.Error())
	}
}

func canceledReason(err error) string {
	reason := strings.TrimSuffix(err.Error(), ": "+vigiterrors.ErrCanceled.Error())
	if reason == vigiterrors.ErrCanceled.Error() {
		return "no changes were made"
	}
	return reason
}

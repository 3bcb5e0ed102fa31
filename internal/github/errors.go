package github

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/google/go-github/v62/github"
)

// ErrTokenMissing is returned when no GitHub token has been configured.
var ErrTokenMissing = errors.New("no GitHub token configured")

// ErrorKind classifies a failed API call.
type ErrorKind string

const (
	KindNameExists     ErrorKind = "name-exists"
	KindBadCredentials ErrorKind = "bad-credentials"
	KindNotFound       ErrorKind = "not-found"
	KindAdminRights    ErrorKind = "admin-rights"
	KindOther          ErrorKind = "other"
)

// APIError is a failed GitHub API call. Status is 0 when no response was received.
type APIError struct {
	Status  int
	Message string
	Kind    ErrorKind
	Err     error
}

func (e *APIError) Error() string {
	if e.Status == 0 {
		return fmt.Sprintf("GitHub request failed: %s", e.Message)
	}
	return fmt.Sprintf("GitHub API error %d: %s", e.Status, e.Message)
}

func (e *APIError) Unwrap() error {
	return e.Err
}

// RemoteError marks APIError as coming from the remote repository client.
func (e *APIError) RemoteError() bool {
	return true
}

// Hint returns a suggestion for resolving the error.
func (e *APIError) Hint() string {
	return Hint(e.Kind)
}

// Hint returns a suggestion for resolving an error of kind.
func Hint(kind ErrorKind) string {
	switch kind {
	case KindNameExists:
		return "A repository with that name already exists on your account. Choose another name."
	case KindBadCredentials:
		return "Your GitHub token was rejected. Set a new one under Configuration > GitHub Token."
	case KindNotFound:
		return "The repository was not found. Check the owner and name, and that your token can see it."
	case KindAdminRights:
		return "Your token lacks the delete_repo scope or you are not an admin of this repository."
	default:
		return "Check your network connection and token, then try again."
	}
}

// wrapError converts an error from go-github into an *APIError.
func wrapError(err error) error {
	if err == nil {
		return nil
	}

	var respErr *github.ErrorResponse
	if errors.As(err, &respErr) {
		status := 0
		if respErr.Response != nil {
			status = respErr.Response.StatusCode
		}
		messages := []string{respErr.Message}
		for _, e := range respErr.Errors {
			if e.Message != "" {
				messages = append(messages, e.Message)
			}
		}
		message := strings.Join(messages, ": ")
		return &APIError{
			Status:  status,
			Message: message,
			Kind:    classify(status, message),
			Err:     err,
		}
	}

	return &APIError{Message: err.Error(), Kind: KindOther, Err: err}
}

func classify(status int, message string) ErrorKind {
	lower := strings.ToLower(message)
	switch {
	case strings.Contains(lower, "name already exists"):
		return KindNameExists
	case status == http.StatusUnauthorized || strings.Contains(lower, "bad credentials"):
		return KindBadCredentials
	case strings.Contains(lower, "admin rights"):
		return KindAdminRights
	case status == http.StatusNotFound || strings.Contains(lower, "not found"):
		return KindNotFound
	default:
		return KindOther
	}
}

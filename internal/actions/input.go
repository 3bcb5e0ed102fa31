package actions

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	vigiterrors "vigit.dev/vigit/internal/errors"
	"vigit.dev/vigit/internal/runtime"
)

// inputError is malformed user input. Its message is shown verbatim.
type inputError struct {
	msg string
}

func (e *inputError) Error() string { return e.msg }

func (e *inputError) Unwrap() error { return vigiterrors.ErrInvalidInput }

var errInvalidNumber = &inputError{msg: "Invalid number"}

// emptyInputError cancels an operation whose required value was left blank.
func emptyInputError(what string) error {
	return fmt.Errorf("%s not provided: %w", what, vigiterrors.ErrCanceled)
}

// askRequired prompts for a value that must not be blank.
func askRequired(c *runtime.Context, message, what string) (string, error) {
	value, err := c.Prompter.Input(message, "")
	if err != nil {
		return "", err
	}
	value = strings.TrimSpace(value)
	if value == "" {
		return "", emptyInputError(what)
	}
	return value, nil
}

// askOptional prompts for a value that may be blank.
func askOptional(c *runtime.Context, message, def string) (string, error) {
	value, err := c.Prompter.Input(message, def)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(value), nil
}

// askNumber prompts for an integer of at least min.
func askNumber(c *runtime.Context, message, def string, min int) (int, error) {
	raw, err := c.Prompter.Input(message, def)
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || n < min {
		return 0, errInvalidNumber
	}
	return n, nil
}

// confirm asks a y/N question that defaults to no. Canceling the prompt counts as no.
func confirm(c *runtime.Context, message string) (bool, error) {
	ok, err := c.Prompter.Confirm(message, false)
	if errors.Is(err, vigiterrors.ErrCanceled) {
		return false, nil
	}
	return ok, err
}

// choose asks the user to pick one of options. Canceling returns -1.
func choose(c *runtime.Context, message string, options ...string) (int, error) {
	i, err := c.Prompter.Select(message, options)
	if errors.Is(err, vigiterrors.ErrCanceled) {
		return -1, nil
	}
	return i, err
}

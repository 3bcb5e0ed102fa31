package tui

import (
	"errors"
	"fmt"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"

	vigiterrors "vigit.dev/vigit/internal/errors"
)

// SurveyPrompter implements menu.Prompter on top of survey.
type SurveyPrompter struct {
	opts []survey.AskOpt
}

// NewSurveyPrompter creates a prompter bound to the process's terminal.
func NewSurveyPrompter(opts ...survey.AskOpt) *SurveyPrompter {
	return &SurveyPrompter{opts: opts}
}

func (p *SurveyPrompter) ask(prompt survey.Prompt, response interface{}) error {
	if err := survey.AskOne(prompt, response, p.opts...); err != nil {
		if errors.Is(err, terminal.InterruptErr) {
			return vigiterrors.ErrCanceled
		}
		return fmt.Errorf("prompt failed: %w", err)
	}
	return nil
}

// Select returns the index of the chosen option.
func (p *SurveyPrompter) Select(message string, options []string) (int, error) {
	var idx int
	prompt := &survey.Select{
		Message:  message,
		Options:  options,
		PageSize: len(options),
	}
	if err := p.ask(prompt, &idx); err != nil {
		return 0, err
	}
	return idx, nil
}

// Input reads a line of text.
func (p *SurveyPrompter) Input(message, defaultValue string) (string, error) {
	var answer string
	prompt := &survey.Input{
		Message: message,
		Default: defaultValue,
	}
	if err := p.ask(prompt, &answer); err != nil {
		return "", err
	}
	return answer, nil
}

// Password reads a line of text without echoing it.
func (p *SurveyPrompter) Password(message string) (string, error) {
	var answer string
	if err := p.ask(&survey.Password{Message: message}, &answer); err != nil {
		return "", err
	}
	return answer, nil
}

// Confirm asks a yes/no question.
func (p *SurveyPrompter) Confirm(message string, defaultValue bool) (bool, error) {
	var answer bool
	prompt := &survey.Confirm{
		Message: message,
		Default: defaultValue,
	}
	if err := p.ask(prompt, &answer); err != nil {
		return false, err
	}
	return answer, nil
}

// MultiSelect returns the indexes of the chosen options.
func (p *SurveyPrompter) MultiSelect(message string, options []string) ([]int, error) {
	var picked []int
	prompt := &survey.MultiSelect{
		Message: message,
		Options: options,
	}
	if err := p.ask(prompt, &picked); err != nil {
		return nil, err
	}
	return picked, nil
}

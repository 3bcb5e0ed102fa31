package testhelpers

import (
	"fmt"
	"strings"
	"sync"
	"testing"

	vigiterrors "vigit.dev/vigit/internal/errors"
)

type answerKind int

const (
	selectAnswer answerKind = iota
	textAnswer
	confirmAnswer
	multiAnswer
	cancelAnswer
)

func (k answerKind) String() string {
	switch k {
	case selectAnswer:
		return "select"
	case textAnswer:
		return "input"
	case confirmAnswer:
		return "confirm"
	case multiAnswer:
		return "multiselect"
	default:
		return "cancel"
	}
}

// Answer is one scripted reply to a prompt.
type Answer struct {
	kind  answerKind
	text  string
	yes   bool
	picks []string
}

// Choose selects the menu option whose label text is text.
func Choose(text string) Answer { return Answer{kind: selectAnswer, text: text} }

// Type answers an Input or Password prompt.
func Type(text string) Answer { return Answer{kind: textAnswer, text: text} }

// Yes answers a Confirm prompt affirmatively.
func Yes() Answer { return Answer{kind: confirmAnswer, yes: true} }

// No answers a Confirm prompt negatively.
func No() Answer { return Answer{kind: confirmAnswer} }

// Pick answers a MultiSelect prompt with the options labelled texts.
func Pick(texts ...string) Answer { return Answer{kind: multiAnswer, picks: texts} }

// Cancel makes the next prompt of any kind report ErrCanceled.
func Cancel() Answer { return Answer{kind: cancelAnswer} }

// FakePrompter replays scripted answers and records what was shown.
// Once the script is exhausted every prompt reports ErrCanceled, so menu
// loops unwind on their own.
type FakePrompter struct {
	t testing.TB

	mu       sync.Mutex
	answers  []Answer
	screens  [][]string
	messages []string
}

// NewFakePrompter creates a FakePrompter with the given script.
func NewFakePrompter(t testing.TB, answers ...Answer) *FakePrompter {
	return &FakePrompter{t: t, answers: answers}
}

// Screens returns the option lists of every Select, in order.
func (p *FakePrompter) Screens() [][]string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([][]string(nil), p.screens...)
}

// Messages returns the message of every prompt, in order.
func (p *FakePrompter) Messages() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]string(nil), p.messages...)
}

// Remaining returns how many scripted answers were not consumed.
func (p *FakePrompter) Remaining() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.answers)
}

func (p *FakePrompter) next(message string, kind answerKind) (Answer, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.messages = append(p.messages, message)
	if len(p.answers) == 0 {
		return Answer{}, vigiterrors.ErrCanceled
	}
	a := p.answers[0]
	p.answers = p.answers[1:]
	if a.kind == cancelAnswer {
		return Answer{}, vigiterrors.ErrCanceled
	}
	if a.kind != kind {
		p.t.Errorf("prompt %q: expected a %s answer, script has %s", message, kind, a.kind)
		return Answer{}, vigiterrors.ErrCanceled
	}
	return a, nil
}

func matchOption(option, text string) bool {
	return option == text || strings.HasSuffix(option, "] "+text)
}

func indexOf(options []string, text string) int {
	for i, o := range options {
		if matchOption(o, text) {
			return i
		}
	}
	return -1
}

func (p *FakePrompter) Select(message string, options []string) (int, error) {
	p.mu.Lock()
	p.screens = append(p.screens, append([]string(nil), options...))
	p.mu.Unlock()

	a, err := p.next(message, selectAnswer)
	if err != nil {
		return 0, err
	}
	i := indexOf(options, a.text)
	if i < 0 {
		p.t.Errorf("prompt %q: no option %q in %v", message, a.text, options)
		return 0, vigiterrors.ErrCanceled
	}
	return i, nil
}

func (p *FakePrompter) Input(message, _ string) (string, error) {
	a, err := p.next(message, textAnswer)
	return a.text, err
}

func (p *FakePrompter) Password(message string) (string, error) {
	a, err := p.next(message, textAnswer)
	return a.text, err
}

func (p *FakePrompter) Confirm(message string, _ bool) (bool, error) {
	a, err := p.next(message, confirmAnswer)
	return a.yes, err
}

func (p *FakePrompter) MultiSelect(message string, options []string) ([]int, error) {
	a, err := p.next(message, multiAnswer)
	if err != nil {
		return nil, err
	}
	picked := make([]int, 0, len(a.picks))
	for _, text := range a.picks {
		i := indexOf(options, text)
		if i < 0 {
			return nil, fmt.Errorf("no option %q in %v", text, options)
		}
		picked = append(picked, i)
	}
	return picked, nil
}

package menu

import (
	"context"
	"errors"
	"strings"

	vigiterrors "vigit.dev/vigit/internal/errors"
)

// Signal tells the enclosing menu loop what to do after an action returns.
type Signal int

const (
	// Stay redraws the current menu
	Stay Signal = iota
	// Back returns to the parent menu
	Back
	// Quit unwinds every menu and ends the program
	Quit
)

func (s Signal) String() string {
	switch s {
	case Back:
		return "back"
	case Quit:
		return "quit"
	default:
		return "stay"
	}
}

// Action runs when an item is selected.
type Action func(ctx context.Context) (Signal, error)

// Item is one selectable entry of a Node.
type Item struct {
	ID     ID
	Action Action
}

// Node is one menu screen.
type Node struct {
	Title string
	// Header is evaluated on every redraw, so it always reflects the current repository state.
	Header func(ctx context.Context) string
	Items  []Item
}

// Dispatcher runs menu loops.
type Dispatcher struct {
	labels   Labels
	prompter Prompter
	returned bool

	// BeforeRender runs when a screen is entered or returned to, typically to
	// clear it. It does not run after a leaf action, so its output stays visible.
	BeforeRender func()
	// OnError reports an action's error. The menu is redrawn afterwards.
	OnError func(ctx context.Context, err error)
}

// NewDispatcher creates a Dispatcher rendering entries from labels.
func NewDispatcher(labels Labels, prompter Prompter) *Dispatcher {
	return &Dispatcher{labels: labels, prompter: prompter}
}

func (d *Dispatcher) label(id ID) Label {
	if label, ok := d.labels[id]; ok {
		return label
	}
	return reserved.Get(id)
}

// Options renders the option list of node, including Back and Quit.
func (d *Dispatcher) Options(node *Node) []string {
	options := make([]string, 0, len(node.Items)+2)
	for _, item := range node.Items {
		options = append(options, d.label(item.ID).String())
	}
	return append(options, d.label(BackID).String(), d.label(QuitID).String())
}

func (d *Dispatcher) message(ctx context.Context, node *Node) string {
	parts := []string{}
	if node.Title != "" {
		parts = append(parts, node.Title)
	}
	if node.Header != nil {
		if h := node.Header(ctx); h != "" {
			parts = append(parts, h)
		}
	}
	return strings.Join(parts, "\n")
}

// Run shows node until the user goes back or quits, and returns Back or Quit.
// A non-nil error is only returned when the prompt itself failed.
func (d *Dispatcher) Run(ctx context.Context, node *Node) (Signal, error) {
	fresh := true
	for {
		if ctx.Err() != nil {
			return Quit, nil
		}
		if fresh && d.BeforeRender != nil {
			d.BeforeRender()
		}

		options := d.Options(node)
		choice, err := d.prompter.Select(d.message(ctx, node), options)
		if err != nil {
			if errors.Is(err, vigiterrors.ErrCanceled) {
				return Back, nil
			}
			return Quit, err
		}

		switch {
		case choice == len(node.Items):
			return Back, nil
		case choice == len(node.Items)+1:
			return Quit, nil
		case choice < 0 || choice > len(node.Items)+1:
			continue
		}

		d.returned = false
		sig, err := d.execute(ctx, node.Items[choice])
		fresh = d.returned
		if err != nil && d.OnError != nil {
			d.OnError(ctx, err)
		}
		switch sig {
		case Back:
			return Back, nil
		case Quit:
			return Quit, nil
		}
	}
}

func (d *Dispatcher) execute(ctx context.Context, item Item) (Signal, error) {
	if item.Action == nil {
		return Stay, nil
	}
	return item.Action(ctx)
}

// Submenu returns an Action that runs child. Backing out of the child redraws
// the parent; quitting the child quits the parent.
func (d *Dispatcher) Submenu(child func() *Node) Action {
	return func(ctx context.Context) (Signal, error) {
		sig, err := d.Run(ctx, child())
		d.returned = true
		if sig == Quit {
			return Quit, err
		}
		return Stay, err
	}
}

package menu

// Prompter collects input from the user. Implementations return an error
// satisfying errors.Is(err, errors.ErrCanceled) when the user presses
// Ctrl-C or Esc.
type Prompter interface {
	// Select blocks until one of options is chosen and returns its index.
	Select(message string, options []string) (int, error)
	// Input reads one line of free text.
	Input(message, defaultValue string) (string, error)
	// Password reads one line without echoing it.
	Password(message string) (string, error)
	// Confirm asks a yes/no question.
	Confirm(message string, defaultValue bool) (bool, error)
	// MultiSelect returns the indexes of every chosen option.
	MultiSelect(message string, options []string) ([]int, error)
}

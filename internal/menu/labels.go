package menu

import "fmt"

// ID identifies a menu entry independently of its wording.
type ID string

// Label is the text a menu entry is rendered with.
type Label struct {
	// Key is shown in brackets in front of the text
	Key  string
	Text string
}

func (l Label) String() string {
	if l.Key == "" {
		return l.Text
	}
	return fmt.Sprintf("[%s] %s", l.Key, l.Text)
}

// Labels maps every menu entry to its rendered text.
type Labels map[ID]Label

// Get returns the label for id, falling back to the ID itself.
func (l Labels) Get(id ID) Label {
	if label, ok := l[id]; ok {
		return label
	}
	return Label{Text: string(id)}
}

// Text returns just the text of the label for id.
func (l Labels) Text(id ID) string {
	return l.Get(id).Text
}

// Reserved entries appended to every screen.
const (
	BackID ID = "back"
	QuitID ID = "quit"
)

var reserved = Labels{
	BackID: {Key: "x", Text: "Back"},
	QuitID: {Key: "q", Text: "Quit"},
}

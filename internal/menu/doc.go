// Package menu renders keyed option screens and dispatches the user's
// choice to an action.
//
// A menu is a Node holding Items. Each Item names a label by ID; the label
// text and selection key live in one Labels table shared by every screen.
// Selecting an item runs its Action, which reports through a Signal whether
// the current screen should be redrawn (Stay), popped (Back), or whether the
// whole program should unwind (Quit). Submenus are Actions that run a child
// Node, so navigation depth is the Go call stack.
package menu

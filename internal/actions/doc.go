// Package actions implements every menu entry of vigit.
//
// Each handler follows the same three steps:
//   - precondition: read-only probes through runtime.Context.Probes; a failure
//     returns a *errors.PreconditionError naming the menu path that fixes it
//   - input: prompts through runtime.Context.Prompter
//   - execution: git through runtime.Context.Git, GitHub through GitHubClient
//
// Push, pull, merge, branch deletion and branch switching recover from
// failures by offering the user a small menu of fallbacks. Errors never end
// the program; Report prints them and the menu is redrawn.
//
// Menus wires the handlers into the menu tree and DefaultLabels holds the
// wording of every entry.
package actions

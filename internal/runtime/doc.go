// Package runtime provides the execution context shared by every vigit action.
//
// The Context bundles the git runner and client, the state probes, the
// prompter, the logger, the token store and the GitHub client factory, so
// tests can replace any of them with a fake.
package runtime

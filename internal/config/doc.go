// Package config loads vigit's settings.
//
// Settings are read, lowest precedence first, from built-in defaults,
// ~/.vigit/config.yaml, ./.vigit.yaml in the working directory, and
// VIGIT_* environment variables.
package config

package utils

import (
	"regexp"
	"strings"
)

// MaxBranchNameLength keeps the ref path within git's 255-byte ref name limit.
const MaxBranchNameLength = 244

var (
	// invalidBranchChars matches runs of characters git refuses or shells mangle
	invalidBranchChars = regexp.MustCompile(`[^-_/.a-zA-Z0-9]+`)
	dotRuns            = regexp.MustCompile(`\.{2,}`)
	slashRuns          = regexp.MustCompile(`/{2,}`)
	hyphenRuns         = regexp.MustCompile(`-{2,}`)
)

// SanitizeBranchName turns name into a valid branch name.
// It returns "" when nothing usable is left.
func SanitizeBranchName(name string) string {
	name = strings.TrimSpace(name)
	name = invalidBranchChars.ReplaceAllString(name, "-")
	name = dotRuns.ReplaceAllString(name, ".")
	name = slashRuns.ReplaceAllString(name, "/")
	name = hyphenRuns.ReplaceAllString(name, "-")

	for {
		trimmed := strings.TrimSuffix(name, ".lock")
		trimmed = strings.Trim(trimmed, "-/.")
		if trimmed == name {
			break
		}
		name = trimmed
	}

	if len(name) > MaxBranchNameLength {
		name = strings.TrimRight(name[:MaxBranchNameLength], "-/.")
	}
	return name
}

// IsValidBranchName reports whether name is already in sanitized form.
func IsValidBranchName(name string) bool {
	return name != "" && SanitizeBranchName(name) == name
}

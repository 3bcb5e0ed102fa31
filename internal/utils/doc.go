// Package utils provides small helpers shared by the menu handlers:
// branch name sanitizing and opening URLs in the user's browser.
package utils

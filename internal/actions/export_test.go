package actions

import (
	"context"
	"testing"
)

// StubOpenBrowser records the URLs handlers try to open instead of launching a browser.
func StubOpenBrowser(t *testing.T) *[]string {
	t.Helper()
	opened := &[]string{}
	old := openBrowser
	openBrowser = func(_ context.Context, url string) error {
		*opened = append(*opened, url)
		return nil
	}
	t.Cleanup(func() { openBrowser = old })
	return opened
}

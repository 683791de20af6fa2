// Package testutil provides helpers shared by the test suites.
package testutil

import "regexp"

var ansiPattern = regexp.MustCompile(`\x1b\[[0-9;]*[a-zA-Z]`)

// StripANSI removes ANSI escape sequences from s, so tests can assert on
// CLI output without coupling to the active color theme.
func StripANSI(s string) string {
	return ansiPattern.ReplaceAllString(s, "")
}

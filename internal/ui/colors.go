// Package ui provides terminal color helpers for the CLI output.
// Colors are disabled when the user asks for it (--no-color or the NO_COLOR
// environment variable), in which case every accessor returns the empty
// string so callers never need to branch.
package ui

import (
	"os"
	"sync/atomic"
)

var colorsDisabled atomic.Bool

func init() {
	// https://no-color.org/: any non-empty value disables color.
	if v, ok := os.LookupEnv("NO_COLOR"); ok && v != "" {
		colorsDisabled.Store(true)
	}
}

// SetNoColor enables or disables color output globally.
func SetNoColor(disabled bool) {
	colorsDisabled.Store(disabled)
}

func code(c string) string {
	if colorsDisabled.Load() {
		return ""
	}
	return c
}

// ColorReset returns the ANSI reset sequence.
func ColorReset() string { return code("\033[0m") }

// ColorRed returns the ANSI sequence for red text.
func ColorRed() string { return code("\033[31m") }

// ColorGreen returns the ANSI sequence for green text.
func ColorGreen() string { return code("\033[32m") }

// ColorYellow returns the ANSI sequence for yellow text.
func ColorYellow() string { return code("\033[33m") }

// ColorUnderline returns the ANSI underline sequence.
func ColorUnderline() string { return code("\033[4m") }

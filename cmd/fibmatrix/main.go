// Command fibmatrix calculates Fibonacci numbers of arbitrary size using
// symmetric 2x2 matrix exponentiation, as a CLI or as an HTTP API.
package main

import (
	"os"

	"github.com/agbru/fibmatrix/internal/app"
)

func main() {
	os.Exit(app.Run(os.Args[1:], os.Stdout, os.Stderr))
}

// Package main implements a multichecker that runs the project analyzers:
//
//   - noosexitmain forbids direct calls to os.Exit in main.main
//   - nowallclock forbids wall clock reads in the pure engine packages
//
// Usage:
//
//	go run ./cmd/staticlint ./...
//	./staticlint -nowallclock.packages=internal/sampling ./...
package main

import (
	"golang.org/x/tools/go/analysis/multichecker"

	"github.com/sbilibin2017/gophpowa/cmd/staticlint/analyzers"
)

func main() {
	multichecker.Main(
		analyzers.NoOsExitMainAnalyzer,
		analyzers.NoWallClockAnalyzer,
	)
}

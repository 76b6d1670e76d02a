package analyzers

import (
	"testing"

	"golang.org/x/tools/go/analysis/analysistest"
)

func TestNoOsExitMainAnalyzer(t *testing.T) {
	analysistest.Run(t, analysistest.TestData(), NoOsExitMainAnalyzer, "mainexit", "libexit")
}

func TestNoWallClockAnalyzer(t *testing.T) {
	analysistest.Run(t, analysistest.TestData(), NoWallClockAnalyzer,
		"example.com/engine/internal/sampling",
		"example.com/engine/internal/worker",
	)
}

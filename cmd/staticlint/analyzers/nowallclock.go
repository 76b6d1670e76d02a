package analyzers

import (
	"go/ast"
	"strings"

	"golang.org/x/tools/go/analysis"
)

// DefaultPurePackages are the engine packages that take every instant as input.
const DefaultPurePackages = "internal/sampling,internal/series,internal/schema,internal/tiers"

// NoWallClockAnalyzer reports reads of the wall clock in pure engine packages.
var NoWallClockAnalyzer = &analysis.Analyzer{
	Name: "nowallclock",
	Doc:  "disallow time.Now, time.Since and time.Until in pure engine packages",
	Run:  runNoWallClock,
}

var purePackages string

func init() {
	NoWallClockAnalyzer.Flags.StringVar(&purePackages, "packages", DefaultPurePackages,
		"comma-separated package path suffixes that must not read the wall clock")
}

var wallClockFuncs = []string{"Now", "Since", "Until"}

func runNoWallClock(pass *analysis.Pass) (interface{}, error) {
	if !isPure(pass.Pkg.Path()) {
		return nil, nil
	}
	for _, file := range pass.Files {
		if strings.HasSuffix(pass.Fset.File(file.Pos()).Name(), "_test.go") {
			continue
		}
		ast.Inspect(file, func(n ast.Node) bool {
			call, ok := n.(*ast.CallExpr)
			if !ok {
				return true
			}
			for _, name := range wallClockFuncs {
				if isPkgFunc(pass, call, "time", name) {
					pass.Reportf(call.Pos(), "time.%s reads the wall clock; take the instant as a parameter", name)
				}
			}
			return true
		})
	}
	return nil, nil
}

func isPure(path string) bool {
	for _, suffix := range strings.Split(purePackages, ",") {
		suffix = strings.TrimSpace(suffix)
		if suffix != "" && (path == suffix || strings.HasSuffix(path, "/"+suffix)) {
			return true
		}
	}
	return false
}

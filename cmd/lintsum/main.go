package main

import (
	"golang.org/x/tools/go/analysis/singlechecker"

	"github.com/example/sumgen/internal/lintsum"
)

func main() {
	singlechecker.Main(lintsum.Analyzer)
}

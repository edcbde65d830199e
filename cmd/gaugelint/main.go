// Command gaugelint runs the gauge descriptor checks as a standalone tool
// or through `go vet -vettool`.
package main

import "golang.org/x/tools/go/analysis/singlechecker"

func main() {
	singlechecker.Main(Analyzer)
}

// Command seqgraph trains sequence pattern graphs from text corpora and scores
// query sequences against them.
package main

import (
	"os"

	"github.com/katalvlaran/seqpattern/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}

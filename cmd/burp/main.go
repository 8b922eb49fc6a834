// Command burp is the beer-path oracle CLI: build a graph from
// GeoJSON, build per-POI oracles from that graph, and benchmark the
// build against a batch of sampled POIs.
package main

import (
	"os"

	"github.com/beerpath/burp/cmd/burp/internal/cli"
)

func main() {
	os.Exit(cli.Execute(os.Args[1:]))
}

package dijkstra_test

import (
	"fmt"
	"math"

	"github.com/katalvlaran/seqpattern/core"
	"github.com/katalvlaran/seqpattern/dijkstra"
)

// ExampleDijkstra finds the most probable chain in a small probability graph.
func ExampleDijkstra() {
	s := core.NewStore()
	s.AddEdge("open", "close", 0.25)
	s.AddEdge("open", "read", 0.75)
	s.AddEdge("read", "close", 0.5)

	dist, prev, err := dijkstra.Dijkstra(s,
		dijkstra.Source("open"),
		dijkstra.WithCost(dijkstra.NegLog),
		dijkstra.WithReturnPath(),
	)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	path, _ := dijkstra.Path(prev, "open", "close")
	fmt.Printf("%v %.3f\n", path, math.Exp(-dist["close"]))
	// Output: [open read close] 0.375
}

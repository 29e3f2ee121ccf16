// Package dijkstra finds cheapest paths along the outgoing edges of a
// core.Store.
//
// Weights become costs through WithCost. With NegLog as the cost, the
// cheapest path between two nodes of a normalized pattern graph is its most
// probable transition chain, and exp(-dist) is that chain's probability.
//
// Usage:
//
//	dist, prev, err := dijkstra.Dijkstra(store,
//		dijkstra.Source("open"),
//		dijkstra.WithCost(dijkstra.NegLog),
//		dijkstra.WithReturnPath(),
//	)
//	path, err := dijkstra.Path(prev, "open", "close")
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E)
package dijkstra

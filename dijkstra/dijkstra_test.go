package dijkstra_test

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/seqpattern/core"
	"github.com/katalvlaran/seqpattern/dijkstra"
)

func TestDijkstra_Validation(t *testing.T) {
	s := core.NewStore()
	s.AddEdge("A", "B", 1)

	_, _, err := dijkstra.Dijkstra(s)
	require.ErrorIs(t, err, dijkstra.ErrEmptySource)
	_, _, err = dijkstra.Dijkstra(nil, dijkstra.Source("A"))
	require.ErrorIs(t, err, dijkstra.ErrNilStore)
	_, _, err = dijkstra.Dijkstra(s, dijkstra.Source("Z"))
	require.ErrorIs(t, err, dijkstra.ErrVertexNotFound)

	_, _, err = dijkstra.Dijkstra(s, dijkstra.Source("A"),
		dijkstra.WithCost(func(w float64) float64 { return -w }))
	require.ErrorIs(t, err, dijkstra.ErrNegativeWeight)

	// the option panics when applied, not when constructed
	bad := dijkstra.WithMaxDistance(-1)
	require.PanicsWithValue(t, dijkstra.ErrBadMaxDistance.Error(), func() {
		_, _, _ = dijkstra.Dijkstra(s, dijkstra.Source("A"), bad)
	})
}

func TestDijkstra_Directed(t *testing.T) {
	s := core.NewStore()
	s.AddEdge("A", "B", 2)
	s.AddEdge("A", "C", 1)
	s.AddEdge("C", "B", 1)
	s.AddEdge("B", "D", 3)
	s.AddEdge("C", "D", 5)
	s.Ensure("E")

	dist, prev, err := dijkstra.Dijkstra(s, dijkstra.Source("A"), dijkstra.WithReturnPath())
	require.NoError(t, err)
	require.Equal(t, 0.0, dist["A"])
	require.Equal(t, 2.0, dist["B"])
	require.Equal(t, 5.0, dist["D"])
	require.True(t, math.IsInf(dist["E"], 1))

	path, err := dijkstra.Path(prev, "A", "D")
	require.NoError(t, err)
	require.Equal(t, []string{"A", "B", "D"}, path)

	_, err = dijkstra.Path(prev, "A", "E")
	require.True(t, errors.Is(err, dijkstra.ErrNoPath))

	path, err = dijkstra.Path(prev, "A", "A")
	require.NoError(t, err)
	require.Equal(t, []string{"A"}, path)
}

func TestDijkstra_NoReturnPath(t *testing.T) {
	s := core.NewStore()
	s.AddEdge("A", "B", 1)
	_, prev, err := dijkstra.Dijkstra(s, dijkstra.Source("A"))
	require.NoError(t, err)
	require.Nil(t, prev)
}

func TestDijkstra_MaxDistance(t *testing.T) {
	s := core.NewStore()
	s.AddEdge("A", "B", 1)
	s.AddEdge("B", "C", 1)
	s.AddEdge("C", "D", 1)

	dist, _, err := dijkstra.Dijkstra(s, dijkstra.Source("A"), dijkstra.WithMaxDistance(2))
	require.NoError(t, err)
	require.Equal(t, 2.0, dist["C"])
	require.True(t, math.IsInf(dist["D"], 1))
}

func TestDijkstra_NegLogPicksMostProbable(t *testing.T) {
	s := core.NewStore()
	// direct 0.2 versus 0.8 × 0.5 = 0.4 through m
	s.AddEdge("s", "t", 0.2)
	s.AddEdge("s", "m", 0.8)
	s.AddEdge("m", "t", 0.5)

	dist, prev, err := dijkstra.Dijkstra(s,
		dijkstra.Source("s"),
		dijkstra.WithCost(dijkstra.NegLog),
		dijkstra.WithReturnPath(),
	)
	require.NoError(t, err)
	path, err := dijkstra.Path(prev, "s", "t")
	require.NoError(t, err)
	require.Equal(t, []string{"s", "m", "t"}, path)
	require.InDelta(t, 0.4, math.Exp(-dist["t"]), 1e-12)
}

func TestDijkstra_SelfLoop(t *testing.T) {
	s := core.NewStore()
	s.AddEdge("A", "A", 0)
	s.AddEdge("A", "B", 1)
	dist, _, err := dijkstra.Dijkstra(s, dijkstra.Source("A"))
	require.NoError(t, err)
	require.Equal(t, 0.0, dist["A"])
	require.Equal(t, 1.0, dist["B"])
}

package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/orthodraw/core"
)

func TestAddVertex_EmptyID(t *testing.T) {
	g := core.NewGraph()
	require.ErrorIs(t, g.AddVertex(""), core.ErrEmptyVertexID)
}

func TestAddVertex_Idempotent(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddVertex("a"))
	require.NoError(t, g.AddVertex("a"), "re-adding a vertex should be a no-op")
	require.Equal(t, 1, g.VertexCount())
}

func TestAddEdge_CreatesTwoArcs(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddVertex("a"))
	require.NoError(t, g.AddVertex("b"))
	require.NoError(t, g.AddEdge("a", "b"))

	ab, err := g.GetArc("a", "b")
	require.NoError(t, err)
	ba, err := g.GetArc("b", "a")
	require.NoError(t, err)
	require.Equal(t, "a", ab.Start)
	require.Equal(t, "b", ab.End)
	require.Equal(t, "b", ba.Start)
	require.Equal(t, "a", ba.End)

	edge, err := g.Edge("a", "b")
	require.NoError(t, err)
	require.Same(t, ba, edge.Other(ab))
	require.Same(t, ab, edge.Other(ba))
}

func TestAddEdge_SelfLoopRejected(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddVertex("a"))
	require.ErrorIs(t, g.AddEdge("a", "a"), core.ErrSelfLoop)
}

func TestAddEdge_DuplicateRejected(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddVertex("a"))
	require.NoError(t, g.AddVertex("b"))
	require.NoError(t, g.AddEdge("a", "b"))
	require.ErrorIs(t, g.AddEdge("b", "a"), core.ErrDuplicateEdge)
}

func TestAddEdge_DegreeExceeded(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddVertex("hub"))
	for i := 0; i < core.MaxDegree; i++ {
		leaf := string(rune('a' + i))
		require.NoError(t, g.AddVertex(leaf))
		require.NoError(t, g.AddEdge("hub", leaf), "spoke %d", i)
	}
	require.NoError(t, g.AddVertex("overflow"))
	require.ErrorIs(t, g.AddEdge("hub", "overflow"), core.ErrDegreeExceeded)
}

func TestVertices_StableInsertionOrder(t *testing.T) {
	g := core.NewGraph()
	ids := []string{"z", "a", "m"}
	for _, id := range ids {
		require.NoError(t, g.AddVertex(id))
	}
	require.Equal(t, ids, g.Vertices())
}

func TestNeighbors_Sorted(t *testing.T) {
	g := core.NewGraph()
	for _, id := range []string{"v", "c", "a", "b"} {
		require.NoError(t, g.AddVertex(id))
	}
	require.NoError(t, g.AddEdge("v", "c"))
	require.NoError(t, g.AddEdge("v", "a"))
	require.NoError(t, g.AddEdge("v", "b"))

	nbrs, err := g.Neighbors("v")
	require.NoError(t, err)
	require.Equal(t, []string{"a", "b", "c"}, nbrs)
}

func TestContract_MergesNeighborhoodAndDeduplicates(t *testing.T) {
	// Triangle a-b-c; contracting b into a should leave a simple edge a-c
	// (not a duplicate) and remove b entirely.
	g := core.NewGraph()
	for _, id := range []string{"a", "b", "c"} {
		require.NoError(t, g.AddVertex(id))
	}
	require.NoError(t, g.AddEdge("a", "b"))
	require.NoError(t, g.AddEdge("b", "c"))
	require.NoError(t, g.AddEdge("a", "c"))

	require.NoError(t, g.Contract("a", "b"))
	require.False(t, g.HasVertex("b"))
	require.True(t, g.HasEdge("a", "c"))
	require.Equal(t, 1, g.EdgeCount())

	deg, err := g.Degree("a")
	require.NoError(t, err)
	require.Equal(t, 1, deg)
}

func TestPosition_UnsetUntilSet(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddVertex("a"))

	_, ok := g.Position("a")
	require.False(t, ok, "Position should be unset before drawing stage")

	require.NoError(t, g.SetPosition("a", [3]int{3, 3, 3}))
	pos, ok := g.Position("a")
	require.True(t, ok)
	require.Equal(t, [3]int{3, 3, 3}, pos)
}

package drawing_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/orthodraw/core"
	"github.com/katalvlaran/orthodraw/drawing"
)

// DrawingSuite exercises Place, Route, and RemoveCrossings against small,
// hand-built graphs whose colors/orientations are set directly, without
// going through the ordering/roles/portassign stages.
type DrawingSuite struct {
	suite.Suite
}

func TestDrawingSuite(t *testing.T) {
	suite.Run(t, new(DrawingSuite))
}

func (s *DrawingSuite) TestPlaceErrors() {
	err := drawing.Place(nil, []string{"a"})
	require.ErrorIs(s.T(), err, drawing.ErrGraphNil)

	g := core.NewGraph()
	_ = g.AddVertex("a")
	err = drawing.Place(g, []string{"a", "b"})
	require.ErrorIs(s.T(), err, drawing.ErrOrderMismatch)
}

func (s *DrawingSuite) TestPlaceDiagonal() {
	g := core.NewGraph()
	for _, id := range []string{"a", "b", "c"} {
		_ = g.AddVertex(id)
	}

	require.NoError(s.T(), drawing.Place(g, []string{"a", "b", "c"}))

	want := map[string][3]int{
		"a": {3, 3, 3},
		"b": {6, 6, 6},
		"c": {9, 9, 9},
	}
	for id, exp := range want {
		got, ok := g.Position(id)
		require.True(s.T(), ok, "Position(%s) not set", id)
		require.Equal(s.T(), exp, got, "Position(%s)", id)
	}
}

func (s *DrawingSuite) TestPlaceMovementDisplacesOnlyItsAxis() {
	g := core.NewGraph()
	for _, id := range []string{"a", "b", "c"} {
		_ = g.AddVertex(id)
	}
	require.NoError(s.T(), g.AddEdge("a", "b"))

	arc, err := g.GetArc("a", "b")
	require.NoError(s.T(), err)
	arc.Movement = true
	arc.Color = 0

	require.NoError(s.T(), drawing.Place(g, []string{"a", "b", "c"}))

	// Axis 0 reorders to b, a, c (a moves to sit immediately after b); axes
	// 1 and 2 keep the original a, b, c order untouched.
	want := map[string][3]int{
		"a": {6, 3, 3},
		"b": {3, 6, 6},
		"c": {9, 9, 9},
	}
	for id, exp := range want {
		got, ok := g.Position(id)
		require.True(s.T(), ok, "Position(%s) not set", id)
		require.Equal(s.T(), exp, got, "Position(%s)", id)
	}
}

func (s *DrawingSuite) TestRouteNilGraph() {
	require.ErrorIs(s.T(), drawing.Route(nil), drawing.ErrGraphNil)
}

func (s *DrawingSuite) TestRouteCase1PerpendicularBothTowards() {
	g := core.NewGraph()
	_ = g.AddVertex("u")
	_ = g.AddVertex("v")
	require.NoError(s.T(), g.AddEdge("u", "v"))
	require.NoError(s.T(), g.SetPosition("u", [3]int{0, 0, 0}))
	require.NoError(s.T(), g.SetPosition("v", [3]int{3, 3, 0}))

	uv, _ := g.GetArc("u", "v")
	vu, _ := g.GetArc("v", "u")
	uv.Color, uv.Orientation = 0, 1
	vu.Color, vu.Orientation = 1, -1

	require.NoError(s.T(), drawing.Route(g))

	e, err := g.Edge("u", "v")
	require.NoError(s.T(), err)
	require.Len(s.T(), e.Route, 4)
	require.Equal(s.T(), [3]int{0, 0, 0}, e.Route[0])
	require.Equal(s.T(), [3]int{3, 3, 0}, e.Route[len(e.Route)-1])
	require.False(s.T(), uv.Anchor)
	require.False(s.T(), vu.Anchor)
}

func (s *DrawingSuite) TestRouteCase4NeitherTowards() {
	g := core.NewGraph()
	_ = g.AddVertex("u")
	_ = g.AddVertex("v")
	require.NoError(s.T(), g.AddEdge("u", "v"))
	require.NoError(s.T(), g.SetPosition("u", [3]int{0, 0, 0}))
	require.NoError(s.T(), g.SetPosition("v", [3]int{3, 3, 0}))

	uv, _ := g.GetArc("u", "v")
	vu, _ := g.GetArc("v", "u")
	// Orientation points away from the target on both sides.
	uv.Color, uv.Orientation = 0, -1
	vu.Color, vu.Orientation = 1, 1

	require.NoError(s.T(), drawing.Route(g))

	e, err := g.Edge("u", "v")
	require.NoError(s.T(), err)
	require.True(s.T(), uv.Anchor)
	require.True(s.T(), vu.Anchor)
	require.Equal(s.T(), [3]int{0, 0, 0}, e.Route[0])
	require.Equal(s.T(), [3]int{3, 3, 0}, e.Route[len(e.Route)-1])
}

func (s *DrawingSuite) TestRemoveCrossingsNilGraph() {
	require.ErrorIs(s.T(), drawing.RemoveCrossings(nil), drawing.ErrGraphNil)
}

func (s *DrawingSuite) TestRemoveCrossingsPathHasNoCrossingsToFix() {
	g := core.NewGraph()
	for _, id := range []string{"a", "b", "c"} {
		_ = g.AddVertex(id)
	}
	require.NoError(s.T(), g.AddEdge("a", "b"))
	require.NoError(s.T(), g.AddEdge("b", "c"))
	require.NoError(s.T(), drawing.Place(g, []string{"a", "b", "c"}))

	ab, _ := g.GetArc("a", "b")
	ba, _ := g.GetArc("b", "a")
	bc, _ := g.GetArc("b", "c")
	cb, _ := g.GetArc("c", "b")
	ab.Color, ab.Orientation = 0, 1
	ba.Color, ba.Orientation = 1, -1
	bc.Color, bc.Orientation = 2, 1
	cb.Color, cb.Orientation = 0, -1

	require.NoError(s.T(), drawing.Route(g))
	require.NoError(s.T(), drawing.RemoveCrossings(g))

	eAB, _ := g.Edge("a", "b")
	eBC, _ := g.Edge("b", "c")
	require.NotEmpty(s.T(), eAB.Route)
	require.NotEmpty(s.T(), eBC.Route)
}

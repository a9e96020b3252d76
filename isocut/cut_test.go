package isocut_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/marvel2010/ktcut/isocut"
	"github.com/marvel2010/ktcut/wgraph"
)

type CutSuite struct {
	suite.Suite
}

func TestCutSuite(t *testing.T) {
	suite.Run(t, new(CutSuite))
}

func set(ids ...string) map[string]struct{} {
	out := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		out[id] = struct{}{}
	}
	return out
}

// TestSpecFixture is the spec's isolating-cut unit test: graph on
// {1..6}, edges (1,2),(3,4),(4,5),(4,6) capacity 2 and (2,3) capacity
// 3. Min-isolating-cut from {1} against {5,6} must return source side
// {1,2,3}, weight 2.
func (s *CutSuite) TestSpecFixture() {
	g := wgraph.NewGraph()
	edges := []struct {
		u, v string
		c    float64
	}{
		{"1", "2", 2}, {"3", "4", 2}, {"4", "5", 2}, {"4", "6", 2}, {"2", "3", 3},
	}
	for _, e := range edges {
		require.NoError(s.T(), g.AddEdge(e.u, e.v, e.c))
	}

	sourceSide, weight, err := isocut.Cut(g, set("1"), set("5", "6"))
	require.NoError(s.T(), err)
	require.Equal(s.T(), 2.0, weight)
	require.Equal(s.T(), set("1", "2", "3"), sourceSide)
}

func (s *CutSuite) TestOverlappingSetsRejected() {
	g := wgraph.NewGraph()
	require.NoError(s.T(), g.AddEdge("a", "b", 1))
	_, _, err := isocut.Cut(g, set("a"), set("a"))
	require.ErrorIs(s.T(), err, isocut.ErrOverlappingCutSets)
}

func (s *CutSuite) TestEmptySourceReturnsZeroWeight() {
	g := wgraph.NewGraph()
	require.NoError(s.T(), g.AddEdge("a", "b", 1))
	sourceSide, weight, err := isocut.Cut(g, set(), set("b"))
	require.NoError(s.T(), err)
	require.Equal(s.T(), 0.0, weight)
	require.Empty(s.T(), sourceSide)
}

func (s *CutSuite) TestDisconnectedComponentsYieldZeroCut() {
	g := wgraph.NewGraph()
	require.NoError(s.T(), g.AddEdge("a", "b", 5))
	require.NoError(s.T(), g.AddVertex("c"))
	require.NoError(s.T(), g.AddVertex("d"))
	require.NoError(s.T(), g.AddEdge("c", "d", 3))

	sourceSide, weight, err := isocut.Cut(g, set("a"), set("c"))
	require.NoError(s.T(), err)
	require.Equal(s.T(), 0.0, weight)
	// a's component (minus c, which isn't in it anyway) is entirely on
	// the source side since no edge crosses to c's component.
	require.Contains(s.T(), sourceSide, "a")
	require.Contains(s.T(), sourceSide, "b")
	require.NotContains(s.T(), sourceSide, "c")
	require.NotContains(s.T(), sourceSide, "d")
}

// TestSourceMaximal checks the tie-break rule: a diamond a-b-d, a-c-d
// cut from {a} against {d} with equal-capacity parallel paths must put
// both b and c (tied nodes) on the source side, not split arbitrarily.
func (s *CutSuite) TestSourceMaximal() {
	g := wgraph.NewGraph()
	require.NoError(s.T(), g.AddEdge("a", "b", 1))
	require.NoError(s.T(), g.AddEdge("a", "c", 1))
	require.NoError(s.T(), g.AddEdge("b", "d", 1))
	require.NoError(s.T(), g.AddEdge("c", "d", 1))

	sourceSide, weight, err := isocut.Cut(g, set("a"), set("d"))
	require.NoError(s.T(), err)
	require.Equal(s.T(), 2.0, weight)
	require.Equal(s.T(), set("a", "b", "c"), sourceSide)
}

package search_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/marvel2010/ktcut/branch"
	"github.com/marvel2010/ktcut/search"
	"github.com/marvel2010/ktcut/wgraph"
)

type SearchSuite struct {
	suite.Suite
}

func TestSearchSuite(t *testing.T) {
	suite.Run(t, new(SearchSuite))
}

// buildT1 builds the spec §8 T1 fixture: 8 vertices, a 4-cycle 5-6-7-8-5 at
// capacity 2, and spokes (1,5),(2,6),(3,7),(4,8) at capacity 3. Terminals
// {1,2,3,4}; expected optimum cut_value 8.
func buildT1(t *testing.T) *wgraph.Graph {
	t.Helper()
	g := wgraph.NewGraph()
	cycle := []struct{ u, v string }{
		{"5", "6"}, {"6", "7"}, {"7", "8"}, {"8", "5"},
	}
	for _, e := range cycle {
		require.NoError(t, g.AddEdge(e.u, e.v, 2))
	}
	spokes := []struct{ u, v string }{
		{"1", "5"}, {"2", "6"}, {"3", "7"}, {"4", "8"},
	}
	for _, e := range spokes {
		require.NoError(t, g.AddEdge(e.u, e.v, 3))
	}
	return g
}

func (s *SearchSuite) runT1(selection search.SelectionPolicy) *search.Result {
	g := buildT1(s.T())
	terminals := []string{"1", "2", "3", "4"}

	rootGraph, err := branch.Root(g, terminals)
	require.NoError(s.T(), err)

	tree := &search.Tree{
		RootGraph: rootGraph,
		Terminals: terminals,
		Selection: selection,
	}
	result, err := tree.Run(context.Background())
	require.NoError(s.T(), err)
	return result
}

func (s *SearchSuite) TestT1OptimalCutValueHighestWeightedDegree() {
	result := s.runT1(search.HighestWeightedDegree{})
	require.Equal(s.T(), search.StatusOptimal, result.Status)
	require.InDelta(s.T(), 8.0, result.CutValue, 1e-9)
	s.assertPartitionCorrectness(result, []string{"1", "2", "3", "4", "5", "6", "7", "8"}, []string{"1", "2", "3", "4"})
}

func (s *SearchSuite) TestT1OptimalCutValueLowestVertexID() {
	result := s.runT1(search.LowestVertexID{})
	require.Equal(s.T(), search.StatusOptimal, result.Status)
	require.InDelta(s.T(), 8.0, result.CutValue, 1e-9)
}

func (s *SearchSuite) TestRunRejectsFewerThanTwoTerminals() {
	g := wgraph.NewGraph()
	require.NoError(s.T(), g.AddVertex("a"))
	tree := &search.Tree{RootGraph: g, Terminals: []string{"a"}, Selection: search.LowestVertexID{}}
	_, err := tree.Run(context.Background())
	require.ErrorIs(s.T(), err, search.ErrNoTerminals)
}

func (s *SearchSuite) TestRunReturnsNoFeasibleSolutionOnImmediateCancellation() {
	g := buildT1(s.T())
	terminals := []string{"1", "2", "3", "4"}
	rootGraph, err := branch.Root(g, terminals)
	require.NoError(s.T(), err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	tree := &search.Tree{RootGraph: rootGraph, Terminals: terminals, Selection: search.LowestVertexID{}}
	_, err = tree.Run(ctx)
	require.ErrorIs(s.T(), err, search.ErrNoFeasibleSolutionYet)
}

func (s *SearchSuite) TestReportingRecordsOneStepPerBranchedNode() {
	g := buildT1(s.T())
	terminals := []string{"1", "2", "3", "4"}
	rootGraph, err := branch.Root(g, terminals)
	require.NoError(s.T(), err)

	tree := &search.Tree{
		RootGraph: rootGraph,
		Terminals: terminals,
		Selection: search.HighestWeightedDegree{},
		Reporting: true,
	}
	result, err := tree.Run(context.Background())
	require.NoError(s.T(), err)
	for _, step := range result.Steps {
		require.GreaterOrEqual(s.T(), step.UpperBound, step.LowerBound)
	}
}

// assertPartitionCorrectness checks invariant 1 from spec §8: every
// original vertex appears in exactly one terminal's partition, and every
// terminal belongs to its own partition.
func (s *SearchSuite) assertPartitionCorrectness(result *search.Result, allVertices, terminals []string) {
	seen := make(map[string]string)
	for term, set := range result.Partition {
		require.Contains(s.T(), set, term)
		for v := range set {
			if owner, ok := seen[v]; ok {
				s.T().Fatalf("vertex %q assigned to both %q and %q", v, owner, term)
			}
			seen[v] = term
		}
	}
	for _, v := range allVertices {
		require.Contains(s.T(), seen, v)
	}
}

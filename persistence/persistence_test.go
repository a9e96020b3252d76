package persistence_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/marvel2010/ktcut/persistence"
	"github.com/marvel2010/ktcut/wgraph"
)

type PersistenceSuite struct {
	suite.Suite
}

func TestPersistenceSuite(t *testing.T) {
	suite.Run(t, new(PersistenceSuite))
}

// buildT2 mirrors the spec §8 T2 fixture: 6 vertices {1,2,3,12,13,23},
// LP relaxation optimum 7.5 against an integer optimum of 8.
func (s *PersistenceSuite) buildT2() *wgraph.Graph {
	g := wgraph.NewGraph()
	two := []struct{ u, v string }{
		{"1", "12"}, {"1", "13"}, {"2", "12"}, {"2", "23"}, {"3", "13"}, {"3", "23"},
	}
	for _, e := range two {
		require.NoError(s.T(), g.AddEdge(e.u, e.v, 2))
	}
	one := []struct{ u, v string }{
		{"12", "13"}, {"13", "23"}, {"12", "23"},
	}
	for _, e := range one {
		require.NoError(s.T(), g.AddEdge(e.u, e.v, 1))
	}
	return g
}

func (s *PersistenceSuite) TestModeNoneSkipsSolverAndReturnsFullSets() {
	g := s.buildT2()
	terminals := []string{"1", "2", "3"}

	result, err := persistence.Solve(g, terminals, persistence.ModeNone)
	require.NoError(s.T(), err)

	for _, v := range g.Vertices() {
		require.ElementsMatch(s.T(), terminals, result[v])
	}
}

func (s *PersistenceSuite) TestModeWeakFixesEachTerminalToItself() {
	g := s.buildT2()
	terminals := []string{"1", "2", "3"}

	result, err := persistence.Solve(g, terminals, persistence.ModeWeak)
	require.NoError(s.T(), err)

	for _, t := range terminals {
		require.Equal(s.T(), []string{t}, result[t])
	}
}

func (s *PersistenceSuite) TestModeStrongAlwaysIncludesATerminalsOwnAssignment() {
	g := s.buildT2()
	terminals := []string{"1", "2", "3"}

	result, err := persistence.Solve(g, terminals, persistence.ModeStrong)
	require.NoError(s.T(), err)

	for _, t := range terminals {
		require.Contains(s.T(), result[t], t)
	}
}

func (s *PersistenceSuite) TestModeStrongKeepsEveryWeakFixedTerminal() {
	g := s.buildT2()
	terminals := []string{"1", "2", "3"}

	weak, err := persistence.Solve(g, terminals, persistence.ModeWeak)
	require.NoError(s.T(), err)
	strong, err := persistence.Solve(g, terminals, persistence.ModeStrong)
	require.NoError(s.T(), err)

	for v, weakSet := range weak {
		if len(weakSet) == 1 {
			require.Contains(s.T(), strong[v], weakSet[0])
		}
	}
}

package branch

import (
	"fmt"

	"github.com/marvel2010/ktcut/isocut"
	"github.com/marvel2010/ktcut/wgraph"
)

// Root runs the k initial per-terminal isolating cuts described in spec
// §4.4: for each terminal t, in input order, it computes the minimum
// isolating cut from {t} against the other terminals and contracts the
// returned source side into t. The result establishes the invariant
// that every node built from it already has each terminal absorbing a
// maximal provably-assigned set (Dahlhaus-style isolation).
//
// Root does not mutate g; it returns a fresh, independently owned
// graph.
func Root(g *wgraph.Graph, terminals []string) (*wgraph.Graph, error) {
	working := g.Clone()

	for _, t := range terminals {
		sinks := make(map[string]struct{}, len(terminals)-1)
		for _, other := range terminals {
			if other != t {
				sinks[other] = struct{}{}
			}
		}

		sourceSide, _, err := isocut.Cut(working, map[string]struct{}{t: {}}, sinks)
		if err != nil {
			return nil, fmt.Errorf("branch: root isolating cut for terminal %q: %w", t, err)
		}
		if _, ok := sourceSide[t]; !ok {
			return nil, fmt.Errorf("%w: root cut for terminal %q does not contain it", ErrInvariantViolation, t)
		}
		delete(sourceSide, t)

		if err := working.ContractMany(t, sourceSide); err != nil {
			return nil, fmt.Errorf("branch: absorbing root isolating-cut source side into %q: %w", t, err)
		}
	}

	return working, nil
}

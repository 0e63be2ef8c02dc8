/*
 * reachdb
 *
 * Copyright 2026 The reachdb authors.
 *
 * This Source Code Form is subject to the terms of the Mozilla Public
 * License, v. 2.0. If a copy of the MPL was not distributed with this
 * file, You can obtain one at http://mozilla.org/MPL/2.0/.
 */

/*
Package walk implements the random-walk algorithm layered on the graph
engine's public traversal primitives.

Grounded on algorithms/random_walk.rs's split between
traverse_relationships (collect every relationship incident to a node)
and pick_random_relationship (choose uniformly among them): here,
CandidateEdges plays the former role - narrowed to outgoing edges only,
since a walk only ever steps along outgoing edges - and RandomWalk plays
the latter, using math/rand/v2's package-level generator in place of
rand::thread_rng(), both being an ambient, auto-seeded source with no
seeding contract exposed to the caller.
*/
package walk

import (
	"math/rand/v2"

	"devt.de/krotik/reachdb/graph"
)

/*
CandidateEdges returns the outgoing edge ids of node - the set RandomWalk
picks uniformly from at each step. Factored out of RandomWalk so a
future weighted-walk variant can reuse the same collection step.
*/
func CandidateEdges(e *graph.Engine, node uint64) ([]uint64, error) {
	return e.Outgoing(node)
}

/*
RandomWalk performs up to steps transitions from start, uniformly
selecting at each step one edge from the current node's outgoing set.
It returns the edge ids traversed, in order. If the current node has no
outgoing edges, the walk terminates early and returns what it has
produced so far - it never errors on a dead end.
*/
func RandomWalk(e *graph.Engine, start uint64, steps int) ([]uint64, error) {
	path := make([]uint64, 0, steps)
	current := start

	for i := 0; i < steps; i++ {
		candidates, err := CandidateEdges(e, current)
		if err != nil {
			return path, err
		}
		if len(candidates) == 0 {
			break
		}

		edgeID := candidates[rand.IntN(len(candidates))]
		path = append(path, edgeID)

		next, err := e.ConnectedNode(current, edgeID)
		if err != nil {
			return path, err
		}
		current = next
	}

	return path, nil
}

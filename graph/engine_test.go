/*
 * reachdb
 *
 * Copyright 2026 The reachdb authors.
 *
 * This Source Code Form is subject to the terms of the Mozilla Public
 * License, v. 2.0. If a copy of the MPL was not distributed with this
 * file, You can obtain one at http://mozilla.org/MPL/2.0/.
 */

package graph

import (
	"math/rand/v2"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"devt.de/krotik/reachdb/record"
	"devt.de/krotik/reachdb/reltype"
)

func openTestEngine(t *testing.T, labels ...string) *Engine {
	t.Helper()

	if len(labels) == 0 {
		labels = []string{"IS-A"}
	}

	e, err := Open(filepath.Join(t.TempDir(), "db"), 4096, 4096, reltype.NewRegistry(labels...))
	require.NoError(t, err)
	t.Cleanup(func() { e.Close() })

	return e
}

func TestInsertAndReadBack(t *testing.T) {
	e := openTestEngine(t, "IS-A")

	_, err := e.AddEdge("cat", "mammal", "IS-A")
	require.NoError(t, err)
	_, err = e.AddEdge("mammal", "animal", "IS-A")
	require.NoError(t, err)

	stats := e.Stats()
	require.Equal(t, uint64(3), stats.NodeCount)
	require.Equal(t, uint64(2), stats.RelationshipCount)

	catID, err := e.intern("cat")
	require.NoError(t, err)
	require.Equal(t, uint64(0), catID)

	mammalID, err := e.intern("mammal")
	require.NoError(t, err)
	require.Equal(t, uint64(1), mammalID)

	animalID, err := e.intern("animal")
	require.NoError(t, err)
	require.Equal(t, uint64(2), animalID)

	out, err := e.Outgoing(catID)
	require.NoError(t, err)
	require.Equal(t, []uint64{0}, out)

	out, err = e.Outgoing(mammalID)
	require.NoError(t, err)
	require.Equal(t, []uint64{1}, out)

	out, err = e.Outgoing(animalID)
	require.NoError(t, err)
	require.Empty(t, out)

	connected, err := e.ConnectedNode(catID, 0)
	require.NoError(t, err)
	require.Equal(t, mammalID, connected)

	name, err := e.Property(0)
	require.NoError(t, err)
	require.Equal(t, "cat", name)
}

func TestDuplicateInsertIsNoOp(t *testing.T) {
	e := openTestEngine(t, "IS-A")

	_, err := e.AddEdge("cat", "mammal", "IS-A")
	require.NoError(t, err)
	_, err = e.AddEdge("mammal", "animal", "IS-A")
	require.NoError(t, err)

	result, err := e.AddEdge("cat", "mammal", "IS-A")
	require.NoError(t, err)
	require.Equal(t, DuplicateSkipped, result)
	require.Equal(t, uint64(2), e.Stats().RelationshipCount)
}

func TestAdjacencyOfMultiEdgeNode(t *testing.T) {
	e := openTestEngine(t, "R")

	_, err := e.AddEdge("a", "b", "R")
	require.NoError(t, err)
	_, err = e.AddEdge("c", "a", "R")
	require.NoError(t, err)
	_, err = e.AddEdge("a", "d", "R")
	require.NoError(t, err)

	a, err := e.intern("a")
	require.NoError(t, err)

	incident, err := e.Incident(a)
	require.NoError(t, err)
	require.Len(t, incident, 3)
	require.ElementsMatch(t, []uint64{0, 1, 2}, incident)

	outgoing, err := e.Outgoing(a)
	require.NoError(t, err)
	require.Len(t, outgoing, 2)
	require.ElementsMatch(t, []uint64{0, 2}, outgoing)

	incoming, err := e.Incoming(a)
	require.NoError(t, err)
	require.Equal(t, []uint64{1}, incoming)
}

func TestUnknownLabelIsSkipped(t *testing.T) {
	e := openTestEngine(t, "R")

	result, err := e.AddEdge("x", "y", "Q")
	require.NoError(t, err)
	require.Equal(t, UnknownLabelSkipped, result)

	stats := e.Stats()
	require.Equal(t, uint64(0), stats.NodeCount)
	require.Equal(t, uint64(0), stats.RelationshipCount)
}

func TestPersistenceAcrossOpenClose(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "db")

	e1, err := Open(dir, 4096, 4096, reltype.NewRegistry("IS-A"))
	require.NoError(t, err)

	_, err = e1.AddEdge("cat", "mammal", "IS-A")
	require.NoError(t, err)
	_, err = e1.AddEdge("mammal", "animal", "IS-A")
	require.NoError(t, err)

	firstEdge, err := e1.Edge(0)
	require.NoError(t, err)

	require.NoError(t, e1.Close())

	e2, err := Open(dir, 4096, 4096, reltype.NewRegistry("IS-A"))
	require.NoError(t, err)
	defer e2.Close()

	catID, err := e2.intern("cat")
	require.NoError(t, err)
	require.Equal(t, uint64(0), catID)

	again, err := e2.Edge(0)
	require.NoError(t, err)
	require.Equal(t, firstEdge, again)

	stats := e2.Stats()
	require.Equal(t, uint64(3), stats.NodeCount)
	require.Equal(t, uint64(2), stats.RelationshipCount)
}

func TestSelfLoopHandling(t *testing.T) {
	e := openTestEngine(t, "R")

	_, err := e.AddEdge("a", "a", "R")
	require.NoError(t, err)

	a, err := e.intern("a")
	require.NoError(t, err)

	out, err := e.Outgoing(a)
	require.NoError(t, err)
	require.Equal(t, []uint64{0}, out)

	in, err := e.Incoming(a)
	require.NoError(t, err)
	require.Equal(t, []uint64{0}, in)

	connected, err := e.ConnectedNode(a, 0)
	require.NoError(t, err)
	require.Equal(t, a, connected)
}

func TestNodeByNameMissIsNotInterning(t *testing.T) {
	e := openTestEngine(t, "R")

	_, ok, err := e.NodeByName("ghost")
	require.NoError(t, err)
	require.False(t, ok)
	require.Equal(t, uint64(0), e.Stats().NodeCount)

	_, err = e.AddEdge("ghost", "other", "R")
	require.NoError(t, err)

	n, ok, err := e.NodeByName("ghost")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, uint64(0), n.ID)
}

func TestIDsAreDenseFromZero(t *testing.T) {
	e := openTestEngine(t, "R")

	names := []string{"a", "b", "c", "d"}
	for i, n := range names {
		id, err := e.intern(n)
		require.NoError(t, err)
		require.Equal(t, uint64(i), id)
	}
}

func TestInterningIsIdempotent(t *testing.T) {
	e := openTestEngine(t, "R")

	first, err := e.intern("repeat")
	require.NoError(t, err)

	for i := 0; i < 5; i++ {
		again, err := e.intern("repeat")
		require.NoError(t, err)
		require.Equal(t, first, again)
	}

	require.Equal(t, uint64(1), e.Stats().NodeCount)
}

func TestEdgeRecordRoundTripsThroughEngine(t *testing.T) {
	e := openTestEngine(t, "R")

	_, err := e.AddEdge("a", "b", "R")
	require.NoError(t, err)

	edge, err := e.Edge(0)
	require.NoError(t, err)

	a, _ := e.intern("a")
	b, _ := e.intern("b")

	require.Equal(t, a, edge.SourceID)
	require.Equal(t, b, edge.TargetID)
	require.Equal(t, record.NullID, edge.NextSrc)
	require.Equal(t, record.NullID, edge.PrevSrc)
}

/*
TestListSoundnessOverRandomEdges is a property-style check of invariant
4 (list soundness): it inserts a randomly generated batch of edges over
a small, fixed set of node names - so every node is, across the batch,
a source in some edges and a target in others, and a head at some
points and displaced from the head at others - then asserts for every
node that Incident visits exactly the edges actually touching it, each
once, and nothing else.
*/
func TestListSoundnessOverRandomEdges(t *testing.T) {
	e := openTestEngine(t, "R")

	names := []string{"n0", "n1", "n2", "n3", "n4", "n5"}

	type want struct {
		edgeID   uint64
		srcID    uint64
		tgtID    uint64
		inserted bool
	}

	var edges []want
	for i := 0; i < 200; i++ {
		src := names[rand.IntN(len(names))]
		tgt := names[rand.IntN(len(names))]

		result, err := e.AddEdge(src, tgt, "R")
		require.NoError(t, err)

		if result != Inserted {
			continue
		}

		srcID, err := e.intern(src)
		require.NoError(t, err)
		tgtID, err := e.intern(tgt)
		require.NoError(t, err)

		edges = append(edges, want{edgeID: uint64(len(edges)), srcID: srcID, tgtID: tgtID, inserted: true})
	}

	for _, name := range names {
		node, ok, err := e.NodeByName(name)
		require.NoError(t, err)
		if !ok {
			continue
		}

		var expected []uint64
		for _, w := range edges {
			if w.srcID == node.ID || w.tgtID == node.ID {
				expected = append(expected, w.edgeID)
			}
		}

		incident, err := e.Incident(node.ID)
		require.NoError(t, err)

		require.ElementsMatch(t, expected, incident, "incident(%s) must visit exactly the edges touching it, each once, and no others", name)
	}
}

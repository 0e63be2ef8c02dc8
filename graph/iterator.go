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

import "devt.de/krotik/reachdb/record"

/*
AdjacencyEntry pairs an edge id with its decoded record, as yielded by
an AdjacencyIterator.
*/
type AdjacencyEntry struct {
	EdgeID uint64
	Edge   record.EdgeRecord
}

/*
AdjacencyIterator yields every edge incident to a node exactly once.

It implements the eliasdb HasNext/Next/LastError iterator shape (see
graph/iterator.go's NodeKeyIterator), generalized from walking an HTree
bucket chain to walking a node's doubly-linked incident-edge list.

Construction eagerly walks both directions from the start edge: backward
along the prev links to the list tail (phase 1, yielding the start edge
itself first), then forward along the next links toward the list head
(phase 2, which never re-yields the start edge). The two walks are
concatenated into a slice once up front, rather than kept as a stateful
two-phase cursor with a direction flag - an equivalent formulation the
spec allows, and one that fits Go's range-over-slice idiom better than a
boolean-guarded cursor. Every edge incident to the node is visited
exactly once regardless of where in the list start-edge-id falls.
*/
type AdjacencyIterator struct {
	entries   []AdjacencyEntry
	pos       int
	LastError error
}

/*
newAdjacencyIterator builds an iterator over every edge incident to
nodeID, starting from startEdgeID (typically the node's FirstEdgeID).
If startEdgeID is record.NullID, the iterator is immediately empty.
*/
func newAdjacencyIterator(nodeID uint64, startEdgeID uint64, readEdge func(uint64) (record.EdgeRecord, error)) *AdjacencyIterator {
	it := &AdjacencyIterator{}

	if startEdgeID == record.NullID {
		return it
	}

	// Phase 1 ("backward"): yield the start edge, then walk its prev
	// links down to the tail.
	var entries []AdjacencyEntry
	cur := startEdgeID
	for cur != record.NullID {
		e, err := readEdge(cur)
		if err != nil {
			it.LastError = err
			return it
		}

		entries = append(entries, AdjacencyEntry{EdgeID: cur, Edge: e})

		role := record.RoleOf(e, nodeID)
		cur = e.Prev(role)
	}

	// Phase 2 ("forward"): from the start edge, walk its next links
	// toward the head - these are the edges spliced in front of start
	// after it was inserted, which phase 1 never reaches. The start
	// edge itself is never re-yielded here.
	startEdge := entries[0].Edge
	cur = startEdge.Next(record.RoleOf(startEdge, nodeID))
	for cur != record.NullID {
		e, err := readEdge(cur)
		if err != nil {
			it.LastError = err
			break
		}

		entries = append(entries, AdjacencyEntry{EdgeID: cur, Edge: e})

		role := record.RoleOf(e, nodeID)
		cur = e.Next(role)
	}

	it.entries = entries

	return it
}

/*
HasNext returns whether a further call to Next will yield an entry.
*/
func (it *AdjacencyIterator) HasNext() bool {
	return it.pos < len(it.entries)
}

/*
Next returns the next adjacency entry. Callers must check HasNext
first; calling Next past the end returns the zero value.
*/
func (it *AdjacencyIterator) Next() AdjacencyEntry {
	if !it.HasNext() {
		return AdjacencyEntry{}
	}

	e := it.entries[it.pos]
	it.pos++
	return e
}

/*
Error returns the last encountered error, if iteration stopped early
because a read failed.
*/
func (it *AdjacencyIterator) Error() error {
	return it.LastError
}

/*
Collect drains the iterator into a slice of edge ids.
*/
func (it *AdjacencyIterator) Collect() ([]uint64, error) {
	ids := make([]uint64, 0, len(it.entries)-it.pos)
	for it.HasNext() {
		ids = append(ids, it.Next().EdgeID)
	}
	return ids, it.Error()
}

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
	"github.com/rs/zerolog/log"

	"devt.de/krotik/reachdb/dberrors"
	"devt.de/krotik/reachdb/record"
)

/*
AddEdge resolves relation-label through the engine's TypeMap first; on
an unrecognized label nothing is interned and AddEdge returns
UnknownLabelSkipped without touching node-count (see the Open Question
1 decision in the design notes). Otherwise it interns src-name and
tgt-name (allocating node ids/records if new) and - unless the edge
already exists - splices a new edge record at the head of both
endpoints' incident-edge lists.

A duplicate (source, target, type) triple is not an error either: it is
reported as DuplicateSkipped.
*/
func (e *Engine) AddEdge(srcName, tgtName, relationLabel string) (AddEdgeResult, error) {
	if err := e.checkReady("graph.AddEdge"); err != nil {
		return 0, err
	}

	typeID, ok := e.types.TypeOf(relationLabel)
	if !ok {
		log.Warn().Str("label", relationLabel).Msg("unknown relation label, edge skipped")
		return UnknownLabelSkipped, nil
	}

	srcID, err := e.intern(srcName)
	if err != nil {
		return 0, err
	}
	tgtID, err := e.intern(tgtName)
	if err != nil {
		return 0, err
	}

	exists, err := e.edgeExists(srcID, tgtID, typeID)
	if err != nil {
		return 0, err
	}
	if exists {
		log.Debug().Uint64("src", srcID).Uint64("tgt", tgtID).Uint8("type", typeID).Msg("duplicate edge, skipped")
		return DuplicateSkipped, nil
	}

	if err := e.splice(srcID, tgtID, typeID); err != nil {
		return 0, err
	}

	return Inserted, nil
}

/*
Edge reads an edge record by id, read-through to the mapped edge file.
*/
func (e *Engine) Edge(edgeID uint64) (record.EdgeRecord, error) {
	if err := e.checkReady("graph.Edge"); err != nil {
		return record.EdgeRecord{}, err
	}
	return e.readEdge(edgeID)
}

func (e *Engine) readEdge(edgeID uint64) (record.EdgeRecord, error) {
	buf, err := e.edges.Slice(record.EdgeOffset(edgeID), record.EdgeRecordSize)
	if err != nil {
		return record.EdgeRecord{}, dberrors.New(dberrors.ErrNotFound, "graph.readEdge", err.Error())
	}

	r, ok := record.DecodeEdgeRecord(buf)
	if !ok {
		return record.EdgeRecord{}, dberrors.New(dberrors.ErrCodec, "graph.readEdge", "record did not decode")
	}

	return r, nil
}

func (e *Engine) writeEdge(edgeID uint64, r record.EdgeRecord) error {
	if err := e.edges.EnsureCapacity(record.EdgeOffset(edgeID), record.EdgeRecordSize); err != nil {
		return err
	}

	buf, err := e.edges.Slice(record.EdgeOffset(edgeID), record.EdgeRecordSize)
	if err != nil {
		return dberrors.New(dberrors.ErrIo, "graph.writeEdge", err.Error())
	}

	copy(buf, r.Encode())

	return nil
}

/*
edgeExists scans the incident-edge list of srcID for an edge
matching (srcID, tgtID, typeID). Cost is O(degree(srcID)).
*/
func (e *Engine) edgeExists(srcID, tgtID uint64, typeID uint8) (bool, error) {
	srcNode, err := e.readNode(srcID)
	if err != nil {
		return false, err
	}

	it := newAdjacencyIterator(srcID, srcNode.FirstEdgeID, e.readEdge)
	for it.HasNext() {
		entry := it.Next()
		if entry.Edge.SourceID == srcID && entry.Edge.TargetID == tgtID && entry.Edge.TypeID == typeID {
			return true, nil
		}
	}

	return false, it.Error()
}

/*
splice allocates a new edge id, head-inserts it into both endpoints'
incident-edge lists, and writes the new edge record. For each endpoint
role, if the endpoint's current head is not NULL, that old head's
next link (under its own role at the endpoint) is rewritten to point at
the new edge, and the new edge's prev link points at the old head, before the
endpoint's FirstEdgeID is updated to the new edge - maintaining the
head-insertion invariant described in the data model.
*/
func (e *Engine) splice(srcID, tgtID uint64, typeID uint8) error {
	newID := e.meta.RelationshipCount

	prevAtSrc, err := e.linkOldHead(srcID, newID, record.RoleSource)
	if err != nil {
		return err
	}
	prevAtTgt, err := e.linkOldHead(tgtID, newID, record.RoleTarget)
	if err != nil {
		return err
	}

	newEdge := record.EdgeRecord{
		SourceID:    srcID,
		TargetID:    tgtID,
		TypeID:      typeID,
		FirstPropID: record.NullID,
		NextSrc:     record.NullID,
		PrevSrc:     prevAtSrc,
		NextTgt:     record.NullID,
		PrevTgt:     prevAtTgt,
	}

	if err := e.writeEdge(newID, newEdge); err != nil {
		return err
	}

	e.meta.RelationshipCount++

	return nil
}

/*
linkOldHead rewires the old head of endpointID's incident-edge list (if
any) to point its next link at newEdgeID, then makes newEdgeID
the endpoint's new FirstEdgeID. Returns the old head id (NULL if the list
was empty), which becomes the new edge's prev-under-role link.

The old head's own role at endpointID is not necessarily role: role is
the new edge's role at endpointID, but the old head edge may occupy the
other role at the same endpoint (e.g. endpointID was the target of the
old head but is the source of the new edge). The link rewritten on the
old head must always be the one under its own role at endpointID.
*/
func (e *Engine) linkOldHead(endpointID, newEdgeID uint64, role record.Role) (uint64, error) {
	node, err := e.readNode(endpointID)
	if err != nil {
		return 0, err
	}

	oldHead := node.FirstEdgeID

	if oldHead != record.NullID {
		head, err := e.readEdge(oldHead)
		if err != nil {
			return 0, err
		}
		headRole := record.RoleOf(head, endpointID)
		head.SetNext(headRole, newEdgeID)
		if err := e.writeEdge(oldHead, head); err != nil {
			return 0, err
		}
	}

	node.FirstEdgeID = newEdgeID
	if err := e.writeNode(node); err != nil {
		return 0, err
	}

	return oldHead, nil
}

/*
Incident returns every edge id touching nodeID, in the linked-list order
of the two-phase adjacency traversal.
*/
func (e *Engine) Incident(nodeID uint64) ([]uint64, error) {
	if err := e.checkReady("graph.Incident"); err != nil {
		return nil, err
	}

	node, err := e.readNode(nodeID)
	if err != nil {
		return nil, err
	}

	it := newAdjacencyIterator(nodeID, node.FirstEdgeID, e.readEdge)
	return it.Collect()
}

/*
Outgoing returns the subset of nodeID's incident edges where
source-id == nodeID.
*/
func (e *Engine) Outgoing(nodeID uint64) ([]uint64, error) {
	return e.filteredIncident(nodeID, func(edge record.EdgeRecord) bool {
		return edge.SourceID == nodeID
	})
}

/*
Incoming returns the subset of nodeID's incident edges where
target-id == nodeID.
*/
func (e *Engine) Incoming(nodeID uint64) ([]uint64, error) {
	return e.filteredIncident(nodeID, func(edge record.EdgeRecord) bool {
		return edge.TargetID == nodeID
	})
}

func (e *Engine) filteredIncident(nodeID uint64, keep func(record.EdgeRecord) bool) ([]uint64, error) {
	if err := e.checkReady("graph.filteredIncident"); err != nil {
		return nil, err
	}

	node, err := e.readNode(nodeID)
	if err != nil {
		return nil, err
	}

	it := newAdjacencyIterator(nodeID, node.FirstEdgeID, e.readEdge)

	var ids []uint64
	for it.HasNext() {
		entry := it.Next()
		if keep(entry.Edge) {
			ids = append(ids, entry.EdgeID)
		}
	}

	return ids, it.Error()
}

/*
ConnectedNode returns the endpoint of edgeID that is not nodeID. If the
edge is a self-loop, returns nodeID.
*/
func (e *Engine) ConnectedNode(nodeID, edgeID uint64) (uint64, error) {
	if err := e.checkReady("graph.ConnectedNode"); err != nil {
		return 0, err
	}

	edge, err := e.readEdge(edgeID)
	if err != nil {
		return 0, err
	}

	if edge.SourceID == nodeID {
		return edge.TargetID, nil
	}

	return edge.SourceID, nil
}

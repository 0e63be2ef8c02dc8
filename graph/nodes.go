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
	"devt.de/krotik/reachdb/dberrors"
	"devt.de/krotik/reachdb/record"
)

/*
Node reads a node record by id, read-through to the mapped node file.
*/
func (e *Engine) Node(nodeID uint64) (record.NodeRecord, error) {
	if err := e.checkReady("graph.Node"); err != nil {
		return record.NodeRecord{}, err
	}
	return e.readNode(nodeID)
}

func (e *Engine) readNode(nodeID uint64) (record.NodeRecord, error) {
	buf, err := e.nodes.Slice(record.NodeOffset(nodeID), record.NodeRecordSize)
	if err != nil {
		return record.NodeRecord{}, dberrors.New(dberrors.ErrNotFound, "graph.readNode", err.Error())
	}

	n, ok := record.DecodeNodeRecord(buf)
	if !ok {
		return record.NodeRecord{}, dberrors.New(dberrors.ErrCodec, "graph.readNode", "record did not decode")
	}

	return n, nil
}

func (e *Engine) writeNode(n record.NodeRecord) error {
	if err := e.nodes.EnsureCapacity(record.NodeOffset(n.ID), record.NodeRecordSize); err != nil {
		return err
	}

	buf, err := e.nodes.Slice(record.NodeOffset(n.ID), record.NodeRecordSize)
	if err != nil {
		return dberrors.New(dberrors.ErrIo, "graph.writeNode", err.Error())
	}

	copy(buf, n.Encode())

	return nil
}

/*
NodeByName looks up the node interned for name without interning it on
a miss - unlike AddEdge's internal intern step, this is a read-only
query for callers that want to check whether a name has been seen
before paying an insert.
*/
func (e *Engine) NodeByName(name string) (record.NodeRecord, bool, error) {
	if err := e.checkReady("graph.NodeByName"); err != nil {
		return record.NodeRecord{}, false, err
	}

	id, ok := e.names.Get(name)
	if !ok {
		return record.NodeRecord{}, false, nil
	}

	n, err := e.readNode(id)
	if err != nil {
		return record.NodeRecord{}, false, err
	}

	return n, true, nil
}

/*
intern returns the node-id for name, creating a fresh node record (and a
matching property entry) if name has not been seen before. On creation,
both interning stores are flushed immediately so the name->id mapping
and the id->name reverse lookup never diverge, matching the invariant
that the engine maintains them in lockstep.
*/
func (e *Engine) intern(name string) (uint64, error) {
	if id, ok := e.names.Get(name); ok {
		return id, nil
	}

	newNodeID := e.meta.NodeCount
	newPropID := e.meta.PropertyCount

	e.names.Put(name, newNodeID)
	e.props.Put(newPropID, name)

	if err := e.names.Flush(); err != nil {
		return 0, err
	}
	if err := e.props.Flush(); err != nil {
		return 0, err
	}

	n := record.NewNodeRecord(newNodeID, newPropID)
	if err := e.writeNode(n); err != nil {
		return 0, err
	}

	e.meta.NodeCount++
	e.meta.PropertyCount++

	return newNodeID, nil
}

/*
Property reverse-looks-up the display name for propertyID. Fails with
dberrors.ErrNotFound if absent.
*/
func (e *Engine) Property(propertyID uint64) (string, error) {
	if err := e.checkReady("graph.Property"); err != nil {
		return "", err
	}

	name, ok := e.props.Get(propertyID)
	if !ok {
		return "", dberrors.New(dberrors.ErrNotFound, "graph.Property", "unknown property id")
	}

	return name, nil
}

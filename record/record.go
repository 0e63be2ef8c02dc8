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
Package record defines the fixed-size, self-describing on-disk layout of
nodes and edges and the codec that converts them to and from raw bytes.

Field placement is hand-packed big-endian, one fixed-width integer after
another, the way eliasdb's storage/file.Record places uint64/uint32 fields
at fixed byte offsets in a shared buffer. Records here are values: a
caller reads one out, mutates the copy, and writes it back - no record is
referenced by pointer across mutations (see the Ownership section of the
data model this package implements).
*/
package record

import "encoding/binary"

/*
NullID is the sentinel id meaning "no edge/record here". No real id ever
equals it, since ids are dense from 0.
*/
const NullID uint64 = ^uint64(0)

/*
NodeRecordSize is the fixed encoded size of a NodeRecord in bytes:
id, first-edge-id, property-id, three uint64 fields.
*/
const NodeRecordSize = 24

/*
EdgeRecordSize is the fixed encoded size of an EdgeRecord in bytes.
Encode packs source-id, target-id (8 each), type-id (1, unpadded),
first-property-id, next-src, prev-src, next-tgt, prev-tgt (8 each) into
the first 57 bytes; the remaining 8 bytes of the record are left zero.
*/
const EdgeRecordSize = 8*8 + 1

/*
NodeRecord models a single vertex of the graph.
*/
type NodeRecord struct {
	ID          uint64
	FirstEdgeID uint64
	FirstPropID uint64
}

/*
EdgeRecord models a single directed, typed arc of the graph, including the
four link fields of its two incident doubly-linked adjacency lists.
*/
type EdgeRecord struct {
	SourceID    uint64
	TargetID    uint64
	TypeID      uint8
	FirstPropID uint64
	NextSrc     uint64
	PrevSrc     uint64
	NextTgt     uint64
	PrevTgt     uint64
}

/*
NewNodeRecord creates a fresh node record with no incident edges.
*/
func NewNodeRecord(id uint64, propID uint64) NodeRecord {
	return NodeRecord{ID: id, FirstEdgeID: NullID, FirstPropID: propID}
}

/*
Encode packs a NodeRecord into exactly NodeRecordSize bytes.
*/
func (n NodeRecord) Encode() []byte {
	buf := make([]byte, NodeRecordSize)
	binary.BigEndian.PutUint64(buf[0:8], n.ID)
	binary.BigEndian.PutUint64(buf[8:16], n.FirstEdgeID)
	binary.BigEndian.PutUint64(buf[16:24], n.FirstPropID)
	return buf
}

/*
DecodeNodeRecord unpacks a NodeRecord from exactly NodeRecordSize bytes.
*/
func DecodeNodeRecord(buf []byte) (NodeRecord, bool) {
	if len(buf) != NodeRecordSize {
		return NodeRecord{}, false
	}
	return NodeRecord{
		ID:          binary.BigEndian.Uint64(buf[0:8]),
		FirstEdgeID: binary.BigEndian.Uint64(buf[8:16]),
		FirstPropID: binary.BigEndian.Uint64(buf[16:24]),
	}, true
}

/*
Encode packs an EdgeRecord into exactly EdgeRecordSize bytes.
*/
func (e EdgeRecord) Encode() []byte {
	buf := make([]byte, EdgeRecordSize)
	binary.BigEndian.PutUint64(buf[0:8], e.SourceID)
	binary.BigEndian.PutUint64(buf[8:16], e.TargetID)
	buf[16] = e.TypeID
	binary.BigEndian.PutUint64(buf[17:25], e.FirstPropID)
	binary.BigEndian.PutUint64(buf[25:33], e.NextSrc)
	binary.BigEndian.PutUint64(buf[33:41], e.PrevSrc)
	binary.BigEndian.PutUint64(buf[41:49], e.NextTgt)
	binary.BigEndian.PutUint64(buf[49:57], e.PrevTgt)
	return buf
}

/*
DecodeEdgeRecord unpacks an EdgeRecord from exactly EdgeRecordSize bytes.
*/
func DecodeEdgeRecord(buf []byte) (EdgeRecord, bool) {
	if len(buf) != EdgeRecordSize {
		return EdgeRecord{}, false
	}
	return EdgeRecord{
		SourceID:    binary.BigEndian.Uint64(buf[0:8]),
		TargetID:    binary.BigEndian.Uint64(buf[8:16]),
		TypeID:      buf[16],
		FirstPropID: binary.BigEndian.Uint64(buf[17:25]),
		NextSrc:     binary.BigEndian.Uint64(buf[25:33]),
		PrevSrc:     binary.BigEndian.Uint64(buf[33:41]),
		NextTgt:     binary.BigEndian.Uint64(buf[41:49]),
		PrevTgt:     binary.BigEndian.Uint64(buf[49:57]),
	}, true
}

/*
NodeOffset returns the byte offset of a node id within the node record
file: id * NodeRecordSize.
*/
func NodeOffset(id uint64) int64 {
	return int64(id) * NodeRecordSize
}

/*
EdgeOffset returns the byte offset of an edge id within the edge record
file: id * EdgeRecordSize, except that NullID maps to offset 0. Callers
must guard against NullID before calling Region.Slice with this offset -
EdgeOffset itself does not refuse NullID, matching the offset-formula
contract; only read paths must check the id first.
*/
func EdgeOffset(id uint64) int64 {
	if id == NullID {
		return 0
	}
	return int64(id) * EdgeRecordSize
}

/*
Role identifies which endpoint of an edge a node occupies.
*/
type Role int

const (
	// RoleSource means the node is the edge's source-id.
	RoleSource Role = iota
	// RoleTarget means the node is the edge's target-id.
	RoleTarget
)

/*
RoleOf returns the role nodeID plays in e. Self-loops resolve to
RoleSource, matching the traversal iterator's tie-break rule.
*/
func RoleOf(e EdgeRecord, nodeID uint64) Role {
	if e.SourceID == nodeID {
		return RoleSource
	}
	return RoleTarget
}

/*
Next returns the next-link for the given role.
*/
func (e EdgeRecord) Next(role Role) uint64 {
	if role == RoleSource {
		return e.NextSrc
	}
	return e.NextTgt
}

/*
Prev returns the prev-link for the given role.
*/
func (e EdgeRecord) Prev(role Role) uint64 {
	if role == RoleSource {
		return e.PrevSrc
	}
	return e.PrevTgt
}

/*
SetNext sets the next-link for the given role.
*/
func (e *EdgeRecord) SetNext(role Role, id uint64) {
	if role == RoleSource {
		e.NextSrc = id
	} else {
		e.NextTgt = id
	}
}

/*
SetPrev sets the prev-link for the given role.
*/
func (e *EdgeRecord) SetPrev(role Role, id uint64) {
	if role == RoleSource {
		e.PrevSrc = id
	} else {
		e.PrevTgt = id
	}
}

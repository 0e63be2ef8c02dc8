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
Package graph implements the embedded property-graph engine: node/edge
interning, the adjacency-list splice on insert, and the read-through
traversal queries. It composes store.Region (the two mapped record
files), intern.NameStore/PropertyStore (the two interning stores) and a
caller-supplied reltype.TypeMap into the single public Engine type.

The engine owns the two mapped regions, the two interning stores and the
metadata document exclusively for its lifetime - opening two engines on
the same path is undefined, matching eliasdb's own single-owner
DiskGraphStorage model (one lock file, one set of storage managers per
database directory), here relaxed to "no locking discipline at all"
since this spec explicitly excludes concurrent writers.
*/
package graph

import (
	"os"
	"path/filepath"

	"github.com/rs/zerolog/log"

	"devt.de/krotik/reachdb/dberrors"
	"devt.de/krotik/reachdb/intern"
	"devt.de/krotik/reachdb/reltype"
	"devt.de/krotik/reachdb/store"
)

// Fixed file names within a database directory, per the external
// interfaces section of the specification.
const (
	fileNameDB     = "reachdb.nodeid"
	filePropertyDB = "reachdb.property"
	fileNodeDB     = "reachdb.node.db"
	fileRelDB      = "reachdb.relationship.db"
	fileMetadata   = "reachdb.metadata.json"
)

/*
AddEdgeResult distinguishes the three outcomes AddEdge can have, none of
which are errors: a fresh edge was inserted, an existing duplicate was
left alone, or the relation label was not recognized - in which case
neither endpoint is interned either, see the design notes' Open
Question 1 decision.
*/
type AddEdgeResult int

const (
	// Inserted means a new edge record was spliced into both endpoints'
	// adjacency lists.
	Inserted AddEdgeResult = iota
	// DuplicateSkipped means an edge with the same (source, target,
	// type) triple already existed.
	DuplicateSkipped
	// UnknownLabelSkipped means the relation label did not resolve to a
	// known type id - neither endpoint is interned in this case, see
	// the design notes' Open Question 1 decision.
	UnknownLabelSkipped
)

/*
EngineStats is a read-only snapshot of the engine's counters and region
sizes, for display/debug paths - the same role eliasdb's
DiskGraphStorage.Name()/MainDB() read accessors play for its own
storage.
*/
type EngineStats struct {
	NodeCount         uint64
	RelationshipCount uint64
	PropertyCount     uint64
	NodeMmapSize      int64
	RelationMmapSize  int64
}

/*
Engine is the embedded property-graph store.
*/
type Engine struct {
	path  string
	types reltype.TypeMap

	nodes *store.Region
	edges *store.Region

	names *intern.NameStore
	props *intern.PropertyStore

	meta Metadata

	ready bool
}

/*
Open opens or creates the database directory at path. If a metadata
document exists there, its counters and region sizes are loaded;
otherwise node-count/edge-count/property-count start at zero and the
region sizes default to nodeRegionSize/edgeRegionSize. Open then calls
prepare: it opens both interning stores, flushes them, and maps both
record files at their (possibly just-initialized) sizes.
*/
func Open(path string, nodeRegionSize, edgeRegionSize int64, types reltype.TypeMap) (*Engine, error) {
	if err := os.MkdirAll(path, 0770); err != nil {
		return nil, dberrors.New(dberrors.ErrIo, "graph.Open", err.Error())
	}

	metaPath := filepath.Join(path, fileMetadata)
	meta, existed, err := loadMetadata(metaPath)
	if err != nil {
		return nil, err
	}
	if !existed {
		meta = Metadata{
			NodeMmapSize:     nodeRegionSize,
			RelationMmapSize: edgeRegionSize,
			Path:             path,
		}
	}

	e := &Engine{path: path, types: types, meta: meta}

	if err := e.prepare(); err != nil {
		return nil, err
	}

	log.Info().Str("path", path).Msg("reachdb engine opened")

	return e, nil
}

/*
prepare opens/creates both interning stores, flushes them, and maps both
record files at the sizes recorded in the metadata document.
*/
func (e *Engine) prepare() error {
	names, err := intern.OpenNameStore(filepath.Join(e.path, fileNameDB))
	if err != nil {
		return err
	}
	props, err := intern.OpenPropertyStore(filepath.Join(e.path, filePropertyDB))
	if err != nil {
		return err
	}
	if err := names.Flush(); err != nil {
		return err
	}
	if err := props.Flush(); err != nil {
		return err
	}

	nodes, err := store.Open(filepath.Join(e.path, fileNodeDB), e.meta.NodeMmapSize)
	if err != nil {
		return err
	}
	edges, err := store.Open(filepath.Join(e.path, fileRelDB), e.meta.RelationMmapSize)
	if err != nil {
		nodes.Close()
		return err
	}

	e.names = names
	e.props = props
	e.nodes = nodes
	e.edges = edges
	e.ready = true

	return nil
}

func (e *Engine) checkReady(op string) error {
	if !e.ready {
		return dberrors.New(dberrors.ErrNotInitialized, op, "engine has not completed prepare")
	}
	return nil
}

/*
Close serializes the metadata document, flushes both mapped regions,
and drops both interning store handles. This is the only durability
point - callers that skip Close may lose counter updates, though
in-place writes to the mapped regions up to the last successful
operation are already in the shared file mapping; they are msync'd
only by Flush or Close.
*/
func (e *Engine) Close() error {
	if err := e.checkReady("graph.Close"); err != nil {
		return err
	}

	e.meta.NodeMmapSize = e.nodes.Size()
	e.meta.RelationMmapSize = e.edges.Size()

	var firstErr error
	keep := func(err error) {
		if err != nil && firstErr == nil {
			firstErr = err
		}
	}

	keep(e.nodes.Flush())
	keep(e.edges.Flush())
	keep(e.names.Flush())
	keep(e.props.Flush())
	keep(saveMetadata(filepath.Join(e.path, fileMetadata), e.meta))

	keep(e.nodes.Close())
	keep(e.edges.Close())

	e.ready = false

	if firstErr != nil {
		return firstErr
	}

	log.Info().Str("path", e.path).Msg("reachdb engine closed")

	return nil
}

/*
Stats returns a read-only snapshot of the engine's counters and region
sizes.
*/
func (e *Engine) Stats() EngineStats {
	return EngineStats{
		NodeCount:         e.meta.NodeCount,
		RelationshipCount: e.meta.RelationshipCount,
		PropertyCount:     e.meta.PropertyCount,
		NodeMmapSize:      e.nodes.Size(),
		RelationMmapSize:  e.edges.Size(),
	}
}

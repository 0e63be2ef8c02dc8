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
	"encoding/json"
	"os"

	"devt.de/krotik/reachdb/dberrors"
)

/*
Metadata is the singleton document persisted at <path>/reachdb.metadata.json.
It is the only durability point for the counters - callers that skip
Close may lose counter updates even though the mapped regions themselves
hold the actual node/edge records written so far.
*/
type Metadata struct {
	NodeMmapSize      int64  `json:"node-mmap-size"`
	RelationMmapSize  int64  `json:"relation-mmap-size"`
	NodeCount         uint64 `json:"node-count"`
	RelationshipCount uint64 `json:"relationship-count"`
	PropertyCount     uint64 `json:"property-count"`
	Path              string `json:"path"`
}

func loadMetadata(path string) (Metadata, bool, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return Metadata{}, false, nil
	}
	if err != nil {
		return Metadata{}, false, dberrors.New(dberrors.ErrIo, "graph.loadMetadata", err.Error())
	}

	var m Metadata
	if err := json.Unmarshal(data, &m); err != nil {
		return Metadata{}, false, dberrors.New(dberrors.ErrCodec, "graph.loadMetadata", err.Error())
	}

	return m, true, nil
}

func saveMetadata(path string, m Metadata) error {
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return dberrors.New(dberrors.ErrCodec, "graph.saveMetadata", err.Error())
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return dberrors.New(dberrors.ErrIo, "graph.saveMetadata", err.Error())
	}

	return nil
}

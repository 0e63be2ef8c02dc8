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
Package intern implements the two persistent interning stores the graph
engine keeps in lockstep: names -> node-id and property-id -> name.

Both are gob-encoded in-memory maps flushed to a single file on demand,
directly generalized from eliasdb's devt.de/common/datautil.PersistentMap:
an in-memory map, a Flush that gob-encodes the whole map to disk, and a
Load that gob-decodes it back. PropertyStore reuses the same string-keyed
shape as NameStore by formatting its uint64 keys as decimal strings.
*/
package intern

import (
	"encoding/gob"
	"os"
	"strconv"

	"devt.de/krotik/reachdb/dberrors"
)

/*
NameStore is the persistent name -> node-id interning map.
*/
type NameStore struct {
	path string
	data map[string]uint64
}

/*
OpenNameStore loads the name store at path, creating an empty one if the
file does not yet exist.
*/
func OpenNameStore(path string) (*NameStore, error) {
	ns := &NameStore{path: path, data: make(map[string]uint64)}

	if err := loadGob(path, &ns.data); err != nil {
		return nil, dberrors.New(dberrors.ErrStore, "intern.OpenNameStore", err.Error())
	}

	return ns, nil
}

/*
Get returns the node-id interned for name, if any.
*/
func (ns *NameStore) Get(name string) (uint64, bool) {
	id, ok := ns.data[name]
	return id, ok
}

/*
Put records that name interns to id.
*/
func (ns *NameStore) Put(name string, id uint64) {
	ns.data[name] = id
}

/*
Len returns the number of interned names.
*/
func (ns *NameStore) Len() int {
	return len(ns.data)
}

/*
Flush rewrites the store's file with the whole map. The file is not
fsync'd.
*/
func (ns *NameStore) Flush() error {
	if err := saveGob(ns.path, ns.data); err != nil {
		return dberrors.New(dberrors.ErrStore, "intern.NameStore.Flush", err.Error())
	}
	return nil
}

/*
PropertyStore is the persistent property-id -> name reverse lookup,
consulted only by display/debug paths.
*/
type PropertyStore struct {
	path string
	data map[string]string
}

/*
OpenPropertyStore loads the property store at path, creating an empty one
if the file does not yet exist.
*/
func OpenPropertyStore(path string) (*PropertyStore, error) {
	ps := &PropertyStore{path: path, data: make(map[string]string)}

	if err := loadGob(path, &ps.data); err != nil {
		return nil, dberrors.New(dberrors.ErrStore, "intern.OpenPropertyStore", err.Error())
	}

	return ps, nil
}

/*
Get returns the display name for propertyID, if any.
*/
func (ps *PropertyStore) Get(propertyID uint64) (string, bool) {
	name, ok := ps.data[key(propertyID)]
	return name, ok
}

/*
Put records the display name for propertyID.
*/
func (ps *PropertyStore) Put(propertyID uint64, name string) {
	ps.data[key(propertyID)] = name
}

/*
Flush rewrites the store's file with the whole map. The file is not
fsync'd.
*/
func (ps *PropertyStore) Flush() error {
	if err := saveGob(ps.path, ps.data); err != nil {
		return dberrors.New(dberrors.ErrStore, "intern.PropertyStore.Flush", err.Error())
	}
	return nil
}

func key(id uint64) string {
	return strconv.FormatUint(id, 10)
}

// loadGob and saveGob mirror datautil.PersistentMap's
// LoadPersistentMap/Flush pair: create-if-absent on load, truncate-and-
// rewrite on save.

func loadGob(path string, out interface{}) error {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_RDWR, 0660)
	if err != nil {
		return err
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return err
	}
	if info.Size() == 0 {
		// Freshly created file, nothing to decode.
		return nil
	}

	dec := gob.NewDecoder(f)
	return dec.Decode(out)
}

func saveGob(path string, in interface{}) error {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_TRUNC|os.O_RDWR, 0660)
	if err != nil {
		return err
	}
	defer f.Close()

	enc := gob.NewEncoder(f)
	return enc.Encode(in)
}

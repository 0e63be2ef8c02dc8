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
Package store presents a record file as a growable, writable,
byte-addressable memory-mapped region.

A Region wraps one *os.File and its mmap.MMap. The engine pre-sizes each
region at open time (the database's reachdb.metadata.json records the
chosen size) and calls Grow explicitly when a write would run past the
current capacity, rather than growing transparently inside Slice - see
Open Question 2 in the design notes.
*/
package store

import (
	"os"

	"github.com/edsrzf/mmap-go"
	"github.com/rs/zerolog/log"

	"devt.de/krotik/reachdb/dberrors"
)

/*
Region is a memory-mapped, fixed-record-addressable file.
*/
type Region struct {
	path string
	file *os.File
	mm   mmap.MMap
	size int64
}

/*
Open creates the file at path if it does not exist, ensures it is at
least initialSize bytes long, and maps it read/write.
*/
func Open(path string, initialSize int64) (*Region, error) {
	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE, 0660)
	if err != nil {
		return nil, dberrors.New(dberrors.ErrIo, "store.Open", err.Error())
	}

	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, dberrors.New(dberrors.ErrIo, "store.Open", err.Error())
	}

	size := info.Size()
	if size < initialSize {
		if err := f.Truncate(initialSize); err != nil {
			f.Close()
			return nil, dberrors.New(dberrors.ErrIo, "store.Open", err.Error())
		}
		size = initialSize
	}

	m, err := mmap.Map(f, mmap.RDWR, 0)
	if err != nil {
		f.Close()
		return nil, dberrors.New(dberrors.ErrIo, "store.Open", err.Error())
	}

	return &Region{path: path, file: f, mm: m, size: size}, nil
}

/*
Size returns the current mapped size in bytes.
*/
func (r *Region) Size() int64 {
	return r.size
}

/*
Slice returns a writable view of [offset, offset+length) into the
mapped region. Writes into the returned slice are reflected in the
file no later than the next Flush. Returns dberrors.ErrCapacity if the
requested range exceeds the current mapped size.
*/
func (r *Region) Slice(offset, length int64) ([]byte, error) {
	if offset < 0 || length < 0 || offset+length > r.size {
		return nil, dberrors.New(dberrors.ErrCapacity, "store.Slice", "requested range exceeds mapped size")
	}
	return r.mm[offset : offset+length], nil
}

/*
Grow resizes the region to at least newSize bytes, remapping the file.
No-op if newSize is not larger than the current size.
*/
func (r *Region) Grow(newSize int64) error {
	if newSize <= r.size {
		return nil
	}

	if err := r.mm.Unmap(); err != nil {
		return dberrors.New(dberrors.ErrIo, "store.Grow", err.Error())
	}

	if err := r.file.Truncate(newSize); err != nil {
		return dberrors.New(dberrors.ErrIo, "store.Grow", err.Error())
	}

	m, err := mmap.Map(r.file, mmap.RDWR, 0)
	if err != nil {
		return dberrors.New(dberrors.ErrIo, "store.Grow", err.Error())
	}

	log.Debug().Str("path", r.path).Int64("old_size", r.size).Int64("new_size", newSize).Msg("grew mapped region")

	r.mm = m
	r.size = newSize

	return nil
}

/*
EnsureCapacity grows the region, doubling its size until it can hold
[offset, offset+length), if that range does not already fit.
*/
func (r *Region) EnsureCapacity(offset, length int64) error {
	needed := offset + length
	if needed <= r.size {
		return nil
	}

	newSize := r.size
	if newSize == 0 {
		newSize = length
	}
	for newSize < needed {
		newSize *= 2
	}

	return r.Grow(newSize)
}

/*
Flush durably persists all writes issued so far. Best-effort: returns
once the underlying kernel confirms the msync.
*/
func (r *Region) Flush() error {
	if err := r.mm.Flush(); err != nil {
		return dberrors.New(dberrors.ErrIo, "store.Flush", err.Error())
	}
	return nil
}

/*
Close flushes and unmaps the region and closes the underlying file.
*/
func (r *Region) Close() error {
	if err := r.mm.Flush(); err != nil {
		r.mm.Unmap()
		r.file.Close()
		return dberrors.New(dberrors.ErrIo, "store.Close", err.Error())
	}
	if err := r.mm.Unmap(); err != nil {
		r.file.Close()
		return dberrors.New(dberrors.ErrIo, "store.Close", err.Error())
	}
	if err := r.file.Close(); err != nil {
		return dberrors.New(dberrors.ErrIo, "store.Close", err.Error())
	}
	return nil
}

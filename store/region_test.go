/*
 * reachdb
 *
 * Copyright 2026 The reachdb authors.
 *
 * This Source Code Form is subject to the terms of the Mozilla Public
 * License, v. 2.0. If a copy of the MPL was not distributed with this
 * file, You can obtain one at http://mozilla.org/MPL/2.0/.
 */

package store

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"devt.de/krotik/reachdb/dberrors"
)

func TestOpenCreatesAndPreSizes(t *testing.T) {
	path := filepath.Join(t.TempDir(), "region.db")

	r, err := Open(path, 4096)
	require.NoError(t, err)
	defer r.Close()

	require.Equal(t, int64(4096), r.Size())
}

func TestSliceWriteReadBack(t *testing.T) {
	path := filepath.Join(t.TempDir(), "region.db")

	r, err := Open(path, 4096)
	require.NoError(t, err)
	defer r.Close()

	s, err := r.Slice(8, 8)
	require.NoError(t, err)
	copy(s, []byte{1, 2, 3, 4, 5, 6, 7, 8})

	s2, err := r.Slice(8, 8)
	require.NoError(t, err)
	require.Equal(t, []byte{1, 2, 3, 4, 5, 6, 7, 8}, s2)
}

func TestSliceOutOfRangeIsCapacityError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "region.db")

	r, err := Open(path, 16)
	require.NoError(t, err)
	defer r.Close()

	_, err = r.Slice(8, 16)
	require.Error(t, err)

	var dbErr *dberrors.Error
	require.True(t, errors.As(err, &dbErr))
	require.ErrorIs(t, err, dberrors.ErrCapacity)
}

func TestGrowPreservesExistingData(t *testing.T) {
	path := filepath.Join(t.TempDir(), "region.db")

	r, err := Open(path, 16)
	require.NoError(t, err)
	defer r.Close()

	s, err := r.Slice(0, 8)
	require.NoError(t, err)
	copy(s, []byte{9, 9, 9, 9, 9, 9, 9, 9})
	require.NoError(t, r.Flush())

	require.NoError(t, r.Grow(64))
	require.Equal(t, int64(64), r.Size())

	s2, err := r.Slice(0, 8)
	require.NoError(t, err)
	require.Equal(t, []byte{9, 9, 9, 9, 9, 9, 9, 9}, s2)
}

func TestEnsureCapacityGrowsByDoubling(t *testing.T) {
	path := filepath.Join(t.TempDir(), "region.db")

	r, err := Open(path, 16)
	require.NoError(t, err)
	defer r.Close()

	require.NoError(t, r.EnsureCapacity(20, 8))
	require.GreaterOrEqual(t, r.Size(), int64(28))
}

func TestPersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "region.db")

	r, err := Open(path, 64)
	require.NoError(t, err)
	s, err := r.Slice(0, 4)
	require.NoError(t, err)
	copy(s, []byte{42, 42, 42, 42})
	require.NoError(t, r.Close())

	r2, err := Open(path, 64)
	require.NoError(t, err)
	defer r2.Close()

	s2, err := r2.Slice(0, 4)
	require.NoError(t, err)
	require.Equal(t, []byte{42, 42, 42, 42}, s2)
}

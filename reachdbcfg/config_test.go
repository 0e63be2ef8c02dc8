/*
 * reachdb
 *
 * Copyright 2026 The reachdb authors.
 *
 * This Source Code Form is subject to the terms of the Mozilla Public
 * License, v. 2.0. If a copy of the MPL was not distributed with this
 * file, You can obtain one at http://mozilla.org/MPL/2.0/.
 */

package reachdbcfg

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.json"))
	require.NoError(t, err)
	require.Equal(t, Default(), cfg)
}

func TestLoadMergesOverDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "reachdb.config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"nodeRegionSize": 65536}`), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, int64(65536), cfg.NodeRegionSize)
	require.Equal(t, DefaultEdgeRegionSize, cfg.EdgeRegionSize)
}

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
Package reachdbcfg loads the small set of options this engine has:
initial mmap region sizes and the log level. Modeled directly on
eliasdb's config.LoadConfigFile/config.DefaultConfig pair - a JSON file
merged onto hard-coded defaults, with the defaults used as they are if
the file is absent (no file is created) - narrowed to the knobs reachdb
actually exposes.
*/
package reachdbcfg

import (
	"encoding/json"
	"os"
)

/*
DefaultNodeRegionSize is the initial size, in bytes, of a freshly created
node record file.
*/
const DefaultNodeRegionSize int64 = 4096

/*
DefaultEdgeRegionSize is the initial size, in bytes, of a freshly created
edge record file.
*/
const DefaultEdgeRegionSize int64 = 4096

/*
Config holds reachdb's tunable options.
*/
type Config struct {
	NodeRegionSize int64  `json:"nodeRegionSize"`
	EdgeRegionSize int64  `json:"edgeRegionSize"`
	LogLevel       string `json:"logLevel"`
}

/*
Default returns reachdb's default configuration.
*/
func Default() Config {
	return Config{
		NodeRegionSize: DefaultNodeRegionSize,
		EdgeRegionSize: DefaultEdgeRegionSize,
		LogLevel:       "info",
	}
}

/*
Load reads a JSON config file at path, merging its fields over Default.
If path does not exist, Default is returned with no error - matching
config.LoadConfigFile's create-on-first-use behavior, except reachdb
does not write the defaults back out (the caller owns whether the
directory is writable yet).
*/
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return Config{}, err
	}

	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

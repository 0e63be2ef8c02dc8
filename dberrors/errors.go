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
Package dberrors defines the error kinds returned by reachdb's storage and
graph layers.

All failures which cross a public API boundary are wrapped in an Error
value carrying the offending operation and a human-readable detail, the
way eliasdb's graph/util.GraphError and storage.ManagerError wrap their
own sentinel error types.
*/
package dberrors

import (
	"errors"
	"fmt"
)

/*
Sentinel error kinds. Compare against these with errors.Is.
*/
var (
	ErrIo             = errors.New("io failure")
	ErrCodec          = errors.New("record did not decode at the expected offset")
	ErrStore          = errors.New("interning store failure")
	ErrEncoding       = errors.New("stored name is not valid utf-8")
	ErrNotFound       = errors.New("not found")
	ErrNotInitialized = errors.New("engine not initialized")
	ErrCapacity       = errors.New("region capacity exceeded")
)

/*
Error is a reachdb related error. Kind is one of the sentinel errors above
and should be used for errors.Is checks; Detail carries the specifics.
*/
type Error struct {
	Kind   error  // Error kind (for errors.Is checks)
	Op     string // Operation that failed, e.g. "graph.AddEdge"
	Detail string // Details of this error
}

/*
New creates a new Error.
*/
func New(kind error, op string, detail string) *Error {
	return &Error{Kind: kind, Op: op, Detail: detail}
}

/*
Error returns a human-readable string representation of this error.
*/
func (e *Error) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("%s: %v (%s)", e.Op, e.Kind, e.Detail)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Kind)
}

/*
Unwrap returns the sentinel kind so errors.Is/errors.As work as expected.
*/
func (e *Error) Unwrap() error {
	return e.Kind
}

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
Package reltype models the caller-supplied relation-type capability: a
bijective mapping between string relation labels and 8-bit type ids.

The engine is polymorphic over any value implementing TypeMap - a
capability set, not an inherited base type, the way eliasdb's
NamesManager assigns dense codes to names without the caller needing to
subclass anything.
*/
package reltype

/*
TypeMap is the capability a caller must supply to the graph engine: a
pure label -> type-id function and its inverse.
*/
type TypeMap interface {
	/*
	   TypeOf returns the numeric type for a known label, or ok=false if
	   the label is unrecognized.
	*/
	TypeOf(label string) (typeID uint8, ok bool)

	/*
	   LabelOf returns the label for a known type id, or ok=false if the
	   id is unrecognized. Used by display paths only.
	*/
	LabelOf(typeID uint8) (label string, ok bool)
}

/*
Registry is a ready TypeMap implementation assigning dense uint8 ids to a
fixed set of labels, in the order they are given.
*/
type Registry struct {
	toID    map[string]uint8
	toLabel map[uint8]string
}

/*
NewRegistry builds a Registry assigning ids 0..len(labels)-1 in order.
Duplicate labels are collapsed to their first occurrence's id.
*/
func NewRegistry(labels ...string) *Registry {
	r := &Registry{
		toID:    make(map[string]uint8, len(labels)),
		toLabel: make(map[uint8]string, len(labels)),
	}

	var next uint8
	for _, label := range labels {
		if _, exists := r.toID[label]; exists {
			continue
		}
		r.toID[label] = next
		r.toLabel[next] = label
		next++
	}

	return r
}

/*
TypeOf implements TypeMap.
*/
func (r *Registry) TypeOf(label string) (uint8, bool) {
	id, ok := r.toID[label]
	return id, ok
}

/*
LabelOf implements TypeMap.
*/
func (r *Registry) LabelOf(typeID uint8) (string, bool) {
	label, ok := r.toLabel[typeID]
	return label, ok
}

/*
Add registers an additional label, returning the id assigned to it (the
existing id if the label is already known).
*/
func (r *Registry) Add(label string) uint8 {
	if id, ok := r.toID[label]; ok {
		return id
	}

	id := uint8(len(r.toID))
	r.toID[label] = id
	r.toLabel[id] = label
	return id
}

/*
funcMap adapts a pair of plain functions to the TypeMap interface - the
"straightforward alternative" of injecting two function values directly,
without building a Registry.
*/
type funcMap struct {
	typeOf  func(string) (uint8, bool)
	labelOf func(uint8) (string, bool)
}

/*
Funcs adapts typeOf and labelOf closures to a TypeMap.
*/
func Funcs(typeOf func(string) (uint8, bool), labelOf func(uint8) (string, bool)) TypeMap {
	return &funcMap{typeOf: typeOf, labelOf: labelOf}
}

func (f *funcMap) TypeOf(label string) (uint8, bool) {
	return f.typeOf(label)
}

func (f *funcMap) LabelOf(typeID uint8) (string, bool) {
	return f.labelOf(typeID)
}

/*
Copyright 2025 Trident Authors

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

// Package registry parses the IANA Language Subtag Registry's plain-text
// format (RFC 5646, Section 3.1.1) into six category-keyed lookup tables.
// A Registry, once loaded, is immutable and safe for concurrent lookups.
package registry

import (
	"strings"

	"github.com/wrenlang/bcp47/subtag"
)

// Registry is the parsed, indexed form of an IANA Language Subtag Registry
// file. All six maps are keyed by the lowercased form of the record's
// TagOrSubtag field.
type Registry struct {
	Languages map[string]subtag.Record
	Extlangs  map[string]subtag.Record
	Scripts   map[string]subtag.Record
	Regions   map[string]subtag.Record
	Variants  map[string]subtag.Record

	// Deprecated holds both grandfathered and redundant whole-tag
	// registrations, keyed by the record's Tag.
	Deprecated map[string]subtag.Record

	// FileDate is the registry's File-Date header value, e.g. "2024-05-16".
	FileDate string
}

func newRegistry() *Registry {
	return &Registry{
		Languages:  make(map[string]subtag.Record),
		Extlangs:   make(map[string]subtag.Record),
		Scripts:    make(map[string]subtag.Record),
		Regions:    make(map[string]subtag.Record),
		Variants:   make(map[string]subtag.Record),
		Deprecated: make(map[string]subtag.Record),
	}
}

// categoryMap returns the map a record of the given type is dispatched
// into, or nil for types that do not index directly (there are none at
// present, but a nil return lets callers skip gracefully on a future
// registry revision).
func (r *Registry) categoryMap(t subtag.Type) map[string]subtag.Record {
	switch t {
	case subtag.Language:
		return r.Languages
	case subtag.Extlang:
		return r.Extlangs
	case subtag.Script:
		return r.Scripts
	case subtag.Region:
		return r.Regions
	case subtag.Variant:
		return r.Variants
	case subtag.Grandfathered, subtag.Redundant:
		return r.Deprecated
	default:
		return nil
	}
}

// Language looks up a primary language subtag, case-insensitively.
func (r *Registry) Language(tag string) (subtag.Record, bool) {
	rec, ok := r.Languages[strings.ToLower(tag)]
	return rec, ok
}

// Extlang looks up an extended language subtag, case-insensitively.
func (r *Registry) Extlang(tag string) (subtag.Record, bool) {
	rec, ok := r.Extlangs[strings.ToLower(tag)]
	return rec, ok
}

// Script looks up a script subtag, case-insensitively.
func (r *Registry) Script(tag string) (subtag.Record, bool) {
	rec, ok := r.Scripts[strings.ToLower(tag)]
	return rec, ok
}

// Region looks up a region subtag, case-insensitively.
func (r *Registry) Region(tag string) (subtag.Record, bool) {
	rec, ok := r.Regions[strings.ToLower(tag)]
	return rec, ok
}

// Variant looks up a variant subtag, case-insensitively.
func (r *Registry) Variant(tag string) (subtag.Record, bool) {
	rec, ok := r.Variants[strings.ToLower(tag)]
	return rec, ok
}

// DeprecatedTag looks up a whole-tag grandfathered or redundant
// registration, case-insensitively.
func (r *Registry) DeprecatedTag(tag string) (subtag.Record, bool) {
	rec, ok := r.Deprecated[strings.ToLower(tag)]
	return rec, ok
}

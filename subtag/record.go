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

// Package subtag defines the record shape for a single entry of the IANA
// Language Subtag Registry, as laid out in RFC 5646, Section 3.1.2.
package subtag

// Type names the seven record kinds the registry defines.
type Type string

const (
	Language      Type = "language"
	Extlang       Type = "extlang"
	Script        Type = "script"
	Region        Type = "region"
	Variant       Type = "variant"
	Grandfathered Type = "grandfathered"
	Redundant     Type = "redundant"
)

// Record holds one registry entry, keyed outside this package by the
// lowercased form of TagOrSubtag.
type Record struct {
	Type           Type
	TagOrSubtag    string
	Descriptions   []string
	Added          string
	SuppressScript string
	Scope          string
	Macrolanguage  string
	Comments       string
	Deprecated     string
	PreferredValue string
	Prefixes       []string
}

// IsWholeTag reports whether the record registers a complete tag rather
// than a single subtag — true for grandfathered and redundant records.
func (r *Record) IsWholeTag() bool {
	return r.Type == Grandfathered || r.Type == Redundant
}

// IsDeprecated reports whether the record carries a Deprecated date.
func (r *Record) IsDeprecated() bool {
	return r.Deprecated != ""
}

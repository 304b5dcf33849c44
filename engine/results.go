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

// Package engine tokenizes, classifies, validates, and canonicalizes BCP 47
// language tags (RFC 5646) against a loaded registry.Registry. The public
// entry point is Engine.Parse; everything else in this package is the
// pipeline it drives.
package engine

// Results is the structured outcome of parsing one tag. It is created once
// per Parse call, mutated only during that call, and returned by value.
type Results struct {
	// LanguageTag is the first subtag exactly as received, unmodified in case.
	LanguageTag string

	ExtendedTags   []string
	ScriptTags     []string
	RegionTags     []string
	VariantTags    []string
	ExtensionTags  []string
	PrivateUseTags []string

	// Canonical holds the canonical form per RFC 5646 Section 4.5. It is
	// present (CanonicalOK true) iff the tag is well-formed; for empty
	// input it is present but empty, matching the reference implementation's
	// documented (and not silently "fixed") quirk — see spec.md Section 9.
	Canonical   string
	CanonicalOK bool

	// IsValid is true iff Canonical is present, except for empty input,
	// where Canonical is present but IsValid is false. Kept as a distinct
	// field, rather than folded into CanonicalOK, to mirror the two named
	// attributes in spec.md Section 3 (canonicalize / is_valid), which
	// agree for every non-empty input.
	IsValid bool

	ErrorMessages []string
}

func (r *Results) addError(msg string) {
	r.ErrorMessages = append(r.ErrorMessages, msg)
}

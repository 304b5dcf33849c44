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

// Package engine implements the BCP 47 tag pipeline: tokenize, classify,
// validate, canonicalize. Engine is the only exported entry point; every
// other type in this package is scratch state for a single Parse call.
package engine

import (
	"strings"

	"github.com/wrenlang/bcp47/registry"
)

// Engine parses language tags against a fixed Registry snapshot. It holds
// no mutable state of its own, so a single Engine can be shared across
// goroutines and called concurrently; spec.md Section 5 requires exactly
// this, in contrast to the reference implementation's process-wide globals.
type Engine struct {
	reg *registry.Registry
}

// New returns an Engine backed by reg. reg is never modified.
func New(reg *registry.Registry) *Engine {
	return &Engine{reg: reg}
}

// Parse runs the full pipeline against tag and returns a populated Results.
// Every Parse call builds and discards its own parseContext; nothing is
// shared between calls.
func (e *Engine) Parse(tag string) Results {
	if tag == "" {
		return Results{Canonical: "", CanonicalOK: true, IsValid: false}
	}

	c := newParseContext(e.reg, tag)
	c.tokenize()
	c.classify()
	c.validate()
	c.canonicalize()

	c.results.IsValid = c.results.CanonicalOK
	return c.results
}

// ToExtlangForm rewrites tag into its extended form: if the primary
// language subtag is itself registered as an extlang, its registered
// Prefix becomes the new primary language and the old primary language
// is reinserted as the extlang subtag right after it. This reverses the
// substitution Canonicalize performs when folding an extlang into its
// preferred primary language, and mirrors the reference implementation's
// extended-form helper, which looks the primary language up as an
// extlang key and prepends its Prefix[0].
func (e *Engine) ToExtlangForm(tag string) string {
	if tag == "" {
		return tag
	}
	parts := strings.Split(tag, "-")
	if len(parts) == 0 {
		return tag
	}
	lang := parts[0]
	rec, ok := e.reg.Extlang(lang)
	if !ok || len(rec.Prefixes) == 0 {
		return tag
	}
	rest := parts[1:]
	out := append([]string{rec.Prefixes[0], lang}, rest...)
	return strings.Join(out, "-")
}

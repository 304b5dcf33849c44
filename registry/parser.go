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

package registry

import (
	"bufio"
	"io"
	"strings"

	"github.com/wrenlang/bcp47/subtag"
)

const keyValParts = 2

// fieldName identifies the continuation target for multi-line fields, per
// RFC 5646 Section 3.1.1: only Description and Comments are documented to
// span lines.
type fieldName string

const (
	fieldNone        fieldName = ""
	fieldDescription fieldName = "description"
	fieldComments    fieldName = "comments"
)

// recordBuilder accumulates the fields of one record between "%%" markers.
type recordBuilder struct {
	fields       map[string][]string
	continuation fieldName
	descriptions []string
	prefixes     []string
	commentParts []string
}

func newRecordBuilder() *recordBuilder {
	return &recordBuilder{fields: make(map[string][]string)}
}

func (b *recordBuilder) empty() bool {
	return len(b.fields) == 0
}

// setField records a "Name: value" line and updates the continuation target.
func (b *recordBuilder) setField(name, value string) {
	lower := strings.ToLower(name)
	switch lower {
	case "description":
		b.descriptions = append(b.descriptions, value)
		b.continuation = fieldDescription
		return
	case "comments":
		b.commentParts = append(b.commentParts, value)
		b.continuation = fieldComments
		return
	case "prefix":
		b.prefixes = append(b.prefixes, value)
		b.continuation = fieldNone
		return
	default:
		b.fields[lower] = append(b.fields[lower], value)
		b.continuation = fieldNone
	}
}

// appendContinuation appends a whitespace-led line to the open
// continuation field, joined to it with a single space, per spec.md
// Section 4.1's continuation policy.
func (b *recordBuilder) appendContinuation(text string) {
	switch b.continuation {
	case fieldDescription:
		if len(b.descriptions) > 0 {
			last := len(b.descriptions) - 1
			b.descriptions[last] += " " + text
		}
	case fieldComments:
		if len(b.commentParts) > 0 {
			last := len(b.commentParts) - 1
			b.commentParts[last] += " " + text
		}
	case fieldNone:
		// Nothing open; a stray continuation line is dropped silently.
	}
}

func (b *recordBuilder) get(name string) string {
	if v, ok := b.fields[name]; ok && len(v) > 0 {
		return v[0]
	}
	return ""
}

// build converts the accumulated fields into a subtag.Record.
func (b *recordBuilder) build() subtag.Record {
	rec := subtag.Record{
		Type:           subtag.Type(b.get("type")),
		Descriptions:   b.descriptions,
		Added:          b.get("added"),
		SuppressScript: b.get("suppress-script"),
		Scope:          b.get("scope"),
		Macrolanguage:  b.get("macrolanguage"),
		Deprecated:     b.get("deprecated"),
		PreferredValue: b.get("preferred-value"),
		Prefixes:       b.prefixes,
	}
	if len(b.commentParts) > 0 {
		rec.Comments = strings.Join(b.commentParts, " ")
	}
	if subtagField := b.get("subtag"); subtagField != "" {
		rec.TagOrSubtag = subtagField
	} else {
		rec.TagOrSubtag = b.get("tag")
	}
	return rec
}

// loader holds the running state of a single Load call.
type loader struct {
	reg     *Registry
	current *recordBuilder
	seenAny bool
}

// Load parses an IANA Language Subtag Registry file from r and returns the
// indexed Registry. Malformed lines — anything that is neither a record
// marker, a continuation, nor a "Name: value" pair — are skipped silently,
// since the registry is a published artifact assumed well-formed (spec.md
// Section 4.1). The only failure mode is a read error from r itself.
func Load(r io.Reader) (*Registry, error) {
	l := &loader{reg: newRegistry(), current: newRecordBuilder()}

	scanner := bufio.NewScanner(r)
	// A Comments field can, in principle, run long; grow past bufio's
	// default 64KiB token limit rather than fail on a wide registry line.
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	for scanner.Scan() {
		l.processLine(scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, ErrRegistryUnavailable
	}
	l.flush()
	return l.reg, nil
}

func (l *loader) processLine(line string) {
	switch {
	case line == "%%":
		l.flush()
		l.current = newRecordBuilder()
	case len(line) > 0 && (line[0] == ' ' || line[0] == '\t'):
		l.current.appendContinuation(strings.TrimSpace(line))
	default:
		l.processFieldLine(line)
	}
}

// processFieldLine handles a non-continuation, non-marker line. Per the
// documented open question in spec.md Section 9, the line is split on
// every colon and only the first two parts are kept: a value containing
// ':' is truncated at that colon rather than rejoined, matching the
// reference implementation's observed behavior.
func (l *loader) processFieldLine(line string) {
	parts := strings.Split(line, ":")
	if len(parts) < keyValParts {
		return
	}
	name := strings.TrimSpace(parts[0])
	value := strings.TrimSpace(parts[1])

	if strings.EqualFold(name, "File-Date") && !l.seenAny && l.current.empty() {
		l.reg.FileDate = value
		return
	}
	l.current.setField(name, value)
}

// flush dispatches the record currently under construction into the
// registry's category maps and, when that record is non-empty, marks that
// at least one record has been seen (so a stray File-Date line after the
// first record, which the format does not actually allow, never
// overwrites the header value).
func (l *loader) flush() {
	if l.current.empty() {
		return
	}
	l.seenAny = true
	rec := l.current.build()
	dest := l.reg.categoryMap(rec.Type)
	if dest == nil || rec.TagOrSubtag == "" {
		return
	}
	dest[strings.ToLower(rec.TagOrSubtag)] = rec
}

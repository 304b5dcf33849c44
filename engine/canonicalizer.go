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

package engine

import (
	"sort"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var titleCaser = cases.Title(language.Und)

// canonicalize implements spec.md Section 4.5. It only ever runs after
// validate(); apart from a registered whole tag, a tag found not
// well-formed returns before any output is built and results.Canonical
// stays absent.
func (c *parseContext) canonicalize() {
	if rec, ok := c.reg.DeprecatedTag(strings.ToLower(c.raw)); ok {
		if rec.PreferredValue != "" {
			c.results.Canonical = rec.PreferredValue
		} else {
			c.results.Canonical = strings.ToLower(c.raw)
		}
		c.results.CanonicalOK = true
		return
	}

	if !c.wellFormed {
		return
	}

	var parts []string

	origLanguage := c.results.LanguageTag
	language := strings.ToLower(origLanguage)
	if rec, ok := c.reg.Language(origLanguage); ok && rec.PreferredValue != "" {
		language = strings.ToLower(rec.PreferredValue)
	}

	extlangs := c.results.ExtendedTags
	if len(extlangs) == 1 {
		if rec, ok := c.reg.Extlang(extlangs[0]); ok && rec.PreferredValue != "" && len(rec.Prefixes) > 0 && strings.EqualFold(rec.Prefixes[0], language) {
			language = strings.ToLower(rec.PreferredValue)
			extlangs = nil
		}
	}
	parts = append(parts, language)
	for _, e := range extlangs {
		parts = append(parts, strings.ToLower(e))
	}

	var suppressScript string
	if rec, ok := c.reg.Language(origLanguage); ok {
		suppressScript = rec.SuppressScript
	}
	for _, s := range c.results.ScriptTags {
		if suppressScript != "" && strings.EqualFold(suppressScript, s) {
			continue
		}
		parts = append(parts, titleCaser.String(strings.ToLower(s)))
	}

	for _, r := range c.results.RegionTags {
		region := strings.ToUpper(r)
		if rec, ok := c.reg.Region(r); ok {
			if rec.PreferredValue != "" {
				region = rec.PreferredValue
			} else {
				region = rec.TagOrSubtag
			}
		}
		parts = append(parts, region)
	}

	for _, v := range c.results.VariantTags {
		if rec, ok := c.reg.Variant(v); ok {
			parts = append(parts, rec.TagOrSubtag)
		} else {
			parts = append(parts, strings.ToLower(v))
		}
	}

	extensions := make([]extensionGroup, len(c.extensions))
	copy(extensions, c.extensions)
	sort.Slice(extensions, func(i, j int) bool {
		return lowerByte(extensions[i].Singleton) < lowerByte(extensions[j].Singleton)
	})
	for _, g := range extensions {
		parts = append(parts, lowerGroup(g))
	}

	if len(c.privateUse) > 0 {
		parts = append(parts, lowerGroup(c.privateUse[0]))
	}

	c.results.Canonical = strings.Join(parts, "-")
	c.results.CanonicalOK = true
}

func lowerByte(b byte) byte {
	if b >= 'A' && b <= 'Z' {
		return b - 'A' + 'a'
	}
	return b
}

func lowerGroup(g extensionGroup) string {
	return string(lowerByte(g.Singleton)) + func() string {
		if g.Payload == "" {
			return ""
		}
		return "-" + g.Payload
	}()
}

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

import "strings"

const (
	extlangLen    = 3
	scriptLen     = 4
	regionAlphaLen = 2
)

func containsDigit(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= '0' && s[i] <= '9' {
			return true
		}
	}
	return false
}

func allAlpha(s string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]
		if !((c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')) {
			return false
		}
	}
	return true
}

// classify walks the tokens after the first and assigns each a role per
// spec.md Section 4.3's length/character-class table. It skips entirely
// when the classifier's preconditions aren't met: empty input, illegal
// characters present, or the whole tag is itself a registered
// grandfathered/redundant tag (those are opaque units handled by the
// validator and canonicalizer directly).
func (c *parseContext) classify() {
	if c.raw == "" || len(c.illegalChars) > 0 {
		return
	}
	if _, ok := c.reg.DeprecatedTag(strings.ToLower(c.raw)); ok {
		return
	}
	if len(c.tokens) == 0 {
		return
	}

	c.results.LanguageTag = c.tokens[0]
	c.lastRole = roleLanguage
	c.haveToken = true

	i := 1
	for i < len(c.tokens) {
		tok := c.tokens[i]
		if tok == "" {
			c.hasBlankTag = true
			i++
			continue
		}

		switch {
		case len(tok) == 1:
			i = c.classifySingleton(tok, i)
		case len(tok) == regionAlphaLen:
			c.assignRole(roleRegion, tok, &c.results.RegionTags)
			i++
		case len(tok) == extlangLen && allAlpha(tok):
			c.assignRole(roleExtended, tok, &c.results.ExtendedTags)
			i++
		case len(tok) == extlangLen && containsDigit(tok):
			c.assignRole(roleRegion, tok, &c.results.RegionTags)
			i++
		case len(tok) == scriptLen && allAlpha(tok):
			c.assignRole(roleScript, tok, &c.results.ScriptTags)
			i++
		case len(tok) == scriptLen && containsDigit(tok):
			c.assignRole(roleVariant, tok, &c.results.VariantTags)
			i++
		default: // len(tok) >= 5
			c.assignRole(roleVariant, tok, &c.results.VariantTags)
			i++
		}
	}
}

// assignRole records the ordering regression check and appends tok to dst
// in its raw, received-case form.
func (c *parseContext) assignRole(r role, tok string, dst *[]string) {
	if r < c.lastRole {
		c.outOfOrder = true
	}
	c.lastRole = r
	*dst = append(*dst, tok)
}

// classifySingleton opens an extension or private-use group at index i,
// consumes the following token (if any) as that group's payload without
// independently classifying it, and returns the index to resume at.
func (c *parseContext) classifySingleton(tok string, i int) int {
	var r role
	if strings.EqualFold(tok, "x") {
		r = rolePrivateUse
	} else {
		r = roleExtension
	}
	if r < c.lastRole {
		c.outOfOrder = true
	}
	c.lastRole = r

	group := extensionGroup{Singleton: tok[0]}
	next := i + 1
	if next < len(c.tokens) {
		group.Payload = c.tokens[next]
		next++
	}

	if r == rolePrivateUse {
		c.privateUse = append(c.privateUse, group)
		c.results.PrivateUseTags = append(c.results.PrivateUseTags, group.String())
	} else {
		c.extensions = append(c.extensions, group)
		c.results.ExtensionTags = append(c.results.ExtensionTags, group.String())
	}
	return next
}

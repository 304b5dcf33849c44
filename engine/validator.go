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
	"fmt"
	"strings"
)

// validate runs the structural and registry-membership passes described in
// spec.md Section 4.4. It collects rather than throws: every applicable
// pass runs even after an earlier one fails, except the two short-circuits
// in Pass 0 (whole-tag deprecation and illegal characters).
func (c *parseContext) validate() {
	if c.validatePass0() {
		return
	}
	c.validateLanguage()
	c.validateRegion()
	c.validateExtlang()
	c.validateScript()
	c.validateVariants()
	c.validatePrivateUse()
}

// validatePass0 runs the general checks and reports whether validation
// should stop here (deprecated whole tag, or illegal characters found).
func (c *parseContext) validatePass0() (shortCircuit bool) {
	if rec, ok := c.reg.DeprecatedTag(strings.ToLower(c.raw)); ok {
		if rec.PreferredValue != "" {
			c.results.addError(fmt.Sprintf("Deprecated language tag %q use %q.", c.raw, rec.PreferredValue))
		} else {
			c.results.addError(fmt.Sprintf("Deprecated language tag %q do not use.", c.raw))
		}
		return true
	}

	if len(c.illegalChars) > 0 {
		c.results.addError(fmt.Sprintf("Found illegal characters:\" %s\" in language tag.", strings.Join(c.illegalChars, ", ")))
		c.wellFormed = false
		return true
	}

	if c.outOfOrder {
		c.results.addError(fmt.Sprintf("Language sub tags incorrectly order. Should be %q.", c.rebuildExpectedOrder()))
		c.wellFormed = false
	}

	if c.hasBlankTag {
		c.results.addError("Language tag has blank subtag(s) caused by more than one contiguous hyphen.")
		c.wellFormed = false
	}
	return false
}

// rebuildExpectedOrder reconstructs the tag in LANGUAGE < EXTENDED < SCRIPT
// < REGION < VARIANT < EXTENSION < PRIVATE_USE order, for the out-of-order
// error message.
func (c *parseContext) rebuildExpectedOrder() string {
	parts := []string{c.results.LanguageTag}
	parts = append(parts, c.results.ExtendedTags...)
	parts = append(parts, c.results.ScriptTags...)
	parts = append(parts, c.results.RegionTags...)
	parts = append(parts, c.results.VariantTags...)
	for _, g := range c.extensions {
		parts = append(parts, g.String())
	}
	for _, g := range c.privateUse {
		parts = append(parts, g.String())
	}
	return strings.Join(parts, "-")
}

const privateLangRangeLow, privateLangRangeHigh = "qaa", "qtz"

func (c *parseContext) validateLanguage() {
	lang := c.results.LanguageTag
	lower := strings.ToLower(lang)
	if _, ok := c.reg.Language(lang); ok {
		return
	}
	if lower >= privateLangRangeLow && lower <= privateLangRangeHigh {
		return
	}
	c.results.addError(fmt.Sprintf("Language subtag %q is not valid", lang))
	c.wellFormed = false
}

// isPrivateRegion reports whether upper (already uppercased) falls in one
// of the private-use region ranges RFC 5646 Section 3.4 sets aside: the
// singletons AA and ZZ, and the ranges QM-QZ and XA-XZ.
func isPrivateRegion(upper string) bool {
	if upper == "AA" || upper == "ZZ" {
		return true
	}
	if len(upper) != 2 {
		return false
	}
	if upper >= "QM" && upper <= "QZ" {
		return true
	}
	if upper >= "XA" && upper <= "XZ" {
		return true
	}
	return false
}

func (c *parseContext) validateRegion() {
	regions := c.results.RegionTags
	if len(regions) > 1 {
		c.results.addError(fmt.Sprintf("More than one region subtag found %q, only one is allowed.", strings.Join(regions, ", ")))
		c.wellFormed = false
	}

	var invalid []string
	for _, r := range regions {
		if _, ok := c.reg.Region(r); ok {
			continue
		}
		if isPrivateRegion(strings.ToUpper(r)) {
			continue
		}
		invalid = append(invalid, r)
	}
	if len(invalid) > 0 {
		c.results.addError(fmt.Sprintf("Region subtag(s) %q are not valid.", strings.Join(invalid, ", ")))
		c.wellFormed = false
	}
}

func (c *parseContext) validateExtlang() {
	extlangs := c.results.ExtendedTags
	if len(extlangs) > 1 {
		c.results.addError(fmt.Sprintf("More than one extended language subtag found %q, only one is allowed.", strings.Join(extlangs, ", ")))
		c.wellFormed = false
	}

	var invalid []string
	for _, e := range extlangs {
		rec, ok := c.reg.Extlang(e)
		if !ok {
			invalid = append(invalid, e)
			continue
		}
		if !hasPrefixFold(rec.Prefixes, c.results.LanguageTag) {
			c.results.addError(fmt.Sprintf("Extended subtag %q should not be used with language subtag %q.", e, c.results.LanguageTag))
			c.wellFormed = false
		}
	}
	if len(invalid) > 0 {
		c.results.addError(fmt.Sprintf("Extended subtag(s) %q are not valid.", strings.Join(invalid, ", ")))
		c.wellFormed = false
	}
}

func hasPrefixFold(prefixes []string, want string) bool {
	for _, p := range prefixes {
		if strings.EqualFold(p, want) {
			return true
		}
	}
	return false
}

const privateScriptRangeLow, privateScriptRangeHigh = "Qaaa", "Qabx"

func (c *parseContext) validateScript() {
	scripts := c.results.ScriptTags
	if len(scripts) > 1 {
		c.results.addError(fmt.Sprintf("More than one script subtag found %q, only one is allowed.", strings.Join(scripts, ", ")))
		c.wellFormed = false
	}

	var invalid []string
	for _, s := range scripts {
		if _, ok := c.reg.Script(s); ok {
			continue
		}
		tc := titleCaser.String(strings.ToLower(s))
		if tc >= privateScriptRangeLow && tc <= privateScriptRangeHigh {
			continue
		}
		invalid = append(invalid, s)
	}
	if len(invalid) > 0 {
		c.results.addError(fmt.Sprintf("Script subtag(s) %q are not valid.", strings.Join(invalid, ", ")))
		c.wellFormed = false
	}
}

func (c *parseContext) validateVariants() {
	variants := c.results.VariantTags

	seen := make(map[string]bool, len(variants))
	var duplicatesFound, invalidFound bool
	for _, v := range variants {
		lower := strings.ToLower(v)
		if seen[lower] {
			c.results.addError("Duplicate variant subtag: " + v)
			c.wellFormed = false
			duplicatesFound = true
			continue
		}
		seen[lower] = true
	}

	var invalid []string
	for _, v := range variants {
		if _, ok := c.reg.Variant(v); !ok {
			invalid = append(invalid, v)
		}
	}
	if len(invalid) > 0 {
		c.results.addError(fmt.Sprintf("Variant subtag(s) %q are not valid.", strings.Join(invalid, ", ")))
		c.wellFormed = false
		invalidFound = true
	}

	if duplicatesFound || invalidFound {
		return
	}

	preceding := c.results.LanguageTag
	for _, v := range variants {
		rec, _ := c.reg.Variant(v)
		if !hasPrefixFold(rec.Prefixes, preceding) {
			patterns := make([]string, 0, len(rec.Prefixes))
			for _, p := range rec.Prefixes {
				patterns = append(patterns, p+"-"+v)
			}
			c.results.addError(fmt.Sprintf("Sub tags preceding variant %q did not match one of the following pattern(s): %s.", v, strings.Join(patterns, ", ")))
			c.wellFormed = false
		}
		preceding += "-" + v
	}
}

func (c *parseContext) validatePrivateUse() {
	if len(c.privateUse) <= 1 {
		return
	}
	parts := make([]string, 0, len(c.privateUse))
	for _, g := range c.privateUse {
		parts = append(parts, g.String())
	}
	c.results.addError(fmt.Sprintf("More than one private use subtag found %q, only one is allowed.", strings.Join(parts, ", ")))
	c.wellFormed = false
}

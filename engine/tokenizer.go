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

// isLangtagChar reports whether r is an ASCII letter, ASCII digit, or
// hyphen — the only characters RFC 5646 Section 2.1 allows in a tag.
func isLangtagChar(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') || r == '-'
}

// tokenize splits the context's raw input on '-' and records illegal
// characters and blank subtags. It scans the raw input exactly as
// received, per spec.md Section 4.2 — no normalization of any kind runs
// ahead of the character-class scan. It does not lowercase anything
// either: case is preserved through classification per spec.md Section
// 4.3's closing note.
func (c *parseContext) tokenize() {
	for _, r := range c.raw {
		if !isLangtagChar(r) {
			c.illegalChars = append(c.illegalChars, string(r))
		}
	}

	if c.raw == "" {
		return
	}
	c.tokens = strings.Split(c.raw, "-")
	for _, tok := range c.tokens {
		if tok == "" {
			c.hasBlankTag = true
		}
	}
}

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

import "github.com/wrenlang/bcp47/registry"

// extensionGroup is a singleton subtag and the single payload subtag that
// follows it, e.g. "-u-co" becomes {Singleton: 'u', Payload: "co"}; any
// later subtag is classified on its own. spec.md Section 9 calls this out
// explicitly: the payload
// must never be treated as an independently classifiable token.
type extensionGroup struct {
	Singleton byte
	Payload   string
}

func (g extensionGroup) String() string {
	if g.Payload == "" {
		return string(g.Singleton)
	}
	return string(g.Singleton) + "-" + g.Payload
}

// parseContext is the per-call scratch state the reference implementation
// kept as process-wide mutable globals (bcp47Tag, has_blank_tag,
// is_well_formed, in_correct_order, and the extension/private-use
// accumulators). spec.md Section 5 requires this be bundled into a value
// threaded through the pipeline instead, so that concurrent Parse calls
// against the same Registry never race. This struct is that value; it is
// constructed fresh by Engine.Parse and never escapes it.
type parseContext struct {
	reg *registry.Registry

	raw    string
	tokens []string

	illegalChars []string
	hasBlankTag  bool
	outOfOrder   bool
	wellFormed   bool

	lastRole  role
	haveToken bool

	extensions []extensionGroup
	privateUse []extensionGroup

	results Results
}

func newParseContext(reg *registry.Registry, raw string) *parseContext {
	return &parseContext{
		reg:        reg,
		raw:        raw,
		wellFormed: true,
	}
}

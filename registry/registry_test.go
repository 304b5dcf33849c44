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
	"testing"

	"github.com/wrenlang/bcp47/subtag"
)

func TestRegistry_LookupsAreCaseInsensitive(t *testing.T) {
	reg := newRegistry()
	reg.Languages["en"] = subtag.Record{Type: subtag.Language, TagOrSubtag: "en"}

	if _, ok := reg.Language("EN"); !ok {
		t.Error("Language(\"EN\") should find the lowercase-keyed record")
	}
	if _, ok := reg.Language("En"); !ok {
		t.Error("Language(\"En\") should find the lowercase-keyed record")
	}
	if _, ok := reg.Language("fr"); ok {
		t.Error("Language(\"fr\") should not be found")
	}
}

func TestRegistry_CategoryMap(t *testing.T) {
	reg := newRegistry()
	tests := []struct {
		name string
		typ  subtag.Type
		want map[string]subtag.Record
	}{
		{"language", subtag.Language, reg.Languages},
		{"extlang", subtag.Extlang, reg.Extlangs},
		{"script", subtag.Script, reg.Scripts},
		{"region", subtag.Region, reg.Regions},
		{"variant", subtag.Variant, reg.Variants},
		{"grandfathered", subtag.Grandfathered, reg.Deprecated},
		{"redundant", subtag.Redundant, reg.Deprecated},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := reg.categoryMap(tt.typ)
			// Compare identity via a marker write, since map values aren't
			// comparable with ==.
			got["marker"] = subtag.Record{TagOrSubtag: "marker"}
			if _, ok := tt.want["marker"]; !ok {
				t.Errorf("categoryMap(%q) did not return the expected map", tt.typ)
			}
			delete(got, "marker")
		})
	}
}

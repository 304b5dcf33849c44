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

import "testing"

func TestEngine_Parse(t *testing.T) {
	reg := loadTestRegistry(t)
	e := New(reg)

	tests := []struct {
		name          string
		tag           string
		wantValid     bool
		wantCanonical string
		wantErrors    int
	}{
		{name: "simple language", tag: "en", wantValid: true, wantCanonical: "en"},
		{name: "language and region", tag: "en-US", wantValid: true, wantCanonical: "en-US"},
		{name: "suppressed script is dropped", tag: "en-Latn-US", wantValid: true, wantCanonical: "en-US"},
		{name: "non-suppressed script is kept", tag: "zh-Hans-CN", wantValid: true, wantCanonical: "zh-Hans-CN"},
		{name: "extlang folds into preferred language", tag: "zh-cmn-Hans-CN", wantValid: true, wantCanonical: "cmn-Hans-CN"},
		{name: "grandfathered tag redirects", tag: "i-klingon", wantValid: true, wantCanonical: "tlh"},
		{name: "duplicate variant", tag: "de-1901-1901", wantValid: false, wantErrors: 1},
		{name: "blank subtag in the middle", tag: "en--US", wantValid: false},
		{name: "blank subtag at the end", tag: "en-US-", wantValid: false},
		{name: "malformed language position", tag: "US-en", wantValid: false},
		{name: "empty input", tag: "", wantValid: false, wantCanonical: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := e.Parse(tt.tag)
			if got.IsValid != tt.wantValid {
				t.Errorf("Parse(%q).IsValid = %v, want %v (errors: %v)", tt.tag, got.IsValid, tt.wantValid, got.ErrorMessages)
			}
			if tt.wantValid && got.Canonical != tt.wantCanonical {
				t.Errorf("Parse(%q).Canonical = %q, want %q", tt.tag, got.Canonical, tt.wantCanonical)
			}
			if tt.wantErrors > 0 && len(got.ErrorMessages) != tt.wantErrors {
				t.Errorf("Parse(%q) produced %d error messages, want %d: %v", tt.tag, len(got.ErrorMessages), tt.wantErrors, got.ErrorMessages)
			}
		})
	}
}

func TestEngine_Parse_EmptyInputIsTriviallyException(t *testing.T) {
	reg := loadTestRegistry(t)
	e := New(reg)

	got := e.Parse("")
	if !got.CanonicalOK || got.Canonical != "" {
		t.Fatalf("Parse(\"\") canonical = (%q, %v), want (\"\", true)", got.Canonical, got.CanonicalOK)
	}
	if got.IsValid {
		t.Fatalf("Parse(\"\").IsValid = true, want false (documented quirk, see DESIGN.md)")
	}
	if len(got.ErrorMessages) != 0 {
		t.Fatalf("Parse(\"\") error messages = %v, want none", got.ErrorMessages)
	}
}

func TestEngine_Parse_RegionPreferredValueSubstitution(t *testing.T) {
	reg := loadTestRegistry(t)
	e := New(reg)

	got := e.Parse("de-BU")
	if !got.IsValid {
		t.Fatalf("Parse(de-BU).IsValid = false, errors: %v", got.ErrorMessages)
	}
	if got.Canonical != "de-MM" {
		t.Fatalf("Parse(de-BU).Canonical = %q, want de-MM", got.Canonical)
	}
}

func TestEngine_ToExtlangForm(t *testing.T) {
	reg := loadTestRegistry(t)
	e := New(reg)

	got := e.ToExtlangForm("cmn-CN")
	want := "zh-cmn-CN"
	if got != want {
		t.Fatalf("ToExtlangForm(cmn-CN) = %q, want %q", got, want)
	}
}

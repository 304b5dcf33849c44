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

package regsource

import (
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/spf13/afero"

	"github.com/wrenlang/bcp47/registry"
)

func TestLocate_ExplicitPath(t *testing.T) {
	fs := afero.NewMemMapFs()
	if err := afero.WriteFile(fs, "/custom/registry.txt", []byte("File-Date: 2024-01-01\n"), 0o644); err != nil {
		t.Fatalf("seed fs: %v", err)
	}

	got, err := Locate(fs, "/custom/registry.txt", zerolog.Nop())
	if err != nil {
		t.Fatalf("Locate returned error: %v", err)
	}
	if got != "/custom/registry.txt" {
		t.Fatalf("Locate = %q, want /custom/registry.txt", got)
	}
}

func TestLocate_ExplicitPathMissing(t *testing.T) {
	fs := afero.NewMemMapFs()
	_, err := Locate(fs, "/does/not/exist.txt", zerolog.Nop())
	if !errors.Is(err, registry.ErrRegistryUnavailable) {
		t.Fatalf("expected ErrRegistryUnavailable, got %v", err)
	}
}

func TestLocate_FallsBackToDefaultCandidates(t *testing.T) {
	fs := afero.NewMemMapFs()
	want := DefaultCandidates[1]
	if err := afero.WriteFile(fs, want, []byte("File-Date: 2024-01-01\n"), 0o644); err != nil {
		t.Fatalf("seed fs: %v", err)
	}

	got, err := Locate(fs, "", zerolog.Nop())
	if err != nil {
		t.Fatalf("Locate returned error: %v", err)
	}
	if got != want {
		t.Fatalf("Locate = %q, want %q", got, want)
	}
}

func TestLocate_NoCandidatesFound(t *testing.T) {
	fs := afero.NewMemMapFs()
	_, err := Locate(fs, "", zerolog.Nop())
	if !errors.Is(err, registry.ErrRegistryUnavailable) {
		t.Fatalf("expected ErrRegistryUnavailable, got %v", err)
	}
}

func TestLoad_ParsesFoundFile(t *testing.T) {
	fs := afero.NewMemMapFs()
	content := "File-Date: 2024-05-16\n%%\nType: language\nSubtag: en\nDescription: English\nAdded: 2005-10-16\n"
	if err := afero.WriteFile(fs, "./language-subtag-registry.txt", []byte(content), 0o644); err != nil {
		t.Fatalf("seed fs: %v", err)
	}

	reg, err := Load(fs, "", zerolog.Nop())
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if _, ok := reg.Language("en"); !ok {
		t.Fatal("expected \"en\" to be loaded")
	}
	if reg.FileDate != "2024-05-16" {
		t.Fatalf("FileDate = %q, want 2024-05-16", reg.FileDate)
	}
}

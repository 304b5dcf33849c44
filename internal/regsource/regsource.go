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

// Package regsource locates and loads an IANA Language Subtag Registry
// file for the CLI shell. The core engine never touches a filesystem
// itself — spec.md calls the registry file an external collaborator, and
// this package is that collaborator's implementation.
package regsource

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/spf13/afero"

	"github.com/wrenlang/bcp47/registry"
)

// DefaultCandidates are the paths searched, in order, when the caller does
// not pass an explicit path. Mirrors the layout IANA publishes the
// registry under on a typical Linux distribution, plus a local fallback
// for running the CLI out of a checkout.
var DefaultCandidates = []string{
	"/usr/share/iana/language-subtag-registry.txt",
	"/usr/local/share/iana/language-subtag-registry.txt",
	"./language-subtag-registry.txt",
}

// Locate finds the first candidate path that exists on fs and returns it.
// An explicit path, when non-empty, is tried on its own and never falls
// back to the defaults.
func Locate(fs afero.Fs, explicit string, log zerolog.Logger) (string, error) {
	if explicit != "" {
		if ok, _ := afero.Exists(fs, explicit); ok {
			return explicit, nil
		}
		return "", fmt.Errorf("regsource: registry file %q does not exist: %w", explicit, registry.ErrRegistryUnavailable)
	}

	for _, candidate := range DefaultCandidates {
		ok, err := afero.Exists(fs, candidate)
		log.Debug().Str("candidate", candidate).Bool("found", ok).Err(err).Msg("probed registry candidate path")
		if err == nil && ok {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("regsource: no registry file found among %d candidate paths: %w", len(DefaultCandidates), registry.ErrRegistryUnavailable)
}

// Load locates and parses the registry in one step. Any failure — the
// file cannot be found, opened, or read to completion — surfaces as
// registry.ErrRegistryUnavailable, per spec.md Section 7's "engine cannot
// be constructed" fatal error.
func Load(fs afero.Fs, explicit string, log zerolog.Logger) (*registry.Registry, error) {
	path, err := Locate(fs, explicit, log)
	if err != nil {
		return nil, err
	}

	f, err := fs.Open(path)
	if err != nil {
		return nil, fmt.Errorf("regsource: open %q: %w: %w", path, err, registry.ErrRegistryUnavailable)
	}
	defer f.Close()

	log.Info().Str("path", path).Msg("loading language subtag registry")
	reg, err := registry.Load(f)
	if err != nil {
		return nil, fmt.Errorf("regsource: %w", err)
	}
	log.Info().Str("file_date", reg.FileDate).Int("languages", len(reg.Languages)).Msg("registry loaded")
	return reg, nil
}

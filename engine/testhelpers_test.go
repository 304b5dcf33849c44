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
	"os"
	"testing"

	"github.com/wrenlang/bcp47/registry"
)

func loadTestRegistry(t *testing.T) *registry.Registry {
	t.Helper()
	f, err := os.Open("../testdata/language-subtag-registry.txt")
	if err != nil {
		t.Fatalf("open testdata registry: %v", err)
	}
	defer f.Close()

	reg, err := registry.Load(f)
	if err != nil {
		t.Fatalf("load testdata registry: %v", err)
	}
	return reg
}

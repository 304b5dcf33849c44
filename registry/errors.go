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

import "errors"

// ErrRegistryUnavailable is returned by Load when the underlying reader
// cannot be read to completion. It is the only fatal error this package
// produces — malformed records inside an otherwise-readable file are
// skipped rather than rejected, per RFC 5646's treatment of the registry
// as a published, assumed-well-formed artifact.
var ErrRegistryUnavailable = errors.New("registry: unavailable")

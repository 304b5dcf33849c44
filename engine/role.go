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

// role is the classifier's total order over subtag kinds, used only to
// detect regressions in subtag ordering (spec.md Section 4.3, point 3).
//
// The reference implementation tracks this with a boolean named
// "in_correct_order" that is, confusingly, true when the order is
// *incorrect*. This package instead uses an explicit ordinal type and
// names the derived flag outOfOrder, per the redesign note in spec.md
// Section 9 — same detection, honest name.
type role int

const (
	roleLanguage role = iota
	roleExtended
	roleScript
	roleRegion
	roleVariant
	roleExtension
	rolePrivateUse
)

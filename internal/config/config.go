// Copyright 2026 Oliver Eikemeier. All Rights Reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

// Package config holds the behavior switches and the configuration file format of the analyzer.
package config

// Behavior represents behavioral options of the analyzer.
type Behavior uint8

const (
	// IncludeGenerated specifies whether functions in generated files are expanded.
	IncludeGenerated Behavior = 1 << iota

	// AnnotateUnused marks generated variants with a //nolint:unused directive.
	AnnotateUnused
)

// DefaultBehavior returns the behavior of an unconfigured analyzer.
func DefaultBehavior() BitMask[Behavior] {
	return NewBitMask(AnnotateUnused)
}

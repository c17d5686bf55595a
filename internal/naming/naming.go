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

// Package naming derives the names of generated declarations.
//
// All names are pure functions of the base function name and the dispatch
// aliases in original declaration order.
package naming

import (
	"strconv"
	"strings"
)

const (
	// Separator joins the base name and dispatch aliases.
	Separator = "_"

	// FallbackSuffix is the reserved suffix of the fallback variant.
	FallbackSuffix = "orig"

	// sourceSuffix is appended to a promoted parameter name to form its source type parameter.
	sourceSuffix = "Const"
)

// Fallback returns the name of the fallback variant.
func Fallback(base string) string {
	return base + Separator + FallbackSuffix
}

// Variant returns the name of the variant promoting the parameters with the given aliases,
// which must be in original declaration order. No aliases name the fallback.
func Variant(base string, aliases []string) string {
	if len(aliases) == 0 {
		return Fallback(base)
	}

	var b strings.Builder
	b.WriteString(base) // ignore error

	for _, alias := range aliases {
		b.WriteString(Separator) // ignore error
		b.WriteString(alias)     // ignore error
	}

	return b.String()
}

// Source returns the name of the type supplying the candidate with the given index
// of the promotable parameter with the given alias.
func Source(base, alias string, index int) string {
	return base + Separator + alias + Separator + strconv.Itoa(index)
}

// TypeParam returns the name of the type parameter carrying the constant for the parameter.
func TypeParam(param string) string {
	return param + sourceSuffix
}

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

// Package analyzer implements the constcurry static analysis pass.
//
// # Overview
//
// constcurry expands a function whose parameters are marked promotable into a dispatcher
// keeping the original name and signature, plus one specialized variant per subset of the
// promotable parameters. Inside a variant, every promoted parameter is a compile time
// constant supplied through a type parameter, so the compiler can fold branches that
// depend on it.
//
// # Example
//
// Before:
//
//	// Clamp limits v to [lo, hi].
//	//
//	//constcurry:expand
//	func Clamp(
//		//constcurry:promote dispatch=lo consts=[0]
//		lo int,
//		hi, v int,
//	) int {
//		return min(max(v, lo), hi)
//	}
//
// After applying the suggested fix, Clamp dispatches on lo:
//
//	// Clamp limits v to [lo, hi].
//	func Clamp(lo int, hi, v int) int {
//		switch {
//		case lo == 0:
//			return Clamp_lo[Clamp_lo_0](hi, v)
//		default:
//			return Clamp_orig(lo, hi, v)
//		}
//	}
//
// Clamp_orig is the unchanged body, Clamp_lo binds lo to the constant from its
// type parameter, and Clamp_lo_0 is the source type for the candidate 0.
//
// # Markers
//
// A function opts in with a "//constcurry:expand" line in its doc comment. A parameter
// is promotable when a "//constcurry:promote" comment inside the parameter list
// precedes it. The marker payload consists of the keys "dispatch" (the alias used in
// generated names, defaulting to the parameter name) and "consts" (an array of
// candidate literals the dispatcher tests for).
//
// Markers on unnamed, blank or grouped parameters are ignored. Invalid markers, naming
// collisions and unsupported declarations are reported without a suggested fix.
package analyzer

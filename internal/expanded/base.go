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

package expanded

import "strconv"

// Worked example.
func base(a int, b bool, c string) string {
	switch {
	case a == 0 && b == true:
		return base_A_B[base_A_0, base_B_0](c)
	case a == 0:
		return base_A[base_A_0](b, c)
	case b == true:
		return base_B[base_B_0](a, c)
	default:
		return base_orig(a, b, c)
	}
}

// base_orig is the fallback implementation of base.
//
//nolint:unused
func base_orig(a int, b bool, c string) string {
	if b {
		return c
	}

	return strconv.Itoa(a) + c
}

// base_A is base specialized for constant a.
//
//nolint:unused
func base_A[aConst interface{ Value() int }](b bool, c string) string {
	a := (*new(aConst)).Value()

	if b {
		return c
	}

	return strconv.Itoa(a) + c
}

// base_B is base specialized for constant b.
//
//nolint:unused
func base_B[bConst interface{ Value() bool }](a int, c string) string {
	b := (*new(bConst)).Value()

	if b {
		return c
	}

	return strconv.Itoa(a) + c
}

// base_A_B is base specialized for constants a and b.
//
//nolint:unused
func base_A_B[aConst interface{ Value() int }, bConst interface{ Value() bool }](c string) string {
	a := (*new(aConst)).Value()
	b := (*new(bConst)).Value()

	if b {
		return c
	}

	return strconv.Itoa(a) + c
}

// base_A_0 supplies the constant 0 for a.
type base_A_0 struct{}

func (base_A_0) Value() int { return 0 }

// base_B_0 supplies the constant true for b.
type base_B_0 struct{}

func (base_B_0) Value() bool { return true }

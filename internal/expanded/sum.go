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

func sum(scale int, values ...int) (total int) {
	switch {
	case scale == 1:
		return sum_scale[sum_scale_0](values...)
	default:
		return sum_orig(scale, values...)
	}
}

// sum_orig is the fallback implementation of sum.
//
//nolint:unused
func sum_orig(scale int, values ...int) (total int) {
	for _, v := range values {
		total += v * scale
	}

	return total
}

// sum_scale is sum specialized for constant scale.
//
//nolint:unused
func sum_scale[scaleConst interface{ Value() int }](values ...int) (total int) {
	scale := (*new(scaleConst)).Value()

	for _, v := range values {
		total += v * scale
	}

	return total
}

// sum_scale_0 supplies the constant 1 for scale.
type sum_scale_0 struct{}

func (sum_scale_0) Value() int { return 1 }

// ignore has no promotable parameters.
func ignore(_0 int, x, y int, s string) string {
	return ignore_orig(_0, x, y, s)
}

// ignore_orig is the fallback implementation of ignore.
//
//nolint:unused
func ignore_orig(_ int, x, y int, s string) string {
	return s
}

// inert promotion markers without expand directive
func inert(
	//constcurry:promote consts=[1]
	x int,
) int {
	return x
}

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

package nofix

//constcurry:expand
func sameAlias(
	//constcurry:promote dispatch=v consts=[1]
	x int,
	//constcurry:promote dispatch=v consts=[2]
	y int, // want `Parameters 'x' and 'y' share the dispatch alias 'v' \(cc:col\)`
) int {
	return x + y
}

//constcurry:expand
func param( // want `Generated name 'param_orig' of function 'param' is already in use \(cc:col\)`
	//constcurry:promote dispatch=x
	x int,
	param_orig int,
) int {
	return x + param_orig
}

//constcurry:expand
func clash( // want `Generated name 'clash_orig' of function 'clash' is already declared \(cc:col\)`
	//constcurry:promote
	x int,
) int {
	return x
}

func clash_orig() {}

//constcurry:expand
func shadowNew( // want `Function 'shadowNew' redeclares 'new', which the variants need \(cc:col\)`
	//constcurry:promote
	x int,
	new int,
) int {
	return x + new
}

type aConst int

//constcurry:expand
func typeClash(
	//constcurry:promote consts=[1]
	a int, // want `Type parameter 'aConst' for parameter 'a' is already in use \(cc:col\)`
	v aConst,
) int {
	return a + int(v)
}

//constcurry:expand
func constraintClash[T ~int | bConst](
	//constcurry:promote consts=[1]
	b int, // want `Type parameter 'bConst' for parameter 'b' is already in use \(cc:col\)`
	v T,
) int {
	return b + int(v)
}

type bConst int8

// suppressed is not expanded.
//
//nolint:constcurry
//constcurry:expand
func suppressed(
	//constcurry:promote consts=[1]
	x int,
) int {
	return x
}

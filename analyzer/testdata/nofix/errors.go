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
func unknownKey(
	//constcurry:promote alias=x
	x int, // want `Invalid promotion marker on parameter 'x': unknown key "alias" \(cc:cfg\)`
) int {
	return x
}

//constcurry:expand
func duplicateKey(
	//constcurry:promote dispatch=a dispatch=b
	x int, // want `Invalid promotion marker on parameter 'x': duplicate key "dispatch" \(cc:cfg\)`
) int {
	return x
}

//constcurry:expand
func badAlias(
	//constcurry:promote dispatch=func
	x int, // want `Invalid promotion marker on parameter 'x': dispatch alias is not a valid identifier.* \(cc:cfg\)`
) int {
	return x
}

//constcurry:expand
func notArray(
	//constcurry:promote consts=5
	x int, // want `Invalid promotion marker on parameter 'x': consts must be an array of literals.* \(cc:cfg\)`
) int {
	return x
}

const limit = 5

//constcurry:expand
func notLiteral(
	//constcurry:promote consts=[1, limit]
	x int, // want `Invalid promotion marker on parameter 'x': not a literal.* \(cc:cfg\)`
) int {
	return x
}

//constcurry:expand
func duplicateConst(
	//constcurry:promote consts=[16, 0x10]
	x int, // want `Invalid promotion marker on parameter 'x': duplicate candidate 0x10 \(same as 16\) \(cc:cfg\)`
) int {
	return x
}

//constcurry:expand
func twoMarkers(
	//constcurry:promote consts=[1]
	/*constcurry:promote consts=[2]*/
	x int, // want `Parameter 'x' has 2 promotion markers, expected one \(cc:cfg\)`
) int {
	return x
}

//constcurry:expand
func dangling(x int /*constcurry:promote consts=[1]*/) int { // want `Promotion marker in function 'dangling' is not followed by a parameter \(cc:cfg\)`
	return x
}

//constcurry:expand
func variadic(
	//constcurry:promote consts=[1]
	xs ...int, // want `Variadic parameter 'xs' can't be promoted \(cc:cfg\)`
) int {
	return len(xs)
}

//constcurry:expand
func dependent[T ~int](
	//constcurry:promote consts=[1]
	x T, // want `Parameter 'x' can't be promoted, its type depends on type parameter 'T' \(cc:cfg\)`
) T {
	return x
}

//constcurry:expand
func tooMany( // want `Function 'tooMany' has 7 promotable parameters, at most 6 are allowed \(cc:cfg\)`
	/*constcurry:promote*/ a int,
	/*constcurry:promote*/ b int,
	/*constcurry:promote*/ c int,
	/*constcurry:promote*/ d int,
	/*constcurry:promote*/ e int,
	/*constcurry:promote*/ f int,
	/*constcurry:promote*/ g int,
) int {
	return a + b + c + d + e + f + g
}

type counter struct{ n int }

//constcurry:expand
func (c *counter) add( // want `Method 'add' can't be expanded, methods can't declare type parameters \(cc:uns\)`
	//constcurry:promote consts=[1]
	x int,
) {
	c.n += x
}

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

package local

//constcurry:expand
func scale( // want "Function 'scale' expands into a dispatcher and 2 variants \\(cc:gen\\)"
	//constcurry:promote dispatch=by consts=[2, -1]
	factor float64,
	x float64,
) float64 {
	return factor * x
}

//constcurry:expand
func f( // want "Function 'f' expands into a dispatcher and 2 variants \\(cc:gen\\)"
	//constcurry:promote dispatch=x_y
	a int,
) int {
	return a
}

//constcurry:expand
func f_x( // want `Generated name 'f_x_y' of function 'f_x' is also generated for function 'f' \(cc:col\)`
	//constcurry:promote dispatch=y
	b int,
) int {
	return b
}

//constcurry:expand
func two( // want `Function 'two' has 2 promotable parameters, at most 1 are allowed \(cc:cfg\)`
	/*constcurry:promote*/ a int,
	/*constcurry:promote*/ b int,
) int {
	return a + b
}
